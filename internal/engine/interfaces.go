package engine

// Progress receives progress updates from long-running library operations.
// Implementations must be safe for concurrent use.
type Progress interface {
	Start(label string, total int)
	Advance(imdbID string, err error)
	Finish()
}

// NopProgress discards progress updates.
type NopProgress struct{}

// Start implements Progress.
func (NopProgress) Start(string, int) {}

// Advance implements Progress.
func (NopProgress) Advance(string, error) {}

// Finish implements Progress.
func (NopProgress) Finish() {}
