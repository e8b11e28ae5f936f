package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/schollz/progressbar/v3"
)

// ProgressReporter renders library operations as a progress bar. It is
// safe for concurrent use.
type ProgressReporter struct {
	writer io.Writer
	bar    *progressbar.ProgressBar
	failed []string
	done   int
	total  int
	mu     sync.Mutex
}

// NewProgressReporter creates a reporter writing to w, or stderr when w is nil.
func NewProgressReporter(w io.Writer) *ProgressReporter {
	if w == nil {
		w = os.Stderr
	}
	return &ProgressReporter{writer: w}
}

// Start begins a new bar. A zero total draws nothing.
func (p *ProgressReporter) Start(label string, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.done = 0
	p.total = total
	p.failed = nil
	p.bar = nil
	if total <= 0 {
		return
	}
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(p.writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription(fmt.Sprintf("[yellow][bold]%s...[reset]", label)),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(p.writer); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}

// Advance records one finished movie.
func (p *ProgressReporter) Advance(imdbID string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.done++
	if err != nil {
		p.failed = append(p.failed, imdbID)
	}
	if p.bar != nil {
		if err := p.bar.Add(1); err != nil {
			slog.Warn("Failed to update progress bar", "error", err)
		}
	}
}

// Finish ends the line of a bar that stopped short of its total. A
// completed bar has already done so.
func (p *ProgressReporter) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bar == nil || p.done >= p.total {
		return
	}
	if _, err := fmt.Fprintln(p.writer); err != nil {
		slog.Warn("Failed to write newline after progress bar", "error", err)
	}
}

// Done returns how many movies were reported since Start.
func (p *ProgressReporter) Done() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done
}

// Failed returns the ids reported with an error since Start.
func (p *ProgressReporter) Failed() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.failed...)
}
