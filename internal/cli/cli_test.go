package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// syncBuffer provides thread-safe access to a bytes.Buffer.
type syncBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (s *syncBuffer) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func TestFlavorChips(t *testing.T) {
	families := map[string]string{"Heist": "Action & Crime"}
	out := FlavorChips([]string{"Heist", "Mystery Box"}, func(f string) string { return families[f] })

	assert.Contains(t, out, "Heist")
	assert.Contains(t, out, "Mystery Box")
	assert.Less(t, strings.Index(out, "Heist"), strings.Index(out, "Mystery Box"))
	assert.Contains(t, FlavorChips(nil, nil), "no flavors")
}

func TestRenderTable(t *testing.T) {
	out := RenderTable([]string{"ID", "TITLE"}, [][]string{
		{"tt0133093", "The Matrix"},
		{"tt0081505", "The Shining"},
	})

	for _, want := range []string{"ID", "TITLE", "tt0133093", "The Matrix", "The Shining"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "The Matrix"), strings.Index(out, "The Shining"))
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		expected string
		size     int64
	}{
		{"0 B", 0},
		{"1023 B", 1023},
		{"1.0 KB", 1024},
		{"1.5 KB", 1536},
		{"2.0 MB", 2 * 1024 * 1024},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatFileSize(tt.size))
	}
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		expected string
		ago      time.Duration
	}{
		{"seconds", "just now", 30 * time.Second},
		{"one minute", "1 minute ago", time.Minute},
		{"minutes", "5 minutes ago", 5 * time.Minute},
		{"one hour", "1 hour ago", time.Hour},
		{"hours", "3 hours ago", 3 * time.Hour},
		{"yesterday", "yesterday", 30 * time.Hour},
		{"days", "3 days ago", 3 * 24 * time.Hour},
		{"old", "2024-06-01 12:00", 14 * 24 * time.Hour},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatRelativeTime(now.Add(-tt.ago), now))
		})
	}
}

func TestFormatYearAndRuntime(t *testing.T) {
	assert.Equal(t, "-", FormatYear(0))
	assert.Equal(t, "1999", FormatYear(1999))
	assert.Equal(t, "-", FormatRuntime(0))
	assert.Equal(t, "45m", FormatRuntime(45))
	assert.Equal(t, "2h 16m", FormatRuntime(136))
	assert.Equal(t, "1h 05m", FormatRuntime(65))
}

func TestProgressReporter(t *testing.T) {
	out := &syncBuffer{}
	p := NewProgressReporter(out)

	p.Start("Importing", 3)
	var wg sync.WaitGroup
	for i, id := range []string{"tt0000001", "tt0000002", "tt0000003"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var err error
			if i == 1 {
				err = errors.New("boom")
			}
			p.Advance(id, err)
		}()
	}
	wg.Wait()
	p.Finish()

	assert.Equal(t, 3, p.Done())
	assert.Equal(t, []string{"tt0000002"}, p.Failed())
	assert.Contains(t, out.String(), "Importing")
}

func TestProgressReporterEmpty(t *testing.T) {
	out := &syncBuffer{}
	p := NewProgressReporter(out)

	p.Start("Reclassifying", 0)
	p.Finish()

	assert.Equal(t, 0, p.Done())
	assert.Empty(t, p.Failed())
	assert.Empty(t, out.String())
}

func TestProgressReporterRestart(t *testing.T) {
	p := NewProgressReporter(&syncBuffer{})
	p.Start("Importing", 1)
	p.Advance("tt0000001", errors.New("boom"))
	p.Finish()

	p.Start("Reclassifying", 2)
	assert.Equal(t, 0, p.Done())
	assert.Empty(t, p.Failed())
}

func TestNewInterruptHandler(t *testing.T) {
	handler := NewInterruptHandler(nil, "Import")
	assert.NotNil(t, handler.writer)
	assert.False(t, handler.WasInterrupted())
}

func TestInterruptCancelsContext(t *testing.T) {
	output := &syncBuffer{}
	handler := NewInterruptHandler(output, "Import")

	ctx, stop := handler.HandleInterrupts(context.Background(), true)
	defer stop()

	select {
	case <-ctx.Done():
		t.Fatal("context should not be canceled initially")
	default:
	}

	handler.interrupt()
	handler.interrupt()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not canceled")
	}
	assert.True(t, handler.WasInterrupted())
	assert.Equal(t, 1, strings.Count(output.String(), "Import interrupted!"))
}

func TestStopDoesNotReportInterrupt(t *testing.T) {
	output := &syncBuffer{}
	handler := NewInterruptHandler(output, "Reclassify")

	ctx, stop := handler.HandleInterrupts(context.Background(), false)
	stop()
	<-ctx.Done()

	assert.False(t, handler.WasInterrupted())
	assert.Empty(t, output.String())
}

func TestShowInterruptMessage(t *testing.T) {
	tests := []struct {
		name        string
		expected    []string
		notExpected []string
		resumable   bool
	}{
		{
			name:      "resumable",
			resumable: true,
			expected:  []string{"Import interrupted!", "Finished movies have been saved"},
		},
		{
			name:        "not resumable",
			expected:    []string{"Import interrupted!"},
			notExpected: []string{"have been saved"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var output bytes.Buffer
			handler := &InterruptHandler{
				writer:    &output,
				operation: "Import",
				resumable: tt.resumable,
			}

			handler.showInterruptMessage()

			for _, want := range tt.expected {
				assert.Contains(t, output.String(), want)
			}
			for _, unwanted := range tt.notExpected {
				assert.NotContains(t, output.String(), unwanted)
			}
		})
	}
}
