package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner animates a one-line status message on w until stopped or until
// its context ends.
type spinner struct {
	w       io.Writer
	message string
	quit    chan struct{}
	exited  chan struct{}
	once    sync.Once
}

// withSpinner runs fn while a spinner with message is drawn on w.
func withSpinner(ctx context.Context, w io.Writer, message string, fn func() error) error {
	s := &spinner{
		w:       w,
		message: message,
		quit:    make(chan struct{}),
		exited:  make(chan struct{}),
	}
	go s.run(ctx)
	defer s.stop()
	return fn()
}

func (s *spinner) run(ctx context.Context) {
	defer close(s.exited)
	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			return
		case <-s.quit:
			return
		case <-ticker.C:
			frame := spinnerFrames[i%len(spinnerFrames)]
			fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.message))
		}
	}
}

// stop waits for the drawing goroutine to exit, then clears the line.
func (s *spinner) stop() {
	s.once.Do(func() {
		close(s.quit)
		<-s.exited
		fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
	})
}
