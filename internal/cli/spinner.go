package cli

import (
	"fmt"
	"os"
	"time"
)

// Spinner is a minimal terminal progress indicator for the rendering phase.
type Spinner struct {
	message string
	done    chan struct{}
	stopped chan struct{}
	frames  []string
}

// newSpinner creates a new spinner with the given message.
func newSpinner(message string) *Spinner {
	return &Spinner{
		message: message,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		frames:  []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	}
}

// Start begins the spinner animation on stderr.
func (s *Spinner) Start() {
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		i := 0
		for {
			select {
			case <-s.done:
				fmt.Fprintf(os.Stderr, "\r\033[K")
				return
			case <-ticker.C:
				frame := s.frames[i%len(s.frames)]
				fmt.Fprintf(os.Stderr, "\r%s %s", StyleHighlight.Render(frame), StyleDim.Render(s.message))
				i++
			}
		}
	}()
}

// Stop halts the animation and clears the line.
func (s *Spinner) Stop() {
	close(s.done)
	<-s.stopped
}
