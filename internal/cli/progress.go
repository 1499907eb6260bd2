package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"
)

// ProgressRefreshRate defines the refresh frequency of the progress display.
const ProgressRefreshRate = 200 * time.Millisecond

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// It decouples DisplayProgress from a specific spinner implementation,
// facilitating easier testing. It defines the essential controls for a
// spinner: starting, stopping, and updating its status message.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	//
	// Parameters:
	//   - suffix: The text string to display.
	UpdateSuffix(suffix string)
}

// realSpinner wraps spinner.Spinner to implement the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
//
// Parameters:
//   - suffix: The string to display.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(options ...spinner.Option) Spinner {
	// Same interval as ProgressRefreshRate to synchronize refreshes.
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress manages the asynchronous display of a spinner while a
// long-running decision or batch is in flight. It is designed to run in a
// dedicated goroutine and shows the label with the elapsed time, refreshed
// periodically, until done is closed.
//
// Primality decisions give no usable completion ratio up front (the cost of
// a candidate is not known until it is decided), so the display is an
// elapsed-time indicator rather than a percentage bar.
//
// Parameters:
//   - wg: A WaitGroup to signal when the display routine is complete.
//   - done: A channel closed by the caller when the work has finished.
//   - label: A short description of the work in flight.
//   - out: The io.Writer to which the spinner is rendered.
func DisplayProgress(wg *sync.WaitGroup, done <-chan struct{}, label string, out io.Writer) {
	defer wg.Done()

	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(fmt.Sprintf(" %s...", label))
	s.Start()
	defer s.Stop()

	start := time.Now()
	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			s.UpdateSuffix(fmt.Sprintf(" %s... elapsed: %s", label, FormatExecutionDuration(time.Since(start))))
		}
	}
}
