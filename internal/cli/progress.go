package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/parsaz/chainopt/internal/matchain"
)

const (
	// ProgressRefreshRate is how often the progress line is redrawn.
	ProgressRefreshRate = 100 * time.Millisecond
	// ProgressBarWidth is the bar width in characters.
	ProgressBarWidth = 40
)

// Spinner abstracts the terminal spinner so the display loop can be driven
// by a fake in tests.
type Spinner interface {
	Start()
	Stop()
	UpdateSuffix(suffix string)
}

type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start()                     { rs.s.Start() }
func (rs *realSpinner) Stop()                      { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

// newSpinner is a construction seam; tests swap it for a fake.
var newSpinner = func(options ...spinner.Option) Spinner {
	// Spinner interval matches the redraw rate so frames and bar stay in step.
	return &realSpinner{spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)}
}

// progressBar renders a normalized progress value as a fixed-width bar.
// Values outside [0, 1] are clamped.
func progressBar(progress float64, width int) string {
	switch {
	case progress > 1.0:
		progress = 1.0
	case progress < 0.0:
		progress = 0.0
	}
	filled := int(progress * float64(width))
	var b strings.Builder
	b.Grow(width)
	for i := 0; i < width; i++ {
		if i < filled {
			b.WriteRune('█')
		} else {
			b.WriteRune('░')
		}
	}
	return b.String()
}

func progressLine(progress float64) string {
	return fmt.Sprintf("Progress: %6.2f%% [%s]", progress*100, progressBar(progress, ProgressBarWidth))
}

// DisplayProgress renders a spinner and progress bar while the solver fills
// its tables. It runs in its own goroutine: it drains progressChan, redraws
// on a ticker, and exits when the channel is closed, leaving a persistent
// line with the last observed value behind. A solve that errors or is
// canceled therefore leaves a partial bar rather than claiming completion.
//
// Parameters:
//   - wg: Signals completion of the display routine.
//   - progressChan: The channel carrying solver progress updates.
//   - out: The io.Writer the progress is rendered to.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan matchain.ProgressUpdate, out io.Writer) {
	defer wg.Done()

	s := newSpinner(spinner.WithWriter(out))
	s.Start()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	var current float64
	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				// Stop the spinner before printing so the final line
				// is not overdrawn by a frame erase.
				s.Stop()
				fmt.Fprintf(out, "%s\n", progressLine(current))
				return
			}
			current = update.Value
		case <-ticker.C:
			s.UpdateSuffix(" " + progressLine(current))
		}
	}
}
