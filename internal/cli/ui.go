//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/fibmenu/internal/fibonacci"
)

// SpinnerRefreshRate is the animation interval of the pacing spinner.
const SpinnerRefreshRate = 100 * time.Millisecond

// Spinner abstracts a terminal spinner so paced output can be tested without
// a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation and clears its line.
	Stop()
	// UpdateSuffix sets the text displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts *spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() {
	rs.s.Start()
}

func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

// newSpinner is a variable so tests can substitute a mock.
var newSpinner = func(out io.Writer) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, spinner.WithWriter(out))
	return &realSpinner{s}
}

// pacedSink delays every term by a fixed interval while a spinner reports
// progress. Once ctx is done the remaining terms pass through undelayed.
type pacedSink struct {
	ctx     context.Context
	next    fibonacci.Sink
	spinner Spinner
	delay   time.Duration
	total   int
}

func (p *pacedSink) Emit(index int, term int64) {
	if p.total > 0 {
		p.spinner.UpdateSuffix(fmt.Sprintf(" generating term %d/%d", index+1, p.total))
	} else {
		p.spinner.UpdateSuffix(fmt.Sprintf(" generating term %d", index+1))
	}
	if p.ctx.Err() == nil {
		timer := time.NewTimer(p.delay)
		select {
		case <-timer.C:
		case <-p.ctx.Done():
			timer.Stop()
		}
	}
	p.next.Emit(index, term)
}
