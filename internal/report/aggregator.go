package report

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/five82/pint/internal/install"
)

// ErrNoMatches is returned by Finish in mean mode when no event was added.
var ErrNoMatches = errors.New("no matches to average")

const indent = "  "

// Options select what the report shows.
type Options struct {
	ShowDate bool // append the install start date to name lines
	Mean     bool // replace per-event durations with one mean
}

// Aggregator writes report lines for install events.
type Aggregator struct {
	w    io.Writer
	f    Formatter
	opts Options

	total int64
	count int64
}

// New returns an Aggregator writing to w.
func New(w io.Writer, f Formatter, opts Options) *Aggregator {
	return &Aggregator{w: w, f: f, opts: opts}
}

// Add reports one completed install. In mean mode only the name line is
// written and the duration is accumulated.
func (a *Aggregator) Add(e install.Event) error {
	if err := a.writeName(e.Name, e.StartTime()); err != nil {
		return err
	}
	a.count++
	if a.opts.Mean {
		a.total += e.Duration()
		return nil
	}
	return a.writeDuration(e.Duration())
}

// Finish writes the mean line in mean mode. It returns ErrNoMatches when
// there is nothing to average.
func (a *Aggregator) Finish() error {
	if !a.opts.Mean {
		return nil
	}
	if a.count == 0 {
		return ErrNoMatches
	}
	return a.writeDuration(a.total / a.count)
}

// Current reports an install still in progress with its elapsed time.
func (a *Aggregator) Current(c install.Current, now time.Time) error {
	if err := a.writeName(c.Name, c.StartTime()); err != nil {
		return err
	}
	return a.writeDuration(c.Elapsed(now))
}

// Count returns the number of events added.
func (a *Aggregator) Count() int64 {
	return a.count
}

func (a *Aggregator) writeName(name string, start time.Time) error {
	line := "* " + a.f.Name(name)
	if a.opts.ShowDate {
		line += " " + a.f.Date(start)
	}
	if _, err := fmt.Fprintln(a.w, line); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func (a *Aggregator) writeDuration(seconds int64) error {
	if _, err := fmt.Fprintln(a.w, indent+a.f.Duration(FormatDuration(seconds))); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
