package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/five82/pint/internal/install"
	"github.com/five82/pint/internal/logtail"
	"github.com/five82/pint/internal/report"
	"github.com/five82/pint/internal/ui"
)

const (
	noCurrentMessage = "No packages are currently being installed."
	noMatchesMessage = "No matches to average."
)

// Options is the fully resolved configuration for one run.
type Options struct {
	LogPath    string
	Repository string   // comma-separated repository filter; empty matches any
	Terms      []string // package filter terms
	ShowDate   bool
	Mean       bool
	UseRegex   bool
	Current    bool
	Live       bool // with Current, show an interactive elapsed clock
	NoColour   bool

	Stdout io.Writer        // nil uses os.Stdout
	Now    func() time.Time // nil uses time.Now
}

// Run produces one report on opts.Stdout.
func Run(ctx context.Context, opts Options) error {
	out := opts.Stdout
	if out == nil {
		out = os.Stdout
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	formatter := report.NewFormatter(out, !opts.NoColour)
	agg := report.New(out, formatter, report.Options{ShowDate: opts.ShowDate, Mean: opts.Mean})

	if opts.Current {
		return runCurrent(ctx, opts, out, formatter, agg, now)
	}

	text, err := logtail.Load(opts.LogPath)
	if err != nil {
		return err
	}
	slog.Debug("log loaded", "path", opts.LogPath, "bytes", len(text))

	pattern, err := install.Build(install.FilterSpec{
		Terms:      opts.Terms,
		Repository: opts.Repository,
		UseRegex:   opts.UseRegex,
	})
	if err != nil {
		return err
	}
	slog.Debug("pattern built", "terms", opts.Terms, "repository", opts.Repository, "regex", opts.UseRegex)

	scanner := install.NewScanner(text, pattern)
	for scanner.Scan() {
		if err := agg.Add(scanner.Event()); err != nil {
			return err
		}
	}
	slog.Debug("scan complete", "events", agg.Count())

	if err := agg.Finish(); err != nil {
		if errors.Is(err, report.ErrNoMatches) {
			_, err = fmt.Fprintln(out, noMatchesMessage)
		}
		return err
	}
	return nil
}

func runCurrent(ctx context.Context, opts Options, out io.Writer, formatter report.Formatter, agg *report.Aggregator, now func() time.Time) error {
	line, err := logtail.LastLine(opts.LogPath)
	if err != nil {
		return err
	}

	current, ok := install.ProbeLine(line)
	if !ok {
		slog.Debug("no install in progress", "last_line", line)
		_, err := fmt.Fprintln(out, noCurrentMessage)
		return err
	}

	if opts.Live {
		styles := ui.DefaultStyles()
		if opts.NoColour {
			styles = ui.PlainStyles()
		}
		return ui.Run(ctx, ui.Options{
			Current:   current,
			Formatter: formatter,
			Styles:    styles,
			ShowDate:  opts.ShowDate,
			Now:       now,
		})
	}
	return agg.Current(current, now())
}
