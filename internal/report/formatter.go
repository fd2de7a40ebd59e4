package report

import (
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pint/internal/atom"
)

// DateLayout is the layout used for install start dates.
const DateLayout = "2006-01-02 15:04:05 UTC"

// Formatter styles the pieces of a report line.
type Formatter interface {
	Name(ident string) string
	Date(t time.Time) string
	Duration(text string) string
}

// PlainFormatter leaves text unstyled.
type PlainFormatter struct{}

func (PlainFormatter) Name(ident string) string    { return ident }
func (PlainFormatter) Date(t time.Time) string     { return t.UTC().Format(DateLayout) }
func (PlainFormatter) Duration(text string) string { return text }

// ColouredFormatter highlights the package name, start date, and duration
// with terminal colours.
type ColouredFormatter struct {
	name     lipgloss.Style
	date     lipgloss.Style
	duration lipgloss.Style
}

// NewColouredFormatter builds a formatter whose styles render through r.
func NewColouredFormatter(r *lipgloss.Renderer) *ColouredFormatter {
	return &ColouredFormatter{
		name:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		date:     r.NewStyle().Foreground(lipgloss.Color("3")),
		duration: r.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

// NewFormatter picks the formatter for w.
func NewFormatter(w io.Writer, colour bool) Formatter {
	if !colour {
		return PlainFormatter{}
	}
	return NewColouredFormatter(lipgloss.NewRenderer(w))
}

// Name highlights only the package name; the version and repository stay
// plain. Identifiers that do not parse are shown unchanged.
func (f *ColouredFormatter) Name(ident string) string {
	a, err := atom.Parse(ident)
	if err != nil {
		return ident
	}
	return f.name.Render(a.Name()) + a.Suffix()
}

func (f *ColouredFormatter) Date(t time.Time) string {
	return f.date.Render(t.UTC().Format(DateLayout))
}

func (f *ColouredFormatter) Duration(text string) string {
	return f.duration.Render(text)
}
