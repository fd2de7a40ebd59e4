package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/pint/internal/install"
	"github.com/five82/pint/internal/report"
)

// Options configures the live view.
type Options struct {
	Current   install.Current
	Formatter report.Formatter
	Styles    Styles
	ShowDate  bool
	Now       func() time.Time // nil uses time.Now
}

// Model shows a running install with an elapsed clock that updates every
// second. It reads only the clock; the log is never reopened.
type Model struct {
	current   install.Current
	formatter report.Formatter
	styles    Styles
	showDate  bool
	clock     func() time.Time

	spinner  spinner.Model
	now      time.Time
	quitting bool
}

// New creates the live view model.
func New(opts Options) Model {
	clock := opts.Now
	if clock == nil {
		clock = time.Now
	}
	formatter := opts.Formatter
	if formatter == nil {
		formatter = report.PlainFormatter{}
	}
	return Model{
		current:   opts.Current,
		formatter: formatter,
		styles:    opts.Styles,
		showDate:  opts.ShowDate,
		clock:     clock,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(opts.Styles.Spinner)),
		now:       clock(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tickCmd(time.Second))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tickMsg:
		m.now = m.clock()
		return m, tickCmd(time.Second)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	if !m.quitting {
		b.WriteString(m.spinner.View() + " installing\n")
	}
	_ = report.New(&b, m.formatter, report.Options{ShowDate: m.showDate}).Current(m.current, m.now)
	if !m.quitting {
		b.WriteString("\n" + m.styles.Hint.Render("q quit") + "\n")
	}
	return b.String()
}

// Elapsed returns the seconds shown by the current frame.
func (m Model) Elapsed() int64 {
	return m.current.Elapsed(m.now)
}

type tickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the live view and blocks until the user quits or ctx is done.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
