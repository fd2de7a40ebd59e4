package ui

import "github.com/charmbracelet/lipgloss"

// Adaptive colors for light and dark terminals.
var (
	colorDim  = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorCyan = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// Styles holds the Lipgloss styles used by the live view.
type Styles struct {
	Spinner lipgloss.Style
	Hint    lipgloss.Style
}

// DefaultStyles returns the styles for a colour terminal.
func DefaultStyles() Styles {
	return Styles{
		Spinner: lipgloss.NewStyle().Foreground(colorCyan),
		Hint:    lipgloss.NewStyle().Foreground(colorDim),
	}
}

// PlainStyles returns styles that render text unchanged.
func PlainStyles() Styles {
	return Styles{
		Spinner: lipgloss.NewStyle(),
		Hint:    lipgloss.NewStyle(),
	}
}
