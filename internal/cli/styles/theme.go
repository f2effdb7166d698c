// Package styles provides the lipgloss styles and small reusable TUI
// components of the dockyard CLI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/application/port"
)

// Theme holds lipgloss colors and styles.
type Theme struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color

	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	Button       lipgloss.Style
	ButtonActive lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	// Layout tree
	Splitter lipgloss.Style
	Area     lipgloss.Style
	Tab      lipgloss.Style
	TabOpen  lipgloss.Style
	Branch   lipgloss.Style

	Input        lipgloss.Style
	InputFocused lipgloss.Style

	Box lipgloss.Style
}

// NewTheme builds a dark theme whose accent follows the dock frame color.
func NewTheme(style port.DockStyle) *Theme {
	accent := lipgloss.Color("#3daee9")
	if len(style.FrameColor) >= 7 {
		accent = lipgloss.Color(style.FrameColor[:7])
	}

	t := &Theme{
		Background: lipgloss.Color("#232629"),
		Surface:    lipgloss.Color("#31363b"),
		Text:       lipgloss.Color("#eff0f1"),
		Muted:      lipgloss.Color("#7f8c8d"),
		Accent:     accent,
		Border:     lipgloss.Color("#4d5257"),
		Error:      lipgloss.Color("#ef4444"),
		Warning:    lipgloss.Color("#f59e0b"),
		Success:    lipgloss.Color("#27ae60"),
	}
	t.buildStyles()
	return t
}

func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	t.Normal = lipgloss.NewStyle().Foreground(t.Text)
	t.Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	t.Highlight = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)
	t.WarningStyle = lipgloss.NewStyle().Foreground(t.Warning)
	t.SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)

	t.Button = lipgloss.NewStyle().
		Foreground(t.Muted).
		Background(t.Surface).
		Padding(0, 2)
	t.ButtonActive = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 2).
		Bold(true)

	t.Badge = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 1)
	t.BadgeMuted = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface).
		Padding(0, 1)

	t.Splitter = lipgloss.NewStyle().Foreground(t.Accent)
	t.Area = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	t.Tab = lipgloss.NewStyle().Foreground(t.Muted)
	t.TabOpen = lipgloss.NewStyle().Foreground(t.Text).Underline(true)
	t.Branch = lipgloss.NewStyle().Foreground(t.Border)

	t.Input = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
	t.InputFocused = t.Input.BorderForeground(t.Accent)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)
}
