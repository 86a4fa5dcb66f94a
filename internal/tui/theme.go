package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/luxlabs/lux/internal/settings"
)

// Theme is the resolved style set for one TUI session.
type Theme struct {
	Title    lipgloss.Style
	Tab      lipgloss.Style
	TabOn    lipgloss.Style
	Card     lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Done     lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
}

// NewTheme builds the styles for a theme name. Unknown names fall back to
// the default theme rather than failing; styling is cosmetic, so the
// fallback is logged at debug and the shell keeps running.
func NewTheme(name string, log zerolog.Logger) Theme {
	if !settings.ValidTheme(name) {
		log.Debug().Str("theme", name).Msg("unknown theme, falling back to default")
		name = settings.DefaultTheme
	}

	primary := lipgloss.Color("#7C3AED")
	fg := lipgloss.Color("#F9FAFB")
	muted := lipgloss.Color("#6B7280")
	if name == settings.ThemeLight {
		primary = lipgloss.Color("#5B21B6")
		fg = lipgloss.Color("#111827")
		muted = lipgloss.Color("#9CA3AF")
	}

	return Theme{
		Title: lipgloss.NewStyle().Bold(true).Foreground(primary).Padding(0, 1),
		Tab:   lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		TabOn: lipgloss.NewStyle().Bold(true).Foreground(fg).Background(primary).Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		Item:     lipgloss.NewStyle().Padding(0, 2),
		Selected: lipgloss.NewStyle().Background(primary).Foreground(fg).Bold(true).Padding(0, 2),
		Done:     lipgloss.NewStyle().Foreground(muted).Strikethrough(true).Padding(0, 2),
		Muted:    lipgloss.NewStyle().Foreground(muted),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),
	}
}
