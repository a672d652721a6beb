package output

import (
	"io"

	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/password"
	"github.com/charmbracelet/lipgloss"
)

var (
	ColorSuccess = lipgloss.Color("#00ff00")
	ColorWarning = lipgloss.Color("#ffaa00")
	ColorError   = lipgloss.Color("#ff0000")
	ColorPrimary = lipgloss.Color("#00ffff")
	ColorMuted   = lipgloss.Color("#666666")
)

// Styles holds the lipgloss styles for one output stream.
type Styles struct {
	Title    lipgloss.Style
	Strong   lipgloss.Style
	Moderate lipgloss.Style
	Weak     lipgloss.Style
	Hint     lipgloss.Style
	Muted    lipgloss.Style
}

// NewStyles binds styles to a renderer for w, so colour is emitted only when w
// is a terminal that supports it.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Title:    r.NewStyle().Bold(true).Foreground(ColorPrimary),
		Strong:   r.NewStyle().Bold(true).Foreground(ColorSuccess),
		Moderate: r.NewStyle().Bold(true).Foreground(ColorWarning),
		Weak:     r.NewStyle().Bold(true).Foreground(ColorError),
		Hint:     r.NewStyle().Foreground(ColorWarning),
		Muted:    r.NewStyle().Foreground(ColorMuted),
	}
}

// ForStrength picks the style that colours a rating.
func (s Styles) ForStrength(st password.Strength) lipgloss.Style {
	switch st {
	case password.Strong:
		return s.Strong
	case password.Moderate:
		return s.Moderate
	default:
		return s.Weak
	}
}
