package ui

import (
	"strings"

	"switchcraft/internal/shell"

	"github.com/charmbracelet/lipgloss"
)

// rainbowHex mirrors shell.RainbowColors.
var rainbowHex = [len(shell.RainbowColors)]string{
	"#FF3232",
	"#FF9600",
	"#FFFF00",
	"#32FF64",
	"#00FFFF",
	"#5096FF",
	"#B464FF",
	"#FF64FF",
}

type styles struct {
	r       *lipgloss.Renderer
	dim     lipgloss.Style
	bold    lipgloss.Style
	prompt  lipgloss.Style
	heading lipgloss.Style
	preview lipgloss.Style
	status  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	cyan := lipgloss.Color("#00FFFF")
	return styles{
		r:       r,
		dim:     r.NewStyle().Faint(true),
		bold:    r.NewStyle().Bold(true),
		prompt:  r.NewStyle().Foreground(cyan),
		heading: r.NewStyle().Bold(true).Foreground(cyan),
		preview: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cyan).
			Padding(0, 1).
			MarginTop(1),
		status: r.NewStyle().Foreground(lipgloss.Color("#32FF64")),
	}
}

func (s styles) fg(hex string) lipgloss.Style {
	return s.r.NewStyle().Foreground(lipgloss.Color(hex))
}

// rainbow colors each rune by its distance from the center, shifted by offset.
func (s styles) rainbow(text string, offset int) string {
	runes := []rune(text)
	var b strings.Builder
	for i, r := range runes {
		b.WriteString(s.fg(rainbowHex[shell.RainbowIndex(i, len(runes), offset)]).Render(string(r)))
	}
	return b.String()
}
