package render

import (
	"io"
	"os"
	"strings"

	"switchcraft/internal/catalog"
	"switchcraft/internal/integration"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

const minLabelWidth = 6

type LipglossRenderer struct {
	width int
	r     *lipgloss.Renderer

	nameStyle   lipgloss.Style
	labelStyle  lipgloss.Style
	valueStyle  lipgloss.Style
	statusStyle lipgloss.Style
}

func NewLipglossRenderer(w io.Writer, width int) *LipglossRenderer {
	r := lipgloss.NewRenderer(w)
	return &LipglossRenderer{
		width:       width,
		r:           r,
		nameStyle:   r.NewStyle().Bold(true),
		labelStyle:  r.NewStyle().Foreground(lipgloss.Color(integration.FallbackColor)),
		valueStyle:  r.NewStyle().Faint(true),
		statusStyle: r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

func NewLipglossRendererAuto(w io.Writer) *LipglossRenderer {
	width := 80
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(f.Fd()); err == nil && tw > 0 {
			width = tw
		}
	}
	return NewLipglossRenderer(w, width)
}

func (r *LipglossRenderer) RenderProjectList(view ProjectListView) string {
	if view.IsEmpty() {
		return "No projects configured.\n"
	}

	var sb strings.Builder
	for _, item := range view.Items {
		sb.WriteString(r.nameStyle.Render(item.Name))
		sb.WriteString(r.status(item.Status))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (r *LipglossRenderer) RenderProject(view ProjectView) string {
	type line struct {
		label string
		style lipgloss.Style
		value string
	}

	lines := []line{{label: "path", style: r.labelStyle, value: view.Path + r.status(view.Status)}}
	for _, row := range view.Integrations {
		label := row.Label
		if row.Icon != "" {
			label = row.Icon + " " + label
		}
		lines = append(lines, line{
			label: label,
			style: r.r.NewStyle().Foreground(lipgloss.Color(row.Color)),
			value: row.Value,
		})
	}
	for _, env := range view.Env {
		lines = append(lines, line{label: "$" + env.Key, style: r.labelStyle, value: env.Value})
	}

	width := minLabelWidth
	for _, l := range lines {
		width = max(width, lipgloss.Width(l.label))
	}

	clip := r.r.NewStyle().MaxWidth(r.width)
	var sb strings.Builder
	sb.WriteString(r.nameStyle.Render(view.Name))
	sb.WriteString("\n")
	for _, l := range lines {
		pad := strings.Repeat(" ", width-lipgloss.Width(l.label))
		sb.WriteString(clip.Render("  " + l.style.Render(l.label) + pad + "  " + r.valueStyle.Render(l.value)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (r *LipglossRenderer) status(s catalog.PathStatus) string {
	if s == catalog.PathOK {
		return ""
	}
	return r.statusStyle.Render(" (" + s.String() + ")")
}
