package emit

import (
	"strings"

	"switchcraft/internal/integration"
	"switchcraft/internal/shell"

	"github.com/mattn/go-runewidth"
)

const (
	minLabelWidth       = 6
	minValueWidth       = 10
	minSimpleLabelWidth = 8
)

type row struct {
	label string
	value string
	color string
}

var tableKeys = []integration.Key{
	integration.Kubernetes,
	integration.GCloud,
	integration.AWS,
	integration.Azure,
	integration.Venv,
}

func (e *Emitter) rows(req Request) []row {
	rows := []row{e.row(integration.Path, req.Path)}
	if req.NoEnv {
		return rows
	}
	for _, key := range tableKeys {
		if v := req.Project.Value(key); v != "" {
			rows = append(rows, e.row(key, v))
		}
	}
	for _, env := range req.Project.Env {
		rows = append(rows, row{label: "$" + env.Key, value: env.Value, color: integration.FallbackColor})
	}
	return rows
}

func (e *Emitter) row(key integration.Key, value string) row {
	desc := e.registry.Descriptor(key)
	return row{label: desc.Label, value: value, color: desc.Color}
}

func (e *Emitter) banner(name string) []string {
	d := e.dialect
	if d != shell.Posix {
		return []string{d.Echo(""), d.EchoColored("  Switched to "+name+"...", "cyan"), d.Echo("")}
	}

	title := "  " + shell.ANSI("dim", "Switched to") + " " +
		shell.ANSI("bold", shell.Rainbow(name, 0)) + shell.ANSI("dim", "...")
	return []string{d.Echo(""), d.Echo(title), d.Echo("")}
}

func (e *Emitter) table(rows []row) []string {
	if e.dialect == shell.Posix {
		return e.boxTable(rows)
	}
	return e.simpleTable(rows)
}

func (e *Emitter) boxTable(rows []row) []string {
	d := e.dialect
	maxLabel, maxValue := minLabelWidth, minValueWidth
	for _, r := range rows {
		maxLabel = max(maxLabel, runewidth.StringWidth(r.label))
		maxValue = max(maxValue, runewidth.StringWidth(r.value))
	}
	rule := strings.Repeat("─", maxLabel+maxValue+3)
	border := func(s string) string { return shell.ANSI("white", s) }

	lines := []string{d.Echo("  " + border("┌"+rule+"┐"))}
	for _, r := range rows {
		lines = append(lines, d.Echo("  "+border("│")+" "+
			shell.TrueColor(r.color, runewidth.FillRight(r.label, maxLabel))+" "+
			shell.ANSI("dim", runewidth.FillRight(r.value, maxValue))+" "+
			border("│")))
	}
	return append(lines, d.Echo("  "+border("└"+rule+"┘")), d.Echo(""))
}

func (e *Emitter) simpleTable(rows []row) []string {
	width := minSimpleLabelWidth
	for _, r := range rows {
		width = max(width, runewidth.StringWidth(r.label))
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, e.dialect.EchoSegments(
			shell.Segment{Text: "│ ", Color: "dim"},
			shell.Segment{Text: runewidth.FillRight(r.label, width), Color: "cyan"},
			shell.Segment{Text: " "},
			shell.Segment{Text: r.value, Color: "green"},
		))
	}
	return lines
}
