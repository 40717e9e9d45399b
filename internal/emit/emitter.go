package emit

import (
	"strings"

	"switchcraft/internal/integration"
	"switchcraft/internal/shell"
)

type Emitter struct {
	dialect  shell.Dialect
	registry *integration.Registry
}

func New(d shell.Dialect, r *integration.Registry) *Emitter {
	return &Emitter{dialect: d, registry: r}
}

func (e *Emitter) Dialect() shell.Dialect {
	return e.dialect
}

// Emit returns the newline-joined script for req without a trailing newline.
func (e *Emitter) Emit(req Request) string {
	lines := e.banner(req.Project.Name)
	lines = append(lines, e.table(e.rows(req))...)
	lines = append(lines, e.Lines(Plan(req))...)
	return strings.Join(lines, "\n")
}

func (e *Emitter) EmitReset(dir string) string {
	d := e.dialect
	lines := []string{d.Echo(""), d.EchoColored("  RESET", "yellow"), d.Echo("")}
	lines = append(lines, e.Lines(ResetPlan(dir))...)
	return strings.Join(lines, "\n")
}

// Lines renders steps in order.
func (e *Emitter) Lines(steps []Step) []string {
	var lines []string
	for _, s := range steps {
		switch s.Op {
		case OpActivate:
			lines = append(lines, e.registry.Get(s.Key).Activate(e.dialect, s.Value)...)
		case OpDeactivate:
			lines = append(lines, e.registry.Get(s.Key).Deactivate(e.dialect)...)
		case OpSetEnv:
			lines = append(lines, e.dialect.SetEnv(s.Name, s.Value))
		}
	}
	return lines
}

// Preview describes what a switch would set. Deactivations are omitted.
func (e *Emitter) Preview(req Request) []string {
	var out []string
	for _, s := range Plan(req) {
		switch s.Op {
		case OpActivate:
			out = append(out, e.registry.Get(s.Key).Describe(e.dialect, s.Value))
		case OpSetEnv:
			out = append(out, "export "+s.Name+"="+s.Value)
		}
	}
	return out
}
