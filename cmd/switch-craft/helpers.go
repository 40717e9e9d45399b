package main

import (
	"errors"
	"fmt"
	"io"

	"switchcraft/internal/catalog"
	"switchcraft/internal/config"
	"switchcraft/internal/emit"
	"switchcraft/internal/ui"
)

var (
	ErrNoTerminal = errors.New(`interactive mode requires a TTY. Use "switch-craft list" to see projects`)
	ErrNoProjects = errors.New("no projects configured")
)

func newRequest(cat *catalog.Catalog, p catalog.Project, noEnv bool) emit.Request {
	return emit.Request{
		Project: p,
		Path:    cat.ResolvePath(p),
		Venv:    cat.ResolveVenv(p),
		NoEnv:   noEnv,
	}
}

// pickProject runs the selector. Nothing touches the filesystem while it is open.
func pickProject(g *Globals, cfg *config.Config, em *emit.Emitter, noEnv bool) (catalog.Project, error) {
	if !g.IsTerminal() {
		return catalog.Project{}, ErrNoTerminal
	}
	cat := cfg.Catalog
	if cat.Count() == 0 {
		return catalog.Project{}, ErrNoProjects
	}

	return g.Pick(g.Ctx, g.Err, ui.Options{
		Projects: cat.List(),
		Registry: g.Registry,
		Icons:    cfg.Icons,
		Preview: func(p catalog.Project) []string {
			return em.Preview(newRequest(cat, p, noEnv))
		},
	})
}

// emitProject validates the directory before anything is written, so a
// failure never leaves a partial script on stdout.
func emitProject(g *Globals, cat *catalog.Catalog, em *emit.Emitter, p catalog.Project, noEnv bool) error {
	req := newRequest(cat, p, noEnv)
	if err := catalog.ValidateDir(p.Name, req.Path); err != nil {
		return err
	}
	return writeLine(g.Out, em.Emit(req))
}

func writeLine(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s+"\n"); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
