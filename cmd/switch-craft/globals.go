package main

import (
	"context"
	"io"

	"switchcraft/internal/catalog"
	"switchcraft/internal/config"
	"switchcraft/internal/integration"
	"switchcraft/internal/render"
	"switchcraft/internal/shell"
	"switchcraft/internal/ui"
)

type Globals struct {
	Ctx         context.Context
	ConfigPath  string
	ProjectsDir string

	// Out receives scripts and listings; Err carries the interactive surface.
	Out io.Writer
	Err io.Writer

	Registry    *integration.Registry
	Render      render.Renderer
	IsTerminal  func() bool
	Pick        func(ctx context.Context, out io.Writer, opts ui.Options) (catalog.Project, error)
	ChooseShell func(ctx context.Context, out io.Writer) (shell.Dialect, error)

	cfg *config.Config
}

// Config loads the configuration on first use so that commands such as init
// work without one.
func (g *Globals) Config() (*config.Config, error) {
	if g.cfg == nil {
		cfg, err := config.Load(g.ConfigPath, config.Options{ProjectsDir: g.ProjectsDir})
		if err != nil {
			return nil, err
		}
		g.cfg = cfg
	}
	return g.cfg, nil
}

func (g *Globals) Catalog() (*catalog.Catalog, error) {
	cfg, err := g.Config()
	if err != nil {
		return nil, err
	}
	return cfg.Catalog, nil
}
