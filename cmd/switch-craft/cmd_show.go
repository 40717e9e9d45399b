package main

import (
	"fmt"

	"switchcraft/internal/catalog"
	"switchcraft/internal/config"
	"switchcraft/internal/integration"
	"switchcraft/internal/render"
)

type ShowCmd struct {
	Name string `arg:"" help:"Project name"`
}

var shownKeys = []integration.Key{
	integration.Kubernetes,
	integration.GCloud,
	integration.AWS,
	integration.Azure,
	integration.Venv,
}

func (cmd *ShowCmd) Run(g *Globals) error {
	cfg, err := g.Config()
	if err != nil {
		return err
	}
	p, err := cfg.Catalog.Find(cmd.Name)
	if err != nil {
		return err
	}

	path := cfg.Catalog.ResolvePath(p)
	view := render.ProjectView{
		Name:   p.Name,
		Path:   config.ShortenPath(path, cfg.Home),
		Status: catalog.CheckPath(path),
		Env:    p.Env,
	}
	for _, key := range shownKeys {
		v := p.Value(key)
		if v == "" {
			continue
		}
		desc := g.Registry.Descriptor(key)
		view.Integrations = append(view.Integrations, render.IntegrationRow{
			Label: desc.Label,
			Icon:  cfg.Icon(key),
			Color: desc.Color,
			Value: v,
		})
	}

	fmt.Fprint(g.Out, g.Render.RenderProject(view))
	return nil
}
