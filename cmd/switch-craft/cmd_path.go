package main

import (
	"switchcraft/internal/catalog"
	"switchcraft/internal/emit"
	"switchcraft/internal/shell"
)

type PathCmd struct {
	Name string `arg:"" optional:"" help:"Project name (interactive if omitted)"`
}

func (cmd *PathCmd) Run(g *Globals) error {
	cfg, err := g.Config()
	if err != nil {
		return err
	}

	var p catalog.Project
	if cmd.Name == "" {
		p, err = pickProject(g, cfg, emit.New(shell.Posix, g.Registry), true)
	} else {
		p, err = cfg.Catalog.Find(cmd.Name)
	}
	if err != nil {
		return err
	}

	path := cfg.Catalog.ResolvePath(p)
	if err := catalog.ValidateDir(p.Name, path); err != nil {
		return err
	}
	return writeLine(g.Out, path)
}
