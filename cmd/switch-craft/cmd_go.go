package main

import (
	"switchcraft/internal/catalog"
	"switchcraft/internal/emit"
	"switchcraft/internal/shell"
)

type GoCmd struct {
	Shell shell.Dialect `arg:"" help:"Target shell: sh, fish or pwsh"`
	Name  string        `arg:"" optional:"" help:"Project name (interactive if omitted)"`
	NoEnv bool          `help:"Skip environment setup, only change directory"`
}

func (cmd *GoCmd) Run(g *Globals) error {
	cfg, err := g.Config()
	if err != nil {
		return err
	}
	em := emit.New(cmd.Shell, g.Registry)

	var p catalog.Project
	if cmd.Name == "" {
		p, err = pickProject(g, cfg, em, cmd.NoEnv)
	} else {
		p, err = cfg.Catalog.Find(cmd.Name)
	}
	if err != nil {
		return err
	}
	return emitProject(g, cfg.Catalog, em, p, cmd.NoEnv)
}
