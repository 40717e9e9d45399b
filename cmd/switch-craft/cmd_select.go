package main

import (
	"switchcraft/internal/emit"
	"switchcraft/internal/shell"
)

type SelectCmd struct {
	Shell shell.Dialect `arg:"" help:"Target shell: sh, fish or pwsh"`
	NoEnv bool          `help:"Skip environment setup, only change directory"`
}

func (cmd *SelectCmd) Run(g *Globals) error {
	cfg, err := g.Config()
	if err != nil {
		return err
	}
	em := emit.New(cmd.Shell, g.Registry)

	p, err := pickProject(g, cfg, em, cmd.NoEnv)
	if err != nil {
		return err
	}
	return emitProject(g, cfg.Catalog, em, p, cmd.NoEnv)
}
