package main

import (
	"switchcraft/internal/emit"
	"switchcraft/internal/shell"
)

type ResetCmd struct {
	Shell shell.Dialect `arg:"" help:"Target shell: sh, fish or pwsh"`
}

func (cmd *ResetCmd) Run(g *Globals) error {
	cat, err := g.Catalog()
	if err != nil {
		return err
	}
	return writeLine(g.Out, emit.New(cmd.Shell, g.Registry).EmitReset(cat.ProjectsDir()))
}
