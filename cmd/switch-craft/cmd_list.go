package main

import (
	"fmt"

	"switchcraft/internal/catalog"
	"switchcraft/internal/render"
)

type ListCmd struct {
	Names bool `short:"n" help:"Output only project names (one per line)"`
}

func (cmd *ListCmd) Run(g *Globals) error {
	cat, err := g.Catalog()
	if err != nil {
		return err
	}

	if cmd.Names {
		for _, name := range cat.Names() {
			fmt.Fprintln(g.Out, name)
		}
		return nil
	}

	view := render.ProjectListView{}
	for _, p := range cat.List() {
		view.Items = append(view.Items, render.ProjectListItem{
			Name:   p.Name,
			Status: catalog.CheckPath(cat.ResolvePath(p)),
		})
	}
	fmt.Fprint(g.Out, g.Render.RenderProjectList(view))
	return nil
}
