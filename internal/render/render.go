package render

import "switchcraft/internal/catalog"

type Renderer interface {
	RenderProjectList(view ProjectListView) string
	RenderProject(view ProjectView) string
}

type ProjectListView struct {
	Items []ProjectListItem
}

type ProjectListItem struct {
	Name   string
	Status catalog.PathStatus
}

func (v ProjectListView) IsEmpty() bool {
	return len(v.Items) == 0
}

// ProjectView is the detail page of one project. Path is already resolved.
type ProjectView struct {
	Name         string
	Path         string
	Status       catalog.PathStatus
	Integrations []IntegrationRow
	Env          []catalog.EnvVar
}

type IntegrationRow struct {
	Label string
	Icon  string
	Color string
	Value string
}
