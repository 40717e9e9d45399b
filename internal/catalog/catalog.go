package catalog

import (
	"errors"
	"fmt"
	"strings"

	"switchcraft/internal/fuzzy"
)

var (
	ErrNotFound      = errors.New("project not found")
	ErrDuplicateName = errors.New("duplicate project name")
)

// NotFoundError reports a lookup that matched neither exactly nor fuzzily.
type NotFoundError struct {
	Query     string
	Available []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("project %q not found. Available: %s", e.Query, strings.Join(e.Available, ", "))
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// Catalog is the ordered, read-only set of configured projects.
type Catalog struct {
	projectsDir string
	home        string
	projects    []Project
}

// New validates names and keeps the projects in configuration order.
// projectsDir must already be absolute; home is used to expand "~" paths.
func New(projectsDir, home string, projects []Project) (*Catalog, error) {
	seen := make(map[string]string, len(projects))
	for i, p := range projects {
		if err := ValidateName(p.Name); err != nil {
			return nil, fmt.Errorf("project at index %d: %w", i, err)
		}
		key := strings.ToLower(p.Name)
		if prev, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: %q and %q", ErrDuplicateName, prev, p.Name)
		}
		seen[key] = p.Name
	}

	return &Catalog{
		projectsDir: projectsDir,
		home:        home,
		projects:    append([]Project(nil), projects...),
	}, nil
}

func (c *Catalog) ProjectsDir() string {
	return c.projectsDir
}

func (c *Catalog) List() []Project {
	return append([]Project(nil), c.projects...)
}

func (c *Catalog) Names() []string {
	names := make([]string, len(c.projects))
	for i, p := range c.projects {
		names[i] = p.Name
	}
	return names
}

func (c *Catalog) Count() int {
	return len(c.projects)
}

// Find prefers a case-insensitive exact name match over the best fuzzy match.
func (c *Catalog) Find(name string) (Project, error) {
	for _, p := range c.projects {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}

	if best, ok := fuzzy.Best(name, c.Names()); ok {
		return c.projects[best.Index], nil
	}

	return Project{}, &NotFoundError{Query: name, Available: c.Names()}
}

// Search fuzzy-filters by name; an empty query returns every project in order.
func (c *Catalog) Search(query string) []Project {
	results := fuzzy.Search(query, c.Names())
	projects := make([]Project, len(results))
	for i, r := range results {
		projects[i] = c.projects[r.Index]
	}
	return projects
}
