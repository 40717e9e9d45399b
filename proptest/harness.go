package proptest

import (
	"os"
	"path/filepath"
	"testing"

	"switchcraft/internal/catalog"

	"pgregory.net/rapid"
)

const (
	minProjects        = 0
	maxProjects        = 20
	typicalMinProjects = 1
	typicalMaxProjects = 10
)

type Harness struct {
	T   *rapid.T
	Dir string
}

// GenProject draws a project and creates its directory under h.Dir.
func (h *Harness) GenProject(name string) catalog.Project {
	p := projectGen(name).Draw(h.T, "project")
	if err := os.MkdirAll(filepath.Join(h.Dir, p.Path), 0o755); err != nil {
		h.T.Fatalf("failed to create project dir: %v", err)
	}
	return p
}

type CatalogHarness struct {
	Harness
	Catalog  *catalog.Catalog
	Projects []catalog.Project
}

func RunWithCatalog(t *testing.T, minCount, maxCount int, fn func(h *CatalogHarness)) {
	RunBasic(t, func(base *Harness) {
		names := distinctNamesGen(minCount, maxCount).Draw(base.T, "names")
		projects := make([]catalog.Project, len(names))
		for i, name := range names {
			projects[i] = base.GenProject(name)
		}

		cat, err := catalog.New(base.Dir, "/home/tester", projects)
		if err != nil {
			base.T.Fatalf("failed to create catalog: %v", err)
		}

		fn(&CatalogHarness{Harness: *base, Catalog: cat, Projects: projects})
	})
}

func RunBasic(t *testing.T, fn func(h *Harness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		iterDir := filepath.Join(tempDir, iterDirGen.Draw(rt, "iterDir"))
		if err := os.MkdirAll(iterDir, 0o755); err != nil {
			rt.Fatalf("failed to create iter dir: %v", err)
		}

		harness := &Harness{
			T:   rt,
			Dir: iterDir,
		}

		fn(harness)
	})
}
