package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"switchcraft/internal/catalog"
	"switchcraft/internal/integration"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T, names ...string) *catalog.Catalog {
	t.Helper()
	projects := make([]catalog.Project, len(names))
	for i, n := range names {
		projects[i] = catalog.NewProject(n, n)
	}
	cat, err := catalog.New("/work", "/home/me", projects)
	require.NoError(t, err)
	return cat
}

func TestNew(t *testing.T) {
	t.Run("keeps configuration order", func(t *testing.T) {
		cat := newTestCatalog(t, "web", "api", "payments")

		assert.Equal(t, []string{"web", "api", "payments"}, cat.Names())
		assert.Equal(t, 3, cat.Count())
		assert.Equal(t, "/work", cat.ProjectsDir())
	})

	t.Run("rejects names differing only by case", func(t *testing.T) {
		projects := []catalog.Project{catalog.NewProject("API", "a"), catalog.NewProject("api", "b")}

		_, err := catalog.New("/work", "/home/me", projects)

		assert.ErrorIs(t, err, catalog.ErrDuplicateName)
	})

	t.Run("rejects blank names", func(t *testing.T) {
		_, err := catalog.New("/work", "/home/me", []catalog.Project{catalog.NewProject("  ", "a")})

		assert.ErrorIs(t, err, catalog.ErrEmptyName)
	})

	t.Run("list returns a copy", func(t *testing.T) {
		cat := newTestCatalog(t, "web")

		list := cat.List()
		list[0].Name = "changed"

		assert.Equal(t, []string{"web"}, cat.Names())
	})
}

func TestCatalog_Find(t *testing.T) {
	cat := newTestCatalog(t, "my-api-service", "api", "payments")

	t.Run("exact match ignores case", func(t *testing.T) {
		p, err := cat.Find("API")

		require.NoError(t, err)
		assert.Equal(t, "api", p.Name)
	})

	t.Run("exact match wins over earlier fuzzy match", func(t *testing.T) {
		p, err := cat.Find("api")

		require.NoError(t, err)
		assert.Equal(t, "api", p.Name)
	})

	t.Run("falls back to best fuzzy match", func(t *testing.T) {
		p, err := cat.Find("serv")

		require.NoError(t, err)
		assert.Equal(t, "my-api-service", p.Name)
	})

	t.Run("tolerates typos", func(t *testing.T) {
		typos := newTestCatalog(t, "api", "frontend")

		p, err := typos.Find("apu")
		require.NoError(t, err)
		assert.Equal(t, "api", p.Name)

		p, err = typos.Find("frnotend")
		require.NoError(t, err)
		assert.Equal(t, "frontend", p.Name)
	})

	t.Run("reports available names when nothing matches", func(t *testing.T) {
		_, err := cat.Find("zzz")

		require.ErrorIs(t, err, catalog.ErrNotFound)
		var nf *catalog.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "zzz", nf.Query)
		assert.Equal(t, `project "zzz" not found. Available: my-api-service, api, payments`, err.Error())
	})
}

func TestCatalog_Search(t *testing.T) {
	cat := newTestCatalog(t, "web", "api", "my-api-service")

	t.Run("empty query returns everything", func(t *testing.T) {
		assert.Len(t, cat.Search(""), 3)
	})

	t.Run("ranks exact substring at start first", func(t *testing.T) {
		got := cat.Search("api")

		require.Len(t, got, 2)
		assert.Equal(t, "api", got[0].Name)
		assert.Equal(t, "my-api-service", got[1].Name)
	})
}

func TestProject_With(t *testing.T) {
	t.Run("returns a modified copy", func(t *testing.T) {
		p := catalog.NewProject("api", "api")

		updated := p.With(integration.Kubernetes, "prod").With(integration.AWS, "dev")

		assert.Empty(t, p.Kubectx)
		assert.Equal(t, "prod", updated.Value(integration.Kubernetes))
		assert.Equal(t, "dev", updated.Value(integration.AWS))
		assert.Equal(t, "api", updated.Value(integration.Path))
	})

	t.Run("env is not shared between copies", func(t *testing.T) {
		p := catalog.NewProject("api", "api").WithEnv(catalog.EnvVar{Key: "A", Value: "1"})

		a := p.WithEnv(catalog.EnvVar{Key: "B", Value: "2"})
		b := p.WithEnv(catalog.EnvVar{Key: "C", Value: "3"})

		assert.Len(t, p.Env, 1)
		assert.Equal(t, "B", a.Env[1].Key)
		assert.Equal(t, "C", b.Env[1].Key)
	})
}

func TestCatalog_ResolvePath(t *testing.T) {
	cat := newTestCatalog(t)

	tests := []struct {
		name string
		path string
		want string
	}{
		{"relative joins projects dir", "api", "/work/api"},
		{"nested relative", "team/api/", "/work/team/api"},
		{"absolute is cleaned", "/srv//api/../web", "/srv/web"},
		{"bare tilde is home", "~", "/home/me"},
		{"tilde prefix expands", "~/code/api", "/home/me/code/api"},
		{"tilde user is not expanded", "~bob/api", "/work/~bob/api"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cat.ResolvePath(catalog.NewProject("p", tt.path)))
		})
	}
}

func TestCatalog_ResolveVenv(t *testing.T) {
	cat := newTestCatalog(t)
	p := catalog.NewProject("api", "api")

	t.Run("empty stays empty", func(t *testing.T) {
		assert.Empty(t, cat.ResolveVenv(p))
	})

	t.Run("relative joins project directory", func(t *testing.T) {
		assert.Equal(t, "/work/api/.venv", cat.ResolveVenv(p.With(integration.Venv, ".venv")))
	})

	t.Run("home relative expands", func(t *testing.T) {
		assert.Equal(t, "/home/me/envs/api", cat.ResolveVenv(p.With(integration.Venv, "~/envs/api")))
	})

	t.Run("absolute is kept", func(t *testing.T) {
		assert.Equal(t, "/opt/venv", cat.ResolveVenv(p.With(integration.Venv, "/opt/venv/")))
	})
}

func TestValidateDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	t.Run("accepts a directory", func(t *testing.T) {
		assert.NoError(t, catalog.ValidateDir("api", dir))
		assert.Equal(t, catalog.PathOK, catalog.CheckPath(dir))
	})

	t.Run("rejects a missing path", func(t *testing.T) {
		missing := filepath.Join(dir, "missing")

		err := catalog.ValidateDir("api", missing)

		assert.ErrorIs(t, err, catalog.ErrPathNotExist)
		assert.Equal(t, "path not found", catalog.CheckPath(missing).String())
	})

	t.Run("rejects a file", func(t *testing.T) {
		err := catalog.ValidateDir("api", file)

		assert.ErrorIs(t, err, catalog.ErrNotDirectory)
		assert.Equal(t, "not a directory", catalog.CheckPath(file).String())
	})
}
