package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"switchcraft/internal/catalog"
	"switchcraft/internal/config"
	"switchcraft/internal/integration"
	"switchcraft/internal/render"
	"switchcraft/internal/shell"
	"switchcraft/internal/ui"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	g    *Globals
	out  *bytes.Buffer
	err  *bytes.Buffer
	work string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	work := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(work, "api"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(work, "web"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(work, "notes"), nil, 0o644))

	cfg := fmt.Sprintf(`{
  "projectsDir": %q,
  "icons": {"k8s": "K"},
  "projects": [
    {"name": "api", "path": "api", "kubectx": "prod", "env": {"FOO": "bar"}},
    {"name": "web", "path": "web", "venv": ".venv"},
    {"name": "ghost", "path": "ghost"},
    {"name": "notes", "path": "notes"}
  ]
}`, work)
	configPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(cfg), 0o644))

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return &testEnv{
		g: &Globals{
			Ctx:        context.Background(),
			ConfigPath: configPath,
			Out:        out,
			Err:        errOut,
			Registry:   integration.NewRegistry(),
			Render:     render.NewLipglossRenderer(out, 80),
			IsTerminal: func() bool { return false },
			Pick: func(context.Context, io.Writer, ui.Options) (catalog.Project, error) {
				return catalog.Project{}, errors.New("unexpected pick")
			},
			ChooseShell: func(context.Context, io.Writer) (shell.Dialect, error) {
				return shell.Posix, errors.New("unexpected prompt")
			},
		},
		out:  out,
		err:  errOut,
		work: work,
	}
}

// pickReturns makes the selector choose the named project.
func (e *testEnv) pickReturns(name string, seen *ui.Options) {
	e.g.IsTerminal = func() bool { return true }
	e.g.Pick = func(_ context.Context, _ io.Writer, opts ui.Options) (catalog.Project, error) {
		if seen != nil {
			*seen = opts
		}
		for _, p := range opts.Projects {
			if p.Name == name {
				return p, nil
			}
		}
		return catalog.Project{}, ui.ErrCancelled
	}
}

func TestGoCmd_Run(t *testing.T) {
	t.Run("emits script for named project", func(t *testing.T) {
		e := newTestEnv(t)

		err := (&GoCmd{Shell: shell.Posix, Name: "api"}).Run(e.g)

		require.NoError(t, err)
		out := e.out.String()
		assert.Contains(t, out, "kubectx prod >/dev/null")
		assert.Contains(t, out, "export FOO=bar")
		assert.True(t, strings.HasSuffix(out, shell.Posix.Cd(filepath.Join(e.work, "api"))+"\n"))
	})

	t.Run("matches names fuzzily", func(t *testing.T) {
		e := newTestEnv(t)

		err := (&GoCmd{Shell: shell.Fish, Name: "WE"}).Run(e.g)

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(e.out.String(), shell.Fish.Cd(filepath.Join(e.work, "web"))+"\n"))
	})

	t.Run("no env only changes directory", func(t *testing.T) {
		e := newTestEnv(t)

		err := (&GoCmd{Shell: shell.Posix, Name: "api", NoEnv: true}).Run(e.g)

		require.NoError(t, err)
		assert.NotContains(t, e.out.String(), "kubectx")
		assert.NotContains(t, e.out.String(), "FOO")
	})

	t.Run("unknown project lists available names", func(t *testing.T) {
		e := newTestEnv(t)

		err := (&GoCmd{Shell: shell.Posix, Name: "zzz"}).Run(e.g)

		require.ErrorIs(t, err, catalog.ErrNotFound)
		assert.Contains(t, err.Error(), "Available: api, web, ghost, notes")
		assert.Empty(t, e.out.String())
	})

	t.Run("missing directory writes nothing", func(t *testing.T) {
		e := newTestEnv(t)

		err := (&GoCmd{Shell: shell.Posix, Name: "ghost"}).Run(e.g)

		assert.ErrorIs(t, err, catalog.ErrPathNotExist)
		assert.Empty(t, e.out.String())
	})

	t.Run("file instead of directory writes nothing", func(t *testing.T) {
		e := newTestEnv(t)

		err := (&GoCmd{Shell: shell.Posix, Name: "notes"}).Run(e.g)

		assert.ErrorIs(t, err, catalog.ErrNotDirectory)
		assert.Empty(t, e.out.String())
	})

	t.Run("interactive without a terminal fails", func(t *testing.T) {
		e := newTestEnv(t)

		err := (&GoCmd{Shell: shell.Posix}).Run(e.g)

		assert.ErrorIs(t, err, ErrNoTerminal)
		assert.Contains(t, err.Error(), "switch-craft list")
	})

	t.Run("interactive emits for the picked project", func(t *testing.T) {
		e := newTestEnv(t)
		var opts ui.Options
		e.pickReturns("web", &opts)

		err := (&GoCmd{Shell: shell.Posix}).Run(e.g)

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(e.out.String(), shell.Posix.Cd(filepath.Join(e.work, "web"))+"\n"))
		assert.Len(t, opts.Projects, 4)
		assert.Equal(t, "K", opts.Icons[integration.Kubernetes])
		assert.Equal(t, []string{
			"kubectx prod",
			"export FOO=bar",
			"cd " + filepath.Join(e.work, "api"),
		}, opts.Preview(opts.Projects[0]))
	})

	t.Run("cancelled selection writes nothing", func(t *testing.T) {
		e := newTestEnv(t)
		e.pickReturns("nobody", nil)

		err := (&GoCmd{Shell: shell.Posix}).Run(e.g)

		assert.ErrorIs(t, err, ui.ErrCancelled)
		assert.Empty(t, e.out.String())
	})

	t.Run("missing config explains how to create one", func(t *testing.T) {
		e := newTestEnv(t)
		e.g.ConfigPath = filepath.Join(t.TempDir(), "missing.json")

		err := (&GoCmd{Shell: shell.Posix, Name: "api"}).Run(e.g)

		assert.ErrorIs(t, err, config.ErrConfigNotFound)
	})
}

func TestSelectCmd_Run(t *testing.T) {
	t.Run("always opens the selector", func(t *testing.T) {
		e := newTestEnv(t)
		var opts ui.Options
		e.pickReturns("api", &opts)

		err := (&SelectCmd{Shell: shell.PowerShell, NoEnv: true}).Run(e.g)

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(e.out.String(), shell.PowerShell.Cd(filepath.Join(e.work, "api"))+"\n"))
		assert.Equal(t, []string{"cd " + filepath.Join(e.work, "api")}, opts.Preview(opts.Projects[0]))
	})

	t.Run("requires a terminal", func(t *testing.T) {
		e := newTestEnv(t)

		err := (&SelectCmd{Shell: shell.Posix}).Run(e.g)

		assert.ErrorIs(t, err, ErrNoTerminal)
	})
}

func TestResetCmd_Run(t *testing.T) {
	e := newTestEnv(t)

	err := (&ResetCmd{Shell: shell.Fish}).Run(e.g)

	require.NoError(t, err)
	out := e.out.String()
	assert.Contains(t, out, "RESET")
	assert.Contains(t, out, "kubectx -u")
	assert.True(t, strings.HasSuffix(out, shell.Fish.Cd(e.work)+"\n"))
}

func TestPathCmd_Run(t *testing.T) {
	t.Run("prints the resolved path", func(t *testing.T) {
		e := newTestEnv(t)

		err := (&PathCmd{Name: "api"}).Run(e.g)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(e.work, "api")+"\n", e.out.String())
	})

	t.Run("validates the directory", func(t *testing.T) {
		e := newTestEnv(t)

		err := (&PathCmd{Name: "ghost"}).Run(e.g)

		assert.ErrorIs(t, err, catalog.ErrPathNotExist)
		assert.Empty(t, e.out.String())
	})

	t.Run("picks interactively without a name", func(t *testing.T) {
		e := newTestEnv(t)
		e.pickReturns("web", nil)

		err := (&PathCmd{}).Run(e.g)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(e.work, "web")+"\n", e.out.String())
	})
}

func TestListCmd_Run(t *testing.T) {
	t.Run("shows path status", func(t *testing.T) {
		e := newTestEnv(t)

		err := (&ListCmd{}).Run(e.g)

		require.NoError(t, err)
		assert.Equal(t, "api\nweb\nghost (path not found)\nnotes (not a directory)\n", e.out.String())
	})

	t.Run("names only", func(t *testing.T) {
		e := newTestEnv(t)

		err := (&ListCmd{Names: true}).Run(e.g)

		require.NoError(t, err)
		assert.Equal(t, "api\nweb\nghost\nnotes\n", e.out.String())
	})
}

func TestShowCmd_Run(t *testing.T) {
	t.Run("shows integrations", func(t *testing.T) {
		e := newTestEnv(t)

		err := (&ShowCmd{Name: "api"}).Run(e.g)

		require.NoError(t, err)
		out := e.out.String()
		assert.Contains(t, out, "api\n")
		assert.Contains(t, out, "K k8s")
		assert.Contains(t, out, "prod")
		assert.Contains(t, out, "$FOO")
	})

	t.Run("unknown project", func(t *testing.T) {
		e := newTestEnv(t)

		err := (&ShowCmd{Name: "zzz"}).Run(e.g)

		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})
}

func TestInitCmd_Run(t *testing.T) {
	t.Run("prints functions for the named shell", func(t *testing.T) {
		e := newTestEnv(t)

		err := (&InitCmd{Shell: "fish"}).Run(e.g)

		require.NoError(t, err)
		assert.Contains(t, e.out.String(), "function sc; switch-craft go fish $argv | source; end")
	})

	t.Run("accepts shell aliases", func(t *testing.T) {
		e := newTestEnv(t)

		err := (&InitCmd{Shell: "zsh"}).Run(e.g)

		require.NoError(t, err)
		assert.Contains(t, e.out.String(), `sc() { eval "$(switch-craft go sh "$@")"; }`)
	})

	t.Run("rejects unknown shells", func(t *testing.T) {
		e := newTestEnv(t)

		err := (&InitCmd{Shell: "tcsh"}).Run(e.g)

		assert.ErrorIs(t, err, shell.ErrUnknownDialect)
	})

	t.Run("needs a shell without a terminal", func(t *testing.T) {
		e := newTestEnv(t)

		err := (&InitCmd{}).Run(e.g)

		assert.ErrorIs(t, err, errMissingShell)
	})

	t.Run("asks for the shell on a terminal", func(t *testing.T) {
		e := newTestEnv(t)
		e.g.IsTerminal = func() bool { return true }
		e.g.ChooseShell = func(context.Context, io.Writer) (shell.Dialect, error) {
			return shell.PowerShell, nil
		}

		err := (&InitCmd{}).Run(e.g)

		require.NoError(t, err)
		assert.Contains(t, e.out.String(), "function sc { Invoke-Expression")
	})

	t.Run("works without a config file", func(t *testing.T) {
		e := newTestEnv(t)
		e.g.ConfigPath = filepath.Join(t.TempDir(), "missing.json")

		assert.NoError(t, (&InitCmd{Shell: "sh"}).Run(e.g))
	})
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, 0},
		{"cancelled selection", ui.ErrCancelled, 130},
		{"wrapped cancellation", fmt.Errorf("picking: %w", ui.ErrCancelled), 130},
		{"lookup failure", &catalog.NotFoundError{Query: "x"}, 1},
		{"missing terminal", ErrNoTerminal, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func newParser(t *testing.T, cli *CLI) *kong.Kong {
	t.Helper()
	parser, err := kong.New(cli,
		kong.Name("switch-craft"),
		kong.Exit(func(int) {}),
		kong.BindTo(context.Background(), (*context.Context)(nil)),
	)
	require.NoError(t, err)
	return parser
}

func TestCLIParsing(t *testing.T) {
	t.Run("shell and flags", func(t *testing.T) {
		cli := CLI{}

		_, err := newParser(t, &cli).Parse([]string{"go", "pwsh", "api", "--no-env"})

		require.NoError(t, err)
		assert.Equal(t, shell.PowerShell, cli.Go.Shell)
		assert.Equal(t, "api", cli.Go.Name)
		assert.True(t, cli.Go.NoEnv)
	})

	t.Run("rejects an unknown shell", func(t *testing.T) {
		cli := CLI{}

		_, err := newParser(t, &cli).Parse([]string{"reset", "tcsh"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Must be one of: sh, fish, pwsh")
	})

	t.Run("config flag", func(t *testing.T) {
		cli := CLI{}

		_, err := newParser(t, &cli).Parse([]string{"-c", "/tmp/custom.json", "list"})

		require.NoError(t, err)
		assert.Equal(t, "/tmp/custom.json", cli.Config)
	})

	t.Run("config from environment", func(t *testing.T) {
		t.Setenv("SWITCH_CRAFT_CONFIG", "/tmp/env.json")
		t.Setenv("SWITCH_CRAFT_PROJECTS_DIR", "/tmp/work")
		cli := CLI{}

		_, err := newParser(t, &cli).Parse([]string{"list"})

		require.NoError(t, err)
		assert.Equal(t, "/tmp/env.json", cli.Config)
		assert.Equal(t, "/tmp/work", cli.ProjectsDir)
	})

	t.Run("list alias", func(t *testing.T) {
		cli := CLI{}

		ctx, err := newParser(t, &cli).Parse([]string{"ls", "-n"})

		require.NoError(t, err)
		assert.Equal(t, "list", ctx.Command())
		assert.True(t, cli.List.Names)
	})
}
