package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"switchcraft/internal/config"
	"switchcraft/internal/integration"
	"switchcraft/internal/render"
	"switchcraft/internal/ui"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/x/term"
)

var version = "dev"

// exitCancelled is the conventional status of a process stopped by SIGINT.
const exitCancelled = 130

type CLI struct {
	Go     GoCmd     `cmd:"" help:"Switch to a project (interactive if no name)"`
	Reset  ResetCmd  `cmd:"" help:"Reset environment and go to the projects directory"`
	Path   PathCmd   `cmd:"" help:"Print project path (interactive if no name)"`
	List   ListCmd   `cmd:"" aliases:"ls" help:"List all configured projects"`
	Select SelectCmd `cmd:"" help:"Interactive fuzzy project selector"`
	Show   ShowCmd   `cmd:"" help:"Show project details"`
	Init   InitCmd   `cmd:"" help:"Print shell integration functions"`

	Config      string           `short:"c" env:"SWITCH_CRAFT_CONFIG" help:"Path to config file"`
	ProjectsDir string           `env:"SWITCH_CRAFT_PROJECTS_DIR" help:"Override base projects directory"`
	Version     kong.VersionFlag `short:"v" help:"Show version"`
}

func (c *CLI) AfterApply(ctx *kong.Context, runCtx context.Context) error {
	configPath := c.Config
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	globals := &Globals{
		Ctx:         runCtx,
		ConfigPath:  configPath,
		ProjectsDir: c.ProjectsDir,
		Out:         os.Stdout,
		Err:         os.Stderr,
		Registry:    integration.NewRegistry(),
		Render:      render.NewLipglossRendererAuto(os.Stdout),
		IsTerminal:  func() bool { return term.IsTerminal(os.Stdin.Fd()) },
		Pick:        ui.Pick,
		ChooseShell: ui.ChooseShell,
	}
	ctx.Bind(globals)
	return nil
}

// exitCode is the process status for the result of a command.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ui.ErrCancelled):
		return exitCancelled
	default:
		return 1
	}
}

func main() {
	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("switch-craft"),
		kong.Description("Cross-shell project switcher with environment management"),
		kong.UsageOnError(),
		kong.Vars{"version": "switch-craft " + version},
		kong.BindTo(runCtx, (*context.Context)(nil)),
	)
	err := ctx.Run()
	if code := exitCode(err); code == exitCancelled {
		stop()
		os.Exit(code)
	}
	ctx.FatalIfErrorf(err)
}
