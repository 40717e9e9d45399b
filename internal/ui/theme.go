package ui

import (
	"context"
	"errors"
	"io"

	"switchcraft/internal/shell"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func FormTheme() *huh.Theme {
	t := huh.ThemeBase()
	red := lipgloss.Color("1")
	cyan := lipgloss.Color("6")
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.SetString("✗").Foreground(red)
	t.Blurred.ErrorMessage = t.Blurred.ErrorMessage.SetString("✗").Foreground(red)
	t.Focused.Title = t.Focused.Title.Foreground(cyan).Bold(true)
	t.Focused.SelectSelector = t.Focused.SelectSelector.SetString("> ").Foreground(cyan)
	return t
}

var shellDescriptions = map[shell.Dialect]string{
	shell.Posix:      "sh · bash · zsh",
	shell.Fish:       "fish",
	shell.PowerShell: "pwsh · powershell",
}

func shellOptions() []huh.Option[shell.Dialect] {
	opts := make([]huh.Option[shell.Dialect], 0, len(shell.Dialects()))
	for _, d := range shell.Dialects() {
		opts = append(opts, huh.NewOption(shellDescriptions[d], d))
	}
	return opts
}

// ChooseShell asks which dialect to generate the shell integration for.
func ChooseShell(ctx context.Context, out io.Writer) (shell.Dialect, error) {
	d := shell.Posix
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[shell.Dialect]().
				Title("Shell").
				Description("Which shell should the integration target?").
				Options(shellOptions()...).
				Value(&d),
		),
	).WithTheme(FormTheme()).WithOutput(out)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return d, ErrCancelled
		}
		return d, err
	}
	return d, nil
}
