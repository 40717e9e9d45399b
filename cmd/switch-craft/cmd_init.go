package main

import (
	"errors"
	"fmt"

	"switchcraft/internal/shell"
)

var errMissingShell = errors.New("missing shell type. Must be one of: sh, fish, pwsh")

type InitCmd struct {
	Shell string `arg:"" optional:"" help:"Target shell: sh, fish or pwsh (asks if omitted)"`
}

func (cmd *InitCmd) Run(g *Globals) error {
	d, err := cmd.dialect(g)
	if err != nil {
		return err
	}
	fmt.Fprint(g.Out, integrationScripts[d])
	return nil
}

func (cmd *InitCmd) dialect(g *Globals) (shell.Dialect, error) {
	if cmd.Shell != "" {
		return shell.Parse(cmd.Shell)
	}
	if !g.IsTerminal() {
		return shell.Posix, errMissingShell
	}
	return g.ChooseShell(g.Ctx, g.Err)
}

var integrationScripts = map[shell.Dialect]string{
	shell.Posix: `# switch-craft shell integration
# Add to ~/.bashrc or ~/.zshrc: eval "$(switch-craft init sh)"
sc() { eval "$(switch-craft go sh "$@")"; }
scx() { eval "$(switch-craft select sh "$@")"; }
scc() { eval "$(switch-craft reset sh)"; }
alias scl="switch-craft list"
`,
	shell.Fish: `# switch-craft shell integration
# Add to ~/.config/fish/config.fish: switch-craft init fish | source
function sc; switch-craft go fish $argv | source; end
function scx; switch-craft select fish $argv | source; end
function scc; switch-craft reset fish | source; end
alias scl="switch-craft list"
`,
	shell.PowerShell: `# switch-craft shell integration
# Add to $PROFILE: Invoke-Expression (& switch-craft init pwsh | Out-String)
function sc { Invoke-Expression (& switch-craft go pwsh @args | Out-String) }
function scx { Invoke-Expression (& switch-craft select pwsh @args | Out-String) }
function scc { Invoke-Expression (& switch-craft reset pwsh | Out-String) }
function scl { & switch-craft list @args }
`,
}
