package shell

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var ErrUnknownDialect = errors.New("invalid shell type")

// Dialect selects the syntax every generated line is written in.
type Dialect uint8

const (
	Posix Dialect = iota
	Fish
	PowerShell
)

// Stream selects which output streams Silence discards.
type Stream uint8

const (
	Stdout Stream = 1 << iota
	Stderr
)

// Segment is a run of text printed in one abstract color ("" for none).
type Segment struct {
	Text  string
	Color string
}

type syntax struct {
	name            string
	venvScript      string
	setEnv          func(key, value string) string
	unsetEnv        func(key string) string
	cd              func(path string) string
	echo            func(segs []Segment) string
	ifCommandExists func(cmd, then string) string
	sourceFile      func(path string) string
	fileExists      func(path, then string) string
	silence         func(cmd string, s Stream) string
	escape          func(value string) string
}

var syntaxes = [...]syntax{
	Posix:      posixSyntax,
	Fish:       fishSyntax,
	PowerShell: powershellSyntax,
}

var safeValue = regexp.MustCompile(`^[a-zA-Z0-9_/.-]+$`)

func Dialects() []Dialect {
	return []Dialect{Posix, Fish, PowerShell}
}

func Parse(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sh", "bash", "zsh":
		return Posix, nil
	case "fish":
		return Fish, nil
	case "pwsh", "powershell":
		return PowerShell, nil
	}
	return 0, fmt.Errorf("%w %q. Must be one of: sh, fish, pwsh", ErrUnknownDialect, name)
}

func (d Dialect) String() string {
	if int(d) >= len(syntaxes) {
		return fmt.Sprintf("Dialect(%d)", uint8(d))
	}
	return syntaxes[d].name
}

func (d *Dialect) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Dialect) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d Dialect) syntax() syntax {
	if int(d) >= len(syntaxes) {
		return syntaxes[Posix]
	}
	return syntaxes[d]
}

func (d Dialect) SetEnv(key, value string) string { return d.syntax().setEnv(key, value) }

func (d Dialect) UnsetEnv(key string) string { return d.syntax().unsetEnv(key) }

func (d Dialect) Cd(path string) string { return d.syntax().cd(path) }

func (d Dialect) Echo(text string) string {
	return d.syntax().echo([]Segment{{Text: text}})
}

func (d Dialect) EchoColored(text, color string) string {
	return d.syntax().echo([]Segment{{Text: text, Color: color}})
}

// EchoSegments prints all segments on a single line.
func (d Dialect) EchoSegments(segs ...Segment) string {
	if len(segs) == 0 {
		segs = []Segment{{}}
	}
	return d.syntax().echo(segs)
}

// IfCommandExists runs then only when cmd resolves to a command or function.
func (d Dialect) IfCommandExists(cmd, then string) string {
	return d.syntax().ifCommandExists(cmd, then)
}

func (d Dialect) SourceFile(path string) string { return d.syntax().sourceFile(path) }

// FileExists runs then only when path is a regular file.
func (d Dialect) FileExists(path, then string) string {
	return d.syntax().fileExists(path, then)
}

// Silence discards the selected output streams of cmd.
func (d Dialect) Silence(cmd string, s Stream) string {
	if s == 0 {
		return cmd
	}
	return d.syntax().silence(cmd, s)
}

// Escape quotes value so the dialect reads it back as exactly value.
func (d Dialect) Escape(value string) string { return d.syntax().escape(value) }

// VenvScript is the activation script of a virtualenv for this dialect.
func (d Dialect) VenvScript(venv string) string {
	return strings.TrimRight(venv, "/") + "/" + d.syntax().venvScript
}
