package shell

import "strings"

var powershellColors = map[string]string{
	"bold":    "White",
	"dim":     "DarkGray",
	"red":     "Red",
	"orange":  "DarkYellow",
	"yellow":  "Yellow",
	"green":   "Green",
	"cyan":    "Cyan",
	"blue":    "Blue",
	"purple":  "DarkMagenta",
	"magenta": "Magenta",
	"white":   "White",
}

// PowerShell treats the typographic single quotes as quote characters too.
var powershellQuotes = strings.NewReplacer(
	"'", "''",
	"‘", "‘‘",
	"’", "’’",
	"‚", "‚‚",
	"‛", "‛‛",
)

var powershellSyntax = syntax{
	name:       "pwsh",
	venvScript: "Scripts/Activate.ps1",
	setEnv: func(key, value string) string {
		return "$env:" + key + " = " + powershellEscape(value)
	},
	unsetEnv: func(key string) string {
		return "Remove-Item Env:" + key + " -ErrorAction SilentlyContinue"
	},
	cd: func(path string) string {
		return "Set-Location -LiteralPath " + powershellEscape(path)
	},
	echo: powershellEcho,
	ifCommandExists: func(cmd, then string) string {
		return "if (Get-Command " + powershellEscape(cmd) + " -ErrorAction SilentlyContinue) { " + then + " }"
	},
	sourceFile: func(path string) string {
		return ". " + powershellEscape(path)
	},
	fileExists: func(path, then string) string {
		return "if (Test-Path -LiteralPath " + powershellEscape(path) + ") { " + then + " }"
	},
	silence: func(cmd string, s Stream) string {
		switch {
		case s&Stdout != 0 && s&Stderr != 0:
			return cmd + " *> $null"
		case s&Stderr != 0:
			return cmd + " 2> $null"
		default:
			return cmd + " > $null"
		}
	},
	escape: powershellEscape,
}

// powershellEscape always quotes: a bare word in expression mode would be run as a command.
func powershellEscape(value string) string {
	return "'" + powershellQuotes.Replace(value) + "'"
}

func powershellColor(name string) string {
	if c, ok := powershellColors[name]; ok {
		return c
	}
	return "White"
}

func powershellEcho(segs []Segment) string {
	parts := make([]string, 0, len(segs))
	for i, s := range segs {
		part := "Write-Host " + powershellEscape(s.Text)
		if s.Color != "" {
			part += " -ForegroundColor " + powershellColor(s.Color)
		}
		if i < len(segs)-1 {
			part += " -NoNewline"
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "; ")
}
