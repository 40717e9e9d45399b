package shell

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const ansiReset = "\x1b[0m"

var posixColors = map[string]string{
	"reset":   ansiReset,
	"bold":    "\x1b[1m",
	"dim":     "\x1b[2m",
	"red":     "\x1b[38;2;255;50;50m",
	"orange":  "\x1b[38;2;255;150;0m",
	"yellow":  "\x1b[38;2;255;255;0m",
	"green":   "\x1b[38;2;50;255;100m",
	"cyan":    "\x1b[38;2;0;255;255m",
	"blue":    "\x1b[38;2;80;150;255m",
	"purple":  "\x1b[38;2;180;100;255m",
	"magenta": "\x1b[38;2;255;100;255m",
	"white":   "\x1b[97m",
}

var posixSyntax = syntax{
	name:       "sh",
	venvScript: "bin/activate",
	setEnv: func(key, value string) string {
		return "export " + key + "=" + posixEscape(value)
	},
	unsetEnv: func(key string) string {
		return "unset " + key
	},
	cd: func(path string) string {
		return "cd " + posixEscape(path)
	},
	echo: func(segs []Segment) string {
		var b strings.Builder
		for _, s := range segs {
			b.WriteString(ANSI(s.Color, s.Text))
		}
		return "printf '%s\\n' " + posixEscape(b.String())
	},
	ifCommandExists: func(cmd, then string) string {
		return "command -v " + posixEscape(cmd) + " >/dev/null 2>&1 && " + then
	},
	sourceFile: func(path string) string {
		return ". " + posixEscape(path)
	},
	fileExists: func(path, then string) string {
		return "[ -f " + posixEscape(path) + " ] && " + then
	},
	silence: redirectSilence,
	escape:  posixEscape,
}

func posixEscape(value string) string {
	if safeValue.MatchString(value) {
		return value
	}
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}

// redirectSilence is shared by posix shells and fish.
func redirectSilence(cmd string, s Stream) string {
	switch {
	case s&Stdout != 0 && s&Stderr != 0:
		return cmd + " >/dev/null 2>&1"
	case s&Stderr != 0:
		return cmd + " 2>/dev/null"
	default:
		return cmd + " >/dev/null"
	}
}

// ANSI wraps text in the 24-bit escape for an abstract color name.
// Unknown names leave text uncolored.
func ANSI(color, text string) string {
	code, ok := posixColors[color]
	if !ok || color == "reset" {
		return text
	}
	return code + text + ansiReset
}

// TrueColor wraps text in a 24-bit foreground escape built from a #RRGGBB hex color.
func TrueColor(hex, text string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return text
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s%s", r, g, b, text, ansiReset)
}

// RainbowColors is the palette cycled by Rainbow, from the center of the text outwards.
var RainbowColors = [...]string{"red", "orange", "yellow", "green", "cyan", "blue", "purple", "magenta"}

// RainbowIndex picks the palette entry for the rune at position i of n.
// Increasing offset makes the colors flow outwards.
func RainbowIndex(i, n, offset int) int {
	dist := i - n/2
	if dist < 0 {
		dist = -dist
	}
	k := len(RainbowColors)
	return ((dist-offset)%k + k) % k
}

// Rainbow colors every rune of text with raw escapes and resets once at the end.
func Rainbow(text string, offset int) string {
	runes := []rune(text)
	var b strings.Builder
	for i, r := range runes {
		b.WriteString(posixColors[RainbowColors[RainbowIndex(i, len(runes), offset)]])
		b.WriteRune(r)
	}
	b.WriteString(ansiReset)
	return b.String()
}
