package shell

import "strings"

var fishColors = map[string]string{
	"bold":    "--bold",
	"dim":     "brblack",
	"red":     "red",
	"orange":  "yellow",
	"yellow":  "yellow",
	"green":   "green",
	"cyan":    "cyan",
	"blue":    "blue",
	"purple":  "magenta",
	"magenta": "magenta",
	"white":   "white",
}

var fishSyntax = syntax{
	name:       "fish",
	venvScript: "bin/activate.fish",
	setEnv: func(key, value string) string {
		return "set -gx " + key + " " + fishEscape(value)
	},
	unsetEnv: func(key string) string {
		return "set -e " + key + " 2>/dev/null"
	},
	cd: func(path string) string {
		return "cd " + fishEscape(path)
	},
	echo: fishEcho,
	// type -q also sees functions such as a virtualenv's deactivate.
	ifCommandExists: func(cmd, then string) string {
		return "type -q " + fishEscape(cmd) + "; and " + then
	},
	sourceFile: func(path string) string {
		return "source " + fishEscape(path)
	},
	fileExists: func(path, then string) string {
		return "test -f " + fishEscape(path) + "; and " + then
	},
	silence: redirectSilence,
	escape:  fishEscape,
}

func fishEscape(value string) string {
	if safeValue.MatchString(value) {
		return value
	}
	value = strings.ReplaceAll(value, `\`, `\\`)
	return "'" + strings.ReplaceAll(value, "'", `\'`) + "'"
}

func fishColor(name string) string {
	if c, ok := fishColors[name]; ok {
		return c
	}
	return "normal"
}

func fishEcho(segs []Segment) string {
	var parts []string
	colored := false
	for i, s := range segs {
		if s.Color != "" {
			parts = append(parts, "set_color "+fishColor(s.Color))
			colored = true
		} else if colored {
			parts = append(parts, "set_color normal")
		}
		if i == len(segs)-1 {
			parts = append(parts, `printf '%s\n' `+fishEscape(s.Text))
		} else {
			parts = append(parts, "printf '%s' "+fishEscape(s.Text))
		}
	}
	if colored {
		parts = append(parts, "set_color normal")
	}
	return strings.Join(parts, "; ")
}
