package proptest

import (
	"strings"
	"unicode"

	"switchcraft/internal/catalog"
	"switchcraft/internal/integration"
	"switchcraft/internal/shell"

	"pgregory.net/rapid"
)

var (
	iterDirGen    = rapid.StringMatching(`[a-z]{8}`)
	subdirGen     = rapid.StringMatching(`[a-z]{6}`)
	shortQueryGen = rapid.StringMatching(`[a-z]{1,5}`)
	queryGen      = rapid.StringMatching(`[a-z]{1,10}`)
	identifierGen = rapid.StringMatching(`[a-z][a-z0-9-]{0,15}`)
	envKeyGen     = rapid.StringMatching(`[A-Z_][A-Z0-9_]{0,10}`)
	dialectGen    = rapid.SampledFrom(shell.Dialects())
)

// optionalKeys are the integrations a project may configure besides its path.
var optionalKeys = []integration.Key{
	integration.Kubernetes,
	integration.GCloud,
	integration.AWS,
	integration.Azure,
	integration.Venv,
}

func validNameGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-zA-Z][a-zA-Z0-9_-]{0,30}`)
}

// distinctNamesGen draws names that stay unique when compared case-insensitively.
func distinctNamesGen(minLen, maxLen int) *rapid.Generator[[]string] {
	return rapid.SliceOfNDistinct(validNameGen(), minLen, maxLen, strings.ToLower)
}

// textGen produces printable text including quotes, backslashes and
// non-ASCII characters.
func textGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.StringOf(rapid.RuneFrom([]rune{'\'', '"', '\\', '$', '`', ' ', '‘', '’', '‚', '‛', 'a', 'é', '!', ';'})),
		rapid.StringOf(rapid.RuneFrom(nil, unicode.L, unicode.N, unicode.P, unicode.S, unicode.Zs)),
	)
}

func envGen() *rapid.Generator[[]catalog.EnvVar] {
	return rapid.Custom(func(t *rapid.T) []catalog.EnvVar {
		keys := rapid.SliceOfNDistinct(envKeyGen, 0, 5, rapid.ID[string]).Draw(t, "envKeys")
		vars := make([]catalog.EnvVar, len(keys))
		for i, k := range keys {
			vars[i] = catalog.EnvVar{Key: k, Value: textGen().Draw(t, "envValue")}
		}
		return vars
	})
}

// projectGen draws a project whose optional integrations are each set or left empty.
func projectGen(name string) *rapid.Generator[catalog.Project] {
	return rapid.Custom(func(t *rapid.T) catalog.Project {
		p := catalog.NewProject(name, subdirGen.Draw(t, "path"))
		for _, key := range optionalKeys {
			if rapid.Bool().Draw(t, "has"+string(key)) {
				p = p.With(key, identifierGen.Draw(t, string(key)))
			}
		}
		return p.WithEnv(envGen().Draw(t, "env")...)
	})
}

func malformedConfigGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just("{{{{"),
		rapid.Just("}}}}"),
		rapid.Just(`{"projectsDir": "/w", "projects": [`),
		rapid.Just(`{"projectsDir": "/w" "projects": []}`),
		rapid.Just(`{"projectsDir": "unmatched quote}`),
		rapid.Just("[\n["),
		rapid.Just(`{"projects": {unclosed`),
		rapid.Just(`{"projectsDir": "/w", "projects": [}]`),
		rapid.Just("{\"projectsDir\": \"/w\",\n\t\"projects\": [\n  - api\n]}"),
	)
}

func invalidConfigGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just(`[]`),
		rapid.Just(`"just a string"`),
		rapid.Just(`{"projects": []}`),
		rapid.Just(`{"projectsDir": 42, "projects": []}`),
		rapid.Just(`{"projectsDir": "/w"}`),
		rapid.Just(`{"projectsDir": "/w", "projects": {}}`),
		rapid.Just(`{"projectsDir": "/w", "projects": ["api"]}`),
		rapid.Just(`{"projectsDir": "/w", "projects": [{"path": "api"}]}`),
		rapid.Just(`{"projectsDir": "/w", "projects": [{"name": "api"}]}`),
		rapid.Just(`{"projectsDir": "/w", "projects": [{"name": "  ", "path": "api"}]}`),
		rapid.Just(`{"projectsDir": "/w", "projects": [{"name": "api", "path": "api", "kubectx": true}]}`),
		rapid.Just(`{"projectsDir": "/w", "projects": [{"name": "api", "path": "api", "env": {"A": 1}}]}`),
		rapid.Just(`{"projectsDir": "/w", "projects": [{"name": "api", "path": "api", "env": {"1A": "x"}}]}`),
		rapid.Just(`{"projectsDir": "/w", "projects": [{"name": "api", "path": "a"}, {"name": "API", "path": "b"}]}`),
	)
}
