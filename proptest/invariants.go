package proptest

import (
	"strings"

	"switchcraft/internal/catalog"
	"switchcraft/internal/emit"
	"switchcraft/internal/integration"

	"pgregory.net/rapid"
)

func verifyCatalogInvariants(t *rapid.T, cat *catalog.Catalog) {
	t.Helper()
	list := cat.List()
	names := cat.Names()

	if cat.Count() != len(list) {
		t.Fatalf("Count()=%d but len(List())=%d", cat.Count(), len(list))
	}
	if len(names) != len(list) {
		t.Fatalf("len(Names())=%d but len(List())=%d", len(names), len(list))
	}

	seen := make(map[string]bool, len(list))
	for i, p := range list {
		if names[i] != p.Name {
			t.Fatalf("Names()[%d]=%q but List()[%d].Name=%q", i, names[i], i, p.Name)
		}
		key := strings.ToLower(p.Name)
		if seen[key] {
			t.Fatalf("duplicate name %q in List()", p.Name)
		}
		seen[key] = true
	}
}

// verifyPlan checks the ordering rules every switch obeys.
func verifyPlan(t *rapid.T, req emit.Request, steps []emit.Step) {
	t.Helper()
	if len(steps) == 0 {
		t.Fatalf("plan is empty")
	}

	last := steps[len(steps)-1]
	if last.Op != emit.OpActivate || last.Key != integration.Path || last.Value != req.Path {
		t.Fatalf("last step is %v %s %q, want cd to %q", last.Op, last.Key, last.Value, req.Path)
	}
	for _, s := range steps[:len(steps)-1] {
		if s.Key == integration.Path {
			t.Fatalf("cd emitted before the last step")
		}
	}

	if req.NoEnv {
		if len(steps) != 1 {
			t.Fatalf("no-env plan has %d steps, want only cd", len(steps))
		}
		return
	}

	if first := steps[0]; first.Op != emit.OpDeactivate || first.Key != integration.Venv {
		t.Fatalf("first step is %v %s, want venv deactivate", first.Op, first.Key)
	}

	lastEnv, venvAt := -1, -1
	for i, s := range steps {
		switch {
		case s.Op == emit.OpSetEnv:
			lastEnv = i
		case s.Op == emit.OpActivate && s.Key == integration.Venv:
			venvAt = i
		}
	}
	if (venvAt >= 0) != (req.Venv != "") {
		t.Fatalf("venv activated=%v but request venv=%q", venvAt >= 0, req.Venv)
	}
	if venvAt >= 0 && venvAt < lastEnv {
		t.Fatalf("venv activated at %d before env var at %d", venvAt, lastEnv)
	}
}
