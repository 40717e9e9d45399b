package proptest

import (
	"switchcraft/internal/catalog"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

func assertProjectsEqual(t *rapid.T, expected, actual []catalog.Project) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("projects mismatch (-want +got):\n%s", diff)
	}
}

func assertSameNames(t *rapid.T, expected, actual []catalog.Project) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Fatalf("length mismatch: expected %d, got %d", len(expected), len(actual))
	}
	for i := range expected {
		if expected[i].Name != actual[i].Name {
			t.Fatalf("position %d: expected %q, got %q", i, expected[i].Name, actual[i].Name)
		}
	}
}

func assertSubset(t *rapid.T, subset, superset []catalog.Project) {
	t.Helper()
	names := make(map[string]bool)
	for _, p := range superset {
		names[p.Name] = true
	}
	for _, p := range subset {
		if !names[p.Name] {
			t.Fatalf("subset contains %q not in superset", p.Name)
		}
	}
}
