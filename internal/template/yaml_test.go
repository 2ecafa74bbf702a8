package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/doclint/internal/schema"
)

func writeRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const validRules = `id: release-notes
synonyms:
  CHANGES: CHANGELOG
rules:
  - label: CHANGELOG
    kind: required
    predicate: {type: min-bullets, count: 2}
  - label: BREAKING
    kind: optional
    predicate: {type: pattern, pattern: "(?i)breaking"}
  - label: SUMMARY
    predicate: {type: min-length, length: 20}
`

func TestLoadFile_Valid(t *testing.T) {
	tmpl, err := LoadFile(writeRules(t, validRules))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if tmpl.ID != "release-notes" {
		t.Errorf("ID = %q", tmpl.ID)
	}
	rules := tmpl.Rules()
	if len(rules) != 3 {
		t.Fatalf("got %d rules, want 3", len(rules))
	}
	// kind defaults to required when omitted
	if rules[2].Kind != schema.KindRequired {
		t.Errorf("default kind = %q, want required", rules[2].Kind)
	}
	if got := tmpl.Canonical("CHANGES"); got != "CHANGELOG" {
		t.Errorf("Canonical(CHANGES) = %q, want CHANGELOG", got)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"missing file sentinel", ""}, // handled below
		{"no rules", "id: empty\n"},
		{"unknown predicate type", "id: t\nrules:\n  - label: A\n    predicate: {type: fuzzy}\n"},
		{"bad pattern", "id: t\nrules:\n  - label: A\n    predicate: {type: pattern, pattern: '('}\n"},
		{"bad kind", "id: t\nrules:\n  - label: A\n    kind: mandatory\n    predicate: {type: non-empty}\n"},
		{"min-bullets without count", "id: t\nrules:\n  - label: A\n    predicate: {type: min-bullets}\n"},
		{"missing id", "rules:\n  - label: A\n    predicate: {type: non-empty}\n"},
		{"not yaml", "{{{{"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.name == "missing file sentinel" {
				if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
					t.Error("expected error for missing file")
				}
				return
			}
			if _, err := LoadFile(writeRules(t, tc.content)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
