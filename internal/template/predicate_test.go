package template

import (
	"strings"
	"testing"
)

// Predicates must be total over any body, including the empty string.
func TestPredicates_TotalOverEmptyBody(t *testing.T) {
	pattern, err := MatchPattern(`x`)
	if err != nil {
		t.Fatal(err)
	}
	preds := []Predicate{NonEmpty(), MinLength(10), MinBullets(2), pattern}
	for _, p := range preds {
		t.Run(p.Describe(), func(t *testing.T) {
			ok, explanation := p.Check("")
			if ok {
				t.Errorf("empty body unexpectedly satisfies %s", p.Describe())
			}
			if explanation == "" {
				t.Error("failing predicate has empty explanation")
			}
		})
	}
}

func TestNonEmpty(t *testing.T) {
	p := NonEmpty()
	if ok, _ := p.Check("   \n\t "); ok {
		t.Error("whitespace-only body satisfies NonEmpty")
	}
	if ok, _ := p.Check("x"); !ok {
		t.Error("non-empty body fails NonEmpty")
	}
}

func TestMinLength(t *testing.T) {
	p := MinLength(5)
	if ok, _ := p.Check("abcde"); !ok {
		t.Error("exact length fails")
	}
	ok, explanation := p.Check("ab")
	if ok {
		t.Error("short body passes")
	}
	if !strings.Contains(explanation, "found 2") {
		t.Errorf("explanation missing observed count: %q", explanation)
	}
}

func TestMinBullets_Explanation(t *testing.T) {
	p := MinBullets(3)
	ok, explanation := p.Check("- one")
	if ok {
		t.Error("one bullet satisfies MinBullets(3)")
	}
	if !strings.Contains(explanation, "expected ≥3 bullet items, found 1") {
		t.Errorf("explanation = %q", explanation)
	}
	if ok, _ := p.Check("- a\n- b\n- c"); !ok {
		t.Error("three bullets fail MinBullets(3)")
	}
}

func TestMatchPattern_BadExpression(t *testing.T) {
	if _, err := MatchPattern(`(`); err == nil {
		t.Error("expected error for invalid pattern, got nil")
	}
}

func TestMatchPattern_CaseInsensitive(t *testing.T) {
	p, err := MatchPattern(`(?i)\benv\b|environment`)
	if err != nil {
		t.Fatal(err)
	}
	if ok, _ := p.Check("Secrets live in .ENV files"); !ok {
		t.Error("ENV mention not matched")
	}
	if ok, _ := p.Check("keep secrets in code"); ok {
		t.Error("unrelated body matched")
	}
}
