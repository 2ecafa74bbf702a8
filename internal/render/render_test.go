package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/doclint/internal/schema"
	"github.com/dshills/doclint/internal/schema/validate"
)

func sampleReport() *schema.Report {
	return &schema.Report{
		Template: "n8n-prompt",
		Verdicts: []schema.RuleVerdict{
			{Label: "INPUT", Kind: schema.KindRequired, Verdict: schema.VerdictPass},
			{Label: "PROCESSING", Kind: schema.KindRequired, Verdict: schema.VerdictFail, Explanation: schema.ExplanationMissing},
			{Label: "CONSTRAINTS", Kind: schema.KindOptional, Verdict: schema.VerdictWarn, Explanation: schema.ExplanationOptionalMissing},
		},
		Status: schema.StatusNonConformant,
		Score:  0.25,
	}
}

func TestNewRenderer_UnknownFormat(t *testing.T) {
	_, err := NewRenderer("xml")
	if err == nil {
		t.Error("expected error for unknown format, got nil")
	}
}

func TestMachine_ValidJSON(t *testing.T) {
	r, err := NewRenderer("machine")
	if err != nil {
		t.Fatalf("NewRenderer machine: %v", err)
	}
	out, err := r.Render(sampleReport())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !json.Valid(out) {
		t.Fatalf("machine renderer produced invalid JSON: %s", out)
	}
}

// Parsing a machine rendering must reproduce a report equal in all fields.
func TestMachine_RoundTrip(t *testing.T) {
	r, err := NewRenderer("machine")
	if err != nil {
		t.Fatal(err)
	}
	original := sampleReport()
	out, err := r.Render(original)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	parsed, err := validate.Parse(out)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff(original, parsed); diff != "" {
		t.Errorf("round-trip mismatch (-original +parsed):\n%s", diff)
	}
}

// Machine field order is part of the format: template, verdicts, status, score.
func TestMachine_FieldOrder(t *testing.T) {
	r, _ := NewRenderer("machine")
	out, err := r.Render(sampleReport())
	if err != nil {
		t.Fatal(err)
	}
	s := string(out)
	positions := []int{
		strings.Index(s, `"template"`),
		strings.Index(s, `"verdicts"`),
		strings.Index(s, `"status"`),
		strings.Index(s, `"score"`),
	}
	for i, p := range positions {
		if p < 0 {
			t.Fatalf("field %d missing in output: %s", i, s)
		}
		if i > 0 && positions[i-1] > p {
			t.Errorf("field order violated at index %d: %s", i, s)
		}
	}
}

func TestHuman_VerdictLinesAndSummary(t *testing.T) {
	r, err := NewRenderer("human")
	if err != nil {
		t.Fatalf("NewRenderer human: %v", err)
	}
	out, err := r.Render(sampleReport())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	s := string(out)

	for _, want := range []string{
		"INPUT:",
		"PROCESSING:",
		"section missing",
		"optional section missing",
		"non-conformant",
		"score 0.25",
		"1 fail",
		"1 warn",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("human output missing %q:\n%s", want, s)
		}
	}
}

func TestHuman_ConformantSummary(t *testing.T) {
	report := &schema.Report{
		Template: "design-checklist",
		Verdicts: []schema.RuleVerdict{
			{Label: "COLORS", Kind: schema.KindRequired, Verdict: schema.VerdictPass},
		},
		Status: schema.StatusConformant,
		Score:  1.0,
	}
	r, _ := NewRenderer("human")
	out, err := r.Render(report)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "conformant (design-checklist): score 1.00, 0 fail, 0 warn") {
		t.Errorf("summary line malformed:\n%s", out)
	}
}
