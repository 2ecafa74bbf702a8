package suggest

import (
	"strings"
	"testing"

	"github.com/dshills/doclint/internal/schema"
)

func report(verdicts ...schema.RuleVerdict) *schema.Report {
	return &schema.Report{Template: "n8n-prompt", Verdicts: verdicts}
}

func TestGenerateDiff_NothingMissing(t *testing.T) {
	r := report(
		schema.RuleVerdict{Label: "INPUT", Kind: schema.KindRequired, Verdict: schema.VerdictPass},
	)
	if got := GenerateDiff("INPUT:\nx\n", r); got != "" {
		t.Errorf("expected empty diff, got %q", got)
	}
}

func TestGenerateDiff_StubsMissingSections(t *testing.T) {
	r := report(
		schema.RuleVerdict{Label: "INPUT", Kind: schema.KindRequired, Verdict: schema.VerdictPass},
		schema.RuleVerdict{Label: "OUTPUT", Kind: schema.KindRequired, Verdict: schema.VerdictFail, Explanation: schema.ExplanationMissing},
	)
	diff := GenerateDiff("INPUT:\nManual trigger\n", r)
	if diff == "" {
		t.Fatal("expected a patch, got empty string")
	}
	if !strings.Contains(diff, "OUTPUT") {
		t.Errorf("patch does not mention the missing section:\n%s", diff)
	}
	if !strings.Contains(diff, "@@") {
		t.Errorf("output is not patch text:\n%s", diff)
	}
}

// Predicate failures on present sections get no stub; only absent sections do.
func TestGenerateDiff_PresentButFailingSectionNotStubbed(t *testing.T) {
	r := report(
		schema.RuleVerdict{
			Label: "ITEMS", Kind: schema.KindRequired, Verdict: schema.VerdictFail,
			Explanation: "expected ≥3 bullet items, found 1",
		},
	)
	if got := GenerateDiff("ITEMS:\n- one\n", r); got != "" {
		t.Errorf("expected empty diff for predicate failure, got:\n%s", got)
	}
}

func TestGenerateDiff_EmptyDocument(t *testing.T) {
	r := report(
		schema.RuleVerdict{Label: "INPUT", Kind: schema.KindRequired, Verdict: schema.VerdictFail, Explanation: schema.ExplanationMissing},
	)
	diff := GenerateDiff("", r)
	if diff == "" {
		t.Fatal("expected a patch for an empty document")
	}
	if !strings.Contains(diff, "INPUT") {
		t.Errorf("patch missing INPUT stub:\n%s", diff)
	}
}
