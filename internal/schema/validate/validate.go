// Package validate parses machine-format reports back into schema.Report
// values and checks their structure. It is the read side of the machine
// format's round-trip guarantee.
package validate

import (
	"encoding/json"
	"fmt"

	"github.com/dshills/doclint/internal/schema"
)

// Parse unmarshals a machine-format report and validates its structure.
func Parse(raw []byte) (*schema.Report, error) {
	var report schema.Report
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, fmt.Errorf("JSON parse failed: %w", err)
	}

	if err := validateReport(&report); err != nil {
		return nil, err
	}

	return &report, nil
}

func validateReport(r *schema.Report) error {
	if r.Template == "" {
		return fmt.Errorf("template id is required")
	}
	if !schema.IsValidStatus(r.Status) {
		return fmt.Errorf("invalid status %q (must be conformant or non-conformant)", r.Status)
	}
	if r.Score < 0 || r.Score > 1 {
		return fmt.Errorf("score %g out of range [0,1]", r.Score)
	}
	for i, v := range r.Verdicts {
		if err := validateVerdict(v, i); err != nil {
			return err
		}
	}
	return nil
}

func validateVerdict(v schema.RuleVerdict, idx int) error {
	prefix := fmt.Sprintf("verdict[%d]", idx)

	if v.Label == "" {
		return fmt.Errorf("%s: label is required", prefix)
	}
	if !schema.IsValidKind(v.Kind) {
		return fmt.Errorf("%s: invalid kind %q (must be required or optional)", prefix, v.Kind)
	}
	if !schema.IsValidVerdict(v.Verdict) {
		return fmt.Errorf("%s: invalid verdict %q (must be pass, fail, or warn)", prefix, v.Verdict)
	}
	// A warn verdict can only come from an optional rule, and a fail only
	// from a required one; pass is valid for both.
	switch v.Verdict {
	case schema.VerdictFail:
		if v.Kind != schema.KindRequired {
			return fmt.Errorf("%s: fail verdict on %s rule", prefix, v.Kind)
		}
	case schema.VerdictWarn:
		if v.Kind != schema.KindOptional {
			return fmt.Errorf("%s: warn verdict on %s rule", prefix, v.Kind)
		}
	}
	return nil
}
