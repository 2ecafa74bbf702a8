package schema

// Report is the top-level evaluation result. Field declaration order fixes
// the machine serialization order: template, verdicts, status, score.
type Report struct {
	Template string        `json:"template"`
	Verdicts []RuleVerdict `json:"verdicts"`
	Status   Status        `json:"status"`
	Score    float64       `json:"score"`
}

// RuleVerdict is the outcome of checking one rule against one document.
type RuleVerdict struct {
	Label       string  `json:"label"`
	Kind        Kind    `json:"kind"`
	Verdict     Verdict `json:"verdict"`
	Explanation string  `json:"explanation"`
}

// Kind is the requirement level of a rule.
type Kind string

const (
	KindRequired Kind = "required"
	KindOptional Kind = "optional"
)

// IsValidKind reports whether k is a defined requirement kind.
func IsValidKind(k Kind) bool {
	return k == KindRequired || k == KindOptional
}

// Verdict is the per-rule outcome.
type Verdict string

const (
	VerdictPass Verdict = "pass"
	VerdictFail Verdict = "fail"
	VerdictWarn Verdict = "warn"
)

// IsValidVerdict reports whether v is a defined verdict.
func IsValidVerdict(v Verdict) bool {
	switch v {
	case VerdictPass, VerdictFail, VerdictWarn:
		return true
	}
	return false
}

// Status is the aggregate result over all verdicts.
type Status string

const (
	StatusConformant    Status = "conformant"
	StatusNonConformant Status = "non-conformant"
)

// IsValidStatus reports whether s is a defined aggregate status.
func IsValidStatus(s Status) bool {
	return s == StatusConformant || s == StatusNonConformant
}

// Explanations attached to verdicts for absent sections. Predicate failures
// carry the predicate's own explanation instead.
const (
	ExplanationMissing         = "section missing"
	ExplanationOptionalMissing = "optional section missing"
)

// FailCount returns the number of fail verdicts in the report.
func (r *Report) FailCount() int {
	n := 0
	for _, v := range r.Verdicts {
		if v.Verdict == VerdictFail {
			n++
		}
	}
	return n
}

// WarnCount returns the number of warn verdicts in the report.
func (r *Report) WarnCount() int {
	n := 0
	for _, v := range r.Verdicts {
		if v.Verdict == VerdictWarn {
			n++
		}
	}
	return n
}

// MissingRequired returns the labels of required rules whose section was
// absent entirely, in verdict order. Used by the suggestion generator.
func (r *Report) MissingRequired() []string {
	var labels []string
	for _, v := range r.Verdicts {
		if v.Kind == KindRequired && v.Verdict == VerdictFail && v.Explanation == ExplanationMissing {
			labels = append(labels, v.Label)
		}
	}
	return labels
}
