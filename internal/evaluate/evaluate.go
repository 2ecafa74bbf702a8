// Package evaluate matches extracted sections against a template's rules.
//
// Evaluation is pure and synchronous: one document, one template, one
// report. Verdict order follows rule declaration order, so the report is
// identical however the author arranged their sections.
package evaluate

import (
	"github.com/dshills/doclint/internal/document"
	"github.com/dshills/doclint/internal/schema"
	"github.com/dshills/doclint/internal/section"
	"github.com/dshills/doclint/internal/template"
)

// Evaluate checks doc against every rule in tmpl and returns the full
// report. A failing predicate never aborts the remaining rules.
func Evaluate(doc *document.Document, tmpl *template.Template) *schema.Report {
	sections := section.Extract(doc.Raw)

	// First occurrence per canonical label wins; later duplicates are
	// ignored (see DESIGN.md on duplicate labels).
	byLabel := make(map[string]section.Section, len(sections))
	for _, s := range sections {
		canonical := tmpl.Canonical(s.Label)
		if _, ok := byLabel[canonical]; !ok {
			byLabel[canonical] = s
		}
	}

	rules := tmpl.Rules()
	report := &schema.Report{
		Template: tmpl.ID,
		Verdicts: make([]schema.RuleVerdict, 0, len(rules)),
	}

	requiredTotal, requiredPassed := 0, 0
	for _, rule := range rules {
		v := check(rule, byLabel)
		report.Verdicts = append(report.Verdicts, v)
		if rule.Kind == schema.KindRequired {
			requiredTotal++
			if v.Verdict == schema.VerdictPass {
				requiredPassed++
			}
		}
	}

	report.Score = score(requiredPassed, requiredTotal)
	report.Status = schema.StatusConformant
	if report.FailCount() > 0 {
		report.Status = schema.StatusNonConformant
	}
	return report
}

// check evaluates one rule against the indexed sections.
func check(rule template.Rule, byLabel map[string]section.Section) schema.RuleVerdict {
	v := schema.RuleVerdict{Label: rule.Label, Kind: rule.Kind}

	s, present := byLabel[rule.Label]
	if !present {
		if rule.Kind == schema.KindRequired {
			v.Verdict = schema.VerdictFail
			v.Explanation = schema.ExplanationMissing
		} else {
			v.Verdict = schema.VerdictWarn
			v.Explanation = schema.ExplanationOptionalMissing
		}
		return v
	}

	ok, explanation := rule.Predicate.Check(s.Body)
	if ok {
		v.Verdict = schema.VerdictPass
		return v
	}
	if rule.Kind == schema.KindRequired {
		v.Verdict = schema.VerdictFail
	} else {
		v.Verdict = schema.VerdictWarn
	}
	v.Explanation = explanation
	return v
}

// score is passed-required over total-required. Zero required rules is
// vacuously conformant, score 1.0.
func score(passed, total int) float64 {
	if total == 0 {
		return 1.0
	}
	return float64(passed) / float64(total)
}
