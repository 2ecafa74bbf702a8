package template

import "github.com/dshills/doclint/internal/schema"

// n8nPrompt checks workflow prompts for the INPUT / PROCESSING /
// INTEGRATIONS / OUTPUT structure, with CONSTRAINTS and EXAMPLES optional.
func n8nPrompt() *Template {
	return mustNew("n8n-prompt",
		map[string]string{
			"TRIGGER":  "INPUT",
			"STEPS":    "PROCESSING",
			"WORKFLOW": "PROCESSING",
			"SERVICES": "INTEGRATIONS",
			"NODES":    "INTEGRATIONS",
			"RESULT":   "OUTPUT",
			"LIMITS":   "CONSTRAINTS",
		},
		[]Rule{
			{Label: "INPUT", Kind: schema.KindRequired, Predicate: NonEmpty()},
			{Label: "PROCESSING", Kind: schema.KindRequired, Predicate: NonEmpty()},
			{Label: "INTEGRATIONS", Kind: schema.KindRequired, Predicate: NonEmpty()},
			{Label: "OUTPUT", Kind: schema.KindRequired, Predicate: NonEmpty()},
			{Label: "CONSTRAINTS", Kind: schema.KindOptional, Predicate: NonEmpty()},
			{Label: "EXAMPLES", Kind: schema.KindOptional, Predicate: MinBullets(1)},
		})
}
