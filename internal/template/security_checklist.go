package template

import "github.com/dshills/doclint/internal/schema"

// securityChecklist checks web-stack security checklists: authentication,
// database, and API sections need substantive item lists, and secrets
// handling must at least mention environment configuration.
func securityChecklist() *Template {
	return mustNew("security-checklist",
		map[string]string{
			"AUTH":      "AUTHENTICATION",
			"PRISMA":    "DATABASE",
			"ROUTES":    "API",
			"ENDPOINTS": "API",
			"ENV":       "SECRETS",
			"CSP":       "HEADERS",
		},
		[]Rule{
			{Label: "AUTHENTICATION", Kind: schema.KindRequired, Predicate: MinBullets(3)},
			{Label: "DATABASE", Kind: schema.KindRequired, Predicate: MinBullets(3)},
			{Label: "API", Kind: schema.KindRequired, Predicate: MinBullets(2)},
			{Label: "SECRETS", Kind: schema.KindRequired, Predicate: mustMatchPattern(`(?i)\benv\b|environment`)},
			{Label: "HEADERS", Kind: schema.KindOptional, Predicate: MinBullets(1)},
			{Label: "DEPENDENCIES", Kind: schema.KindOptional, Predicate: NonEmpty()},
		})
}
