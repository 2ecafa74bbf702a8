package template

import "github.com/dshills/doclint/internal/schema"

// designChecklist checks design-system style guides for the core token and
// component sections.
func designChecklist() *Template {
	return mustNew("design-checklist",
		map[string]string{
			"PALETTE": "COLORS",
			"FONTS":   "TYPOGRAPHY",
			"TYPE":    "TYPOGRAPHY",
			"LAYOUT":  "SPACING",
			"A11Y":    "ACCESSIBILITY",
		},
		[]Rule{
			{Label: "COLORS", Kind: schema.KindRequired, Predicate: MinBullets(2)},
			{Label: "TYPOGRAPHY", Kind: schema.KindRequired, Predicate: NonEmpty()},
			{Label: "SPACING", Kind: schema.KindRequired, Predicate: NonEmpty()},
			{Label: "COMPONENTS", Kind: schema.KindRequired, Predicate: MinBullets(3)},
			{Label: "TOKENS", Kind: schema.KindOptional, Predicate: NonEmpty()},
			{Label: "ACCESSIBILITY", Kind: schema.KindOptional, Predicate: MinBullets(1)},
		})
}
