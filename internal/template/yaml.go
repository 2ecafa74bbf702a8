package template

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dshills/doclint/internal/schema"
)

// fileTemplate is the YAML shape of a custom template file.
type fileTemplate struct {
	ID       string            `yaml:"id"`
	Synonyms map[string]string `yaml:"synonyms"`
	Rules    []fileRule        `yaml:"rules"`
}

type fileRule struct {
	Label     string        `yaml:"label"`
	Kind      string        `yaml:"kind"`
	Predicate filePredicate `yaml:"predicate"`
}

type filePredicate struct {
	Type    string `yaml:"type"` // non-empty (default), min-length, min-bullets, pattern
	Length  int    `yaml:"length"`
	Count   int    `yaml:"count"`
	Pattern string `yaml:"pattern"`
}

// LoadFile reads a custom template from a YAML file.
//
// Example:
//
//	id: release-notes
//	synonyms:
//	  CHANGES: CHANGELOG
//	rules:
//	  - label: CHANGELOG
//	    kind: required
//	    predicate: {type: min-bullets, count: 2}
func LoadFile(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}

	var ft fileTemplate
	if err := yaml.Unmarshal(data, &ft); err != nil {
		return nil, fmt.Errorf("parsing rules file %s: %w", path, err)
	}

	if len(ft.Rules) == 0 {
		return nil, fmt.Errorf("rules file %s: at least one rule is required", path)
	}

	rules := make([]Rule, 0, len(ft.Rules))
	for i, fr := range ft.Rules {
		pred, err := fr.Predicate.build()
		if err != nil {
			return nil, fmt.Errorf("rules file %s: rule[%d] %q: %w", path, i, fr.Label, err)
		}
		kind := schema.Kind(fr.Kind)
		if fr.Kind == "" {
			kind = schema.KindRequired
		}
		rules = append(rules, Rule{Label: fr.Label, Kind: kind, Predicate: pred})
	}

	t, err := New(ft.ID, ft.Synonyms, rules)
	if err != nil {
		return nil, fmt.Errorf("rules file %s: %w", path, err)
	}
	return t, nil
}

func (fp filePredicate) build() (Predicate, error) {
	switch fp.Type {
	case "", "non-empty":
		return NonEmpty(), nil
	case "min-length":
		if fp.Length <= 0 {
			return nil, fmt.Errorf("min-length predicate needs length > 0")
		}
		return MinLength(fp.Length), nil
	case "min-bullets":
		if fp.Count <= 0 {
			return nil, fmt.Errorf("min-bullets predicate needs count > 0")
		}
		return MinBullets(fp.Count), nil
	case "pattern":
		if fp.Pattern == "" {
			return nil, fmt.Errorf("pattern predicate needs a pattern")
		}
		return MatchPattern(fp.Pattern)
	default:
		return nil, fmt.Errorf("unknown predicate type %q", fp.Type)
	}
}
