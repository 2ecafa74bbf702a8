// Package template defines the rule configurations the linter evaluates
// documents against. Three templates are built in; custom ones load from
// YAML files. Templates and the registry are immutable after construction
// and safe for unsynchronized concurrent reads.
package template

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/doclint/internal/schema"
)

// ErrUnknownTemplate is returned by Registry.Get for unregistered ids.
var ErrUnknownTemplate = errors.New("unknown template")

// Rule is one expectation about a labeled section: its requirement kind and
// the predicate its body must satisfy when the section is present.
type Rule struct {
	Label     string
	Kind      schema.Kind
	Predicate Predicate
}

// Template is an ordered rule set for one document kind, plus the synonym
// table used to canonicalize author-chosen labels.
type Template struct {
	ID       string
	synonyms map[string]string
	rules    []Rule
	labels   map[string]bool // canonical rule labels
}

// New builds a Template, validating that no two rules share the same
// canonical label and kind.
func New(id string, synonyms map[string]string, rules []Rule) (*Template, error) {
	if id == "" {
		return nil, fmt.Errorf("template id is required")
	}

	t := &Template{
		ID:       id,
		synonyms: make(map[string]string, len(synonyms)),
		rules:    rules,
		labels:   make(map[string]bool, len(rules)),
	}
	for from, to := range synonyms {
		t.synonyms[normalizeLabel(from)] = normalizeLabel(to)
	}

	seen := make(map[string]bool, len(rules))
	for i, r := range rules {
		if r.Label == "" {
			return nil, fmt.Errorf("rule[%d]: label is required", i)
		}
		if !schema.IsValidKind(r.Kind) {
			return nil, fmt.Errorf("rule[%d] %q: invalid kind %q", i, r.Label, r.Kind)
		}
		if r.Predicate == nil {
			return nil, fmt.Errorf("rule[%d] %q: predicate is required", i, r.Label)
		}
		// Rule labels resolve through the synonym table too, so a rule
		// written against a synonym targets the same canonical label.
		canonical := normalizeLabel(r.Label)
		if to, ok := t.synonyms[canonical]; ok {
			canonical = to
		}
		t.rules[i].Label = canonical
		t.labels[canonical] = true
		key := canonical + "\x00" + string(r.Kind)
		if seen[key] {
			return nil, fmt.Errorf("duplicate rule for label %q with kind %s", canonical, r.Kind)
		}
		seen[key] = true
	}

	return t, nil
}

// mustNew is for built-in templates, which are defects if invalid.
func mustNew(id string, synonyms map[string]string, rules []Rule) *Template {
	t, err := New(id, synonyms, rules)
	if err != nil {
		panic(fmt.Sprintf("builtin template %s: %v", id, err))
	}
	return t
}

// Rules returns the template's rules in declaration order.
func (t *Template) Rules() []Rule {
	return t.rules
}

// Canonical maps an extracted section label to the label its rules use.
// Resolution order: exact synonym, plural fold (trailing S) against both
// synonyms and rule labels, then the label unchanged.
func (t *Template) Canonical(label string) string {
	label = normalizeLabel(label)
	if to, ok := t.synonyms[label]; ok {
		return to
	}
	if singular, ok := strings.CutSuffix(label, "S"); ok && singular != "" {
		if to, ok := t.synonyms[singular]; ok {
			return to
		}
		if t.labels[singular] {
			return singular
		}
	}
	return label
}

func normalizeLabel(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), " "))
}

// Registry maps template ids to templates. Built once in main and passed
// down; never mutated afterwards.
type Registry struct {
	templates map[string]*Template
}

// NewRegistry builds a registry from the given templates. Later duplicates
// of an id are rejected.
func NewRegistry(templates ...*Template) (*Registry, error) {
	r := &Registry{templates: make(map[string]*Template, len(templates))}
	for _, t := range templates {
		if _, ok := r.templates[t.ID]; ok {
			return nil, fmt.Errorf("duplicate template id %q", t.ID)
		}
		r.templates[t.ID] = t
	}
	return r, nil
}

// Builtin returns a registry holding the three built-in templates.
func Builtin() *Registry {
	r, err := NewRegistry(n8nPrompt(), securityChecklist(), designChecklist())
	if err != nil {
		panic(err) // builtin ids are distinct by construction
	}
	return r
}

// Get returns the template registered under id.
func (r *Registry) Get(id string) (*Template, error) {
	if t, ok := r.templates[id]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w %q: valid templates are %s", ErrUnknownTemplate, id, strings.Join(r.IDs(), ", "))
}

// IDs returns the registered template ids in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.templates))
	for id := range r.templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
