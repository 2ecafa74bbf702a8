package template

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dshills/doclint/internal/section"
)

// Predicate is a total function over section bodies. Check must succeed or
// fail for every possible string, including the empty string; explanation is
// only meaningful when ok is false.
type Predicate interface {
	Check(body string) (ok bool, explanation string)
	Describe() string
}

// NonEmpty requires the body to contain at least one non-whitespace rune.
func NonEmpty() Predicate { return nonEmpty{} }

type nonEmpty struct{}

func (nonEmpty) Check(body string) (bool, string) {
	if strings.TrimSpace(body) == "" {
		return false, "expected non-empty body, found none"
	}
	return true, ""
}

func (nonEmpty) Describe() string { return "non-empty body" }

// MinLength requires the trimmed body to be at least n characters long.
func MinLength(n int) Predicate { return minLength{n: n} }

type minLength struct{ n int }

func (p minLength) Check(body string) (bool, string) {
	got := len(strings.TrimSpace(body))
	if got < p.n {
		return false, fmt.Sprintf("expected ≥%d characters, found %d", p.n, got)
	}
	return true, ""
}

func (p minLength) Describe() string { return fmt.Sprintf("body length ≥ %d characters", p.n) }

// MinBullets requires the body to contain at least n list items.
func MinBullets(n int) Predicate { return minBullets{n: n} }

type minBullets struct{ n int }

func (p minBullets) Check(body string) (bool, string) {
	got := section.CountBullets(body)
	if got < p.n {
		return false, fmt.Sprintf("expected ≥%d bullet items, found %d", p.n, got)
	}
	return true, ""
}

func (p minBullets) Describe() string { return fmt.Sprintf("≥ %d bullet items", p.n) }

// MatchPattern requires the body to match a regular expression. The
// expression is compiled at construction so Check itself cannot fail.
func MatchPattern(expr string) (Predicate, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compiling predicate pattern %q: %w", expr, err)
	}
	return matchPattern{re: re}, nil
}

func mustMatchPattern(expr string) Predicate {
	p, err := MatchPattern(expr)
	if err != nil {
		panic(err)
	}
	return p
}

type matchPattern struct{ re *regexp.Regexp }

func (p matchPattern) Check(body string) (bool, string) {
	if !p.re.MatchString(body) {
		return false, fmt.Sprintf("expected body matching %s, no match", p.re)
	}
	return true, ""
}

func (p matchPattern) Describe() string { return fmt.Sprintf("body matches %s", p.re) }
