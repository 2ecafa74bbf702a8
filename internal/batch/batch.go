// Package batch lints every file matched by a set of glob patterns.
package batch

import (
	"fmt"
	"io"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"github.com/dshills/doclint/internal/document"
	"github.com/dshills/doclint/internal/evaluate"
	"github.com/dshills/doclint/internal/template"
)

// Summary aggregates a batch run.
type Summary struct {
	Files         int
	Conformant    int
	NonConformant int
}

// ResolvePatterns expands doublestar glob patterns to a sorted, deduplicated
// file list. A pattern without glob characters is returned as-is so missing
// explicit paths surface as unreadable-input errors, not silent no-matches.
func ResolvePatterns(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("resolve pattern %q: %w", pattern, err)
		}
		if matches == nil && !containsGlob(pattern) {
			matches = []string{pattern}
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

func containsGlob(pattern string) bool {
	for _, c := range pattern {
		switch c {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

// Run lints every matched file against tmpl, writing one summary line per
// file to out. Unreadable files abort the run; a non-conformant file does
// not.
func Run(patterns []string, tmpl *template.Template, out io.Writer, logger *zap.Logger) (Summary, error) {
	files, err := ResolvePatterns(patterns)
	if err != nil {
		return Summary{}, err
	}
	if len(files) == 0 {
		return Summary{}, fmt.Errorf("no files matched %v", patterns)
	}

	var sum Summary
	for _, path := range files {
		doc, err := document.Load(path)
		if err != nil {
			return sum, fmt.Errorf("%s: %w", path, err)
		}

		report := evaluate.Evaluate(doc, tmpl)
		logger.Debug("evaluated document",
			zap.String("path", path),
			zap.String("hash", doc.Hash),
			zap.Int("fail", report.FailCount()),
			zap.Int("warn", report.WarnCount()),
		)

		sum.Files++
		if report.FailCount() == 0 {
			sum.Conformant++
		} else {
			sum.NonConformant++
		}
		fmt.Fprintf(out, "%s: %s (score %.2f)\n", path, report.Status, report.Score)
	}

	fmt.Fprintf(out, "\n%d file(s), %d conformant, %d non-conformant\n",
		sum.Files, sum.Conformant, sum.NonConformant)
	return sum, nil
}
