// Package section splits document text into labeled sections.
//
// Extraction is a single pass over the lines with two states: seeking the
// next marker, or accumulating a section body. A Markdown heading or a
// keyword-colon line opens a new section; everything before the first marker
// lands in the implicit PREAMBLE section. Extraction is pure and total —
// unstructured text is a valid input that yields PREAMBLE only.
package section

import (
	"regexp"
	"strings"
)

// Preamble is the label of the implicit section holding text that appears
// before the first recognized marker.
const Preamble = "PREAMBLE"

// Section is a contiguous labeled span of the document.
type Section struct {
	Label   string // uppercased, trimmed; not synonym-canonicalized
	Ordinal int    // appearance index, starting at 0
	Body    string
}

var (
	// headingPattern matches Markdown ATX headings up to level 6.
	headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.+?)\s*#*\s*$`)

	// keywordPattern matches "WORD:" or "WORD WORD:" markers at line start.
	// The label may contain letters, digits, spaces, and a few separators
	// seen in checklist headings ("API & Routes:").
	keywordPattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9 &/-]*):(.*)$`)
)

// Extract splits text into ordered, non-overlapping sections. The result
// always contains at least the PREAMBLE section; re-extraction of the same
// text is deterministic.
func Extract(text string) []Section {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	sections := []Section{{Label: Preamble, Ordinal: 0}}
	var body []string
	flush := func() {
		sections[len(sections)-1].Body = strings.Join(body, "\n")
		body = body[:0]
	}

	for _, line := range lines {
		if label, rest, ok := classify(line); ok {
			flush()
			sections = append(sections, Section{Label: label, Ordinal: len(sections)})
			if rest != "" {
				body = append(body, rest)
			}
			continue
		}
		body = append(body, line)
	}
	flush()

	return sections
}

// classify reports whether line opens a new section. For keyword markers the
// text after the colon belongs to the new section's body.
func classify(line string) (label, rest string, ok bool) {
	if m := headingPattern.FindStringSubmatch(line); m != nil {
		return Normalize(m[2]), "", true
	}
	if m := keywordPattern.FindStringSubmatch(line); m != nil {
		// "http://…" and friends are URLs, not markers.
		if strings.HasPrefix(m[2], "//") {
			return "", "", false
		}
		return Normalize(m[1]), strings.TrimSpace(m[2]), true
	}
	return "", "", false
}

// Normalize maps a raw heading or keyword to its label form: trimmed and
// uppercased, with interior whitespace collapsed.
func Normalize(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), " "))
}

// CountBullets returns the number of list items in a body. Recognized item
// markers are "-", "*", "+", checkbox variants, and "1." style enumerations.
func CountBullets(body string) int {
	n := 0
	for _, line := range strings.Split(body, "\n") {
		if bulletPattern.MatchString(line) {
			n++
		}
	}
	return n
}

var bulletPattern = regexp.MustCompile(`^\s*(?:[-*+]|\d+[.)])\s+\S`)
