// Package suggest produces a patch that stubs in the required sections a
// document is missing, so authors can apply the skeleton and fill it in.
package suggest

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/dshills/doclint/internal/schema"
)

const placeholder = "TODO: fill in this section"

// GenerateDiff returns diffmatchpatch patch text transforming the document
// into one with a heading stub appended for every missing required section.
// Returns "" when the report has no missing required sections.
func GenerateDiff(raw string, report *schema.Report) string {
	missing := report.MissingRequired()
	if len(missing) == 0 {
		return ""
	}

	before := normalize(raw)
	after := skeleton(before, missing)

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)
	patches := dmp.PatchMake(before, diffs)
	return dmp.PatchToText(patches)
}

// skeleton appends a stub section for each missing label.
func skeleton(raw string, missing []string) string {
	var out strings.Builder
	out.WriteString(raw)
	if raw != "" && !strings.HasSuffix(raw, "\n") {
		out.WriteString("\n")
	}
	for _, label := range missing {
		out.WriteString(fmt.Sprintf("\n## %s\n\n%s\n", label, placeholder))
	}
	return out.String()
}

// normalize trims trailing whitespace from each line and converts CRLF to LF
// so the patch never carries spurious whitespace hunks.
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
