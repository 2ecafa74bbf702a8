package render

import (
	"bytes"
	"fmt"

	"github.com/fatih/color"

	"github.com/dshills/doclint/internal/schema"
)

// humanRenderer emits one "label: verdict — explanation" line per rule plus
// a summary line. Colors follow fatih/color's tty and NO_COLOR handling.
type humanRenderer struct{}

var (
	passColor = color.New(color.FgGreen).SprintFunc()
	failColor = color.New(color.FgRed, color.Bold).SprintFunc()
	warnColor = color.New(color.FgYellow).SprintFunc()
)

func (r *humanRenderer) Render(report *schema.Report) ([]byte, error) {
	var buf bytes.Buffer

	for _, v := range report.Verdicts {
		fmt.Fprintf(&buf, "%-16s %s", v.Label+":", colorize(v.Verdict))
		if v.Explanation != "" {
			fmt.Fprintf(&buf, " — %s", v.Explanation)
		}
		buf.WriteByte('\n')
	}

	status := passColor(string(report.Status))
	if report.Status == schema.StatusNonConformant {
		status = failColor(string(report.Status))
	}
	fmt.Fprintf(&buf, "\n%s (%s): score %.2f, %d fail, %d warn\n",
		status, report.Template, report.Score, report.FailCount(), report.WarnCount())

	return buf.Bytes(), nil
}

func colorize(v schema.Verdict) string {
	switch v {
	case schema.VerdictPass:
		return passColor(string(v))
	case schema.VerdictFail:
		return failColor(string(v))
	default:
		return warnColor(string(v))
	}
}
