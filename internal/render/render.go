// Package render formats reports for output.
package render

import (
	"fmt"

	"github.com/dshills/doclint/internal/schema"
)

// Renderer formats a Report into bytes for output.
type Renderer interface {
	Render(report *schema.Report) ([]byte, error)
}

// NewRenderer returns a Renderer for the given format string.
// Supported formats: "human" (default), "machine".
func NewRenderer(format string) (Renderer, error) {
	switch format {
	case "human":
		return &humanRenderer{}, nil
	case "machine":
		return &machineRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q: supported formats are human, machine", format)
	}
}
