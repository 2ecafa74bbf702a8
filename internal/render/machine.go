package render

import (
	"encoding/json"

	"github.com/dshills/doclint/internal/schema"
)

// machineRenderer emits the stable JSON wire format. Field order is fixed by
// the schema.Report declaration; validate.Parse is the round-trip inverse.
type machineRenderer struct{}

func (r *machineRenderer) Render(report *schema.Report) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
