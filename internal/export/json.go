package export

import (
	"encoding/json"
	"io"
	"time"

	"github.com/EEseka/physiquest/internal/engine"
	"github.com/EEseka/physiquest/internal/storage"
)

// Output is one scalar in exported form. Value is null when the quantity
// could not be derived.
type Output struct {
	Value *float64 `json:"value"`
	Unit  string   `json:"unit,omitempty"`
}

type ExportData struct {
	ID        string             `json:"id,omitempty"`
	Domain    engine.Domain      `json:"domain"`
	Label     string             `json:"label,omitempty"`
	CreatedAt *time.Time         `json:"created_at,omitempty"`
	Inputs    map[string]float64 `json:"inputs"`
	Outputs   map[string]Output  `json:"outputs"`
	Curves    []engine.Series    `json:"curves"`
	Paths     []engine.Path      `json:"paths,omitempty"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
}

// FromSummary builds export data for an unsaved result.
func FromSummary(inputs map[string]float64, sum engine.Summary) ExportData {
	data := ExportData{
		Domain:  sum.Domain,
		Inputs:  inputs,
		Outputs: make(map[string]Output, len(sum.Scalars)),
		Curves:  sum.Curves,
		Paths:   sum.Paths,
	}
	for _, sc := range sum.Scalars {
		data.Outputs[sc.Name] = Output{Value: sc.Value.Ptr(), Unit: sc.Unit}
	}
	return data
}

// FromRecord builds export data for a saved record.
func FromRecord(rec storage.Record) ExportData {
	data := FromSummary(rec.Inputs, rec.Summary)
	created := rec.CreatedAt
	data.ID = rec.ID
	data.Label = rec.Label
	data.CreatedAt = &created
	data.Metrics = rec.Metrics
	return data
}

func WriteJSON(w io.Writer, data ExportData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
