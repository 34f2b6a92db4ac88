package report

import (
	"encoding/json"
	"io"

	"github.com/aretw0/nfasim/pkg/domain"
)

// StepLine is one NDJSON line per consumed symbol.
type StepLine struct {
	Symbol string   `json:"symbol"`
	Active []string `json:"active"`
}

// VerdictLine closes the NDJSON stream of a run.
type VerdictLine struct {
	Verdict string   `json:"verdict"`
	Final   []string `json:"final"`
}

// JSONWriter writes results as JSON Lines.
type JSONWriter struct {
	Encoder *json.Encoder
}

// NewJSONWriter creates a JSONWriter on w.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{Encoder: json.NewEncoder(w)}
}

// Write emits one StepLine per snapshot and a closing VerdictLine.
func (j *JSONWriter) Write(a *domain.Automaton, res *domain.Result) error {
	for _, snap := range res.Trace {
		if err := j.Encoder.Encode(StepLine{Symbol: snap.Symbol, Active: a.LabelsOf(snap.Active)}); err != nil {
			return err
		}
	}
	return j.Encoder.Encode(VerdictLine{Verdict: res.Verdict(), Final: a.LabelsOf(res.Final)})
}
