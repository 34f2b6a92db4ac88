package report

import (
	"fmt"
	"io"
	"time"

	"github.com/aretw0/nfasim/pkg/domain"
)

// Writer is implemented by every output format.
type Writer interface {
	Write(a *domain.Automaton, res *domain.Result) error
}

// Format names an output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// NewWriter returns the writer for format on w.
func NewWriter(format Format, w io.Writer) (Writer, error) {
	switch format {
	case "", FormatText:
		return NewTextWriter(w), nil
	case FormatJSON:
		return NewJSONWriter(w), nil
	}
	return nil, fmt.Errorf("unsupported format: %s", format)
}

// Record converts a result into the persisted form.
func Record(id string, a *domain.Automaton, input []string, res *domain.Result) *domain.RunRecord {
	in := make([]string, len(input))
	copy(in, input)
	return &domain.RunRecord{
		ID:        id,
		Automaton: a.Name(),
		Input:     in,
		Verdict:   res.Verdict(),
		Trace:     Rows(a, res),
		States:    a.Labels(),
		CreatedAt: time.Now().UTC(),
	}
}
