package export

import (
	"encoding/json"
	"io"

	"github.com/orgscan/orgscan/internal/model"
)

// JSONWriter outputs enriched records as a JSON array of flat objects.
// This format is designed for tool integration and programmatic
// processing.
//
// Design decision: We use standard encoding/json rather than a third-party
// JSON library because it's part of the standard library and sufficient
// for our needs.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithPrettyPrint enables pretty-printed JSON with two-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs all records as a JSON array. Each element is the flat
// record map, so the JSON fields line up with the CSV columns.
func (w *JSONWriter) Write(orgs []*model.EnrichedOrganization) (int, error) {
	records := make([]map[string]any, len(orgs))
	for i, org := range orgs {
		records[i] = org.Record()
	}

	counter := &countingWriter{w: w.output}
	enc := json.NewEncoder(counter)
	if w.indent {
		enc.SetIndent("", "  ")
	}

	if err := enc.Encode(records); err != nil {
		return counter.n, err
	}

	return counter.n, nil
}
