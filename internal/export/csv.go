package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/orgscan/orgscan/internal/model"
)

// CSVWriter outputs enriched records as a flat CSV table.
//
// The column set is the first record's field names; fields appearing only
// in later records are dropped (see the package doc).
type CSVWriter struct {
	baseWriter
}

// NewCSVWriter creates a CSVWriter that outputs to the given writer.
func NewCSVWriter(output io.Writer) *CSVWriter {
	return &CSVWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs all records as CSV. An empty batch writes nothing, not
// even a header: there is no record to fix the column set from.
func (w *CSVWriter) Write(orgs []*model.EnrichedOrganization) (int, error) {
	if len(orgs) == 0 {
		return 0, nil
	}

	counter := &countingWriter{w: w.output}
	cw := csv.NewWriter(counter)

	fields := orgs[0].FieldNames()
	if err := cw.Write(fields); err != nil {
		return counter.n, err
	}

	for _, org := range orgs {
		record := org.Record()
		row := make([]string, len(fields))
		for i, field := range fields {
			row[i] = formatValue(record[field])
		}
		if err := cw.Write(row); err != nil {
			return counter.n, err
		}
	}

	cw.Flush()
	return counter.n, cw.Error()
}

// formatValue renders a record value as a CSV cell. Scalars print
// directly; composite values (lists of keywords, social links) are
// JSON-encoded so the cell stays machine-readable.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool, int, int64, float64:
		return fmt.Sprintf("%v", val)
	default:
		encoded, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(encoded)
	}
}

// countingWriter counts bytes passed through to the underlying writer.
type countingWriter struct {
	w io.Writer
	n int
}

// Write implements io.Writer.
func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}
