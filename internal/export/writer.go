package export

import (
	"io"

	"github.com/orgscan/orgscan/internal/model"
)

// Writer defines the interface for export output.
// Implementations write enriched records in various formats.
//
// Design decision: We use an interface to allow different output formats
// and destinations. This enables writing to files or stdout with the
// same API.
type Writer interface {
	// Write outputs the enriched records to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(orgs []*model.EnrichedOrganization) (int, error)
}

// baseWriter provides common functionality for export writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
