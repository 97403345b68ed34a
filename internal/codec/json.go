package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"infreport/internal/domain"
)

// JSONExporter renders the report as indented JSON, matching the
// original tool's two-space output.
type JSONExporter struct {
	indent string
}

// NewJSONExporter creates a JSON exporter with two-space indentation.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{indent: "  "}
}

// WithIndent overrides the indentation string. Empty disables
// indentation entirely.
func (e *JSONExporter) WithIndent(indent string) *JSONExporter {
	e.indent = indent
	return e
}

// Format returns the codec format identifier.
func (e *JSONExporter) Format() string {
	return "json"
}

// Export writes the report to w.
func (e *JSONExporter) Export(report domain.Report, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", e.indent)

	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("encode report JSON: %w", err)
	}
	return nil
}

// ErrorPayload writes the small structured error object the tool emits
// instead of a report when the run fails.
func ErrorPayload(w io.Writer, runErr error) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(map[string]string{"error": runErr.Error()})
}
