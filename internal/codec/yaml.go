package codec

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"infreport/internal/domain"
)

// YAMLExporter renders the report as YAML for consumers that prefer it
// over JSON. Field names match the JSON output exactly.
type YAMLExporter struct{}

// NewYAMLExporter creates a YAML exporter.
func NewYAMLExporter() *YAMLExporter {
	return &YAMLExporter{}
}

// Format returns the codec format identifier.
func (e *YAMLExporter) Format() string {
	return "yaml"
}

// Export writes the report to w.
func (e *YAMLExporter) Export(report domain.Report, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("encode report YAML: %w", err)
	}
	return nil
}
