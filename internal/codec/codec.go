// Package codec serializes the finished report for external consumers.
//
// Serialization is one-directional: there is no Importer counterpart,
// and the domain types themselves refuse to unmarshal. The report is a
// derived view of the source document, never a source of truth.
package codec

import (
	"io"

	"infreport/internal/domain"
)

// Exporter writes a report to an output stream in one format.
type Exporter interface {
	Export(report domain.Report, w io.Writer) error
	Format() string
}

// ForFormat returns the exporter for a format name, or ok=false for an
// unknown format.
func ForFormat(format string) (Exporter, bool) {
	switch format {
	case "json":
		return NewJSONExporter(), true
	case "yaml":
		return NewYAMLExporter(), true
	default:
		return nil, false
	}
}
