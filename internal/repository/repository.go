// Package repository defines the catalog abstraction for persisting
// finished reports.
//
// The catalog stores the OUTPUT view only: rows carry position columns
// so a stored report reads back in exactly the order it was built, but
// nothing in the schema can reconstruct the source document's internal
// declarations. The actual implementation is in the sqlite subpackage.
package repository

import (
	"context"
	"time"

	"infreport/internal/domain"
)

// Source describes one cataloged input document.
type Source struct {
	Path          string
	ScannedAt     time.Time
	Manufacturers int
}

// Catalog is the persistence interface for extracted reports.
type Catalog interface {
	// SaveReport stores the report for sourcePath, replacing any earlier
	// scan of the same path.
	SaveReport(ctx context.Context, sourcePath string, report domain.Report) error

	// GetReport loads the stored report for sourcePath.
	GetReport(ctx context.Context, sourcePath string) (domain.Report, error)

	// ListSources enumerates cataloged documents, most recent first.
	ListSources(ctx context.Context) ([]Source, error)

	// Close releases resources.
	Close() error
}
