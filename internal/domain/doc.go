// Package domain defines the core domain types for the infreport driver-description pipeline.
//
// This package contains the entities and value objects the extraction
// pipeline operates on, with no document or serialization dependencies.
//
// # Parsed Entries
//
// ManufacturerEntry is one line of the manufacturer section: the display
// name, the base models-section name, and the declared architecture
// qualifiers.
//
// DeviceEntry is one line of a models section: the device description,
// the mandatory install-section reference, and the ordered hardware ids.
//
// # Identity
//
// SectionSet holds every section name in the document under
// case-insensitive identity.
//
// ModelKey is the deduplication identity for devices observed across
// architecture-qualified sections. Its equality is deliberately mixed:
// case-insensitive for the description, case-sensitive and
// order-sensitive for the hardware ids.
//
// # Report
//
// Model, Manufacturer, and Report form the final derived view. They are
// built once, read-only thereafter, and serialize one way only: the
// Unmarshal methods fail unconditionally (ErrOneWay) so readers never
// assume round-trip fidelity.
package domain
