package domain

// Line is one key/value line of a document section as exposed by the
// document reader: the key column plus the ordered comma-delimited
// fields.
type Line interface {
	Key() string
	FieldCount() int
	FieldAt(i int) string
}

// Document is the reader collaborator the report pipeline runs against.
// Section names match case-insensitively in both operations.
type Document interface {
	// Sections enumerates every section name present in the document.
	Sections() *SectionSet
	// ForEachLine visits the named section's lines in file order. The
	// visitor returns true to continue, false to stop early. A missing
	// section is an error.
	ForEachLine(section string, visit func(Line) bool) error
}
