package domain

import "strings"

// foldSection is the case-insensitive projection used for section-name
// identity. Lowercasing (rather than EqualFold) keeps equality consistent
// with the map key used by SectionSet.
func foldSection(name string) string {
	return strings.ToLower(name)
}

// SectionSet is a case-insensitive set of section names. The first
// spelling seen for a name is the one handed back by Lookup, mirroring
// how the names appear in the document.
type SectionSet struct {
	byFold map[string]string
}

// NewSectionSet creates an empty section set.
func NewSectionSet() *SectionSet {
	return &SectionSet{byFold: make(map[string]string)}
}

// Add inserts a section name. Re-adding a name under different casing
// keeps the original spelling.
func (s *SectionSet) Add(name string) {
	fold := foldSection(name)
	if _, ok := s.byFold[fold]; !ok {
		s.byFold[fold] = name
	}
}

// Lookup resolves name case-insensitively and returns the stored
// spelling.
func (s *SectionSet) Lookup(name string) (string, bool) {
	stored, ok := s.byFold[foldSection(name)]
	return stored, ok
}

// Contains reports whether name is present, case-insensitively.
func (s *SectionSet) Contains(name string) bool {
	_, ok := s.Lookup(name)
	return ok
}

// Len returns the number of distinct section names.
func (s *SectionSet) Len() int {
	return len(s.byFold)
}
