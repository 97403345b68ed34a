package report

import "infreport/internal/domain"

// sectionDelimiter joins a base models-section name with an
// architecture qualifier. No normalization is applied to either part.
const sectionDelimiter = "."

// Correlation ties a resolved models section to the architecture
// qualifier used to form it. For the base (unqualified) section the
// Architecture is the empty string.
type Correlation struct {
	Architecture string
	Section      string
}

// Correlator lazily resolves which of a manufacturer's models sections
// actually exist: the base section first, then each declared qualifier's
// "base.qualifier" composition, in declared order. Compositions with no
// matching section are skipped silently; declaring a qualifier without
// shipping the section is valid and common.
//
// The sequence is pull-driven and not reentrant: each Next call resumes
// where the previous one left off, and a drained correlator stays
// drained.
type Correlator struct {
	entry    domain.ManufacturerEntry
	sections *domain.SectionSet
	baseDone bool
	next     int
}

// NewCorrelator starts a correlation sequence for one manufacturer
// entry against the document's section set.
func NewCorrelator(entry domain.ManufacturerEntry, sections *domain.SectionSet) *Correlator {
	return &Correlator{entry: entry, sections: sections}
}

// Next produces the next existing section, or ok=false once the
// sequence is exhausted. The returned Section carries the spelling
// stored in the section set.
func (c *Correlator) Next() (Correlation, bool) {
	if !c.baseDone {
		c.baseDone = true
		if stored, ok := c.sections.Lookup(c.entry.ModelsSection); ok {
			return Correlation{Architecture: "", Section: stored}, true
		}
	}
	for c.next < len(c.entry.Architectures) {
		arch := c.entry.Architectures[c.next]
		c.next++
		composed := c.entry.ModelsSection + sectionDelimiter + arch
		if stored, ok := c.sections.Lookup(composed); ok {
			return Correlation{Architecture: arch, Section: stored}, true
		}
	}
	return Correlation{}, false
}
