package report

import (
	"infreport/internal/domain"
)

// ManufacturerSection is the fixed name of the section that lists
// manufacturers, matched case-insensitively.
const ManufacturerSection = "Manufacturer"

// ExtractManufacturers parses the manufacturer section into entries in
// file line order. The key column is the display name; field 0, when
// present, names the base models section (otherwise the display name
// doubles as the section name); the remaining fields are architecture
// qualifiers in declared order.
//
// A missing manufacturer section surfaces as the reader's fatal
// missing-section error. An empty section is valid and yields no
// entries.
func ExtractManufacturers(doc domain.Document) ([]domain.ManufacturerEntry, error) {
	var entries []domain.ManufacturerEntry

	err := doc.ForEachLine(ManufacturerSection, func(line domain.Line) bool {
		entry := domain.ManufacturerEntry{DisplayName: line.Key()}
		if line.FieldCount() > 0 {
			entry.ModelsSection = line.FieldAt(0)
		} else {
			entry.ModelsSection = entry.DisplayName
		}
		for i := 1; i < line.FieldCount(); i++ {
			entry.Architectures = append(entry.Architectures, line.FieldAt(i))
		}
		entries = append(entries, entry)
		return true
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
