package report

import (
	"infreport/internal/domain"
	"infreport/internal/errdefs"
)

// ExtractDevices parses one resolved models section into device entries
// in file line order. The key column is the device description; field 0
// is the mandatory install-section reference; the remaining fields are
// hardware ids in order (the list may legitimately be empty).
//
// A line with zero fields aborts the run with
// errdefs.KindMissingInstallSection; there is no skip-and-continue.
func ExtractDevices(doc domain.Document, section string) ([]domain.DeviceEntry, error) {
	var entries []domain.DeviceEntry
	var lineErr error

	err := doc.ForEachLine(section, func(line domain.Line) bool {
		if line.FieldCount() == 0 {
			lineErr = errdefs.Newf(errdefs.KindMissingInstallSection,
				"device line %q in section %q has no install-section field", line.Key(), section)
			return false
		}

		entry := domain.DeviceEntry{
			Description:    line.Key(),
			InstallSection: line.FieldAt(0),
		}
		for i := 1; i < line.FieldCount(); i++ {
			entry.HardwareIDs = append(entry.HardwareIDs, line.FieldAt(i))
		}
		entries = append(entries, entry)
		return true
	})
	if err != nil {
		return nil, err
	}
	if lineErr != nil {
		return nil, lineErr
	}
	return entries, nil
}
