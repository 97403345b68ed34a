// Package report implements the extraction pipeline that turns a
// driver-description document into the normalized manufacturer/model
// report: manufacturer parsing, soft section correlation, device
// parsing, and deduplicating aggregation.
//
// The pipeline is strictly sequential and all-or-nothing: the first
// failure unwinds to the caller and no partial report is ever exposed.
package report

import (
	"infreport/internal/domain"
	"infreport/internal/textenc"
)

// Build assembles the full report from doc.
//
// Manufacturers appear in file order. Within a manufacturer, models
// appear in first-discovery order across the correlated sections, each
// carrying the architecture tags it was observed under, in discovery
// order. A manufacturer whose sections all resolve to nothing still
// appears, with an empty device list. No sorting is applied anywhere.
func Build(doc domain.Document) (domain.Report, error) {
	sections := doc.Sections()

	entries, err := ExtractManufacturers(doc)
	if err != nil {
		return nil, err
	}

	out := make(domain.Report, 0, len(entries))
	for _, entry := range entries {
		agg := newAggregator()

		corr := NewCorrelator(entry, sections)
		for {
			c, ok := corr.Next()
			if !ok {
				break
			}
			devices, err := ExtractDevices(doc, c.Section)
			if err != nil {
				return nil, err
			}
			for _, device := range devices {
				agg.add(device, c.Architecture)
			}
		}

		manufacturer, err := flatten(entry, agg)
		if err != nil {
			return nil, err
		}
		out = append(out, manufacturer)
	}
	return out, nil
}

// flatten converts one manufacturer's accumulated models into the
// external report representation. Every text value passes through the
// external-encoding conversion; its failure aborts the run.
func flatten(entry domain.ManufacturerEntry, agg *aggregator) (domain.Manufacturer, error) {
	name, err := textenc.ToExternal(entry.DisplayName)
	if err != nil {
		return domain.Manufacturer{}, err
	}

	accums := agg.entries()
	devices := make([]domain.Model, 0, len(accums))
	for _, acc := range accums {
		description, err := textenc.ToExternal(acc.key.Description)
		if err != nil {
			return domain.Manufacturer{}, err
		}
		hardwareIDs, err := textenc.SliceToExternal(acc.key.HardwareIDs)
		if err != nil {
			return domain.Manufacturer{}, err
		}
		architectures, err := textenc.SliceToExternal(acc.architectures)
		if err != nil {
			return domain.Manufacturer{}, err
		}
		devices = append(devices, domain.Model{
			Description:   description,
			HardwareIDs:   hardwareIDs,
			Architectures: architectures,
		})
	}
	return domain.Manufacturer{Name: name, Devices: devices}, nil
}
