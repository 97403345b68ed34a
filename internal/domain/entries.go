package domain

// ManufacturerEntry is the parsed form of one line in the manufacturer
// section.
//
// Example line:
//
//	%MfgName% = ASUP, ntamd64.10.0...16299
//
// DisplayName is the expanded key column. ModelsSection is the base
// models-section name (the display name itself when the line carries no
// fields). Architectures holds the optional platform qualifiers that
// combine with the base section via "base.arch" dot syntax, in declared
// order.
type ManufacturerEntry struct {
	DisplayName   string
	ModelsSection string
	Architectures []string
}

// DeviceEntry is the parsed form of one device line in a models section.
//
// Example line:
//
//	ASUS System Control Interface v3 = NO_DRV64, ACPI\ASUS2018
//
// Description is the key column. InstallSection is the mandatory first
// field. HardwareIDs holds the remaining fields in order; the first is
// the hardware id proper, the rest are compatible ids. The list may be
// empty.
type DeviceEntry struct {
	Description    string
	InstallSection string
	HardwareIDs    []string
}
