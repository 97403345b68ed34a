package report

import (
	"encoding/json"
	"reflect"
	"testing"

	"infreport/internal/domain"
	"infreport/internal/errdefs"
	"infreport/internal/inf"
)

func build(t *testing.T, text string) domain.Report {
	t.Helper()
	r, err := Build(inf.Parse(text))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return r
}

func TestBuildManufacturerOrder(t *testing.T) {
	r := build(t, `
[Manufacturer]
Zeta = ZetaModels
Acme = AcmeModels
Mid = MidModels

[AcmeModels]
D = I, HW
`)
	if len(r) != 3 {
		t.Fatalf("expected 3 manufacturers, got %d", len(r))
	}
	names := []string{r[0].Name, r[1].Name, r[2].Name}
	if !reflect.DeepEqual(names, []string{"Zeta", "Acme", "Mid"}) {
		t.Errorf("manufacturer order not preserved: %v", names)
	}
}

func TestBuildMergesAcrossArchitectures(t *testing.T) {
	t.Run("case-insensitive description merge across sections", func(t *testing.T) {
		r := build(t, `
[Manufacturer]
DisplayName = Acme, ntamd64

[Acme]
D1 = Sx, HW1

[Acme.ntamd64]
d1 = Sy, HW1
`)
		if len(r) != 1 || len(r[0].Devices) != 1 {
			t.Fatalf("expected one manufacturer with one model, got %#v", r)
		}
		m := r[0].Devices[0]
		if m.Description != "D1" {
			t.Errorf("description = %q, want first-seen spelling D1", m.Description)
		}
		if !reflect.DeepEqual(m.HardwareIDs, []string{"HW1"}) {
			t.Errorf("hardware ids = %v", m.HardwareIDs)
		}
		if !reflect.DeepEqual(m.Architectures, []string{"", "ntamd64"}) {
			t.Errorf("architectures = %v, want [\"\" ntamd64]", m.Architectures)
		}
	})

	t.Run("hardware id case prevents the merge", func(t *testing.T) {
		r := build(t, `
[Manufacturer]
M = Acme, ntamd64

[Acme]
D1 = Sx, HW1

[Acme.ntamd64]
D1 = Sy, hw1
`)
		if len(r[0].Devices) != 2 {
			t.Fatalf("expected two distinct models, got %#v", r[0].Devices)
		}
	})

	t.Run("hardware id order prevents the merge", func(t *testing.T) {
		r := build(t, `
[Manufacturer]
M = Acme, ntamd64

[Acme]
D1 = Sx, HW1, HW2

[Acme.ntamd64]
D1 = Sy, HW2, HW1
`)
		if len(r[0].Devices) != 2 {
			t.Fatalf("expected two distinct models, got %#v", r[0].Devices)
		}
	})
}

func TestBuildSoftSectionResolution(t *testing.T) {
	t.Run("declared qualifier without section is skipped", func(t *testing.T) {
		r := build(t, `
[Manufacturer]
M = Acme, ntamd64

[Acme]
D1 = Sx, HW1
`)
		if len(r) != 1 || len(r[0].Devices) != 1 {
			t.Fatalf("unexpected report: %#v", r)
		}
		if !reflect.DeepEqual(r[0].Devices[0].Architectures, []string{""}) {
			t.Errorf("architectures = %v, want only the base tag", r[0].Devices[0].Architectures)
		}
	})

	t.Run("manufacturer with no resolvable sections still appears", func(t *testing.T) {
		r := build(t, `
[Manufacturer]
Ghost = NoSuch, ntamd64
`)
		if len(r) != 1 {
			t.Fatalf("expected the manufacturer to appear, got %#v", r)
		}
		if r[0].Devices == nil || len(r[0].Devices) != 0 {
			t.Errorf("expected empty non-nil device list, got %#v", r[0].Devices)
		}
	})

	t.Run("qualified section without base section", func(t *testing.T) {
		r := build(t, `
[Manufacturer]
M = Acme, ntarm64

[Acme.ntarm64]
D1 = Sx, HW1
`)
		if !reflect.DeepEqual(r[0].Devices[0].Architectures, []string{"ntarm64"}) {
			t.Errorf("architectures = %v", r[0].Devices[0].Architectures)
		}
	})
}

func TestBuildFatalErrors(t *testing.T) {
	t.Run("missing manufacturer section", func(t *testing.T) {
		_, err := Build(inf.Parse("[Acme]\nD1 = Sx, HW1\n"))
		if !errdefs.IsKind(err, errdefs.KindMissingSection) {
			t.Errorf("expected KindMissingSection, got %v", err)
		}
	})

	t.Run("device line with zero fields aborts the run", func(t *testing.T) {
		r, err := Build(inf.Parse(`
[Manufacturer]
M = Acme

[Acme]
D1 = Sx, HW1
BrokenLineWithoutFields
`))
		if !errdefs.IsKind(err, errdefs.KindMissingInstallSection) {
			t.Errorf("expected KindMissingInstallSection, got %v", err)
		}
		if r != nil {
			t.Errorf("expected no partial report, got %#v", r)
		}
	})
}

func TestBuildEdgeShapes(t *testing.T) {
	t.Run("empty manufacturer section yields empty report", func(t *testing.T) {
		r := build(t, "[Manufacturer]\n")
		if len(r) != 0 {
			t.Errorf("expected no manufacturers, got %#v", r)
		}
	})

	t.Run("display name doubles as section name without fields", func(t *testing.T) {
		r := build(t, `
[Manufacturer]
Acme

[Acme]
D1 = Sx, HW1
`)
		if len(r[0].Devices) != 1 {
			t.Fatalf("expected the display-name section to resolve, got %#v", r)
		}
	})

	t.Run("device without hardware ids keys on the empty list", func(t *testing.T) {
		r := build(t, `
[Manufacturer]
M = Acme, ntamd64

[Acme]
D1 = Sx

[Acme.ntamd64]
D1 = Sy
`)
		m := r[0].Devices[0]
		if len(r[0].Devices) != 1 {
			t.Fatalf("expected the empty id lists to merge, got %#v", r[0].Devices)
		}
		if m.HardwareIDs == nil || len(m.HardwareIDs) != 0 {
			t.Errorf("expected empty non-nil hardware id list, got %#v", m.HardwareIDs)
		}
		if !reflect.DeepEqual(m.Architectures, []string{"", "ntamd64"}) {
			t.Errorf("architectures = %v", m.Architectures)
		}
	})

	t.Run("repeated identity under one tag keeps the duplicate", func(t *testing.T) {
		// Observed source behavior: tags append unconditionally, so a key
		// reachable twice under the same tag repeats it in the output.
		r := build(t, `
[Manufacturer]
M = Acme

[Acme]
D1 = Sx, HW1
D1 = Sy, HW1
`)
		m := r[0].Devices[0]
		if len(r[0].Devices) != 1 {
			t.Fatalf("expected one model, got %#v", r[0].Devices)
		}
		if !reflect.DeepEqual(m.Architectures, []string{"", ""}) {
			t.Errorf("architectures = %v, want the duplicated base tag", m.Architectures)
		}
	})

	t.Run("model order is first-discovery order", func(t *testing.T) {
		r := build(t, `
[Manufacturer]
M = Acme, ntamd64

[Acme]
B = Sx, HWB
A = Sx, HWA

[Acme.ntamd64]
C = Sy, HWC
A = Sy, HWA
`)
		var descriptions []string
		for _, d := range r[0].Devices {
			descriptions = append(descriptions, d.Description)
		}
		if !reflect.DeepEqual(descriptions, []string{"B", "A", "C"}) {
			t.Errorf("device order = %v, want first-discovery order [B A C]", descriptions)
		}
	})
}

func TestBuildIdempotence(t *testing.T) {
	text := `
[Manufacturer]
%Mfg% = Acme, ntamd64, ntarm64

[Acme]
D1 = Sx, HW1
D2 = Sx

[Acme.ntamd64]
d1 = Sy, HW1

[Strings]
Mfg = "Acme Corp"
`
	first, err := json.Marshal(build(t, text))
	if err != nil {
		t.Fatal(err)
	}
	second, err := json.Marshal(build(t, text))
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Errorf("pipeline is not idempotent:\n%s\n%s", first, second)
	}
}

func TestCorrelator(t *testing.T) {
	sections := domain.NewSectionSet()
	sections.Add("Acme")
	sections.Add("Acme.NTamd64")
	sections.Add("Unrelated")

	t.Run("base first, then qualifiers in declared order", func(t *testing.T) {
		c := NewCorrelator(domain.ManufacturerEntry{
			ModelsSection: "acme",
			Architectures: []string{"missing", "ntamd64"},
		}, sections)

		got, ok := c.Next()
		if !ok || got.Architecture != "" || got.Section != "Acme" {
			t.Fatalf("first correlation = %#v (ok=%v)", got, ok)
		}
		got, ok = c.Next()
		if !ok || got.Architecture != "ntamd64" || got.Section != "Acme.NTamd64" {
			t.Fatalf("second correlation = %#v (ok=%v)", got, ok)
		}
		if _, ok = c.Next(); ok {
			t.Error("expected the sequence to be exhausted")
		}
		if _, ok = c.Next(); ok {
			t.Error("drained correlator must stay drained")
		}
	})

	t.Run("nothing resolves", func(t *testing.T) {
		c := NewCorrelator(domain.ManufacturerEntry{
			ModelsSection: "Ghost",
			Architectures: []string{"ntamd64"},
		}, sections)
		if _, ok := c.Next(); ok {
			t.Error("expected an empty sequence")
		}
	})
}

func TestExtractManufacturers(t *testing.T) {
	doc := inf.Parse(`
[Manufacturer]
%A% = SecA, ntx86, ntamd64
Bare

[Strings]
A = "Vendor A"
`)
	entries, err := ExtractManufacturers(doc)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].DisplayName != "Vendor A" || entries[0].ModelsSection != "SecA" {
		t.Errorf("unexpected first entry: %#v", entries[0])
	}
	if !reflect.DeepEqual(entries[0].Architectures, []string{"ntx86", "ntamd64"}) {
		t.Errorf("architectures = %v", entries[0].Architectures)
	}
	if entries[1].DisplayName != "Bare" || entries[1].ModelsSection != "Bare" {
		t.Errorf("display name should default the section: %#v", entries[1])
	}
}
