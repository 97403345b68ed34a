package domain

import "testing"

func TestModelKeyEqual(t *testing.T) {
	t.Run("description compares case-insensitively", func(t *testing.T) {
		a := ModelKey{Description: "D1", HardwareIDs: []string{"HW1"}}
		b := ModelKey{Description: "d1", HardwareIDs: []string{"HW1"}}
		if !a.Equal(b) {
			t.Error("expected keys differing only in description case to be equal")
		}
	})

	t.Run("hardware ids compare case-sensitively", func(t *testing.T) {
		a := ModelKey{Description: "D1", HardwareIDs: []string{"HW1"}}
		b := ModelKey{Description: "D1", HardwareIDs: []string{"hw1"}}
		if a.Equal(b) {
			t.Error("expected keys with differently cased hardware ids to differ")
		}
	})

	t.Run("hardware id order matters", func(t *testing.T) {
		a := ModelKey{Description: "D1", HardwareIDs: []string{"A", "B"}}
		b := ModelKey{Description: "D1", HardwareIDs: []string{"B", "A"}}
		if a.Equal(b) {
			t.Error("expected reordered hardware ids to yield a different key")
		}
	})

	t.Run("id count matters", func(t *testing.T) {
		a := ModelKey{Description: "D1", HardwareIDs: []string{"A"}}
		b := ModelKey{Description: "D1", HardwareIDs: []string{"A", "A"}}
		if a.Equal(b) {
			t.Error("expected different id counts to yield a different key")
		}
	})

	t.Run("empty id lists are a valid identity", func(t *testing.T) {
		a := ModelKey{Description: "D1"}
		b := ModelKey{Description: "d1"}
		if !a.Equal(b) {
			t.Error("expected keys with empty id lists to be equal")
		}
	})
}

func TestModelKeyHash(t *testing.T) {
	t.Run("consistent with equality", func(t *testing.T) {
		a := ModelKey{Description: "Device ONE", HardwareIDs: []string{"ACPI\\X1"}}
		b := ModelKey{Description: "device one", HardwareIDs: []string{"ACPI\\X1"}}
		if a.Hash() != b.Hash() {
			t.Error("equal keys must hash identically")
		}
	})

	t.Run("component boundaries shift the fold", func(t *testing.T) {
		a := ModelKey{Description: "ab", HardwareIDs: []string{"c"}}
		b := ModelKey{Description: "a", HardwareIDs: []string{"bc"}}
		if a.Hash() == b.Hash() {
			t.Error("expected boundary shift to change the hash")
		}
	})

	t.Run("id case changes the hash", func(t *testing.T) {
		a := ModelKey{Description: "D1", HardwareIDs: []string{"HW1"}}
		b := ModelKey{Description: "D1", HardwareIDs: []string{"hw1"}}
		if a.Hash() == b.Hash() {
			t.Error("expected hardware id case to affect the hash")
		}
	})
}

func TestSectionSet(t *testing.T) {
	t.Run("lookup is case-insensitive", func(t *testing.T) {
		s := NewSectionSet()
		s.Add("Acme.NTamd64")
		if !s.Contains("acme.ntAMD64") {
			t.Error("expected case-insensitive containment")
		}
	})

	t.Run("first spelling wins", func(t *testing.T) {
		s := NewSectionSet()
		s.Add("Strings")
		s.Add("STRINGS")
		got, ok := s.Lookup("strings")
		if !ok || got != "Strings" {
			t.Errorf("expected stored spelling 'Strings', got %q (ok=%v)", got, ok)
		}
		if s.Len() != 1 {
			t.Errorf("expected one distinct name, got %d", s.Len())
		}
	})
}
