package domain

import "errors"

// ErrOneWay is returned by every attempt to reconstruct report values
// from their serialized form. The report is a derived view of the source
// document; deserializing it cannot recover the internal declarations,
// so the inverse operation fails by design rather than by omission.
var ErrOneWay = errors.New("domain: report serialization is one-way, re-import is not supported")

// Model is one deduplicated device entry in the report.
//
// Architectures records every qualifier under which the model's identity
// was observed, in discovery order; an empty string means the base
// (unqualified) models section. Duplicate tags are preserved.
type Model struct {
	Description   string   `json:"description" yaml:"description"`
	HardwareIDs   []string `json:"hardware_ids" yaml:"hardware_ids"`
	Architectures []string `json:"architectures" yaml:"architectures"`
}

// Manufacturer groups the models declared by one manufacturer line, in
// first-discovery order.
type Manufacturer struct {
	Name    string  `json:"name" yaml:"name"`
	Devices []Model `json:"devices" yaml:"devices"`
}

// Report is the final derived view: manufacturers in declaration order.
type Report []Manufacturer

// UnmarshalJSON always fails; see ErrOneWay.
func (*Model) UnmarshalJSON([]byte) error { return ErrOneWay }

// UnmarshalJSON always fails; see ErrOneWay.
func (*Manufacturer) UnmarshalJSON([]byte) error { return ErrOneWay }

// UnmarshalJSON always fails; see ErrOneWay.
func (*Report) UnmarshalJSON([]byte) error { return ErrOneWay }

// UnmarshalYAML always fails; see ErrOneWay.
func (*Model) UnmarshalYAML(func(any) error) error { return ErrOneWay }

// UnmarshalYAML always fails; see ErrOneWay.
func (*Manufacturer) UnmarshalYAML(func(any) error) error { return ErrOneWay }

// UnmarshalYAML always fails; see ErrOneWay.
func (*Report) UnmarshalYAML(func(any) error) error { return ErrOneWay }
