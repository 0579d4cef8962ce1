/*
Package serde adapts the chronos types to the encoding.TextMarshaler,
json.Marshaler and yaml.Marshaler interfaces, along with their
unmarshaling counterparts.

Each wrapper embeds the chronos value it adapts, so every method of the
value remains available:

	type Event struct {
		At    serde.OffsetDateTime `json:"at" yaml:"at"`
		Every serde.Duration       `json:"every" yaml:"every"`
	}

Dates, times, offsets and date-times are written in the extended
format of ISO 8601 (see wellknown.ISO8601), and durations as ISO 8601
duration strings. [CompactDuration] and [CompactOffset] provide a
numeric alternative.
*/
package serde

import (
	"encoding"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/JesseCoretta/go-chronos"
	"github.com/JesseCoretta/go-chronos/wellknown"
)

type textCodec interface {
	encoding.TextMarshaler
	encoding.TextUnmarshaler
}

var (
	_ textCodec = (*Date)(nil)
	_ textCodec = (*Time)(nil)
	_ textCodec = (*UtcOffset)(nil)
	_ textCodec = (*Duration)(nil)
	_ textCodec = (*PrimitiveDateTime)(nil)
	_ textCodec = (*OffsetDateTime)(nil)

	_ json.Marshaler   = CompactDuration{}
	_ json.Unmarshaler = (*CompactDuration)(nil)
	_ yaml.Marshaler   = CompactOffset{}
	_ yaml.Unmarshaler = (*CompactOffset)(nil)
)

/*
Date wraps [chronos.Date], written as YYYY-MM-DD.
*/
type Date struct{ chronos.Date }

func (r Date) MarshalText() ([]byte, error) {
	s, err := wellknown.FormatDate(wellknown.ISO8601, r.Date)
	return []byte(s), err
}

func (r *Date) UnmarshalText(b []byte) error {
	d, err := wellknown.ParseDate(wellknown.ISO8601, string(b))
	if err == nil {
		r.Date = d
	}
	return err
}

func (r Date) MarshalJSON() ([]byte, error)      { return marshalJSON(r) }
func (r *Date) UnmarshalJSON(b []byte) error     { return unmarshalJSON(b, r) }
func (r Date) MarshalYAML() (any, error)         { return marshalYAML(r) }
func (r *Date) UnmarshalYAML(n *yaml.Node) error { return unmarshalYAML(n, r) }

/*
Time wraps [chronos.Time], written as THH:MM:SS.fffffffff.
*/
type Time struct{ chronos.Time }

func (r Time) MarshalText() ([]byte, error) {
	s, err := wellknown.FormatTime(wellknown.ISO8601, r.Time)
	return []byte(s), err
}

func (r *Time) UnmarshalText(b []byte) error {
	t, err := wellknown.ParseTime(wellknown.ISO8601, string(b))
	if err == nil {
		r.Time = t
	}
	return err
}

func (r Time) MarshalJSON() ([]byte, error)      { return marshalJSON(r) }
func (r *Time) UnmarshalJSON(b []byte) error     { return unmarshalJSON(b, r) }
func (r Time) MarshalYAML() (any, error)         { return marshalYAML(r) }
func (r *Time) UnmarshalYAML(n *yaml.Node) error { return unmarshalYAML(n, r) }

/*
UtcOffset wraps [chronos.UtcOffset], written as Z or ±HH:MM[:SS].
*/
type UtcOffset struct{ chronos.UtcOffset }

func (r UtcOffset) MarshalText() ([]byte, error) {
	s, err := wellknown.FormatOffset(wellknown.ISO8601, r.UtcOffset)
	return []byte(s), err
}

func (r *UtcOffset) UnmarshalText(b []byte) error {
	o, err := wellknown.ParseOffset(wellknown.ISO8601, string(b))
	if err == nil {
		r.UtcOffset = o
	}
	return err
}

func (r UtcOffset) MarshalJSON() ([]byte, error)      { return marshalJSON(r) }
func (r *UtcOffset) UnmarshalJSON(b []byte) error     { return unmarshalJSON(b, r) }
func (r UtcOffset) MarshalYAML() (any, error)         { return marshalYAML(r) }
func (r *UtcOffset) UnmarshalYAML(n *yaml.Node) error { return unmarshalYAML(n, r) }

/*
Duration wraps [chronos.Duration], written as an ISO 8601 duration such
as PT1H30M.
*/
type Duration struct{ chronos.Duration }

func (r Duration) MarshalText() ([]byte, error) { return []byte(r.Duration.String()), nil }

func (r *Duration) UnmarshalText(b []byte) error {
	d, err := chronos.NewDuration(string(b))
	if err == nil {
		r.Duration = d
	}
	return err
}

func (r Duration) MarshalJSON() ([]byte, error)      { return marshalJSON(r) }
func (r *Duration) UnmarshalJSON(b []byte) error     { return unmarshalJSON(b, r) }
func (r Duration) MarshalYAML() (any, error)         { return marshalYAML(r) }
func (r *Duration) UnmarshalYAML(n *yaml.Node) error { return unmarshalYAML(n, r) }

/*
PrimitiveDateTime wraps [chronos.PrimitiveDateTime], written as
YYYY-MM-DDTHH:MM:SS.fffffffff.
*/
type PrimitiveDateTime struct{ chronos.PrimitiveDateTime }

func (r PrimitiveDateTime) MarshalText() ([]byte, error) {
	s, err := wellknown.FormatPrimitive(wellknown.ISO8601, r.PrimitiveDateTime)
	return []byte(s), err
}

func (r *PrimitiveDateTime) UnmarshalText(b []byte) error {
	pdt, err := wellknown.ParsePrimitiveDateTime(wellknown.ISO8601, string(b))
	if err == nil {
		r.PrimitiveDateTime = pdt
	}
	return err
}

func (r PrimitiveDateTime) MarshalJSON() ([]byte, error)      { return marshalJSON(r) }
func (r *PrimitiveDateTime) UnmarshalJSON(b []byte) error     { return unmarshalJSON(b, r) }
func (r PrimitiveDateTime) MarshalYAML() (any, error)         { return marshalYAML(r) }
func (r *PrimitiveDateTime) UnmarshalYAML(n *yaml.Node) error { return unmarshalYAML(n, r) }

/*
OffsetDateTime wraps [chronos.OffsetDateTime], written as
YYYY-MM-DDTHH:MM:SS.fffffffff±HH:MM[:SS].
*/
type OffsetDateTime struct{ chronos.OffsetDateTime }

func (r OffsetDateTime) MarshalText() ([]byte, error) {
	s, err := wellknown.Format(wellknown.ISO8601, r.OffsetDateTime)
	return []byte(s), err
}

func (r *OffsetDateTime) UnmarshalText(b []byte) error {
	odt, err := wellknown.ParseOffsetDateTime(wellknown.ISO8601, string(b))
	if err == nil {
		r.OffsetDateTime = odt
	}
	return err
}

func (r OffsetDateTime) MarshalJSON() ([]byte, error)      { return marshalJSON(r) }
func (r *OffsetDateTime) UnmarshalJSON(b []byte) error     { return unmarshalJSON(b, r) }
func (r OffsetDateTime) MarshalYAML() (any, error)         { return marshalYAML(r) }
func (r *OffsetDateTime) UnmarshalYAML(n *yaml.Node) error { return unmarshalYAML(n, r) }

func marshalJSON(m encoding.TextMarshaler) ([]byte, error) {
	b, err := m.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(b))
}

func unmarshalJSON(b []byte, u encoding.TextUnmarshaler) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("serde: %w", err)
	}
	return u.UnmarshalText([]byte(s))
}

func marshalYAML(m encoding.TextMarshaler) (any, error) {
	b, err := m.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func unmarshalYAML(n *yaml.Node, u encoding.TextUnmarshaler) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("serde: line %d: expected a scalar, found %s", n.Line, kindName(n.Kind))
	}
	return u.UnmarshalText([]byte(n.Value))
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "a document"
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.MappingNode:
		return "a mapping"
	case yaml.AliasNode:
		return "an alias"
	}
	return "a scalar"
}
