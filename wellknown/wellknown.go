/*
Package wellknown implements formatting and parsing of chronos values
in a fixed set of well-known textual formats.

No format description language is provided. Each of [RFC3339],
[ISO8601], [GeneralizedTime] and [RFC2822] is a value implementing
both [Formattable] and [Parsable], and the package-level functions
bind them to the chronos types:

	s, err := wellknown.Format(wellknown.RFC3339, odt)
	odt, err = wellknown.ParseOffsetDateTime(wellknown.RFC3339, s)
*/
package wellknown

import (
	"errors"

	"github.com/JesseCoretta/go-chronos"
)

/*
Formattable is satisfied by any format able to render some combination
of a date, a time and an offset. A nil argument indicates the component
is not available. An implementation returns a [FormatError] when a
component it requires is nil or cannot be represented.
*/
type Formattable interface {
	Format(date *chronos.Date, tod *chronos.Time, offset *chronos.UtcOffset) (string, error)
}

/*
Parsable is satisfied by any format able to read some combination of a
date, a time and an offset from text. Components absent from the input
are left nil in the returned [Parsed].
*/
type Parsable interface {
	Parse(s string) (Parsed, error)
}

/*
Parsed holds the components read by a [Parsable].
*/
type Parsed struct {
	Date   *chronos.Date
	Time   *chronos.Time
	Offset *chronos.UtcOffset
}

/*
WellKnown is satisfied by each of the formats provided by this package.
*/
type WellKnown interface {
	Formattable
	Parsable
	Name() string
}

var formats = map[string]WellKnown{}

func register(f WellKnown) WellKnown {
	formats[lc(f.Name())] = f
	return f
}

/*
Lookup returns the well-known format bearing name, alongside a Boolean
value indicative of success. Case is not significant.
*/
func Lookup(name string) (WellKnown, bool) {
	f, ok := formats[lc(name)]
	return f, ok
}

var (
	// ErrInsufficientInformation is wrapped whenever a component required
	// by a format is not available.
	ErrInsufficientInformation = errors.New("insufficient information")

	// ErrUnrepresentable is wrapped whenever a component lies outside of
	// what a format is able to express.
	ErrUnrepresentable = errors.New("value cannot be represented")
)

/*
FormatError is returned when a value cannot be rendered in a format.
Component names the offending part, e.g.: "year" or "offset_second".
*/
type FormatError struct {
	Format    string
	Component string
	Err       error
}

func (r FormatError) Error() string {
	return `FORMAT ERROR: ` + r.Format + `: ` + r.Component + `: ` + r.Err.Error()
}

func (r FormatError) Unwrap() error { return r.Err }

/*
ParseError is returned when text cannot be read in a format. Component
names the part of the input at fault. Where the fault is a value out of
range, Err is a [chronos.ComponentRange].
*/
type ParseError struct {
	Format    string
	Component string
	Input     string
	Err       error
}

func (r ParseError) Error() string {
	return `PARSE ERROR: ` + r.Format + `: ` + r.Component + ` in "` + r.Input + `": ` + r.Err.Error()
}

func (r ParseError) Unwrap() error { return r.Err }

var (
	errMalformed       = errors.New("malformed input")
	errTrailing        = errors.New("unexpected trailing characters")
	errWeekdayMismatch = errors.New("weekday does not match the date")
	errLeapSecond      = errors.New("leap second not at the end of a UTC month")
)

/*
Format renders odt in f.
*/
func Format(f Formattable, odt chronos.OffsetDateTime) (string, error) {
	d, t, o := odt.Date(), odt.Time(), odt.Offset()
	return f.Format(&d, &t, &o)
}

// FormatDate renders a date alone in f.
func FormatDate(f Formattable, d chronos.Date) (string, error) {
	return f.Format(&d, nil, nil)
}

// FormatTime renders a time of day alone in f.
func FormatTime(f Formattable, t chronos.Time) (string, error) {
	return f.Format(nil, &t, nil)
}

// FormatOffset renders an offset alone in f.
func FormatOffset(f Formattable, o chronos.UtcOffset) (string, error) {
	return f.Format(nil, nil, &o)
}

/*
FormatPrimitive renders a date and time without an offset in f.
*/
func FormatPrimitive(f Formattable, pdt chronos.PrimitiveDateTime) (string, error) {
	d, t := pdt.Date(), pdt.Time()
	return f.Format(&d, &t, nil)
}

/*
ParseOffsetDateTime reads an instant from s in p. The input must bear
a date, a time and an offset.
*/
func ParseOffsetDateTime(p Parsable, s string) (chronos.OffsetDateTime, error) {
	parsed, err := p.Parse(s)
	if err == nil {
		err = parsed.require(p, s, true, true, true)
	}
	if err != nil {
		return chronos.UnixEpoch, err
	}
	return parsed.Date.WithTime(*parsed.Time).AssumeOffset(*parsed.Offset), nil
}

/*
ParsePrimitiveDateTime reads a date and time from s in p. Any offset
present is ignored.
*/
func ParsePrimitiveDateTime(p Parsable, s string) (chronos.PrimitiveDateTime, error) {
	parsed, err := p.Parse(s)
	if err == nil {
		err = parsed.require(p, s, true, true, false)
	}
	if err != nil {
		return chronos.PrimitiveDateTime{}, err
	}
	return parsed.Date.WithTime(*parsed.Time), nil
}

// ParseDate reads a date from s in p.
func ParseDate(p Parsable, s string) (chronos.Date, error) {
	parsed, err := p.Parse(s)
	if err == nil {
		err = parsed.require(p, s, true, false, false)
	}
	if err != nil {
		return chronos.Date{}, err
	}
	return *parsed.Date, nil
}

// ParseTime reads a time of day from s in p.
func ParseTime(p Parsable, s string) (chronos.Time, error) {
	parsed, err := p.Parse(s)
	if err == nil {
		err = parsed.require(p, s, false, true, false)
	}
	if err != nil {
		return chronos.Midnight, err
	}
	return *parsed.Time, nil
}

// ParseOffset reads a UTC offset from s in p.
func ParseOffset(p Parsable, s string) (chronos.UtcOffset, error) {
	parsed, err := p.Parse(s)
	if err == nil {
		err = parsed.require(p, s, false, false, true)
	}
	if err != nil {
		return chronos.UTC, err
	}
	return *parsed.Offset, nil
}

func (r Parsed) require(p Parsable, s string, date, tod, offset bool) error {
	missing := ""
	switch {
	case date && r.Date == nil:
		missing = "date"
	case tod && r.Time == nil:
		missing = "time"
	case offset && r.Offset == nil:
		missing = "offset"
	default:
		return nil
	}
	return ParseError{Format: nameOf(p), Component: missing, Input: s, Err: ErrInsufficientInformation}
}

func nameOf(p any) string {
	if n, ok := p.(interface{ Name() string }); ok {
		return n.Name()
	}
	return "custom"
}
