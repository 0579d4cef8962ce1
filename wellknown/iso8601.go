package wellknown

/*
iso8601.go contains the ISO 8601 extended format.
*/

import (
	"strings"

	"github.com/JesseCoretta/go-chronos"
)

/*
ISO8601 implements the extended format of ISO 8601:

	2021-01-01T00:00:00.000000000+01:00

Any non-empty combination of date, time and offset may be formatted.
A time not preceded by a date is prefixed with 'T'. Years outside of
0000 through 9999 are written with a sign and six digits. The fraction
always bears nine digits. The offset is written as 'Z' for UTC, and
with seconds only when they are non-zero.

When parsing, dates may be given in calendar (YYYY-MM-DD), ordinal
(YYYY-DDD) or week (YYYY-Www-D) form, the seconds and fraction of a
time are optional, and ',' may stand in for '.'.
*/
var ISO8601 = register(iso8601{})

type iso8601 struct{}

func (iso8601) Name() string { return "iso8601" }

func (r iso8601) Format(date *chronos.Date, tod *chronos.Time, offset *chronos.UtcOffset) (string, error) {
	if date == nil && tod == nil && offset == nil {
		return "", FormatError{Format: r.Name(), Component: "date", Err: ErrInsufficientInformation}
	}

	b := strings.Builder{}
	if date != nil {
		year, month, day := date.ToCalendarDate()
		if year < 0 || year > 9999 {
			b.WriteByte(signByte(year < 0))
			appendPadded(&b, abs(int(year)), 6)
		} else {
			appendPadded(&b, int(year), 4)
		}
		b.WriteByte('-')
		appendPadded(&b, int(month), 2)
		b.WriteByte('-')
		appendPadded(&b, int(day), 2)
	}

	if tod != nil {
		h, m, s, ns := tod.AsHMSNano()
		b.WriteByte('T')
		appendPadded(&b, int(h), 2)
		b.WriteByte(':')
		appendPadded(&b, int(m), 2)
		b.WriteByte(':')
		appendPadded(&b, int(s), 2)
		appendFraction(&b, ns, 9)
	}

	if offset != nil {
		appendISOOffset(&b, *offset)
	}

	return b.String(), nil
}

func appendISOOffset(b *strings.Builder, o chronos.UtcOffset) {
	if o.IsUTC() {
		b.WriteByte('Z')
		return
	}
	neg, h, m, s := offsetFields(o)
	b.WriteByte(signByte(neg))
	appendPadded(b, h, 2)
	b.WriteByte(':')
	appendPadded(b, m, 2)
	if s != 0 {
		b.WriteByte(':')
		appendPadded(b, s, 2)
	}
}

func (r iso8601) Parse(s string) (Parsed, error) {
	perr := func(c string, err error) (Parsed, error) {
		return Parsed{}, parseFailure(r.Name(), c, s, err)
	}

	if len(s) == 0 {
		return perr("date", ErrInsufficientInformation)
	}

	var out Parsed
	rest := s

	switch {
	case isOffsetOnly(s):
		o, err := chronos.NewUtcOffset(s)
		if err != nil {
			return perr(component(err, "offset"), err)
		}
		out.Offset = &o
		return out, nil
	case s[0] == 'T' || s[0] == 't':
		rest = s[1:]
	case len(s) > 2 && (s[1] == ':' || s[2] == ':'):
		// a bare time
	default:
		end := strings.IndexAny(s, "Tt")
		if end < 0 {
			end = len(s)
		}
		d, err := chronos.NewDate(s[:end])
		if err != nil {
			return perr(component(err, "date"), err)
		}
		out.Date = &d
		if end == len(s) {
			return out, nil
		}
		rest = s[end+1:]
	}

	end := strings.IndexAny(rest, "Zz+-")
	if end < 0 {
		end = len(rest)
	}
	if end == 0 {
		return perr("time", errMalformed)
	}
	t, err := chronos.NewTime(rest[:end])
	if err != nil {
		return perr(component(err, "time"), err)
	}
	out.Time = &t

	if end < len(rest) {
		o, err := chronos.NewUtcOffset(rest[end:])
		if err != nil {
			return perr(component(err, "offset"), err)
		}
		out.Offset = &o
	}

	return out, nil
}

/*
isOffsetOnly reports whether s has the shape of an offset, as opposed
to a signed year.
*/
func isOffsetOnly(s string) bool {
	switch s[0] {
	case 'Z', 'z':
		return len(s) == 1
	case '+', '-':
		return len(s) == 3 || (len(s) > 3 && s[3] == ':')
	}
	return false
}
