package wellknown

/*
rfc3339.go contains the RFC 3339 internet date/time format.
*/

import (
	"strings"

	"github.com/JesseCoretta/go-chronos"
)

/*
RFC3339 implements the date/time format of RFC 3339:

	2021-01-01T00:00:00.5+01:00

A date, a time and an offset are all required. Years must lie within
0000 through 9999, and the offset must be a whole number of minutes.
The fraction is written with as few digits as possible and omitted if
zero. A UTC offset is written as 'Z'.

When parsing, a leap second (:60) is accepted only where it falls at
the last second of a UTC month, and is read as 59.999999999.
*/
var RFC3339 = register(rfc3339{})

type rfc3339 struct{}

func (rfc3339) Name() string { return "rfc3339" }

func (r rfc3339) Format(date *chronos.Date, tod *chronos.Time, offset *chronos.UtcOffset) (string, error) {
	ferr := func(c string, err error) (string, error) {
		return "", FormatError{Format: r.Name(), Component: c, Err: err}
	}
	switch {
	case date == nil:
		return ferr("date", ErrInsufficientInformation)
	case tod == nil:
		return ferr("time", ErrInsufficientInformation)
	case offset == nil:
		return ferr("offset", ErrInsufficientInformation)
	}

	year, month, day := date.ToCalendarDate()
	if year < 0 || year > 9999 {
		return ferr("year", ErrUnrepresentable)
	}
	neg, oh, om, os := offsetFields(*offset)
	if os != 0 {
		return ferr("offset_second", ErrUnrepresentable)
	}

	b := strings.Builder{}
	appendPadded(&b, int(year), 4)
	b.WriteByte('-')
	appendPadded(&b, int(month), 2)
	b.WriteByte('-')
	appendPadded(&b, int(day), 2)
	b.WriteByte('T')
	h, m, s, ns := tod.AsHMSNano()
	appendPadded(&b, int(h), 2)
	b.WriteByte(':')
	appendPadded(&b, int(m), 2)
	b.WriteByte(':')
	appendPadded(&b, int(s), 2)
	appendFraction(&b, ns, 0)

	if offset.IsUTC() {
		b.WriteByte('Z')
	} else {
		b.WriteByte(signByte(neg))
		appendPadded(&b, oh, 2)
		b.WriteByte(':')
		appendPadded(&b, om, 2)
	}
	return b.String(), nil
}

func (r rfc3339) Parse(s string) (Parsed, error) {
	perr := func(c string, err error) (Parsed, error) {
		return Parsed{}, parseFailure(r.Name(), c, s, err)
	}

	year, ok1 := digits(s, 0, 4)
	month, ok2 := digits(s, 5, 2)
	day, ok3 := digits(s, 8, 2)
	if !ok1 || !ok2 || !ok3 || s[4] != '-' || s[7] != '-' {
		return perr("date", errMalformed)
	}
	if len(s) < 11 || (s[10] != 'T' && s[10] != 't') {
		return perr("separator", errMalformed)
	}
	hour, ok1 := digits(s, 11, 2)
	minute, ok2 := digits(s, 14, 2)
	second, ok3 := digits(s, 17, 2)
	if !ok1 || !ok2 || !ok3 || s[13] != ':' || s[16] != ':' {
		return perr("time", errMalformed)
	}
	nanos, i, ok := scanFraction(s, 19, len(s))
	if !ok {
		return perr("fraction", errMalformed)
	}

	var offset chronos.UtcOffset
	switch {
	case i >= len(s):
		return perr("offset", ErrInsufficientInformation)
	case s[i] == 'Z' || s[i] == 'z':
		offset = chronos.UTC
		i++
	case s[i] == '+' || s[i] == '-':
		oh, ok1 := digits(s, i+1, 2)
		om, ok2 := digits(s, i+4, 2)
		if !ok1 || !ok2 || s[i+3] != ':' {
			return perr("offset", errMalformed)
		}
		sign := int8(1)
		if s[i] == '-' {
			sign = -1
		}
		var err error
		if offset, err = chronos.UtcOffsetFromHMS(sign*int8(oh), sign*int8(om), 0); err != nil {
			return perr(component(err, "offset"), err)
		}
		i += 6
	default:
		return perr("offset", errMalformed)
	}
	if i != len(s) {
		return perr("offset", errTrailing)
	}

	date, err := chronos.DateFromCalendarDate(int32(year), chronos.Month(month), uint8(day))
	if err != nil {
		return perr(component(err, "date"), err)
	}

	leap := second == 60
	if leap {
		second, nanos = 59, 999_999_999
	}
	tod, err := chronos.TimeFromHMSNano(uint8(hour), uint8(minute), uint8(second), nanos)
	if err != nil {
		return perr(component(err, "time"), err)
	}

	if leap {
		utc := date.WithTime(tod).AssumeOffset(offset).ToOffset(chronos.UTC)
		y, m, d := utc.ToCalendarDate()
		if utc.Hour() != 23 || utc.Minute() != 59 || d != chronos.DaysInYearMonth(y, m) {
			return perr("second", errLeapSecond)
		}
	}

	return Parsed{Date: &date, Time: &tod, Offset: &offset}, nil
}
