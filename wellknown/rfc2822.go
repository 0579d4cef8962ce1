package wellknown

/*
rfc2822.go contains the RFC 2822 internet message date format.
*/

import (
	"strings"

	"github.com/JesseCoretta/go-chronos"
)

/*
RFC2822 implements the date format of RFC 2822 message headers:

	Fri, 01 Jan 2021 00:00:00 +0100

A date, a time and an offset are all required. Years must lie within
1900 through 9999, and the offset must be a whole number of minutes.
Subsecond precision is not expressible and is dropped on format.

When parsing, the day name is optional but must agree with the date
when present, the seconds are optional, and the zone may be given as
"UT" or "GMT" as well as ±HHMM.
*/
var RFC2822 = register(rfc2822{})

type rfc2822 struct{}

func (rfc2822) Name() string { return "rfc2822" }

func (r rfc2822) Format(date *chronos.Date, tod *chronos.Time, offset *chronos.UtcOffset) (string, error) {
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
	if year < 1900 || year > 9999 {
		return ferr("year", ErrUnrepresentable)
	}
	neg, oh, om, os := offsetFields(*offset)
	if os != 0 {
		return ferr("offset_second", ErrUnrepresentable)
	}

	b := strings.Builder{}
	b.WriteString(date.Weekday().String()[:3])
	b.WriteString(", ")
	appendPadded(&b, int(day), 2)
	b.WriteByte(' ')
	b.WriteString(month.String()[:3])
	b.WriteByte(' ')
	appendPadded(&b, int(year), 4)
	b.WriteByte(' ')
	h, m, s := tod.AsHMS()
	appendPadded(&b, int(h), 2)
	b.WriteByte(':')
	appendPadded(&b, int(m), 2)
	b.WriteByte(':')
	appendPadded(&b, int(s), 2)
	b.WriteByte(' ')
	b.WriteByte(signByte(neg))
	appendPadded(&b, oh, 2)
	appendPadded(&b, om, 2)
	return b.String(), nil
}

func (r rfc2822) Parse(s string) (Parsed, error) {
	perr := func(c string, err error) (Parsed, error) {
		return Parsed{}, parseFailure(r.Name(), c, s, err)
	}

	fields := strings.Fields(s)
	dayName := ""
	if len(fields) > 0 && strings.HasSuffix(fields[0], ",") {
		dayName = strings.TrimSuffix(fields[0], ",")
		fields = fields[1:]
	}
	if len(fields) != 5 {
		return perr("date", errMalformed)
	}

	dayNum, ok := digits(fields[0], 0, len(fields[0]))
	if !ok || len(fields[0]) > 2 {
		return perr("day", errMalformed)
	}
	month, ok := monthByAbbrev(fields[1])
	if !ok {
		return perr("month", errMalformed)
	}
	year, ok := digits(fields[2], 0, len(fields[2]))
	if !ok || len(fields[2]) != 4 {
		return perr("year", errMalformed)
	}
	date, err := chronos.DateFromCalendarDate(int32(year), month, uint8(dayNum))
	if err != nil {
		return perr(component(err, "date"), err)
	}
	if dayName != "" && !strings.EqualFold(dayName, date.Weekday().String()[:3]) {
		return perr("weekday", errWeekdayMismatch)
	}

	// HH:MM or HH:MM:SS
	clock := fields[3]
	hour, ok1 := digits(clock, 0, 2)
	minute, ok2 := digits(clock, 3, 2)
	if !ok1 || !ok2 || clock[2] != ':' || (len(clock) != 5 && len(clock) != 8) {
		return perr("time", errMalformed)
	}
	second := 0
	if len(clock) == 8 {
		if second, ok = digits(clock, 6, 2); !ok || clock[5] != ':' {
			return perr("time", errMalformed)
		}
	}
	tod, err := chronos.TimeFromHMS(uint8(hour), uint8(minute), uint8(second))
	if err != nil {
		return perr(component(err, "time"), err)
	}

	offset, err := r.parseZone(fields[4])
	if err != nil {
		return perr(component(err, "offset"), err)
	}

	return Parsed{Date: &date, Time: &tod, Offset: &offset}, nil
}

func (rfc2822) parseZone(z string) (chronos.UtcOffset, error) {
	switch strings.ToUpper(z) {
	case "UT", "GMT", "Z":
		return chronos.UTC, nil
	}
	if len(z) != 5 || (z[0] != '+' && z[0] != '-') {
		return chronos.UTC, errMalformed
	}
	hh, ok1 := digits(z, 1, 2)
	mm, ok2 := digits(z, 3, 2)
	if !ok1 || !ok2 {
		return chronos.UTC, errMalformed
	}
	sign := int8(1)
	if z[0] == '-' {
		sign = -1
	}
	return chronos.UtcOffsetFromHMS(sign*int8(hh), sign*int8(mm), 0)
}

func monthByAbbrev(s string) (chronos.Month, bool) {
	for m := chronos.January; m <= chronos.December; m++ {
		if strings.EqualFold(s, m.String()[:3]) {
			return m, true
		}
	}
	return 0, false
}
