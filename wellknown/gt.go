package wellknown

/*
gt.go contains the GeneralizedTime format of ITU-T X.680.
*/

import "github.com/JesseCoretta/go-chronos"

/*
GeneralizedTime implements the GeneralizedTime format of ITU-T X.680,
as used by ASN.1 and LDAP:

	20210101000000.5Z
	20210101010000+0100

A date and time are required. The fraction is limited to microsecond
precision; finer digits are dropped on format. An offset is optional:
without one, the value is a local time. A UTC offset is written as 'Z',
any other as ±HHMM, and offsets bearing seconds cannot be written.
*/
var GeneralizedTime = register(generalizedTime{})

type generalizedTime struct{}

func (generalizedTime) Name() string { return "generalizedtime" }

func (r generalizedTime) Format(date *chronos.Date, tod *chronos.Time, offset *chronos.UtcOffset) (string, error) {
	ferr := func(c string, err error) (string, error) {
		return "", FormatError{Format: r.Name(), Component: c, Err: err}
	}
	switch {
	case date == nil:
		return ferr("date", ErrInsufficientInformation)
	case tod == nil:
		return ferr("time", ErrInsufficientInformation)
	}

	year, month, day := date.ToCalendarDate()
	if year < 0 || year > 9999 {
		return ferr("year", ErrUnrepresentable)
	}

	var buf [24]byte // 14 base + '.' + 6 frac + '+HHMM'
	i := 0
	put2 := func(v int) {
		buf[i] = byte('0' + v/10)
		buf[i+1] = byte('0' + v%10)
		i += 2
	}

	put2(int(year) / 100)
	put2(int(year) % 100)
	put2(int(month))
	put2(int(day))
	h, m, s, ns := tod.AsHMSNano()
	put2(int(h))
	put2(int(m))
	put2(int(s))

	// optional fractional seconds (µs precision); nothing is written
	// when the microseconds are zero, even if nanoseconds remain
	if frac := int(ns / 1_000); frac != 0 {
		buf[i] = '.'
		i++
		for p := 100_000; p >= 1 && frac != 0; p /= 10 {
			buf[i] = byte('0' + frac/p)
			frac %= p
			i++
		}
	}

	if offset != nil {
		neg, oh, om, os := offsetFields(*offset)
		switch {
		case os != 0:
			return ferr("offset_second", ErrUnrepresentable)
		case offset.IsUTC():
			buf[i] = 'Z'
			i++
		default:
			buf[i] = signByte(neg)
			i++
			put2(oh)
			put2(om)
		}
	}

	return string(buf[:i]), nil
}

func (r generalizedTime) Parse(s string) (Parsed, error) {
	perr := func(c string, err error) (Parsed, error) {
		return Parsed{}, parseFailure(r.Name(), c, s, err)
	}

	if len(s) < 14 {
		return perr("date", errMalformed)
	}
	var f [7]int
	for k := range f {
		v, ok := digits(s, k*2, 2)
		if !ok {
			return perr("date", errMalformed)
		}
		f[k] = v
	}
	year := f[0]*100 + f[1]

	nanos, i, ok := scanFraction(s, 14, 6)
	if !ok {
		return perr("fraction", errMalformed)
	}

	var offset *chronos.UtcOffset
	if i < len(s) {
		o, next, err := r.parseZone(s, i)
		if err != nil {
			return perr(component(err, "offset"), err)
		}
		offset, i = &o, next
	}
	if i != len(s) {
		return perr("offset", errTrailing)
	}

	date, err := chronos.DateFromCalendarDate(int32(year), chronos.Month(f[2]), uint8(f[3]))
	if err != nil {
		return perr(component(err, "date"), err)
	}
	tod, err := chronos.TimeFromHMSNano(uint8(f[4]), uint8(f[5]), uint8(f[6]), nanos)
	if err != nil {
		return perr(component(err, "time"), err)
	}

	return Parsed{Date: &date, Time: &tod, Offset: offset}, nil
}

func (generalizedTime) parseZone(s string, i int) (chronos.UtcOffset, int, error) {
	switch s[i] {
	case 'Z':
		return chronos.UTC, i + 1, nil
	case '+', '-':
		hh, ok1 := digits(s, i+1, 2)
		mm, ok2 := digits(s, i+3, 2)
		if !ok1 || !ok2 {
			return chronos.UTC, i, errMalformed
		}
		sign := int8(1)
		if s[i] == '-' {
			sign = -1
		}
		o, err := chronos.UtcOffsetFromHMS(sign*int8(hh), sign*int8(mm), 0)
		return o, i + 5, err
	}
	return chronos.UTC, i, errMalformed
}
