package chronos

/*
offset.go contains the UtcOffset type.
*/

/*
UtcOffset implements a fixed displacement from UTC of less than one day,
expressed in hours, minutes and seconds. All three components are zero
or share a single sign.

The zero value is equal to [UTC].
*/
type UtcOffset struct {
	hours, minutes, seconds int8
}

/*
UTC is the zero [UtcOffset].
*/
var UTC = UtcOffset{}

/*
UtcOffsetFromHMS returns an instance of [UtcOffset] alongside an error.

Each component is checked against its own range (±23, ±59 and ±59)
independently. Signs are then reconciled: a non-zero hour forces the
minute and second to its sign, otherwise a non-zero minute forces the
second to its sign. For example, (1, -2, -3) yields +01:02:03.
*/
func UtcOffsetFromHMS(hours, minutes, seconds int8) (UtcOffset, error) {
	if err := checkRange("hours", hours, -23, 23, false); err != nil {
		return UTC, err
	} else if err = checkRange("minutes", minutes, -59, 59, false); err != nil {
		return UTC, err
	} else if err = checkRange("seconds", seconds, -59, 59, false); err != nil {
		return UTC, err
	}

	if (hours > 0 && minutes < 0) || (hours < 0 && minutes > 0) {
		minutes = -minutes
	}
	if (hours > 0 && seconds < 0) || (hours < 0 && seconds > 0) ||
		(minutes > 0 && seconds < 0) || (minutes < 0 && seconds > 0) {
		seconds = -seconds
	}

	return UtcOffset{hours: hours, minutes: minutes, seconds: seconds}, nil
}

/*
UtcOffsetFromWholeSeconds returns an instance of [UtcOffset] spanning
the given number of seconds, which must fall within ±86399.
*/
func UtcOffsetFromWholeSeconds(seconds int32) (UtcOffset, error) {
	if err := checkRange("seconds", seconds, -86_399, 86_399, false); err != nil {
		return UTC, err
	}
	return offsetFromSeconds(seconds), nil
}

func offsetFromSeconds(seconds int32) UtcOffset {
	return UtcOffset{
		hours:   int8(seconds / secondsPerHour),
		minutes: int8(seconds / secondsPerMinute % 60),
		seconds: int8(seconds % 60),
	}
}

// AsHMS returns the hour, minute and second components of the receiver.
func (r UtcOffset) AsHMS() (int8, int8, int8) { return r.hours, r.minutes, r.seconds }

// WholeHours returns the hour component of the receiver.
func (r UtcOffset) WholeHours() int8 { return r.hours }

// WholeMinutes returns the receiver as a signed number of whole minutes.
func (r UtcOffset) WholeMinutes() int16 { return int16(r.hours)*60 + int16(r.minutes) }

// MinutesPastHour returns the minute component of the receiver.
func (r UtcOffset) MinutesPastHour() int8 { return r.minutes }

// WholeSeconds returns the receiver as a signed number of seconds.
func (r UtcOffset) WholeSeconds() int32 {
	return int32(r.hours)*secondsPerHour + int32(r.minutes)*secondsPerMinute + int32(r.seconds)
}

// SecondsPastMinute returns the second component of the receiver.
func (r UtcOffset) SecondsPastMinute() int8 { return r.seconds }

// IsUTC returns true if the receiver is the zero offset.
func (r UtcOffset) IsUTC() bool { return r == UTC }

// IsPositive returns true if the receiver lies east of UTC.
func (r UtcOffset) IsPositive() bool { return r.hours > 0 || r.minutes > 0 || r.seconds > 0 }

// IsNegative returns true if the receiver lies west of UTC.
func (r UtcOffset) IsNegative() bool { return r.hours < 0 || r.minutes < 0 || r.seconds < 0 }

// Neg returns the receiver with its sign inverted.
func (r UtcOffset) Neg() UtcOffset {
	return UtcOffset{hours: -r.hours, minutes: -r.minutes, seconds: -r.seconds}
}

/*
Compare returns -1, 0 or 1 if the receiver lies west of, at or east
of other.
*/
func (r UtcOffset) Compare(other UtcOffset) int {
	a, b := r.WholeSeconds(), other.WholeSeconds()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

/*
String returns the receiver in the form ±HH:MM:SS.
*/
func (r UtcOffset) String() string {
	bld := newStrBuilder()
	if r.IsNegative() {
		bld.WriteByte('-')
	} else {
		bld.WriteByte('+')
	}
	h, m, s := r.hours, r.minutes, r.seconds
	appendPadded(&bld, abs64(int64(h)), 2)
	bld.WriteByte(':')
	appendPadded(&bld, abs64(int64(m)), 2)
	bld.WriteByte(':')
	appendPadded(&bld, abs64(int64(s)), 2)
	return bld.String()
}

/*
NewUtcOffset returns an instance of [UtcOffset] alongside an error
following an attempt to marshal x.

Accepted inputs are [UtcOffset], an int or int32 number of whole
seconds, or a string (or []byte) of "Z", "±HH", "±HH:MM" or "±HH:MM:SS".
*/
func NewUtcOffset(x any, constraints ...Constraint[UtcOffset]) (UtcOffset, error) {
	var o UtcOffset
	var err error

	switch tv := x.(type) {
	case UtcOffset:
		o = tv
	case int:
		if tv < -86_399 || tv > 86_399 {
			err = ComponentRange{Name: "seconds", Minimum: -86_399, Maximum: 86_399, Value: int64(tv)}
		} else {
			o = offsetFromSeconds(int32(tv))
		}
	case int32:
		o, err = UtcOffsetFromWholeSeconds(tv)
	case string:
		o, err = parseUtcOffset(tv)
	case []byte:
		o, err = parseUtcOffset(string(tv))
	default:
		err = errorBadTypeForConstructor("UtcOffset", x)
	}

	if len(constraints) > 0 && err == nil {
		var group ConstraintGroup[UtcOffset] = constraints
		err = group.Constrain(o)
	}

	if err != nil {
		o = UTC
	}

	return o, err
}

func parseUtcOffset(s string) (UtcOffset, error) {
	o, n, err := scanUtcOffset(s, 0)
	if err == nil && n != len(s) {
		err = errorTrailingText
	}
	if err != nil {
		if _, isRange := err.(ComponentRange); !isRange {
			err = errorBadText("UtcOffset", s, err)
		}
	}
	return o, err
}

/*
scanUtcOffset reads "Z" or ±HH[:MM[:SS]] from s at i, returning the
offset and the index following it.
*/
func scanUtcOffset(s string, i int) (UtcOffset, int, error) {
	if i >= len(s) {
		return UTC, i, errorEmptyText
	}
	if s[i] == 'Z' || s[i] == 'z' {
		return UTC, i + 1, nil
	}

	var sign int8 = 1
	switch s[i] {
	case '-':
		sign = -1
	case '+':
	default:
		return UTC, i, errorBadSeparator
	}
	i++

	var hms [3]int8
	for k := 0; k < 3; k++ {
		if k > 0 {
			if i >= len(s) || s[i] != ':' {
				break
			}
			i++
		}
		v, ok := atoiN(s, i, 2)
		if !ok {
			return UTC, i, errorBadDigits
		}
		hms[k] = int8(v) * sign
		i += 2
	}

	o, err := UtcOffsetFromHMS(hms[0], hms[1], hms[2])
	return o, i, err
}
