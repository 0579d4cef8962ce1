package chronos

/*
time.go contains the Time type, which represents a wall-clock time
of day independent of any date or offset.
*/

import (
	"strings"
	"time"
)

/*
Time implements a clock time within a single day, with nanosecond
precision. Leap seconds are not representable.

The zero value is equal to [Midnight].
*/
type Time struct {
	hour, minute, second uint8
	nanosecond           uint32
}

var (
	// Midnight is the first instant of a day, 0:00:00.
	Midnight = Time{}

	maxTime = Time{hour: 23, minute: 59, second: 59, nanosecond: nanosPerSecond - 1}
)

/*
TimeFromHMS returns an instance of [Time] alongside an error following
validation of the hour (0-23), minute (0-59) and second (0-59).
*/
func TimeFromHMS(hour, minute, second uint8) (Time, error) {
	return TimeFromHMSNano(hour, minute, second, 0)
}

/*
TimeFromHMSMilli returns an instance of [Time] alongside an error. The
millisecond must fall within 0-999.
*/
func TimeFromHMSMilli(hour, minute, second uint8, millisecond uint16) (Time, error) {
	if err := checkRange("millisecond", millisecond, 0, 999, false); err != nil {
		return Midnight, err
	}
	return TimeFromHMSNano(hour, minute, second, uint32(millisecond)*nanosPerMilli)
}

/*
TimeFromHMSMicro returns an instance of [Time] alongside an error. The
microsecond must fall within 0-999999.
*/
func TimeFromHMSMicro(hour, minute, second uint8, microsecond uint32) (Time, error) {
	if err := checkRange("microsecond", microsecond, 0, 999_999, false); err != nil {
		return Midnight, err
	}
	return TimeFromHMSNano(hour, minute, second, microsecond*nanosPerMicro)
}

/*
TimeFromHMSNano returns an instance of [Time] alongside an error. The
nanosecond must fall within 0-999999999.
*/
func TimeFromHMSNano(hour, minute, second uint8, nanosecond uint32) (Time, error) {
	if err := checkRange("hour", hour, 0, 23, false); err != nil {
		return Midnight, err
	} else if err = checkRange("minute", minute, 0, 59, false); err != nil {
		return Midnight, err
	} else if err = checkRange("second", second, 0, 59, false); err != nil {
		return Midnight, err
	} else if err = checkRange("nanosecond", nanosecond, 0, nanosPerSecond-1, false); err != nil {
		return Midnight, err
	}
	return Time{hour: hour, minute: minute, second: second, nanosecond: nanosecond}, nil
}

// AsHMS returns the hour, minute and second of the receiver.
func (r Time) AsHMS() (uint8, uint8, uint8) { return r.hour, r.minute, r.second }

// AsHMSMilli returns the hour, minute, second and millisecond of the receiver.
func (r Time) AsHMSMilli() (uint8, uint8, uint8, uint16) {
	return r.hour, r.minute, r.second, r.Millisecond()
}

// AsHMSMicro returns the hour, minute, second and microsecond of the receiver.
func (r Time) AsHMSMicro() (uint8, uint8, uint8, uint32) {
	return r.hour, r.minute, r.second, r.Microsecond()
}

// AsHMSNano returns the hour, minute, second and nanosecond of the receiver.
func (r Time) AsHMSNano() (uint8, uint8, uint8, uint32) {
	return r.hour, r.minute, r.second, r.nanosecond
}

func (r Time) Hour() uint8         { return r.hour }
func (r Time) Minute() uint8       { return r.minute }
func (r Time) Second() uint8       { return r.second }
func (r Time) Millisecond() uint16 { return uint16(r.nanosecond / nanosPerMilli) }
func (r Time) Microsecond() uint32 { return r.nanosecond / nanosPerMicro }
func (r Time) Nanosecond() uint32  { return r.nanosecond }

func (r Time) secondsOfDay() int64 {
	return int64(r.hour)*secondsPerHour + int64(r.minute)*secondsPerMinute + int64(r.second)
}

/*
AdjustingAdd adds the sub-day portion of d to the receiver, wrapping
around midnight. The returned [DateAdjustment] reports whether, and in
which direction, the wrap crossed a day boundary.
*/
func (r Time) AdjustingAdd(d Duration) (DateAdjustment, Time) {
	return cascadeClock(
		int64(r.hour)+d.WholeHours()%24,
		int64(r.minute)+d.WholeMinutes()%60,
		int64(r.second)+d.WholeSeconds()%60,
		int64(r.nanosecond)+int64(d.SubsecNanoseconds()),
	)
}

/*
AdjustingSub subtracts the sub-day portion of d from the receiver,
wrapping around midnight. See [Time.AdjustingAdd].
*/
func (r Time) AdjustingSub(d Duration) (DateAdjustment, Time) {
	return cascadeClock(
		int64(r.hour)-d.WholeHours()%24,
		int64(r.minute)-d.WholeMinutes()%60,
		int64(r.second)-d.WholeSeconds()%60,
		int64(r.nanosecond)-int64(d.SubsecNanoseconds()),
	)
}

/*
adjustingAddElapsed adds the sub-day portion of e to the receiver. The
Boolean return value is true if the clock wrapped into the next day.
*/
func (r Time) adjustingAddElapsed(e Elapsed) (bool, Time) {
	secs := e.seconds
	adj, t := cascadeClock(
		int64(r.hour)+int64(secs/secondsPerHour%24),
		int64(r.minute)+int64(secs/secondsPerMinute%60),
		int64(r.second)+int64(secs%60),
		int64(r.nanosecond)+int64(e.nanoseconds),
	)
	return adj == AdjustNext, t
}

/*
adjustingSubElapsed subtracts the sub-day portion of e from the
receiver. The Boolean return value is true if the clock wrapped into
the previous day.
*/
func (r Time) adjustingSubElapsed(e Elapsed) (bool, Time) {
	secs := e.seconds
	adj, t := cascadeClock(
		int64(r.hour)-int64(secs/secondsPerHour%24),
		int64(r.minute)-int64(secs/secondsPerMinute%60),
		int64(r.second)-int64(secs%60),
		int64(r.nanosecond)-int64(e.nanoseconds),
	)
	return adj == AdjustPrevious, t
}

// Add returns the receiver advanced by d, wrapping around midnight.
func (r Time) Add(d Duration) Time {
	_, t := r.AdjustingAdd(d)
	return t
}

// Sub returns the receiver moved back by d, wrapping around midnight.
func (r Time) Sub(d Duration) Time {
	_, t := r.AdjustingSub(d)
	return t
}

// AddElapsed returns the receiver advanced by e, wrapping around midnight.
func (r Time) AddElapsed(e Elapsed) Time {
	_, t := r.adjustingAddElapsed(e)
	return t
}

// SubElapsed returns the receiver moved back by e, wrapping around midnight.
func (r Time) SubElapsed(e Elapsed) Time {
	_, t := r.adjustingSubElapsed(e)
	return t
}

/*
Since returns the signed [Duration] from other to the receiver, both
assumed to fall on the same day.
*/
func (r Time) Since(other Time) Duration {
	nanos, carry := normalizeSubunit(int64(r.nanosecond)-int64(other.nanosecond), 0, nanosPerSecond)
	seconds := r.secondsOfDay() - other.secondsOfDay() + carry
	return DurationFromParts(seconds, int32(nanos))
}

/*
Compare returns -1, 0 or 1 if the receiver is earlier than, equal to
or later than other.
*/
func (r Time) Compare(other Time) int {
	a, b := r.secondsOfDay(), other.secondsOfDay()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	case r.nanosecond < other.nanosecond:
		return -1
	case r.nanosecond > other.nanosecond:
		return 1
	}
	return 0
}

/*
String returns the receiver in the form H:MM:SS.f, where the fraction
bears as few digits (at least one) as are needed to represent the
nanosecond exactly.
*/
func (r Time) String() string {
	bld := newStrBuilder()
	r.appendTo(&bld)
	return bld.String()
}

func (r Time) appendTo(b *strings.Builder) {
	b.WriteString(itoa(int(r.hour)))
	b.WriteByte(':')
	appendPadded(b, uint64(r.minute), 2)
	b.WriteByte(':')
	appendPadded(b, uint64(r.second), 2)
	appendFraction(b, r.nanosecond, 1)
}

/*
NewTime returns an instance of [Time] alongside an error following an
attempt to marshal x.

Accepted inputs are [Time], [time.Time] (whose wall clock is used
as-is) and a string (or []byte) in the form H:MM[:SS[.fffffffff]].
*/
func NewTime(x any, constraints ...Constraint[Time]) (Time, error) {
	var t Time
	var err error

	switch tv := x.(type) {
	case Time:
		t = tv
	case time.Time:
		t = Time{
			hour:       uint8(tv.Hour()),
			minute:     uint8(tv.Minute()),
			second:     uint8(tv.Second()),
			nanosecond: uint32(tv.Nanosecond()),
		}
	case string:
		t, err = parseTime(tv)
	case []byte:
		t, err = parseTime(string(tv))
	default:
		err = errorBadTypeForConstructor("Time", x)
	}

	if len(constraints) > 0 && err == nil {
		var group ConstraintGroup[Time] = constraints
		err = group.Constrain(t)
	}

	if err != nil {
		t = Midnight
	}

	return t, err
}

func parseTime(s string) (Time, error) {
	t, n, err := scanTime(s, 0)
	if err == nil && n != len(s) {
		err = errorTrailingText
	}
	if err != nil {
		if _, isRange := err.(ComponentRange); !isRange {
			err = errorBadText("Time", s, err)
		}
	}
	return t, err
}

/*
scanTime reads H[H]:MM[:SS[.f]] from s at i, returning the time and
the index following it.
*/
func scanTime(s string, i int) (Time, int, error) {
	width := 2
	if i+1 < len(s) && s[i+1] == ':' {
		width = 1
	}
	hour, ok := atoiN(s, i, width)
	if !ok {
		return Midnight, i, errorBadDigits
	}
	i += width

	var minute, second int64
	if i >= len(s) || s[i] != ':' {
		return Midnight, i, errorBadSeparator
	}
	if minute, ok = atoiN(s, i+1, 2); !ok {
		return Midnight, i, errorBadDigits
	}
	i += 3

	if i < len(s) && s[i] == ':' {
		if second, ok = atoiN(s, i+1, 2); !ok {
			return Midnight, i, errorBadDigits
		}
		i += 3
	}

	nanos, i, err := scanFraction(s, i)
	if err != nil {
		return Midnight, i, err
	}

	if hour > 255 || minute > 255 || second > 255 {
		return Midnight, i, errorBadDigits
	}
	t, err := TimeFromHMSNano(uint8(hour), uint8(minute), uint8(second), nanos)
	return t, i, err
}

/*
scanFraction reads an optional '.' or ',' followed by one to nine
digits from s at i.
*/
func scanFraction(s string, i int) (uint32, int, error) {
	if i >= len(s) || (s[i] != '.' && s[i] != ',') {
		return 0, i, nil
	}
	i++
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	digits := i - start
	if digits == 0 || digits > 9 {
		return 0, i, errorFractionLength
	}
	frac, _ := atoiN(s, start, digits)
	for ; digits < 9; digits++ {
		frac *= 10
	}
	return uint32(frac), i, nil
}
