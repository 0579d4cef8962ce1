package chronos

/*
dur.go contains the signed Duration type and its arithmetic.
*/

import (
	"math"
	"math/big"
	"time"
)

const (
	nanosPerMicro  = 1_000
	nanosPerMilli  = 1_000_000
	nanosPerSecond = 1_000_000_000
)

/*
Duration implements a signed span of time with nanosecond precision.

Internally, a whole number of seconds is held alongside a nanosecond
remainder whose magnitude never reaches one second. The two values are
either zero or share the same sign.

The zero value is a valid zero-length Duration.
*/
type Duration struct {
	seconds     int64
	nanoseconds int32
}

var (
	ZeroDuration = Duration{}
	Nanosecond   = Duration{nanoseconds: 1}
	Microsecond  = Duration{nanoseconds: nanosPerMicro}
	Millisecond  = Duration{nanoseconds: nanosPerMilli}
	Second       = Duration{seconds: 1}
	Minute       = Duration{seconds: secondsPerMinute}
	Hour         = Duration{seconds: secondsPerHour}
	Day          = Duration{seconds: secondsPerDay}
	Week         = Duration{seconds: secondsPerWeek}
	MinDuration  = Duration{seconds: math.MinInt64, nanoseconds: -999_999_999}
	MaxDuration  = Duration{seconds: math.MaxInt64, nanoseconds: 999_999_999}
)

/*
DurationFromParts returns an instance of [Duration] built from seconds
and nanoseconds. Nanoseconds in excess of one second are carried into
seconds, after which any sign disagreement between the two is resolved
in favor of seconds. For example, one second and -0.5e9 nanoseconds
yields half a second.

A carry which would exceed the representable range saturates.
*/
func DurationFromParts(seconds int64, nanoseconds int32) Duration {
	carry := int64(nanoseconds / nanosPerSecond)
	nanoseconds %= nanosPerSecond

	var ok bool
	if seconds, ok = checkedAdd64(seconds, carry); !ok {
		debugSaturate(newLItem(carry, "nanosecond carry"))
		if carry > 0 {
			return MaxDuration
		}
		return MinDuration
	}

	if seconds > 0 && nanoseconds < 0 {
		seconds--
		nanoseconds += nanosPerSecond
	} else if seconds < 0 && nanoseconds > 0 {
		seconds++
		nanoseconds -= nanosPerSecond
	}

	return Duration{seconds: seconds, nanoseconds: nanoseconds}
}

/*
Weeks returns an instance of [Duration] spanning the given number of
weeks. Values beyond the representable range saturate.
*/
func Weeks(weeks int64) Duration { return Seconds(saturatingMul64(weeks, secondsPerWeek)) }

/*
Days returns an instance of [Duration] spanning the given number of
days. Values beyond the representable range saturate.
*/
func Days(days int64) Duration { return Seconds(saturatingMul64(days, secondsPerDay)) }

/*
Hours returns an instance of [Duration] spanning the given number of
hours. Values beyond the representable range saturate.
*/
func Hours(hours int64) Duration { return Seconds(saturatingMul64(hours, secondsPerHour)) }

/*
Minutes returns an instance of [Duration] spanning the given number of
minutes. Values beyond the representable range saturate.
*/
func Minutes(minutes int64) Duration { return Seconds(saturatingMul64(minutes, secondsPerMinute)) }

// Seconds returns an instance of [Duration] spanning the given number of seconds.
func Seconds(seconds int64) Duration { return Duration{seconds: seconds} }

// Milliseconds returns an instance of [Duration] spanning the given number of milliseconds.
func Milliseconds(ms int64) Duration {
	return Duration{seconds: ms / 1_000, nanoseconds: int32(ms%1_000) * nanosPerMilli}
}

// Microseconds returns an instance of [Duration] spanning the given number of microseconds.
func Microseconds(us int64) Duration {
	return Duration{seconds: us / 1_000_000, nanoseconds: int32(us%1_000_000) * nanosPerMicro}
}

// Nanoseconds returns an instance of [Duration] spanning the given number of nanoseconds.
func Nanoseconds(ns int64) Duration {
	return Duration{seconds: ns / nanosPerSecond, nanoseconds: int32(ns % nanosPerSecond)}
}

/*
NanosecondsBig returns an instance of [Duration] spanning the number of
nanoseconds held by ns, which may exceed 64 bits. If the value does not
fit, the result saturates and false is returned.
*/
func NanosecondsBig(ns *big.Int) (Duration, bool) {
	if ns == nil {
		return ZeroDuration, true
	}
	q, rem := new(big.Int).QuoRem(ns, newBigInt(nanosPerSecond), new(big.Int))
	seconds, ok := bigToInt64(q)
	if !ok {
		debugSaturate(newLItem(q.String(), "seconds"))
		if q.Sign() < 0 {
			return MinDuration, false
		}
		return MaxDuration, false
	}
	return Duration{seconds: seconds, nanoseconds: int32(rem.Int64())}, true
}

/*
SecondsFloat returns an instance of [Duration] spanning the given number
of seconds, rounded to the nearest nanosecond. NaN yields a zero-length
Duration; values beyond the representable range saturate.
*/
func SecondsFloat(seconds float64) Duration {
	switch {
	case math.IsNaN(seconds):
		return ZeroDuration
	case seconds >= math.MaxInt64:
		debugSaturate(newLItem(fmtFloat(seconds, 'g', -1, 64), "seconds"))
		return MaxDuration
	case seconds < math.MinInt64:
		debugSaturate(newLItem(fmtFloat(seconds, 'g', -1, 64), "seconds"))
		return MinDuration
	}

	whole := math.Trunc(seconds)
	nanos := math.Round((seconds - whole) * nanosPerSecond)
	if nanos >= nanosPerSecond {
		whole++
		nanos -= nanosPerSecond
	} else if nanos <= -nanosPerSecond {
		whole--
		nanos += nanosPerSecond
	}

	return Duration{seconds: int64(whole), nanoseconds: int32(nanos)}
}

/*
SecondsFloat32 is the single-precision counterpart of [SecondsFloat].
*/
func SecondsFloat32(seconds float32) Duration { return SecondsFloat(float64(seconds)) }

/*
FromStd returns an instance of [Duration] equivalent to d.
*/
func FromStd(d time.Duration) Duration {
	return Nanoseconds(int64(d))
}

/*
Std returns the [time.Duration] equivalent of the receiver instance.
False is returned if the receiver exceeds the roughly 292 year range
of [time.Duration].
*/
func (r Duration) Std() (time.Duration, bool) {
	ns, ok := checkedMul64(r.seconds, nanosPerSecond)
	if ok {
		ns, ok = checkedAdd64(ns, int64(r.nanoseconds))
	}
	return time.Duration(ns), ok
}

// IsZero returns true if the receiver spans no time.
func (r Duration) IsZero() bool { return r.seconds == 0 && r.nanoseconds == 0 }

// IsPositive returns true if the receiver is greater than zero.
func (r Duration) IsPositive() bool { return r.seconds > 0 || r.nanoseconds > 0 }

// IsNegative returns true if the receiver is less than zero.
func (r Duration) IsNegative() bool { return r.seconds < 0 || r.nanoseconds < 0 }

/*
Whole unit accessors. Each truncates toward zero.
*/
func (r Duration) WholeWeeks() int64   { return r.seconds / secondsPerWeek }
func (r Duration) WholeDays() int64    { return r.seconds / secondsPerDay }
func (r Duration) WholeHours() int64   { return r.seconds / secondsPerHour }
func (r Duration) WholeMinutes() int64 { return r.seconds / secondsPerMinute }
func (r Duration) WholeSeconds() int64 { return r.seconds }

/*
WholeMilliseconds returns the total number of whole milliseconds within
the receiver instance. A [big.Int] is returned because the count can
exceed 64 bits.
*/
func (r Duration) WholeMilliseconds() *big.Int { return r.wholeSubunits(1_000, nanosPerMilli) }

// WholeMicroseconds returns the total number of whole microseconds.
func (r Duration) WholeMicroseconds() *big.Int { return r.wholeSubunits(1_000_000, nanosPerMicro) }

// WholeNanoseconds returns the total number of nanoseconds.
func (r Duration) WholeNanoseconds() *big.Int { return r.wholeSubunits(nanosPerSecond, 1) }

func (r Duration) wholeSubunits(perSecond, nanosPerUnit int64) *big.Int {
	total := new(big.Int).Mul(newBigInt(r.seconds), newBigInt(perSecond))
	return total.Add(total, newBigInt(int64(r.nanoseconds)/nanosPerUnit))
}

/*
Subsecond accessors return the fractional part of the receiver, sharing
its sign.
*/
func (r Duration) SubsecMilliseconds() int16 { return int16(r.nanoseconds / nanosPerMilli) }
func (r Duration) SubsecMicroseconds() int32 { return r.nanoseconds / nanosPerMicro }
func (r Duration) SubsecNanoseconds() int32  { return r.nanoseconds }

// AsSecondsFloat returns the receiver as a fractional number of seconds.
func (r Duration) AsSecondsFloat() float64 {
	return float64(r.seconds) + float64(r.nanoseconds)/nanosPerSecond
}

// AsSecondsFloat32 returns the receiver as a fractional number of seconds.
func (r Duration) AsSecondsFloat32() float32 {
	return float32(r.seconds) + float32(r.nanoseconds)/nanosPerSecond
}

/*
balance reconciles a second count with a nanosecond sum whose magnitude
is below two seconds. A non-zero carry is returned if moving a second
into or out of the second count would overflow it; +1 indicates the
positive direction.
*/
func balance(seconds int64, nanos int32) (Duration, int) {
	if nanos >= nanosPerSecond || (seconds < 0 && nanos > 0) {
		if seconds == math.MaxInt64 {
			return ZeroDuration, 1
		}
		seconds++
		nanos -= nanosPerSecond
	} else if nanos <= -nanosPerSecond || (seconds > 0 && nanos < 0) {
		if seconds == math.MinInt64 {
			return ZeroDuration, -1
		}
		seconds--
		nanos += nanosPerSecond
	}
	return Duration{seconds: seconds, nanoseconds: nanos}, 0
}

/*
CheckedAdd returns the sum of the receiver and rhs. False is returned
if the sum overflows.
*/
func (r Duration) CheckedAdd(rhs Duration) (Duration, bool) {
	seconds, ok := checkedAdd64(r.seconds, rhs.seconds)
	if !ok {
		return ZeroDuration, false
	}
	d, carry := balance(seconds, r.nanoseconds+rhs.nanoseconds)
	return d, carry == 0
}

/*
CheckedSub returns the difference of the receiver and rhs. False is
returned if the difference overflows.
*/
func (r Duration) CheckedSub(rhs Duration) (Duration, bool) {
	seconds, ok := checkedSub64(r.seconds, rhs.seconds)
	if !ok {
		return ZeroDuration, false
	}
	d, carry := balance(seconds, r.nanoseconds-rhs.nanoseconds)
	return d, carry == 0
}

/*
CheckedMul returns the product of the receiver and rhs. False is
returned if the product overflows.
*/
func (r Duration) CheckedMul(rhs int32) (Duration, bool) {
	total := int64(r.nanoseconds) * int64(rhs)
	seconds, ok := checkedMul64(r.seconds, int64(rhs))
	if ok {
		seconds, ok = checkedAdd64(seconds, total/nanosPerSecond)
	}
	if !ok {
		return ZeroDuration, false
	}
	return Duration{seconds: seconds, nanoseconds: int32(total % nanosPerSecond)}, true
}

/*
CheckedDiv returns the quotient of the receiver and rhs, truncated to
the nanosecond. False is returned if rhs is zero or if the quotient
overflows.
*/
func (r Duration) CheckedDiv(rhs int32) (Duration, bool) {
	if rhs == 0 || (rhs == -1 && r.seconds == math.MinInt64) {
		return ZeroDuration, false
	}
	divisor := int64(rhs)
	seconds := r.seconds / divisor
	// |carry| < |rhs|, so the remainder in nanoseconds fits an int64
	carry := r.seconds - seconds*divisor
	rem := carry*nanosPerSecond + int64(r.nanoseconds)
	return Duration{seconds: seconds, nanoseconds: int32(rem / divisor)}, true
}

/*
SaturatingAdd returns the sum of the receiver and rhs, clamped to
[MinDuration] or [MaxDuration] on overflow.
*/
func (r Duration) SaturatingAdd(rhs Duration) Duration {
	seconds, ok := checkedAdd64(r.seconds, rhs.seconds)
	if !ok {
		return r.saturate(r.seconds > 0)
	}
	d, carry := balance(seconds, r.nanoseconds+rhs.nanoseconds)
	if carry != 0 {
		return r.saturate(carry > 0)
	}
	return d
}

/*
SaturatingSub returns the difference of the receiver and rhs, clamped
to [MinDuration] or [MaxDuration] on overflow.
*/
func (r Duration) SaturatingSub(rhs Duration) Duration {
	seconds, ok := checkedSub64(r.seconds, rhs.seconds)
	if !ok {
		return r.saturate(r.seconds >= 0)
	}
	d, carry := balance(seconds, r.nanoseconds-rhs.nanoseconds)
	if carry != 0 {
		return r.saturate(carry > 0)
	}
	return d
}

/*
SaturatingMul returns the product of the receiver and rhs, clamped to
[MinDuration] or [MaxDuration] on overflow.
*/
func (r Duration) SaturatingMul(rhs int32) Duration {
	if d, ok := r.CheckedMul(rhs); ok {
		return d
	}
	return r.saturate((r.seconds > 0 && rhs > 0) || (r.seconds < 0 && rhs < 0))
}

func (r Duration) saturate(positive bool) Duration {
	debugSaturate(newLItem(r, "operand"), newLItem(positive, "positive"))
	if positive {
		return MaxDuration
	}
	return MinDuration
}

/*
Neg returns the receiver with its sign inverted. The negation of
[MinDuration] saturates to [MaxDuration].
*/
func (r Duration) Neg() Duration {
	if r.seconds == math.MinInt64 {
		return r.saturate(true)
	}
	return Duration{seconds: -r.seconds, nanoseconds: -r.nanoseconds}
}

/*
Abs returns the absolute value of the receiver, saturating at
[MaxDuration].
*/
func (r Duration) Abs() Duration {
	if r.IsNegative() {
		return r.Neg()
	}
	return r
}

/*
MulFloat returns the receiver scaled by rhs, rounded to the nearest
nanosecond. Results beyond the representable range saturate.
*/
func (r Duration) MulFloat(rhs float64) Duration { return SecondsFloat(r.AsSecondsFloat() * rhs) }

/*
DivFloat returns the receiver divided by rhs, rounded to the nearest
nanosecond. Results beyond the representable range saturate.
*/
func (r Duration) DivFloat(rhs float64) Duration { return SecondsFloat(r.AsSecondsFloat() / rhs) }

/*
Ratio returns the receiver divided by other as a floating point value.
*/
func (r Duration) Ratio(other Duration) float64 { return r.AsSecondsFloat() / other.AsSecondsFloat() }

/*
Compare returns -1, 0 or 1 if the receiver is shorter than, equal to
or longer than other.
*/
func (r Duration) Compare(other Duration) int {
	switch {
	case r.seconds < other.seconds:
		return -1
	case r.seconds > other.seconds:
		return 1
	case r.nanoseconds < other.nanoseconds:
		return -1
	case r.nanoseconds > other.nanoseconds:
		return 1
	}
	return 0
}

/*
String returns the ISO 8601 duration representation of the receiver,
such as "PT1H30M" or "-P2DT0.5S". Days are the largest unit rendered.
*/
func (r Duration) String() string {
	if r.IsZero() {
		return "PT0S"
	}

	bld := newStrBuilder()
	if r.IsNegative() {
		bld.WriteByte('-')
	}
	bld.WriteByte('P')

	secs := abs64(r.seconds)
	nanos := uint32(abs64(int64(r.nanoseconds)))

	if days := secs / secondsPerDay; days > 0 {
		bld.WriteString(fmtUint(days, 10) + "D")
	}
	secs %= secondsPerDay
	if secs == 0 && nanos == 0 {
		return bld.String()
	}

	bld.WriteByte('T')
	if h := secs / secondsPerHour; h > 0 {
		bld.WriteString(fmtUint(h, 10) + "H")
	}
	if m := secs % secondsPerHour / secondsPerMinute; m > 0 {
		bld.WriteString(fmtUint(m, 10) + "M")
	}
	if s := secs % secondsPerMinute; s > 0 || nanos > 0 {
		bld.WriteString(fmtUint(s, 10))
		appendFraction(&bld, nanos, 0)
		bld.WriteByte('S')
	}

	return bld.String()
}

/*
NewDuration returns an instance of [Duration] alongside an error
following an attempt to marshal x.

Accepted inputs are [Duration], [Elapsed], [time.Duration] and an
ISO 8601 duration string (or []byte) in the form:

	[-]P[nW][nD][T[nH][nM][n[.f]S]]

Year and month designators are rejected, as their lengths are not
fixed. At most nine (9) fractional digits are permitted, and only on
the seconds designator.
*/
func NewDuration(x any, constraints ...Constraint[Duration]) (Duration, error) {
	var d Duration
	var err error

	switch tv := x.(type) {
	case Duration:
		d = tv
	case Elapsed:
		var ok bool
		if d, ok = tv.Duration(); !ok {
			err = errorDurationRange
		}
	case time.Duration:
		d = FromStd(tv)
	case string:
		d, err = parseDuration(tv)
	case []byte:
		d, err = parseDuration(string(tv))
	default:
		err = errorBadTypeForConstructor("Duration", x)
	}

	if len(constraints) > 0 && err == nil {
		var group ConstraintGroup[Duration] = constraints
		err = group.Constrain(d)
	}

	if err != nil {
		d = ZeroDuration
	}

	return d, err
}

func parseDuration(s string) (d Duration, err error) {
	exit := debugPath(newLItem(s, "duration text"))
	defer func() { exit(d, err) }()

	in := s
	if len(s) == 0 {
		return ZeroDuration, errorBadText("Duration", in, errorEmptyText)
	}

	neg := s[0] == '-'
	if neg || s[0] == '+' {
		s = s[1:]
	}
	if len(s) < 2 || s[0] != 'P' {
		return ZeroDuration, errorBadText("Duration", in, errorBadDuration)
	}
	s = s[1:]

	var (
		total    Duration
		inTime   bool
		seen     int
		lastUnit = -1
	)

	units := map[byte][2]int64{ // designator: {order, seconds}
		'W': {0, secondsPerWeek},
		'D': {1, secondsPerDay},
		'H': {2, secondsPerHour},
		'M': {3, secondsPerMinute},
		'S': {4, 1},
	}

	for len(s) > 0 {
		if s[0] == 'T' {
			if inTime {
				return ZeroDuration, errorBadText("Duration", in, errorBadDuration)
			}
			inTime = true
			s = s[1:]
			continue
		}

		i := 0
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == 0 || i == len(s) {
			return ZeroDuration, errorBadText("Duration", in, errorBadDigits)
		}
		n, perr := pint(s[:i], 10, 64)
		if perr != nil {
			return ZeroDuration, errorBadText("Duration", in, errorDurationRange)
		}

		var nanos int32
		if s[i] == '.' || s[i] == ',' {
			j := i + 1
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			digits := j - i - 1
			if digits == 0 || digits > 9 || j == len(s) || s[j] != 'S' {
				return ZeroDuration, errorBadText("Duration", in, errorFractionLength)
			}
			frac, _ := atoiN(s, i+1, digits)
			for ; digits < 9; digits++ {
				frac *= 10
			}
			nanos = int32(frac)
			i = j
		}

		unit, found := units[s[i]]
		if !found || (unit[0] >= 2) != inTime || int(unit[0]) <= lastUnit {
			return ZeroDuration, errorBadText("Duration", in, errorBadDuration)
		}
		lastUnit = int(unit[0])

		secs, ok := checkedMul64(n, unit[1])
		var ok2 bool
		if total, ok2 = total.CheckedAdd(Duration{seconds: secs, nanoseconds: nanos}); !ok || !ok2 {
			return ZeroDuration, errorBadText("Duration", in, errorDurationRange)
		}
		seen++
		s = s[i+1:]
	}

	if seen == 0 || (inTime && lastUnit < 2) {
		return ZeroDuration, errorBadText("Duration", in, errorBadDuration)
	}

	if neg {
		total = total.Neg()
	}

	return total, nil
}
