package chronos

/*
elapsed.go contains the unsigned Elapsed type and its conversions to
and from the signed Duration.
*/

import (
	"math"
	"math/big"
	"time"
)

/*
Elapsed implements an unsigned, non-negative span of time with
nanosecond precision. Its range of whole seconds is twice that of
[Duration].
*/
type Elapsed struct {
	seconds     uint64
	nanoseconds uint32
}

/*
NewElapsed returns an instance of [Elapsed]. Nanoseconds in excess of
one second are carried into seconds; a carry exceeding the range of
seconds saturates.
*/
func NewElapsed(seconds uint64, nanoseconds uint32) Elapsed {
	carry := uint64(nanoseconds / nanosPerSecond)
	if seconds > math.MaxUint64-carry {
		debugSaturate(newLItem(carry, "nanosecond carry"))
		return Elapsed{seconds: math.MaxUint64, nanoseconds: nanosPerSecond - 1}
	}
	return Elapsed{seconds: seconds + carry, nanoseconds: nanoseconds % nanosPerSecond}
}

/*
ElapsedFromStd returns the [Elapsed] equivalent of d. False is returned
if d is negative.
*/
func ElapsedFromStd(d time.Duration) (Elapsed, bool) {
	if d < 0 {
		return Elapsed{}, false
	}
	return Elapsed{
		seconds:     uint64(d / time.Second),
		nanoseconds: uint32(d % time.Second),
	}, true
}

// Seconds returns the whole seconds of the receiver.
func (r Elapsed) Seconds() uint64 { return r.seconds }

// SubsecNanoseconds returns the fractional part of the receiver.
func (r Elapsed) SubsecNanoseconds() uint32 { return r.nanoseconds }

// IsZero returns true if the receiver spans no time.
func (r Elapsed) IsZero() bool { return r.seconds == 0 && r.nanoseconds == 0 }

/*
Duration returns the [Duration] equivalent of the receiver. False is
returned if the receiver exceeds [MaxDuration].
*/
func (r Elapsed) Duration() (Duration, bool) {
	if r.seconds > math.MaxInt64 {
		return ZeroDuration, false
	}
	return Duration{seconds: int64(r.seconds), nanoseconds: int32(r.nanoseconds)}, true
}

/*
Std returns the [time.Duration] equivalent of the receiver. False is
returned if the receiver exceeds the range of [time.Duration].
*/
func (r Elapsed) Std() (time.Duration, bool) {
	d, ok := r.Duration()
	if !ok {
		return 0, false
	}
	return d.Std()
}

/*
Compare returns -1, 0 or 1 if the receiver is shorter than, equal to
or longer than other.
*/
func (r Elapsed) Compare(other Elapsed) int {
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
String returns the ISO 8601 duration representation of the receiver.
*/
func (r Elapsed) String() string {
	if d, ok := r.Duration(); ok {
		return d.String()
	}
	bld := newStrBuilder()
	bld.WriteString("PT")
	bld.WriteString(fmtUint(r.seconds, 10))
	appendFraction(&bld, r.nanoseconds, 0)
	bld.WriteByte('S')
	return bld.String()
}

/*
Elapsed returns the [Elapsed] equivalent of the receiver. False is
returned if the receiver is negative.
*/
func (r Duration) Elapsed() (Elapsed, bool) {
	if r.IsNegative() {
		return Elapsed{}, false
	}
	return Elapsed{seconds: uint64(r.seconds), nanoseconds: uint32(r.nanoseconds)}, true
}

/*
AbsElapsed returns the magnitude of the receiver as an [Elapsed]. The
conversion never fails, [MinDuration] included.
*/
func (r Duration) AbsElapsed() Elapsed {
	return Elapsed{
		seconds:     abs64(r.seconds),
		nanoseconds: uint32(abs64(int64(r.nanoseconds))),
	}
}

/*
CompareElapsed returns -1, 0 or 1 if the receiver is shorter than,
equal to or longer than e. Negative receivers are always shorter.
*/
func (r Duration) CompareElapsed(e Elapsed) int {
	if r.IsNegative() {
		return -1
	}
	pos, _ := r.Elapsed()
	return pos.Compare(e)
}

/*
CheckedAddElapsed returns the sum of the receiver and e. False is
returned if the sum overflows.
*/
func (r Duration) CheckedAddElapsed(e Elapsed) (Duration, bool) {
	if d, ok := e.Duration(); ok {
		return r.CheckedAdd(d)
	}
	return fromBigNanos(new(big.Int).Add(r.WholeNanoseconds(), e.wholeNanoseconds()))
}

/*
CheckedSubElapsed returns the difference of the receiver and e. False
is returned if the difference overflows.
*/
func (r Duration) CheckedSubElapsed(e Elapsed) (Duration, bool) {
	if d, ok := e.Duration(); ok {
		return r.CheckedSub(d)
	}
	return fromBigNanos(new(big.Int).Sub(r.WholeNanoseconds(), e.wholeNanoseconds()))
}

func (r Elapsed) wholeNanoseconds() *big.Int {
	total := new(big.Int).SetUint64(r.seconds)
	total.Mul(total, newBigInt(nanosPerSecond))
	return total.Add(total, newBigInt(int64(r.nanoseconds)))
}

func fromBigNanos(ns *big.Int) (Duration, bool) {
	if d, ok := NanosecondsBig(ns); ok {
		return d, true
	}
	return ZeroDuration, false
}
