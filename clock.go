package chronos

/*
clock.go contains the Instant type and other readings of the system
clock.
*/

import "time"

// nowFunc is replaced in tests.
var nowFunc = time.Now

/*
NowUTC returns the current instant in UTC.
*/
func NowUTC() OffsetDateTime {
	now := nowFunc()
	odt, err := fromUnix(now.Unix(), uint32(now.Nanosecond()))
	if err != nil {
		// the system clock reads a year beyond MaxYear
		debugSaturate(newLItem(err, "clock"))
		return MaxPrimitiveDateTime.AssumeUTC()
	}
	return odt
}

/*
Instant implements a reading of a monotonic clock. Instances are only
meaningful relative to one another within a single process, and may
not be converted to a calendar date and time.

The zero value is not a valid reading.
*/
type Instant struct {
	t time.Time
}

// Now returns the current reading of the monotonic clock.
func Now() Instant { return Instant{t: nowFunc()} }

/*
Since returns the signed [Duration] from earlier to the receiver. The
result is negative if earlier is, in fact, later.
*/
func (r Instant) Since(earlier Instant) Duration {
	return FromStd(r.t.Sub(earlier.t))
}

/*
Elapsed returns the [Duration] that has passed since the receiver was
read.
*/
func (r Instant) Elapsed() Duration { return Now().Since(r) }

/*
CheckedAdd returns the receiver advanced by d. False is returned if d
cannot be expressed as a [time.Duration].
*/
func (r Instant) CheckedAdd(d Duration) (Instant, bool) {
	std, ok := d.Std()
	if !ok {
		return Instant{}, false
	}
	return Instant{t: r.t.Add(std)}, true
}

/*
CheckedSub returns the receiver moved back by d. See
[Instant.CheckedAdd].
*/
func (r Instant) CheckedSub(d Duration) (Instant, bool) {
	return r.CheckedAdd(d.Neg())
}

/*
Compare returns -1, 0 or 1 if the receiver was read before, at the
same moment as or after other.
*/
func (r Instant) Compare(other Instant) int { return r.t.Compare(other.t) }

/*
DurationOf calls fn and returns the [Duration] it took to return.
*/
func DurationOf(fn func()) Duration {
	start := Now()
	fn()
	return Now().Since(start)
}
