/*
Package fake generates random, valid instances of the chronos value
types. Every value is drawn uniformly from the full supported range of
its type unless a narrower range is requested.

A Generator constructed with a non-zero seed replays the same sequence
of values, which makes it suitable for property tests whose failures
must be reproducible.
*/
package fake

import (
	"github.com/brianvoe/gofakeit/v6"

	"github.com/JesseCoretta/go-chronos"
)

/*
Generator implements a source of random chronos values. Instances are
safe for concurrent use.
*/
type Generator struct {
	f    *gofakeit.Faker
	seed int64
}

/*
New returns an instance of *[Generator] seeded with seed. A seed of zero
requests a cryptographically random seed.
*/
func New(seed int64) *Generator {
	return &Generator{f: gofakeit.New(seed), seed: seed}
}

// Seed returns the seed with which the receiver was constructed.
func (r *Generator) Seed() int64 { return r.seed }

// Month returns a random month.
func (r *Generator) Month() chronos.Month {
	return chronos.Month(r.f.Number(int(chronos.January), int(chronos.December)))
}

// Weekday returns a random weekday.
func (r *Generator) Weekday() chronos.Weekday {
	return chronos.Weekday(r.f.Number(int(chronos.Monday), int(chronos.Sunday)))
}

/*
Date returns a random date between [chronos.MinDate] and
[chronos.MaxDate], inclusive.
*/
func (r *Generator) Date() chronos.Date {
	return r.DateBetween(chronos.MinDate, chronos.MaxDate)
}

/*
DateBetween returns a random date between lo and hi, inclusive. The
bounds may be given in either order.
*/
func (r *Generator) DateBetween(lo, hi chronos.Date) chronos.Date {
	jd := r.f.Number(int(lo.ToJulianDay()), int(hi.ToJulianDay()))
	d, _ := chronos.DateFromJulianDay(int32(jd))
	return d
}

// Time returns a random time of day.
func (r *Generator) Time() chronos.Time {
	t, _ := chronos.TimeFromHMSNano(
		uint8(r.f.Number(0, 23)),
		uint8(r.f.Number(0, 59)),
		uint8(r.f.Number(0, 59)),
		uint32(r.f.Number(0, 999_999_999)),
	)
	return t
}

/*
UtcOffset returns a random offset between -23:59:59 and +23:59:59,
inclusive.
*/
func (r *Generator) UtcOffset() chronos.UtcOffset {
	o, _ := chronos.UtcOffsetFromWholeSeconds(int32(r.f.Number(-86_399, 86_399)))
	return o
}

/*
Duration returns a random duration between [chronos.MinDuration] and
[chronos.MaxDuration], inclusive.
*/
func (r *Generator) Duration() chronos.Duration {
	seconds := r.f.Int64()
	nanos := int32(r.f.Number(0, 999_999_999))
	if seconds < 0 || (seconds == 0 && r.f.Bool()) {
		nanos = -nanos
	}
	return chronos.DurationFromParts(seconds, nanos)
}

/*
DurationBetween returns a random duration between lo and hi, inclusive.
The bounds may be given in either order.
*/
func (r *Generator) DurationBetween(lo, hi chronos.Duration) chronos.Duration {
	if lo.Compare(hi) > 0 {
		lo, hi = hi, lo
	}

	// spans wider than MaxDuration are clamped
	span := hi.SaturatingSub(lo)
	seconds := int64(r.f.Uint64() % (uint64(span.WholeSeconds()) + 1))
	maxNanos := 999_999_999
	if seconds == span.WholeSeconds() {
		maxNanos = int(span.SubsecNanoseconds())
	}
	nanos := int32(r.f.Number(0, maxNanos))
	return lo.SaturatingAdd(chronos.DurationFromParts(seconds, nanos))
}

// PrimitiveDateTime returns a random date and time.
func (r *Generator) PrimitiveDateTime() chronos.PrimitiveDateTime {
	return r.Date().WithTime(r.Time())
}

/*
OffsetDateTime returns a random instant bearing a random offset. The
local view of the result is uniformly distributed; see
[Generator.PrimitiveDateTime].
*/
func (r *Generator) OffsetDateTime() chronos.OffsetDateTime {
	return r.PrimitiveDateTime().AssumeOffset(r.UtcOffset())
}
