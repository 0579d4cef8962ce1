package chronos

/*
cascade.go contains the carry normalization shared by every arithmetic
path which must fold an out-of-range unit into the next coarser unit.
*/

import "golang.org/x/exp/constraints"

/*
DateAdjustment describes the effect a wrapping clock operation had on
the calendar day. See [Time.AdjustingAdd] and [Time.AdjustingSub].
*/
type DateAdjustment int8

const (
	AdjustNone     DateAdjustment = iota // the day is unchanged
	AdjustNext                           // the clock wrapped past midnight
	AdjustPrevious                       // the clock wrapped backward past midnight
)

/*
String returns the string representation of the receiver instance.
*/
func (r DateAdjustment) String() (s string) {
	switch r {
	case AdjustNext:
		s = `next`
	case AdjustPrevious:
		s = `previous`
	default:
		s = `none`
	}
	return
}

/*
normalizeSubunit folds value into the half-open range [min, max) and
returns the normalized value alongside the signed number of whole
widths removed. The carry is meant to be added to the next coarser
unit by the caller.
*/
func normalizeSubunit[T constraints.Signed](value, min, max T) (T, T) {
	width := max - min
	carry := divFloor(value-min, width)
	if carry != 0 {
		value -= carry * width
		debugCascade(newLItem(value, "normalized"), newLItem(carry, "carry"))
	}
	return value, carry
}

/*
cascadeClock folds the provided clock fields, each of which may fall
outside its natural range, into a valid [Time]. Hours which overflow
or underflow the day are reported via the returned [DateAdjustment].
*/
func cascadeClock(hours, minutes, seconds, nanos int64) (DateAdjustment, Time) {
	var carry int64
	nanos, carry = normalizeSubunit(nanos, 0, nanosPerSecond)
	seconds += carry
	seconds, carry = normalizeSubunit(seconds, 0, 60)
	minutes += carry
	minutes, carry = normalizeSubunit(minutes, 0, 60)
	hours += carry

	adj := AdjustNone
	if hours >= 24 {
		hours -= 24
		adj = AdjustNext
	} else if hours < 0 {
		hours += 24
		adj = AdjustPrevious
	}

	return adj, Time{
		hour:       uint8(hours),
		minute:     uint8(minutes),
		second:     uint8(seconds),
		nanosecond: uint32(nanos),
	}
}
