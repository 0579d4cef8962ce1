package chronos

/*
pdt.go contains the PrimitiveDateTime type, which pairs a Date with a
Time but carries no UTC offset.
*/

/*
PrimitiveDateTime implements a calendar date and wall-clock time with no
associated UTC offset. It does not, by itself, identify an instant; see
[PrimitiveDateTime.AssumeOffset].

The zero value is 1970-01-01 0:00:00.0.
*/
type PrimitiveDateTime struct {
	date Date
	time Time
}

var (
	MinPrimitiveDateTime = PrimitiveDateTime{date: MinDate, time: Midnight}
	MaxPrimitiveDateTime = PrimitiveDateTime{date: MaxDate, time: maxTime}
)

/*
NewPrimitiveDateTime returns an instance of [PrimitiveDateTime] combining
date and tod.
*/
func NewPrimitiveDateTime(date Date, tod Time) PrimitiveDateTime {
	return PrimitiveDateTime{date: date, time: tod}
}

func (r PrimitiveDateTime) Date() Date { return r.date }
func (r PrimitiveDateTime) Time() Time { return r.time }

func (r PrimitiveDateTime) Year() int32                               { return r.date.Year() }
func (r PrimitiveDateTime) Month() Month                              { return r.date.Month() }
func (r PrimitiveDateTime) Day() uint8                                { return r.date.Day() }
func (r PrimitiveDateTime) Ordinal() uint16                           { return r.date.Ordinal() }
func (r PrimitiveDateTime) ISOWeek() uint8                            { return r.date.ISOWeek() }
func (r PrimitiveDateTime) SundayBasedWeek() uint8                    { return r.date.SundayBasedWeek() }
func (r PrimitiveDateTime) MondayBasedWeek() uint8                    { return r.date.MondayBasedWeek() }
func (r PrimitiveDateTime) Weekday() Weekday                          { return r.date.Weekday() }
func (r PrimitiveDateTime) ToJulianDay() int32                        { return r.date.ToJulianDay() }
func (r PrimitiveDateTime) ToCalendarDate() (int32, Month, uint8)     { return r.date.ToCalendarDate() }
func (r PrimitiveDateTime) ToOrdinalDate() (int32, uint16)            { return r.date.ToOrdinalDate() }
func (r PrimitiveDateTime) ToISOWeekDate() (int32, uint8, Weekday)    { return r.date.ToISOWeekDate() }
func (r PrimitiveDateTime) AsHMS() (uint8, uint8, uint8)              { return r.time.AsHMS() }
func (r PrimitiveDateTime) AsHMSMilli() (uint8, uint8, uint8, uint16) { return r.time.AsHMSMilli() }
func (r PrimitiveDateTime) AsHMSMicro() (uint8, uint8, uint8, uint32) { return r.time.AsHMSMicro() }
func (r PrimitiveDateTime) AsHMSNano() (uint8, uint8, uint8, uint32)  { return r.time.AsHMSNano() }
func (r PrimitiveDateTime) Hour() uint8                               { return r.time.Hour() }
func (r PrimitiveDateTime) Minute() uint8                             { return r.time.Minute() }
func (r PrimitiveDateTime) Second() uint8                             { return r.time.Second() }
func (r PrimitiveDateTime) Millisecond() uint16                       { return r.time.Millisecond() }
func (r PrimitiveDateTime) Microsecond() uint32                       { return r.time.Microsecond() }
func (r PrimitiveDateTime) Nanosecond() uint32                        { return r.time.Nanosecond() }

// ReplaceDate returns the receiver with its date replaced by date.
func (r PrimitiveDateTime) ReplaceDate(date Date) PrimitiveDateTime {
	return PrimitiveDateTime{date: date, time: r.time}
}

// ReplaceTime returns the receiver with its time replaced by tod.
func (r PrimitiveDateTime) ReplaceTime(tod Time) PrimitiveDateTime {
	return PrimitiveDateTime{date: r.date, time: tod}
}

/*
AssumeUTC returns an [OffsetDateTime] treating the receiver as UTC.
*/
func (r PrimitiveDateTime) AssumeUTC() OffsetDateTime {
	return OffsetDateTime{utc: r, offset: UTC}
}

/*
AssumeOffset returns an [OffsetDateTime] treating the receiver as a
local date and time at offset. The instant is normalized to UTC
internally; the offset is retained for display.
*/
func (r PrimitiveDateTime) AssumeOffset(offset UtcOffset) OffsetDateTime {
	return OffsetDateTime{utc: r.offsetToUTC(offset), offset: offset}
}

/*
offsetToUTC subtracts offset from the receiver, carrying second,
minute and hour overflow into the day count. The result is unchecked
and may lie one day beyond [MinDate] or [MaxDate].
*/
func (r PrimitiveDateTime) offsetToUTC(offset UtcOffset) PrimitiveDateTime {
	if offset.IsUTC() {
		return r
	}
	exit := debugPath(newLItem(r, "local"), newLItem(offset, "offset"))

	second, carry := normalizeSubunit(int64(r.time.second)-int64(offset.seconds), 0, 60)
	minute := int64(r.time.minute) - int64(offset.minutes) + carry
	minute, carry = normalizeSubunit(minute, 0, 60)
	hour := int64(r.time.hour) - int64(offset.hours) + carry
	hour, carry = normalizeSubunit(hour, 0, 24)

	utc := PrimitiveDateTime{
		date: Date{days: r.date.days + int32(carry)},
		time: Time{
			hour:       uint8(hour),
			minute:     uint8(minute),
			second:     uint8(second),
			nanosecond: r.time.nanosecond,
		},
	}
	exit(newLItem(utc, "utc"))
	return utc
}

/*
utcToOffset is the inverse of offsetToUTC.
*/
func (r PrimitiveDateTime) utcToOffset(offset UtcOffset) PrimitiveDateTime {
	return r.offsetToUTC(offset.Neg())
}

// inRange reports whether the receiver's date lies within MinDate through MaxDate.
func (r PrimitiveDateTime) inRange() bool {
	return MinDate.days <= r.date.days && r.date.days <= MaxDate.days
}

/*
CheckedAdd returns the receiver advanced by d. The sub-day portion of d
is applied to the time, and any wrap past midnight is folded into the
date along with the whole days of d. False is returned if the result
falls outside of the supported range.
*/
func (r PrimitiveDateTime) CheckedAdd(d Duration) (PrimitiveDateTime, bool) {
	adj, t := r.time.AdjustingAdd(d)
	date, ok := r.date.CheckedAdd(d)
	if ok {
		date, ok = date.adjust(adj)
	}
	if !ok {
		return PrimitiveDateTime{}, false
	}
	return PrimitiveDateTime{date: date, time: t}, true
}

/*
CheckedSub returns the receiver moved back by d. See
[PrimitiveDateTime.CheckedAdd].
*/
func (r PrimitiveDateTime) CheckedSub(d Duration) (PrimitiveDateTime, bool) {
	adj, t := r.time.AdjustingSub(d)
	date, ok := r.date.CheckedSub(d)
	if ok {
		date, ok = date.adjust(adj)
	}
	if !ok {
		return PrimitiveDateTime{}, false
	}
	return PrimitiveDateTime{date: date, time: t}, true
}

/*
SaturatingAdd is as [PrimitiveDateTime.CheckedAdd], except results
outside of the supported range are clamped to [MinPrimitiveDateTime]
or [MaxPrimitiveDateTime].
*/
func (r PrimitiveDateTime) SaturatingAdd(d Duration) PrimitiveDateTime {
	if res, ok := r.CheckedAdd(d); ok {
		return res
	}
	debugSaturate(newLItem(r, "datetime"), newLItem(d, "duration"))
	if d.IsNegative() {
		return MinPrimitiveDateTime
	}
	return MaxPrimitiveDateTime
}

/*
SaturatingSub is as [PrimitiveDateTime.CheckedSub], except results
outside of the supported range are clamped.
*/
func (r PrimitiveDateTime) SaturatingSub(d Duration) PrimitiveDateTime {
	if res, ok := r.CheckedSub(d); ok {
		return res
	}
	debugSaturate(newLItem(r, "datetime"), newLItem(d, "duration"))
	if d.IsNegative() {
		return MaxPrimitiveDateTime
	}
	return MinPrimitiveDateTime
}

/*
AddElapsed returns the receiver advanced by e. False is returned if
the result falls after [MaxPrimitiveDateTime].
*/
func (r PrimitiveDateTime) AddElapsed(e Elapsed) (PrimitiveDateTime, bool) {
	next, t := r.time.adjustingAddElapsed(e)
	date, ok := r.date.AddElapsed(e)
	if ok && next {
		date, ok = date.NextDay()
	}
	if !ok {
		return PrimitiveDateTime{}, false
	}
	return PrimitiveDateTime{date: date, time: t}, true
}

/*
SubElapsed returns the receiver moved back by e. False is returned if
the result falls before [MinPrimitiveDateTime].
*/
func (r PrimitiveDateTime) SubElapsed(e Elapsed) (PrimitiveDateTime, bool) {
	prev, t := r.time.adjustingSubElapsed(e)
	date, ok := r.date.SubElapsed(e)
	if ok && prev {
		date, ok = date.PreviousDay()
	}
	if !ok {
		return PrimitiveDateTime{}, false
	}
	return PrimitiveDateTime{date: date, time: t}, true
}

func (r Date) adjust(adj DateAdjustment) (Date, bool) {
	switch adj {
	case AdjustNext:
		return r.NextDay()
	case AdjustPrevious:
		return r.PreviousDay()
	}
	return r, true
}

/*
Since returns the signed [Duration] from other to the receiver.
*/
func (r PrimitiveDateTime) Since(other PrimitiveDateTime) Duration {
	days := int64(r.date.days) - int64(other.date.days)
	nanos, carry := normalizeSubunit(int64(r.time.nanosecond)-int64(other.time.nanosecond), 0, nanosPerSecond)
	seconds := days*secondsPerDay + r.time.secondsOfDay() - other.time.secondsOfDay() + carry
	return DurationFromParts(seconds, int32(nanos))
}

/*
Compare returns -1, 0 or 1 if the receiver is earlier than, equal to
or later than other.
*/
func (r PrimitiveDateTime) Compare(other PrimitiveDateTime) int {
	if c := r.date.Compare(other.date); c != 0 {
		return c
	}
	return r.time.Compare(other.time)
}

// Before returns true if the receiver is earlier than other.
func (r PrimitiveDateTime) Before(other PrimitiveDateTime) bool { return r.Compare(other) < 0 }

// After returns true if the receiver is later than other.
func (r PrimitiveDateTime) After(other PrimitiveDateTime) bool { return r.Compare(other) > 0 }

/*
String returns the receiver in the form YYYY-MM-DD H:MM:SS.f.
*/
func (r PrimitiveDateTime) String() string {
	bld := newStrBuilder()
	r.date.appendTo(&bld)
	bld.WriteByte(' ')
	r.time.appendTo(&bld)
	return bld.String()
}
