package chronos

/*
odt.go contains the OffsetDateTime type, which identifies an instant
by way of a UTC date and time paired with a display offset.
*/

import (
	"math/big"
	"time"
)

/*
OffsetDateTime implements an instant in time. The instant is held in
UTC, while the [UtcOffset] governs only how the instant is viewed: all
projections (year, hour, weekday, etc.) are computed against the local
date and time at that offset.

Changing the offset, via [OffsetDateTime.ToOffset], never changes the
instant.

The zero value is equal to [UnixEpoch].
*/
type OffsetDateTime struct {
	utc    PrimitiveDateTime
	offset UtcOffset
}

/*
UnixEpoch is 1970-01-01 0:00:00.0 UTC.
*/
var UnixEpoch = OffsetDateTime{}

var (
	minTimestamp = int64(MinDate.days) * secondsPerDay
	maxTimestamp = int64(MaxDate.days)*secondsPerDay + secondsPerDay - 1
)

/*
FromUnixTimestamp returns the instant lying timestamp seconds after
[UnixEpoch], in UTC. An error is returned if the instant falls outside
of [MinDate] through [MaxDate].
*/
func FromUnixTimestamp(timestamp int64) (OffsetDateTime, error) {
	return fromUnix(timestamp, 0)
}

/*
FromUnixTimestampNanos is as [FromUnixTimestamp], except the input is
a count of nanoseconds.
*/
func FromUnixTimestampNanos(timestamp *big.Int) (OffsetDateTime, error) {
	if timestamp == nil {
		return UnixEpoch, generalErrorf("nil timestamp")
	}
	secs, nanos := new(big.Int).DivMod(timestamp, big.NewInt(nanosPerSecond), new(big.Int))
	s, ok := bigToInt64(secs)
	if !ok {
		value := maxTimestamp
		if secs.Sign() < 0 {
			value = minTimestamp
		}
		return UnixEpoch, ComponentRange{Name: "timestamp", Minimum: minTimestamp, Maximum: maxTimestamp, Value: value}
	}
	return fromUnix(s, uint32(nanos.Int64()))
}

func fromUnix(secs int64, nanos uint32) (OffsetDateTime, error) {
	if err := checkRange("timestamp", secs, minTimestamp, maxTimestamp, false); err != nil {
		return UnixEpoch, err
	}
	days := divFloor(secs, secondsPerDay)
	sod := modFloor(secs, secondsPerDay)
	return OffsetDateTime{utc: PrimitiveDateTime{
		date: Date{days: int32(days)},
		time: Time{
			hour:       uint8(sod / secondsPerHour),
			minute:     uint8(sod / secondsPerMinute % 60),
			second:     uint8(sod % 60),
			nanosecond: nanos,
		},
	}}, nil
}

/*
UnixTimestamp returns the number of whole seconds between [UnixEpoch]
and the receiver. Instants before the epoch yield negative values.
*/
func (r OffsetDateTime) UnixTimestamp() int64 {
	return int64(r.utc.date.days)*secondsPerDay + r.utc.time.secondsOfDay()
}

/*
UnixTimestampNanos returns the number of nanoseconds between
[UnixEpoch] and the receiver.
*/
func (r OffsetDateTime) UnixTimestampNanos() *big.Int {
	ns := new(big.Int).Mul(big.NewInt(r.UnixTimestamp()), big.NewInt(nanosPerSecond))
	return ns.Add(ns, big.NewInt(int64(r.utc.time.nanosecond)))
}

// Offset returns the display offset of the receiver.
func (r OffsetDateTime) Offset() UtcOffset { return r.offset }

// local returns the receiver's date and time as seen at its offset.
func (r OffsetDateTime) local() PrimitiveDateTime { return r.utc.utcToOffset(r.offset) }

/*
ToOffset returns the same instant as the receiver, to be viewed at
offset.

Note that the local view of an instant near [MinDate] or [MaxDate]
may fall outside of the supported range. See
[OffsetDateTime.CheckedToOffset].
*/
func (r OffsetDateTime) ToOffset(offset UtcOffset) OffsetDateTime {
	debugOffset(newLItem(r.offset, "from"), newLItem(offset, "to"))
	return OffsetDateTime{utc: r.utc, offset: offset}
}

/*
CheckedToOffset is as [OffsetDateTime.ToOffset], except false is
returned if the local view at offset falls outside of the supported
range.
*/
func (r OffsetDateTime) CheckedToOffset(offset UtcOffset) (OffsetDateTime, bool) {
	res := r.ToOffset(offset)
	if !res.local().inRange() {
		return OffsetDateTime{}, false
	}
	return res, true
}

/*
ReplaceOffset returns the receiver with its display offset replaced by
offset. The instant is unchanged.
*/
func (r OffsetDateTime) ReplaceOffset(offset UtcOffset) OffsetDateTime {
	return OffsetDateTime{utc: r.utc, offset: offset}
}

/*
ReplaceDate returns the receiver with the date of its local view
replaced by date.
*/
func (r OffsetDateTime) ReplaceDate(date Date) OffsetDateTime {
	return r.ReplaceDateTime(r.local().ReplaceDate(date))
}

/*
ReplaceTime returns the receiver with the time of its local view
replaced by tod.
*/
func (r OffsetDateTime) ReplaceTime(tod Time) OffsetDateTime {
	return r.ReplaceDateTime(r.local().ReplaceTime(tod))
}

/*
ReplaceDateTime returns the instant at which the receiver's offset
reads as pdt.
*/
func (r OffsetDateTime) ReplaceDateTime(pdt PrimitiveDateTime) OffsetDateTime {
	return pdt.AssumeOffset(r.offset)
}

/*
CheckedAdd returns the instant d after the receiver, retaining the
receiver's offset. False is returned if the local view of the result
falls outside of the supported range.

Shifting an instant and then viewing it at an offset is the same as
viewing it at that offset and then shifting, so the arithmetic is done
on the local view, which is the value bound by the range.
*/
func (r OffsetDateTime) CheckedAdd(d Duration) (OffsetDateTime, bool) {
	res, ok := r.local().CheckedAdd(d)
	if !ok {
		return OffsetDateTime{}, false
	}
	return res.AssumeOffset(r.offset), true
}

/*
CheckedSub returns the instant d before the receiver. See
[OffsetDateTime.CheckedAdd].
*/
func (r OffsetDateTime) CheckedSub(d Duration) (OffsetDateTime, bool) {
	res, ok := r.local().CheckedSub(d)
	if !ok {
		return OffsetDateTime{}, false
	}
	return res.AssumeOffset(r.offset), true
}

/*
SaturatingAdd is as [OffsetDateTime.CheckedAdd], except results
outside of the supported range are clamped to the earliest or latest
instant whose local view, at the receiver's offset, is representable.
*/
func (r OffsetDateTime) SaturatingAdd(d Duration) OffsetDateTime {
	return r.ReplaceDateTime(r.local().SaturatingAdd(d))
}

/*
SaturatingSub is as [OffsetDateTime.CheckedSub], except results
outside of the supported range are clamped.
*/
func (r OffsetDateTime) SaturatingSub(d Duration) OffsetDateTime {
	return r.ReplaceDateTime(r.local().SaturatingSub(d))
}

/*
AddElapsed returns the instant e after the receiver. False is returned
if the local view of the result falls outside of the supported range.
*/
func (r OffsetDateTime) AddElapsed(e Elapsed) (OffsetDateTime, bool) {
	res, ok := r.local().AddElapsed(e)
	if !ok {
		return OffsetDateTime{}, false
	}
	return res.AssumeOffset(r.offset), true
}

/*
SubElapsed returns the instant e before the receiver. See
[OffsetDateTime.AddElapsed].
*/
func (r OffsetDateTime) SubElapsed(e Elapsed) (OffsetDateTime, bool) {
	res, ok := r.local().SubElapsed(e)
	if !ok {
		return OffsetDateTime{}, false
	}
	return res.AssumeOffset(r.offset), true
}

func (r OffsetDateTime) DateTime() PrimitiveDateTime { return r.local() }
func (r OffsetDateTime) Date() Date                  { return r.local().date }
func (r OffsetDateTime) Time() Time                  { return r.local().time }

func (r OffsetDateTime) Year() int32                               { return r.local().Year() }
func (r OffsetDateTime) Month() Month                              { return r.local().Month() }
func (r OffsetDateTime) Day() uint8                                { return r.local().Day() }
func (r OffsetDateTime) Ordinal() uint16                           { return r.local().Ordinal() }
func (r OffsetDateTime) ISOWeek() uint8                            { return r.local().ISOWeek() }
func (r OffsetDateTime) SundayBasedWeek() uint8                    { return r.local().SundayBasedWeek() }
func (r OffsetDateTime) MondayBasedWeek() uint8                    { return r.local().MondayBasedWeek() }
func (r OffsetDateTime) Weekday() Weekday                          { return r.local().Weekday() }
func (r OffsetDateTime) ToJulianDay() int32                        { return r.local().ToJulianDay() }
func (r OffsetDateTime) ToCalendarDate() (int32, Month, uint8)     { return r.local().ToCalendarDate() }
func (r OffsetDateTime) ToOrdinalDate() (int32, uint16)            { return r.local().ToOrdinalDate() }
func (r OffsetDateTime) ToISOWeekDate() (int32, uint8, Weekday)    { return r.local().ToISOWeekDate() }
func (r OffsetDateTime) AsHMS() (uint8, uint8, uint8)              { return r.local().AsHMS() }
func (r OffsetDateTime) AsHMSMilli() (uint8, uint8, uint8, uint16) { return r.local().AsHMSMilli() }
func (r OffsetDateTime) AsHMSMicro() (uint8, uint8, uint8, uint32) { return r.local().AsHMSMicro() }
func (r OffsetDateTime) AsHMSNano() (uint8, uint8, uint8, uint32)  { return r.local().AsHMSNano() }
func (r OffsetDateTime) Hour() uint8                               { return r.local().Hour() }
func (r OffsetDateTime) Minute() uint8                             { return r.local().Minute() }
func (r OffsetDateTime) Second() uint8                             { return r.local().Second() }
func (r OffsetDateTime) Millisecond() uint16                       { return r.utc.Millisecond() }
func (r OffsetDateTime) Microsecond() uint32                       { return r.utc.Microsecond() }
func (r OffsetDateTime) Nanosecond() uint32                        { return r.utc.Nanosecond() }

/*
Since returns the signed [Duration] from other to the receiver. Offsets
play no part.
*/
func (r OffsetDateTime) Since(other OffsetDateTime) Duration {
	return r.utc.Since(other.utc)
}

// Equal returns true if the receiver and other are the same instant.
func (r OffsetDateTime) Equal(other OffsetDateTime) bool { return r.utc == other.utc }

/*
Compare returns -1, 0 or 1 if the receiver is earlier than, the same
instant as or later than other.
*/
func (r OffsetDateTime) Compare(other OffsetDateTime) int { return r.utc.Compare(other.utc) }

// Before returns true if the receiver is earlier than other.
func (r OffsetDateTime) Before(other OffsetDateTime) bool { return r.Compare(other) < 0 }

// After returns true if the receiver is later than other.
func (r OffsetDateTime) After(other OffsetDateTime) bool { return r.Compare(other) > 0 }

/*
String returns the local view of the receiver followed by its offset,
e.g.: 2021-01-01 0:00:00.0 +01:00:00.
*/
func (r OffsetDateTime) String() string {
	bld := newStrBuilder()
	local := r.local()
	local.date.appendTo(&bld)
	bld.WriteByte(' ')
	local.time.appendTo(&bld)
	bld.WriteByte(' ')
	bld.WriteString(r.offset.String())
	return bld.String()
}

/*
Std returns the receiver as a [time.Time] bearing a fixed zone equal
to the receiver's offset.
*/
func (r OffsetDateTime) Std() time.Time {
	y, m, d := civilFromDays(int64(r.utc.date.days))
	t := r.utc.time
	return time.Date(int(y), time.Month(m), int(d),
		int(t.hour), int(t.minute), int(t.second), int(t.nanosecond),
		time.UTC).In(time.FixedZone("", int(r.offset.WholeSeconds())))
}

/*
OffsetDateTimeFromStd returns the instant t alongside an error. The
offset of t's location at t becomes the display offset. An error is
returned if t's year is unsupported.
*/
func OffsetDateTimeFromStd(t time.Time) (OffsetDateTime, error) {
	_, secs := t.Zone()
	offset, err := UtcOffsetFromWholeSeconds(int32(secs))
	if err != nil {
		return UnixEpoch, err
	}
	date, err := DateFromCalendarDate(int32(t.Year()), Month(t.Month()), uint8(t.Day()))
	if err != nil {
		return UnixEpoch, err
	}
	tod := Time{
		hour:       uint8(t.Hour()),
		minute:     uint8(t.Minute()),
		second:     uint8(t.Second()),
		nanosecond: uint32(t.Nanosecond()),
	}
	return date.WithTime(tod).AssumeOffset(offset), nil
}

/*
NewOffsetDateTime returns an instance of [OffsetDateTime] alongside an
error following an attempt to marshal x.

Accepted inputs are [OffsetDateTime], [time.Time], an int64 Unix
timestamp and a string (or []byte) of the form DATE'T'TIME OFFSET,
where DATE is any form accepted by [NewDate], TIME any form accepted
by [NewTime] and OFFSET any form accepted by [NewUtcOffset]. A single
space may stand in for the 'T'.
*/
func NewOffsetDateTime(x any, constraints ...Constraint[OffsetDateTime]) (OffsetDateTime, error) {
	var odt OffsetDateTime
	var err error

	switch tv := x.(type) {
	case OffsetDateTime:
		odt = tv
	case time.Time:
		odt, err = OffsetDateTimeFromStd(tv)
	case int64:
		odt, err = FromUnixTimestamp(tv)
	case string:
		odt, err = parseOffsetDateTime(tv)
	case []byte:
		odt, err = parseOffsetDateTime(string(tv))
	default:
		err = errorBadTypeForConstructor("OffsetDateTime", x)
	}

	if len(constraints) > 0 && err == nil {
		var group ConstraintGroup[OffsetDateTime] = constraints
		err = group.Constrain(odt)
	}

	if err != nil {
		odt = UnixEpoch
	}

	return odt, err
}

func parseOffsetDateTime(s string) (odt OffsetDateTime, err error) {
	exit := debugPath(newLItem(s, "input"))
	defer func() { exit(newLItem(odt, "odt"), newLItem(err, "err")) }()

	var (
		date   Date
		tod    Time
		offset UtcOffset
		i      int
	)
	if date, i, err = scanDate(s, 0); err == nil {
		if i >= len(s) || (s[i] != 'T' && s[i] != 't' && s[i] != ' ') {
			err = errorBadSeparator
		} else if tod, i, err = scanTime(s, i+1); err == nil {
			if offset, i, err = scanUtcOffset(s, i); err == nil && i != len(s) {
				err = errorTrailingText
			}
		}
	}

	if err != nil {
		if _, isRange := err.(ComponentRange); !isRange {
			err = errorBadText("OffsetDateTime", s, err)
		}
		return UnixEpoch, err
	}

	odt = date.WithTime(tod).AssumeOffset(offset)
	return
}
