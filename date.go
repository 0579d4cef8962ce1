package chronos

/*
date.go contains the Date type and its calendar views: the Gregorian
calendar date, the ordinal date, the ISO 8601 week date and the Julian
day number.
*/

import (
	"strings"
	"time"
)

/*
Date implements a day of the proleptic Gregorian calendar within the
years [MinYear] through [MaxYear]. It is stored as a count of days
relative to 1970-01-01.

The zero value is 1970-01-01.
*/
type Date struct {
	days int32
}

var (
	MinDate = Date{days: int32(daysFromCivil(int64(MinYear), 1, 1))}
	MaxDate = Date{days: int32(daysFromCivil(int64(MaxYear), 12, 31))}
)

func checkYear(year int32) error {
	return checkRange("year", year, MinYear, MaxYear, false)
}

/*
DateFromCalendarDate returns an instance of [Date] alongside an error
following validation of year, month and day. The permitted day range
depends on the month and year.
*/
func DateFromCalendarDate(year int32, month Month, day uint8) (Date, error) {
	if err := checkYear(year); err != nil {
		return Date{}, err
	} else if err = checkRange("month", month, January, December, false); err != nil {
		return Date{}, err
	} else if err = checkRange("day", day, 1, DaysInYearMonth(year, month), true); err != nil {
		return Date{}, err
	}
	return Date{days: int32(daysFromCivil(int64(year), int64(month), int64(day)))}, nil
}

/*
DateFromOrdinalDate returns an instance of [Date] alongside an error
following validation of year and ordinal day. The permitted ordinal
range (365 or 366 days) depends on the year.
*/
func DateFromOrdinalDate(year int32, ordinal uint16) (Date, error) {
	if err := checkYear(year); err != nil {
		return Date{}, err
	} else if err = checkRange("ordinal", ordinal, 1, DaysInYear(year), true); err != nil {
		return Date{}, err
	}
	return Date{days: int32(daysFromOrdinal(int64(year), int64(ordinal)))}, nil
}

/*
DateFromISOWeekDate returns an instance of [Date] alongside an error
following validation of the ISO week-numbering year, week and weekday.
The permitted week range (52 or 53) depends on the year.

Note that the ISO year may differ from the calendar year of the result
near the start and end of a year: 2021-W52-6 is 2022-01-01.
*/
func DateFromISOWeekDate(year int32, week uint8, weekday Weekday) (Date, error) {
	weeks := WeeksInYear(year)
	if err := checkYear(year); err != nil {
		return Date{}, err
	} else if err = checkRange("week", week, 1, weeks, true); err != nil {
		return Date{}, err
	} else if err = checkRange("weekday", weekday, Monday, Sunday, false); err != nil {
		return Date{}, err
	}

	jan4 := weekdayFromDays(daysFromCivil(int64(year), 1, 4))
	ordinal := int32(week)*7 + int32(weekday.NumberFromMonday()) - (int32(jan4.NumberFromMonday()) + 3)
	y, o := rollOrdinal(year, ordinal)
	debugCalendar(newLItem(y, "year"), newLItem(o, "ordinal"))

	// the rolled date may still fall outside of the supported years
	if y < MinYear || y > MaxYear {
		return Date{}, ComponentRange{
			Name:             "week",
			Minimum:          1,
			Maximum:          int64(weeks),
			Value:            int64(week),
			ConditionalRange: true,
		}
	}

	return Date{days: int32(daysFromOrdinal(int64(y), int64(o)))}, nil
}

/*
DateFromJulianDay returns an instance of [Date] corresponding to the
given Julian day number, alongside an error if it lies outside of
[MinDate] through [MaxDate].
*/
func DateFromJulianDay(jd int32) (Date, error) {
	if err := checkRange("julian_day", jd, MinDate.ToJulianDay(), MaxDate.ToJulianDay(), false); err != nil {
		return Date{}, err
	}
	return Date{days: jd - unixEpochJulian}, nil
}

/*
ToJulianDay returns the Julian day number of the receiver. Day zero is
January 1st, 4713 BCE of the proleptic Julian calendar.
*/
func (r Date) ToJulianDay() int32 { return r.days + unixEpochJulian }

/*
ToCalendarDate returns the year, month and day of the receiver.
*/
func (r Date) ToCalendarDate() (int32, Month, uint8) {
	y, m, d := civilFromDays(int64(r.days))
	return int32(y), Month(m), uint8(d)
}

/*
ToOrdinalDate returns the year and ordinal day of the receiver.
*/
func (r Date) ToOrdinalDate() (int32, uint16) {
	y, _, _ := civilFromDays(int64(r.days))
	return int32(y), uint16(int64(r.days) - daysFromCivil(y, 1, 1) + 1)
}

/*
ToISOWeekDate returns the ISO week-numbering year, week and weekday of
the receiver.
*/
func (r Date) ToISOWeekDate() (int32, uint8, Weekday) {
	y, w := r.ISOYearWeek()
	return y, w, r.Weekday()
}

/*
ISOYearWeek returns the ISO week-numbering year and week of the
receiver.
*/
func (r Date) ISOYearWeek() (int32, uint8) {
	year, ordinal := r.ToOrdinalDate()
	week := (int(ordinal) + 10 - int(r.Weekday().NumberFromMonday())) / 7
	switch {
	case week == 0:
		return year - 1, WeeksInYear(year - 1)
	case week == 53 && WeeksInYear(year) == 52:
		return year + 1, 1
	}
	return year, uint8(week)
}

func (r Date) Year() int32 {
	y, _, _ := r.ToCalendarDate()
	return y
}

func (r Date) Month() Month {
	_, m, _ := r.ToCalendarDate()
	return m
}

func (r Date) Day() uint8 {
	_, _, d := r.ToCalendarDate()
	return d
}

func (r Date) Ordinal() uint16 {
	_, o := r.ToOrdinalDate()
	return o
}

// ISOWeek returns the ISO 8601 week number (1-53) of the receiver.
func (r Date) ISOWeek() uint8 {
	_, w := r.ISOYearWeek()
	return w
}

// Weekday returns the day of the week of the receiver.
func (r Date) Weekday() Weekday { return weekdayFromDays(int64(r.days)) }

/*
SundayBasedWeek returns the week number (0-53) of the receiver where
week 1 begins on the first Sunday of the year. Days preceding it are
in week 0.
*/
func (r Date) SundayBasedWeek() uint8 {
	return uint8((int(r.Ordinal()) - int(r.Weekday().NumberDaysFromSunday()) + 6) / 7)
}

/*
MondayBasedWeek returns the week number (0-53) of the receiver where
week 1 begins on the first Monday of the year. Days preceding it are
in week 0.
*/
func (r Date) MondayBasedWeek() uint8 {
	return uint8((int(r.Ordinal()) - int(r.Weekday().NumberDaysFromMonday()) + 6) / 7)
}

/*
NextDay returns the day following the receiver. False is returned if
the receiver is [MaxDate].
*/
func (r Date) NextDay() (Date, bool) {
	if r.days >= MaxDate.days {
		return r, false
	}
	return Date{days: r.days + 1}, true
}

/*
PreviousDay returns the day preceding the receiver. False is returned
if the receiver is [MinDate].
*/
func (r Date) PreviousDay() (Date, bool) {
	if r.days <= MinDate.days {
		return r, false
	}
	return Date{days: r.days - 1}, true
}

/*
shift moves the receiver by the given number of days, returning false
if the result leaves [MinDate] through [MaxDate].
*/
func (r Date) shift(days int64) (Date, bool) {
	n := int64(r.days) + days
	if n < int64(MinDate.days) || n > int64(MaxDate.days) {
		return Date{}, false
	}
	return Date{days: int32(n)}, true
}

/*
CheckedAdd returns the receiver moved by the whole days of d. Any
sub-day portion of d is ignored. False is returned if the result falls
outside of [MinDate] through [MaxDate].
*/
func (r Date) CheckedAdd(d Duration) (Date, bool) { return r.shift(d.WholeDays()) }

/*
CheckedSub returns the receiver moved back by the whole days of d. See
[Date.CheckedAdd].
*/
func (r Date) CheckedSub(d Duration) (Date, bool) { return r.shift(-d.WholeDays()) }

/*
SaturatingAdd is as [Date.CheckedAdd], except results outside of the
supported range are clamped to [MinDate] or [MaxDate].
*/
func (r Date) SaturatingAdd(d Duration) Date {
	if res, ok := r.CheckedAdd(d); ok {
		return res
	}
	debugSaturate(newLItem(r, "date"), newLItem(d, "duration"))
	if d.IsNegative() {
		return MinDate
	}
	return MaxDate
}

/*
SaturatingSub is as [Date.CheckedSub], except results outside of the
supported range are clamped to [MinDate] or [MaxDate].
*/
func (r Date) SaturatingSub(d Duration) Date {
	if res, ok := r.CheckedSub(d); ok {
		return res
	}
	debugSaturate(newLItem(r, "date"), newLItem(d, "duration"))
	if d.IsNegative() {
		return MaxDate
	}
	return MinDate
}

/*
AddElapsed returns the receiver moved forward by the whole days of e.
False is returned if the result falls after [MaxDate].
*/
func (r Date) AddElapsed(e Elapsed) (Date, bool) {
	days := e.seconds / secondsPerDay
	if days > uint64(MaxDate.days-MinDate.days) {
		return Date{}, false
	}
	return r.shift(int64(days))
}

/*
SubElapsed returns the receiver moved back by the whole days of e.
False is returned if the result falls before [MinDate].
*/
func (r Date) SubElapsed(e Elapsed) (Date, bool) {
	days := e.seconds / secondsPerDay
	if days > uint64(MaxDate.days-MinDate.days) {
		return Date{}, false
	}
	return r.shift(-int64(days))
}

/*
Since returns the [Duration] spanning the whole days from other to the
receiver.
*/
func (r Date) Since(other Date) Duration {
	return Days(int64(r.days) - int64(other.days))
}

/*
Compare returns -1, 0 or 1 if the receiver is earlier than, equal to
or later than other.
*/
func (r Date) Compare(other Date) int {
	switch {
	case r.days < other.days:
		return -1
	case r.days > other.days:
		return 1
	}
	return 0
}

// Before returns true if the receiver is earlier than other.
func (r Date) Before(other Date) bool { return r.days < other.days }

// After returns true if the receiver is later than other.
func (r Date) After(other Date) bool { return r.days > other.days }

// Midnight returns the receiver at the first instant of its day.
func (r Date) Midnight() PrimitiveDateTime { return PrimitiveDateTime{date: r} }

// WithTime combines the receiver with t.
func (r Date) WithTime(t Time) PrimitiveDateTime { return PrimitiveDateTime{date: r, time: t} }

/*
WithHMS combines the receiver with a validated time of day. See
[TimeFromHMS].
*/
func (r Date) WithHMS(hour, minute, second uint8) (PrimitiveDateTime, error) {
	t, err := TimeFromHMS(hour, minute, second)
	return PrimitiveDateTime{date: r, time: t}, err
}

// WithHMSMilli is as [Date.WithHMS] with a millisecond.
func (r Date) WithHMSMilli(hour, minute, second uint8, millisecond uint16) (PrimitiveDateTime, error) {
	t, err := TimeFromHMSMilli(hour, minute, second, millisecond)
	return PrimitiveDateTime{date: r, time: t}, err
}

// WithHMSMicro is as [Date.WithHMS] with a microsecond.
func (r Date) WithHMSMicro(hour, minute, second uint8, microsecond uint32) (PrimitiveDateTime, error) {
	t, err := TimeFromHMSMicro(hour, minute, second, microsecond)
	return PrimitiveDateTime{date: r, time: t}, err
}

// WithHMSNano is as [Date.WithHMS] with a nanosecond.
func (r Date) WithHMSNano(hour, minute, second uint8, nanosecond uint32) (PrimitiveDateTime, error) {
	t, err := TimeFromHMSNano(hour, minute, second, nanosecond)
	return PrimitiveDateTime{date: r, time: t}, err
}

/*
String returns the receiver in the form YYYY-MM-DD. Negative years are
prefixed with '-', and years beyond 9999 with '+'.
*/
func (r Date) String() string {
	bld := newStrBuilder()
	r.appendTo(&bld)
	return bld.String()
}

func (r Date) appendTo(b *strings.Builder) {
	year, month, day := r.ToCalendarDate()
	appendYear(b, year)
	b.WriteByte('-')
	appendPadded(b, uint64(month), 2)
	b.WriteByte('-')
	appendPadded(b, uint64(day), 2)
}

func appendYear(b *strings.Builder, year int32) {
	if year < 0 {
		b.WriteByte('-')
	} else if year > 9999 {
		b.WriteByte('+')
	}
	appendPadded(b, abs64(int64(year)), 4)
}

/*
NewDate returns an instance of [Date] alongside an error following an
attempt to marshal x.

Accepted inputs are [Date], [time.Time] (whose calendar date is used
as-is) and a string (or []byte) in any of the following forms:

	YYYY-MM-DD  (calendar date)
	YYYY-DDD    (ordinal date)
	YYYY-Www-D  (ISO week date)

Years bear four to six digits and may carry a leading sign.
*/
func NewDate(x any, constraints ...Constraint[Date]) (Date, error) {
	var d Date
	var err error

	switch tv := x.(type) {
	case Date:
		d = tv
	case time.Time:
		y, m, day := tv.Date()
		d, err = DateFromCalendarDate(int32(y), Month(m), uint8(day))
	case string:
		d, err = parseDate(tv)
	case []byte:
		d, err = parseDate(string(tv))
	default:
		err = errorBadTypeForConstructor("Date", x)
	}

	if len(constraints) > 0 && err == nil {
		var group ConstraintGroup[Date] = constraints
		err = group.Constrain(d)
	}

	if err != nil {
		d = Date{}
	}

	return d, err
}

func parseDate(s string) (Date, error) {
	d, n, err := scanDate(s, 0)
	if err == nil && n != len(s) {
		err = errorTrailingText
	}
	if err != nil {
		if _, isRange := err.(ComponentRange); !isRange {
			err = errorBadText("Date", s, err)
		}
	}
	return d, err
}

/*
scanYear reads an optionally signed year of at least four digits from
s at i.
*/
func scanYear(s string, i int) (int32, int, error) {
	neg := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i-start < 4 || i-start > 6 {
		return 0, i, errorBadDigits
	}
	y, _ := atoiN(s, start, i-start)
	if neg {
		y = -y
	}
	if y < int64(MinYear) || y > int64(MaxYear) {
		return 0, i, ComponentRange{Name: "year", Minimum: int64(MinYear), Maximum: int64(MaxYear), Value: y}
	}
	return int32(y), i, nil
}

/*
scanDate reads a calendar, ordinal or ISO week date from s at i,
returning the date and the index following it.
*/
func scanDate(s string, i int) (Date, int, error) {
	year, i, err := scanYear(s, i)
	if err != nil {
		return Date{}, i, err
	}
	if i >= len(s) || s[i] != '-' {
		return Date{}, i, errorBadSeparator
	}
	i++

	// ISO week date
	if i < len(s) && s[i] == 'W' {
		week, ok := atoiN(s, i+1, 2)
		if !ok || i+3 >= len(s) || s[i+3] != '-' {
			return Date{}, i, errorBadDigits
		}
		wd, ok := atoiN(s, i+4, 1)
		if !ok || wd < 1 || wd > 7 {
			return Date{}, i, errorBadDigits
		}
		d, err := DateFromISOWeekDate(year, uint8(week), Weekday(wd-1))
		return d, i + 5, err
	}

	// ordinal date: exactly three digits with no further separator
	if v, ok := atoiN(s, i, 3); ok && (i+3 == len(s) || !isDigit(s[i+3]) && s[i+3] != '-') {
		d, err := DateFromOrdinalDate(year, uint16(v))
		return d, i + 3, err
	}

	month, ok := atoiN(s, i, 2)
	if !ok || i+2 >= len(s) || s[i+2] != '-' {
		return Date{}, i, errorBadDigits
	}
	day, ok := atoiN(s, i+3, 2)
	if !ok {
		return Date{}, i, errorBadDigits
	}
	d, err := DateFromCalendarDate(year, Month(month), uint8(day))
	return d, i + 5, err
}
