package chronos

/*
cal.go contains proleptic Gregorian calendar arithmetic. Day counts are
expressed relative to 1970-01-01 (day zero) and computed through the
400-year era decomposition, which keeps every conversion exact across
the full supported range, negative years included.
*/

const (
	daysPerEra       = 146_097 // days in 400 Gregorian years
	civilEpochShift  = 719_468 // days from 0000-03-01 to 1970-01-01
	unixEpochJulian  = 2_440_588
	secondsPerDay    = 86_400
	secondsPerHour   = 3_600
	secondsPerMinute = 60
	secondsPerWeek   = 604_800
)

/*
IsLeapYear returns a Boolean value indicative of year being a leap year
in the proleptic Gregorian calendar.
*/
func IsLeapYear(year int32) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

/*
DaysInYear returns 366 for a leap year and 365 otherwise.
*/
func DaysInYear(year int32) uint16 {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

/*
DaysInYearMonth returns the number of days in month within year, or zero
if month is invalid.
*/
func DaysInYearMonth(year int32, month Month) uint8 {
	if !month.valid() {
		return 0
	} else if month == February && IsLeapYear(year) {
		return 29
	}
	return daysInMonth[month]
}

/*
WeeksInYear returns the number of ISO 8601 weeks (52 or 53) in the ISO
week-numbering year. A year has 53 weeks if January 1st falls on a
Thursday, or on a Wednesday in a leap year.
*/
func WeeksInYear(year int32) uint8 {
	jan1 := weekdayFromDays(daysFromCivil(int64(year), 1, 1))
	if jan1 == Thursday || (jan1 == Wednesday && IsLeapYear(year)) {
		return 53
	}
	return 52
}

/*
daysFromCivil returns the day count of the given calendar date. No
validation is performed.
*/
func daysFromCivil(year, month, day int64) int64 {
	if month <= 2 {
		year--
	}
	era := divFloor(year, 400)
	yoe := year - era*400
	mp := month + 9
	if month > 2 {
		mp = month - 3
	}
	doy := (153*mp+2)/5 + day - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*daysPerEra + doe - civilEpochShift
}

/*
civilFromDays is the inverse of daysFromCivil.
*/
func civilFromDays(days int64) (year, month, day int64) {
	z := days + civilEpochShift
	era := divFloor(z, daysPerEra)
	doe := z - era*daysPerEra
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	year = yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day = doy - (153*mp+2)/5 + 1
	if month = mp + 3; mp >= 10 {
		month = mp - 9
	}
	if month <= 2 {
		year++
	}
	return
}

/*
daysFromOrdinal returns the day count of the given ordinal date. No
validation is performed.
*/
func daysFromOrdinal(year, ordinal int64) int64 {
	return daysFromCivil(year, 1, 1) + ordinal - 1
}

/*
rollOrdinal moves an ordinal which lies before the first or after the
last day of year into the adjacent year, recomputing it against that
year's length. This repeats until the ordinal is valid.
*/
func rollOrdinal(year, ordinal int32) (int32, int32) {
	for ordinal < 1 {
		year--
		ordinal += int32(DaysInYear(year))
		debugCalendar(newLItem(year, "rolled back"), newLItem(ordinal, "ordinal"))
	}
	for ordinal > int32(DaysInYear(year)) {
		ordinal -= int32(DaysInYear(year))
		year++
		debugCalendar(newLItem(year, "rolled forward"), newLItem(ordinal, "ordinal"))
	}
	return year, ordinal
}
