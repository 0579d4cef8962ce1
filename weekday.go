package chronos

/*
weekday.go contains the Weekday enumeration.
*/

/*
Weekday implements a day of the week. Weeks begin on [Monday], per
ISO 8601.
*/
type Weekday uint8

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday",
	"Friday", "Saturday", "Sunday",
}

/*
String returns the English name of the receiver instance.
*/
func (r Weekday) String() string {
	if !r.valid() {
		return "<invalid weekday>"
	}
	return weekdayNames[r]
}

func (r Weekday) valid() bool { return r <= Sunday }

/*
Next returns the day following the receiver instance.
*/
func (r Weekday) Next() Weekday { return (r + 1) % 7 }

/*
Previous returns the day preceding the receiver instance.
*/
func (r Weekday) Previous() Weekday { return (r + 6) % 7 }

// NumberFromMonday returns 1 for Monday through 7 for Sunday.
func (r Weekday) NumberFromMonday() uint8 { return uint8(r) + 1 }

// NumberFromSunday returns 1 for Sunday through 7 for Saturday.
func (r Weekday) NumberFromSunday() uint8 { return uint8((r+1)%7) + 1 }

// NumberDaysFromMonday returns 0 for Monday through 6 for Sunday.
func (r Weekday) NumberDaysFromMonday() uint8 { return uint8(r) }

// NumberDaysFromSunday returns 0 for Sunday through 6 for Saturday.
func (r Weekday) NumberDaysFromSunday() uint8 { return uint8((r + 1) % 7) }

/*
weekdayFromDays returns the [Weekday] of the day counted relative to
1970-01-01, which was a Thursday.
*/
func weekdayFromDays(days int64) Weekday {
	return Weekday(modFloor(days+3, 7))
}
