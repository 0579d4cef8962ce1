package chronos

/*
month.go contains the Month enumeration.
*/

/*
Month implements a month of the proleptic Gregorian calendar, numbered
from [January] (1) through [December] (12).
*/
type Month uint8

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [13]string{
	"<invalid month>",
	"January", "February", "March", "April", "May", "June", "July",
	"August", "September", "October", "November", "December",
}

/*
String returns the English name of the receiver instance.
*/
func (r Month) String() (s string) {
	s = monthNames[0]
	if r.valid() {
		s = monthNames[r]
	}
	return
}

func (r Month) valid() bool { return January <= r && r <= December }

/*
Next returns the month following the receiver instance, wrapping from
[December] to [January].
*/
func (r Month) Next() Month {
	if r >= December {
		return January
	}
	return r + 1
}

/*
Previous returns the month preceding the receiver instance, wrapping
from [January] to [December].
*/
func (r Month) Previous() Month {
	if r <= January {
		return December
	}
	return r - 1
}

/*
Days returns the number of days in the receiver month within the given
year. Zero is returned for an invalid month.
*/
func (r Month) Days(year int32) uint8 { return DaysInYearMonth(year, r) }

// days in each month of a common year.
var daysInMonth = [13]uint8{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
