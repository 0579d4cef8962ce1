//go:build chronos_large_dates

package chronos

/*
MinYear and MaxYear bound the proleptic Gregorian years representable
by [Date]. This range is in effect because the package was built with
"-tags chronos_large_dates".
*/
const (
	MinYear int32 = -999_999
	MaxYear int32 = 999_999
)
