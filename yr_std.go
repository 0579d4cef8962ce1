//go:build !chronos_large_dates

package chronos

/*
MinYear and MaxYear bound the proleptic Gregorian years representable
by [Date]. Build with "-tags chronos_large_dates" to widen the range.
*/
const (
	MinYear int32 = -9999
	MaxYear int32 = 9999
)
