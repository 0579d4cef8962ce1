//go:build !chronos_large_dates

package chronos

const (
	minDateText = "-9999-01-01"
	maxDateText = "9999-12-31"

	// first year beyond MaxYear
	beyondMaxDateText = "10000-01-01"
)
