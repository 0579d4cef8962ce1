package main

import (
	"fmt"
	"strings"

	"github.com/JesseCoretta/go-chronos"
	"github.com/JesseCoretta/go-chronos/serde"
)

type instantView struct {
	Instant serde.OffsetDateTime `json:"instant" yaml:"instant"`
}

type durationView struct {
	Duration serde.Duration        `json:"duration" yaml:"duration"`
	Compact  serde.CompactDuration `json:"compact" yaml:"compact"`
}

// dateView holds the calendar views of a date.
type dateView struct {
	Date       serde.Date `json:"date" yaml:"date"`
	Ordinal    string     `json:"ordinal" yaml:"ordinal"`
	ISOWeek    string     `json:"iso_week" yaml:"iso_week"`
	Weekday    string     `json:"weekday" yaml:"weekday"`
	JulianDay  int32      `json:"julian_day" yaml:"julian_day"`
	SundayWeek uint8      `json:"sunday_week" yaml:"sunday_week"`
	MondayWeek uint8      `json:"monday_week" yaml:"monday_week"`
	LeapYear   bool       `json:"leap_year" yaml:"leap_year"`
}

func newDateView(d chronos.Date) dateView {
	year, ordinal := d.ToOrdinalDate()
	wy, week, wd := d.ToISOWeekDate()
	return dateView{
		Date:       serde.Date{Date: d},
		Ordinal:    fmt.Sprintf("%s-%03d", yearString(year), ordinal),
		ISOWeek:    fmt.Sprintf("%s-W%02d-%d", yearString(wy), week, wd.NumberFromMonday()),
		Weekday:    d.Weekday().String(),
		JulianDay:  d.ToJulianDay(),
		SundayWeek: d.SundayBasedWeek(),
		MondayWeek: d.MondayBasedWeek(),
		LeapYear:   chronos.IsLeapYear(year),
	}
}

func yearString(y int32) string {
	if y < 0 {
		return fmt.Sprintf("-%04d", -y)
	}
	return fmt.Sprintf("%04d", y)
}

func (r dateView) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "date:        %s\n", r.Date.String())
	fmt.Fprintf(&b, "ordinal:     %s\n", r.Ordinal)
	fmt.Fprintf(&b, "iso week:    %s\n", r.ISOWeek)
	fmt.Fprintf(&b, "weekday:     %s\n", r.Weekday)
	fmt.Fprintf(&b, "julian day:  %d\n", r.JulianDay)
	fmt.Fprintf(&b, "sunday week: %d\n", r.SundayWeek)
	fmt.Fprintf(&b, "monday week: %d\n", r.MondayWeek)
	fmt.Fprintf(&b, "leap year:   %t", r.LeapYear)
	return b.String()
}
