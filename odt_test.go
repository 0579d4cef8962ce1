package chronos

import (
	"errors"
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func mustOffset(t *testing.T, h, m, s int8) UtcOffset {
	t.Helper()
	o, err := UtcOffsetFromHMS(h, m, s)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	return o
}

func TestOffsetDateTime_toOffset(t *testing.T) {
	odt := mustPDT(t, 2021, January, 1, 0, 0, 0, 0).AssumeOffset(mustOffset(t, 1, 0, 0))
	if got := odt.String(); got != "2021-01-01 0:00:00.0 +01:00:00" {
		t.Errorf("%s failed: got %q", t.Name(), got)
	}

	utc := odt.ToOffset(UTC)
	if !utc.Equal(odt) || utc.Compare(odt) != 0 || !odt.Since(utc).IsZero() {
		t.Errorf("%s failed: offset change moved the instant", t.Name())
	}
	if got := utc.String(); got != "2020-12-31 23:00:00.0 +00:00:00" {
		t.Errorf("%s failed: got %q", t.Name(), got)
	}
	if utc.Year() != 2020 || odt.Year() != 2021 || utc.Hour() != 23 || odt.Hour() != 0 {
		t.Errorf("%s failed: projections do not follow the offset", t.Name())
	}
	if odt.Weekday() != Friday || utc.Weekday() != Thursday {
		t.Errorf("%s failed: weekday projections", t.Name())
	}
	if odt.ReplaceOffset(UTC) != utc {
		t.Errorf("%s failed: ReplaceOffset differs from ToOffset", t.Name())
	}

	for idx, o := range []UtcOffset{
		mustOffset(t, -12, 0, 0),
		mustOffset(t, 5, 45, 0),
		mustOffset(t, -3, -30, -7),
		mustOffset(t, 23, 59, 59),
	} {
		viewed := odt.ToOffset(o)
		if viewed.UnixTimestamp() != odt.UnixTimestamp() {
			t.Errorf("%s[%d] failed: timestamp changed at %s", t.Name(), idx, o)
		}
		if back := viewed.DateTime().AssumeOffset(o); !back.Equal(odt) {
			t.Errorf("%s[%d] failed: local view at %s does not map back", t.Name(), idx, o)
		}
	}
}

func TestOffsetDateTime_checkedToOffset(t *testing.T) {
	edge := MaxPrimitiveDateTime.AssumeUTC()
	if _, ok := edge.CheckedToOffset(mustOffset(t, 1, 0, 0)); ok {
		t.Errorf("%s failed: local view beyond MaxDate accepted", t.Name())
	}
	if got, ok := edge.CheckedToOffset(mustOffset(t, -1, 0, 0)); !ok || got.Hour() != 22 {
		t.Errorf("%s failed: got %s (%t)", t.Name(), got, ok)
	}
	if _, ok := MinPrimitiveDateTime.AssumeUTC().CheckedToOffset(mustOffset(t, -1, 0, 0)); ok {
		t.Errorf("%s failed: local view before MinDate accepted", t.Name())
	}
}

func TestOffsetDateTime_unix(t *testing.T) {
	odt, err := FromUnixTimestamp(1_609_459_200)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if odt.Date() != mustDate(t, 2021, January, 1) || odt.Time() != Midnight || !odt.Offset().IsUTC() {
		t.Errorf("%s failed: got %s", t.Name(), odt)
	}

	if odt, err = FromUnixTimestamp(-1); err != nil || odt.String() != "1969-12-31 23:59:59.0 +00:00:00" {
		t.Errorf("%s failed: got %s (%v)", t.Name(), odt, err)
	}

	for _, ts := range []int64{maxTimestamp + 1, minTimestamp - 1} {
		_, err = FromUnixTimestamp(ts)
		var cr ComponentRange
		if !errors.As(err, &cr) || cr.Name != "timestamp" {
			t.Errorf("%s failed: want timestamp range error, got %v", t.Name(), err)
		}
	}
	if got, _ := FromUnixTimestamp(maxTimestamp); got.Date() != MaxDate {
		t.Errorf("%s failed: maximum timestamp gave %s", t.Name(), got)
	}

	ns := big.NewInt(1_609_459_200_000_000_005)
	if odt, err = FromUnixTimestampNanos(ns); err != nil || odt.Nanosecond() != 5 || odt.UnixTimestamp() != 1_609_459_200 {
		t.Errorf("%s failed: got %s (%v)", t.Name(), odt, err)
	}
	if odt.UnixTimestampNanos().Cmp(ns) != 0 {
		t.Errorf("%s failed: nanosecond round trip gave %s", t.Name(), odt.UnixTimestampNanos())
	}
	if odt, err = FromUnixTimestampNanos(big.NewInt(-1)); err != nil || odt.Nanosecond() != 999_999_999 || odt.UnixTimestamp() != -1 {
		t.Errorf("%s failed: got %s (%v)", t.Name(), odt, err)
	}
	huge := new(big.Int).Lsh(big.NewInt(1), 100)
	if _, err = FromUnixTimestampNanos(huge); !errors.Is(err, ComponentRange{Name: "timestamp"}) {
		t.Errorf("%s failed: want timestamp range error, got %v", t.Name(), err)
	}
	if _, err = FromUnixTimestampNanos(nil); err == nil {
		t.Errorf("%s failed: nil timestamp accepted", t.Name())
	}
}

func TestOffsetDateTime_arithmetic(t *testing.T) {
	plusOne := mustOffset(t, 1, 0, 0)
	odt := mustPDT(t, 2021, January, 1, 0, 0, 0, 0).AssumeOffset(plusOne)

	later, ok := odt.CheckedAdd(Hour)
	if !ok || later.String() != "2021-01-01 1:00:00.0 +01:00:00" {
		t.Errorf("%s failed: got %s", t.Name(), later)
	}
	if later.Since(odt) != Hour || !later.After(odt) || !odt.Before(later) {
		t.Errorf("%s failed: Since gave %s", t.Name(), later.Since(odt))
	}
	if earlier, ok := odt.CheckedSub(Hour); !ok || earlier.Day() != 31 || earlier.Offset() != plusOne {
		t.Errorf("%s failed: got %s", t.Name(), earlier)
	}
	if got, ok := odt.AddElapsed(NewElapsed(secondsPerDay, 0)); !ok || got.Day() != 2 {
		t.Errorf("%s failed: got %s", t.Name(), got)
	}
	if got, ok := odt.SubElapsed(NewElapsed(secondsPerDay, 0)); !ok || got.Day() != 31 {
		t.Errorf("%s failed: got %s", t.Name(), got)
	}

	// arithmetic in UTC and at an offset agree on the instant
	viaUTC, _ := odt.ToOffset(UTC).CheckedAdd(Days(40))
	viaLocal, _ := odt.CheckedAdd(Days(40))
	if !viaUTC.Equal(viaLocal) {
		t.Errorf("%s failed: %s != %s", t.Name(), viaUTC, viaLocal)
	}

	edge := MaxPrimitiveDateTime.AssumeOffset(mustOffset(t, -1, 0, 0))
	if _, ok := edge.CheckedAdd(Nanosecond); ok {
		t.Errorf("%s failed: overflow not reported", t.Name())
	}
	if got := edge.SaturatingAdd(Day); !got.Equal(edge) || got.DateTime() != MaxPrimitiveDateTime {
		t.Errorf("%s failed: got %s", t.Name(), got)
	}
	if got := MinPrimitiveDateTime.AssumeUTC().SaturatingSub(Day); got.DateTime() != MinPrimitiveDateTime {
		t.Errorf("%s failed: got %s", t.Name(), got)
	}
	if _, ok := edge.AddElapsed(NewElapsed(0, 1)); ok {
		t.Errorf("%s failed: elapsed overflow not reported", t.Name())
	}
}

func TestOffsetDateTime_replace(t *testing.T) {
	odt := mustPDT(t, 2021, January, 1, 0, 0, 0, 0).AssumeOffset(mustOffset(t, 1, 0, 0))

	noon := odt.ReplaceTime(mustTime(t, 12, 0, 0, 0))
	if noon.UnixTimestamp() != 1_609_455_600+12*secondsPerHour || noon.Hour() != 12 {
		t.Errorf("%s failed: ReplaceTime gave %s", t.Name(), noon)
	}
	moved := odt.ReplaceDate(mustDate(t, 2021, July, 4))
	if moved.Date() != mustDate(t, 2021, July, 4) || moved.Time() != Midnight {
		t.Errorf("%s failed: ReplaceDate gave %s", t.Name(), moved)
	}
	if got := odt.ReplaceDateTime(odt.DateTime()); got != odt {
		t.Errorf("%s failed: %s", t.Name(), cmp.Diff(odt, got, cmpUnexported))
	}
}

func TestOffsetDateTime_std(t *testing.T) {
	odt := mustPDT(t, 2021, January, 1, 0, 0, 0, 5).AssumeOffset(mustOffset(t, -3, -30, 0))

	std := odt.Std()
	if std.Unix() != odt.UnixTimestamp() || std.Nanosecond() != 5 {
		t.Errorf("%s failed: Std gave %v", t.Name(), std)
	}
	if _, secs := std.Zone(); secs != -12_600 {
		t.Errorf("%s failed: zone offset %d", t.Name(), secs)
	}
	if std.Hour() != 0 || std.Day() != 1 {
		t.Errorf("%s failed: wall clock %v", t.Name(), std)
	}

	back, err := OffsetDateTimeFromStd(std)
	if err != nil || back != odt {
		t.Errorf("%s failed: %s (%v)", t.Name(), cmp.Diff(odt, back, cmpUnexported), err)
	}

	if _, err = OffsetDateTimeFromStd(time.Date(int(MaxYear)+1, time.January, 1, 0, 0, 0, 0, time.UTC)); err == nil {
		t.Errorf("%s failed: unsupported year accepted", t.Name())
	}
}

func TestNewOffsetDateTime(t *testing.T) {
	newYear, _ := FromUnixTimestamp(1_609_459_200)
	for idx, tc := range []struct {
		in     any
		want   OffsetDateTime
		offset UtcOffset
	}{
		{newYear, newYear, UTC},
		{int64(1_609_459_200), newYear, UTC},
		{"2021-01-01T00:00:00Z", newYear, UTC},
		{"2021-01-01 00:00:00Z", newYear, UTC},
		{"2021-01-01t01:00:00+01:00", newYear, mustOffset(t, 1, 0, 0)},
		{[]byte("2020-12-31T19:00-05"), newYear, mustOffset(t, -5, 0, 0)},
		{"2020-366T23:00:00.000-01:00", newYear, mustOffset(t, -1, 0, 0)},
		{time.Unix(1_609_459_200, 0).In(time.FixedZone("", 3_600)), newYear, mustOffset(t, 1, 0, 0)},
	} {
		got, err := NewOffsetDateTime(tc.in)
		if err != nil {
			t.Errorf("%s[%d] failed: %v", t.Name(), idx, err)
			continue
		}
		if !got.Equal(tc.want) || got.Offset() != tc.offset {
			t.Errorf("%s[%d] failed: want %s at %s, got %s", t.Name(), idx, tc.want, tc.offset, got)
		}
	}

	for idx, bad := range []any{
		"", "2021-01-01", "2021-01-01T00:00:00", "2021-01-01X00:00Z",
		"2021-01-01T00:00Zjunk", "2021-02-30T00:00Z", "2021-01-01T24:00Z",
		int64(maxTimestamp + 1), 1.5,
	} {
		if got, err := NewOffsetDateTime(bad); err == nil || got != UnixEpoch {
			t.Errorf("%s[%d] failed: %v accepted as %s", t.Name(), idx, bad, got)
		}
	}

	after2020, _ := FromUnixTimestamp(1_577_836_800)
	window := InstantRangeConstraint(after2020, MaxPrimitiveDateTime.AssumeUTC())
	if _, err := NewOffsetDateTime("2019-06-01T00:00Z", window); err == nil {
		t.Errorf("%s failed: constraint not applied", t.Name())
	}
	if _, err := NewOffsetDateTime("2021-06-01T00:00+02:00", window); err != nil {
		t.Errorf("%s failed: %v", t.Name(), err)
	}
}

func ExampleOffsetDateTime_ToOffset() {
	odt, _ := NewOffsetDateTime("2021-01-01T00:00:00+01:00")
	fmt.Println(odt)
	fmt.Println(odt.ToOffset(UTC))
	fmt.Println(odt.UnixTimestamp())
	// Output:
	// 2021-01-01 0:00:00.0 +01:00:00
	// 2020-12-31 23:00:00.0 +00:00:00
	// 1609455600
}
