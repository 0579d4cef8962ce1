package chronos

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var cmpUnexported = cmp.AllowUnexported(
	Duration{}, Elapsed{}, UtcOffset{}, Time{}, Date{},
	PrimitiveDateTime{}, OffsetDateTime{},
)

func TestDurationFromParts(t *testing.T) {
	for idx, tc := range []struct {
		seconds int64
		nanos   int32
		want    Duration
	}{
		{1, -500_000_000, Duration{0, 500_000_000}},
		{-1, 500_000_000, Duration{0, -500_000_000}},
		{0, 2_500_000_000 - 1 - 1_000_000_000, Duration{1, 499_999_999}},
		{0, -1_000_000_000, Duration{-1, 0}},
		{math.MaxInt64, 1_000_000_000, MaxDuration},
		{math.MinInt64, -1_000_000_000, MinDuration},
	} {
		if got := DurationFromParts(tc.seconds, tc.nanos); got != tc.want {
			t.Errorf("%s[%d] failed: %s", t.Name(), idx, cmp.Diff(tc.want, got, cmpUnexported))
		}
	}
}

func TestDuration_constructors(t *testing.T) {
	for idx, tc := range []struct {
		got, want Duration
	}{
		{Weeks(1), Duration{604_800, 0}},
		{Days(-1), Duration{-86_400, 0}},
		{Hours(2), Duration{7_200, 0}},
		{Minutes(3), Duration{180, 0}},
		{Milliseconds(-1_500), Duration{-1, -500_000_000}},
		{Microseconds(1_000_001), Duration{1, 1_000}},
		{Nanoseconds(-1_500_000_000), Duration{-1, -500_000_000}},
		{Days(math.MaxInt64), Duration{math.MaxInt64, 0}},
		{Weeks(math.MinInt64), Duration{math.MinInt64, 0}},
		{SecondsFloat(1.5), Duration{1, 500_000_000}},
		{SecondsFloat(-0.5), Duration{0, -500_000_000}},
		{SecondsFloat(math.NaN()), ZeroDuration},
		{SecondsFloat(1e300), MaxDuration},
		{SecondsFloat(-1e300), MinDuration},
		{SecondsFloat32(0.25), Duration{0, 250_000_000}},
		{FromStd(-1500 * time.Millisecond), Duration{-1, -500_000_000}},
	} {
		if tc.got != tc.want {
			t.Errorf("%s[%d] failed: %s", t.Name(), idx, cmp.Diff(tc.want, tc.got, cmpUnexported))
		}
	}

	huge := new(big.Int).Lsh(big.NewInt(1), 100)
	if d, ok := NanosecondsBig(huge); ok || d != MaxDuration {
		t.Errorf("%s failed: want saturation, got %s (%t)", t.Name(), d, ok)
	}
	if d, ok := NanosecondsBig(new(big.Int).Neg(huge)); ok || d != MinDuration {
		t.Errorf("%s failed: want saturation, got %s (%t)", t.Name(), d, ok)
	}
	if d, ok := NanosecondsBig(big.NewInt(-1_500_000_000)); !ok || d != Milliseconds(-1_500) {
		t.Errorf("%s failed: got %s (%t)", t.Name(), d, ok)
	}
	if d, ok := NanosecondsBig(nil); !ok || !d.IsZero() {
		t.Errorf("%s failed: nil input", t.Name())
	}
}

func TestDuration_accessors(t *testing.T) {
	d := Seconds(-90).SaturatingSub(Milliseconds(250))
	if d.WholeMinutes() != -1 || d.WholeSeconds() != -90 || d.WholeHours() != 0 {
		t.Errorf("%s failed: whole units of %s do not truncate toward zero", t.Name(), d)
	}
	if d.SubsecMilliseconds() != -250 || d.SubsecMicroseconds() != -250_000 || d.SubsecNanoseconds() != -250_000_000 {
		t.Errorf("%s failed: subsecond units of %s", t.Name(), d)
	}
	if got := d.WholeMilliseconds().Int64(); got != -90_250 {
		t.Errorf("%s failed: want -90250ms, got %d", t.Name(), got)
	}
	if got := d.WholeMicroseconds().Int64(); got != -90_250_000 {
		t.Errorf("%s failed: want -90250000us, got %d", t.Name(), got)
	}
	if got := MaxDuration.WholeNanoseconds().String(); got != "9223372036854775807999999999" {
		t.Errorf("%s failed: got %s", t.Name(), got)
	}
	if Week.WholeWeeks() != 1 || Week.WholeDays() != 7 {
		t.Errorf("%s failed: week units", t.Name())
	}
	if d.AsSecondsFloat() != -90.25 || d.AsSecondsFloat32() != -90.25 {
		t.Errorf("%s failed: float seconds %f", t.Name(), d.AsSecondsFloat())
	}
	if !d.IsNegative() || d.IsPositive() || d.IsZero() {
		t.Errorf("%s failed: sign predicates", t.Name())
	}

	if std, ok := d.Std(); !ok || std != -90250*time.Millisecond {
		t.Errorf("%s failed: Std gave %v (%t)", t.Name(), std, ok)
	}
	if _, ok := MaxDuration.Std(); ok {
		t.Errorf("%s failed: MaxDuration fits time.Duration", t.Name())
	}
}

func TestDuration_checkedSaturatingParity(t *testing.T) {
	minSeconds := Duration{seconds: math.MinInt64}
	for idx, tc := range []struct {
		name string
		fn   func() (Duration, bool)
		sat  Duration
		want Duration
	}{
		{"max+1ns", func() (Duration, bool) { return MaxDuration.CheckedAdd(Nanosecond) }, MaxDuration.SaturatingAdd(Nanosecond), MaxDuration},
		{"max+1s", func() (Duration, bool) { return MaxDuration.CheckedAdd(Second) }, MaxDuration.SaturatingAdd(Second), MaxDuration},
		{"min-1ns", func() (Duration, bool) { return MinDuration.CheckedSub(Nanosecond) }, MinDuration.SaturatingSub(Nanosecond), MinDuration},
		{"min+min", func() (Duration, bool) { return MinDuration.CheckedAdd(MinDuration) }, MinDuration.SaturatingAdd(MinDuration), MinDuration},
		{"max-min", func() (Duration, bool) { return MaxDuration.CheckedSub(MinDuration) }, MaxDuration.SaturatingSub(MinDuration), MaxDuration},
		{"max*2", func() (Duration, bool) { return MaxDuration.CheckedMul(2) }, MaxDuration.SaturatingMul(2), MaxDuration},
		{"max*-2", func() (Duration, bool) { return MaxDuration.CheckedMul(-2) }, MaxDuration.SaturatingMul(-2), MinDuration},
		{"min*-1", func() (Duration, bool) { return MinDuration.CheckedMul(-1) }, MinDuration.SaturatingMul(-1), MaxDuration},
		{"0-minsecs", func() (Duration, bool) { return ZeroDuration.CheckedSub(minSeconds) }, ZeroDuration.SaturatingSub(minSeconds), MaxDuration},
	} {
		if _, ok := tc.fn(); ok {
			t.Errorf("%s[%d] %s failed: overflow not reported", t.Name(), idx, tc.name)
		}
		if tc.sat != tc.want {
			t.Errorf("%s[%d] %s failed: want %s, got %s", t.Name(), idx, tc.name, tc.want, tc.sat)
		}
	}
}

func TestDuration_arithmetic(t *testing.T) {
	a := Milliseconds(1_500)
	b := Milliseconds(-700)

	for idx, tc := range []struct {
		got  func() (Duration, bool)
		want Duration
	}{
		{func() (Duration, bool) { return a.CheckedAdd(b) }, Milliseconds(800)},
		{func() (Duration, bool) { return a.CheckedSub(b) }, Milliseconds(2_200)},
		{func() (Duration, bool) { return b.CheckedSub(a) }, Milliseconds(-2_200)},
		{func() (Duration, bool) { return a.CheckedMul(2) }, Seconds(3)},
		{func() (Duration, bool) { return b.CheckedMul(-3) }, Milliseconds(2_100)},
		{func() (Duration, bool) { return Seconds(3).CheckedDiv(2) }, Milliseconds(1_500)},
		{func() (Duration, bool) { return Seconds(-3).CheckedDiv(2) }, Milliseconds(-1_500)},
		{func() (Duration, bool) { return Milliseconds(3_300).CheckedDiv(-3) }, Milliseconds(-1_100)},
		{func() (Duration, bool) { return Nanoseconds(-7).CheckedDiv(2) }, Nanoseconds(-3)},
		{func() (Duration, bool) { return DurationFromParts(1, 1).CheckedDiv(3) }, Nanoseconds(333_333_333)},
		{func() (Duration, bool) {
			return DurationFromParts(2_574_025_310_131_874_036, 657_802_116).CheckedDiv(-989)
		}, DurationFromParts(-2_602_654_509_739_003, -70_432_560)},
	} {
		d, ok := tc.got()
		if !ok || d != tc.want {
			t.Errorf("%s[%d] failed: want %s, got %s (%t)", t.Name(), idx, tc.want, d, ok)
		}
	}

	if _, ok := Second.CheckedDiv(0); ok {
		t.Errorf("%s failed: division by zero permitted", t.Name())
	}
	if _, ok := MinDuration.CheckedDiv(-1); ok {
		t.Errorf("%s failed: MinDuration / -1 permitted", t.Name())
	}

	if MinDuration.Neg() != MaxDuration || a.Neg() != Milliseconds(-1_500) {
		t.Errorf("%s failed: negation", t.Name())
	}
	if b.Abs() != Milliseconds(700) || MinDuration.Abs() != MaxDuration {
		t.Errorf("%s failed: absolute value", t.Name())
	}
	if got := a.MulFloat(1.5); got != Milliseconds(2_250) {
		t.Errorf("%s failed: MulFloat gave %s", t.Name(), got)
	}
	if got := a.DivFloat(4); got != Milliseconds(375) {
		t.Errorf("%s failed: DivFloat gave %s", t.Name(), got)
	}
	if got := Seconds(3).Ratio(Seconds(2)); got != 1.5 {
		t.Errorf("%s failed: Ratio gave %f", t.Name(), got)
	}

	if a.Compare(b) != 1 || b.Compare(a) != -1 || a.Compare(a) != 0 || Nanosecond.Compare(ZeroDuration) != 1 {
		t.Errorf("%s failed: comparison", t.Name())
	}
}

func TestDuration_String(t *testing.T) {
	for idx, tc := range []struct {
		d    Duration
		want string
	}{
		{ZeroDuration, "PT0S"},
		{Second.Neg(), "-PT1S"},
		{Hours(1).SaturatingAdd(Minutes(30)), "PT1H30M"},
		{Days(2).SaturatingAdd(Milliseconds(500)), "P2DT0.5S"},
		{Days(2).SaturatingAdd(Milliseconds(500)).Neg(), "-P2DT0.5S"},
		{Week, "P7D"},
		{Nanosecond, "PT0.000000001S"},
		{Seconds(3_661), "PT1H1M1S"},
	} {
		if got := tc.d.String(); got != tc.want {
			t.Errorf("%s[%d] failed: want %q, got %q", t.Name(), idx, tc.want, got)
		}
		if back, err := NewDuration(tc.want); err != nil || back != tc.d {
			t.Errorf("%s[%d] failed: round trip of %q gave %s (%v)", t.Name(), idx, tc.want, back, err)
		}
	}
}

func TestNewDuration(t *testing.T) {
	for idx, tc := range []struct {
		in   any
		want Duration
	}{
		{Second, Second},
		{time.Minute, Minute},
		{NewElapsed(2, 5), DurationFromParts(2, 5)},
		{"P1W", Week},
		{"+PT1,5S", Milliseconds(1_500)},
		{[]byte("P1DT1H"), Days(1).SaturatingAdd(Hour)},
		{"PT36H", Hours(36)},
	} {
		got, err := NewDuration(tc.in)
		if err != nil {
			t.Errorf("%s[%d] failed: %v", t.Name(), idx, err)
		} else if got != tc.want {
			t.Errorf("%s[%d] failed: want %s, got %s", t.Name(), idx, tc.want, got)
		}
	}

	for idx, bad := range []any{
		"", "P", "PT", "P1Y", "P1M", "PT1M1H", "P1DT", "PT1.S",
		"PT1.1234567891S", "P1.5D", "1D", "P-1D", "PT99999999999999999999S",
		"P15250284452472W", 3.5, Elapsed{seconds: math.MaxUint64},
	} {
		if d, err := NewDuration(bad); err == nil || !d.IsZero() {
			t.Errorf("%s[%d] failed: %v accepted as %s", t.Name(), idx, bad, d)
		}
	}

	_, err := NewDuration(Hours(2), DurationRangeConstraint(ZeroDuration, Hour))
	var ce constraintErr
	if !errors.As(err, &ce) {
		t.Errorf("%s failed: constraint not applied, got %v", t.Name(), err)
	}
}

func ExampleDuration_String() {
	d := Days(2).SaturatingAdd(Milliseconds(500))
	fmt.Println(d)
	fmt.Println(d.Neg())
	// Output:
	// P2DT0.5S
	// -P2DT0.5S
}
