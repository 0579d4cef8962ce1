package chronos

import (
	"math"
	"testing"
	"time"
)

func TestElapsed(t *testing.T) {
	e := NewElapsed(1, 1_500_000_000)
	if e.Seconds() != 2 || e.SubsecNanoseconds() != 500_000_000 {
		t.Fatalf("%s failed: carry not applied, got %s", t.Name(), e)
	}
	if sat := NewElapsed(math.MaxUint64, 1_000_000_000); sat.Seconds() != math.MaxUint64 {
		t.Errorf("%s failed: carry did not saturate", t.Name())
	}
	if !(Elapsed{}).IsZero() || e.IsZero() {
		t.Errorf("%s failed: IsZero", t.Name())
	}

	if d, ok := e.Duration(); !ok || d != Milliseconds(2_500) {
		t.Errorf("%s failed: Duration gave %s (%t)", t.Name(), d, ok)
	}
	if std, ok := e.Std(); !ok || std != 2500*time.Millisecond {
		t.Errorf("%s failed: Std gave %v (%t)", t.Name(), std, ok)
	}

	big := Elapsed{seconds: 1 << 63}
	if _, ok := big.Duration(); ok {
		t.Errorf("%s failed: 2^63 seconds fits a Duration", t.Name())
	}
	if _, ok := big.Std(); ok {
		t.Errorf("%s failed: 2^63 seconds fits a time.Duration", t.Name())
	}
	if got := big.String(); got != "PT9223372036854775808S" {
		t.Errorf("%s failed: got %q", t.Name(), got)
	}
	if got := e.String(); got != "PT2.5S" {
		t.Errorf("%s failed: got %q", t.Name(), got)
	}

	if e.Compare(big) != -1 || big.Compare(e) != 1 || e.Compare(NewElapsed(2, 499_999_999)) != 1 || e.Compare(e) != 0 {
		t.Errorf("%s failed: comparison", t.Name())
	}

	if from, ok := ElapsedFromStd(1500 * time.Millisecond); !ok || from != NewElapsed(1, 500_000_000) {
		t.Errorf("%s failed: ElapsedFromStd gave %s (%t)", t.Name(), from, ok)
	}
	if _, ok := ElapsedFromStd(-time.Nanosecond); ok {
		t.Errorf("%s failed: negative time.Duration accepted", t.Name())
	}
}

func TestDuration_elapsedInterop(t *testing.T) {
	if _, ok := Second.Neg().Elapsed(); ok {
		t.Errorf("%s failed: negative duration converted", t.Name())
	}
	if e, ok := Milliseconds(1_500).Elapsed(); !ok || e != NewElapsed(1, 500_000_000) {
		t.Errorf("%s failed: got %s (%t)", t.Name(), e, ok)
	}
	if e := MinDuration.AbsElapsed(); e.Seconds() != 1<<63 || e.SubsecNanoseconds() != 999_999_999 {
		t.Errorf("%s failed: AbsElapsed of MinDuration gave %s", t.Name(), e)
	}

	if Second.Neg().CompareElapsed(Elapsed{}) != -1 ||
		Second.CompareElapsed(NewElapsed(1, 0)) != 0 ||
		MaxDuration.CompareElapsed(Elapsed{seconds: 1 << 63}) != -1 {
		t.Errorf("%s failed: CompareElapsed", t.Name())
	}

	if d, ok := Second.CheckedAddElapsed(NewElapsed(0, 500_000_000)); !ok || d != Milliseconds(1_500) {
		t.Errorf("%s failed: got %s (%t)", t.Name(), d, ok)
	}
	if d, ok := Second.CheckedSubElapsed(NewElapsed(2, 0)); !ok || d != Second.Neg() {
		t.Errorf("%s failed: got %s (%t)", t.Name(), d, ok)
	}

	// an Elapsed beyond MaxDuration may still be added to a negative Duration
	if d, ok := Seconds(-10).CheckedAddElapsed(Elapsed{seconds: 1 << 63}); !ok || d.WholeSeconds() != math.MaxInt64-9 {
		t.Errorf("%s failed: got %s (%t)", t.Name(), d, ok)
	}
	if _, ok := MaxDuration.CheckedAddElapsed(NewElapsed(0, 1)); ok {
		t.Errorf("%s failed: overflow not reported", t.Name())
	}
	if _, ok := ZeroDuration.CheckedSubElapsed(Elapsed{seconds: math.MaxUint64}); ok {
		t.Errorf("%s failed: underflow not reported", t.Name())
	}
}
