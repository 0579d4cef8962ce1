package chronos

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func mustTime(t *testing.T, h, m, s uint8, ns uint32) Time {
	t.Helper()
	tod, err := TimeFromHMSNano(h, m, s, ns)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	return tod
}

func TestTimeFromHMS(t *testing.T) {
	tod, err := TimeFromHMSMilli(1, 2, 3, 4)
	if err != nil || tod.Nanosecond() != 4_000_000 || tod.Millisecond() != 4 {
		t.Fatalf("%s failed: got %s (%v)", t.Name(), tod, err)
	}
	if tod, err = TimeFromHMSMicro(1, 2, 3, 4); err != nil || tod.Microsecond() != 4 {
		t.Fatalf("%s failed: got %s (%v)", t.Name(), tod, err)
	}
	if h, m, s := tod.AsHMS(); h != 1 || m != 2 || s != 3 {
		t.Errorf("%s failed: AsHMS", t.Name())
	}
	if _, _, _, ms := tod.AsHMSMilli(); ms != 0 {
		t.Errorf("%s failed: AsHMSMilli", t.Name())
	}
	if _, _, _, us := tod.AsHMSMicro(); us != 4 {
		t.Errorf("%s failed: AsHMSMicro", t.Name())
	}
	if _, _, _, ns := tod.AsHMSNano(); ns != 4_000 {
		t.Errorf("%s failed: AsHMSNano", t.Name())
	}

	for idx, tc := range []struct {
		fn   func() (Time, error)
		name string
	}{
		{func() (Time, error) { return TimeFromHMS(24, 0, 0) }, "hour"},
		{func() (Time, error) { return TimeFromHMS(0, 60, 0) }, "minute"},
		{func() (Time, error) { return TimeFromHMS(0, 0, 60) }, "second"},
		{func() (Time, error) { return TimeFromHMSMilli(0, 0, 0, 1_000) }, "millisecond"},
		{func() (Time, error) { return TimeFromHMSMicro(0, 0, 0, 1_000_000) }, "microsecond"},
		{func() (Time, error) { return TimeFromHMSNano(0, 0, 0, 1_000_000_000) }, "nanosecond"},
	} {
		if _, err := tc.fn(); !errors.Is(err, ComponentRange{Name: tc.name}) {
			t.Errorf("%s[%d] failed: want %s range error, got %v", t.Name(), idx, tc.name, err)
		}
	}
}

func TestTime_cascade(t *testing.T) {
	for idx, tc := range []struct {
		start Time
		d     Duration
		sub   bool
		adj   DateAdjustment
		want  Time
	}{
		{maxTime, Nanosecond, false, AdjustNext, Midnight},
		{Midnight, Nanosecond, true, AdjustPrevious, maxTime},
		{Midnight, ZeroDuration, false, AdjustNone, Midnight},
		{mustTime(t, 12, 0, 0, 0), Hours(25), false, AdjustNone, mustTime(t, 13, 0, 0, 0)},
		{mustTime(t, 23, 0, 0, 0), Hour, false, AdjustNext, Midnight},
		{mustTime(t, 0, 30, 0, 0), Hour, true, AdjustPrevious, mustTime(t, 23, 30, 0, 0)},
		{mustTime(t, 0, 0, 59, 999_999_999), Nanoseconds(1_000_000_001), false, AdjustNone, mustTime(t, 0, 1, 1, 0)},
		{mustTime(t, 1, 0, 0, 0), Milliseconds(-1), false, AdjustNone, mustTime(t, 0, 59, 59, 999_000_000)},
		{mustTime(t, 1, 0, 0, 0), Milliseconds(-1), true, AdjustNone, mustTime(t, 1, 0, 0, 1_000_000)},
	} {
		var adj DateAdjustment
		var got Time
		if tc.sub {
			adj, got = tc.start.AdjustingSub(tc.d)
			if plain := tc.start.Sub(tc.d); plain != got {
				t.Errorf("%s[%d] failed: Sub disagrees with AdjustingSub", t.Name(), idx)
			}
		} else {
			adj, got = tc.start.AdjustingAdd(tc.d)
			if plain := tc.start.Add(tc.d); plain != got {
				t.Errorf("%s[%d] failed: Add disagrees with AdjustingAdd", t.Name(), idx)
			}
		}
		if adj != tc.adj || got != tc.want {
			t.Errorf("%s[%d] failed: want %s %s, got %s %s",
				t.Name(), idx, tc.adj, tc.want, adj, got)
		}
	}
}

func TestTime_elapsed(t *testing.T) {
	next, got := maxTime.adjustingAddElapsed(NewElapsed(0, 1))
	if !next || got != Midnight {
		t.Errorf("%s failed: got %s (%t)", t.Name(), got, next)
	}
	prev, got := Midnight.adjustingSubElapsed(NewElapsed(secondsPerDay, 0))
	if prev || got != Midnight {
		t.Errorf("%s failed: whole day wrapped: %s (%t)", t.Name(), got, prev)
	}
	if got = mustTime(t, 10, 0, 0, 0).AddElapsed(NewElapsed(secondsPerHour*3, 0)); got != mustTime(t, 13, 0, 0, 0) {
		t.Errorf("%s failed: AddElapsed gave %s", t.Name(), got)
	}
	if got = mustTime(t, 1, 0, 0, 0).SubElapsed(NewElapsed(secondsPerHour*2, 0)); got != mustTime(t, 23, 0, 0, 0) {
		t.Errorf("%s failed: SubElapsed gave %s", t.Name(), got)
	}
}

func TestTime_SinceCompare(t *testing.T) {
	a := mustTime(t, 12, 0, 0, 0)
	b := mustTime(t, 11, 59, 59, 500_000_000)
	if d := a.Since(b); d != Milliseconds(500) {
		t.Errorf("%s failed: want 0.5s, got %s", t.Name(), d)
	}
	if d := b.Since(a); d != Milliseconds(-500) {
		t.Errorf("%s failed: want -0.5s, got %s", t.Name(), d)
	}
	if a.Compare(b) != 1 || b.Compare(a) != -1 || a.Compare(a) != 0 {
		t.Errorf("%s failed: comparison", t.Name())
	}
}

func TestTime_String(t *testing.T) {
	for idx, tc := range []struct {
		tod  Time
		want string
	}{
		{Midnight, "0:00:00.0"},
		{mustTime(t, 1, 2, 3, 500_000_000), "1:02:03.5"},
		{mustTime(t, 23, 59, 59, 123_456_789), "23:59:59.123456789"},
		{mustTime(t, 9, 5, 0, 1_000), "9:05:00.000001"},
	} {
		if got := tc.tod.String(); got != tc.want {
			t.Errorf("%s[%d] failed: want %q, got %q", t.Name(), idx, tc.want, got)
		}
		if back, err := NewTime(tc.want); err != nil || back != tc.tod {
			t.Errorf("%s[%d] failed: %q parsed as %s (%v)", t.Name(), idx, tc.want, back, err)
		}
	}
}

func TestNewTime(t *testing.T) {
	std := time.Date(2021, 1, 1, 13, 14, 15, 16, time.UTC)
	for idx, tc := range []struct {
		in   any
		want Time
	}{
		{maxTime, maxTime},
		{std, mustTime(t, 13, 14, 15, 16)},
		{"13:14", mustTime(t, 13, 14, 0, 0)},
		{"13:14:15,25", mustTime(t, 13, 14, 15, 250_000_000)},
		{[]byte("07:08:09"), mustTime(t, 7, 8, 9, 0)},
	} {
		got, err := NewTime(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("%s[%d] failed: want %s, got %s (%v)", t.Name(), idx, tc.want, got, err)
		}
	}

	for idx, bad := range []any{"", "1", "24:00", "12:60", "12:00:60", "12-00", "12:00:00.", "12:00:00.0000000001", "12:00x", 42} {
		if got, err := NewTime(bad); err == nil || got != Midnight {
			t.Errorf("%s[%d] failed: %v accepted as %s", t.Name(), idx, bad, got)
		}
	}

	if _, err := NewTime("08:00", TimeRangeConstraint(mustTime(t, 9, 0, 0, 0), mustTime(t, 17, 0, 0, 0))); err == nil {
		t.Errorf("%s failed: constraint not applied", t.Name())
	}
}

func ExampleTime_AdjustingAdd() {
	late, _ := TimeFromHMS(23, 59, 59)
	adj, t := late.AdjustingAdd(Second)
	fmt.Println(adj, t)
	// Output: next 0:00:00.0
}
