package chronos

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func ExampleWeekdayConstraint() {
	workdays := WeekdayConstraint(Monday, Tuesday, Wednesday, Thursday, Friday)

	_, err := NewDate("2022-01-01", workdays)
	fmt.Println(err)

	d, err := NewDate("2022-01-03", workdays)
	fmt.Println(d, err)
	// Output:
	// CONSTRAINT VIOLATION: date 2022-01-01 falls on a Saturday, which is not permitted
	// 2022-01-03 <nil>
}

func ExampleLiftConstraint() {
	q1 := LiftConstraint(Date.Month, RangeConstraint(January, March))

	_, err := NewDate("2021-04-01", q1)
	fmt.Println(err != nil)

	d, _ := NewDate("2021-03-31", q1)
	fmt.Println(d)
	// Output:
	// true
	// 2021-03-31
}

func ExampleUnion() {
	morning, _ := TimeFromHMS(9, 0, 0)
	noon, _ := TimeFromHMS(12, 0, 0)
	evening, _ := TimeFromHMS(17, 0, 0)
	night, _ := TimeFromHMS(21, 0, 0)

	shifts := Union(TimeRangeConstraint(morning, noon), TimeRangeConstraint(evening, night))
	for _, s := range []string{"10:30", "14:00", "20:15"} {
		_, err := NewTime(s, shifts)
		fmt.Println(s, err == nil)
	}
	// Output:
	// 10:30 true
	// 14:00 false
	// 20:15 true
}

func TestConstraintGroup(t *testing.T) {
	var calls int
	counter := func(Date) error { calls++; return nil }
	fail := func(Date) error { return constraintViolationf("nope") }

	group := ConstraintGroup[Date]{counter, nil, fail, counter}
	err := group.Constrain(MaxDate)
	var ce constraintErr
	if !errors.As(err, &ce) || err.Error() != "CONSTRAINT VIOLATION: nope" {
		t.Errorf("%s failed: got %v", t.Name(), err)
	}
	if calls != 1 {
		t.Errorf("%s failed: evaluation did not stop at the first violation (%d calls)", t.Name(), calls)
	}

	if err = (ConstraintGroup[Date]{}).Constrain(MinDate); err != nil {
		t.Errorf("%s failed: empty group returned %v", t.Name(), err)
	}
}

func TestPropertyConstraint(t *testing.T) {
	leapDay := PropertyConstraint(func(d Date) error {
		if d.Month() != February || d.Day() != 29 {
			return errors.New("not a leap day")
		}
		return nil
	})

	if _, err := NewDate("2024-02-29", leapDay); err != nil {
		t.Errorf("%s failed: %v", t.Name(), err)
	}
	_, err := NewDate("2024-02-28", leapDay)
	var ce constraintErr
	if !errors.As(err, &ce) || err.Error() != "CONSTRAINT VIOLATION: not a leap day" {
		t.Errorf("%s failed: got %v", t.Name(), err)
	}
}

func TestRangeConstraints(t *testing.T) {
	lo, _ := NewDate("2021-01-01")
	hi, _ := NewDate("2021-12-31")
	year := DateRangeConstraint(lo, hi)

	for idx, tc := range []struct {
		in string
		ok bool
	}{
		{"2020-12-31", false},
		{"2021-01-01", true},
		{"2021-07-04", true},
		{"2021-12-31", true},
		{"2022-01-01", false},
	} {
		if _, err := NewDate(tc.in, year); (err == nil) != tc.ok {
			t.Errorf("%s[%d] failed: %s gave %v", t.Name(), idx, tc.in, err)
		}
	}

	_, err := NewDate("2022-01-01", year)
	if want := "CONSTRAINT VIOLATION: date 2022-01-01 is not in the allowed range [2021-01-01, 2021-12-31]"; err == nil || err.Error() != want {
		t.Errorf("%s failed: want %q, got %v", t.Name(), want, err)
	}

	hours := LiftConstraint(Time.Hour, RangeConstraint[uint8](9, 16))
	if _, err = NewTime("17:00", hours); err == nil {
		t.Errorf("%s failed: 17:00 accepted", t.Name())
	}
	if _, err = NewTime("16:59:59", hours); err != nil {
		t.Errorf("%s failed: %v", t.Name(), err)
	}
}

func TestUnionIntersection(t *testing.T) {
	weekend := WeekdayConstraint(Saturday, Sunday)
	q1 := LiftConstraint(Date.Month, RangeConstraint(January, March))

	either := Union(weekend, q1)
	both := Intersection(weekend, q1)

	for idx, tc := range []struct {
		in           string
		either, both bool
	}{
		{"2022-01-01", true, true},   // Saturday in Q1
		{"2022-01-03", true, false},  // Monday in Q1
		{"2022-07-02", true, false},  // Saturday in Q3
		{"2022-07-04", false, false}, // Monday in Q3
	} {
		d, _ := NewDate(tc.in)
		if got := either(d) == nil; got != tc.either {
			t.Errorf("%s[%d] failed: union of %s gave %t", t.Name(), idx, tc.in, got)
		}
		if got := both(d) == nil; got != tc.both {
			t.Errorf("%s[%d] failed: intersection of %s gave %t", t.Name(), idx, tc.in, got)
		}
	}

	if err := Union[Date]()(MinDate); err == nil {
		t.Errorf("%s failed: empty union satisfied", t.Name())
	}
	if err := Intersection[Date]()(MinDate); err != nil {
		t.Errorf("%s failed: empty intersection violated: %v", t.Name(), err)
	}
}

func TestWeekdayConstraint_invalid(t *testing.T) {
	none := WeekdayConstraint(Weekday(9))
	for d := MinDate; d.days < MinDate.days+7; d.days++ {
		if none(d) == nil {
			t.Errorf("%s failed: %s accepted", t.Name(), d)
		}
	}
}

var registerTestConstraints sync.Once

func TestNamedConstraints(t *testing.T) {
	registerTestConstraints.Do(func() {
		RegisterNamedConstraint("Test-Workdays", WeekdayConstraint(Monday, Tuesday, Wednesday, Thursday, Friday))
		noon, _ := TimeFromHMS(12, 0, 0)
		RegisterNamedConstraint("test-afternoon", TimeRangeConstraint(noon, maxTime))
	})

	group, err := NamedConstraints[Date]("test-workdays")
	if err != nil || len(group) != 1 {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	sat, _ := NewDate("2022-01-01")
	if group.Constrain(sat) == nil {
		t.Errorf("%s failed: Saturday accepted", t.Name())
	}

	if _, err = NamedConstraints[Time]("TEST-AFTERNOON"); err != nil {
		t.Errorf("%s failed: case-insensitive lookup: %v", t.Name(), err)
	}

	var ge generalErr
	if _, err = NamedConstraints[Date]("test-afternoon"); !errors.As(err, &ge) {
		t.Errorf("%s failed: type mismatch not reported, got %v", t.Name(), err)
	}
	if _, err = NamedConstraints[Date]("test-no-such-thing"); !errors.As(err, &ge) {
		t.Errorf("%s failed: unknown name not reported, got %v", t.Name(), err)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("%s failed: duplicate registration did not panic", t.Name())
		}
	}()
	RegisterNamedConstraint("TEST-WORKDAYS", WeekdayConstraint(Monday))
}
