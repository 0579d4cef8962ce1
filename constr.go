package chronos

/*
constr.go contains constraint and constraint group components which
serve to narrow the values accepted by the NewX constructors of this
package.
*/

import (
	"reflect"
	"sync"

	"golang.org/x/exp/constraints"
)

/*
Constraint implements a generic closure function signature meant to enforce
the constraining of values.
*/
type Constraint[T any] func(T) error

/*
ConstraintGroup implements a wrapper of slices of [Constraint]. Slice instances
are added (and, thus, evaluated) in the order in which they are provided.
*/
type ConstraintGroup[T any] []Constraint[T]

/*
Constrain returns an error following the execution of all [Constraint] instances
against x which reside within the receiver instance.
*/
func (r ConstraintGroup[T]) Constrain(x T) (err error) {
	for i := 0; i < len(r) && err == nil; i++ {
		if r[i] != nil {
			err = r[i](x)
		}
	}

	if err != nil {
		debugConstraint(newLItem(err, "violation"))
	}

	return
}

/*
LiftConstraint adapts (or "converts") a [Constraint] for type U to type T.

	// Only accept dates falling in the first quarter.
	q1 := LiftConstraint(Date.Month, RangeConstraint(January, March))
*/
func LiftConstraint[T any, U any](convert func(T) U, c Constraint[U]) Constraint[T] {
	return func(x T) error {
		return c(convert(x))
	}
}

/*
PropertyConstraint returns a [Constraint] that applies a user-defined
check function. That function should return nil if the property is
satisfied or an error otherwise.
*/
func PropertyConstraint[T any](check func(T) error) Constraint[T] {
	return func(val T) error {
		if err := check(val); err != nil {
			return constraintViolationf(err)
		}
		return nil
	}
}

/*
RangeConstraint returns an instance of [Constraint] that checks if a value
of any ordered type is between the specified minimum and maximum.
*/
func RangeConstraint[T constraints.Ordered](min, max T) Constraint[T] {
	return func(val T) (err error) {
		if val < min || val > max {
			err = constraintViolationf("value is out of range")
		}
		return
	}
}

/*
Union returns an instance of [Constraint] which checks if at least one (1)
of the provided constraints is satisfied. Essentially, this is an "OR"ed
operation.
*/
func Union[T any](cs ...Constraint[T]) Constraint[T] {
	return func(x T) error {
		for _, c := range cs {
			if c(x) == nil {
				return nil
			}
		}
		return constraintViolationf("union failed all ", len(cs), " constraints")
	}
}

/*
Intersection returns an instance of [Constraint] which checks if all of the
specified constraints are satisfied. Essentially, this is an "AND"ed operation.
*/
func Intersection[T any](cs ...Constraint[T]) Constraint[T] {
	return func(x T) (err error) {
		for i := 0; i < len(cs) && err == nil; i++ {
			err = cs[i](x)
		}
		return
	}
}

/*
ordered is satisfied by the value types of this package which can be
placed upon a timeline.
*/
type ordered[T any] interface {
	Compare(T) int
	String() string
}

func compareRange[T ordered[T]](kind string, min, max T) Constraint[T] {
	return func(val T) error {
		if val.Compare(min) < 0 || val.Compare(max) > 0 {
			return constraintViolationf(kind, " ", val.String(),
				" is not in the allowed range [", min.String(), ", ", max.String(), "]")
		}
		return nil
	}
}

/*
DateRangeConstraint returns a [Constraint] rejecting any [Date] before
min or after max.
*/
func DateRangeConstraint(min, max Date) Constraint[Date] {
	return compareRange("date", min, max)
}

/*
TimeRangeConstraint returns a [Constraint] rejecting any [Time] before
min or after max.
*/
func TimeRangeConstraint(min, max Time) Constraint[Time] {
	return compareRange("time", min, max)
}

// DurationRangeConstraint returns a Constraint for Duration values to ensure that the given value
// is not less than min and not greater than max.
func DurationRangeConstraint(min, max Duration) Constraint[Duration] {
	return compareRange("duration", min, max)
}

// OffsetRangeConstraint rejects any UtcOffset lying west of min or east of max.
func OffsetRangeConstraint(min, max UtcOffset) Constraint[UtcOffset] {
	return compareRange("offset", min, max)
}

/*
InstantRangeConstraint returns a [Constraint] rejecting any
[OffsetDateTime] earlier than min or later than max. Offsets play no
part in the comparison.
*/
func InstantRangeConstraint(min, max OffsetDateTime) Constraint[OffsetDateTime] {
	return compareRange("instant", min, max)
}

/*
WeekdayConstraint returns a [Constraint] permitting only those dates
which fall upon one of the given weekdays.

	workdays := WeekdayConstraint(Monday, Tuesday, Wednesday, Thursday, Friday)
*/
func WeekdayConstraint(allowed ...Weekday) Constraint[Date] {
	var mask uint8
	for _, wd := range allowed {
		if wd.valid() {
			mask |= 1 << wd
		}
	}
	return func(d Date) error {
		if wd := d.Weekday(); mask&(1<<wd) == 0 {
			return constraintViolationf("date ", d.String(), " falls on a ",
				wd.String(), ", which is not permitted")
		}
		return nil
	}
}

/*
constraintEntry implements a private constraint registration type.
Instances of this type are used wherever constraints are referenced by
name, such as from a command line or a configuration file.
*/
type constraintEntry struct {
	typ reflect.Type
	fn  any
}

var (
	constraintMu  sync.RWMutex
	constraintReg = map[string]constraintEntry{}
)

/*
RegisterNamedConstraint assigns the provided [Constraint] function instance
to the package-level [Constraint] registry, after which it may be retrieved
through [NamedConstraints].

This function will panic if a [Constraint] is registered under a name already
present within the registry. Case is not significant in the name registration
or matching processes.
*/
func RegisterNamedConstraint[T any](name string, c Constraint[T]) {
	key := lc(name)
	constraintMu.Lock()
	defer constraintMu.Unlock()
	if _, dup := constraintReg[key]; dup {
		panic("chronos: duplicate constraint name " + name)
	}
	constraintReg[key] = constraintEntry{
		typ: reflect.TypeOf((*T)(nil)).Elem(),
		fn:  c,
	}
}

/*
NamedConstraints returns the registered [Constraint] instances bearing
the given names, in order, as a [ConstraintGroup]. An error is returned
if any name is unknown, or if it was registered for a type other than T.
*/
func NamedConstraints[T any](names ...string) (ConstraintGroup[T], error) {
	var out ConstraintGroup[T]
	want := reflect.TypeOf((*T)(nil)).Elem()

	constraintMu.RLock()
	defer constraintMu.RUnlock()
	for _, n := range names {
		e, ok := constraintReg[lc(n)]
		if !ok {
			return nil, generalErrorf("unknown constraint ", n)
		}
		if e.typ != want {
			return nil, generalErrorf("constraint ", n, " not applicable to ", want.String())
		}
		out = append(out, e.fn.(Constraint[T]))
	}
	return out, nil
}
