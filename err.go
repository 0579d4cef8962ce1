package chronos

/*
err.go contains error constructors and literals used frequently
throughout this package.
*/

import (
	"reflect"
	"sync"

	"golang.org/x/exp/constraints"
)

/*
ErrIndeterminateOffset is returned when the local UTC offset of the host
could not be determined, or when determining it was not permitted.
*/
var ErrIndeterminateOffset error = offsetErr{mkerr("the system's UTC offset could not be determined")}

/*
text errors
*/
var (
	errorEmptyText      = textErr{mkerr("zero length input")}
	errorTrailingText   = textErr{mkerr("unexpected trailing characters")}
	errorBadSeparator   = textErr{mkerr("unexpected separator")}
	errorBadDigits      = textErr{mkerr("expected decimal digits")}
	errorFractionLength = textErr{mkerr("fraction exceeds nine (9) digits")}
	errorBadDuration    = textErr{mkerr("malformed ISO 8601 duration")}
	errorDurationRange  = textErr{mkerr("duration exceeds the representable range")}
)

/*
ComponentRange is returned whenever a component (e.g.: a year, a day of
month or an offset hour) lies outside of its permitted range. Name holds
the lower-case component name, such as "day" or "hour".

ConditionalRange is true when the permitted range depends upon the values
of other components, as is the case with day-of-month, which depends on
the month and year.
*/
type ComponentRange struct {
	Name             string
	Minimum, Maximum int64
	Value            int64
	ConditionalRange bool
}

/*
Error returns the string representation of the receiver instance.
*/
func (r ComponentRange) Error() string {
	b := newStrBuilder()
	b.WriteString(`RANGE ERROR: `)
	b.WriteString(r.Name)
	b.WriteString(` must be in the range `)
	b.WriteString(fmtInt(r.Minimum, 10))
	b.WriteString(`..=`)
	b.WriteString(fmtInt(r.Maximum, 10))
	if r.ConditionalRange {
		b.WriteString(`, given values of other parameters`)
	}
	return b.String()
}

/*
Is returns a Boolean value indicative of target being a [ComponentRange]
describing the same component as the receiver instance. This permits use
of [errors.Is] with a bare instance bearing only a Name value.
*/
func (r ComponentRange) Is(target error) bool {
	switch tv := target.(type) {
	case ComponentRange:
		return tv.Name == r.Name
	case *ComponentRange:
		return tv != nil && tv.Name == r.Name
	}
	return false
}

/*
checkRange returns a [ComponentRange] error if value does not fall within
the inclusive range of min and max.
*/
func checkRange[T constraints.Integer](name string, value, min, max T, conditional bool) (err error) {
	if value < min || value > max {
		err = ComponentRange{
			Name:             name,
			Minimum:          int64(min),
			Maximum:          int64(max),
			Value:            int64(value),
			ConditionalRange: conditional,
		}
		debugInfo(newLItem(err, "range"))
	}
	return
}

/*
types which implement the error interface.
*/
type (
	constraintErr struct{ e error }
	offsetErr     struct{ e error }
	textErr       struct{ e error }
	generalErr    struct{ e error }
)

func constraintViolationf(m ...any) error { return constraintErr{mkerrf(m...)} }
func textErrorf(m ...any) error           { return textErr{mkerrf(m...)} }
func generalErrorf(m ...any) error        { return generalErr{mkerrf(m...)} }

func (r constraintErr) Error() string { return `CONSTRAINT VIOLATION: ` + r.e.Error() }
func (r offsetErr) Error() string     { return `OFFSET ERROR: ` + r.e.Error() }
func (r textErr) Error() string       { return `PARSE ERROR: ` + r.e.Error() }
func (r generalErr) Error() string    { return `GENERAL ERROR: ` + r.e.Error() }

func (r constraintErr) Unwrap() error { return r.e }
func (r textErr) Unwrap() error       { return r.e }

func errorBadTypeForConstructor(typ string, inputType any) (err error) {
	var inName string = "<nil>" // sensible default
	if inputType != nil {
		inName = reflect.TypeOf(inputType).String()
	}
	return generalErrorf("Invalid input type for ", typ, " constructor: ", inName)
}

// input is caller-supplied, so the message bypasses errCache.
func errorBadText(typ, input string, cause error) error {
	if te, ok := cause.(textErr); ok {
		cause = te.e
	}
	return textErr{mkerr(typ + ` "` + input + `": ` + cause.Error())}
}

var errCache sync.Map

func mkerrf(parts ...any) error {
	if len(parts) == 0 {
		return nil
	}

	if len(parts) == 1 {
		if s, ok := parts[0].(string); ok {
			if v, hit := errCache.Load(s); hit {
				return v.(error)
			}
		} else if parts[0] == nil {
			return nil
		}
	}

	b := newStrBuilder()
	for _, p := range parts {
		switch v := p.(type) {
		case error:
			b.WriteString(v.Error())
		case string:
			b.WriteString(v)
		case interface{ String() string }:
			b.WriteString(v.String())
		case int:
			b.WriteString(itoa(v))
		case int64:
			b.WriteString(fmtInt(v, 10))
		default:
			b.WriteString("<not supported>")
		}
	}
	msg := b.String()

	if v, hit := errCache.Load(msg); hit {
		return v.(error)
	}
	e := mkerr(msg)
	errCache.Store(msg, e)
	return e
}
