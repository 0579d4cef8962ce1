package chronos

/*
evt.go contains EventType constants which are (only) used
for debugging when this package was built or run with the
"-tags chronos_debug" flag.
*/

/*
EventType describes a specific kind of [Tracer] event. see the
[EventType] constants for a full list and descriptions.

Note that this type and all of its constants are only meaningful
if/when this package was run or built with the "-tags chronos_debug"
flag. Otherwise, they can be ignored entirely.
*/
type EventType int

const (
	EventNone EventType = 0     // NO events
	EventAll  EventType = 65535 // ALL events (use with extreme caution)
)

const (
	EventEnter      EventType = 1 << iota //     1: Called-function begin
	EventInfo                             //     2: Interim function event
	EventExit                             //     4: Called function exit
	EventIO                               //     8: Called function inputs/outputs
	EventCascade                          //    16: Carry normalization between units
	EventSaturate                         //    32: Clamping at a range limit
	EventConstraint                       //    64: Constraint ops
	EventOffset                           //   128: UTC offset conversions
	EventCalendar                         //   256: Calendar view conversions
	EventText                             //   512: Text parsing and rendering
	_                                     //  1024: unassigned
	_                                     //  2048: unassigned
	_                                     //  4096: unassigned
	_                                     //  8192: unassigned
	_                                     // 16384: unassigned
	_                                     // 32768: unassigned
)
