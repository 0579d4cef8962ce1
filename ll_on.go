//go:build chronos_debug

package chronos

/*
eventMask holds the set of [EventType] bits a [DefaultTracer] reports.
Names resolve the lower-case spellings accepted by [EnvDebugVar].
*/
type eventMask struct {
	bits  *uint16
	names map[EventType]string
}

func newEventMask() eventMask {
	return eventMask{
		bits: new(uint16),
		names: map[EventType]string{
			EventAll:        "all",
			EventNone:       "none",
			EventEnter:      "enter",
			EventInfo:       "info",
			EventExit:       "exit",
			EventIO:         "io",
			EventCascade:    "cascade",
			EventSaturate:   "saturate",
			EventConstraint: "constraint",
			EventOffset:     "offset",
			EventCalendar:   "calendar",
			EventText:       "text",
		},
	}
}

/*
resolve converts x, which may be an [EventType], an int or a name,
into a bit value. False is returned for anything unrecognized.
*/
func (r eventMask) resolve(x any) (EventType, bool) {
	switch tv := x.(type) {
	case EventType:
		return tv, EventNone <= tv && tv <= EventAll
	case int:
		return r.resolve(EventType(tv))
	case string:
		for k, v := range r.names {
			if streqf(v, tv) {
				return k, true
			}
		}
	}
	return EventNone, false
}

func (r eventMask) enable(x ...any) {
	for _, xi := range x {
		if ev, ok := r.resolve(xi); ok && r.bits != nil {
			*r.bits |= uint16(ev)
		}
	}
}

func (r eventMask) disable(x ...any) {
	for _, xi := range x {
		if ev, ok := r.resolve(xi); ok && r.bits != nil {
			*r.bits &^= uint16(ev)
		}
	}
}

/*
has returns true if any bit of ev is enabled.
*/
func (r eventMask) has(ev EventType) bool {
	return r.bits != nil && *r.bits&uint16(ev) != 0
}

func (r eventMask) int() int {
	if r.bits == nil {
		return 0
	}
	return int(*r.bits)
}

/*
enabled returns the names of all enabled single-bit events.
*/
func (r eventMask) enabled() (names []string) {
	switch EventType(r.int()) {
	case EventNone:
		return []string{"none"}
	case EventAll:
		return []string{"all"}
	}

	for i := 0; i < 16; i++ {
		ev := EventType(1 << i)
		if name, ok := r.names[ev]; ok && r.has(ev) {
			names = append(names, name)
		}
	}
	return
}
