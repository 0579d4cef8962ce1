//go:build chronos_debug

package chronos

import (
	"io"
	"os"
	"reflect"
	"runtime"
	"sync"
	"time"
)

/*
EnvDebugVar defines the environment variable name which can
be leveraged to invoke or disable use of the [DefaultTracer]
[Tracer] qualifier. Its value is a comma-delimited list of
event names (e.g.: "cascade,saturate") or integer bit values.

Use sparingly in high-volume/performance-sensitive scenarios.
*/
const EnvDebugVar = "CHRONOS_DEBUG"

const coreTracerMask = EventEnter | EventInfo | EventExit

/*
DefaultTracer is the package-level [Tracer] implementation.
*/
type DefaultTracer struct {
	mu   sync.Mutex
	w    io.Writer
	mask eventMask
}

/*
NewDefaultTracer returns an instance of *[DefaultTracer]. The
input [io.Writer] value represents the writer interface type
to which debug data shall be written.
*/
func NewDefaultTracer(writer io.Writer) *DefaultTracer {
	return &DefaultTracer{
		w:    writer,
		mask: newEventMask(),
	}
}

/*
EnableLevel adds [EventType] ev to the collection of events
to be reported during debugging.
*/
func (r *DefaultTracer) EnableLevel(ev EventType) { r.mask.enable(ev) }

/*
DisableLevel removes [EventType] ev from the collection of events
to be reported during debugging.
*/
func (r *DefaultTracer) DisableLevel(ev EventType) { r.mask.disable(ev) }

/*
Enabled returns a Boolean value indicative of the specified
[EventType] being enabled within the receiver instance.
*/
func (r *DefaultTracer) Enabled(ev EventType) bool { return r.mask.has(ev) }

/*
Trace writes [TraceRecord] rec to the [io.Writer] handled by the
receiver instance. This method need not be executed by the end
user directly.
*/
func (r *DefaultTracer) Trace(rec TraceRecord) {
	if !r.mask.has(rec.Type) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ts := rec.Time.Format("15:04:05.000")
	fn := trimFuncName(rec.Func)

	switch rec.Type & coreTracerMask {
	case EventEnter:
		r.write(ts+" → "+fn+"(", rec.Args, ")\n")
	case EventExit:
		r.write(ts+" ← "+fn+" => ", rec.Ret, "\n")
	default:
		r.write(ts+"     • "+fn+": ", rec.Args, "\n")
	}
}

func (r *DefaultTracer) write(head string, vals []any, tail string) {
	b := newStrBuilder()
	b.WriteString(head)
	for i, a := range vals {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmtArg(a))
	}
	b.WriteString(tail)
	io.WriteString(r.w, b.String())
}

func trimFuncName(full string) string {
	if i := lidx(full, "/"); i >= 0 {
		return full[i+1:]
	}
	return full
}

/*
TraceRecord encapsulates metadata pertaining to a particular event
observed by a [Tracer]. This includes a [time.Time] timestamp, an
[EventType] as well as in/out arguments.
*/
type TraceRecord struct {
	Time time.Time // timestamp, i.e.: time.Now()
	Type EventType // Enter, Info, Exit or a domain event
	Func string    // FuncName -or- TypeName.MethodName
	Args []any     // On Enter: parameters
	Ret  []any     // On Exit: return values
}

/*
Tracer implements an interface tracer type, which is implemented
by [DefaultTracer].
*/
type Tracer interface {
	Trace(TraceRecord)
}

type levelTracer interface {
	Tracer
	Enabled(EventType) bool
}

/*
EnableDebug registers and activates [Tracer] for debugging.

This function need not be called if an environment variable of
[EnvDebugVar] was read and successfully parsed at runtime.
*/
func EnableDebug(t Tracer) {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = t
}

/*
DisableDebug disables [Tracer] debugging.
*/
func DisableDebug() {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = &discardTracer{}
}

var (
	tmu    sync.RWMutex
	tracer Tracer = &discardTracer{} // default
)

type discardTracer struct{}

func (*discardTracer) Trace(_ TraceRecord)      {}
func (*discardTracer) Enabled(_ EventType) bool { return false }

func debugEvent(level EventType, args ...any) {
	tmu.RLock()
	t := tracer
	tmu.RUnlock()

	lt, ok := t.(levelTracer)
	if ok && !(lt.Enabled(level) || lt.Enabled(EventAll)) {
		return
	}

	fn := "unknown"
	if pc, _, _, found := runtime.Caller(2); found {
		fn = runtime.FuncForPC(pc).Name()
	}
	fn = replaceAll(fn, "go-chronos.", "")
	if cntns(fn, ".func") {
		fn = fn[:lidx(fn, ".func")]
	}

	rec := TraceRecord{
		Time: time.Now(),
		Type: level,
		Func: fn,
	}
	if level == EventExit {
		rec.Ret = args
	} else {
		rec.Args = args
	}
	t.Trace(rec)
}

func debugPath(args ...any) func(rets ...any) {
	debugEvent(EventEnter, args...)
	return func(rets ...any) {
		debugEvent(EventExit, rets...)
	}
}

func debugEnter(args ...any)      { debugEvent(EventEnter, args...) }
func debugExit(args ...any)       { debugEvent(EventExit, args...) }
func debugInfo(args ...any)       { debugEvent(EventInfo, args...) }
func debugIO(args ...any)         { debugEvent(EventIO, args...) }
func debugCascade(args ...any)    { debugEvent(EventCascade, args...) }
func debugSaturate(args ...any)   { debugEvent(EventSaturate, args...) }
func debugConstraint(args ...any) { debugEvent(EventConstraint, args...) }
func debugOffset(args ...any)     { debugEvent(EventOffset, args...) }
func debugCalendar(args ...any)   { debugEvent(EventCalendar, args...) }
func debugText(args ...any)       { debugEvent(EventText, args...) }

// strictly for debugging.
type labeledItem struct {
	L string
	V any
}

func newLItem(value any, labels ...any) (li labeledItem) {
	li = labeledItem{V: value}
	var l []string
	for i := 0; i < len(labels); i++ {
		if s, ok := labels[i].(string); ok {
			l = append(l, s)
		}
	}
	li.L = join(l, ` `)
	return
}

func (r labeledItem) String() string {
	l := "<No label>"
	if r.L != "" {
		l = r.L
	}
	return l + ":" + fmtArg(r.V)
}

func fmtArg(x any) (s string) {
	switch v := x.(type) {
	case nil:
		s = "<nil>"
	case string:
		s = v
	case bool:
		s = bool2str(v)
	case error:
		s = "error:" + v.Error()
	case interface{ String() string }:
		s = v.String()
	case int, int8, int16, int32, int64:
		s = fmtInt(reflect.ValueOf(v).Int(), 10)
	case uint, uint8, uint16, uint32, uint64:
		s = fmtUint(reflect.ValueOf(v).Uint(), 10)
	default:
		s = reflect.TypeOf(v).String()
	}
	return
}

func init() {
	if evar := os.Getenv(EnvDebugVar); evar != "" {
		mask := newEventMask()
		for _, part := range split(evar, ",") {
			part = lc(trimS(part))
			if n, err := atoi(part); err == nil {
				if n < 0 {
					n = int(EventAll)
				}
				mask.enable(n)
			} else {
				mask.enable(part)
			}
		}

		dt := NewDefaultTracer(os.Stderr)
		dt.mask = mask
		EnableDebug(dt)
		debugInfo(newLItem(join(mask.enabled(), `,`), "events"))
	}
}
