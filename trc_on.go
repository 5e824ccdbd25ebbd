//go:build temporal_debug

package temporal

import (
	"context"
	"io"
	"log/slog"
	"os"
	"reflect"
	"runtime"
	"sync"
	"time"
)

/*
EnvDebugVar defines the environment variable name which can
be leveraged to invoke or disable use of the [DefaultTracer]
[Tracer] qualifier. Its value is a comma-separated list of
[EventType] names or integers; a negative integer enables all
events.

Use sparingly in high-volume/performance-sensitive scenarios.
*/
const EnvDebugVar = "TEMPORAL_DEBUG"

const coreTracerMask = EventEnter | EventInfo | EventExit

/*
DefaultTracer is the package-level [Tracer] implementation.
*/
type DefaultTracer struct {
	mu sync.Mutex
	w  io.Writer
	ll loglevels
}

/*
NewDefaultTracer returns an instance of *[DefaultTracer]. The
input [io.Writer] value represents the writer interface type
to which debug data shall be written.
*/
func NewDefaultTracer(writer io.Writer) *DefaultTracer {
	return &DefaultTracer{
		w:  writer,
		ll: newLoglevels(),
	}
}

/*
EnableLevel adds [EventType] ev to the collection of loglevels
to be used during debugging.
*/
func (r *DefaultTracer) EnableLevel(ev EventType) { r.ll.Shift(int(ev)) }

/*
DisableLevel removes [EventType] ev from the collection of loglevels
to be used during debugging.
*/
func (r *DefaultTracer) DisableLevel(ev EventType) { r.ll.Unshift(int(ev)) }

/*
Trace writes [TraceRecord] rec to the [io.Writer] handled by the
receiver instance. This method need not be executed by the end
user directly.
*/
func (r *DefaultTracer) Trace(rec TraceRecord) {
	if !r.ll.Positive(int(rec.Type)) {
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

func (r *DefaultTracer) write(head string, args []any, tail string) {
	b := newStrBuilder()
	b.WriteString(head)
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmtArg(a))
	}
	b.WriteString(tail)
	_, _ = io.WriteString(r.w, b.String())
}

/*
Enabled returns a Boolean value indicative of the specified
[EventType] being enabled within the receiver instance.
*/
func (r *DefaultTracer) Enabled(e EventType) bool { return r.ll.Positive(int(e)) }

/*
SlogTracer adapts a *[slog.Logger] as a [Tracer]. Every record is
logged at [slog.LevelDebug] with the event name as the message.
*/
type SlogTracer struct {
	l  *slog.Logger
	ll loglevels
}

/*
NewSlogTracer returns an instance of *[SlogTracer] writing to l
with the given [EventType] values enabled. A nil l selects
[slog.Default].
*/
func NewSlogTracer(l *slog.Logger, events ...EventType) *SlogTracer {
	if l == nil {
		l = slog.Default()
	}
	t := &SlogTracer{l: l, ll: newLoglevels()}
	for _, ev := range events {
		t.ll.Shift(int(ev))
	}
	return t
}

/*
Trace logs [TraceRecord] rec.
*/
func (r *SlogTracer) Trace(rec TraceRecord) {
	if !r.ll.Positive(int(rec.Type)) {
		return
	}
	attrs := []slog.Attr{slog.String("func", trimFuncName(rec.Func))}
	if len(rec.Args) > 0 {
		attrs = append(attrs, slog.Any("args", fmtArgs(rec.Args)))
	}
	if len(rec.Ret) > 0 {
		attrs = append(attrs, slog.Any("ret", fmtArgs(rec.Ret)))
	}
	r.l.LogAttrs(context.Background(), slog.LevelDebug, rec.Type.String(), attrs...)
}

/*
Enabled returns a Boolean value indicative of the specified
[EventType] being enabled within the receiver instance.
*/
func (r *SlogTracer) Enabled(e EventType) bool { return r.ll.Positive(int(e)) }

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
	Ret  []any     // On Exit: return values (last entry may be error)
}

/*
Tracer implements an interface tracer type, which is implemented
by [DefaultTracer] and [SlogTracer].
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
	tracer = discardTracer{}
}

var (
	tmu    sync.RWMutex
	tracer Tracer = discardTracer{}
)

type discardTracer struct{}

func (discardTracer) Trace(_ TraceRecord)      {}
func (discardTracer) Enabled(_ EventType) bool { return false }

func debugEvent(level EventType, args ...any) {
	tmu.RLock()
	t := tracer
	tmu.RUnlock()

	withIO := true
	if lt, ok := t.(levelTracer); ok {
		if !(lt.Enabled(level) || lt.Enabled(EventAll)) {
			return
		}
		withIO = lt.Enabled(EventIO)
	}

	rec := TraceRecord{
		Time: time.Now(),
		Type: level,
		Func: callerName(),
	}
	if withIO {
		if len(args) == 0 {
			args = []any{"no values"}
		}
		if level == EventExit {
			rec.Ret = args
		} else {
			rec.Args = args
		}
	}
	t.Trace(rec)
}

// callerName returns the first frame outside of the debug hooks.
func callerName() string {
	pcs := make([]uintptr, 10)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	for {
		fr, more := frames.Next()
		name := replaceAll(trimFuncName(fr.Function), "go-temporal.", "")
		if !hasPfx(name, "debug") {
			if i := lidx(name, ".func"); i > 0 {
				name = name[:i]
			}
			return name
		}
		if !more {
			break
		}
	}
	return "unknown"
}

func debugPath(args ...any) func(rets ...any) {
	debugEvent(EventEnter, args...)
	return func(rets ...any) {
		debugEvent(EventExit, rets...)
	}
}

func debugEnter(args ...any)        { debugEvent(EventEnter, args...) }
func debugExit(args ...any)         { debugEvent(EventExit, args...) }
func debugInfo(args ...any)         { debugEvent(EventInfo, args...) }
func debugIO(args ...any)           { debugEvent(EventIO, args...) }
func debugPerf(args ...any)         { debugEvent(EventPerf, args...) }
func debugBalance(args ...any)      { debugEvent(EventBalance, args...) }
func debugRound(args ...any)        { debugEvent(EventRound, args...) }
func debugDifference(args ...any)   { debugEvent(EventDifference, args...) }
func debugTimeZone(args ...any)     { debugEvent(EventTimeZone, args...) }
func debugDisambiguate(args ...any) { debugEvent(EventDisambiguate, args...) }
func debugParse(args ...any)        { debugEvent(EventParse, args...) }
func debugConstraint(args ...any)   { debugEvent(EventConstraint, args...) }
func debugRegistry(args ...any)     { debugEvent(EventRegistry, args...) }
func debugTrace(args ...any)        { debugEvent(EventTrace, args...) }

func fmtArgs(args []any) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = fmtArg(a)
	}
	return out
}

func fmtArg(x any) (s string) {
	switch v := x.(type) {
	case nil:
		s = "<nil>"
	case string:
		s = v
	case int:
		s = itoa(v)
	case int64:
		s = fmtInt(v, 10)
	case bool:
		s = bool2str(v)
	case error:
		s = "error:" + v.Error()
	case Fields:
		s = fmtFieldsArg(v)
	case options:
		s = "options{" + v.String() + "}"
	case interface{ String() string }:
		s = v.String()
	default:
		s = "<unidentified " + reflect.TypeOf(v).String() + ">"
	}

	return
}

func fmtFieldsArg(f Fields) string {
	var parts []string
	for k := FieldYear; k <= FieldNanosecond; k++ {
		if v, ok := f[k]; ok {
			parts = append(parts, k.String()+":"+itoa(v))
		}
	}
	return "{" + join(parts, ",") + "}"
}

func init() {
	c, err := LoadConfig()
	if err != nil || len(c.Debug) == 0 {
		return
	}

	var vars []any
	for _, name := range c.Debug {
		vars = append(vars, name)
	}

	dt := NewDefaultTracer(os.Stderr)
	dt.ll.Shift(vars...)
	EnableDebug(dt)
	debugInfo("loglevels: " + join(dt.ll.enabled(), `,`))
}
