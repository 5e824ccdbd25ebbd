package temporal

/*
evt.go contains EventType constants which are (only) used
for debugging when this package was built or run with the
"-tags temporal_debug" flag.
*/

/*
EventType describes a specific kind of [Tracer] event. see the
[EventType] constants for a full list and descriptions.

Note that this type and all of its constants are only meaningful
if/when this package was run or built with the "-tags temporal_debug"
flag. Otherwise, they can be ignored entirely.
*/
type EventType int

const (
	EventNone EventType = 0     // NO events
	EventAll  EventType = 65535 // ALL events (use with extreme caution)
)

const (
	EventEnter        EventType = 1 << iota //     1: Called-function begin
	EventInfo                               //     2: Interim function event
	EventExit                               //     4: Called function exit
	EventIO                                 //     8: Called function inputs/outputs
	EventPerf                               //    16: Timing/microbenchmarks
	EventBalance                            //    32: Duration balancing
	EventRound                              //    64: Rounding of durations and points in time
	EventDifference                         //   128: until/since computations
	EventCalendar                           //   256: Calendar protocol dispatch
	EventTimeZone                           //   512: TimeZone protocol dispatch
	EventDisambiguate                       //  1024: Offset and disambiguation resolution
	EventParse                              //  2048: ISO-8601 grammar
	EventConstraint                         //  4096: Constraint ops
	EventRegistry                           //  8192: Calendar and time zone registry
	EventTrace                              // 16384: Low-level ops; allocs, locks, et al.
	_                                       // 32768: unassigned
)

var eventNames = map[int]string{
	int(EventAll):          "all",
	int(EventNone):         "none",
	int(EventEnter):        "enter",
	int(EventInfo):         "info",
	int(EventExit):         "exit",
	int(EventIO):           "io",
	int(EventPerf):         "perf",
	int(EventBalance):      "balance",
	int(EventRound):        "round",
	int(EventDifference):   "difference",
	int(EventCalendar):     "calendar",
	int(EventTimeZone):     "timezone",
	int(EventDisambiguate): "disambiguate",
	int(EventParse):        "parse",
	int(EventConstraint):   "constraint",
	int(EventRegistry):     "registry",
	int(EventTrace):        "trace",
}

/*
String returns the name of a single-bit [EventType], or the empty
string for combinations.
*/
func (r EventType) String() string { return eventNames[int(r)] }
