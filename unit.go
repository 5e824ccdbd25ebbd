package temporal

/*
unit.go contains the Unit type and the fixed conversion factors used
by the balancing and rounding components.
*/

/*
Unit describes a duration or rounding granularity. Units are ordered
from finest ([Nanosecond]) to coarsest ([Year]); [Auto] requests the
default of whichever operation reads it.
*/
type Unit int

const (
	Auto Unit = iota
	Nanosecond
	Microsecond
	Millisecond
	Second
	Minute
	Hour
	Day
	Week
	Month
	Year
)

var unitNames = map[Unit][2]string{
	Auto:        {"auto", "auto"},
	Nanosecond:  {"nanosecond", "nanoseconds"},
	Microsecond: {"microsecond", "microseconds"},
	Millisecond: {"millisecond", "milliseconds"},
	Second:      {"second", "seconds"},
	Minute:      {"minute", "minutes"},
	Hour:        {"hour", "hours"},
	Day:         {"day", "days"},
	Week:        {"week", "weeks"},
	Month:       {"month", "months"},
	Year:        {"year", "years"},
}

/*
String returns the plural name of the receiver, e.g. "minutes".
*/
func (r Unit) String() string {
	if n, ok := unitNames[r]; ok {
		return n[1]
	}
	return "<invalid unit " + itoa(int(r)) + ">"
}

/*
ParseUnit returns the [Unit] named by s. Both singular and plural
forms are accepted, case-insensitively.
*/
func ParseUnit(s string) (Unit, error) {
	for u, n := range unitNames {
		if streqf(s, n[0]) || streqf(s, n[1]) {
			return u, nil
		}
	}
	return Auto, optionsErrorf("invalid unit '", s, "'")
}

func (r Unit) valid() bool { return Auto <= r && r <= Year }

/*
IsCalendar returns true for the variable-length units whose length
depends on a calendar anchor: [Year], [Month] and [Week].
*/
func (r Unit) IsCalendar() bool { return r >= Week }

// larger returns the coarser of a and b.
func larger(a, b Unit) Unit {
	if a > b {
		return a
	}
	return b
}

const (
	nsPerMicro  int64 = 1_000
	nsPerMilli  int64 = 1_000_000
	nsPerSecond int64 = 1_000_000_000
	nsPerMinute int64 = 60 * nsPerSecond
	nsPerHour   int64 = 60 * nsPerMinute
	nsPerDay    int64 = 24 * nsPerHour
)

// nanosPer returns the fixed length of u in nanoseconds; days are
// taken to be 24 hours. Calendar units have no fixed length.
func nanosPer(u Unit) int64 {
	switch u {
	case Nanosecond:
		return 1
	case Microsecond:
		return nsPerMicro
	case Millisecond:
		return nsPerMilli
	case Second:
		return nsPerSecond
	case Minute:
		return nsPerMinute
	case Hour:
		return nsPerHour
	case Day:
		return nsPerDay
	}
	return 0
}

// ceilingOf returns the number of u in the next larger unit, i.e. the
// bound that rounding increments must divide. Units without a fixed
// ceiling return 0.
func ceilingOf(u Unit) int64 {
	switch u {
	case Nanosecond, Microsecond, Millisecond:
		return 1000
	case Second, Minute:
		return 60
	case Hour:
		return 24
	}
	return 0
}

// perDay returns the number of u in a 24-hour day.
func perDay(u Unit) int64 {
	if n := nanosPer(u); n > 0 {
		return nsPerDay / n
	}
	return 0
}
