package temporal

/*
inst.go contains the Instant type: an exact point in time counted in
nanoseconds since the Unix epoch.
*/

import (
	"math/big"
	"time"
)

/*
Instant implements an exact point in time, free of any calendar or
time zone, as a signed count of nanoseconds since the Unix epoch
(1970-01-01T00:00:00Z).

Instants are limited to 10^8 days either side of the epoch. The zero
value is the epoch itself.
*/
type Instant struct {
	ns Integer
}

var (
	maxInstantNs = intOf(nsPerDay).MulInt64(100_000_000)
	minInstantNs = maxInstantNs.Neg()
)

func instantInRange(ns Integer) bool {
	return ns.Cmp(minInstantNs) >= 0 && ns.Cmp(maxInstantNs) <= 0
}

// instantOf returns ns as an Instant, or fails with ErrOutOfRange.
func instantOf(ns Integer) (Instant, error) {
	if !instantInRange(ns) {
		return Instant{}, errorInstantRange
	}
	return Instant{ns: ns}, nil
}

/*
NewInstant returns an instance of [Instant] alongside an error
following an attempt to marshal x.

Input may be an [Integer], *[big.Int], int64 or int count of epoch
nanoseconds, a [time.Time], another [Instant], or an ISO-8601 string
(or []byte) bearing a UTC offset, such as:

	2020-11-01T08:30:00.5Z
	2020-11-01T01:30-07:00[America/Los_Angeles]

Any [Constraint] values are applied to the result before returning.
*/
func NewInstant(x any, constraints ...Constraint[Instant]) (i Instant, err error) {
	switch tv := x.(type) {
	case Integer:
		i, err = instantOf(tv)
	case *big.Int:
		if tv == nil {
			err = fieldErrorf("nil epoch nanoseconds")
			break
		}
		i, err = instantOf(fromBig(new(big.Int).Set(tv)))
	case int64:
		i, err = instantOf(intOf(tv))
	case int:
		i, err = instantOf(intOf(int64(tv)))
	case string:
		i, err = ParseInstant(tv)
	case []byte:
		i, err = ParseInstant(string(tv))
	case time.Time:
		i, err = InstantFromTime(tv)
	case Instant:
		i = tv
	default:
		err = fieldErrorf("unsupported instant input type")
	}

	if len(constraints) > 0 && err == nil {
		var group ConstraintGroup[Instant] = constraints
		err = group.Constrain(i)
	}

	if err != nil {
		i = Instant{}
	}

	return
}

/*
InstantFromEpochSeconds returns the [Instant] n seconds from the epoch.
*/
func InstantFromEpochSeconds(n int64) (Instant, error) {
	return instantOf(intOf(n).MulInt64(nsPerSecond))
}

/*
InstantFromEpochMilliseconds returns the [Instant] n milliseconds from
the epoch.
*/
func InstantFromEpochMilliseconds(n int64) (Instant, error) {
	return instantOf(intOf(n).MulInt64(nsPerMilli))
}

/*
InstantFromEpochMicroseconds returns the [Instant] n microseconds from
the epoch.
*/
func InstantFromEpochMicroseconds(n int64) (Instant, error) {
	return instantOf(intOf(n).MulInt64(nsPerMicro))
}

/*
InstantFromEpochNanoseconds returns the [Instant] n nanoseconds from
the epoch.
*/
func InstantFromEpochNanoseconds(n Integer) (Instant, error) { return instantOf(n) }

/*
InstantFromTime returns the [Instant] corresponding to t.
*/
func InstantFromTime(t time.Time) (Instant, error) {
	return instantOf(intOf(t.Unix()).MulInt64(nsPerSecond).AddInt64(int64(t.Nanosecond())))
}

/*
EpochSeconds returns the whole seconds since the epoch, rounded
toward negative infinity.
*/
func (r Instant) EpochSeconds() int64 { return r.epochFloor(nsPerSecond) }

/*
EpochMilliseconds returns the whole milliseconds since the epoch,
rounded toward negative infinity.
*/
func (r Instant) EpochMilliseconds() int64 { return r.epochFloor(nsPerMilli) }

/*
EpochMicroseconds returns the whole microseconds since the epoch,
rounded toward negative infinity.
*/
func (r Instant) EpochMicroseconds() int64 { return r.epochFloor(nsPerMicro) }

/*
EpochNanoseconds returns the nanoseconds since the epoch.
*/
func (r Instant) EpochNanoseconds() Integer { return r.ns }

func (r Instant) epochFloor(unit int64) int64 {
	q, _ := r.ns.DivMod(intOf(unit))
	n, _ := q.Int64()
	return n
}

/*
Time returns the receiver instance as a [time.Time] in UTC.
*/
func (r Instant) Time() time.Time {
	sec, nsec := r.ns.DivMod(intOf(nsPerSecond))
	s, _ := sec.Int64()
	n, _ := nsec.Int64()
	return time.Unix(s, n).UTC()
}

/*
Compare returns -1, 0 or 1 if the receiver instance is earlier than,
equal to or later than x.
*/
func (r Instant) Compare(x Instant) int { return r.ns.Cmp(x.ns) }

/*
Equal returns a Boolean value indicative of the receiver instance and
x denoting the same point in time.
*/
func (r Instant) Equal(x Instant) bool { return r.ns.Eq(x.ns) }

/*
Add returns the receiver instance moved forward by d. Only hours and
finer units are allowed, since days and calendar units have no
exact length away from a time zone.
*/
func (r Instant) Add(d Duration) (Instant, error) { return r.addDuration(d) }

/*
Subtract returns the receiver instance moved backward by d. See
[Instant.Add].
*/
func (r Instant) Subtract(d Duration) (Instant, error) { return r.addDuration(d.Negated()) }

func (r Instant) addDuration(d Duration) (Instant, error) {
	if d.hasCalendarUnits() || d.days != 0 {
		return Instant{}, errorDisallowedUnit(d.largestUnit(), "Instant arithmetic")
	}
	return instantOf(r.ns.Add(d.timeNanos()))
}

/*
Until returns the [Duration] from the receiver instance to other.

Units are limited to [Hour] and finer; [WithLargestUnit] defaults to
the coarser of [Second] and the smallest unit. [WithSmallestUnit]
(default [Nanosecond]), [WithIncrement] and [WithRoundingMode]
(default [RoundNearest]) round the result.
*/
func (r Instant) Until(other Instant, opts ...Option) (Duration, error) {
	s, err := resolveDiffOptions(opts, Second, Nanosecond, Hour, "Instant difference")
	if err != nil {
		return Duration{}, err
	}
	return differenceInstant(r.ns, other.ns, s)
}

/*
Since returns the [Duration] from other to the receiver instance:
the negation of the receiver's [Instant.Until] other, rounded with
the mirrored rounding mode.
*/
func (r Instant) Since(other Instant, opts ...Option) (Duration, error) {
	s, err := resolveDiffOptions(opts, Second, Nanosecond, Hour, "Instant difference")
	if err != nil {
		return Duration{}, err
	}
	return since(func(s diffSettings) (Duration, error) {
		return differenceInstant(r.ns, other.ns, s)
	}, s)
}

/*
Round returns the receiver instance rounded to a multiple of the
increment of the smallest unit.

[WithSmallestUnit] is required and must be [Hour] or finer. The
increment must evenly divide one day. [WithRoundingMode] defaults to
[RoundNearest], with ties rounding toward the end of time.
*/
func (r Instant) Round(opts ...Option) (Instant, error) {
	o, err := newOptions(opts)
	if err != nil {
		return Instant{}, err
	}
	if o.smallest == Auto {
		return Instant{}, optionsErrorf("smallestUnit is required")
	}
	if o.smallest > Hour {
		return Instant{}, errorDisallowedUnit(o.smallest, "Instant.Round")
	}
	if err = validateIncrement(o.increment, perDay(o.smallest), true); err != nil {
		return Instant{}, err
	}
	return instantOf(roundInstant(r.ns, o.smallest, o.increment, o.roundingMode(RoundNearest)))
}

/*
ToZonedDateTime returns the receiver instance viewed in tz and cal.
A nil tz selects UTC; a nil cal selects the ISO-8601 calendar.
*/
func (r Instant) ToZonedDateTime(tz TimeZone, cal Calendar) ZonedDateTime {
	return ZonedDateTime{instant: r, tz: wrapTimeZone(tz), cal: wrapCalendar(cal)}
}

/*
String returns the ISO-8601 representation of the receiver instance
in UTC, such as "2020-11-01T08:30:00.5Z".
*/
func (r Instant) String() string {
	s, _ := r.Format(nil)
	return s
}

/*
Format returns the ISO-8601 representation of the receiver instance
with the wall-clock time and UTC offset of tz (UTC when nil).

[WithSmallestUnit] selects the precision ([Minute] through
[Nanosecond]; the default prints the shortest exact fraction) and
[WithRoundingMode] (default [RoundTrunc]) how digits are dropped.
A nil tz prints "Z" in place of the offset.
*/
func (r Instant) Format(tz TimeZone, opts ...Option) (string, error) {
	p, err := newPrecision(opts)
	if err != nil {
		return "", err
	}
	i := r
	if p.unit != Nanosecond {
		if i, err = instantOf(roundInstant(r.ns, p.unit, p.inc, p.mode)); err != nil {
			return "", err
		}
	}

	zone := wrapTimeZone(tz)
	off, err := zone.offset(i)
	if err != nil {
		return "", err
	}
	dt := localDateTime(i.ns.AddInt64(off), calendar{})
	suffix := "Z"
	if tz != nil {
		suffix = formatOffset(off)
	}
	out := formatDate(dt.date) + "T" + formatTime(dt.time, p) + suffix
	debugIO(i, out)
	return out, nil
}
