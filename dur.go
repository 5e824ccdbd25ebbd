package temporal

/*
dur.go contains the Duration type, its construction and validity
rules and its component-wise algebra.
*/

import (
	"math"
	"time"

	"golang.org/x/exp/constraints"
)

/*
Duration implements an immutable, signed span of time made up of ten
integer components: years, months, weeks, days, hours, minutes,
seconds, milliseconds, microseconds and nanoseconds.

Every non-zero component shares a single sign, which is the sign of
the Duration as a whole. The zero value is the blank Duration.
*/
type Duration struct {
	years        int64
	months       int64
	weeks        int64
	days         int64
	hours        int64
	minutes      int64
	seconds      int64
	milliseconds int64
	microseconds int64
	nanoseconds  int64
}

/*
DurationLike is a partial set of [Duration] components keyed by
[Unit]. It is accepted by [Duration.With] and [NewDuration].
*/
type DurationLike map[Unit]int64

/*
MakeDuration returns an instance of [Duration] built from up to ten
numeric components, ordered from years to nanoseconds. Missing
trailing components are zero.

Fractional components are truncated toward zero. Non-finite values,
and values beyond the int64 range, fail with [ErrOutOfRange]. Non-zero
components that disagree in sign fail with [ErrMixedSign].
*/
func MakeDuration[T constraints.Integer | constraints.Float](components ...T) (Duration, error) {
	if len(components) > 10 {
		return Duration{}, errorTooManyFields
	}

	var c [10]int64
	for i, v := range components {
		n, err := truncComponent(v)
		if err != nil {
			return Duration{}, err
		}
		c[i] = n
	}

	return durationFromComponents(c)
}

func truncComponent[T constraints.Integer | constraints.Float](v T) (n int64, err error) {
	switch x := any(v).(type) {
	case float32:
		n, err = truncFloat(float64(x))
	case float64:
		n, err = truncFloat(x)
	case uint:
		n, err = truncUint(uint64(x))
	case uint64:
		n, err = truncUint(x)
	case uintptr:
		n, err = truncUint(uint64(x))
	default:
		n = int64(v)
	}
	if err == nil && n == math.MinInt64 {
		err = errorFieldOverflow
	}
	return
}

func truncFloat(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errorNonFinite
	}
	f = math.Trunc(f)
	if f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0, errorFieldOverflow
	}
	return int64(f), nil
}

func truncUint(u uint64) (int64, error) {
	if u > math.MaxInt64 {
		return 0, errorFieldOverflow
	}
	return int64(u), nil
}

/*
NewDuration returns an instance of [Duration] alongside an error
following an attempt to marshal x.

Input may be an ISO-8601 duration string (or []byte), such as:

	P1Y2M3DT4H5M6.007008009S

... a [time.Duration], which is decomposed into hours and finer units,
a [DurationLike] instance, or another [Duration].

Any [Constraint] values are applied to the result before returning.
*/
func NewDuration(x any, constraints ...Constraint[Duration]) (d Duration, err error) {
	switch tv := x.(type) {
	case string:
		d, err = ParseDuration(tv)
	case []byte:
		d, err = ParseDuration(string(tv))
	case time.Duration:
		d = durationFromTime(tv)
	case DurationLike:
		d, err = Duration{}.With(tv)
	case Duration:
		d = tv
	default:
		err = fieldErrorf("unsupported duration input type")
	}

	if len(constraints) > 0 && err == nil {
		var group ConstraintGroup[Duration] = constraints
		err = group.Constrain(d)
	}

	if err != nil {
		d = Duration{}
	}

	return
}

// durationFromTime decomposes td into hours and smaller units.
func durationFromTime(td time.Duration) Duration {
	n := int64(td)
	var c [10]int64
	c[9] = n % 1000
	n /= 1000
	c[8] = n % 1000
	n /= 1000
	c[7] = n % 1000
	n /= 1000
	c[6] = n % 60
	n /= 60
	c[5] = n % 60
	c[4] = n / 60
	return durationOf(c)
}

func durationOf(c [10]int64) Duration {
	return Duration{
		years: c[0], months: c[1], weeks: c[2], days: c[3],
		hours: c[4], minutes: c[5], seconds: c[6],
		milliseconds: c[7], microseconds: c[8], nanoseconds: c[9],
	}
}

// durationFromComponents validates the shared-sign invariant.
func durationFromComponents(c [10]int64) (Duration, error) {
	sign := 0
	for _, v := range c {
		if v == math.MinInt64 {
			return Duration{}, errorFieldOverflow
		}
		s := signOf(v)
		if s == 0 {
			continue
		}
		if sign == 0 {
			sign = s
		} else if s != sign {
			return Duration{}, errorMixedSign
		}
	}
	return durationOf(c), nil
}

func (r Duration) components() [10]int64 {
	return [10]int64{
		r.years, r.months, r.weeks, r.days,
		r.hours, r.minutes, r.seconds,
		r.milliseconds, r.microseconds, r.nanoseconds,
	}
}

// unitIndex maps a non-auto Unit to its position in components.
func unitIndex(u Unit) int { return int(Year - u) }

/*
Years returns the years component of the receiver instance.
*/
func (r Duration) Years() int64 { return r.years }

/*
Months returns the months component of the receiver instance.
*/
func (r Duration) Months() int64 { return r.months }

/*
Weeks returns the weeks component of the receiver instance.
*/
func (r Duration) Weeks() int64 { return r.weeks }

/*
Days returns the days component of the receiver instance.
*/
func (r Duration) Days() int64 { return r.days }

/*
Hours returns the hours component of the receiver instance.
*/
func (r Duration) Hours() int64 { return r.hours }

/*
Minutes returns the minutes component of the receiver instance.
*/
func (r Duration) Minutes() int64 { return r.minutes }

/*
Seconds returns the seconds component of the receiver instance.
*/
func (r Duration) Seconds() int64 { return r.seconds }

/*
Milliseconds returns the milliseconds component of the receiver instance.
*/
func (r Duration) Milliseconds() int64 { return r.milliseconds }

/*
Microseconds returns the microseconds component of the receiver instance.
*/
func (r Duration) Microseconds() int64 { return r.microseconds }

/*
Nanoseconds returns the nanoseconds component of the receiver instance.
*/
func (r Duration) Nanoseconds() int64 { return r.nanoseconds }

/*
Get returns the component of the receiver instance named by u, or
zero if u is [Auto] or invalid.
*/
func (r Duration) Get(u Unit) int64 {
	if u < Nanosecond || u > Year {
		return 0
	}
	return r.components()[unitIndex(u)]
}

/*
Sign returns -1, 0 or 1 in accordance with the common sign of the
non-zero components of the receiver instance.
*/
func (r Duration) Sign() int {
	for _, v := range r.components() {
		if v != 0 {
			return signOf(v)
		}
	}
	return 0
}

/*
Blank returns a Boolean value indicative of every component of the
receiver instance being zero.
*/
func (r Duration) Blank() bool { return r.Sign() == 0 }

/*
Equal returns a Boolean value indicative of component-wise equality
between the receiver instance and x. No balancing is performed, so
PT60M and PT1H are not equal.
*/
func (r Duration) Equal(x Duration) bool { return r == x }

/*
Fields returns the non-zero components of the receiver instance.
*/
func (r Duration) Fields() DurationLike {
	f := DurationLike{}
	for u := Nanosecond; u <= Year; u++ {
		if v := r.Get(u); v != 0 {
			f[u] = v
		}
	}
	return f
}

/*
With returns a new [Duration] in which the components named in d
replace those of the receiver instance. The result is revalidated.
*/
func (r Duration) With(d DurationLike) (Duration, error) {
	if len(d) == 0 {
		return Duration{}, fieldErrorf("at least one duration component is required")
	}
	c := r.components()
	for u, v := range d {
		if u < Nanosecond || u > Year {
			return Duration{}, errorDisallowedUnit(u, "Duration.With")
		}
		c[unitIndex(u)] = v
	}
	return durationFromComponents(c)
}

/*
Negated returns a new [Duration] with every component negated.
*/
func (r Duration) Negated() Duration {
	c := r.components()
	for i := range c {
		c[i] = -c[i]
	}
	return durationOf(c)
}

/*
Abs returns a new [Duration] with the absolute value of every
component.
*/
func (r Duration) Abs() Duration {
	if r.Sign() < 0 {
		return r.Negated()
	}
	return r
}

// largestUnit returns the coarsest non-zero unit, or Nanosecond.
func (r Duration) largestUnit() Unit {
	for u := Year; u > Nanosecond; u-- {
		if r.Get(u) != 0 {
			return u
		}
	}
	return Nanosecond
}

func (r Duration) hasCalendarUnits() bool {
	return r.years != 0 || r.months != 0 || r.weeks != 0
}

// timeNanos returns the hours through nanoseconds as nanoseconds.
func (r Duration) timeNanos() Integer {
	return intOf(r.hours).MulInt64(nsPerHour).
		Add(intOf(r.minutes).MulInt64(nsPerMinute)).
		Add(intOf(r.seconds).MulInt64(nsPerSecond)).
		Add(intOf(r.milliseconds).MulInt64(nsPerMilli)).
		Add(intOf(r.microseconds).MulInt64(nsPerMicro)).
		AddInt64(r.nanoseconds)
}

// dayTimeNanos returns days through nanoseconds as nanoseconds,
// assuming 24-hour days.
func (r Duration) dayTimeNanos() Integer {
	return intOf(r.days).MulInt64(nsPerDay).Add(r.timeNanos())
}

// dateOnly returns the years through days components.
func (r Duration) dateOnly() Duration {
	return Duration{years: r.years, months: r.months, weeks: r.weeks, days: r.days}
}

// timeOnly returns the hours through nanoseconds components.
func (r Duration) timeOnly() Duration {
	r.years, r.months, r.weeks, r.days = 0, 0, 0, 0
	return r
}

// foldTimeIntoDays moves whole 24-hour days out of the time fields
// and discards the remainder.
func (r Duration) foldTimeIntoDays() Duration {
	if r.timeOnly().Blank() {
		return r
	}
	q, _ := r.timeNanos().QuoRem(intOf(nsPerDay))
	days, _ := q.Int64()
	out := r.dateOnly()
	out.days += days
	return out
}

// withTime replaces the hours through nanoseconds components.
func (r Duration) withTime(t Duration) Duration {
	r.hours, r.minutes, r.seconds = t.hours, t.minutes, t.seconds
	r.milliseconds, r.microseconds, r.nanoseconds = t.milliseconds, t.microseconds, t.nanoseconds
	return r
}

/*
Add returns the sum of the receiver instance and other.

Without [WithRelativeTo], components are combined one by one. Under
[OverflowConstrain] (the default) a result whose sub-day components
disagree in sign is rebalanced up to the largest sub-day unit present;
under [OverflowBalance] the days through nanoseconds are always
balanced up to days. Years, months and weeks cannot be reconciled
against the other components without an anchor, so a disagreement in
sign there fails with [ErrMixedSign].

With [WithRelativeTo], both operands are applied in turn to the
anchor and the result is the difference between the anchor and the
end point, using no unit coarser than the largest unit of either
operand.
*/
func (r Duration) Add(other Duration, opts ...Option) (Duration, error) {
	return r.addDuration(1, other, opts...)
}

/*
Subtract returns the receiver instance less other. See [Duration.Add].
*/
func (r Duration) Subtract(other Duration, opts ...Option) (Duration, error) {
	return r.addDuration(-1, other, opts...)
}

func (r Duration) addDuration(sign int64, other Duration, opts ...Option) (Duration, error) {
	o, err := newOptions(opts)
	if err != nil {
		return Duration{}, err
	}
	if sign < 0 {
		other = other.Negated()
	}
	overflow := o.overflowOr(OverflowConstrain)
	if overflow == OverflowReject {
		return Duration{}, errorBadOverflow
	}
	if o.relativeTo != nil {
		if rel := o.relativeTo.anchor(); rel.zoned != nil {
			return addDurationZoned(r, other, *rel.zoned)
		}
		return addDurationRelative(r, other, o.relativeTo.anchor())
	}
	return addDurationFields(r, other, overflow)
}

func addDurationFields(a, b Duration, overflow Overflow) (Duration, error) {
	ca, cb := a.components(), b.components()
	var c [10]int64
	for i := range c {
		s := ca[i] + cb[i]
		if (s^ca[i])&(s^cb[i]) < 0 {
			return Duration{}, errorFieldOverflow
		}
		c[i] = s
	}
	sum := durationOf(c)

	if overflow == OverflowConstrain {
		if out, err := durationFromComponents(c); err == nil {
			return out, nil
		}
	}

	// rebalance the sub-day part, then reconcile with the calendar part
	largest := Day
	if overflow == OverflowConstrain {
		largest = larger(a.timeLargestUnit(), b.timeLargestUnit())
	}
	bal, err := balanceNanos(sum.dayTimeNanos(), largest)
	if err != nil {
		return Duration{}, err
	}
	out := sum.dateOnly().withTime(bal)
	out.days = bal.days
	debugBalance("add", a, b, overflow, out)
	return durationFromComponents(out.components())
}

// timeLargestUnit returns the coarsest non-zero unit among days
// through nanoseconds, or Nanosecond.
func (r Duration) timeLargestUnit() Unit {
	for u := Day; u > Nanosecond; u-- {
		if r.Get(u) != 0 {
			return u
		}
	}
	return Nanosecond
}

// addDurationZoned adds a then b to z and returns the difference
// from z, with days following the wall clock.
func addDurationZoned(a, b Duration, z ZonedDateTime) (Duration, error) {
	mid, err := z.addDuration(a, OverflowConstrain)
	if err != nil {
		return Duration{}, err
	}
	end, err := z.withInstant(mid).addDuration(b, OverflowConstrain)
	if err != nil {
		return Duration{}, err
	}
	largest := larger(a.largestUnit(), b.largestUnit())
	return z.Until(z.withInstant(end), WithLargestUnit(largest))
}

func addDurationRelative(a, b Duration, rel anchor) (Duration, error) {
	largest := larger(a.largestUnit(), b.largestUnit())
	mid, err := rel.cal.dateAdd(rel.date, a.dateOnly(), OverflowConstrain)
	if err != nil {
		return Duration{}, err
	}
	end, err := rel.cal.dateAdd(mid, b.dateOnly(), OverflowConstrain)
	if err != nil {
		return Duration{}, err
	}
	date, err := rel.cal.dateUntil(rel.date, end, larger(Day, largest))
	if err != nil {
		return Duration{}, err
	}

	timeLargest := largest
	if timeLargest.IsCalendar() {
		timeLargest = Day
	}
	t, err := balanceNanos(intOf(date.days).MulInt64(nsPerDay).
		Add(a.timeNanos()).Add(b.timeNanos()), timeLargest)
	if err != nil {
		return Duration{}, err
	}
	out := date.withTime(t)
	out.days = t.days
	return durationFromComponents(out.components())
}

/*
CompareDurations returns -1, 0 or 1 if a is shorter than, equal to or
longer than b.

Years, months and weeks have no fixed length, so comparing durations
that contain them requires [WithRelativeTo]; without it such a
comparison fails with [ErrRelativeToRequired]. Days are otherwise
taken to be 24 hours, unless [WithRelativeTo] supplies a
[ZonedDateTime]: then both durations are added to it and the
resulting instants compared.
*/
func CompareDurations(a, b Duration, opts ...Option) (int, error) {
	o, err := newOptions(opts)
	if err != nil {
		return 0, err
	}

	if a == b {
		return 0, nil
	}

	if o.relativeTo != nil {
		if rel := o.relativeTo.anchor(); rel.zoned != nil && (!a.dateOnly().Blank() || !b.dateOnly().Blank()) {
			return compareZoned(a, b, *rel.zoned)
		}
	}

	da, db := a.days, b.days
	if a.hasCalendarUnits() || b.hasCalendarUnits() {
		if o.relativeTo == nil {
			return 0, relativeErrorf("comparing durations with years, months or weeks")
		}
		rel := o.relativeTo.anchor()
		if da, err = rel.daysIn(a); err != nil {
			return 0, err
		}
		if db, err = rel.daysIn(b); err != nil {
			return 0, err
		}
	}

	na := intOf(da).MulInt64(nsPerDay).Add(a.timeNanos())
	nb := intOf(db).MulInt64(nsPerDay).Add(b.timeNanos())
	return na.Cmp(nb), nil
}

// compareZoned compares a and b by the instants they reach from z.
func compareZoned(a, b Duration, z ZonedDateTime) (int, error) {
	ia, err := z.addDuration(a, OverflowConstrain)
	if err != nil {
		return 0, err
	}
	ib, err := z.addDuration(b, OverflowConstrain)
	if err != nil {
		return 0, err
	}
	return ia.Compare(ib), nil
}

/*
AsTimeDuration returns the receiver instance as a [time.Duration],
taking days to be 24 hours. Durations with years, months or weeks
fail with [ErrRelativeToRequired]; those beyond the range of
[time.Duration] fail with [ErrOutOfRange].
*/
func (r Duration) AsTimeDuration() (time.Duration, error) {
	if r.hasCalendarUnits() {
		return 0, relativeErrorf("converting years, months or weeks to a fixed length")
	}
	n, err := r.dayTimeNanos().mustInt64()
	return time.Duration(n), err
}

/*
String returns the ISO-8601 representation of the receiver instance.
Milliseconds, microseconds and nanoseconds are folded into a
fractional seconds part; the blank Duration is "PT0S".
*/
func (r Duration) String() string { return formatDuration(r) }
