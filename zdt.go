package temporal

/*
zdt.go contains the ZonedDateTime type: an Instant viewed through a
time zone and calendar.
*/

import "time"

/*
ZonedDateTime implements an exact [Instant] together with the
[TimeZone] and [Calendar] through which it is read. Civil fields are
derived from the zone's offset whenever they are requested, so they
can never disagree with the instant.

Calendar arithmetic (years, months, weeks and days) follows the wall
clock; hours and finer units are exact.
*/
type ZonedDateTime struct {
	instant Instant
	tz      timeZone
	cal     calendar
}

/*
NewZonedDateTime returns i viewed in tz and cal. Nil tz and cal select
UTC and the ISO-8601 calendar.
*/
func NewZonedDateTime(i Instant, tz TimeZone, cal Calendar) ZonedDateTime {
	return i.ToZonedDateTime(tz, cal)
}

/*
ZonedDateTimeFromTime returns t as a [ZonedDateTime] in the ISO-8601
calendar. The zone is looked up by the name of t's location, with
[time.Local] standing for [SystemTimeZone].
*/
func ZonedDateTimeFromTime(t time.Time) (ZonedDateTime, error) {
	i, err := InstantFromTime(t)
	if err != nil {
		return ZonedDateTime{}, err
	}

	var tz TimeZone
	switch loc := t.Location(); loc {
	case time.Local:
		tz = SystemTimeZone()
	case time.UTC:
		tz = UTC()
	default:
		if tz, err = LookupTimeZone(loc.String()); err != nil {
			return ZonedDateTime{}, err
		}
	}
	return NewZonedDateTime(i, tz, nil), nil
}

/*
ZonedDateTimeFromFields returns the [ZonedDateTime] at which the wall
clock of tz reads the fields of f, resolved with [WithDisambiguation]
(default [DisambiguateCompatible]).
*/
func ZonedDateTimeFromFields(f Fields, tz TimeZone, cal Calendar, opts ...Option) (ZonedDateTime, error) {
	o, err := newOptions(opts)
	if err != nil {
		return ZonedDateTime{}, err
	}
	dt, err := DateTimeFromFields(f, cal, o.overflowOr(OverflowConstrain))
	if err != nil {
		return ZonedDateTime{}, err
	}
	return dt.ToZonedDateTime(tz, o.disamb)
}

// wall returns the civil reading of the receiver. An offset of one
// day or more is reported as zero.
func (r ZonedDateTime) wall() DateTime {
	dt, err := r.tz.dateTimeFor(r.instant, r.cal)
	if err != nil {
		return localDateTime(r.instant.ns, r.cal)
	}
	return dt
}

func (r ZonedDateTime) Instant() Instant   { return r.instant }
func (r ZonedDateTime) TimeZone() TimeZone { return r.tz.impl() }
func (r ZonedDateTime) Calendar() Calendar { return r.cal.impl() }

func (r ZonedDateTime) Year() int         { return r.wall().Year() }
func (r ZonedDateTime) Month() int        { return r.wall().Month() }
func (r ZonedDateTime) Day() int          { return r.wall().Day() }
func (r ZonedDateTime) Hour() int         { return r.wall().Hour() }
func (r ZonedDateTime) Minute() int       { return r.wall().Minute() }
func (r ZonedDateTime) Second() int       { return r.wall().Second() }
func (r ZonedDateTime) Millisecond() int  { return r.wall().Millisecond() }
func (r ZonedDateTime) Microsecond() int  { return r.wall().Microsecond() }
func (r ZonedDateTime) Nanosecond() int   { return r.wall().Nanosecond() }
func (r ZonedDateTime) DayOfWeek() int    { return r.wall().DayOfWeek() }
func (r ZonedDateTime) DayOfYear() int    { return r.wall().DayOfYear() }
func (r ZonedDateTime) WeekOfYear() int   { return r.wall().WeekOfYear() }
func (r ZonedDateTime) DaysInMonth() int  { return r.wall().DaysInMonth() }
func (r ZonedDateTime) DaysInYear() int   { return r.wall().DaysInYear() }
func (r ZonedDateTime) MonthsInYear() int { return r.wall().MonthsInYear() }
func (r ZonedDateTime) InLeapYear() bool  { return r.wall().InLeapYear() }

/*
OffsetNanoseconds returns the UTC offset in effect at the receiver
instance.
*/
func (r ZonedDateTime) OffsetNanoseconds() int64 {
	off, _ := r.tz.offset(r.instant)
	return off
}

/*
Offset returns the UTC offset in effect at the receiver instance,
such as "-04:00".
*/
func (r ZonedDateTime) Offset() string { return formatOffset(r.OffsetNanoseconds()) }

/*
Fields returns the wall-clock fields of the receiver instance.
*/
func (r ZonedDateTime) Fields() Fields { return r.wall().Fields() }

/*
StartOfDay returns the first instant of the receiver's calendar day,
which is not midnight in zones that skip it.
*/
func (r ZonedDateTime) StartOfDay() (ZonedDateTime, error) {
	w := r.wall()
	i, err := r.tz.instantFor(DateTime{date: w.date, cal: r.cal}, DisambiguateCompatible)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return r.withInstant(i), nil
}

/*
HoursInDay returns the length of the receiver's calendar day in
hours, e.g. 23 or 25 across a daylight saving transition.
*/
func (r ZonedDateTime) HoursInDay() (float64, error) {
	n, err := r.dayLength(r.wall().date, 1)
	if err != nil {
		return 0, err
	}
	return float64(n.native) / float64(nsPerHour), nil
}

// dayLength returns the signed length of the day that starts (sign
// 1) or ends (sign -1) at the start of date.
func (r ZonedDateTime) dayLength(date ISODate, sign int64) (Integer, error) {
	from, err := r.tz.instantFor(DateTime{date: date, cal: r.cal}, DisambiguateCompatible)
	if err != nil {
		return Integer{}, err
	}
	to, err := r.tz.instantFor(DateTime{date: ISODateFromEpochDays(date.EpochDays() + sign), cal: r.cal}, DisambiguateCompatible)
	if err != nil {
		return Integer{}, err
	}
	return to.ns.Sub(from.ns), nil
}

// spanOfDay returns the signed length of the wall-clock day that
// starts (sign 1) or ends (sign -1) at the receiver.
func (r ZonedDateTime) spanOfDay(sign int64) (Integer, error) {
	end, err := r.addDuration(Duration{days: sign}, OverflowConstrain)
	if err != nil {
		return Integer{}, err
	}
	return end.ns.Sub(r.instant.ns), nil
}

func (r ZonedDateTime) withInstant(i Instant) ZonedDateTime {
	r.instant = i
	return r
}

/*
With returns a new [ZonedDateTime] in which the fields present in f
replace the wall-clock fields of the receiver instance. The current
offset is kept when still valid ([WithOffset] default
[OffsetPrefer]); otherwise [WithDisambiguation] applies.
*/
func (r ZonedDateTime) With(f Fields, opts ...Option) (ZonedDateTime, error) {
	o, err := newOptions(opts)
	if err != nil {
		return ZonedDateTime{}, err
	}
	dt, err := r.wall().With(f, o.overflowOr(OverflowConstrain))
	if err != nil {
		return ZonedDateTime{}, err
	}
	i, err := r.tz.resolveOffset(dt, offsetOption, r.OffsetNanoseconds(), o.disamb, o.offsetOr(OffsetPrefer))
	if err != nil {
		return ZonedDateTime{}, err
	}
	return r.withInstant(i), nil
}

/*
WithTimeZone returns the same instant viewed in tz.
*/
func (r ZonedDateTime) WithTimeZone(tz TimeZone) ZonedDateTime {
	r.tz = wrapTimeZone(tz)
	return r
}

/*
WithCalendar returns the same instant viewed in cal.
*/
func (r ZonedDateTime) WithCalendar(cal Calendar) ZonedDateTime {
	r.cal = wrapCalendar(cal)
	return r
}

/*
Compare returns -1, 0 or 1 if the receiver instance is earlier than,
equal to or later than x, as exact instants.
*/
func (r ZonedDateTime) Compare(x ZonedDateTime) int { return r.instant.Compare(x.instant) }

/*
Equal returns a Boolean value indicative of the receiver instance and
x sharing their instant, time zone and calendar.
*/
func (r ZonedDateTime) Equal(x ZonedDateTime) bool {
	return r.instant.Equal(x.instant) && r.tz.same(x.tz) && r.cal.same(x.cal)
}

/*
Add returns the receiver instance moved by d. Years, months, weeks
and days move the wall clock through the calendar, under [WithOverflow]
(default [OverflowConstrain]), and the result is resolved with
[DisambiguateCompatible]. Hours and finer units are then added as
exact time.
*/
func (r ZonedDateTime) Add(d Duration, opts ...Option) (ZonedDateTime, error) {
	o, err := newOptions(opts)
	if err != nil {
		return ZonedDateTime{}, err
	}
	i, err := r.addDuration(d, o.overflowOr(OverflowConstrain))
	if err != nil {
		return ZonedDateTime{}, err
	}
	return r.withInstant(i), nil
}

/*
Subtract returns the receiver instance moved back by d. See
[ZonedDateTime.Add].
*/
func (r ZonedDateTime) Subtract(d Duration, opts ...Option) (ZonedDateTime, error) {
	return r.Add(d.Negated(), opts...)
}

func (r ZonedDateTime) addDuration(d Duration, o Overflow) (Instant, error) {
	i := r.instant
	if date := d.dateOnly(); !date.Blank() {
		w := r.wall()
		iso, err := r.cal.dateAdd(w.date, date, o)
		if err != nil {
			return Instant{}, err
		}
		moved, err := dateTimeOf(iso, w.time, r.cal)
		if err != nil {
			return Instant{}, err
		}
		if i, err = r.tz.instantFor(moved, DisambiguateCompatible); err != nil {
			return Instant{}, err
		}
	}
	return instantOf(i.ns.Add(d.timeNanos()))
}

/*
Until returns the [Duration] from the receiver instance to other.

[WithLargestUnit] defaults to the coarser of [Hour] and the smallest
unit. Below [Day] the difference is exact time. From [Day] upward
both values must share a time zone (else [ErrZoneMismatch]) and a
calendar (else [ErrCalendarMismatch]), and days follow the wall
clock, so a day across a transition may be 23 or 25 hours long.
[WithSmallestUnit] (default [Nanosecond]), [WithIncrement] and
[WithRoundingMode] (default [RoundNearest]) round the result.
*/
func (r ZonedDateTime) Until(other ZonedDateTime, opts ...Option) (Duration, error) {
	s, err := r.diffSettings(other, opts)
	if err != nil {
		return Duration{}, err
	}
	return r.until(other, s)
}

/*
Since returns the [Duration] from other to the receiver instance.
See [ZonedDateTime.Until].
*/
func (r ZonedDateTime) Since(other ZonedDateTime, opts ...Option) (Duration, error) {
	s, err := r.diffSettings(other, opts)
	if err != nil {
		return Duration{}, err
	}
	return since(func(s diffSettings) (Duration, error) { return r.until(other, s) }, s)
}

func (r ZonedDateTime) diffSettings(other ZonedDateTime, opts []Option) (s diffSettings, err error) {
	if s, err = resolveDiffOptions(opts, Hour, Nanosecond, Year, "ZonedDateTime difference"); err != nil {
		return
	}
	if s.largest >= Day {
		if !r.tz.same(other.tz) {
			return s, zoneErrorf("cannot compute days across time zones ", r.tz.id(), " and ", other.tz.id())
		}
		err = r.cal.mustMatch(other.cal)
	}
	return
}

func (r ZonedDateTime) until(other ZonedDateTime, s diffSettings) (Duration, error) {
	if s.largest < Day {
		return differenceInstant(r.instant.ns, other.instant.ns, s)
	}

	diff, err := r.differenceZoned(other, s.largest)
	if err != nil || !s.rounds() || diff.Sign() == 0 {
		return diff, err
	}
	rel := r.anchor()
	if s.smallest < Day {
		return r.roundZonedTime(diff, s, &rel)
	}

	// the zoned anchor rounds against the length of the following day
	if diff, err = roundDuration(diff, s.inc, s.smallest, s.mode, &rel); err != nil {
		return Duration{}, err
	}
	if diff, err = balanceTime(diff, s.largest); err != nil {
		return Duration{}, err
	}
	return balanceRelative(diff, s.largest, &rel)
}

// differenceZoned returns the unrounded difference to other: years,
// months and weeks on the wall clock, then whole zone days, then
// exact time balanced up to hours.
func (r ZonedDateTime) differenceZoned(other ZonedDateTime, largest Unit) (Duration, error) {
	if r.instant.Equal(other.instant) {
		return Duration{}, nil
	}

	a, b := r.wall(), other.wall()
	var (
		ymw Duration
		mid Instant
	)
	// a wall time repeated by a transition can put mid past other;
	// pull the end date in by a day and measure again
	for end, retry := b.date, 1; ; retry-- {
		date, err := differenceDateTime(a.date, a.time.ns, end, b.time.ns, r.cal, largest)
		if err != nil {
			return Duration{}, err
		}
		ymw = Duration{years: date.years, months: date.months, weeks: date.weeks}
		if mid, err = r.addDuration(ymw, OverflowConstrain); err != nil {
			return Duration{}, err
		}
		sign := int64(ymw.Sign())
		if sign == 0 || retry == 0 || int64(other.instant.ns.Sub(mid.ns).Sign())*sign >= 0 {
			break
		}
		end = ISODateFromEpochDays(end.EpochDays() - sign)
	}

	days, rem, err := r.nanosToDays(ymw, mid, other.instant.ns)
	if err != nil {
		return Duration{}, err
	}
	t, err := balanceNanos(rem, Hour)
	if err != nil {
		return Duration{}, err
	}
	ymw.days = days
	out := ymw.withTime(t)
	debugDifference("zoned", r, other, largest, out)
	return durationFromComponents(out.components())
}

// nanosToDays counts the whole wall days between mid, the receiver
// moved by ymw, and end. Each day is stepped from the receiver's own
// wall clock, as Add does. The remainder is shorter than the
// following day.
func (r ZonedDateTime) nanosToDays(ymw Duration, mid Instant, end Integer) (days int64, rem Integer, err error) {
	sign := int64(end.Sub(mid.ns).Sign())
	if sign == 0 {
		return 0, rem, nil
	}
	start, err := r.tz.dateTimeFor(mid, r.cal)
	if err != nil {
		return 0, Integer{}, err
	}
	endWall, err := r.tz.dateTimeFor(Instant{ns: end}, r.cal)
	if err != nil {
		return 0, Integer{}, err
	}

	at := func(n int64) (Integer, error) {
		d := ymw
		d.days = n
		i, err := r.addDuration(d, OverflowConstrain)
		return i.ns, err
	}

	cur := mid.ns
	days = endWall.date.EpochDays() - start.date.EpochDays()
	if days != 0 {
		if cur, err = at(days); err != nil {
			return 0, Integer{}, err
		}
	}
	// back off an overshoot
	for days != 0 && int64(cur.Cmp(end))*sign > 0 {
		days -= sign
		if days == 0 {
			cur = mid.ns
			break
		}
		if cur, err = at(days); err != nil {
			return 0, Integer{}, err
		}
	}
	// take every whole day that still fits
	for {
		next, err := at(days + sign)
		if err != nil {
			return 0, Integer{}, err
		}
		if int64(end.Sub(next).Sign())*sign < 0 {
			break
		}
		days += sign
		cur = next
	}
	return days, end.Sub(cur), nil
}

// roundZonedTime rounds the time part of diff and carries into the
// days when it reaches the length of the day that follows.
func (r ZonedDateTime) roundZonedTime(diff Duration, s diffSettings, rel *anchor) (Duration, error) {
	ns := roundToIncrement(diff.timeNanos(), nanosPer(s.smallest), s.inc, s.mode, false)

	mid, err := r.addDuration(diff.dateOnly(), OverflowConstrain)
	if err != nil {
		return Duration{}, err
	}
	sign := int64(diff.Sign())
	if sign == 0 {
		sign = int64(ns.Sign())
	}
	if sign != 0 {
		dayLen, err := r.withInstant(mid).spanOfDay(sign)
		if err != nil {
			return Duration{}, err
		}
		if int64(ns.Sub(dayLen).Sign())*sign >= 0 {
			diff.days += sign
			ns = roundToIncrement(ns.Sub(dayLen), nanosPer(s.smallest), s.inc, s.mode, false)
		}
	}

	t, err := balanceNanos(ns, Hour)
	if err != nil {
		return Duration{}, err
	}
	out := diff.withTime(t)
	if out, err = balanceRelative(out, s.largest, rel); err != nil {
		return Duration{}, err
	}
	return durationFromComponents(out.components())
}

/*
Round returns the receiver instance rounded on the wall clock to a
multiple of the increment of the smallest unit, which is required and
must be [Day] or finer. Rounding to [Day] uses the actual length of
the day in the zone. The offset is kept when still valid.
*/
func (r ZonedDateTime) Round(opts ...Option) (ZonedDateTime, error) {
	o, err := newOptions(opts)
	if err != nil {
		return ZonedDateTime{}, err
	}
	switch {
	case o.smallest == Auto:
		return ZonedDateTime{}, optionsErrorf("smallestUnit is required")
	case o.smallest > Day:
		return ZonedDateTime{}, errorDisallowedUnit(o.smallest, "ZonedDateTime.Round")
	case o.smallest == Day:
		err = validateIncrement(o.increment, 1, true)
	default:
		err = validateIncrement(o.increment, ceilingOf(o.smallest), false)
	}
	if err != nil {
		return ZonedDateTime{}, err
	}
	mode := o.roundingMode(RoundNearest)

	if o.smallest == Day {
		start, err := r.StartOfDay()
		if err != nil {
			return ZonedDateTime{}, err
		}
		dayLen, err := r.dayLength(start.wall().date, 1)
		if err != nil {
			return ZonedDateTime{}, err
		}
		n := roundQuotient(r.instant.ns.Sub(start.instant.ns), dayLen, mode, true)
		return r.withInstant(Instant{ns: start.instant.ns.Add(n.Mul(dayLen))}), nil
	}

	w := r.wall()
	ns := roundInstant(w.epochNs(), o.smallest, o.increment, mode)
	if !dateTimeInRange(ns) {
		return ZonedDateTime{}, errorDateTimeRange
	}
	i, err := r.tz.resolveOffset(localDateTime(ns, r.cal), offsetOption, r.OffsetNanoseconds(), DisambiguateCompatible, OffsetPrefer)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return r.withInstant(i), nil
}

func (r ZonedDateTime) ToInstant() Instant              { return r.instant }
func (r ZonedDateTime) ToDateTime() DateTime            { return r.wall() }
func (r ZonedDateTime) ToDate() Date                    { return r.wall().Date() }
func (r ZonedDateTime) ToTimeOfDay() TimeOfDay          { return r.wall().time }
func (r ZonedDateTime) Time() time.Time                 { return r.instant.Time() }
func (r ZonedDateTime) ToYearMonth() (YearMonth, error) { return r.wall().ToYearMonth() }
func (r ZonedDateTime) ToMonthDay() (MonthDay, error)   { return r.wall().ToMonthDay() }

/*
String returns the ISO-8601 representation of the receiver instance,
with its offset, zone annotation and, for calendars other than
ISO-8601, a "[c=...]" annotation; e.g.
"2020-11-01T01:30:00-07:00[America/Los_Angeles]".
*/
func (r ZonedDateTime) String() string {
	w := r.wall()
	return formatDate(w.date) + "T" + formatTime(w.time, autoPrecision) +
		r.Offset() + "[" + r.tz.id() + "]" + formatCalendar(r.cal)
}

func (r ZonedDateTime) anchor() anchor {
	a := r.wall().anchor()
	a.zoned = &r
	return a
}
