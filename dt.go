package temporal

/*
dt.go contains the DateTime type: a calendar date and wall-clock time
with no time zone.
*/

import "time"

/*
DateTime implements a civil date and wall-clock time in a [Calendar].
It carries no time zone: the same DateTime denotes different instants
in different zones.

DateTimes are limited to within one day of the [Instant] range, so
that every DateTime has a reading in some zone.
*/
type DateTime struct {
	date ISODate
	time TimeOfDay
	cal  calendar
}

var (
	maxDateTimeNs = maxInstantNs.AddInt64(nsPerDay)
	minDateTimeNs = minInstantNs.AddInt64(-nsPerDay)
)

func dateTimeInRange(ns Integer) bool {
	return ns.Cmp(minDateTimeNs) > 0 && ns.Cmp(maxDateTimeNs) < 0
}

func dateTimeOf(date ISODate, t TimeOfDay, cal calendar) (DateTime, error) {
	dt := DateTime{date: date, time: t, cal: cal}
	if !date.inRange() || !dateTimeInRange(dt.epochNs()) {
		return DateTime{}, errorDateTimeRange
	}
	return dt, nil
}

// localDateTime splits nanoseconds since 1970-01-01T00:00 into a
// DateTime. The caller ensures ns is within range.
func localDateTime(ns Integer, cal calendar) DateTime {
	days, rem := ns.DivMod(intOf(nsPerDay))
	n, _ := days.Int64()
	return DateTime{date: ISODateFromEpochDays(n), time: TimeOfDay{ns: rem.native}, cal: cal}
}

// epochNs returns the receiver read as if it were UTC.
func (r DateTime) epochNs() Integer {
	return intOf(r.date.EpochDays()).MulInt64(nsPerDay).AddInt64(r.time.ns)
}

// addNanos moves the wall clock by ns.
func (r DateTime) addNanos(ns int64) (DateTime, error) {
	local := r.epochNs().AddInt64(ns)
	if !dateTimeInRange(local) {
		return DateTime{}, errorDateTimeRange
	}
	return localDateTime(local, r.cal), nil
}

/*
NewDateTime returns an instance of [DateTime] alongside an error
following an attempt to marshal x.

Input may be an ISO-8601 string (or []byte) such as
"2020-02-01T14:23:30.5[c=iso8601]", a [time.Time] (whose wall clock
in its own location is used), or another [DateTime].

Any [Constraint] values are applied to the result before returning.
*/
func NewDateTime(x any, constraints ...Constraint[DateTime]) (dt DateTime, err error) {
	switch tv := x.(type) {
	case string:
		dt, err = ParseDateTime(tv)
	case []byte:
		dt, err = ParseDateTime(string(tv))
	case time.Time:
		var d Date
		if d, err = NewDate(tv); err == nil {
			t, _ := NewTimeOfDay(tv)
			dt, err = d.ToDateTime(t)
		}
	case DateTime:
		dt = tv
	default:
		err = fieldErrorf("unsupported date-time input type")
	}

	if len(constraints) > 0 && err == nil {
		var group ConstraintGroup[DateTime] = constraints
		err = group.Constrain(dt)
	}

	if err != nil {
		dt = DateTime{}
	}

	return
}

/*
MakeDateTime returns the [DateTime] with the given ISO-8601 fields,
presented in cal (ISO-8601 when nil). Out-of-range fields fail with
[ErrOutOfRange].
*/
func MakeDateTime(isoYear, isoMonth, isoDay, hour, minute, second, milli, micro, nano int, cal Calendar) (DateTime, error) {
	d, err := MakeDate(isoYear, isoMonth, isoDay, cal)
	if err != nil {
		return DateTime{}, err
	}
	t, err := MakeTimeOfDay(hour, minute, second, milli, micro, nano, OverflowReject)
	if err != nil {
		return DateTime{}, err
	}
	return d.ToDateTime(t)
}

/*
DateTimeFromFields returns the [DateTime] that cal (ISO-8601 when nil)
resolves from f. Year, month and day are required; absent time fields
are zero.
*/
func DateTimeFromFields(f Fields, cal Calendar, o Overflow) (DateTime, error) {
	d, err := DateFromFields(f, cal, o)
	if err != nil {
		return DateTime{}, err
	}
	t, err := TimeOfDayFromFields(f, o)
	if err != nil {
		return DateTime{}, err
	}
	return d.ToDateTime(t)
}

/*
Calendar returns the [Calendar] of the receiver instance.
*/
func (r DateTime) Calendar() Calendar { return r.cal.impl() }

/*
Date returns the date part of the receiver instance.
*/
func (r DateTime) Date() Date { return Date{iso: r.date, cal: r.cal} }

/*
TimeOfDay returns the wall-clock part of the receiver instance.
*/
func (r DateTime) TimeOfDay() TimeOfDay { return r.time }

func (r DateTime) Year() int         { return r.cal.year(r.date) }
func (r DateTime) Month() int        { return r.cal.month(r.date) }
func (r DateTime) Day() int          { return r.cal.day(r.date) }
func (r DateTime) Hour() int         { return r.time.Hour() }
func (r DateTime) Minute() int       { return r.time.Minute() }
func (r DateTime) Second() int       { return r.time.Second() }
func (r DateTime) Millisecond() int  { return r.time.Millisecond() }
func (r DateTime) Microsecond() int  { return r.time.Microsecond() }
func (r DateTime) Nanosecond() int   { return r.time.Nanosecond() }
func (r DateTime) DayOfWeek() int    { return r.cal.dayOfWeek(r.date) }
func (r DateTime) DayOfYear() int    { return r.cal.dayOfYear(r.date) }
func (r DateTime) WeekOfYear() int   { return r.cal.weekOfYear(r.date) }
func (r DateTime) DaysInMonth() int  { return r.cal.daysInMonth(r.date) }
func (r DateTime) DaysInYear() int   { return r.cal.daysInYear(r.date) }
func (r DateTime) MonthsInYear() int { return r.cal.monthsInYear(r.date) }
func (r DateTime) InLeapYear() bool  { return r.cal.inLeapYear(r.date) }

/*
Fields returns the calendar and wall-clock fields of the receiver
instance.
*/
func (r DateTime) Fields() Fields { return mergeFields(r.Date().Fields(), r.time.Fields()) }

/*
With returns a new [DateTime] in which the fields present in f replace
those of the receiver instance.
*/
func (r DateTime) With(f Fields, o Overflow) (DateTime, error) {
	return DateTimeFromFields(mergeFields(r.Fields(), f), r.cal, o)
}

/*
WithTime returns the receiver date at wall-clock time t.
*/
func (r DateTime) WithTime(t TimeOfDay) (DateTime, error) { return dateTimeOf(r.date, t, r.cal) }

/*
WithCalendar returns the same date and time presented in cal.
*/
func (r DateTime) WithCalendar(cal Calendar) DateTime {
	r.cal = wrapCalendar(cal)
	return r
}

/*
Compare returns -1, 0 or 1 if the receiver instance is earlier than,
equal to or later than x, disregarding calendars.
*/
func (r DateTime) Compare(x DateTime) int {
	if c := r.date.Compare(x.date); c != 0 {
		return c
	}
	return r.time.Compare(x.time)
}

/*
Equal returns a Boolean value indicative of the receiver instance and
x having the same fields and calendar.
*/
func (r DateTime) Equal(x DateTime) bool {
	return r.date == x.date && r.time == x.time && r.cal.same(x.cal)
}

/*
Add returns the receiver instance moved by d. The time part of d is
added first, carrying whole days into the date part, which is then
added through the calendar under [WithOverflow] (default
[OverflowConstrain]).
*/
func (r DateTime) Add(d Duration, opts ...Option) (DateTime, error) {
	o, err := newOptions(opts)
	if err != nil {
		return DateTime{}, err
	}
	days, rem := d.timeNanos().AddInt64(r.time.ns).DivMod(intOf(nsPerDay))
	carry, err := days.mustInt64()
	if err != nil {
		return DateTime{}, errorDateTimeRange
	}
	date := d.dateOnly()
	date.days += carry
	iso, err := r.cal.dateAdd(r.date, date, o.overflowOr(OverflowConstrain))
	if err != nil {
		return DateTime{}, err
	}
	return dateTimeOf(iso, TimeOfDay{ns: rem.native}, r.cal)
}

/*
Subtract returns the receiver instance moved back by d. See
[DateTime.Add].
*/
func (r DateTime) Subtract(d Duration, opts ...Option) (DateTime, error) {
	return r.Add(d.Negated(), opts...)
}

/*
Until returns the [Duration] from the receiver instance to other,
which must share its calendar.

[WithLargestUnit] defaults to the coarser of [Day] and the smallest
unit. [WithSmallestUnit] (default [Nanosecond]), [WithIncrement] and
[WithRoundingMode] (default [RoundNearest]) round the result; years,
months and weeks are measured from the receiver instance.
*/
func (r DateTime) Until(other DateTime, opts ...Option) (Duration, error) {
	s, err := r.diffSettings(other, opts)
	if err != nil {
		return Duration{}, err
	}
	return differenceCivil(r.date, r.time.ns, other.date, other.time.ns, r.cal, s)
}

/*
Since returns the [Duration] from other to the receiver instance.
See [DateTime.Until].
*/
func (r DateTime) Since(other DateTime, opts ...Option) (Duration, error) {
	s, err := r.diffSettings(other, opts)
	if err != nil {
		return Duration{}, err
	}
	return since(func(s diffSettings) (Duration, error) {
		return differenceCivil(r.date, r.time.ns, other.date, other.time.ns, r.cal, s)
	}, s)
}

func (r DateTime) diffSettings(other DateTime, opts []Option) (diffSettings, error) {
	if err := r.cal.mustMatch(other.cal); err != nil {
		return diffSettings{}, err
	}
	return resolveDiffOptions(opts, Day, Nanosecond, Year, "DateTime difference")
}

/*
Round returns the receiver instance rounded to a multiple of the
increment of the smallest unit, which is required and must be [Day]
or finer. A [Day] increment must be one; finer increments must evenly
divide, and be less than, the unit's ceiling. [WithRoundingMode]
defaults to [RoundNearest], ties rounding up.
*/
func (r DateTime) Round(opts ...Option) (DateTime, error) {
	o, err := newOptions(opts)
	if err != nil {
		return DateTime{}, err
	}
	switch {
	case o.smallest == Auto:
		return DateTime{}, optionsErrorf("smallestUnit is required")
	case o.smallest > Day:
		return DateTime{}, errorDisallowedUnit(o.smallest, "DateTime.Round")
	case o.smallest == Day:
		err = validateIncrement(o.increment, 1, true)
	default:
		err = validateIncrement(o.increment, ceilingOf(o.smallest), false)
	}
	if err != nil {
		return DateTime{}, err
	}

	ns := roundInstant(r.epochNs(), o.smallest, o.increment, o.roundingMode(RoundNearest))
	if !dateTimeInRange(ns) {
		return DateTime{}, errorDateTimeRange
	}
	return localDateTime(ns, r.cal), nil
}

/*
ToYearMonth returns the year and month of the receiver instance.
*/
func (r DateTime) ToYearMonth() (YearMonth, error) { return r.Date().ToYearMonth() }

/*
ToMonthDay returns the month and day of the receiver instance.
*/
func (r DateTime) ToMonthDay() (MonthDay, error) { return r.Date().ToMonthDay() }

/*
ToZonedDateTime returns the [ZonedDateTime] at which the wall clock of
tz reads the receiver instance, resolved per d. See [InstantFor].
*/
func (r DateTime) ToZonedDateTime(tz TimeZone, d Disambiguation) (ZonedDateTime, error) {
	zone := wrapTimeZone(tz)
	i, err := zone.instantFor(r, d)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return ZonedDateTime{instant: i, tz: zone, cal: r.cal}, nil
}

/*
String returns the ISO-8601 representation of the receiver instance,
followed by a "[c=...]" annotation when its calendar is not ISO-8601.
*/
func (r DateTime) String() string {
	return formatDate(r.date) + "T" + formatTime(r.time, autoPrecision) + formatCalendar(r.cal)
}

func (r DateTime) anchor() anchor { return anchor{date: r.date, cal: r.cal} }
