package temporal

/*
date.go contains the Date type: a calendar date with no time of day
or time zone.
*/

import "time"

/*
Date implements a calendar date. It is stored as an [ISODate] and
presented through its [Calendar], which defaults to ISO-8601.
*/
type Date struct {
	iso ISODate
	cal calendar
}

/*
NewDate returns an instance of [Date] alongside an error following
an attempt to marshal x.

Input may be an ISO-8601 date string (or []byte), optionally with a
time and a "[c=...]" calendar annotation, a [time.Time] (whose date
in its own location is used), an [ISODate], or another [Date].

Any [Constraint] values are applied to the result before returning.
*/
func NewDate(x any, constraints ...Constraint[Date]) (d Date, err error) {
	switch tv := x.(type) {
	case string:
		d, err = ParseDate(tv)
	case []byte:
		d, err = ParseDate(string(tv))
	case time.Time:
		y, m, day := tv.Date()
		d, err = MakeDate(y, int(m), day, nil)
	case ISODate:
		d, err = MakeDate(tv.Year, tv.Month, tv.Day, nil)
	case Date:
		d = tv
	default:
		err = fieldErrorf("unsupported date input type")
	}

	if len(constraints) > 0 && err == nil {
		var group ConstraintGroup[Date] = constraints
		err = group.Constrain(d)
	}

	if err != nil {
		d = Date{}
	}

	return
}

/*
MakeDate returns the [Date] with the given ISO-8601 year, month and
day, presented in cal (ISO-8601 when nil). Invalid or out-of-range
dates fail with [ErrOutOfRange].
*/
func MakeDate(isoYear, isoMonth, isoDay int, cal Calendar) (Date, error) {
	iso, err := regulateISODate(isoYear, isoMonth, isoDay, OverflowReject)
	if err != nil {
		return Date{}, err
	}
	return dateOf(iso, wrapCalendar(cal))
}

func dateOf(iso ISODate, cal calendar) (Date, error) {
	if !iso.inRange() {
		return Date{}, errorDateRange
	}
	return Date{iso: iso, cal: cal}, nil
}

/*
DateFromFields returns the [Date] that cal (ISO-8601 when nil)
resolves from the year, month and day of f.
*/
func DateFromFields(f Fields, cal Calendar, o Overflow) (Date, error) {
	c := wrapCalendar(cal)
	for _, k := range []Field{FieldYear, FieldMonth, FieldDay} {
		if _, ok := f[k]; !ok {
			return Date{}, errorMissingField(k.String())
		}
	}
	iso, err := c.dateFromFields(f, o)
	if err != nil {
		return Date{}, err
	}
	return dateOf(iso, c)
}

// mergeFields returns base overlaid with over.
func mergeFields(base, over Fields) Fields {
	out := Fields{}
	for k, v := range base {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

/*
Calendar returns the [Calendar] of the receiver instance.
*/
func (r Date) Calendar() Calendar { return r.cal.impl() }

/*
ISO returns the ISO-8601 year, month and day of the receiver instance.
*/
func (r Date) ISO() ISODate { return r.iso }

func (r Date) Year() int         { return r.cal.year(r.iso) }
func (r Date) Month() int        { return r.cal.month(r.iso) }
func (r Date) Day() int          { return r.cal.day(r.iso) }
func (r Date) DayOfWeek() int    { return r.cal.dayOfWeek(r.iso) }
func (r Date) DayOfYear() int    { return r.cal.dayOfYear(r.iso) }
func (r Date) WeekOfYear() int   { return r.cal.weekOfYear(r.iso) }
func (r Date) DaysInMonth() int  { return r.cal.daysInMonth(r.iso) }
func (r Date) DaysInYear() int   { return r.cal.daysInYear(r.iso) }
func (r Date) MonthsInYear() int { return r.cal.monthsInYear(r.iso) }
func (r Date) InLeapYear() bool  { return r.cal.inLeapYear(r.iso) }

/*
Era returns the era and the year within it, when the calendar of the
receiver instance defines eras.
*/
func (r Date) Era() (era string, eraYear int, ok bool) { return r.cal.era(r.iso) }

/*
Fields returns the calendar year, month and day of the receiver
instance.
*/
func (r Date) Fields() Fields {
	return Fields{FieldYear: r.Year(), FieldMonth: r.Month(), FieldDay: r.Day()}
}

/*
With returns a new [Date] in which the fields present in f replace
those of the receiver instance, resolved by its calendar.
*/
func (r Date) With(f Fields, o Overflow) (Date, error) {
	iso, err := r.cal.dateFromFields(mergeFields(r.Fields(), f), o)
	if err != nil {
		return Date{}, err
	}
	return dateOf(iso, r.cal)
}

/*
WithCalendar returns the same day presented in cal.
*/
func (r Date) WithCalendar(cal Calendar) Date {
	r.cal = wrapCalendar(cal)
	return r
}

/*
Compare returns -1, 0 or 1 if the receiver instance is earlier than,
equal to or later than x, disregarding calendars.
*/
func (r Date) Compare(x Date) int { return r.iso.Compare(x.iso) }

/*
Equal returns a Boolean value indicative of the receiver instance
and x being the same day in the same calendar.
*/
func (r Date) Equal(x Date) bool { return r.iso == x.iso && r.cal.same(x.cal) }

/*
Add returns the receiver instance moved by d through its calendar.
Hours and finer units are folded into whole days. [WithOverflow]
(default [OverflowConstrain]) governs a day of month that does not
exist in the resulting month.
*/
func (r Date) Add(d Duration, opts ...Option) (Date, error) {
	o, err := newOptions(opts)
	if err != nil {
		return Date{}, err
	}
	iso, err := r.cal.dateAdd(r.iso, d, o.overflowOr(OverflowConstrain))
	if err != nil {
		return Date{}, err
	}
	return dateOf(iso, r.cal)
}

/*
Subtract returns the receiver instance moved back by d. See
[Date.Add].
*/
func (r Date) Subtract(d Duration, opts ...Option) (Date, error) {
	return r.Add(d.Negated(), opts...)
}

/*
Until returns the [Duration] from the receiver instance to other,
which must share its calendar.

Units range from [Day] to [Year]; [WithLargestUnit] defaults to the
coarser of [Day] and the smallest unit. [WithSmallestUnit] (default
[Day]), [WithIncrement] and [WithRoundingMode] (default [RoundNearest])
round the result.
*/
func (r Date) Until(other Date, opts ...Option) (Duration, error) {
	s, err := r.diffSettings(other, opts)
	if err != nil {
		return Duration{}, err
	}
	return differenceCivil(r.iso, 0, other.iso, 0, r.cal, s)
}

/*
Since returns the [Duration] from other to the receiver instance.
See [Date.Until].
*/
func (r Date) Since(other Date, opts ...Option) (Duration, error) {
	s, err := r.diffSettings(other, opts)
	if err != nil {
		return Duration{}, err
	}
	return since(func(s diffSettings) (Duration, error) {
		return differenceCivil(r.iso, 0, other.iso, 0, r.cal, s)
	}, s)
}

func (r Date) diffSettings(other Date, opts []Option) (diffSettings, error) {
	if err := r.cal.mustMatch(other.cal); err != nil {
		return diffSettings{}, err
	}
	return resolveDiffOptions(opts, Day, Day, Year, "Date difference")
}

/*
ToDateTime returns the [DateTime] combining the receiver instance
with t.
*/
func (r Date) ToDateTime(t TimeOfDay) (DateTime, error) {
	return dateTimeOf(r.iso, t, r.cal)
}

/*
ToYearMonth returns the year and month of the receiver instance.
*/
func (r Date) ToYearMonth() (YearMonth, error) {
	iso, err := r.cal.yearMonthFromFields(Fields{FieldYear: r.Year(), FieldMonth: r.Month()}, OverflowConstrain)
	if err != nil {
		return YearMonth{}, err
	}
	return yearMonthOf(iso, r.cal)
}

/*
ToMonthDay returns the month and day of the receiver instance.
*/
func (r Date) ToMonthDay() (MonthDay, error) {
	iso, err := r.cal.monthDayFromFields(Fields{FieldMonth: r.Month(), FieldDay: r.Day()}, OverflowConstrain)
	if err != nil {
		return MonthDay{}, err
	}
	return MonthDay{iso: iso, cal: r.cal}, nil
}

/*
ToZonedDateTime returns the [ZonedDateTime] at which the wall clock
of tz reads t on the receiver date, resolved per d.
*/
func (r Date) ToZonedDateTime(tz TimeZone, t TimeOfDay, d Disambiguation) (ZonedDateTime, error) {
	dt, err := r.ToDateTime(t)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return dt.ToZonedDateTime(tz, d)
}

/*
String returns the ISO-8601 representation of the receiver instance,
followed by a "[c=...]" annotation when its calendar is not ISO-8601.
*/
func (r Date) String() string { return formatDate(r.iso) + formatCalendar(r.cal) }

func (r Date) anchor() anchor { return anchor{date: r.iso, cal: r.cal} }
