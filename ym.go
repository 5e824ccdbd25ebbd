package temporal

/*
ym.go contains the YearMonth type: a month of a particular calendar
year.
*/

/*
YearMonth implements a month of a particular year in a [Calendar].
It retains a hidden reference day, which places the month within the
ISO-8601 calendar and is shown only alongside a calendar annotation.
*/
type YearMonth struct {
	iso ISODate // reference day within the month
	cal calendar
}

var (
	minYearMonth = ISODate{Year: -271821, Month: 4, Day: 1}
	maxYearMonth = ISODate{Year: 275760, Month: 9, Day: 1}
)

func yearMonthOf(iso ISODate, cal calendar) (YearMonth, error) {
	first := ISODate{Year: iso.Year, Month: iso.Month, Day: 1}
	if first.Compare(minYearMonth) < 0 || first.Compare(maxYearMonth) > 0 {
		return YearMonth{}, errorYearMonthRng
	}
	return YearMonth{iso: iso, cal: cal}, nil
}

/*
NewYearMonth returns an instance of [YearMonth] alongside an error
following an attempt to marshal x.

Input may be a string (or []byte) such as "2020-02", "202002" or a
full date with a "[c=...]" annotation, a [Date], or another
[YearMonth].

Any [Constraint] values are applied to the result before returning.
*/
func NewYearMonth(x any, constraints ...Constraint[YearMonth]) (ym YearMonth, err error) {
	switch tv := x.(type) {
	case string:
		ym, err = ParseYearMonth(tv)
	case []byte:
		ym, err = ParseYearMonth(string(tv))
	case Date:
		ym, err = tv.ToYearMonth()
	case YearMonth:
		ym = tv
	default:
		err = fieldErrorf("unsupported year-month input type")
	}

	if len(constraints) > 0 && err == nil {
		var group ConstraintGroup[YearMonth] = constraints
		err = group.Constrain(ym)
	}

	if err != nil {
		ym = YearMonth{}
	}

	return
}

/*
MakeYearMonth returns the [YearMonth] with the given ISO-8601 year
and month, presented in cal (ISO-8601 when nil). refDay is the hidden
reference day, and is one (1) when zero.
*/
func MakeYearMonth(isoYear, isoMonth int, cal Calendar, refDay int) (YearMonth, error) {
	if refDay == 0 {
		refDay = 1
	}
	iso, err := regulateISODate(isoYear, isoMonth, refDay, OverflowReject)
	if err != nil {
		return YearMonth{}, err
	}
	return yearMonthOf(iso, wrapCalendar(cal))
}

/*
YearMonthFromFields returns the [YearMonth] that cal (ISO-8601 when
nil) resolves from the year and month of f.
*/
func YearMonthFromFields(f Fields, cal Calendar, o Overflow) (YearMonth, error) {
	c := wrapCalendar(cal)
	for _, k := range []Field{FieldYear, FieldMonth} {
		if _, ok := f[k]; !ok {
			return YearMonth{}, errorMissingField(k.String())
		}
	}
	iso, err := c.yearMonthFromFields(f, o)
	if err != nil {
		return YearMonth{}, err
	}
	return yearMonthOf(iso, c)
}

/*
Calendar returns the [Calendar] of the receiver instance.
*/
func (r YearMonth) Calendar() Calendar { return r.cal.impl() }

func (r YearMonth) Year() int         { return r.cal.year(r.iso) }
func (r YearMonth) Month() int        { return r.cal.month(r.iso) }
func (r YearMonth) DaysInMonth() int  { return r.cal.daysInMonth(r.iso) }
func (r YearMonth) DaysInYear() int   { return r.cal.daysInYear(r.iso) }
func (r YearMonth) MonthsInYear() int { return r.cal.monthsInYear(r.iso) }
func (r YearMonth) InLeapYear() bool  { return r.cal.inLeapYear(r.iso) }

/*
Fields returns the calendar year and month of the receiver instance.
*/
func (r YearMonth) Fields() Fields { return Fields{FieldYear: r.Year(), FieldMonth: r.Month()} }

/*
With returns a new [YearMonth] in which the fields present in f
replace those of the receiver instance.
*/
func (r YearMonth) With(f Fields, o Overflow) (YearMonth, error) {
	return YearMonthFromFields(mergeFields(r.Fields(), f), r.cal, o)
}

/*
Compare returns -1, 0 or 1 if the receiver instance is earlier than,
equal to or later than x, by reference day.
*/
func (r YearMonth) Compare(x YearMonth) int { return r.iso.Compare(x.iso) }

/*
Equal returns a Boolean value indicative of the receiver instance and
x having the same month, reference day and calendar.
*/
func (r YearMonth) Equal(x YearMonth) bool { return r.iso == x.iso && r.cal.same(x.cal) }

/*
Add returns the receiver instance moved by d. A positive d is applied
from the first day of the month and a negative one from the last, so
that days and weeks count whole months only once they are exhausted.
Hours and finer units are folded into whole days.
*/
func (r YearMonth) Add(d Duration, opts ...Option) (YearMonth, error) {
	o, err := newOptions(opts)
	if err != nil {
		return YearMonth{}, err
	}
	overflow := o.overflowOr(OverflowConstrain)

	start := Fields{FieldYear: r.Year(), FieldMonth: r.Month(), FieldDay: 1}
	if d.Sign() < 0 {
		start[FieldDay] = r.DaysInMonth()
	}
	from, err := r.cal.dateFromFields(start, OverflowConstrain)
	if err != nil {
		return YearMonth{}, err
	}
	to, err := r.cal.dateAdd(from, d, overflow)
	if err != nil {
		return YearMonth{}, err
	}
	return YearMonthFromFields(Fields{FieldYear: r.cal.year(to), FieldMonth: r.cal.month(to)}, r.cal, overflow)
}

/*
Subtract returns the receiver instance moved back by d. See
[YearMonth.Add].
*/
func (r YearMonth) Subtract(d Duration, opts ...Option) (YearMonth, error) {
	return r.Add(d.Negated(), opts...)
}

/*
Until returns the [Duration] in years and months from the receiver
instance to other, which must share its calendar. [WithLargestUnit]
defaults to [Year] and [WithSmallestUnit] to [Month]; no finer unit
is allowed.
*/
func (r YearMonth) Until(other YearMonth, opts ...Option) (Duration, error) {
	a, b, s, err := r.diffSettings(other, opts)
	if err != nil {
		return Duration{}, err
	}
	return differenceCivil(a, 0, b, 0, r.cal, s)
}

/*
Since returns the [Duration] from other to the receiver instance.
See [YearMonth.Until].
*/
func (r YearMonth) Since(other YearMonth, opts ...Option) (Duration, error) {
	a, b, s, err := r.diffSettings(other, opts)
	if err != nil {
		return Duration{}, err
	}
	return since(func(s diffSettings) (Duration, error) {
		return differenceCivil(a, 0, b, 0, r.cal, s)
	}, s)
}

// diffSettings returns the first days of both months alongside the
// resolved options.
func (r YearMonth) diffSettings(other YearMonth, opts []Option) (a, b ISODate, s diffSettings, err error) {
	if err = r.cal.mustMatch(other.cal); err != nil {
		return
	}
	if s, err = resolveDiffOptions(opts, Year, Month, Year, "YearMonth difference"); err != nil {
		return
	}
	if a, err = r.cal.dateFromFields(Fields{FieldYear: r.Year(), FieldMonth: r.Month(), FieldDay: 1}, OverflowConstrain); err != nil {
		return
	}
	b, err = r.cal.dateFromFields(Fields{FieldYear: other.Year(), FieldMonth: other.Month(), FieldDay: 1}, OverflowConstrain)
	return
}

/*
ToDate returns the given day of the receiver month.
*/
func (r YearMonth) ToDate(day int) (Date, error) {
	return DateFromFields(Fields{FieldYear: r.Year(), FieldMonth: r.Month(), FieldDay: day}, r.cal, OverflowReject)
}

/*
String returns "YYYY-MM" for the ISO-8601 calendar. Other calendars
print the full reference date and a "[c=...]" annotation.
*/
func (r YearMonth) String() string {
	if r.cal.isISO() {
		return formatISOYear(r.iso.Year) + "-" + pad(int64(r.iso.Month), 2)
	}
	return formatDate(r.iso) + formatCalendar(r.cal)
}
