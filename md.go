package temporal

/*
md.go contains the MonthDay type: a recurring day of the year, such
as a birthday.
*/

/*
MonthDay implements a month and day with no year, in a [Calendar].
It retains a hidden reference year (1972 for ISO-8601, a leap year)
which is shown only alongside a calendar annotation.
*/
type MonthDay struct {
	iso ISODate // reference date
	cal calendar
}

/*
NewMonthDay returns an instance of [MonthDay] alongside an error
following an attempt to marshal x.

Input may be a string (or []byte) such as "02-29", "--02-29", "0229"
or a full date with a "[c=...]" annotation, a [Date], or another
[MonthDay].

Any [Constraint] values are applied to the result before returning.
*/
func NewMonthDay(x any, constraints ...Constraint[MonthDay]) (md MonthDay, err error) {
	switch tv := x.(type) {
	case string:
		md, err = ParseMonthDay(tv)
	case []byte:
		md, err = ParseMonthDay(string(tv))
	case Date:
		md, err = tv.ToMonthDay()
	case MonthDay:
		md = tv
	default:
		err = fieldErrorf("unsupported month-day input type")
	}

	if len(constraints) > 0 && err == nil {
		var group ConstraintGroup[MonthDay] = constraints
		err = group.Constrain(md)
	}

	if err != nil {
		md = MonthDay{}
	}

	return
}

/*
MakeMonthDay returns the [MonthDay] with the given ISO-8601 month and
day, presented in cal (ISO-8601 when nil). refYear is the hidden
reference year, and is 1972 when zero.
*/
func MakeMonthDay(isoMonth, isoDay int, cal Calendar, refYear int) (MonthDay, error) {
	if refYear == 0 {
		refYear = 1972
	}
	iso, err := regulateISODate(refYear, isoMonth, isoDay, OverflowReject)
	if err != nil {
		return MonthDay{}, err
	}
	if !iso.inRange() {
		return MonthDay{}, errorDateRange
	}
	return MonthDay{iso: iso, cal: wrapCalendar(cal)}, nil
}

/*
MonthDayFromFields returns the [MonthDay] that cal (ISO-8601 when
nil) resolves from f. Month and day are required; a year, when
present, is used only to validate the day.
*/
func MonthDayFromFields(f Fields, cal Calendar, o Overflow) (MonthDay, error) {
	c := wrapCalendar(cal)
	for _, k := range []Field{FieldMonth, FieldDay} {
		if _, ok := f[k]; !ok {
			return MonthDay{}, errorMissingField(k.String())
		}
	}
	iso, err := c.monthDayFromFields(f, o)
	if err != nil {
		return MonthDay{}, err
	}
	return MonthDay{iso: iso, cal: c}, nil
}

/*
Calendar returns the [Calendar] of the receiver instance.
*/
func (r MonthDay) Calendar() Calendar { return r.cal.impl() }

func (r MonthDay) Month() int { return r.cal.month(r.iso) }
func (r MonthDay) Day() int   { return r.cal.day(r.iso) }

/*
Fields returns the calendar month and day of the receiver instance.
*/
func (r MonthDay) Fields() Fields { return Fields{FieldMonth: r.Month(), FieldDay: r.Day()} }

/*
With returns a new [MonthDay] in which the fields present in f
replace those of the receiver instance.
*/
func (r MonthDay) With(f Fields, o Overflow) (MonthDay, error) {
	return MonthDayFromFields(mergeFields(r.Fields(), f), r.cal, o)
}

/*
Equal returns a Boolean value indicative of the receiver instance and
x having the same month, day, reference year and calendar.
*/
func (r MonthDay) Equal(x MonthDay) bool { return r.iso == x.iso && r.cal.same(x.cal) }

/*
ToDate returns the receiver month and day in the given calendar year.
A day that does not exist in that year (29 February) is constrained
to the last day of the month.
*/
func (r MonthDay) ToDate(year int) (Date, error) {
	return DateFromFields(Fields{FieldYear: year, FieldMonth: r.Month(), FieldDay: r.Day()}, r.cal, OverflowConstrain)
}

/*
String returns "MM-DD" for the ISO-8601 calendar. Other calendars
print the full reference date and a "[c=...]" annotation.
*/
func (r MonthDay) String() string {
	if r.cal.isISO() {
		return pad(int64(r.iso.Month), 2) + "-" + pad(int64(r.iso.Day), 2)
	}
	return formatDate(r.iso) + formatCalendar(r.cal)
}
