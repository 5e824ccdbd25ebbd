package temporal

/*
cal.go contains the Calendar protocol, its optional capabilities and
the dispatch wrapper which synthesizes any capability a calendar
implementation does not provide.
*/

import "errors"

/*
Field identifies a single civil field within a [Fields] bag.
*/
type Field int

const (
	FieldYear Field = iota
	FieldMonth
	FieldDay
	FieldHour
	FieldMinute
	FieldSecond
	FieldMillisecond
	FieldMicrosecond
	FieldNanosecond
)

var fieldNames = []string{
	"year", "month", "day",
	"hour", "minute", "second",
	"millisecond", "microsecond", "nanosecond",
}

/*
String returns the string representation of the receiver instance.
*/
func (r Field) String() string { return nameOf(fieldNames, int(r)) }

/*
Fields is a bag of calendar-relative civil fields. Absent keys are
treated as missing rather than zero.
*/
type Fields map[Field]int

/*
Calendar describes the minimal set of operations a calendar must
supply to participate in arithmetic.

All dates cross the protocol as [ISODate] values; a calendar maps its
own year, month and day onto that representation and back. Optional
operations are declared by the single-method interfaces [DayOfWeeker],
[DayOfYearer], [WeekOfYearer], [DaysInMonther], [DaysInYearer],
[MonthsInYearer], [LeapYearer], [Eraer], [DateAdder], [DateUntiler],
[YearMonthFromFieldser] and [MonthDayFromFieldser]. Any of these
that a Calendar does not implement is derived from the required set.
*/
type Calendar interface {
	// ID returns the calendar identifier, e.g. "iso8601".
	ID() string

	// DateFromFields resolves the year, month and day fields of f,
	// applying overflow to out-of-range values.
	DateFromFields(f Fields, overflow Overflow) (ISODate, error)

	Year(ISODate) int
	Month(ISODate) int
	Day(ISODate) int
}

/*
Optional [Calendar] capabilities.
*/
type (
	DayOfWeeker    interface{ DayOfWeek(ISODate) int }
	DayOfYearer    interface{ DayOfYear(ISODate) int }
	WeekOfYearer   interface{ WeekOfYear(ISODate) int }
	DaysInMonther  interface{ DaysInMonth(ISODate) int }
	DaysInYearer   interface{ DaysInYear(ISODate) int }
	MonthsInYearer interface{ MonthsInYear(ISODate) int }
	LeapYearer     interface{ InLeapYear(ISODate) bool }
	Eraer          interface {
		Era(ISODate) (era string, eraYear int)
	}
	DateAdder interface {
		DateAdd(d ISODate, dur Duration, overflow Overflow) (ISODate, error)
	}
	DateUntiler interface {
		DateUntil(a, b ISODate, largest Unit) (Duration, error)
	}
	YearMonthFromFieldser interface {
		YearMonthFromFields(f Fields, overflow Overflow) (ISODate, error)
	}
	MonthDayFromFieldser interface {
		MonthDayFromFields(f Fields, overflow Overflow) (ISODate, error)
	}
)

// calendar is the dispatch wrapper held by every calendar-bearing
// value. A zero calendar dispatches to the ISO-8601 calendar.
type calendar struct {
	Calendar
}

func wrapCalendar(c Calendar) calendar {
	if c == nil {
		return calendar{isoCalendar{}}
	}
	if w, ok := c.(calendar); ok {
		return w
	}
	return calendar{c}
}

func (r calendar) impl() Calendar {
	if r.Calendar == nil {
		return isoCalendar{}
	}
	return r.Calendar
}

func (r calendar) id() string { return r.impl().ID() }

func (r calendar) isISO() bool {
	_, ok := r.impl().(isoCalendar)
	return ok
}

// same reports whether r and x are the same calendar, by identifier.
func (r calendar) same(x calendar) bool { return r.id() == x.id() }

func (r calendar) mustMatch(x calendar) error {
	if !r.same(x) {
		return errorCalendarMismatch(r.id(), x.id())
	}
	return nil
}

func (r calendar) year(d ISODate) int  { return r.impl().Year(d) }
func (r calendar) month(d ISODate) int { return r.impl().Month(d) }
func (r calendar) day(d ISODate) int   { return r.impl().Day(d) }

func (r calendar) dateFromFields(f Fields, o Overflow) (d ISODate, err error) {
	debugEvent(EventCalendar, "dateFromFields", r.id(), f)
	if d, err = r.impl().DateFromFields(f, o); err == nil && !d.inRange() {
		err = errorDateRange
	}
	return
}

// startOfYear returns the first day of the calendar year y.
func (r calendar) startOfYear(y int) (ISODate, error) {
	return r.impl().DateFromFields(Fields{FieldYear: y, FieldMonth: 1, FieldDay: 1}, OverflowConstrain)
}

// hugeField is larger than any real month or day ordinal; under the
// constrain policy it resolves to the last month or day.
const hugeField = 1 << 20

func (r calendar) dayOfWeek(d ISODate) int {
	if c, ok := r.impl().(DayOfWeeker); ok {
		return c.DayOfWeek(d)
	}
	return isoDayOfWeek(d.EpochDays())
}

func (r calendar) dayOfYear(d ISODate) int {
	if c, ok := r.impl().(DayOfYearer); ok {
		return c.DayOfYear(d)
	}
	start, err := r.startOfYear(r.year(d))
	if err != nil {
		return 0
	}
	return int(d.EpochDays()-start.EpochDays()) + 1
}

func (r calendar) daysInMonth(d ISODate) int {
	if c, ok := r.impl().(DaysInMonther); ok {
		return c.DaysInMonth(d)
	}
	last, err := r.impl().DateFromFields(Fields{
		FieldYear:  r.year(d),
		FieldMonth: r.month(d),
		FieldDay:   hugeField,
	}, OverflowConstrain)
	if err != nil {
		return 0
	}
	return r.day(last)
}

func (r calendar) monthsInYear(d ISODate) int {
	if c, ok := r.impl().(MonthsInYearer); ok {
		return c.MonthsInYear(d)
	}
	return r.monthsInYearOf(r.year(d))
}

func (r calendar) monthsInYearOf(y int) int {
	if c, ok := r.impl().(MonthsInYearer); ok {
		if start, err := r.startOfYear(y); err == nil {
			return c.MonthsInYear(start)
		}
	}
	last, err := r.impl().DateFromFields(Fields{
		FieldYear:  y,
		FieldMonth: hugeField,
		FieldDay:   1,
	}, OverflowConstrain)
	if err != nil {
		return 0
	}
	return r.month(last)
}

func (r calendar) daysInYear(d ISODate) int {
	if c, ok := r.impl().(DaysInYearer); ok {
		return c.DaysInYear(d)
	}
	return r.daysInYearOf(r.year(d))
}

func (r calendar) daysInYearOf(y int) int {
	a, err := r.startOfYear(y)
	if err != nil {
		return 0
	}
	b, err := r.startOfYear(y + 1)
	if err != nil {
		return 0
	}
	return int(b.EpochDays() - a.EpochDays())
}

// inLeapYear reports a leap year when the year is longer, in months
// or in days, than the shortest year of its seven-year neighborhood.
func (r calendar) inLeapYear(d ISODate) bool {
	if c, ok := r.impl().(LeapYearer); ok {
		return c.InLeapYear(d)
	}
	y := r.year(d)
	months, days := r.monthsInYearOf(y), r.daysInYearOf(y)
	minMonths, minDays := months, days
	for off := -3; off <= 3; off++ {
		if off == 0 {
			continue
		}
		if m := r.monthsInYearOf(y + off); m < minMonths {
			minMonths = m
		}
		if n := r.daysInYearOf(y + off); n < minDays {
			minDays = n
		}
	}
	if months != minMonths {
		return months > minMonths
	}
	return days > minDays
}

func (r calendar) weekOfYear(d ISODate) int {
	if c, ok := r.impl().(WeekOfYearer); ok {
		return c.WeekOfYear(d)
	}
	y := r.year(d)
	return weekOfYear(r.dayOfYear(d), r.dayOfWeek(d), r.daysInYearOf(y), r.daysInYearOf(y-1))
}

func (r calendar) era(d ISODate) (string, int, bool) {
	if c, ok := r.impl().(Eraer); ok {
		e, y := c.Era(d)
		return e, y, true
	}
	return "", 0, false
}

func (r calendar) yearMonthFromFields(f Fields, o Overflow) (d ISODate, err error) {
	if c, ok := r.impl().(YearMonthFromFieldser); ok {
		return c.YearMonthFromFields(f, o)
	}
	g := Fields{}
	for k, v := range f {
		g[k] = v
	}
	g[FieldDay] = 1
	return r.impl().DateFromFields(g, o)
}

// monthDayFromFields places the month and day within the calendar
// year that contains 1972-12-31 when no year is supplied.
func (r calendar) monthDayFromFields(f Fields, o Overflow) (d ISODate, err error) {
	if c, ok := r.impl().(MonthDayFromFieldser); ok {
		return c.MonthDayFromFields(f, o)
	}
	g := Fields{}
	for k, v := range f {
		g[k] = v
	}
	if _, ok := g[FieldYear]; !ok {
		g[FieldYear] = r.year(ISODate{1972, 12, 31})
	}
	return r.impl().DateFromFields(g, o)
}

// dateAdd adds the calendar portion of dur to d. Time fields of dur
// are folded into whole days, truncating toward zero.
func (r calendar) dateAdd(d ISODate, dur Duration, o Overflow) (out ISODate, err error) {
	debugEvent(EventCalendar, "dateAdd", r.id(), d, dur)
	dur = dur.foldTimeIntoDays()
	if c, ok := r.impl().(DateAdder); ok {
		if out, err = c.DateAdd(d, dur, o); err == nil && !out.inRange() {
			err = errorDateRange
		}
		return
	}
	return r.genericDateAdd(d, dur, o)
}

// maxMonthSpan bounds the months a generic addition may carry, well
// beyond any in-range date.
const maxMonthSpan int64 = 13 * 2 * maxISOYear

func (r calendar) genericDateAdd(d ISODate, dur Duration, o Overflow) (ISODate, error) {
	if abs64(dur.years) > 2*maxISOYear || abs64(dur.months) > maxMonthSpan {
		return ISODate{}, errorDateRange
	}
	y := int64(r.year(d)) + dur.years
	m := int64(r.month(d)) + dur.months
	for m < 1 {
		y--
		m += int64(r.monthsInYearOf(int(y)))
	}
	for {
		n := int64(r.monthsInYearOf(int(y)))
		if n <= 0 || m <= n {
			break
		}
		m -= n
		y++
	}
	moved, err := r.impl().DateFromFields(Fields{
		FieldYear:  int(y),
		FieldMonth: int(m),
		FieldDay:   r.day(d),
	}, o)
	if err != nil {
		return ISODate{}, err
	}
	days := moved.EpochDays() + dur.weeks*7 + dur.days
	if days < minEpochDays || days > maxEpochDays {
		return ISODate{}, errorDateRange
	}
	return ISODateFromEpochDays(days), nil
}

// dateUntil returns the calendar difference from a to b, using no
// unit coarser than largest. Units finer than a day are not produced.
func (r calendar) dateUntil(a, b ISODate, largest Unit) (Duration, error) {
	debugEvent(EventCalendar, "dateUntil", r.id(), a, b, largest)
	if largest < Day {
		largest = Day
	}
	if c, ok := r.impl().(DateUntiler); ok {
		return c.DateUntil(a, b, largest)
	}
	return r.genericDateUntil(a, b, largest)
}

// genericDateUntil walks the larger unit first: whole years, then
// whole months, each backed off when the step would pass b. A step
// passes b when it lands in a later month, or in b's month with a's
// day of month beyond b's. Weeks and days are the remaining exact day
// count.
func (r calendar) genericDateUntil(a, b ISODate, largest Unit) (Duration, error) {
	sign := -a.Compare(b)
	if sign == 0 {
		return Duration{}, nil
	}

	passes := func(dur Duration) (bool, error) {
		mid, err := r.dateAdd(a, dur, OverflowConstrain)
		if errors.Is(err, ErrOutOfRange) {
			// b is in range, so a step leaving the range is past it
			return true, nil
		} else if err != nil {
			return false, err
		}
		cmp := signOf(int64(r.year(mid) - r.year(b)))
		if cmp == 0 {
			cmp = signOf(int64(r.month(mid) - r.month(b)))
		}
		if cmp == 0 {
			cmp = signOf(int64(r.day(a) - r.day(b)))
		}
		return cmp*sign > 0, nil
	}

	var years, months int64
	if largest == Year {
		years = int64(r.year(b) - r.year(a))
		for years != 0 {
			over, err := passes(Duration{years: years})
			if err != nil {
				return Duration{}, err
			}
			if !over {
				break
			}
			years -= int64(sign)
		}
	}

	if largest >= Month {
		if largest == Month {
			// estimate from the first year's shape, then correct
			months = int64(r.year(b)-r.year(a))*int64(r.monthsInYear(a)) +
				int64(r.month(b)-r.month(a))
		}
		for months != 0 {
			over, err := passes(Duration{years: years, months: months})
			if err != nil {
				return Duration{}, err
			}
			if !over {
				break
			}
			months -= int64(sign)
		}
		for {
			over, err := passes(Duration{years: years, months: months + int64(sign)})
			if err != nil {
				return Duration{}, err
			}
			if over {
				break
			}
			months += int64(sign)
		}
	}

	mid, err := r.dateAdd(a, Duration{years: years, months: months}, OverflowConstrain)
	if err != nil {
		return Duration{}, err
	}
	days := b.EpochDays() - mid.EpochDays()
	var weeks int64
	if largest == Week {
		weeks, days = days/7, days%7
	}
	return Duration{years: years, months: months, weeks: weeks, days: days}, nil
}
