package temporal

/*
iso.go contains the proleptic ISO-8601 calendar, which is the default
[Calendar] of this package, and the epoch-day arithmetic on which all
calendars ultimately rest.
*/

/*
ISODate is a proleptic ISO-8601 calendar date. It is the calendar-
agnostic representation shared by every [Calendar] implementation: a
calendar maps its own fields onto an ISODate and back.
*/
type ISODate struct {
	Year  int
	Month int
	Day   int
}

/*
String returns the ISO-8601 representation of the receiver instance,
e.g. "2020-02-29" or "+275760-09-13".
*/
func (r ISODate) String() string {
	return formatISOYear(r.Year) + "-" + pad(int64(r.Month), 2) + "-" + pad(int64(r.Day), 2)
}

/*
Compare returns -1, 0 or 1 if the receiver falls before, on or after x.
*/
func (r ISODate) Compare(x ISODate) int {
	switch {
	case r.Year != x.Year:
		return signOf(int64(r.Year - x.Year))
	case r.Month != x.Month:
		return signOf(int64(r.Month - x.Month))
	}
	return signOf(int64(r.Day - x.Day))
}

/*
EpochDays returns the number of days between 1970-01-01 and the
receiver instance.
*/
func (r ISODate) EpochDays() int64 { return epochDays(r.Year, r.Month, r.Day) }

/*
ISODateFromEpochDays returns the [ISODate] which falls n days after
1970-01-01.
*/
func ISODateFromEpochDays(n int64) ISODate {
	y, m, d := civilFromDays(n)
	return ISODate{Year: y, Month: m, Day: d}
}

const (
	minEpochDays int64 = -100_000_001
	maxEpochDays int64 = 100_000_000
)

func (r ISODate) inRange() bool {
	n := r.EpochDays()
	return minEpochDays <= n && n <= maxEpochDays
}

func isLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

func isoDaysInMonth(y, m int) int {
	switch m {
	case 2:
		if isLeapYear(y) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	}
	return 31
}

func isoDaysInYear(y int) int {
	if isLeapYear(y) {
		return 366
	}
	return 365
}

// epochDays implements the days-from-civil algorithm over the
// proleptic Gregorian calendar, for any year representable as int.
func epochDays(y, m, d int) int64 {
	yy := int64(y)
	if m <= 2 {
		yy--
	}
	era, _ := floorDiv(yy, 400)
	yoe := yy - era*400
	mp := int64(m + 9)
	if m > 2 {
		mp = int64(m - 3)
	}
	doy := (153*mp+2)/5 + int64(d) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

func civilFromDays(z int64) (y, m, d int) {
	z += 719468
	era, doe := floorDiv(z, 146097)
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	yy := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d = int(doy - (153*mp+2)/5 + 1)
	if mp < 10 {
		m = int(mp + 3)
	} else {
		m = int(mp - 9)
	}
	if m <= 2 {
		yy++
	}
	y = int(yy)
	return
}

// isoDayOfWeek returns 1 (Monday) through 7 (Sunday).
func isoDayOfWeek(n int64) int {
	// 1970-01-01 was a Thursday
	_, r := floorDiv(n+3, 7)
	return int(r) + 1
}

func isoDayOfYear(d ISODate) int {
	return int(d.EpochDays()-epochDays(d.Year, 1, 1)) + 1
}

// weekOfYear applies the ISO-8601 week rule (the week containing
// the first Thursday is week one) to any calendar's year shape.
func weekOfYear(doy, dow, daysInYear, daysInPrevYear int) int {
	week := (doy - dow + 10) / 7
	if week < 1 {
		prev := doy + daysInPrevYear
		return (prev - dow + 10) / 7
	}
	if week == 53 && daysInYear-doy < 4-dow {
		return 1
	}
	return week
}

// regulateISODate applies overflow to the candidate y/m/d.
func regulateISODate(y, m, d int, overflow Overflow) (ISODate, error) {
	if overflow == OverflowReject {
		if m < 1 || m > 12 || d < 1 || d > isoDaysInMonth(y, m) {
			return ISODate{}, rangeErrorf("invalid ISO date ", pad(int64(y), 4),
				"-", pad(int64(m), 2), "-", pad(int64(d), 2))
		}
		return ISODate{y, m, d}, nil
	}
	m = clamp(m, 1, 12)
	d = clamp(d, 1, isoDaysInMonth(y, m))
	return ISODate{y, m, d}, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// balanceYearMonth normalizes a month ordinal outside 1..12.
func balanceYearMonth(y int64, m int64) (int64, int64) {
	q, r := floorDiv(m-1, 12)
	return y + q, r + 1
}

/*
ISO8601 returns the built-in proleptic ISO-8601 [Calendar]. It is
identified as "iso8601".
*/
func ISO8601() Calendar { return isoCalendar{} }

type isoCalendar struct{}

func (isoCalendar) ID() string { return "iso8601" }

func (isoCalendar) DateFromFields(f Fields, o Overflow) (ISODate, error) {
	y, ok := f[FieldYear]
	if !ok {
		return ISODate{}, errorMissingField("year")
	}
	m, ok := f[FieldMonth]
	if !ok {
		return ISODate{}, errorMissingField("month")
	}
	d, ok := f[FieldDay]
	if !ok {
		return ISODate{}, errorMissingField("day")
	}
	return regulateISODate(y, m, d, o)
}

func (isoCalendar) YearMonthFromFields(f Fields, o Overflow) (ISODate, error) {
	y, ok := f[FieldYear]
	if !ok {
		return ISODate{}, errorMissingField("year")
	}
	m, ok := f[FieldMonth]
	if !ok {
		return ISODate{}, errorMissingField("month")
	}
	iso, err := regulateISODate(y, m, 1, o)
	return iso, err
}

// MonthDayFromFields places the month and day in the leap reference
// year 1972 so that February 29 remains representable.
func (isoCalendar) MonthDayFromFields(f Fields, o Overflow) (ISODate, error) {
	m, ok := f[FieldMonth]
	if !ok {
		return ISODate{}, errorMissingField("month")
	}
	d, ok := f[FieldDay]
	if !ok {
		return ISODate{}, errorMissingField("day")
	}
	if y, ok := f[FieldYear]; ok {
		// validate against the given year before moving to the reference
		iso, err := regulateISODate(y, m, d, o)
		if err != nil {
			return ISODate{}, err
		}
		m, d = iso.Month, iso.Day
	}
	return regulateISODate(1972, m, d, o)
}

func (isoCalendar) Year(d ISODate) int         { return d.Year }
func (isoCalendar) Month(d ISODate) int        { return d.Month }
func (isoCalendar) Day(d ISODate) int          { return d.Day }
func (isoCalendar) DayOfWeek(d ISODate) int    { return isoDayOfWeek(d.EpochDays()) }
func (isoCalendar) DayOfYear(d ISODate) int    { return isoDayOfYear(d) }
func (isoCalendar) DaysInMonth(d ISODate) int  { return isoDaysInMonth(d.Year, d.Month) }
func (isoCalendar) DaysInYear(d ISODate) int   { return isoDaysInYear(d.Year) }
func (isoCalendar) MonthsInYear(_ ISODate) int { return 12 }
func (isoCalendar) InLeapYear(d ISODate) bool  { return isLeapYear(d.Year) }
func (c isoCalendar) WeekOfYear(d ISODate) int {
	return weekOfYear(isoDayOfYear(d), c.DayOfWeek(d), isoDaysInYear(d.Year), isoDaysInYear(d.Year-1))
}

func (isoCalendar) DateAdd(d ISODate, dur Duration, o Overflow) (ISODate, error) {
	y, m := balanceYearMonth(int64(d.Year)+dur.years, int64(d.Month)+dur.months)
	if y < int64(-maxISOYear) || y > int64(maxISOYear) {
		return ISODate{}, errorDateRange
	}
	moved, err := regulateISODate(int(y), int(m), d.Day, o)
	if err != nil {
		return ISODate{}, err
	}
	days := moved.EpochDays() + dur.weeks*7 + dur.days
	if days < minEpochDays || days > maxEpochDays {
		return ISODate{}, errorDateRange
	}
	return ISODateFromEpochDays(days), nil
}

// surpasses reports whether d lies past b when moving in the
// direction of sign. d need not be a valid date.
func surpasses(sign int, d, b ISODate) bool { return d.Compare(b)*sign > 0 }

func (c isoCalendar) DateUntil(a, b ISODate, largest Unit) (Duration, error) {
	sign := -a.Compare(b)
	if sign == 0 {
		return Duration{}, nil
	}

	var years, months int64
	if largest == Year || largest == Month {
		// land on b's month, then back off by one when a's day of
		// month, before any clamping, lies beyond b
		total := int64(b.Year-a.Year)*12 + int64(b.Month-a.Month)
		y, m := balanceYearMonth(int64(a.Year), int64(a.Month)+total)
		if surpasses(sign, ISODate{int(y), int(m), a.Day}, b) {
			total -= int64(sign)
		}
		if largest == Year {
			years, months = total/12, total%12
		} else {
			months = total
		}
	}

	mid, err := c.DateAdd(a, Duration{years: years, months: months}, OverflowConstrain)
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

// maxISOYear bounds the years reachable inside the supported range,
// with enough slack to keep intermediate results from overflowing.
const maxISOYear = 300_000
