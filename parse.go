package temporal

/*
parse.go contains the readers of the ISO-8601 text grammar for every
value kind.
*/

/*
ParseDuration returns the [Duration] read from an ISO-8601 duration
string such as "P1Y2M3DT4H5M6.789S" or "-PT1,5S". Letters are
case-insensitive, a fraction is allowed only on the seconds, and a
"T" must be followed by at least one time component.
*/
func ParseDuration(s string) (d Duration, err error) {
	defer func() { debugParse("duration", s, d, err) }()

	m := durationRegexp.FindStringSubmatch(s)
	if m == nil || streqf(m[6], "T") {
		err = errorMalformed("duration", s)
		return
	}
	empty := true
	for _, g := range m[2:] {
		if g != "" {
			empty = false
			break
		}
	}
	if empty {
		err = errorMalformed("duration", s)
		return
	}

	var c [10]int64
	fields := []struct {
		group int
		unit  Unit
	}{
		{2, Year}, {3, Month}, {4, Week}, {5, Day},
		{7, Hour}, {8, Minute}, {9, Second},
	}
	for _, f := range fields {
		if m[f.group] == "" {
			continue
		}
		var v int64
		if v, err = pint(m[f.group], 10, 64); err != nil {
			err = errorFieldOverflow
			return
		}
		c[unitIndex(f.unit)] = v
	}
	if frac := m[10]; frac != "" {
		ms, us, ns := splitFraction(frac)
		c[unitIndex(Millisecond)] = ms
		c[unitIndex(Microsecond)] = us
		c[unitIndex(Nanosecond)] = ns
	}

	if isNegative(m[1]) {
		for i := range c {
			c[i] = -c[i]
		}
	}
	d, err = durationFromComponents(c)
	return
}

/*
ParseInstant returns the [Instant] read from an ISO-8601 date-time
string, which must carry a "Z" or a numeric UTC offset. A zone or
calendar annotation is accepted and ignored.
*/
func ParseInstant(s string) (i Instant, err error) {
	defer func() { debugParse("instant", s, i, err) }()

	m := instantRegexp.FindStringSubmatch(s)
	if m == nil {
		err = errorMalformed("instant", s)
		return
	}
	dm := splitDateTime(m, true)
	if !dm.hasZ() && !dm.hasOffset() {
		err = errorMalformed("instant", s)
		return
	}

	var (
		date ISODate
		t    TimeOfDay
		off  int64
	)
	if date, err = parseDate(dm); err != nil {
		return
	}
	if t, err = parseTime(dm); err != nil {
		return
	}
	if !dm.hasZ() {
		if off, err = offsetFromGroups(dm.zone[1:6]); err != nil {
			return
		}
	}
	local := intOf(date.EpochDays()).MulInt64(nsPerDay).AddInt64(t.ns)
	i, err = instantOf(local.AddInt64(-off))
	return
}

/*
ParseDateTime returns the [DateTime] read from an ISO-8601 string.
The time is optional and defaults to midnight; a "Z", offset or zone
annotation is accepted and ignored. A "[c=...]" annotation selects a
registered calendar.
*/
func ParseDateTime(s string) (dt DateTime, err error) {
	defer func() { debugParse("date-time", s, dt, err) }()

	var dm dateTimeMatch
	if dm, err = matchDateTime(s, "date-time"); err != nil {
		return
	}
	dt, err = dateTimeFromMatch(dm)
	return
}

/*
ParseDate returns the [Date] read from an ISO-8601 string. Any time,
offset or zone is accepted and ignored.
*/
func ParseDate(s string) (d Date, err error) {
	defer func() { debugParse("date", s, d, err) }()

	var (
		dm  dateTimeMatch
		iso ISODate
		cal calendar
	)
	if dm, err = matchDateTime(s, "date"); err != nil {
		return
	}
	if cal, err = calendarAnnotation(dm.cal); err != nil {
		return
	}
	if iso, err = parseDate(dm); err != nil {
		return
	}
	if _, err = parseTime(dm); err != nil {
		return
	}
	d, err = dateOf(iso, cal)
	return
}

/*
ParseTimeOfDay returns the [TimeOfDay] read from an ISO-8601 time
such as "14:23:30.5" or "142330", or from the time of a full
date-time string. A calendar annotation, if any, must be ISO-8601.
*/
func ParseTimeOfDay(s string) (t TimeOfDay, err error) {
	defer func() { debugParse("time", s, t, err) }()

	var dm dateTimeMatch
	if m := timeRegexp.FindStringSubmatch(s); m != nil {
		dm = splitDateTime(m, false)
	} else if m = dateTimeRegexp.FindStringSubmatch(s); m != nil {
		if dm = splitDateTime(m, true); !dm.hasTime() {
			err = errorMalformed("time", s)
			return
		}
	} else {
		err = errorMalformed("time", s)
		return
	}

	var cal calendar
	if cal, err = calendarAnnotation(dm.cal); err != nil {
		return
	} else if !cal.isISO() {
		err = rangeErrorf("a time of day cannot carry calendar '", cal.id(), "'")
		return
	}
	t, err = parseTime(dm)
	return
}

/*
ParseYearMonth returns the [YearMonth] read from "YYYY-MM", "YYYYMM"
or, for any calendar, a full date whose day becomes the reference
day.
*/
func ParseYearMonth(s string) (ym YearMonth, err error) {
	defer func() { debugParse("year-month", s, ym, err) }()

	if m := yearMonthRegexp.FindStringSubmatch(s); m != nil {
		var y int
		if y, err = parseYear(m[1], s); err != nil {
			return
		}
		ym, err = MakeYearMonth(y, toInt(m[2]), nil, 1)
		return
	}

	var (
		dm  dateTimeMatch
		iso ISODate
		cal calendar
	)
	if dm, err = matchDateTime(s, "year-month"); err != nil {
		return
	}
	if cal, err = calendarAnnotation(dm.cal); err != nil {
		return
	}
	if iso, err = parseDate(dm); err != nil {
		return
	}
	if cal.isISO() {
		iso.Day = 1
	}
	ym, err = yearMonthOf(iso, cal)
	return
}

/*
ParseMonthDay returns the [MonthDay] read from "MM-DD", "--MM-DD",
"MMDD" or, for any calendar, a full date whose year becomes the
reference year.
*/
func ParseMonthDay(s string) (md MonthDay, err error) {
	defer func() { debugParse("month-day", s, md, err) }()

	if m := monthDayRegexp.FindStringSubmatch(s); m != nil {
		md, err = MakeMonthDay(toInt(m[1]), toInt(m[2]), nil, 0)
		return
	}

	var (
		dm  dateTimeMatch
		iso ISODate
		cal calendar
	)
	if dm, err = matchDateTime(s, "month-day"); err != nil {
		return
	}
	if cal, err = calendarAnnotation(dm.cal); err != nil {
		return
	}
	if iso, err = parseDate(dm); err != nil {
		return
	}
	if cal.isISO() {
		md, err = MakeMonthDay(iso.Month, iso.Day, nil, 0)
		return
	}
	md = MonthDay{iso: iso, cal: cal}
	return
}

/*
ParseZonedDateTime returns the [ZonedDateTime] read from an ISO-8601
string carrying a "[zone]" annotation, such as
"2020-03-08T02:30-05:00[America/New_York]".

A numeric offset is reconciled with the zone per [WithOffset]
(default [OffsetReject]), and a wall-clock time that is missing or
repeated in the zone is resolved per [WithDisambiguation] (default
[DisambiguateCompatible]). A "Z" fixes the instant exactly.
*/
func ParseZonedDateTime(s string, opts ...Option) (zdt ZonedDateTime, err error) {
	defer func() { debugParse("zoned date-time", s, zdt, err) }()

	var (
		o  options
		dm dateTimeMatch
		tz TimeZone
		dt DateTime
	)
	if o, err = newOptions(opts); err != nil {
		return
	}
	if dm, err = matchDateTime(s, "zoned date-time"); err != nil {
		return
	}
	if dm.zoneID() == "" {
		err = errorMalformed("zoned date-time", s)
		return
	}
	if tz, err = LookupTimeZone(dm.zoneID()); err != nil {
		return
	}
	if dt, err = dateTimeFromMatch(dm); err != nil {
		return
	}

	kind, off := offsetWall, int64(0)
	switch {
	case dm.hasZ():
		kind = offsetExact
	case dm.hasOffset():
		kind = offsetOption
		if off, err = offsetFromGroups(dm.zone[1:6]); err != nil {
			return
		}
	}

	zone := wrapTimeZone(tz)
	var i Instant
	if i, err = zone.resolveOffset(dt, kind, off, o.disamb, o.offsetOr(OffsetReject)); err != nil {
		return
	}
	zdt = ZonedDateTime{instant: i, tz: zone, cal: dt.cal}
	return
}

// parseOffset reads a complete "±hh[:mm[:ss[.fff]]]" offset.
func parseOffset(s string) (int64, error) {
	m := offsetRegexp.FindStringSubmatch(s)
	if m == nil {
		return 0, errorMalformed("offset", s)
	}
	return offsetFromGroups(m[1:6])
}

// offsetFromGroups converts sign, hour, minute, second and fraction
// submatches to nanoseconds.
func offsetFromGroups(g []string) (int64, error) {
	h := toInt(g[1])
	if h > 23 {
		return 0, rangeErrorf("offset hour ", h, " outside of 0..23")
	}
	ms, us, ns := splitFraction(g[4])
	off := int64(h)*nsPerHour + int64(toInt(g[2]))*nsPerMinute + int64(toInt(g[3]))*nsPerSecond +
		ms*nsPerMilli + us*nsPerMicro + ns
	if isNegative(g[0]) {
		off = -off
	}
	return off, nil
}

// matchDateTime applies dateTimeRegexp to s.
func matchDateTime(s, kind string) (dateTimeMatch, error) {
	m := dateTimeRegexp.FindStringSubmatch(s)
	if m == nil {
		return dateTimeMatch{}, errorMalformed(kind, s)
	}
	return splitDateTime(m, true), nil
}

func dateTimeFromMatch(dm dateTimeMatch) (DateTime, error) {
	cal, err := calendarAnnotation(dm.cal)
	if err != nil {
		return DateTime{}, err
	}
	date, err := parseDate(dm)
	if err != nil {
		return DateTime{}, err
	}
	t, err := parseTime(dm)
	if err != nil {
		return DateTime{}, err
	}
	return dateTimeOf(date, t, cal)
}

// calendarAnnotation resolves the identifier of a "[c=...]"
// annotation; an absent annotation selects ISO-8601.
func calendarAnnotation(id string) (calendar, error) {
	if id == "" {
		return wrapCalendar(nil), nil
	}
	c, err := LookupCalendar(id)
	if err != nil {
		return calendar{}, err
	}
	return wrapCalendar(c), nil
}

func parseDate(dm dateTimeMatch) (ISODate, error) {
	y, err := parseYear(dm.date[0], dm.date[0])
	if err != nil {
		return ISODate{}, err
	}
	mo, d := dm.date[1], dm.date[2]
	if mo == "" {
		mo, d = dm.date[3], dm.date[4]
	}
	return regulateISODate(y, toInt(mo), toInt(d), OverflowReject)
}

// parseYear reads a four-digit or signed six-digit year. Negative
// zero is not a year.
func parseYear(y, input string) (int, error) {
	neg := false
	switch {
	case hasPfx(y, "+"):
		y = y[1:]
	case hasPfx(y, "-"):
		neg, y = true, y[1:]
	case hasPfx(y, "−"):
		neg, y = true, y[len("−"):]
	}
	n := toInt(y)
	if neg {
		if n == 0 {
			return 0, errorMalformed("year", input)
		}
		n = -n
	}
	return n, nil
}

// parseTime reads the time submatches; an absent time is midnight. A
// leap second (60) reads as 59.
func parseTime(dm dateTimeMatch) (TimeOfDay, error) {
	if !dm.hasTime() {
		return TimeOfDay{}, nil
	}
	g := dm.time
	m, sec, frac := g[1], g[2], g[3]
	if m == "" && sec == "" {
		m, sec, frac = g[4], g[5], g[6]
	}
	s := toInt(sec)
	if s == 60 {
		s = 59
	}
	ms, us, ns := splitFraction(frac)
	return MakeTimeOfDay(toInt(g[0]), toInt(m), s, int(ms), int(us), int(ns), OverflowReject)
}

// splitFraction pads a run of up to nine fractional digits and splits
// it into milli-, micro- and nanoseconds.
func splitFraction(frac string) (ms, us, ns int64) {
	if frac == "" {
		return
	}
	f := frac + strrpt("0", 9-len(frac))
	return int64(toInt(f[0:3])), int64(toInt(f[3:6])), int64(toInt(f[6:9]))
}

func isNegative(sign string) bool { return sign == "-" || sign == "−" }
