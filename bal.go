package temporal

/*
bal.go contains the Balancer, which carries duration magnitude across
unit boundaries.
*/

/*
BalanceDuration returns d redistributed so that no component is
coarser than largest, and every component below largest is within
its natural range (e.g. 90 minutes becomes 1 hour 30 minutes when
largest is [Hour]).

Days are taken to be 24 hours unless [WithRelativeTo] supplies a
[ZonedDateTime], whose time zone then sets the length of each day.
Balancing into or out of years,
months or weeks depends on the calendar, and requires an anchor
supplied via [WithRelativeTo]; without one such a request fails
with [ErrRelativeToRequired]. [Auto] selects the coarsest non-zero
unit of d.
*/
func BalanceDuration(d Duration, largest Unit, opts ...Option) (out Duration, err error) {
	debugEnter(d, largest, opts)
	defer func() { debugExit(out, err) }()

	var o options
	if o, err = newOptions(opts); err != nil {
		return
	}
	if !largest.valid() {
		return Duration{}, errorDisallowedUnit(largest, "BalanceDuration")
	}
	if largest == Auto {
		largest = d.largestUnit()
	}

	rel := o.relativeAnchor()
	if out, err = unbalanceRelative(d, largest, rel); err != nil {
		return
	}
	if out, err = rel.balanceTime(out, largest); err != nil {
		return
	}
	if out, err = balanceRelative(out, largest, rel); err != nil {
		return
	}

	debugBalance(d, largest, out)
	return durationFromComponents(out.components())
}

// balanceNanos redistributes total nanoseconds over days through
// nanoseconds, stopping at largest. Calendar units are treated as
// Day. The remainder beyond largest stays in largest.
func balanceNanos(total Integer, largest Unit) (Duration, error) {
	if largest.IsCalendar() || largest == Auto {
		largest = Day
	}

	sign := int64(total.Sign())
	rest := total.Abs()

	var c [10]int64
	// finest to coarsest; each step stops when largest is reached
	steps := []struct {
		unit   Unit
		factor int64
	}{
		{Nanosecond, 1000},
		{Microsecond, 1000},
		{Millisecond, 1000},
		{Second, 60},
		{Minute, 60},
		{Hour, 24},
	}

	for _, s := range steps {
		if s.unit == largest {
			break
		}
		q, m := rest.QuoRem(intOf(s.factor))
		c[unitIndex(s.unit)] = sign * m.native
		rest = q
	}

	v, err := rest.mustInt64()
	if err != nil {
		return Duration{}, err
	}
	c[unitIndex(largest)] = sign * v
	return durationOf(c), nil
}

// balanceTime balances the days through nanoseconds of d up to
// largest, or to days when largest is a calendar unit.
func balanceTime(d Duration, largest Unit) (Duration, error) {
	t, err := balanceNanos(d.dayTimeNanos(), largest)
	if err != nil {
		return Duration{}, err
	}
	out := d.dateOnly().withTime(t)
	out.days = t.days
	return out, nil
}

// unbalanceRelative converts the calendar units of d that are
// coarser than largest into the finest calendar unit allowed.
func unbalanceRelative(d Duration, largest Unit, rel *anchor) (Duration, error) {
	if largest == Year || !d.hasCalendarUnits() {
		return d, nil
	}

	switch largest {
	case Month:
		if d.years == 0 {
			return d, nil
		}
		if err := requireAnchor(rel, "converting years to months"); err != nil {
			return Duration{}, err
		}
		later, err := rel.add(Duration{years: d.years})
		if err != nil {
			return Duration{}, err
		}
		diff, err := rel.cal.dateUntil(rel.date, later, Month)
		if err != nil {
			return Duration{}, err
		}
		d.months += diff.months
		d.years = 0
	case Week:
		if d.years == 0 && d.months == 0 {
			return d, nil
		}
		if err := requireAnchor(rel, "converting years and months to days"); err != nil {
			return Duration{}, err
		}
		days, err := rel.daysIn(Duration{years: d.years, months: d.months})
		if err != nil {
			return Duration{}, err
		}
		d.days += days
		d.years, d.months = 0, 0
	default:
		if err := requireAnchor(rel, "converting years, months and weeks to days"); err != nil {
			return Duration{}, err
		}
		days, err := rel.daysIn(Duration{years: d.years, months: d.months, weeks: d.weeks})
		if err != nil {
			return Duration{}, err
		}
		d.days += days
		d.years, d.months, d.weeks = 0, 0, 0
	}

	debugBalance("unbalance", largest, d)
	return d, nil
}

// balanceRelative carries the days of d, and any calendar units
// finer than largest, up into calendar units no coarser than
// largest.
func balanceRelative(d Duration, largest Unit, rel *anchor) (Duration, error) {
	if !largest.IsCalendar() || d.dateOnly().Blank() {
		return d, nil
	}

	if rel == nil {
		// without an anchor only days and weeks are carried
		if d.days == 0 && (largest == Week || d.weeks == 0) {
			return d, nil
		}
		return Duration{}, relativeErrorf("balancing days into ", largest)
	}

	later, err := rel.add(d)
	if err != nil {
		return Duration{}, err
	}
	diff, err := rel.cal.dateUntil(rel.date, later, largest)
	if err != nil {
		return Duration{}, err
	}

	debugBalance("relative", largest, diff)
	return diff.withTime(d), nil
}
