package temporal

/*
rnd.go contains the Rounder: increment validation, the two tie-break
semantics, and the rounding of durations and points in time.
*/

// validateIncrement checks inc against max, the number of the unit
// being rounded in the next larger unit. A max of zero accepts any
// positive increment.
func validateIncrement(inc int64, max int64, inclusive bool) error {
	if inc < 1 {
		return errorIncrement(inc, 0, false)
	}
	if max <= 0 {
		return nil
	}
	if inc > max || (!inclusive && inc == max) || max%inc != 0 {
		return errorIncrement(inc, max, inclusive)
	}
	return nil
}

// roundQuotient divides num by den, rounding the quotient per mode.
// For durations (point == false) ties go away from zero and trunc
// goes toward zero. For points in time (point == true) ties go
// toward positive infinity and trunc behaves as floor.
func roundQuotient(num, den Integer, mode RoundingMode, point bool) Integer {
	q, rem := num.QuoRem(den)
	if rem.IsZero() {
		return q
	}

	neg := num.Sign() < 0
	toward := func(up bool) Integer {
		// q is truncated; step away from zero only in the right direction
		if up && !neg {
			return q.AddInt64(1)
		} else if !up && neg {
			return q.AddInt64(-1)
		}
		return q
	}

	switch mode {
	case RoundCeil:
		return toward(true)
	case RoundFloor:
		return toward(false)
	case RoundTrunc:
		if point {
			return toward(false)
		}
		return q
	}

	// nearest
	switch rem.Abs().MulInt64(2).Cmp(den) {
	case 1:
		return toward(!neg)
	case 0:
		if point {
			return toward(true)
		}
		return toward(!neg)
	}
	return q
}

// roundToIncrement returns num rounded to a multiple of unit*inc.
func roundToIncrement(num Integer, unit, inc int64, mode RoundingMode, point bool) Integer {
	step := intOf(unit).MulInt64(inc)
	return roundQuotient(num, step, mode, point).Mul(step)
}

// roundInstant rounds epoch nanoseconds to a multiple of inc units,
// with the tie-break semantics of a point in time.
func roundInstant(ns Integer, unit Unit, inc int64, mode RoundingMode) Integer {
	debugRound("instant", ns, unit, inc, mode)
	return roundToIncrement(ns, nanosPer(unit), inc, mode, true)
}

/*
Round returns the receiver instance rounded to a multiple of the
increment of the smallest unit, and balanced up to the largest unit.

Options consulted are [WithSmallestUnit] (default [Nanosecond]),
[WithLargestUnit] (default: the coarser of the smallest unit and the
coarsest non-zero unit of the receiver), [WithIncrement] (which must
evenly divide, and be less than, the ceiling of a sub-day smallest
unit), [WithRoundingMode] (default [RoundNearest], ties away from
zero) and [WithRelativeTo].

Rounding to, or balancing through, years, months or weeks requires
[WithRelativeTo]. Days are taken to be 24 hours unless the anchor is
a [ZonedDateTime], whose time zone then sets the length of each day.
*/
func (r Duration) Round(opts ...Option) (out Duration, err error) {
	debugEnter(r, opts)
	defer func() { debugExit(out, err) }()

	var o options
	if o, err = newOptions(opts); err != nil {
		return
	}

	smallest := o.smallest
	if smallest == Auto {
		smallest = Nanosecond
	}
	largest := o.largest
	if largest == Auto {
		largest = larger(r.largestUnit(), smallest)
	}
	if largest < smallest {
		return Duration{}, errorUnitRange
	}
	if err = validateIncrement(o.increment, ceilingOf(smallest), false); err != nil {
		return
	}
	mode := o.roundingMode(RoundNearest)
	rel := o.relativeAnchor()

	if out, err = unbalanceRelative(r, largest, rel); err != nil {
		return
	}
	if rel != nil && rel.zoned != nil && smallest >= Day {
		if out, _, err = rel.zonedDays(out); err != nil {
			return
		}
	}
	if out, err = roundDuration(out, o.increment, smallest, mode, rel); err != nil {
		return
	}
	if out, err = rel.balanceTime(out, largest); err != nil {
		return
	}
	if out, err = balanceRelative(out, largest, rel); err != nil {
		return
	}

	debugRound(r, o, out)
	return durationFromComponents(out.components())
}

// roundDuration rounds d to inc multiples of unit, folding every finer
// component into unit. Coarser components are retained.
func roundDuration(d Duration, inc int64, unit Unit, mode RoundingMode, rel *anchor) (Duration, error) {
	day := intOf(nsPerDay)
	// days plus time, as nanoseconds
	daysNs := intOf(d.days).Mul(day).Add(d.timeNanos())

	var (
		count Integer
		err   error
	)

	switch unit {
	case Year, Month, Week:
		if err = requireAnchor(rel, "rounding to "+unit.String()); err != nil {
			return Duration{}, err
		}
		if rel.zoned != nil {
			if daysNs, err = rel.dayNanos(d); err != nil {
				return Duration{}, err
			}
		}
		switch unit {
		case Year:
			count, err = roundYears(d, daysNs, inc, mode, *rel)
		case Month:
			count, err = roundMonths(d, daysNs, inc, mode, *rel)
		default:
			count, err = roundWeeks(d, daysNs, inc, mode, *rel)
		}
		if err != nil {
			return Duration{}, err
		}
	case Day:
		if rel != nil && rel.zoned != nil {
			if count, err = rel.roundDays(d, inc, mode); err != nil {
				return Duration{}, err
			}
			break
		}
		count = roundToIncrement(daysNs, nsPerDay, inc, mode, false).Quo(day)
	default:
		// fold the units finer than (and including) unit
		var fine Integer
		for u := Nanosecond; u <= unit; u++ {
			fine = fine.Add(intOf(d.Get(u)).MulInt64(nanosPer(u)))
		}
		n := nanosPer(unit)
		count = roundToIncrement(fine, n, inc, mode, false).Quo(intOf(n))
	}

	v, err := count.mustInt64()
	if err != nil {
		return Duration{}, err
	}
	c := d.components()
	for u := Nanosecond; u < unit; u++ {
		c[unitIndex(u)] = 0
	}
	c[unitIndex(unit)] = v
	debugRound("duration", unit, inc, mode, v)
	return durationOf(c), nil
}

// roundYears returns the rounded number of years in d, treating the
// remainder as a fraction of the year that follows.
func roundYears(d Duration, daysNs Integer, inc int64, mode RoundingMode, rel anchor) (Integer, error) {
	yearsLater, err := rel.add(Duration{years: d.years})
	if err != nil {
		return Integer{}, err
	}
	ymwLater, err := rel.add(Duration{years: d.years, months: d.months, weeks: d.weeks})
	if err != nil {
		return Integer{}, err
	}
	day := intOf(nsPerDay)
	daysNs = daysNs.Add(intOf(ymwLater.EpochDays() - yearsLater.EpochDays()).Mul(day))

	// whole years hidden in the remaining days
	whole, _ := daysNs.QuoRem(day)
	wholeDays, err := whole.mustInt64()
	if err != nil {
		return Integer{}, err
	}
	cur := anchor{date: yearsLater, cal: rel.cal}
	daysLater, err := cur.add(Duration{days: wholeDays})
	if err != nil {
		return Integer{}, err
	}
	passed, err := rel.cal.dateUntil(cur.date, daysLater, Year)
	if err != nil {
		return Integer{}, err
	}
	years := d.years + passed.years
	next, spanned, err := cur.move(Duration{years: passed.years})
	if err != nil {
		return Integer{}, err
	}
	daysNs = daysNs.Sub(intOf(spanned).Mul(day))

	sign := int64(daysNs.Sign())
	if sign == 0 {
		sign = 1
	}
	_, oneYear, err := next.move(Duration{years: sign})
	if err != nil {
		return Integer{}, err
	}
	return roundFraction(years, daysNs, abs64(oneYear), inc, mode), nil
}

// roundMonths returns the rounded number of months in d.
func roundMonths(d Duration, daysNs Integer, inc int64, mode RoundingMode, rel anchor) (Integer, error) {
	ymLater, err := rel.add(Duration{years: d.years, months: d.months})
	if err != nil {
		return Integer{}, err
	}
	ymwLater, err := rel.add(Duration{years: d.years, months: d.months, weeks: d.weeks})
	if err != nil {
		return Integer{}, err
	}
	day := intOf(nsPerDay)
	daysNs = daysNs.Add(intOf(ymwLater.EpochDays() - ymLater.EpochDays()).Mul(day))

	cur := anchor{date: ymLater, cal: rel.cal}
	months, last, err := stepUnits(cur, d.months, &daysNs, Duration{months: 1})
	if err != nil {
		return Integer{}, err
	}
	return roundFraction(months, daysNs, last, inc, mode), nil
}

// roundWeeks returns the rounded number of weeks in d.
func roundWeeks(d Duration, daysNs Integer, inc int64, mode RoundingMode, rel anchor) (Integer, error) {
	ymwLater, err := rel.add(Duration{years: d.years, months: d.months, weeks: d.weeks})
	if err != nil {
		return Integer{}, err
	}
	cur := anchor{date: ymwLater, cal: rel.cal}
	weeks, last, err := stepUnits(cur, d.weeks, &daysNs, Duration{weeks: 1})
	if err != nil {
		return Integer{}, err
	}
	return roundFraction(weeks, daysNs, last, inc, mode), nil
}

// stepUnits moves cur by one unit at a time, in the direction of
// daysNs, while a whole unit still fits within daysNs. It returns the
// updated count and the length in days of the unit that did not fit.
func stepUnits(cur anchor, count int64, daysNs *Integer, one Duration) (int64, int64, error) {
	day := intOf(nsPerDay)
	sign := int64(daysNs.Sign())
	if sign == 0 {
		sign = 1
	}
	if sign < 0 {
		one = one.Negated()
	}

	next, span, err := cur.move(one)
	if err != nil {
		return 0, 0, err
	}
	for daysNs.Abs().Cmp(intOf(abs64(span)).Mul(day)) >= 0 {
		count += sign
		*daysNs = daysNs.Sub(intOf(span).Mul(day))
		cur = next
		if next, span, err = cur.move(one); err != nil {
			return 0, 0, err
		}
	}
	return count, abs64(span), nil
}

// roundFraction rounds whole + daysNs/(unitDays days) to a multiple
// of inc, with duration tie-break semantics.
func roundFraction(whole int64, daysNs Integer, unitDays, inc int64, mode RoundingMode) Integer {
	den := intOf(unitDays).MulInt64(nsPerDay)
	num := intOf(whole).Mul(den).Add(daysNs)
	return roundQuotient(num, den.MulInt64(inc), mode, false).MulInt64(inc)
}
