package temporal

/*
diff.go contains the DifferenceEngine, which computes the signed
Duration between two values of the same kind.
*/

// diffSettings carries the resolved options of an until or since
// operation.
type diffSettings struct {
	largest  Unit
	smallest Unit
	inc      int64
	mode     RoundingMode
}

// resolveDiffOptions validates opts for a difference whose units must
// fall within [lo, hi]. Auto selects the coarser of def and the
// smallest unit.
func resolveDiffOptions(opts []Option, def, lo, hi Unit, op string) (s diffSettings, err error) {
	var o options
	if o, err = newOptions(opts); err != nil {
		return
	}

	s.smallest = o.smallest
	if s.smallest == Auto {
		s.smallest = lo
	}
	if s.smallest < lo || s.smallest > hi {
		return s, errorDisallowedUnit(s.smallest, op)
	}

	s.largest = o.largest
	if s.largest == Auto {
		s.largest = larger(def, s.smallest)
	}
	if s.largest < lo || s.largest > hi {
		return s, errorDisallowedUnit(s.largest, op)
	}
	if s.largest < s.smallest {
		return s, errorUnitRange
	}

	s.inc = o.increment
	if err = validateIncrement(s.inc, ceilingOf(s.smallest), false); err != nil {
		return
	}
	s.mode = o.roundingMode(RoundNearest)
	return
}

// negated returns s with its rounding direction mirrored, so that a
// since operation may be computed as a negated until.
func (r diffSettings) negated() diffSettings {
	switch r.mode {
	case RoundCeil:
		r.mode = RoundFloor
	case RoundFloor:
		r.mode = RoundCeil
	}
	return r
}

func (r diffSettings) rounds() bool { return r.smallest != Nanosecond || r.inc != 1 }

// differenceInstant returns b-a balanced up to s.largest, which must
// not exceed Hour.
func differenceInstant(a, b Integer, s diffSettings) (out Duration, err error) {
	debugEnter(a, b, s.largest, s.smallest)
	defer func() { debugExit(out, err) }()

	ns := b.Sub(a)
	if s.rounds() {
		ns = roundToIncrement(ns, nanosPer(s.smallest), s.inc, s.mode, false)
	}
	debugDifference("instant", a, b, ns)
	return balanceNanos(ns, s.largest)
}

// differenceDateTime returns the unrounded difference between the
// civil date-times (d1, t1) and (d2, t2), walking from the first.
// The date part is delegated to the calendar; the sub-day remainder
// is balanced up to largest.
func differenceDateTime(d1 ISODate, t1 int64, d2 ISODate, t2 int64, cal calendar, largest Unit) (Duration, error) {
	timeNs := t2 - t1
	timeSign := signOf(timeNs)
	dateSign := d2.Compare(d1)

	// borrow a day from the end date when the time part runs against
	// the date part; calendar units stay anchored on d1
	if timeSign != 0 && dateSign == -timeSign {
		d2 = ISODateFromEpochDays(d2.EpochDays() + int64(timeSign))
		timeNs -= int64(timeSign) * nsPerDay
	}

	date, err := cal.dateUntil(d1, d2, larger(Day, largest))
	if err != nil {
		return Duration{}, err
	}

	t, err := balanceNanos(intOf(date.days).MulInt64(nsPerDay).AddInt64(timeNs), largest)
	if err != nil {
		return Duration{}, err
	}
	out := date.withTime(t)
	out.days = t.days
	debugDifference("civil", d1, d2, largest, out)
	return out, nil
}

// differenceCivil returns the difference from (d1, t1) to (d2, t2),
// rounded and balanced per s.
func differenceCivil(d1 ISODate, t1 int64, d2 ISODate, t2 int64, cal calendar, s diffSettings) (diff Duration, err error) {
	debugEnter(d1, d2, s.largest, s.smallest)
	defer func() { debugExit(diff, err) }()

	if diff, err = differenceDateTime(d1, t1, d2, t2, cal, s.largest); err != nil || !s.rounds() {
		return
	}

	rel := &anchor{date: d1, cal: cal}
	if diff, err = roundDuration(diff, s.inc, s.smallest, s.mode, rel); err != nil {
		return Duration{}, err
	}
	if diff, err = balanceTime(diff, s.largest); err != nil {
		return Duration{}, err
	}
	return balanceRelative(diff, s.largest, rel)
}

// since computes the difference from other to the receiver as the
// negation of an until from the receiver, with mirrored rounding.
func since(until func(diffSettings) (Duration, error), s diffSettings) (Duration, error) {
	d, err := until(s.negated())
	if err != nil {
		return Duration{}, err
	}
	return d.Negated(), nil
}
