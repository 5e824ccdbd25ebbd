package temporal

/*
rel.go contains the anchor against which calendar units are measured.
*/

/*
RelativeTo is qualified by the values usable as a calendar anchor
for balancing, rounding and comparing durations which contain
calendar units: [Date], [DateTime] and [ZonedDateTime].

A [ZonedDateTime] anchors calendar units by its wall-clock date, and
measures each day by its length in the time zone, so a day across a
transition may be 23 or 25 hours long. Other anchors take days to be
24 hours.
*/
type RelativeTo interface {
	String() string
	anchor() anchor
}

type anchor struct {
	date  ISODate
	cal   calendar
	zoned *ZonedDateTime
}

// relativeAnchor returns the anchor carried by o, or nil.
func (r options) relativeAnchor() *anchor {
	if r.relativeTo == nil {
		return nil
	}
	a := r.relativeTo.anchor()
	return &a
}

// add returns the anchor date moved by the calendar part of d.
func (r anchor) add(d Duration) (ISODate, error) {
	return r.cal.dateAdd(r.date, d.dateOnly(), OverflowConstrain)
}

// daysIn returns the number of days spanned by the calendar part of
// d when applied to the anchor.
func (r anchor) daysIn(d Duration) (int64, error) {
	later, err := r.add(d)
	if err != nil {
		return 0, err
	}
	return later.EpochDays() - r.date.EpochDays(), nil
}

// move returns the anchor moved by d alongside the signed number of
// days that move spanned.
func (r anchor) move(d Duration) (anchor, int64, error) {
	later, err := r.add(d)
	if err != nil {
		return r, 0, err
	}
	return anchor{date: later, cal: r.cal}, later.EpochDays() - r.date.EpochDays(), nil
}

// balanceTime balances the days and time of d up to largest. Days
// follow the wall clock of a zoned anchor once largest reaches Day.
func (r *anchor) balanceTime(d Duration, largest Unit) (Duration, error) {
	if r == nil || r.zoned == nil || largest < Day {
		return balanceTime(d, largest)
	}
	out, _, err := r.zonedDays(d)
	return out, err
}

// zonedDays re-expresses the days and time of d as whole wall-clock
// days of the anchor's zone, counted after the calendar part of d,
// plus an exact remainder balanced up to hours. It also returns the
// point reached after those whole days. The anchor must be zoned.
func (r *anchor) zonedDays(d Duration) (Duration, ZonedDateTime, error) {
	z := *r.zoned
	at, err := z.addDuration(Duration{years: d.years, months: d.months, weeks: d.weeks}, OverflowConstrain)
	if err != nil {
		return Duration{}, z, err
	}
	start := z.withInstant(at)
	end, err := start.addDuration(Duration{days: d.days}.withTime(d), OverflowConstrain)
	if err != nil {
		return Duration{}, z, err
	}

	rest := end.ns.Sub(start.instant.ns)
	sign := int64(rest.Sign())
	cur := start
	var days int64
	if sign != 0 {
		// jump by the 24-hour estimate, then correct day by day
		est, _ := rest.QuoRem(intOf(nsPerDay))
		if days, err = est.mustInt64(); err != nil {
			return Duration{}, z, err
		}
		for days != 0 {
			mid, err := start.addDuration(Duration{days: days}, OverflowConstrain)
			if err != nil {
				return Duration{}, z, err
			}
			if int64(mid.ns.Cmp(end.ns))*sign <= 0 {
				cur = start.withInstant(mid)
				break
			}
			days -= sign
		}
		rest = end.ns.Sub(cur.instant.ns)

		for rest.Sign() != 0 {
			span, err := cur.spanOfDay(sign)
			if err != nil {
				return Duration{}, z, err
			}
			if rest.Abs().Cmp(span.Abs()) < 0 {
				break
			}
			next, err := instantOf(cur.instant.ns.Add(span))
			if err != nil {
				return Duration{}, z, err
			}
			rest = rest.Sub(span)
			days += sign
			cur = cur.withInstant(next)
		}
	}

	t, err := balanceNanos(rest, Hour)
	if err != nil {
		return Duration{}, z, err
	}
	out := d.dateOnly().withTime(t)
	out.days = days
	debugBalance("zoned days", r.zoned, d, out)
	return out, cur, nil
}

// roundDays returns the days of d rounded to inc whole wall-clock days
// of the zoned anchor. The fraction is taken against the length of
// the day that follows the whole days.
func (r *anchor) roundDays(d Duration, inc int64, mode RoundingMode) (Integer, error) {
	z, cur, err := r.zonedDays(d)
	if err != nil {
		return Integer{}, err
	}
	rest := z.timeNanos()
	if rest.IsZero() {
		return intOf(z.days), nil
	}
	span, err := cur.spanOfDay(int64(rest.Sign()))
	if err != nil {
		return Integer{}, err
	}
	dayLen, err := span.Abs().mustInt64()
	if err != nil {
		return Integer{}, err
	}
	total := intOf(z.days).MulInt64(dayLen).Add(rest)
	return roundToIncrement(total, dayLen, inc, mode, false).Quo(intOf(dayLen)), nil
}

// dayNanos returns the days and time of d as nanoseconds of 24-hour
// days, with the time scaled by the length of the zoned day it falls in.
func (r *anchor) dayNanos(d Duration) (Integer, error) {
	z, cur, err := r.zonedDays(d)
	if err != nil {
		return Integer{}, err
	}
	day := intOf(nsPerDay)
	out := intOf(z.days).Mul(day)
	rest := z.timeNanos()
	if rest.IsZero() {
		return out, nil
	}
	span, err := cur.spanOfDay(int64(rest.Sign()))
	if err != nil {
		return Integer{}, err
	}
	scaled, _ := rest.Mul(day).QuoRem(span.Abs())
	return out.Add(scaled), nil
}

func requireAnchor(rel *anchor, why string) error {
	if rel == nil {
		return relativeErrorf(why)
	}
	return nil
}
