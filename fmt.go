package temporal

/*
fmt.go contains the ISO-8601 formatters for every value kind.
*/

// formatISOYear writes years 0 through 9999 as four digits and every
// other year as a sign and six digits.
func formatISOYear(y int) string {
	if 0 <= y && y <= 9999 {
		return pad(int64(y), 4)
	}
	sign := "+"
	if y < 0 {
		sign = "-"
	}
	return sign + pad(abs64(int64(y)), 6)
}

func formatDate(d ISODate) string {
	return formatISOYear(d.Year) + "-" + pad(int64(d.Month), 2) + "-" + pad(int64(d.Day), 2)
}

// precision selects how much of a time is printed.
type precision struct {
	unit   Unit // Minute, Second or finer; rounding granularity
	inc    int64
	mode   RoundingMode
	digits int // fractional digits; -1 for the shortest exact form
}

var autoPrecision = precision{unit: Nanosecond, inc: 1, mode: RoundTrunc, digits: -1}

// newPrecision reads [WithSmallestUnit] and [WithRoundingMode] as a
// string precision.
func newPrecision(opts []Option) (p precision, err error) {
	var o options
	if o, err = newOptions(opts); err != nil {
		return
	}
	p = autoPrecision
	p.mode = o.roundingMode(RoundTrunc)
	switch o.smallest {
	case Auto:
	case Minute, Second:
		p.unit, p.digits = o.smallest, 0
	case Millisecond:
		p.unit, p.digits = o.smallest, 3
	case Microsecond:
		p.unit, p.digits = o.smallest, 6
	case Nanosecond:
		p.unit, p.digits = o.smallest, 9
	default:
		err = errorDisallowedUnit(o.smallest, "string precision")
	}
	return
}

// formatTime writes t as "hh:mm", "hh:mm:ss" or "hh:mm:ss.fff…"
// according to p. The caller has already rounded t.
func formatTime(t TimeOfDay, p precision) string {
	s := pad(int64(t.Hour()), 2) + ":" + pad(int64(t.Minute()), 2)
	if p.unit == Minute {
		return s
	}
	s += ":" + pad(int64(t.Second()), 2)
	return s + formatFraction(t.ns%nsPerSecond, p.digits)
}

// formatFraction writes ns as a decimal fraction of a second with the
// given number of digits, or the shortest exact form when digits is
// negative. Nothing is written for an empty fraction.
func formatFraction(ns int64, digits int) string {
	if digits == 0 || (digits < 0 && ns == 0) {
		return ""
	}
	f := pad(ns, 9)
	if digits < 0 {
		f = trimR(f, "0")
	} else {
		f = f[:digits]
	}
	return "." + f
}

// formatOffset writes offset nanoseconds as "±hh:mm", with seconds
// and a fraction only when non-zero.
func formatOffset(ns int64) string {
	sign := "+"
	if ns < 0 {
		sign = "-"
		ns = -ns
	}
	h, m, s := ns/nsPerHour, ns/nsPerMinute%60, ns/nsPerSecond%60
	out := sign + pad(h, 2) + ":" + pad(m, 2)
	if frac := ns % nsPerSecond; s != 0 || frac != 0 {
		out += ":" + pad(s, 2) + formatFraction(frac, -1)
	}
	return out
}

// formatCalendar writes the calendar annotation, omitted for ISO-8601.
func formatCalendar(cal calendar) string {
	if cal.isISO() {
		return ""
	}
	return "[c=" + cal.id() + "]"
}

// formatDuration writes d as "[-]PnYnMnWnDTnHnMn.fffS". Sub-second
// components are folded into the seconds with carry.
func formatDuration(d Duration) string {
	if d.Blank() {
		return "PT0S"
	}
	a := d.Abs()

	b := newStrBuilder()
	if d.Sign() < 0 {
		b.WriteString("-")
	}
	b.WriteString("P")
	for _, p := range []struct {
		v int64
		d string
	}{{a.years, "Y"}, {a.months, "M"}, {a.weeks, "W"}, {a.days, "D"}} {
		if p.v != 0 {
			b.WriteString(fmtInt(p.v, 10) + p.d)
		}
	}

	sub := intOf(a.milliseconds).MulInt64(nsPerMilli).
		Add(intOf(a.microseconds).MulInt64(nsPerMicro)).
		AddInt64(a.nanoseconds)
	carry, frac := sub.QuoRem(intOf(nsPerSecond))
	secs := intOf(a.seconds).Add(carry)

	var t string
	if a.hours != 0 {
		t += fmtInt(a.hours, 10) + "H"
	}
	if a.minutes != 0 {
		t += fmtInt(a.minutes, 10) + "M"
	}
	if !secs.IsZero() || !frac.IsZero() {
		t += secs.String() + formatFraction(frac.native, -1) + "S"
	}
	if t != "" {
		b.WriteString("T" + t)
	}
	return b.String()
}
