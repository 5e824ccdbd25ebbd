package temporal

/*
time.go contains the TimeOfDay type: a wall-clock time with no date,
calendar or time zone.
*/

import "time"

/*
TimeOfDay implements a wall-clock time from 00:00 to 23:59:59.999999999
at nanosecond precision. The zero value is midnight.
*/
type TimeOfDay struct {
	ns int64 // since midnight, [0, nsPerDay)
}

/*
NewTimeOfDay returns an instance of [TimeOfDay] alongside an error
following an attempt to marshal x.

Input may be an ISO-8601 time string (or []byte) such as "14:23:30.5"
or "142330", a [time.Time] (whose wall clock is used), a [Fields]
instance (rejecting out-of-range values), or another [TimeOfDay].

Any [Constraint] values are applied to the result before returning.
*/
func NewTimeOfDay(x any, constraints ...Constraint[TimeOfDay]) (t TimeOfDay, err error) {
	switch tv := x.(type) {
	case string:
		t, err = ParseTimeOfDay(tv)
	case []byte:
		t, err = ParseTimeOfDay(string(tv))
	case time.Time:
		h, m, s := tv.Clock()
		t = timeOfDayOf(int64(h)*nsPerHour + int64(m)*nsPerMinute +
			int64(s)*nsPerSecond + int64(tv.Nanosecond()))
	case Fields:
		t, err = TimeOfDayFromFields(tv, OverflowReject)
	case TimeOfDay:
		t = tv
	default:
		err = fieldErrorf("unsupported time input type")
	}

	if len(constraints) > 0 && err == nil {
		var group ConstraintGroup[TimeOfDay] = constraints
		err = group.Constrain(t)
	}

	if err != nil {
		t = TimeOfDay{}
	}

	return
}

/*
MakeTimeOfDay returns the [TimeOfDay] with the given fields. Under
[OverflowConstrain] each field is clamped into its range; under
[OverflowReject] an out-of-range field fails with [ErrOutOfRange].
*/
func MakeTimeOfDay(hour, minute, second, milli, micro, nano int, o Overflow) (TimeOfDay, error) {
	v := [6]int{hour, minute, second, milli, micro, nano}
	max := [6]int{23, 59, 59, 999, 999, 999}
	for i := range v {
		if v[i] >= 0 && v[i] <= max[i] {
			continue
		}
		if o != OverflowConstrain {
			return TimeOfDay{}, rangeErrorf("time field ", v[i], " outside of 0..", max[i])
		}
		v[i] = clamp(v[i], 0, max[i])
	}
	return timeOfDayOf(int64(v[0])*nsPerHour + int64(v[1])*nsPerMinute + int64(v[2])*nsPerSecond +
		int64(v[3])*nsPerMilli + int64(v[4])*nsPerMicro + int64(v[5])), nil
}

/*
TimeOfDayFromFields returns the [TimeOfDay] described by f. Absent
fields are zero. See [MakeTimeOfDay] for o.
*/
func TimeOfDayFromFields(f Fields, o Overflow) (TimeOfDay, error) {
	return MakeTimeOfDay(f[FieldHour], f[FieldMinute], f[FieldSecond],
		f[FieldMillisecond], f[FieldMicrosecond], f[FieldNanosecond], o)
}

// timeOfDayOf wraps ns into a single day.
func timeOfDayOf(ns int64) TimeOfDay {
	_, r := floorDiv(ns, nsPerDay)
	return TimeOfDay{ns: r}
}

func (r TimeOfDay) Hour() int        { return int(r.ns / nsPerHour) }
func (r TimeOfDay) Minute() int      { return int(r.ns / nsPerMinute % 60) }
func (r TimeOfDay) Second() int      { return int(r.ns / nsPerSecond % 60) }
func (r TimeOfDay) Millisecond() int { return int(r.ns / nsPerMilli % 1000) }
func (r TimeOfDay) Microsecond() int { return int(r.ns / nsPerMicro % 1000) }
func (r TimeOfDay) Nanosecond() int  { return int(r.ns % 1000) }

/*
Fields returns the hour through nanosecond fields of the receiver
instance.
*/
func (r TimeOfDay) Fields() Fields {
	return Fields{
		FieldHour:        r.Hour(),
		FieldMinute:      r.Minute(),
		FieldSecond:      r.Second(),
		FieldMillisecond: r.Millisecond(),
		FieldMicrosecond: r.Microsecond(),
		FieldNanosecond:  r.Nanosecond(),
	}
}

/*
With returns a new [TimeOfDay] in which the fields present in f
replace those of the receiver instance.
*/
func (r TimeOfDay) With(f Fields, o Overflow) (TimeOfDay, error) {
	return TimeOfDayFromFields(mergeFields(r.Fields(), f), o)
}

/*
Compare returns -1, 0 or 1 if the receiver instance is earlier than,
equal to or later than x.
*/
func (r TimeOfDay) Compare(x TimeOfDay) int { return signOf(r.ns - x.ns) }

/*
Equal returns a Boolean value indicative of the receiver instance
and x being the same time.
*/
func (r TimeOfDay) Equal(x TimeOfDay) bool { return r.ns == x.ns }

/*
Add returns the receiver instance moved forward by the hours through
nanoseconds of d, wrapping around midnight. Days and calendar units
are ignored.
*/
func (r TimeOfDay) Add(d Duration) TimeOfDay { return r.addNanos(d.timeNanos()) }

/*
Subtract returns the receiver instance moved backward by the hours
through nanoseconds of d. See [TimeOfDay.Add].
*/
func (r TimeOfDay) Subtract(d Duration) TimeOfDay { return r.addNanos(d.timeNanos().Neg()) }

func (r TimeOfDay) addNanos(ns Integer) TimeOfDay {
	_, m := ns.AddInt64(r.ns).DivMod(intOf(nsPerDay))
	return TimeOfDay{ns: m.native}
}

/*
Until returns the [Duration] from the receiver instance to other,
within the same day. Units are limited to [Hour] and finer;
[WithLargestUnit] defaults to [Hour].
*/
func (r TimeOfDay) Until(other TimeOfDay, opts ...Option) (Duration, error) {
	s, err := resolveDiffOptions(opts, Hour, Nanosecond, Hour, "TimeOfDay difference")
	if err != nil {
		return Duration{}, err
	}
	return differenceInstant(intOf(r.ns), intOf(other.ns), s)
}

/*
Since returns the [Duration] from other to the receiver instance.
See [TimeOfDay.Until].
*/
func (r TimeOfDay) Since(other TimeOfDay, opts ...Option) (Duration, error) {
	s, err := resolveDiffOptions(opts, Hour, Nanosecond, Hour, "TimeOfDay difference")
	if err != nil {
		return Duration{}, err
	}
	return since(func(s diffSettings) (Duration, error) {
		return differenceInstant(intOf(r.ns), intOf(other.ns), s)
	}, s)
}

/*
Round returns the receiver instance rounded to a multiple of the
increment of the smallest unit, wrapping around midnight.

[WithSmallestUnit] is required and must be [Hour] or finer; the
increment must evenly divide, and be less than, the unit's ceiling.
[WithRoundingMode] defaults to [RoundNearest], ties rounding up.
*/
func (r TimeOfDay) Round(opts ...Option) (TimeOfDay, error) {
	o, err := newOptions(opts)
	if err != nil {
		return TimeOfDay{}, err
	}
	if o.smallest == Auto {
		return TimeOfDay{}, optionsErrorf("smallestUnit is required")
	}
	if o.smallest > Hour {
		return TimeOfDay{}, errorDisallowedUnit(o.smallest, "TimeOfDay.Round")
	}
	if err = validateIncrement(o.increment, ceilingOf(o.smallest), false); err != nil {
		return TimeOfDay{}, err
	}
	ns := roundInstant(intOf(r.ns), o.smallest, o.increment, o.roundingMode(RoundNearest))
	return TimeOfDay{}.addNanos(ns), nil
}

/*
ToDateTime returns the [DateTime] combining d with the receiver
instance.
*/
func (r TimeOfDay) ToDateTime(d Date) (DateTime, error) { return d.ToDateTime(r) }

/*
String returns the ISO-8601 representation of the receiver instance,
"hh:mm:ss" followed by the shortest exact fraction of a second.
*/
func (r TimeOfDay) String() string { return formatTime(r, autoPrecision) }
