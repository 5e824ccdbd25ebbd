package temporal

/*
tz.go contains the TimeZone protocol, its optional capabilities and
the dispatch wrapper which synthesizes whatever an implementation
leaves out.
*/

/*
TimeZone describes the minimal capability set of a time zone
implementation.

OffsetNanosecondsFor returns the UTC offset in effect at an [Instant];
its magnitude must be less than one day. PossibleInstantsFor returns
every [Instant] at which the wall clock of the zone reads the given
[DateTime]: none inside a transition gap, two inside an overlap, one
otherwise. The calendar of the DateTime is irrelevant to the result.

Implementations may additionally satisfy [NextTransitioner] and
[PreviousTransitioner]; when they do not, transitions are found by
searching offsets over a bounded horizon (see [Config]).
*/
type TimeZone interface {
	ID() string
	OffsetNanosecondsFor(Instant) int64
	PossibleInstantsFor(DateTime) ([]Instant, error)
}

/*
NextTransitioner is satisfied by a [TimeZone] which reports its next
offset transition strictly after an [Instant]. The Boolean is false
when there is none.
*/
type NextTransitioner interface {
	NextTransition(Instant) (Instant, bool)
}

/*
PreviousTransitioner is satisfied by a [TimeZone] which reports its
most recent offset transition strictly before an [Instant]. The
Boolean is false when there is none.
*/
type PreviousTransitioner interface {
	PreviousTransition(Instant) (Instant, bool)
}

// timeZone is the dispatch wrapper held by every zone-bearing value.
// A zero timeZone dispatches to UTC.
type timeZone struct {
	TimeZone
}

func wrapTimeZone(tz TimeZone) timeZone {
	if tz == nil {
		return timeZone{utcZone}
	}
	if w, ok := tz.(timeZone); ok {
		return w
	}
	return timeZone{tz}
}

func (r timeZone) impl() TimeZone {
	if r.TimeZone == nil {
		return utcZone
	}
	return r.TimeZone
}

func (r timeZone) id() string { return r.impl().ID() }

func (r timeZone) same(x timeZone) bool { return r.id() == x.id() }

// offset returns the validated UTC offset in effect at i.
func (r timeZone) offset(i Instant) (int64, error) {
	off := r.impl().OffsetNanosecondsFor(i)
	if abs64(off) >= nsPerDay {
		return 0, rangeErrorf("offset ", off, "ns of ", r.id(), " exceeds one day")
	}
	return off, nil
}

// dateTimeFor returns the wall-clock reading of the zone at i.
func (r timeZone) dateTimeFor(i Instant, cal calendar) (DateTime, error) {
	off, err := r.offset(i)
	if err != nil {
		return DateTime{}, err
	}
	return localDateTime(i.ns.AddInt64(off), cal), nil
}

// possibleInstants returns the validated, ascending candidates for
// the wall-clock reading dt.
func (r timeZone) possibleInstants(dt DateTime) ([]Instant, error) {
	found, err := r.impl().PossibleInstantsFor(dt)
	if err != nil {
		return nil, err
	}
	for i, c := range found {
		if !instantInRange(c.ns) {
			return nil, errorInstantRange
		}
		if i > 0 && found[i-1].Compare(c) > 0 {
			return nil, zoneErrorf(r.id(), " returned unordered instants for ", dt.String())
		}
	}
	debugTimeZone(r.id(), dt, len(found))
	return found, nil
}

/*
DateTimeFor returns the wall-clock reading of tz at i, in the
calendar cal. Nil tz and cal select UTC and ISO-8601.
*/
func DateTimeFor(tz TimeZone, i Instant, cal Calendar) (DateTime, error) {
	return wrapTimeZone(tz).dateTimeFor(i, wrapCalendar(cal))
}

/*
OffsetStringFor returns the UTC offset of tz at i as "±hh:mm", with
seconds and a fraction appended only when non-zero.
*/
func OffsetStringFor(tz TimeZone, i Instant) (string, error) {
	off, err := wrapTimeZone(tz).offset(i)
	if err != nil {
		return "", err
	}
	return formatOffset(off), nil
}

/*
NextTransition returns the first instant strictly after i at which
the UTC offset of tz changes. The Boolean is false if there is none,
or if none is found within the configured horizon of a zone that
cannot report its own transitions.
*/
func NextTransition(tz TimeZone, i Instant) (Instant, bool) {
	return wrapTimeZone(tz).nextTransition(i)
}

/*
PreviousTransition returns the last instant strictly before i at
which the UTC offset of tz changed. See [NextTransition].
*/
func PreviousTransition(tz TimeZone, i Instant) (Instant, bool) {
	return wrapTimeZone(tz).previousTransition(i)
}

func (r timeZone) nextTransition(i Instant) (Instant, bool) {
	if nt, ok := r.impl().(NextTransitioner); ok {
		return nt.NextTransition(i)
	}
	return r.searchTransition(i, 1)
}

func (r timeZone) previousTransition(i Instant) (Instant, bool) {
	if pt, ok := r.impl().(PreviousTransitioner); ok {
		return pt.PreviousTransition(i)
	}
	return r.searchTransition(i, -1)
}

// transitionStep is the sampling interval of searchTransition. Zones
// that change offset twice within one step may be missed.
const transitionStep = 7 * nsPerDay

// searchTransition samples offsets away from i in the direction dir,
// up to the configured horizon, and bisects the first interval over
// which the offset changes.
func (r timeZone) searchTransition(i Instant, dir int64) (Instant, bool) {
	horizon := int64(config().TransitionHorizon)
	impl := r.impl()
	offAt := func(ns Integer) int64 { return impl.OffsetNanosecondsFor(Instant{ns: ns}) }

	// the transition sought lies in (lo, hi]: offAt(lo) differs from offAt(hi)
	start := i.ns
	if dir < 0 {
		start = start.AddInt64(-1)
	}
	base := offAt(start)

	var lo, hi Integer
	found := false
	for walked := int64(0); walked < horizon; walked += transitionStep {
		step := transitionStep
		if rest := horizon - walked; rest < step {
			step = rest
		}
		next := start.AddInt64(dir * step)
		if !instantInRange(next) {
			next = maxInstantNs
			if dir < 0 {
				next = minInstantNs
			}
		}
		if offAt(next) != base {
			lo, hi = start, next
			if dir < 0 {
				lo, hi = next, start
			}
			found = true
			break
		}
		if next.Eq(start) {
			break
		}
		start = next
	}
	if !found {
		return Instant{}, false
	}

	// bisect, keeping offAt(lo) != offAt(hi)
	loOff := offAt(lo)
	two := intOf(2)
	for hi.Sub(lo).Cmp(intOf(1)) > 0 {
		mid := lo.Add(hi.Sub(lo).Quo(two))
		if offAt(mid) == loOff {
			lo = mid
		} else {
			hi = mid
		}
	}
	debugTimeZone("transition", r.id(), i, hi)
	return Instant{ns: hi}, true
}
