package temporal

/*
zone.go contains the built-in time zones: fixed UTC offsets, and IANA
zones backed by the tz database of the time package.
*/

import (
	"time"

	"golang.org/x/exp/slices"
)

// fixedZone is a zone with a single, unchanging UTC offset.
type fixedZone struct {
	id     string
	offset int64
}

var utcZone TimeZone = fixedZone{id: "UTC"}

/*
UTC returns the [TimeZone] with a constant offset of zero, whose
identifier is "UTC".
*/
func UTC() TimeZone { return utcZone }

/*
FixedTimeZone returns a [TimeZone] with the constant UTC offset of
offsetNs nanoseconds. Its identifier is the offset string, such as
"+05:30". The magnitude of offsetNs must be less than one day.
*/
func FixedTimeZone(offsetNs int64) (TimeZone, error) {
	if abs64(offsetNs) >= nsPerDay {
		return nil, rangeErrorf("offset ", offsetNs, "ns exceeds one day")
	}
	return fixedZone{id: formatOffset(offsetNs), offset: offsetNs}, nil
}

func (r fixedZone) ID() string                           { return r.id }
func (r fixedZone) String() string                       { return r.id }
func (r fixedZone) OffsetNanosecondsFor(_ Instant) int64 { return r.offset }

func (r fixedZone) PossibleInstantsFor(dt DateTime) ([]Instant, error) {
	i, err := instantOf(dt.epochNs().AddInt64(-r.offset))
	if err != nil {
		return nil, err
	}
	return []Instant{i}, nil
}

func (r fixedZone) NextTransition(_ Instant) (Instant, bool)     { return Instant{}, false }
func (r fixedZone) PreviousTransition(_ Instant) (Instant, bool) { return Instant{}, false }

// ianaZone is a named zone of the tz database.
type ianaZone struct {
	id  string
	loc *time.Location
}

// loadIANAZone loads the tz database entry named id.
func loadIANAZone(id string) (TimeZone, error) {
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, rangeErrorf("unknown time zone '", id, "': ", err)
	}
	return ianaZone{id: id, loc: loc}, nil
}

func (r ianaZone) ID() string     { return r.id }
func (r ianaZone) String() string { return r.id }

func (r ianaZone) OffsetNanosecondsFor(i Instant) int64 {
	_, off := i.Time().In(r.loc).Zone()
	return int64(off) * nsPerSecond
}

// PossibleInstantsFor tries each offset in effect within a day of dt
// and keeps those that map back onto dt.
func (r ianaZone) PossibleInstantsFor(dt DateTime) ([]Instant, error) {
	local := dt.epochNs()
	var offs []int64
	for _, probe := range []int64{-nsPerDay, nsPerDay} {
		off := r.OffsetNanosecondsFor(Instant{ns: local.AddInt64(probe)})
		if len(offs) == 0 || offs[0] != off {
			offs = append(offs, off)
		}
	}

	var out []Instant
	for _, off := range offs {
		cand := Instant{ns: local.AddInt64(-off)}
		if r.OffsetNanosecondsFor(cand) == off {
			if !instantInRange(cand.ns) {
				return nil, errorInstantRange
			}
			out = append(out, cand)
		}
	}
	slices.SortFunc(out, func(a, b Instant) int { return a.Compare(b) })
	return out, nil
}

// NextTransition walks zone periods forward, skipping those which
// change only the abbreviation.
func (r ianaZone) NextTransition(i Instant) (Instant, bool) {
	t := i.Time().In(r.loc)
	_, off := t.Zone()
	for {
		_, end := t.ZoneBounds()
		if end.IsZero() {
			return Instant{}, false
		}
		next, err := InstantFromTime(end)
		if err != nil {
			return Instant{}, false
		}
		if _, o := end.In(r.loc).Zone(); o != off {
			return next, true
		}
		t = end.In(r.loc)
	}
}

// PreviousTransition walks zone periods backward, skipping those
// which change only the abbreviation.
func (r ianaZone) PreviousTransition(i Instant) (Instant, bool) {
	t := i.Time().Add(-time.Nanosecond).In(r.loc)
	for {
		start, _ := t.ZoneBounds()
		if start.IsZero() {
			return Instant{}, false
		}
		before := start.Add(-time.Nanosecond).In(r.loc)
		_, o1 := before.Zone()
		_, o2 := start.In(r.loc).Zone()
		if o1 != o2 {
			prev, err := InstantFromTime(start)
			return prev, err == nil
		}
		t = before
	}
}
