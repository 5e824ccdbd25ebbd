package temporal

/*
disamb.go contains the resolver which converts a wall-clock reading
in a time zone to an exact Instant, applying the disambiguation and
offset policies.
*/

/*
InstantFor returns the [Instant] at which the wall clock of tz reads
dt, choosing among zero or two candidates per d:

  - inside a gap, [DisambiguateCompatible] and [DisambiguateLater]
    move dt forward by the length of the gap, [DisambiguateEarlier]
    moves it backward, and [DisambiguateReject] fails with
    [ErrNonexistentLocalTime]
  - inside an overlap, [DisambiguateCompatible] and
    [DisambiguateEarlier] pick the earlier instant,
    [DisambiguateLater] the later one, and [DisambiguateReject] fails
    with [ErrAmbiguousLocalTime]
*/
func InstantFor(tz TimeZone, dt DateTime, d Disambiguation) (i Instant, err error) {
	debugEnter(dt, d)
	defer func() { debugExit(i, err) }()

	return wrapTimeZone(tz).instantFor(dt, d)
}

func (r timeZone) instantFor(dt DateTime, d Disambiguation) (Instant, error) {
	possible, err := r.possibleInstants(dt)
	if err != nil {
		return Instant{}, err
	}
	return r.disambiguate(possible, dt, d)
}

func (r timeZone) disambiguate(possible []Instant, dt DateTime, d Disambiguation) (i Instant, err error) {
	defer func() { debugDisambiguate(r.id(), dt, d, len(possible), i, err) }()

	switch n := len(possible); {
	case n == 1:
		return possible[0], nil
	case n > 1:
		switch d {
		case DisambiguateCompatible, DisambiguateEarlier:
			return possible[0], nil
		case DisambiguateLater:
			return possible[n-1], nil
		}
		return Instant{}, ambiguousErrorf(dt.String(), " is ambiguous in ", r.id())
	}

	if d == DisambiguateReject {
		return Instant{}, nonexistentErrorf(dt.String(), " does not exist in ", r.id())
	}

	// the gap length is the offset change across it
	local := dt.epochNs()
	before, err := r.offset(Instant{ns: local.AddInt64(-nsPerDay)})
	if err != nil {
		return Instant{}, err
	}
	after, err := r.offset(Instant{ns: local.AddInt64(nsPerDay)})
	if err != nil {
		return Instant{}, err
	}
	gap := after - before

	shift := gap
	if d == DisambiguateEarlier {
		shift = -gap
	}
	moved, err := dt.addNanos(shift)
	if err != nil {
		return Instant{}, err
	}
	if possible, err = r.possibleInstants(moved); err != nil {
		return Instant{}, err
	}
	if len(possible) == 0 {
		return Instant{}, nonexistentErrorf(dt.String(), " cannot be resolved in ", r.id())
	}
	if d == DisambiguateEarlier {
		return possible[0], nil
	}
	return possible[len(possible)-1], nil
}

// offsetKind records how a UTC offset accompanied a wall-clock time.
type offsetKind int

const (
	offsetWall   offsetKind = iota // no offset supplied
	offsetExact                    // "Z": the instant is exact
	offsetOption                   // a numeric offset, subject to OffsetPolicy
)

// resolveOffset converts dt in the zone to an Instant, reconciling a
// supplied offset (offNs) per policy.
func (r timeZone) resolveOffset(dt DateTime, kind offsetKind, offNs int64, d Disambiguation, policy OffsetPolicy) (Instant, error) {
	if kind == offsetWall || (kind == offsetOption && policy == OffsetIgnore) {
		return r.instantFor(dt, d)
	}

	if kind == offsetExact || policy == OffsetUse {
		return instantOf(dt.epochNs().AddInt64(-offNs))
	}

	possible, err := r.possibleInstants(dt)
	if err != nil {
		return Instant{}, err
	}
	for _, c := range possible {
		off, err := r.offset(c)
		if err != nil {
			return Instant{}, err
		}
		if off == offNs {
			debugDisambiguate("offset match", r.id(), dt, offNs)
			return c, nil
		}
	}

	if policy == OffsetReject {
		return Instant{}, offsetErrorf("offset ", formatOffset(offNs), " is invalid for ", dt.String(), " in ", r.id())
	}
	return r.disambiguate(possible, dt, d)
}
