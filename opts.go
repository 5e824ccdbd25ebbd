package temporal

/*
opts.go contains the policy types and the functional [Option] values
which deliver instructions to the arithmetic, rounding, difference
and conversion operations.
*/

/*
RoundingMode describes how a value is rounded to a multiple of an
increment. See the [RoundNearest], [RoundCeil], [RoundTrunc] and
[RoundFloor] constants.
*/
type RoundingMode int

const (
	// RoundNearest rounds to the closer multiple. Ties round away from
	// zero for a Duration and toward positive infinity for Instant and
	// civil values.
	RoundNearest RoundingMode = iota
	RoundCeil                 // toward the end of time
	RoundTrunc                // toward zero for a Duration; as floor otherwise
	RoundFloor                // toward the start of time
)

/*
Overflow describes how out-of-range field values are treated.
*/
type Overflow int

const (
	OverflowConstrain Overflow = iota // clamp into range
	OverflowReject                    // fail with ErrOutOfRange
	OverflowBalance                   // carry into the next larger unit (Duration only)
)

/*
Disambiguation selects one instant when a wall-clock time occurs
zero or two times in a time zone.
*/
type Disambiguation int

const (
	DisambiguateCompatible Disambiguation = iota
	DisambiguateEarlier
	DisambiguateLater
	DisambiguateReject
)

/*
OffsetPolicy governs a UTC offset supplied alongside a time zone, as
when parsing "2020-11-01T01:30-07:00[America/Los_Angeles]".
*/
type OffsetPolicy int

const (
	OffsetReject OffsetPolicy = iota // use the offset; fail if the zone disagrees
	OffsetUse                        // always use the offset
	OffsetPrefer                     // use the offset if the zone agrees, else disambiguate
	OffsetIgnore                     // disregard the offset
)

var (
	roundingModeNames   = []string{"nearest", "ceil", "trunc", "floor"}
	overflowNames       = []string{"constrain", "reject", "balance"}
	disambiguationNames = []string{"compatible", "earlier", "later", "reject"}
	offsetPolicyNames   = []string{"reject", "use", "prefer", "ignore"}
)

func nameOf(names []string, i int) string {
	if 0 <= i && i < len(names) {
		return names[i]
	}
	return "<invalid>"
}

func indexOf(names []string, s string) int {
	for i := range names {
		if streqf(names[i], s) {
			return i
		}
	}
	return -1
}

/*
String returns the string representation of the receiver instance.
*/
func (r RoundingMode) String() string { return nameOf(roundingModeNames, int(r)) }

/*
String returns the string representation of the receiver instance.
*/
func (r Overflow) String() string { return nameOf(overflowNames, int(r)) }

/*
String returns the string representation of the receiver instance.
*/
func (r Disambiguation) String() string { return nameOf(disambiguationNames, int(r)) }

/*
String returns the string representation of the receiver instance.
*/
func (r OffsetPolicy) String() string { return nameOf(offsetPolicyNames, int(r)) }

/*
ParseRoundingMode returns the [RoundingMode] named by s.
*/
func ParseRoundingMode(s string) (RoundingMode, error) {
	if i := indexOf(roundingModeNames, s); i >= 0 {
		return RoundingMode(i), nil
	}
	return 0, errorBadRoundingMode
}

/*
ParseOverflow returns the [Overflow] named by s.
*/
func ParseOverflow(s string) (Overflow, error) {
	if i := indexOf(overflowNames, s); i >= 0 {
		return Overflow(i), nil
	}
	return 0, errorBadOverflow
}

/*
ParseDisambiguation returns the [Disambiguation] named by s.
*/
func ParseDisambiguation(s string) (Disambiguation, error) {
	if i := indexOf(disambiguationNames, s); i >= 0 {
		return Disambiguation(i), nil
	}
	return 0, errorBadDisamb
}

/*
ParseOffsetPolicy returns the [OffsetPolicy] named by s.
*/
func ParseOffsetPolicy(s string) (OffsetPolicy, error) {
	if i := indexOf(offsetPolicyNames, s); i >= 0 {
		return OffsetPolicy(i), nil
	}
	return 0, errorBadOffsetPolicy
}

/*
Option implements a closure which delivers a single instruction to
an operation. Operations ignore options which do not concern them.
*/
type Option func(*options)

type options struct {
	largest    Unit
	smallest   Unit
	increment  int64
	mode       RoundingMode
	modeSet    bool
	relativeTo RelativeTo
	overflow   Overflow
	overSet    bool
	disamb     Disambiguation
	offset     OffsetPolicy
	offsetSet  bool
	err        error
}

/*
WithLargestUnit sets the coarsest unit a result may contain.
*/
func WithLargestUnit(u Unit) Option {
	return func(o *options) {
		if !u.valid() {
			o.fail(optionsErrorf("invalid largestUnit ", int(u)))
		}
		o.largest = u
	}
}

/*
WithSmallestUnit sets the unit to which a result is rounded.
*/
func WithSmallestUnit(u Unit) Option {
	return func(o *options) {
		if !u.valid() {
			o.fail(optionsErrorf("invalid smallestUnit ", int(u)))
		}
		o.smallest = u
	}
}

/*
WithIncrement sets the rounding increment, counted in the smallest
unit. The default is one (1).
*/
func WithIncrement(n int64) Option {
	return func(o *options) {
		if n < 1 {
			o.fail(errorIncrement(n, 0, false))
		}
		o.increment = n
	}
}

/*
WithRoundingMode sets the rounding mode.
*/
func WithRoundingMode(m RoundingMode) Option {
	return func(o *options) {
		if m < RoundNearest || m > RoundFloor {
			o.fail(errorBadRoundingMode)
		}
		o.mode, o.modeSet = m, true
	}
}

/*
WithRelativeTo sets the anchor against which calendar units are
measured. [Date], [DateTime] and [ZonedDateTime] qualify.
*/
func WithRelativeTo(r RelativeTo) Option {
	return func(o *options) { o.relativeTo = r }
}

/*
WithOverflow sets the overflow policy.
*/
func WithOverflow(v Overflow) Option {
	return func(o *options) {
		if v < OverflowConstrain || v > OverflowBalance {
			o.fail(errorBadOverflow)
		}
		o.overflow, o.overSet = v, true
	}
}

/*
WithDisambiguation sets the disambiguation policy.
*/
func WithDisambiguation(d Disambiguation) Option {
	return func(o *options) {
		if d < DisambiguateCompatible || d > DisambiguateReject {
			o.fail(errorBadDisamb)
		}
		o.disamb = d
	}
}

/*
WithOffset sets the offset policy.
*/
func WithOffset(p OffsetPolicy) Option {
	return func(o *options) {
		if p < OffsetReject || p > OffsetIgnore {
			o.fail(errorBadOffsetPolicy)
		}
		o.offset, o.offsetSet = p, true
	}
}

func (r *options) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func newOptions(opts []Option) (o options, err error) {
	o.increment = 1
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	err = o.err
	return
}

func (r options) roundingMode(def RoundingMode) RoundingMode {
	if r.modeSet {
		return r.mode
	}
	return def
}

func (r options) overflowOr(def Overflow) Overflow {
	if r.overSet {
		return r.overflow
	}
	return def
}

func (r options) offsetOr(def OffsetPolicy) OffsetPolicy {
	if r.offsetSet {
		return r.offset
	}
	return def
}

/*
String returns the string representation of the receiver instance.
*/
func (r options) String() string {
	parts := []string{
		"largestUnit:" + r.largest.String(),
		"smallestUnit:" + r.smallest.String(),
		"roundingIncrement:" + fmtInt(r.increment, 10),
		"roundingMode:" + r.mode.String(),
		"overflow:" + r.overflow.String(),
		"disambiguation:" + r.disamb.String(),
		"offset:" + r.offset.String(),
	}
	if r.relativeTo != nil {
		parts = append(parts, "relativeTo:"+r.relativeTo.String())
	}
	return join(parts, ",")
}
