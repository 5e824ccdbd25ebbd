package temporal

/*
err.go contains error constructors and literals used frequently
throughout this package.
*/

import "sync"

/*
Error kinds. Every error returned by this package matches exactly one
of these via [errors.Is].
*/
var (
	ErrOutOfRange           error = mkerr("value out of range")
	ErrMixedSign            error = mkerr("mixed-sign duration components")
	ErrInvalidIncrement     error = mkerr("invalid rounding increment")
	ErrRelativeToRequired   error = mkerr("relativeTo is required")
	ErrCalendarMismatch     error = mkerr("calendar mismatch")
	ErrZoneMismatch         error = mkerr("time zone mismatch")
	ErrNonexistentLocalTime error = mkerr("nonexistent local time")
	ErrAmbiguousLocalTime   error = mkerr("ambiguous local time")
	ErrOffsetMismatch       error = mkerr("offset mismatch")
	ErrMalformedText        error = mkerr("malformed text")
	ErrMissingField         error = mkerr("missing field")
	ErrInvalidOption        error = mkerr("invalid option")
)

/*
range errors.
*/
var (
	errorInstantRange  = rangeErr{mkerr("Instant outside of supported range")}
	errorDateTimeRange = rangeErr{mkerr("DateTime outside of supported range")}
	errorDateRange     = rangeErr{mkerr("Date outside of supported range")}
	errorYearMonthRng  = rangeErr{mkerr("YearMonth outside of supported range")}
	errorNonFinite     = rangeErr{mkerr("infinite or NaN values not allowed as duration fields")}
	errorFieldOverflow = rangeErr{mkerr("duration field exceeds int64 range")}
	errorTooManyFields = rangeErr{mkerr("too many duration components; at most ten (10) are allowed")}
)

/*
sign errors.
*/
var (
	errorMixedSign = signErr{mkerr("mixed-sign values not allowed as duration fields")}
)

/*
option errors.
*/
var (
	errorUnitRange       = optionsErr{mkerr("largestUnit cannot be smaller than smallestUnit")}
	errorBadRoundingMode = optionsErr{mkerr("invalid rounding mode")}
	errorBadOverflow     = optionsErr{mkerr("invalid overflow policy")}
	errorBadDisamb       = optionsErr{mkerr("invalid disambiguation policy")}
	errorBadOffsetPolicy = optionsErr{mkerr("invalid offset policy")}
	errorNilCalendar     = optionsErr{mkerr("nil calendar")}
	errorNilTimeZone     = optionsErr{mkerr("nil time zone")}
)

/*
types which implement the error interface.
*/
type (
	rangeErr       struct{ e error }
	signErr        struct{ e error }
	incrementErr   struct{ e error }
	relativeErr    struct{ e error }
	calendarErr    struct{ e error }
	zoneErr        struct{ e error }
	nonexistentErr struct{ e error }
	ambiguousErr   struct{ e error }
	offsetErr      struct{ e error }
	syntaxErr      struct{ e error }
	fieldErr       struct{ e error }
	optionsErr     struct{ e error }
)

func rangeErrorf(m ...any) error       { return rangeErr{mkerrf(m...)} }
func incrementErrorf(m ...any) error   { return incrementErr{mkerrf(m...)} }
func relativeErrorf(m ...any) error    { return relativeErr{mkerrf(m...)} }
func calendarErrorf(m ...any) error    { return calendarErr{mkerrf(m...)} }
func zoneErrorf(m ...any) error        { return zoneErr{mkerrf(m...)} }
func nonexistentErrorf(m ...any) error { return nonexistentErr{mkerrf(m...)} }
func ambiguousErrorf(m ...any) error   { return ambiguousErr{mkerrf(m...)} }
func offsetErrorf(m ...any) error      { return offsetErr{mkerrf(m...)} }
func syntaxErrorf(m ...any) error      { return syntaxErr{mkerrf(m...)} }
func fieldErrorf(m ...any) error       { return fieldErr{mkerrf(m...)} }
func optionsErrorf(m ...any) error     { return optionsErr{mkerrf(m...)} }

func (r rangeErr) Error() string       { return `RANGE ERROR: ` + r.e.Error() }
func (r signErr) Error() string        { return `SIGN ERROR: ` + r.e.Error() }
func (r incrementErr) Error() string   { return `INCREMENT ERROR: ` + r.e.Error() }
func (r relativeErr) Error() string    { return `RELATIVE-TO ERROR: ` + r.e.Error() }
func (r calendarErr) Error() string    { return `CALENDAR ERROR: ` + r.e.Error() }
func (r zoneErr) Error() string        { return `TIME ZONE ERROR: ` + r.e.Error() }
func (r nonexistentErr) Error() string { return `NONEXISTENT LOCAL TIME: ` + r.e.Error() }
func (r ambiguousErr) Error() string   { return `AMBIGUOUS LOCAL TIME: ` + r.e.Error() }
func (r offsetErr) Error() string      { return `OFFSET ERROR: ` + r.e.Error() }
func (r syntaxErr) Error() string      { return `SYNTAX ERROR: ` + r.e.Error() }
func (r fieldErr) Error() string       { return `FIELD ERROR: ` + r.e.Error() }
func (r optionsErr) Error() string     { return `OPTIONS ERROR: ` + r.e.Error() }

func (r rangeErr) Is(x error) bool       { return x == ErrOutOfRange }
func (r signErr) Is(x error) bool        { return x == ErrMixedSign }
func (r incrementErr) Is(x error) bool   { return x == ErrInvalidIncrement }
func (r relativeErr) Is(x error) bool    { return x == ErrRelativeToRequired }
func (r calendarErr) Is(x error) bool    { return x == ErrCalendarMismatch }
func (r zoneErr) Is(x error) bool        { return x == ErrZoneMismatch }
func (r nonexistentErr) Is(x error) bool { return x == ErrNonexistentLocalTime }
func (r ambiguousErr) Is(x error) bool   { return x == ErrAmbiguousLocalTime }
func (r offsetErr) Is(x error) bool      { return x == ErrOffsetMismatch }
func (r syntaxErr) Is(x error) bool      { return x == ErrMalformedText }
func (r fieldErr) Is(x error) bool       { return x == ErrMissingField }
func (r optionsErr) Is(x error) bool     { return x == ErrInvalidOption }

func errorMalformed(kind, input string) error {
	return syntaxErrorf("invalid ", kind, " string: ", input)
}

func errorMissingField(name string) error {
	return fieldErrorf("required property '", name, "' missing or undefined")
}

func errorIncrement(inc, max int64, inclusive bool) error {
	if max <= 0 {
		return incrementErrorf("roundingIncrement must be a positive integer, got ", inc)
	}
	which := " and less than "
	if inclusive {
		which = " and not greater than "
	}
	return incrementErrorf("roundingIncrement ", inc, " must divide evenly into ", max, which, max)
}

func errorDisallowedUnit(u Unit, op string) error {
	return optionsErrorf("unit '", u.String(), "' is not allowed for ", op)
}

func errorCalendarMismatch(a, b string) error {
	return calendarErrorf("cannot compute across calendars ", a, " and ", b)
}

var errCache sync.Map

func mkerrf(parts ...any) error {
	if len(parts) == 0 {
		return nil
	}

	if len(parts) == 1 {
		if s, ok := parts[0].(string); ok {
			if v, hit := errCache.Load(s); hit {
				return v.(error)
			}
		} else if parts[0] == nil {
			return nil
		}
	}

	b := newStrBuilder()
	for _, p := range parts {
		switch v := p.(type) {
		case error:
			b.WriteString(v.Error())
		case string:
			b.WriteString(v)
		case int:
			b.WriteString(itoa(v))
		case int64:
			b.WriteString(fmtInt(v, 10))
		case Unit:
			b.WriteString(v.String())
		case interface{ String() string }:
			b.WriteString(v.String())
		default:
			b.WriteString("<not supported>")
		}
	}
	msg := b.String()

	// only the single-literal form is cached; composed messages
	// carry caller input and would grow the cache without bound.
	if len(parts) == 1 {
		e, _ := errCache.LoadOrStore(msg, mkerr(msg))
		return e.(error)
	}
	return mkerr(msg)
}
