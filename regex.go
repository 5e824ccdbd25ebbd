package temporal

/*
regex.go contains the expressions of the ISO-8601 text grammar.
*/

import "regexp"

const (
	reSign       = `[+\x{2212}-]`
	reTZPart     = `\.[-A-Za-z_]|\.\.[-A-Za-z._]{1,12}|\.[-A-Za-z_][-A-Za-z._]{0,12}|[A-Za-z_][-A-Za-z._]{0,13}`
	reTZID       = `(?:(?:` + reTZPart + `)(?:/(?:` + reTZPart + `))*|Etc/GMT[-+]\d{1,2})`
	reCalPart    = `[A-Za-z0-9]{3,8}`
	reCalID      = `(?:` + reCalPart + `(?:-` + reCalPart + `)*)`
	reYear       = `(?:` + reSign + `\d{6}|\d{4})`
	reDateSplit  = `(` + reYear + `)(?:-(\d{2})-(\d{2})|(\d{2})(\d{2}))`
	reTimeSplit  = `(\d{2})(?::(\d{2})(?::(\d{2})(?:[.,](\d{1,9}))?)?|(\d{2})(?:(\d{2})(?:[.,](\d{1,9}))?)?)?`
	reOffset     = `(` + reSign + `)([0-2][0-9])(?::?([0-5][0-9])(?::?([0-5][0-9])(?:[.,](\d{1,9}))?)?)?`
	reZoneSplit  = `(?:(?:([zZ])|` + reOffset + `)?(?:\[(` + reTZID + `)\])?)`
	reCalendar   = `\[c=(` + reCalID + `)\]`
	reDateTimeSp = `(?:T|\s+)`
)

var (
	instantRegexp = regexp.MustCompile(`(?i)^` + reDateSplit + reDateTimeSp + reTimeSplit +
		reZoneSplit + `(?:` + reCalendar + `)?$`)
	dateTimeRegexp = regexp.MustCompile(`(?i)^` + reDateSplit + `(?:` + reDateTimeSp + reTimeSplit +
		`(?:` + reZoneSplit + `)?)?(?:` + reCalendar + `)?$`)
	timeRegexp = regexp.MustCompile(`(?i)^` + reTimeSplit + `(?:` + reZoneSplit + `)?(?:` +
		reCalendar + `)?$`)
	offsetRegexp    = regexp.MustCompile(`^` + reOffset + `$`)
	yearMonthRegexp = regexp.MustCompile(`^(` + reYear + `)-?(\d{2})$`)
	monthDayRegexp  = regexp.MustCompile(`^(?:--)?(\d{2})-?(\d{2})$`)

	// The "T" must be followed by at least one time component; RE2
	// has no lookahead, so ParseDuration checks that separately.
	durationRegexp = regexp.MustCompile(`(?i)^(` + reSign + `)?P(?:(\d+)Y)?(?:(\d+)M)?(?:(\d+)W)?(?:(\d+)D)?` +
		`(T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)(?:[.,](\d{1,9}))?S)?)?$`)
)

// Submatch offsets of each grammar fragment, measured once so that
// the expressions above may be rearranged freely.
var (
	nDateGroups = regexp.MustCompile(reDateSplit).NumSubexp()
	nTimeGroups = regexp.MustCompile(reTimeSplit).NumSubexp()
	nZoneGroups = regexp.MustCompile(reZoneSplit).NumSubexp()
)

// dateTimeMatch is the structured reading of a date, time, zone and
// calendar match. Absent submatches are empty strings.
type dateTimeMatch struct {
	date [5]string // year, month, day, basic month, basic day
	time [7]string // hour, minute, second, fraction, basic minute, second, fraction
	zone [7]string // Z, offset sign, hour, minute, second, fraction, zone id
	cal  string
}

// splitDateTime distributes the submatches m (including m[0]) of an
// expression composed as date, time, zone, calendar. hasDate is false
// for timeRegexp.
func splitDateTime(m []string, hasDate bool) (r dateTimeMatch) {
	i := 1
	if hasDate {
		copy(r.date[:], m[i:i+nDateGroups])
		i += nDateGroups
	}
	copy(r.time[:], m[i:i+nTimeGroups])
	i += nTimeGroups
	copy(r.zone[:], m[i:i+nZoneGroups])
	i += nZoneGroups
	r.cal = m[i]
	return
}

func (r dateTimeMatch) hasTime() bool   { return r.time[0] != "" }
func (r dateTimeMatch) hasZ() bool      { return r.zone[0] != "" }
func (r dateTimeMatch) hasOffset() bool { return r.zone[1] != "" }
func (r dateTimeMatch) zoneID() string  { return r.zone[6] }
