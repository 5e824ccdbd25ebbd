package temporal

/*
reg.go contains the process-wide registry of calendars and time zones
by identifier. Entries are added lazily and never invalidated.
*/

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

var (
	calendars sync.Map // id -> Calendar
	zones     sync.Map // id -> TimeZone
	zoneLoads singleflight.Group
)

/*
RegisterCalendar makes c available to [LookupCalendar] and to the
"[c=...]" annotation of the text grammar, under c.ID(). Registering
an identifier twice, or the built-in "iso8601", fails with
[ErrInvalidOption].
*/
func RegisterCalendar(c Calendar) error {
	if c == nil {
		return errorNilCalendar
	}
	id := c.ID()
	if streqf(id, ISO8601().ID()) {
		return optionsErrorf("calendar '", id, "' is built in")
	}
	if _, loaded := calendars.LoadOrStore(lc(id), c); loaded {
		return optionsErrorf("calendar '", id, "' is already registered")
	}
	debugRegistry("calendar", id)
	return nil
}

/*
LookupCalendar returns the [Calendar] registered under id, compared
case-insensitively. Unknown identifiers fail with [ErrOutOfRange].
*/
func LookupCalendar(id string) (Calendar, error) {
	if streqf(id, ISO8601().ID()) {
		return ISO8601(), nil
	}
	if c, ok := calendars.Load(lc(id)); ok {
		return c.(Calendar), nil
	}
	return nil, rangeErrorf("unknown calendar '", id, "'")
}

/*
RegisterTimeZone makes tz available to [LookupTimeZone] and to the
"[zone]" annotation of the text grammar, under tz.ID(). Registering
an identifier twice fails with [ErrInvalidOption].
*/
func RegisterTimeZone(tz TimeZone) error {
	if tz == nil {
		return errorNilTimeZone
	}
	id := tz.ID()
	if streqf(id, "UTC") || isOffsetID(id) {
		return optionsErrorf("time zone '", id, "' is built in")
	}
	if _, loaded := zones.LoadOrStore(id, tz); loaded {
		return optionsErrorf("time zone '", id, "' is already registered")
	}
	debugRegistry("time zone", id)
	return nil
}

/*
LookupTimeZone returns the [TimeZone] named by id, which may be "UTC",
a UTC offset such as "+05:30", a registered identifier, or an entry
of the tz database such as "America/New_York". tz database entries
are loaded once and cached; concurrent first lookups share the load.
*/
func LookupTimeZone(id string) (TimeZone, error) {
	if streqf(id, "UTC") {
		return UTC(), nil
	}
	if isOffsetID(id) {
		off, err := parseOffset(id)
		if err != nil {
			return nil, err
		}
		return FixedTimeZone(off)
	}
	if tz, ok := zones.Load(id); ok {
		return tz.(TimeZone), nil
	}

	v, err, _ := zoneLoads.Do(id, func() (any, error) {
		if tz, ok := zones.Load(id); ok {
			return tz, nil
		}
		tz, err := loadIANAZone(id)
		if err != nil {
			return nil, err
		}
		actual, _ := zones.LoadOrStore(id, tz)
		debugRegistry("loaded", id)
		return actual, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(TimeZone), nil
}

/*
PreloadTimeZones looks up every id concurrently, warming the registry
ahead of latency-sensitive use. It returns the first failure, or the
error of ctx if it is done first.
*/
func PreloadTimeZones(ctx context.Context, ids ...string) error {
	defer debugPath(ids)()
	start := time.Now()
	defer func() { debugPerf("preload", len(ids), time.Since(start)) }()

	g, ctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, err := LookupTimeZone(id)
			return err
		})
	}
	return g.Wait()
}

func isOffsetID(id string) bool {
	return len(id) > 0 && (id[0] == '+' || id[0] == '-' || hasPfx(id, "−"))
}
