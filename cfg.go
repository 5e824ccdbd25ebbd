package temporal

/*
cfg.go contains the environment-driven package configuration.
*/

import (
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
)

/*
Config describes the package configuration, as read from the
environment by [LoadConfig].
*/
type Config struct {
	// Debug lists the tracer event names or integers to enable. It is
	// only honored when built with "-tags temporal_debug".
	Debug []string `env:"TEMPORAL_DEBUG" envSeparator:","`

	// TimeZone is the identifier returned by [SystemTimeZone].
	TimeZone string `env:"TEMPORAL_TIMEZONE" envDefault:"UTC"`

	// Calendar is the identifier of the calendar returned by
	// [DefaultCalendar].
	Calendar string `env:"TEMPORAL_CALENDAR" envDefault:"iso8601"`

	// TransitionHorizon bounds the search for zone transitions when a
	// TimeZone does not report them itself.
	TransitionHorizon time.Duration `env:"TEMPORAL_TRANSITION_HORIZON" envDefault:"8760h"`
}

func defaultConfig() Config {
	return Config{
		TimeZone:          "UTC",
		Calendar:          "iso8601",
		TransitionHorizon: 8760 * time.Hour,
	}
}

/*
LoadConfig returns a fresh [Config] parsed from the environment. On
failure the defaults are returned alongside the error.
*/
func LoadConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return defaultConfig(), optionsErrorf("parse env: ", err)
	}
	if c.TransitionHorizon <= 0 {
		c.TransitionHorizon = defaultConfig().TransitionHorizon
	}
	return c, nil
}

var (
	pkgConfigOnce sync.Once
	pkgConfig     Config
)

// config returns the package configuration, loaded once on first use.
func config() Config {
	pkgConfigOnce.Do(func() {
		pkgConfig, _ = LoadConfig()
	})
	return pkgConfig
}

/*
SystemTimeZone returns the [TimeZone] named by the TEMPORAL_TIMEZONE
environment variable, or UTC when it is unset or unknown.
*/
func SystemTimeZone() TimeZone {
	if tz, err := LookupTimeZone(config().TimeZone); err == nil {
		return tz
	}
	return UTC()
}

/*
DefaultCalendar returns the [Calendar] named by the TEMPORAL_CALENDAR
environment variable, or the ISO-8601 calendar when it is unset or
unknown.
*/
func DefaultCalendar() Calendar {
	if c, err := LookupCalendar(config().Calendar); err == nil {
		return c
	}
	return ISO8601()
}
