package temporal

import (
	"errors"
	"testing"
	_ "time/tzdata"

	"pgregory.net/rapid"
)

// epoch days spanning 1900-01-01 through 2099-12-31
const (
	minPropDay int64 = -25567
	maxPropDay int64 = 47481
)

func drawDate(t *rapid.T, label string) Date {
	iso := ISODateFromEpochDays(rapid.Int64Range(minPropDay, maxPropDay).Draw(t, label))
	d, err := MakeDate(iso.Year, iso.Month, iso.Day, ISO8601())
	if err != nil {
		t.Fatalf("date %v: %v", iso, err)
	}
	return d
}

func drawDateTime(t *rapid.T, label string) DateTime {
	d := drawDate(t, label)
	h := rapid.IntRange(0, 23).Draw(t, label+" hour")
	m := rapid.IntRange(0, 59).Draw(t, label+" minute")
	ms := rapid.IntRange(0, 999).Draw(t, label+" millisecond")
	dt, err := MakeDateTime(d.iso.Year, d.iso.Month, d.iso.Day, h, m, 0, ms, 0, 0, ISO8601())
	if err != nil {
		t.Fatalf("datetime %v: %v", d, err)
	}
	return dt
}

func drawInstant(t *rapid.T, label string) Instant {
	sec := rapid.Int64Range(minPropDay*86_400, maxPropDay*86_400).Draw(t, label)
	nsec := rapid.Int64Range(0, 999_999_999).Draw(t, label+" nsec")
	i, err := InstantFromEpochNanoseconds(intOf(sec).MulInt64(nsPerSecond).AddInt64(nsec))
	if err != nil {
		t.Fatalf("instant %d: %v", sec, err)
	}
	return i
}

func TestDuration_mixedSignComponents(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := rapid.SliceOfN(rapid.Int64Range(-1000, 1000), 10, 10).Draw(t, "components")
		var pos, neg bool
		for _, v := range c {
			pos = pos || v > 0
			neg = neg || v < 0
		}

		d, err := MakeDuration(c...)
		if pos && neg {
			if !errors.Is(err, ErrMixedSign) {
				t.Fatalf("%v: want ErrMixedSign, got %v (%s)", c, err, d)
			}
			return
		}
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", c, err)
		}
		want := 0
		if pos {
			want = 1
		} else if neg {
			want = -1
		}
		if d.Sign() != want {
			t.Fatalf("%s: sign %d, want %d", d, d.Sign(), want)
		}
		if !d.Negated().Negated().Equal(d) {
			t.Fatalf("%s: double negation gave %s", d, d.Negated().Negated())
		}
	})
}

func TestInstant_untilAntisymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a, b := drawInstant(t, "a"), drawInstant(t, "b")
		largest := rapid.SampledFrom([]Unit{Second, Minute, Hour}).Draw(t, "largest")
		smallest := rapid.SampledFrom([]Unit{Nanosecond, Millisecond, Second}).Draw(t, "smallest")

		fwd, err := a.Until(b, WithLargestUnit(largest), WithSmallestUnit(smallest))
		if err != nil {
			t.Fatalf("%s until %s: %v", a, b, err)
		}
		rev, err := b.Until(a, WithLargestUnit(largest), WithSmallestUnit(smallest))
		if err != nil {
			t.Fatalf("%s until %s: %v", b, a, err)
		}
		if !fwd.Negated().Equal(rev) {
			t.Fatalf("%s until %s is %s, reverse is %s", a, b, fwd, rev)
		}
	})
}

// Day and Week differences count whole days, so they mirror exactly.
// Month and Year differences depend on which end is clamped.
func TestDate_untilAntisymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a, b := drawDate(t, "a"), drawDate(t, "b")
		largest := rapid.SampledFrom([]Unit{Day, Week}).Draw(t, "largest")

		fwd, err := a.Until(b, WithLargestUnit(largest))
		if err != nil {
			t.Fatalf("%s until %s: %v", a, b, err)
		}
		rev, err := b.Until(a, WithLargestUnit(largest))
		if err != nil {
			t.Fatalf("%s until %s: %v", b, a, err)
		}
		if !fwd.Negated().Equal(rev) {
			t.Fatalf("%s until %s is %s, reverse is %s", a, b, fwd, rev)
		}
	})
}

func TestDateTime_untilAntisymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a, b := drawDateTime(t, "a"), drawDateTime(t, "b")
		largest := rapid.SampledFrom([]Unit{Hour, Day, Week}).Draw(t, "largest")

		fwd, err := a.Until(b, WithLargestUnit(largest))
		if err != nil {
			t.Fatalf("%s until %s: %v", a, b, err)
		}
		rev, err := b.Until(a, WithLargestUnit(largest))
		if err != nil {
			t.Fatalf("%s until %s: %v", b, a, err)
		}
		if !fwd.Negated().Equal(rev) {
			t.Fatalf("%s until %s is %s, reverse is %s", a, b, fwd, rev)
		}
	})
}

func TestInstant_addUntilInverse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a, b := drawInstant(t, "a"), drawInstant(t, "b")
		largest := rapid.SampledFrom([]Unit{Nanosecond, Second, Hour}).Draw(t, "largest")

		d, err := a.Until(b, WithLargestUnit(largest))
		if err != nil {
			t.Fatalf("%s until %s: %v", a, b, err)
		}
		got, err := a.Add(d)
		if err != nil {
			t.Fatalf("%s + %s: %v", a, d, err)
		}
		if !got.Equal(b) {
			t.Fatalf("%s + %s = %s, want %s", a, d, got, b)
		}
	})
}

func TestDateTime_addUntilInverse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a, b := drawDateTime(t, "a"), drawDateTime(t, "b")
		largest := rapid.SampledFrom([]Unit{Hour, Day, Week, Month, Year}).Draw(t, "largest")

		d, err := a.Until(b, WithLargestUnit(largest))
		if err != nil {
			t.Fatalf("%s until %s: %v", a, b, err)
		}
		got, err := a.Add(d)
		if err != nil {
			t.Fatalf("%s + %s: %v", a, d, err)
		}
		if !got.Equal(b) {
			t.Fatalf("%s + %s = %s, want %s", a, d, got, b)
		}
	})
}

func TestZonedDateTime_addUntilInverse(t *testing.T) {
	tz, err := LookupTimeZone("America/New_York")
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	rapid.Check(t, func(t *rapid.T) {
		a := NewZonedDateTime(drawInstant(t, "a"), tz, ISO8601())
		b := NewZonedDateTime(drawInstant(t, "b"), tz, ISO8601())
		largest := rapid.SampledFrom([]Unit{Hour, Day, Month, Year}).Draw(t, "largest")

		d, err := a.Until(b, WithLargestUnit(largest))
		if err != nil {
			t.Fatalf("%s until %s: %v", a, b, err)
		}
		got, err := a.Add(d)
		if err != nil {
			t.Fatalf("%s + %s: %v", a, d, err)
		}
		if !got.Equal(b) {
			t.Fatalf("%s + %s = %s, want %s", a, d, got, b)
		}
	})
}

func TestDuration_roundIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		sign := rapid.SampledFrom([]int64{1, -1}).Draw(t, "sign")
		var c [10]int64
		for i := unitIndex(Hour); i < 10; i++ {
			c[i] = sign * rapid.Int64Range(0, 5000).Draw(t, "time")
		}
		d, err := durationFromComponents(c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		opts := []Option{
			WithLargestUnit(Hour),
			WithSmallestUnit(rapid.SampledFrom([]Unit{Millisecond, Second, Minute, Hour}).Draw(t, "smallest")),
			WithRoundingMode(rapid.SampledFrom([]RoundingMode{RoundNearest, RoundCeil, RoundTrunc, RoundFloor}).Draw(t, "mode")),
		}

		once, err := d.Round(opts...)
		if err != nil {
			t.Fatalf("round %s: %v", d, err)
		}
		twice, err := once.Round(opts...)
		if err != nil {
			t.Fatalf("round %s: %v", once, err)
		}
		if !twice.Equal(once) {
			t.Fatalf("%s rounded to %s, then to %s", d, once, twice)
		}
	})
}

func TestInstant_roundIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		i := drawInstant(t, "i")
		opts := []Option{
			WithSmallestUnit(rapid.SampledFrom([]Unit{Microsecond, Second, Minute, Hour}).Draw(t, "smallest")),
			WithIncrement(rapid.SampledFrom([]int64{1, 2, 3}).Draw(t, "increment")),
			WithRoundingMode(rapid.SampledFrom([]RoundingMode{RoundNearest, RoundCeil, RoundTrunc, RoundFloor}).Draw(t, "mode")),
		}

		once, err := i.Round(opts...)
		if err != nil {
			t.Fatalf("round %s: %v", i, err)
		}
		twice, err := once.Round(opts...)
		if err != nil {
			t.Fatalf("round %s: %v", once, err)
		}
		if !twice.Equal(once) {
			t.Fatalf("%s rounded to %s, then to %s", i, once, twice)
		}
	})
}
