package temporal

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepZone moves from UTC to +01:00 at a single instant and reports no
// transitions of its own, so that they must be searched for.
type stepZone struct {
	at Integer
}

func (r stepZone) ID() string { return "Test/Step" }

func (r stepZone) OffsetNanosecondsFor(i Instant) int64 {
	if i.ns.Cmp(r.at) < 0 {
		return 0
	}
	return nsPerHour
}

func (r stepZone) PossibleInstantsFor(dt DateTime) (out []Instant, err error) {
	for _, off := range []int64{nsPerHour, 0} {
		cand := Instant{ns: dt.epochNs().AddInt64(-off)}
		if r.OffsetNanosecondsFor(cand) == off {
			out = append(out, cand)
		}
	}
	return
}

func ExampleFixedTimeZone() {
	tz, _ := FixedTimeZone(-int64(3*time.Hour + 30*time.Minute))
	i, _ := ParseInstant("2020-01-01T00:00Z")

	dt, _ := DateTimeFor(tz, i, nil)
	fmt.Println(tz.ID(), dt)
	// Output: -03:30 2019-12-31T20:30:00
}

func ExampleNextTransition() {
	ny, _ := LookupTimeZone("America/New_York")
	i, _ := ParseInstant("2020-01-01T00:00Z")

	next, ok := NextTransition(ny, i)
	prev, _ := PreviousTransition(ny, i)
	fmt.Println(next, ok)
	fmt.Println(prev)
	// Output:
	// 2020-03-08T07:00:00Z true
	// 2019-11-03T06:00:00Z
}

func TestFixedTimeZone(t *testing.T) {
	for idx, tc := range []struct {
		offset int64
		id     string
		err    error
	}{
		{offset: 0, id: "+00:00"},
		{offset: int64(5*time.Hour + 30*time.Minute), id: "+05:30"},
		{offset: -int64(time.Hour + 30*time.Second), id: "-01:00:30"},
		{offset: int64(time.Hour + time.Millisecond), id: "+01:00:00.001"},
		{offset: nsPerDay - 1, id: "+23:59:59.999999999"},
		{offset: nsPerDay, err: ErrOutOfRange},
		{offset: -nsPerDay, err: ErrOutOfRange},
	} {
		tz, err := FixedTimeZone(tc.offset)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("%s[%d] failed: want %v, got %v", t.Name(), idx, tc.err, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s[%d] failed: %v", t.Name(), idx, err)
			continue
		}
		if tz.ID() != tc.id {
			t.Errorf("%s[%d] failed: want %s, got %s", t.Name(), idx, tc.id, tz.ID())
		}
		if s, _ := OffsetStringFor(tz, Instant{}); s != tc.id {
			t.Errorf("%s[%d] failed: OffsetStringFor gave %s", t.Name(), idx, s)
		}
		if _, ok := NextTransition(tz, Instant{}); ok {
			t.Errorf("%s[%d] failed: fixed zones have no transitions", t.Name(), idx)
		}
	}
}

func TestInstantFor(t *testing.T) {
	ny, err := LookupTimeZone("America/New_York")
	require.NoError(t, err)

	gap, _ := ParseDateTime("2020-03-08T02:30")
	overlap, _ := ParseDateTime("2020-11-01T01:30")

	for idx, tc := range []struct {
		dt   DateTime
		d    Disambiguation
		want string
		err  error
	}{
		{dt: gap, d: DisambiguateCompatible, want: "2020-03-08T07:30:00Z"},
		{dt: gap, d: DisambiguateLater, want: "2020-03-08T07:30:00Z"},
		{dt: gap, d: DisambiguateEarlier, want: "2020-03-08T06:30:00Z"},
		{dt: gap, d: DisambiguateReject, err: ErrNonexistentLocalTime},
		{dt: overlap, d: DisambiguateCompatible, want: "2020-11-01T05:30:00Z"},
		{dt: overlap, d: DisambiguateEarlier, want: "2020-11-01T05:30:00Z"},
		{dt: overlap, d: DisambiguateLater, want: "2020-11-01T06:30:00Z"},
		{dt: overlap, d: DisambiguateReject, err: ErrAmbiguousLocalTime},
	} {
		got, err := InstantFor(ny, tc.dt, tc.d)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("%s[%d] failed: want %v, got %v", t.Name(), idx, tc.err, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s[%d] failed: %v", t.Name(), idx, err)
		} else if got.String() != tc.want {
			t.Errorf("%s[%d] failed:\n\twant: %s\n\tgot:  %s", t.Name(), idx, tc.want, got)
		}
	}

	i, err := InstantFor(nil, gap, DisambiguateReject)
	require.NoError(t, err)
	assert.Equal(t, "2020-03-08T02:30:00Z", i.String())
}

func TestIANAZone(t *testing.T) {
	ny, err := LookupTimeZone("America/New_York")
	require.NoError(t, err)

	i, _ := ParseInstant("2020-03-08T07:00Z")
	s, err := OffsetStringFor(ny, i)
	require.NoError(t, err)
	assert.Equal(t, "-04:00", s)

	before, _ := i.Add(Duration{nanoseconds: -1})
	s, _ = OffsetStringFor(ny, before)
	assert.Equal(t, "-05:00", s)

	prev, ok := PreviousTransition(ny, i)
	require.True(t, ok)
	assert.Equal(t, "2019-11-03T06:00:00Z", prev.String())

	next, ok := NextTransition(ny, before)
	require.True(t, ok)
	assert.True(t, next.Equal(i))

	dt, err := DateTimeFor(ny, i, nil)
	require.NoError(t, err)
	assert.Equal(t, "2020-03-08T03:00:00", dt.String())

	// the tz database has no transitions for UTC itself
	etc, err := LookupTimeZone("Etc/UTC")
	require.NoError(t, err)
	_, ok = NextTransition(etc, i)
	assert.False(t, ok)
}

func TestSearchTransition(t *testing.T) {
	at := intOf(30 * nsPerDay).AddInt64(12345)
	tz := stepZone{at: at}

	next, ok := NextTransition(tz, Instant{})
	require.True(t, ok)
	assert.Equal(t, 0, next.ns.Cmp(at))

	later := Instant{ns: at.AddInt64(10 * nsPerDay)}
	prev, ok := PreviousTransition(tz, later)
	require.True(t, ok)
	assert.Equal(t, 0, prev.ns.Cmp(at))

	_, ok = PreviousTransition(tz, Instant{ns: at})
	assert.False(t, ok)

	_, ok = NextTransition(tz, Instant{ns: at})
	assert.False(t, ok)

	// outside the horizon of one year
	_, ok = NextTransition(tz, Instant{ns: at.AddInt64(-400 * nsPerDay)})
	assert.False(t, ok)
}

func TestTimeZone_custom(t *testing.T) {
	at := intOf(30 * nsPerDay)
	tz := stepZone{at: at}

	dt, _ := ParseDateTime("1970-01-31T00:30")
	_, err := InstantFor(tz, dt, DisambiguateReject)
	assert.ErrorIs(t, err, ErrNonexistentLocalTime)

	i, err := InstantFor(tz, dt, DisambiguateCompatible)
	require.NoError(t, err)
	assert.Equal(t, "1970-01-31T00:30:00Z", i.String())

	zdt := NewZonedDateTime(i, tz, nil)
	assert.Equal(t, "1970-01-31T01:30:00+01:00[Test/Step]", zdt.String())
}
