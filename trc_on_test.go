//go:build temporal_debug

package temporal

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoglevels_codecov(t *testing.T) {
	var bits loglevels
	bits.Int()
	bits.Shift(-1)
	bits.Shift(8 << 8)
	bits.Unshift(-1)
	bits.Positive(-1)
	bits.Unshift(40000000000)
	if i := bits.Int(); i != 0 {
		t.Errorf("%s failed: bogus value set (%d) where none should be",
			t.Name(), i)
	}

	bits = newLoglevels()
	bits.Shift("round", EventParse, "bogus")
	assert.Equal(t, []string{"round", "parse"}, bits.enabled())
	assert.True(t, bits.Positive("PARSE"))
	assert.False(t, bits.Positive(EventBalance))

	bits.Shift("-1")
	assert.Equal(t, []string{"all"}, bits.enabled())
	bits.Unshift(EventAll)
	assert.Equal(t, []string{"none"}, bits.enabled())

	bits.Shift(" 32 ")
	assert.True(t, bits.Positive(EventBalance))
	bits.Unshift("balance")
	assert.Equal(t, 0, bits.Int())
}

func TestDefaultTracer(t *testing.T) {
	var buf bytes.Buffer
	dt := NewDefaultTracer(&buf)
	dt.EnableLevel(EventInfo)
	dt.EnableLevel(EventIO)
	dt.EnableLevel(EventExit)
	dt.DisableLevel(EventExit)
	assert.True(t, dt.Enabled(EventInfo))
	assert.False(t, dt.Enabled(EventExit))

	EnableDebug(dt)
	defer DisableDebug()

	debugInfo("hello", 3, int64(4), true, nil, Hour)
	debugExit("dropped")

	got := buf.String()
	if !strings.Contains(got, "• TestDefaultTracer: hello, 3, 4, true, <nil>, hours\n") {
		t.Errorf("%s failed: unexpected trace output %q", t.Name(), got)
	}
	if strings.Contains(got, "dropped") {
		t.Errorf("%s failed: disabled event was written: %q", t.Name(), got)
	}

	buf.Reset()
	dt.EnableLevel(EventEnter)
	dt.EnableLevel(EventExit)
	dt.Trace(TraceRecord{Time: time.Now(), Type: EventEnter, Func: "a/b.Date.Add", Args: []any{"P1D"}})
	dt.Trace(TraceRecord{Time: time.Now(), Type: EventExit, Func: "a/b.Date.Add", Ret: []any{mkerr("bad")}})
	got = buf.String()
	assert.Contains(t, got, "→ b.Date.Add(P1D)")
	assert.Contains(t, got, "← b.Date.Add => error:bad")
}

func TestDefaultTracer_entryPoints(t *testing.T) {
	var buf bytes.Buffer
	dt := NewDefaultTracer(&buf)
	dt.EnableLevel(EventEnter)
	dt.EnableLevel(EventExit)
	EnableDebug(dt)
	defer DisableDebug()

	d, _ := ParseDuration("PT36H")
	_, err := BalanceDuration(d, Day)
	assert.NoError(t, err)
	_, err = d.Round(WithSmallestUnit(Day))
	assert.NoError(t, err)

	i, _ := ParseInstant("2020-01-01T00:00Z")
	j, _ := ParseInstant("2020-01-01T00:01:40Z")
	_, err = i.Until(j, WithSmallestUnit(Minute))
	assert.NoError(t, err)

	got := buf.String()
	for _, name := range []string{"BalanceDuration", "Duration.Round", "differenceInstant"} {
		assert.Contains(t, got, "→ "+name)
		assert.Contains(t, got, "← "+name)
	}
}

func TestSlogTracer(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	st := NewSlogTracer(l, EventRound)
	assert.True(t, st.Enabled(EventRound))

	st.Trace(TraceRecord{Type: EventRound, Func: "x/y.roundTo", Args: []any{"PT1H"}})
	st.Trace(TraceRecord{Type: EventParse, Func: "x/y.parse"})

	got := buf.String()
	assert.Contains(t, got, "msg=round")
	assert.Contains(t, got, "func=y.roundTo")
	assert.NotContains(t, got, "y.parse")

	assert.NotNil(t, NewSlogTracer(nil))
}

func TestFmtArg(t *testing.T) {
	for idx, tc := range []struct {
		in   any
		want string
	}{
		{nil, "<nil>"},
		{"s", "s"},
		{-2, "-2"},
		{false, "false"},
		{mkerr("e"), "error:e"},
		{Fields{FieldYear: 2020, FieldDay: 3}, "{year:2020,day:3}"},
		{struct{}{}, "<unidentified struct {}>"},
	} {
		if got := fmtArg(tc.in); got != tc.want {
			t.Errorf("%s[%d] failed: want %q, got %q", t.Name(), idx, tc.want, got)
		}
	}
}
