//go:build !temporal_debug

package temporal

import "testing"

func TestLoglevels_codecov(t *testing.T) {
	bits := newLoglevels()
	bits.Shift(-1, "round", EventParse)
	bits.Unshift(EventAll)
	bits.verifyShiftValue(1)
	if bits.Positive(EventRound) || bits.Int() != 0 || bits.enabled() != nil {
		t.Errorf("%s failed: loglevels must stay empty without debugging", t.Name())
	}

	var dt DefaultTracer
	_ = dt

	debugEnter("x")
	debugExit("x")
	debugEvent(EventInfo, "x")
	debugInfo()
	debugIO()
	debugPerf()
	debugBalance()
	debugRound()
	debugDifference()
	debugTimeZone()
	debugDisambiguate()
	debugParse()
	debugConstraint()
	debugRegistry()
	debugTrace()
	debugPath("x")("y")
}
