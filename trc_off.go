//go:build !temporal_debug

package temporal

type DefaultTracer struct{}

func debugEnter(_ ...any)               {}
func debugExit(_ ...any)                {}
func debugEvent(_ EventType, _ ...any)  {}
func debugInfo(_ ...any)                {}
func debugIO(_ ...any)                  {}
func debugPerf(_ ...any)                {}
func debugBalance(_ ...any)             {}
func debugRound(_ ...any)               {}
func debugDifference(_ ...any)          {}
func debugTimeZone(_ ...any)            {}
func debugDisambiguate(_ ...any)        {}
func debugParse(_ ...any)               {}
func debugConstraint(_ ...any)          {}
func debugRegistry(_ ...any)            {}
func debugTrace(_ ...any)               {}
func debugPath(_ ...any) func(_ ...any) { return func(_ ...any) {} }
