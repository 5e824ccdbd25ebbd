//go:build !temporal_debug

package temporal

type loglevels struct{}

func newLoglevels() (_ loglevels)                      { return loglevels{} }
func (_ loglevels) Int() int                           { return 0 }
func (_ loglevels) Shift(_ ...any) loglevels           { return loglevels{} }
func (_ loglevels) Unshift(_ ...any) loglevels         { return loglevels{} }
func (_ loglevels) Positive(_ any) bool                { return false }
func (_ loglevels) enabled() []string                  { return nil }
func (_ loglevels) verifyShiftValue(_ any) (int, bool) { return 0, false }
