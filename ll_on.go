//go:build temporal_debug

package temporal

import "sync/atomic"

/*
loglevels is a bitmask of enabled [EventType] values. It may be
shifted while other goroutines are tracing.
*/
type loglevels struct {
	v *atomic.Uint32
	m map[int]string
}

func newLoglevels() (bv loglevels) {
	bv.v = new(atomic.Uint32)
	bv.m = eventNames
	return
}

func (r loglevels) enabled() (names []string) {
	v := r.Int()
	if v == 0 {
		return []string{"none"}
	} else if v == r.Max() {
		return []string{"all"}
	}

	for i := 0; i < 16; i++ {
		if d := 1 << i; v&d != 0 {
			names = append(names, r.m[d])
		}
	}

	return
}

func (r loglevels) Int() (i int) {
	if r.v != nil {
		i = int(r.v.Load())
	}
	return
}

func (r loglevels) Shift(x ...any) loglevels {
	for _, xi := range x {
		if X, ok := r.verifyShiftValue(xi); ok {
			r.shift(X)
		}
	}
	return r
}

func (r loglevels) Unshift(x ...any) loglevels {
	for _, xi := range x {
		if X, ok := r.verifyShiftValue(xi); ok {
			r.unshift(X)
		}
	}
	return r
}

func (r loglevels) Positive(x any) bool {
	if X, ok := r.verifyShiftValue(x); ok {
		return r.positive(X)
	}
	return false
}

func (r loglevels) shift(x int) {
	if r.v == nil || x == 0 {
		return
	}
	if x == r.Max() {
		r.v.Store(uint32(r.Max()))
		return
	}
	r.v.Or(uint32(x))
}

func (r loglevels) unshift(x int) {
	if r.v == nil || x == 0 {
		return
	}
	if x == r.Max() {
		r.v.Store(0)
		return
	}
	r.v.And(^uint32(x))
}

func (r loglevels) positive(x int) bool {
	return r.v != nil && int(r.v.Load())&x != 0
}

func (r loglevels) Max() int { return int(EventAll) }

func (r loglevels) Min() int { return 0 }

func (r loglevels) verifyShiftValue(x any) (int, bool) {
	switch tv := x.(type) {
	case string:
		x = r.strIndex(tv)
	case EventType:
		x = int(tv)
	}
	if X, ok := x.(int); ok && X >= r.Min() && X <= r.Max() {
		return X, true
	}
	return 0, false
}

func (r loglevels) strIndex(name string) int {
	for k, v := range r.m {
		if streqf(v, trimS(name)) {
			return k
		}
	}
	if n, err := atoi(trimS(name)); err == nil {
		if n < 0 {
			return r.Max()
		}
		return n
	}
	return -1
}
