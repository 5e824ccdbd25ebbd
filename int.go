package temporal

/*
int.go contains the Integer type, an exact signed integer used for
all nanosecond-scale arithmetic.
*/

import (
	"math"
	"math/big"
	"math/bits"
)

/*
Integer implements an immutable, arbitrary-precision signed integer.
Note that *[big.Int] is used internally ONLY if the number overflows
int64; values that fit are kept (and computed) natively.

The zero value is a valid zero. No method ever modifies the receiver
or its operands; each returns a new instance.
*/
type Integer struct {
	big    bool
	native int64    // Stores native integer values
	bigInt *big.Int // Stores big.Int values when necessary; never mutated
}

/*
NewInteger returns an instance of [Integer] supporting any signed
magnitude.

Input types may be int, int32, int64, uint64, string, *[math/big.Int]
or [Integer]. A *[math/big.Int] input is copied.
*/
func NewInteger[T any](v T) (i Integer, err error) {
	switch value := any(v).(type) {
	case int:
		i = Integer{native: int64(value)}
	case int32:
		i = Integer{native: int64(value)}
	case int64:
		i = Integer{native: value}
	case uint64:
		if value > uint64(math.MaxInt64) {
			i = fromBig(new(big.Int).SetUint64(value))
		} else {
			i = Integer{native: int64(value)}
		}
	case *big.Int:
		if value == nil {
			err = fieldErrorf("nil *big.Int input for Integer")
		} else {
			i = fromBig(new(big.Int).Set(value))
		}
	case string:
		if _i, ok := new(big.Int).SetString(value, 10); !ok {
			err = syntaxErrorf("invalid string value for Integer: ", value)
		} else {
			i = fromBig(_i)
		}
	case Integer:
		i = value
	default:
		err = fieldErrorf("unsupported Integer input type")
	}

	return
}

// intOf is the infallible int64 constructor used internally.
func intOf(v int64) Integer { return Integer{native: v} }

// fromBig normalizes b, falling back to the native form when b fits.
// b must not be shared with any other Integer.
func fromBig(b *big.Int) Integer {
	if b.IsInt64() {
		return Integer{native: b.Int64()}
	}
	debugTrace("Integer: big form, bit length ", b.BitLen())
	return Integer{big: true, bigInt: b}
}

/*
Big returns a fresh *[big.Int] form of the receiver instance. The
caller may modify the result freely.
*/
func (r Integer) Big() (i *big.Int) {
	if r.big {
		i = new(big.Int).Set(r.bigInt)
	} else {
		i = newBigInt(r.native)
	}

	return
}

// view returns a read-only big form without copying.
func (r Integer) view() *big.Int {
	if r.big {
		return r.bigInt
	}
	return newBigInt(r.native)
}

/*
IsBig returns a Boolean value indicative of the receiver exceeding
the int64 range.
*/
func (r Integer) IsBig() bool { return r.big }

/*
Int64 returns the int64 form of the receiver alongside a Boolean
value indicative of the value fitting within int64.
*/
func (r Integer) Int64() (int64, bool) {
	if r.big {
		return 0, false
	}
	return r.native, true
}

/*
String returns the base-10 string representation of the receiver.
*/
func (r Integer) String() string {
	if r.big {
		return r.bigInt.String()
	}
	return fmtInt(r.native, 10)
}

/*
Sign returns -1, 0 or 1 in accordance with the receiver's sign.
*/
func (r Integer) Sign() int {
	if r.big {
		return r.bigInt.Sign()
	}
	return signOf(r.native)
}

/*
IsZero returns a Boolean value indicative of a zero value.
*/
func (r Integer) IsZero() bool { return r.Sign() == 0 }

/*
Cmp returns -1, 0 or 1 if the receiver is less than, equal to or
greater than x.
*/
func (r Integer) Cmp(x Integer) int {
	if !r.big && !x.big {
		switch {
		case r.native < x.native:
			return -1
		case r.native > x.native:
			return 1
		}
		return 0
	}
	return r.view().Cmp(x.view())
}

/*
Eq returns a bool indicative of an equality match between the
receiver instance and x.
*/
func (r Integer) Eq(x Integer) bool { return r.Cmp(x) == 0 }

/*
Lt returns a bool indicative of r being less than x.
*/
func (r Integer) Lt(x Integer) bool { return r.Cmp(x) < 0 }

/*
Gt returns a bool indicative of r being greater than x.
*/
func (r Integer) Gt(x Integer) bool { return r.Cmp(x) > 0 }

/*
Neg returns -r.
*/
func (r Integer) Neg() Integer {
	if !r.big && r.native != math.MinInt64 {
		return Integer{native: -r.native}
	}
	return fromBig(new(big.Int).Neg(r.view()))
}

/*
Abs returns |r|.
*/
func (r Integer) Abs() Integer {
	if r.Sign() < 0 {
		return r.Neg()
	}
	return r
}

/*
Add returns r+x.
*/
func (r Integer) Add(x Integer) Integer {
	if !r.big && !x.big {
		s := r.native + x.native
		// overflow iff both operands share a sign that s does not
		if (s^r.native)&(s^x.native) >= 0 {
			return Integer{native: s}
		}
	}
	return fromBig(new(big.Int).Add(r.view(), x.view()))
}

/*
Sub returns r-x.
*/
func (r Integer) Sub(x Integer) Integer {
	if !r.big && !x.big {
		d := r.native - x.native
		if (r.native^x.native)&(d^r.native) >= 0 {
			return Integer{native: d}
		}
	}
	return fromBig(new(big.Int).Sub(r.view(), x.view()))
}

/*
Mul returns r*x.
*/
func (r Integer) Mul(x Integer) Integer {
	if !r.big && !x.big {
		if p, ok := mul64(r.native, x.native); ok {
			return Integer{native: p}
		}
	}
	return fromBig(new(big.Int).Mul(r.view(), x.view()))
}

/*
MulInt64 returns r*x.
*/
func (r Integer) MulInt64(x int64) Integer { return r.Mul(intOf(x)) }

/*
AddInt64 returns r+x.
*/
func (r Integer) AddInt64(x int64) Integer { return r.Add(intOf(x)) }

/*
QuoRem returns the quotient r/x truncated toward zero alongside the
remainder, which bears the sign of r (T-division). x must not be zero.
*/
func (r Integer) QuoRem(x Integer) (q, m Integer) {
	if !r.big && !x.big && !(r.native == math.MinInt64 && x.native == -1) {
		return Integer{native: r.native / x.native}, Integer{native: r.native % x.native}
	}
	qb, mb := new(big.Int).QuoRem(r.view(), x.view(), new(big.Int))
	return fromBig(qb), fromBig(mb)
}

/*
Quo returns the quotient r/x truncated toward zero. x must not be zero.
*/
func (r Integer) Quo(x Integer) Integer {
	q, _ := r.QuoRem(x)
	return q
}

/*
DivMod returns the quotient r/x rounded toward negative infinity
alongside the remainder, which is non-negative. x must be positive.
*/
func (r Integer) DivMod(x Integer) (q, m Integer) {
	q, m = r.QuoRem(x)
	if m.Sign() < 0 {
		q = q.AddInt64(-1)
		m = m.Add(x)
	}
	return
}

func mul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	neg := (a < 0) != (b < 0)
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = uint64(-a)
	}
	if b < 0 {
		ub = uint64(-b)
	}
	hi, lo := bits.Mul64(ua, ub)
	if hi != 0 {
		return 0, false
	}
	if neg {
		if lo > 1<<63 {
			return 0, false
		}
		return -int64(lo), true
	}
	if lo > math.MaxInt64 {
		return 0, false
	}
	return int64(lo), true
}

// mustInt64 returns the int64 form of r or an out-of-range error.
func (r Integer) mustInt64() (int64, error) {
	if v, ok := r.Int64(); ok {
		return v, nil
	}
	return 0, errorFieldOverflow
}
