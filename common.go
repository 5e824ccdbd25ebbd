package temporal

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
)

/*
official import aliases.
*/
var (
	mkerr      func(string) error                       = errors.New
	itoa       func(int) string                         = strconv.Itoa
	atoi       func(string) (int, error)                = strconv.Atoi
	fmtInt     func(int64, int) string                  = strconv.FormatInt
	pint       func(string, int, int) (int64, error)    = strconv.ParseInt
	lc         func(string) string                      = strings.ToLower
	join       func([]string, string) string            = strings.Join
	lidx       func(string, string) int                 = strings.LastIndex
	replaceAll func(string, string, string) string      = strings.ReplaceAll
	hasPfx     func(string, string) bool                = strings.HasPrefix
	trimS      func(string) string                      = strings.TrimSpace
	trimR      func(string, string) string              = strings.TrimRight
	streqf     func(string, string) bool                = strings.EqualFold
	strrpt     func(string, int) string                 = strings.Repeat
	newBigInt  func(int64) *big.Int                     = big.NewInt
)

func newStrBuilder() strings.Builder { return strings.Builder{} }

func bool2str(b bool) (s string) {
	if s = `false`; b {
		s = `true`
	}
	return
}

/*
signOf returns -1, 0 or 1 in accordance with the sign of x.
*/
func signOf(x int64) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// floorDiv returns the quotient of a and b rounded toward negative
// infinity, alongside the corresponding non-negative remainder. b
// must be positive.
func floorDiv(a, b int64) (q, r int64) {
	q, r = a/b, a%b
	if r < 0 {
		q--
		r += b
	}
	return
}

// pad writes v as a zero-padded decimal of width w.
func pad(v int64, w int) string {
	s := fmtInt(abs64(v), 10)
	if len(s) < w {
		s = strrpt("0", w-len(s)) + s
	}
	if v < 0 {
		s = "-" + s
	}
	return s
}

// toInt converts a run of ASCII digits to an int; the caller
// guarantees that s contains only digits.
func toInt(s string) (n int) {
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return
}

