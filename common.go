package chronos

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

/*
official import aliases.
*/
var (
	mkerr      func(string) error                     = errors.New
	itoa       func(int) string                       = strconv.Itoa
	atoi       func(string) (int, error)              = strconv.Atoi
	fmtInt     func(int64, int) string                = strconv.FormatInt
	fmtUint    func(uint64, int) string               = strconv.FormatUint
	fmtFloat   func(float64, byte, int, int) string   = strconv.FormatFloat
	pint       func(string, int, int) (int64, error)  = strconv.ParseInt
	puint      func(string, int, int) (uint64, error) = strconv.ParseUint
	lc         func(string) string                    = strings.ToLower
	split      func(string, string) []string          = strings.Split
	join       func([]string, string) string          = strings.Join
	stridxb    func(string, byte) int                 = strings.IndexByte
	lidx       func(string, string) int               = strings.LastIndex
	hasPfx     func(string, string) bool              = strings.HasPrefix
	trimS      func(string) string                    = strings.TrimSpace
	cntns      func(string, string) bool              = strings.Contains
	streqf     func(string, string) bool              = strings.EqualFold
	replaceAll func(string, string, string) string    = strings.ReplaceAll
	newBigInt  func(int64) *big.Int                   = big.NewInt
)

func newStrBuilder() strings.Builder { return strings.Builder{} }

func bool2str(b bool) (s string) {
	if s = `false`; b {
		s = `true`
	}
	return
}

/*
divFloor returns the quotient of a and b rounded toward negative
infinity. b must be non-zero.
*/
func divFloor[T constraints.Signed](a, b T) T {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

/*
modFloor returns the remainder of a and b carrying the sign of b.
*/
func modFloor[T constraints.Signed](a, b T) T {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

func checkedAdd64(a, b int64) (int64, bool) {
	c := a + b
	if (c > a) != (b > 0) {
		return 0, false
	}
	return c, true
}

func checkedSub64(a, b int64) (int64, bool) {
	c := a - b
	if (c < a) != (b > 0) {
		return 0, false
	}
	return c, true
}

func checkedMul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) || c/b != a {
		return 0, false
	}
	return c, true
}

/*
saturatingMul64 multiplies a and b, clamping the product to the
int64 limits rather than wrapping.
*/
func saturatingMul64(a, b int64) int64 {
	if c, ok := checkedMul64(a, b); ok {
		return c
	}
	if (a < 0) == (b < 0) {
		return math.MaxInt64
	}
	return math.MinInt64
}

func abs64(v int64) uint64 {
	if v < 0 {
		return uint64(^v) + 1
	}
	return uint64(v)
}

/*
bigToInt64 clamps x into the int64 domain, returning false if any
clamping took place.
*/
func bigToInt64(x *big.Int) (int64, bool) {
	if x.IsInt64() {
		return x.Int64(), true
	} else if x.Sign() < 0 {
		return math.MinInt64, false
	}
	return math.MaxInt64, false
}

/*
appendPadded writes the decimal form of v into b, left-padded with
zeroes to at least width digits.
*/
func appendPadded(b *strings.Builder, v uint64, width int) {
	s := fmtUint(v, 10)
	for i := len(s); i < width; i++ {
		b.WriteByte('0')
	}
	b.WriteString(s)
}

/*
appendFraction writes nanos as a fractional suffix, including the
leading dot, using the fewest digits that represent it exactly. A
zero value writes minDigits zeroes (or nothing, when minDigits is 0).
*/
func appendFraction(b *strings.Builder, nanos uint32, minDigits int) {
	digits := 9
	for digits > minDigits && nanos%10 == 0 && nanos != 0 {
		nanos /= 10
		digits--
	}
	if nanos == 0 {
		digits = minDigits
	}
	if digits == 0 {
		return
	}
	b.WriteByte('.')
	appendPadded(b, uint64(nanos), digits)
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

/*
atoiN reads exactly n decimal digits from s starting at i.
*/
func atoiN(s string, i, n int) (v int64, ok bool) {
	if i < 0 || i+n > len(s) || n == 0 {
		return
	}
	for k := i; k < i+n; k++ {
		if !isDigit(s[k]) {
			return 0, false
		}
		v = v*10 + int64(s[k]-'0')
	}
	return v, true
}
