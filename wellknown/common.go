package wellknown

/*
common.go contains byte-level helpers shared by the formats.
*/

import (
	"errors"
	"strings"

	"github.com/JesseCoretta/go-chronos"
)

var lc func(string) string = strings.ToLower

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

/*
digits reads exactly n decimal digits from s at i.
*/
func digits(s string, i, n int) (int, bool) {
	if i < 0 || i+n > len(s) {
		return 0, false
	}
	v := 0
	for k := i; k < i+n; k++ {
		if !isDigit(s[k]) {
			return 0, false
		}
		v = v*10 + int(s[k]-'0')
	}
	return v, true
}

func appendPadded(b *strings.Builder, v, width int) {
	var buf [12]byte
	i := len(buf)
	for v > 0 || i == len(buf) {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	for len(buf)-i < width {
		i--
		buf[i] = '0'
	}
	b.Write(buf[i:])
}

/*
appendFraction writes '.' and the nanoseconds as nine digits, with
trailing zeros dropped down to minDigits. Nothing is written if the
result would be empty.
*/
func appendFraction(b *strings.Builder, nanos uint32, minDigits int) {
	n := 9
	for n > minDigits && nanos%10 == 0 {
		nanos /= 10
		n--
	}
	if n == 0 {
		return
	}
	b.WriteByte('.')
	appendPadded(b, int(nanos), n)
}

/*
scanFraction reads an optional '.' or ',' followed by at least one and
at most maxDigits digits. Digits beyond the ninth are read and dropped.
*/
func scanFraction(s string, i, maxDigits int) (uint32, int, bool) {
	if i >= len(s) || (s[i] != '.' && s[i] != ',') {
		return 0, i, true
	}
	i++
	start := i
	var nanos uint32
	for i < len(s) && isDigit(s[i]) {
		if i-start < 9 {
			nanos = nanos*10 + uint32(s[i]-'0')
		}
		i++
	}
	n := i - start
	if n == 0 || n > maxDigits {
		return 0, i, false
	}
	for ; n < 9; n++ {
		nanos *= 10
	}
	return nanos, i, true
}

/*
offsetFields splits an offset into its sign and absolute hour, minute
and second values.
*/
func offsetFields(o chronos.UtcOffset) (neg bool, h, m, s int) {
	hh, mm, ss := o.AsHMS()
	neg = o.IsNegative()
	return neg, abs(int(hh)), abs(int(mm)), abs(int(ss))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func signByte(neg bool) byte {
	if neg {
		return '-'
	}
	return '+'
}

/*
component returns the name to report for a failed construction: the
range error's component when there is one, or fallback.
*/
func component(err error, fallback string) string {
	if cr, ok := err.(chronos.ComponentRange); ok {
		return cr.Name
	}
	return fallback
}

/*
parseFailure returns a ParseError. Errors from the chronos text
constructors are unwrapped so that the category prefix appears once.
*/
func parseFailure(format, c, input string, err error) ParseError {
	if _, ok := err.(chronos.ComponentRange); !ok {
		if inner := errors.Unwrap(err); inner != nil {
			err = inner
		}
	}
	return ParseError{Format: format, Component: c, Input: input, Err: err}
}
