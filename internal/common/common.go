package common

import "bytes"

// Byte classes shared by the matchers and the record parser.
const (
	Digits     = "0123456789"
	Signs      = "+-"
	Whitespace = " \t\r\n\v\f"
	Lower      = "abcdefghijklmnopqrstuvwxyz"
	Upper      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Letters    = Lower + Upper
	Alnum      = Letters + Digits
)

// Terminated returns the length of b up to its first NUL byte, or len(b)
// when b carries no terminator.
func Terminated(b []byte) int {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return i
	}
	return len(b)
}

// AccumDecimal folds the ASCII digits in b into an unsigned value.
// It reports false as soon as the value would exceed limit; b must hold
// digits only.
func AccumDecimal(b []byte, limit uint64) (uint64, bool) {
	var x uint64
	for _, c := range b {
		d := uint64(c - '0')
		if d > 9 || x > (limit-d)/10 {
			return 0, false
		}
		x = x*10 + d
	}
	return x, true
}
