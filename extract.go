package sno

import (
	"math"

	"github.com/rawbytedev/sno/internal/common"
)

// Var copies all of v into dst followed by a NUL byte and consumes v.
// dst must be longer than Size(v); otherwise nothing is written and v is
// returned unchanged. n is the number of bytes copied, terminator excluded.
func (v View) Var(dst []byte) (rest View, n int, ok bool) {
	if !v.bound() || dst == nil {
		return v, 0, false
	}
	n = v.Size()
	if len(dst) <= n {
		return v, 0, false
	}
	copy(dst, v.Bytes())
	dst[n] = 0
	if n > 0 {
		v.begin = v.end
	}
	return v, n, true
}

// Int parses an optional sign followed by one or more decimal digits.
// Bytes after the last digit are left in rest. Values outside the range of
// int fail like any other mismatch.
func (v View) Int() (rest View, n int, ok bool) {
	if !v.bound() {
		return v, 0, false
	}
	t, signed := v.Any(signSet)
	neg := signed && v.buf[v.begin] == '-'

	digits := t
	if t, ok = t.Span(digitSet); !ok {
		return v, 0, false
	}

	limit := uint64(math.MaxInt)
	if neg {
		limit++
	}
	mag, ok := common.AccumDecimal(Token(digits, t).Bytes(), limit)
	if !ok {
		return v, 0, false
	}
	if neg {
		return t, int(-mag), true
	}
	return t, int(mag), true
}

// Var is the pointer form of View.Var.
func Var(s *View, dst []byte) bool {
	if s == nil {
		return false
	}
	v, _, ok := s.Var(dst)
	if ok {
		*s = v
	}
	return ok
}

// Int is the pointer form of View.Int. out is only written on success.
func Int(s *View, out *int) bool {
	if s == nil || out == nil {
		return false
	}
	v, n, ok := s.Int()
	if !ok {
		return false
	}
	*s, *out = v, n
	return true
}
