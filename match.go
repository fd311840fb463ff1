package sno

import "bytes"

// Lit matches p exactly at the start of v. An empty p matches without
// consuming anything.
func (v View) Lit(p View) (View, bool) {
	if !v.bound() || !usable(p) {
		return v, false
	}
	pat := p.Bytes()
	if len(pat) == 0 {
		return v, true
	}
	if !bytes.HasPrefix(v.Bytes(), pat) {
		return v, false
	}
	return v.advance(len(pat)), true
}

// Any matches one byte that is in set. An empty set matches nothing.
func (v View) Any(set View) (View, bool) {
	if !v.bound() || !usable(set) {
		return v, false
	}
	c, ok := v.Peek()
	if !ok || !member(c, set) {
		return v, false
	}
	return v.advance(1), true
}

// NotAny matches one byte that is not in set. An empty set forbids nothing,
// so any byte matches.
func (v View) NotAny(set View) (View, bool) {
	if !v.bound() || !usable(set) {
		return v, false
	}
	c, ok := v.Peek()
	if !ok || member(c, set) {
		return v, false
	}
	return v.advance(1), true
}

// Span matches the longest run of bytes in set. At least one byte must match.
func (v View) Span(set View) (View, bool) {
	if !v.bound() || !usable(set) {
		return v, false
	}
	n := run(v.Bytes(), set, true)
	if n == 0 {
		return v, false
	}
	return v.advance(n), true
}

// Break consumes bytes up to, not including, the first byte in set, or the
// rest of v when none is. It only fails on an unusable subject or set.
func (v View) Break(set View) (View, bool) {
	if !v.bound() || !usable(set) {
		return v, false
	}
	return v.advance(run(v.Bytes(), set, false)), true
}

// Skip consumes zero or more bytes in set. It only fails on an unusable
// subject or set; calling it twice never consumes more.
func (v View) Skip(set View) (View, bool) {
	if !v.bound() || !usable(set) {
		return v, false
	}
	return v.advance(run(v.Bytes(), set, true)), true
}

// The functions below update *s only when the match succeeds, and return
// false for a nil s.

func Lit(s *View, p View) bool {
	if s == nil {
		return false
	}
	v, ok := s.Lit(p)
	if ok {
		*s = v
	}
	return ok
}

func Any(s *View, set View) bool {
	if s == nil {
		return false
	}
	v, ok := s.Any(set)
	if ok {
		*s = v
	}
	return ok
}

func NotAny(s *View, set View) bool {
	if s == nil {
		return false
	}
	v, ok := s.NotAny(set)
	if ok {
		*s = v
	}
	return ok
}

func Span(s *View, set View) bool {
	if s == nil {
		return false
	}
	v, ok := s.Span(set)
	if ok {
		*s = v
	}
	return ok
}

func Break(s *View, set View) bool {
	if s == nil {
		return false
	}
	v, ok := s.Break(set)
	if ok {
		*s = v
	}
	return ok
}

func Skip(s *View, set View) bool {
	if s == nil {
		return false
	}
	v, ok := s.Skip(set)
	if ok {
		*s = v
	}
	return ok
}
