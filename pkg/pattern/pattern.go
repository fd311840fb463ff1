// Package pattern composes the sno matchers into larger patterns.
//
// Seq is all-or-nothing: when any part fails, the subject comes back as it
// was before the first part ran. Alt is SNOBOL alternation without
// backtracking: the first alternative that matches wins and is never
// revisited. Building a pattern allocates; matching one does not.
package pattern

import "github.com/rawbytedev/sno"

// Matcher advances v past what it matched, or returns v unchanged and false.
type Matcher interface {
	Match(v sno.View) (sno.View, bool)
}

// MatcherFunc adapts a plain function to Matcher.
type MatcherFunc func(v sno.View) (sno.View, bool)

func (f MatcherFunc) Match(v sno.View) (sno.View, bool) {
	return f(v)
}

var none = sno.Bind("")

// usable reports whether v can be matched against at all.
func usable(v sno.View) bool {
	_, ok := v.Skip(none)
	return ok
}

// Leaves. String arguments are bound with sno.Bind, so they end at the first
// NUL byte.

func Lit(s string) Matcher {
	p := sno.Bind(s)
	return MatcherFunc(func(v sno.View) (sno.View, bool) { return v.Lit(p) })
}

func Any(set string) Matcher {
	cs := sno.Bind(set)
	return MatcherFunc(func(v sno.View) (sno.View, bool) { return v.Any(cs) })
}

func NotAny(set string) Matcher {
	cs := sno.Bind(set)
	return MatcherFunc(func(v sno.View) (sno.View, bool) { return v.NotAny(cs) })
}

func Span(set string) Matcher {
	cs := sno.Bind(set)
	return MatcherFunc(func(v sno.View) (sno.View, bool) { return v.Span(cs) })
}

func Break(set string) Matcher {
	cs := sno.Bind(set)
	return MatcherFunc(func(v sno.View) (sno.View, bool) { return v.Break(cs) })
}

func Skip(set string) Matcher {
	cs := sno.Bind(set)
	return MatcherFunc(func(v sno.View) (sno.View, bool) { return v.Skip(cs) })
}

// Int matches a signed decimal integer and stores it in out right away,
// even if an enclosing Seq fails afterwards.
func Int(out *int) Matcher {
	return MatcherFunc(func(v sno.View) (sno.View, bool) {
		rest, n, ok := v.Int()
		if ok && out != nil {
			*out = n
		}
		return rest, ok
	})
}

// Rem matches the rest of the subject, possibly nothing.
func Rem() Matcher {
	return MatcherFunc(func(v sno.View) (sno.View, bool) { return v.Break(none) })
}

// Eos matches only at the end of the subject.
func Eos() Matcher {
	return MatcherFunc(func(v sno.View) (sno.View, bool) {
		return v, usable(v) && v.Empty()
	})
}

// Len matches exactly n bytes.
func Len(n int) Matcher {
	return MatcherFunc(func(v sno.View) (sno.View, bool) {
		if n < 0 || !usable(v) || v.Size() < n {
			return v, false
		}
		return sno.Make(v.Buffer(), v.Begin()+sno.Cursor(n), v.End()), true
	})
}

// Combinators.

// Seq matches each of ms in turn.
func Seq(ms ...Matcher) Matcher {
	return MatcherFunc(func(v sno.View) (sno.View, bool) {
		cur := v
		for _, m := range ms {
			var ok bool
			if cur, ok = m.Match(cur); !ok {
				return v, false
			}
		}
		return cur, true
	})
}

// Alt returns the result of the first of ms that matches.
func Alt(ms ...Matcher) Matcher {
	return MatcherFunc(func(v sno.View) (sno.View, bool) {
		for _, m := range ms {
			if rest, ok := m.Match(v); ok {
				return rest, true
			}
		}
		return v, false
	})
}

// Opt matches m or nothing.
func Opt(m Matcher) Matcher {
	return MatcherFunc(func(v sno.View) (sno.View, bool) {
		if rest, ok := m.Match(v); ok {
			return rest, true
		}
		return v, usable(v)
	})
}

// Arbno matches m zero or more times. It stops as soon as m fails or
// matches without consuming anything.
func Arbno(m Matcher) Matcher {
	return MatcherFunc(func(v sno.View) (sno.View, bool) {
		if !usable(v) {
			return v, false
		}
		cur := v
		for {
			rest, ok := m.Match(cur)
			if !ok || rest.Begin() <= cur.Begin() {
				return cur, true
			}
			cur = rest
		}
	})
}

// Assign stores the bytes m consumed in dst when m matches. Like Int, the
// assignment is immediate.
func Assign(dst *sno.View, m Matcher) Matcher {
	return MatcherFunc(func(v sno.View) (sno.View, bool) {
		rest, ok := m.Match(v)
		if ok && dst != nil {
			*dst = sno.Token(v, rest)
		}
		return rest, ok
	})
}

// Matches reports whether m matches all of v.
func Matches(m Matcher, v sno.View) bool {
	rest, ok := m.Match(v)
	return ok && usable(rest) && rest.Empty()
}
