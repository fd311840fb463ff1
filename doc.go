// Package sno provides SNOBOL-style matchers over byte views.
//
// A View is a half-open range [begin, end) into a buffer the caller owns.
// Matchers take a subject view and either return it advanced past what they
// consumed, or return it unchanged with false. Nothing here allocates or
// writes to the scanned buffer; Var copies out into a caller buffer.
//
// The pointer forms (Lit, Any, Span, ...) update the subject only on success,
// so they chain the way SNOBOL patterns do:
//
//	v := sno.Bind(line)
//	var n int
//	ok := sno.Skip(&v, sno.Whitespace) && sno.Lit(&v, sno.Bind("width=")) && sno.Int(&v, &n)
//
// A failed chain keeps whatever the earlier links consumed; take a copy of
// the view first, or use pkg/pattern.Seq, when the whole chain must be atomic.
package sno
