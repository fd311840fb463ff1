package sno

import (
	"unsafe"

	"github.com/rawbytedev/sno/internal/common"
)

// Cursor is a byte offset into the buffer a View is bound to. Cursors are
// only comparable between views of the same buffer.
type Cursor int

// Null is the cursor of a view bound to nothing. Any negative cursor is
// treated as null.
const Null Cursor = -1

// View is a half-open range [begin, end) over a caller-owned buffer.
// The zero value is an empty view over no buffer; NullView is the view
// produced by binding nil.
type View struct {
	buf   []byte
	begin Cursor
	end   Cursor
}

// NullView has both cursors set to Null. Every matcher fails on it.
var NullView = View{begin: Null, end: Null}

// Bind views s up to its first NUL byte (or its end). The bytes of s are
// aliased, not copied, so Bytes and Buffer of the result must not be
// written to.
func Bind(s string) View {
	b := unsafe.Slice(unsafe.StringData(s), len(s))
	return View{buf: b, begin: 0, end: Cursor(common.Terminated(b))}
}

// BindBytes views b up to its first NUL byte (or its end). A nil slice
// yields NullView; an empty non-nil slice yields an empty valid view.
func BindBytes(b []byte) View {
	if b == nil {
		return NullView
	}
	return View{buf: b, begin: 0, end: Cursor(common.Terminated(b))}
}

// Make stores begin and end verbatim. Null, out of range and inverted
// cursors are all accepted; whether the result makes sense is up to the
// caller.
func Make(buf []byte, begin, end Cursor) View {
	return View{buf: buf, begin: begin, end: end}
}

// Token returns the part of from that was consumed to reach to, that is
// [from.begin, to.begin). Both views must come from the same buffer.
func Token(from, to View) View {
	return View{buf: from.buf, begin: from.begin, end: to.begin}
}

// Size returns the number of bytes in v, or 0 when v is null, inverted or
// has a cursor outside its buffer.
func Size(v View) int {
	return v.Size()
}

func (v View) Size() int {
	if !v.valid(v.begin) || !v.valid(v.end) || v.begin >= v.end {
		return 0
	}
	return int(v.end - v.begin)
}

func (v View) Begin() Cursor  { return v.begin }
func (v View) End() Cursor    { return v.end }

// Buffer returns the whole buffer v is bound to. Treat it as read-only: for
// a view made by Bind it is the string's own memory, and writing to it
// crashes the program.
func (v View) Buffer() []byte { return v.buf }

// IsNull reports whether v is bound to nothing.
func (v View) IsNull() bool {
	return v.begin < 0 && v.end < 0
}

// Empty reports whether v has no bytes left, including null and inverted views.
func (v View) Empty() bool {
	return v.Size() == 0
}

// Bytes returns the bytes of v, aliasing the buffer. The result is capped so
// appending to it cannot overwrite the buffer past end. It is read-only: a
// view made by Bind aliases string memory, which cannot be written.
func (v View) Bytes() []byte {
	n := v.Size()
	if n == 0 {
		return nil
	}
	return v.buf[v.begin:v.end:v.end]
}

// String returns a copy of the bytes of v.
func (v View) String() string {
	return string(v.Bytes())
}

// Peek returns the first byte of v without consuming it.
func (v View) Peek() (byte, bool) {
	if v.Size() == 0 {
		return 0, false
	}
	return v.buf[v.begin], true
}

// valid reports whether c points into v.buf, end position included.
func (v View) valid(c Cursor) bool {
	return c >= 0 && int(c) <= len(v.buf)
}

// bound reports whether v can be used as a subject: both cursors non-null
// and inside the buffer. An empty or inverted view is still bound.
func (v View) bound() bool {
	return v.valid(v.begin) && v.valid(v.end)
}

func (v View) advance(n int) View {
	v.begin += Cursor(n)
	return v
}
