package sno

import (
	"bytes"

	"github.com/rawbytedev/sno/internal/common"
)

// Predefined charsets. A charset is any View; only membership matters.
var (
	Digits     = Bind(common.Digits)
	Signs      = Bind(common.Signs)
	Whitespace = Bind(common.Whitespace)
	Letters    = Bind(common.Letters)
	Alnum      = Bind(common.Alnum)
)

// private copies so Int keeps working if the exported sets are reassigned
var (
	digitSet = Bind(common.Digits)
	signSet  = Bind(common.Signs)
)

// member reports whether c is in set. Null and empty sets have no members.
func member(c byte, set View) bool {
	return bytes.IndexByte(set.Bytes(), c) >= 0
}

// run counts the leading bytes of b whose membership in set equals in.
func run(b []byte, set View, in bool) int {
	n := 0
	for n < len(b) && member(b[n], set) == in {
		n++
	}
	return n
}

// usable reports whether set may be passed as a charset or pattern: its
// begin cursor must be non-null and inside its buffer.
func usable(set View) bool {
	return set.valid(set.begin)
}
