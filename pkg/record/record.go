// Package record parses line-oriented "key = value" text with the sno
// matchers. Values that parse as a whole integer are kept as ints; anything
// else is kept as text up to an optional trailing comment.
package record

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/rawbytedev/sno"
	"github.com/rawbytedev/sno/internal/common"
)

const (
	DefaultSeparator = "="
	DefaultComment   = "#;"
	DefaultMaxValue  = 256
)

var (
	ErrValueTooLong = errors.New("value too long")

	keyChars = sno.Bind(common.Alnum + "_.-")
	blanks   = sno.Bind(" \t\v\f")
)

type Kind int

const (
	KindInt Kind = iota
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Entry is one parsed "key = value" line.
type Entry struct {
	Line int
	Key  string
	Kind Kind
	Int  int
	Text string
}

// Value returns the int or the text, depending on Kind.
func (e Entry) Value() any {
	if e.Kind == KindInt {
		return e.Int
	}
	return e.Text
}

// SyntaxError points at the byte where a line stopped matching.
type SyntaxError struct {
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

// Parser reuses one scratch buffer for text values, so a Parser must not be
// used from several goroutines at once.
type Parser struct {
	// OnError receives the errors of skipped lines when Strict is off.
	OnError func(err error)

	strict  bool
	sep     sno.View
	comment sno.View
	scratch []byte
}

func NewParser(opts Options) *Parser {
	if opts.Separator == "" {
		opts.Separator = DefaultSeparator
	}
	if opts.MaxValue <= 0 {
		opts.MaxValue = DefaultMaxValue
	}
	return &Parser{
		strict:  opts.Strict,
		sep:     sno.Bind(opts.Separator),
		comment: sno.Bind(opts.Comment),
		// Var needs one byte past the value for its terminator
		scratch: make([]byte, opts.MaxValue+1),
	}
}

// ParseLine parses one line, as produced by Lines. ok is false for blank and
// comment lines.
func (p *Parser) ParseLine(n int, line sno.View) (e Entry, ok bool, err error) {
	v, _ := line.Skip(blanks)
	if v.Empty() {
		return Entry{}, false, nil
	}
	if _, ok = v.Any(p.comment); ok {
		return Entry{}, false, nil
	}

	start := v
	if v, ok = v.Span(keyChars); !ok {
		return Entry{}, false, p.syntaxError(n, line, v, "expected key")
	}
	e = Entry{Line: n, Key: sno.Token(start, v).String()}

	v, _ = v.Skip(blanks)
	if v, ok = v.Lit(p.sep); !ok {
		return Entry{}, false, p.syntaxError(n, line, v, fmt.Sprintf("expected %q after key", p.sep.String()))
	}
	v, _ = v.Skip(blanks)

	if rest, i, ok := v.Int(); ok && p.trailing(rest) {
		e.Kind, e.Int = KindInt, i
		return e, true, nil
	}

	value := v
	v, _ = v.Break(p.comment)
	text := trimRight(sno.Token(value, v))
	_, size, ok := text.Var(p.scratch)
	if !ok {
		return Entry{}, false, errors.Wrapf(ErrValueTooLong, "line %d: %d bytes, limit %d", n, text.Size(), len(p.scratch)-1)
	}
	e.Kind, e.Text = KindText, string(p.scratch[:size])
	return e, true, nil
}

// Parse parses every line of buf. In strict mode it stops at the first bad
// line; otherwise bad lines go to OnError and parsing continues.
func (p *Parser) Parse(buf []byte) ([]Entry, error) {
	var (
		entries []Entry
		err     error
	)
	Lines(buf, func(n int, line sno.View) bool {
		e, ok, lineErr := p.ParseLine(n, line)
		if lineErr != nil {
			if p.strict {
				err = lineErr
				return false
			}
			if p.OnError != nil {
				p.OnError(lineErr)
			}
			return true
		}
		if ok {
			entries = append(entries, e)
		}
		return true
	})
	return entries, err
}

// trailing reports whether only blanks and a comment follow an integer.
func (p *Parser) trailing(rest sno.View) bool {
	rest, _ = rest.Skip(blanks)
	if rest.Empty() {
		return true
	}
	_, ok := rest.Any(p.comment)
	return ok
}

func (p *Parser) syntaxError(n int, line, at sno.View, msg string) error {
	return &SyntaxError{Line: n, Column: int(at.Begin()-line.Begin()) + 1, Msg: msg}
}

// trimRight drops trailing blanks from v by walking its blank-separated words.
func trimRight(v sno.View) sno.View {
	start, last := v, v
	for !v.Empty() {
		v, _ = v.Break(blanks)
		last = v
		v, _ = v.Skip(blanks)
	}
	return sno.Token(start, last)
}
