package record

import "github.com/rawbytedev/sno"

var newline = sno.Bind("\n")

// Lines calls fn for each line of buf with its 1-based number. The line
// view excludes the '\n' and a trailing '\r'. A final line without '\n' is
// still reported; an empty buf has no lines. Returning false from fn stops
// the walk.
func Lines(buf []byte, fn func(n int, line sno.View) bool) {
	// NUL bytes are data here, so the whole buffer is viewed rather than bound
	v := sno.Make(buf, 0, sno.Cursor(len(buf)))
	for n := 1; !v.Empty(); n++ {
		start := v
		v, _ = v.Break(newline)
		line := sno.Token(start, v)
		if b := line.Bytes(); len(b) > 0 && b[len(b)-1] == '\r' {
			line = sno.Make(buf, line.Begin(), line.End()-1)
		}
		v, _ = v.Any(newline)
		if !fn(n, line) {
			return
		}
	}
}
