package sno

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// same reports whether a and b are bit-identical views.
func same(a, b View) bool {
	return a.begin == b.begin && a.end == b.end &&
		len(a.buf) == len(b.buf) && unsafe.SliceData(a.buf) == unsafe.SliceData(b.buf)
}

// requireSame fails unless got is bit-identical to want.
func requireSame(t *testing.T, want, got View) {
	t.Helper()
	require.Equal(t, want.begin, got.begin, "begin moved")
	require.Equal(t, want.end, got.end, "end moved")
	require.Equal(t, len(want.buf), len(got.buf))
	require.True(t, unsafe.SliceData(want.buf) == unsafe.SliceData(got.buf), "buffer changed")
}

func TestBind(t *testing.T) {
	v := Bind("TEST")
	require.Equal(t, Cursor(0), v.Begin())
	require.Equal(t, Cursor(4), v.End())
	require.Equal(t, 4, v.Size())
	require.False(t, v.IsNull())

	v = Bind("")
	require.Equal(t, v.Begin(), v.End())
	require.Equal(t, 0, v.Size())
	require.False(t, v.IsNull())

	v = Bind("ab\x00cd")
	require.Equal(t, 2, v.Size())
	require.Equal(t, "ab", v.String())
}

func TestBindBytes(t *testing.T) {
	v := BindBytes(nil)
	require.True(t, v.IsNull())
	require.Equal(t, Null, v.Begin())
	require.Equal(t, Null, v.End())
	require.Equal(t, 0, v.Size())

	v = BindBytes([]byte{})
	require.False(t, v.IsNull())
	require.True(t, v.Empty())

	buf := []byte("line\x00junk")
	v = BindBytes(buf)
	require.Equal(t, "line", v.String())
	require.Len(t, v.Buffer(), len(buf))
}

func TestMake(t *testing.T) {
	buf := []byte("HELLO")

	v := Make(buf, 1, 4)
	require.Equal(t, Cursor(1), v.Begin())
	require.Equal(t, Cursor(4), v.End())
	require.Equal(t, "ELL", v.String())

	require.Equal(t, 0, Make(buf, 0, 0).Size())

	v = Make(buf, Null, 3)
	require.Equal(t, Null, v.Begin())
	require.Equal(t, Cursor(3), v.End())
	require.False(t, v.IsNull())

	v = Make(buf, 3, Null)
	require.Equal(t, Cursor(3), v.Begin())
	require.Equal(t, Null, v.End())

	v = Make(nil, Null, Null)
	require.True(t, v.IsNull())

	v = Make(buf, 3, 1)
	require.Equal(t, Cursor(3), v.Begin())
	require.Equal(t, Cursor(1), v.End())
}

func TestSize(t *testing.T) {
	buf := []byte("TEST")
	cases := []struct {
		name string
		v    View
		want int
	}{
		{"bound", Bind("ABC"), 3},
		{"empty", Make(buf, 2, 2), 0},
		{"null begin", Make(buf, Null, 4), 0},
		{"null end", Make(buf, 0, Null), 0},
		{"both null", Make(nil, Null, Null), 0},
		{"null view", NullView, 0},
		{"inverted", Make(buf, 3, 1), 0},
		{"end past buffer", Make(buf, 0, 9), 0},
		{"zero value", View{}, 0},
		{"sub range", Make(buf, 1, 3), 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Size(tc.v))
		})
	}
}

func TestBytesCapped(t *testing.T) {
	buf := []byte("abcdef")
	v := Make(buf, 1, 3)
	b := v.Bytes()
	require.Equal(t, []byte("bc"), b)
	require.Equal(t, 2, cap(b))
	_ = append(b, 'X')
	require.Equal(t, "abcdef", string(buf))

	require.Nil(t, Make(buf, 3, 1).Bytes())
	require.Nil(t, NullView.Bytes())
}

func TestPeek(t *testing.T) {
	c, ok := Bind("xy").Peek()
	require.True(t, ok)
	require.Equal(t, byte('x'), c)

	_, ok = Bind("").Peek()
	require.False(t, ok)
	_, ok = NullView.Peek()
	require.False(t, ok)
}

func TestToken(t *testing.T) {
	start := Bind("width = 80")
	v := start
	require.True(t, Span(&v, Letters))
	require.Equal(t, "width", Token(start, v).String())

	require.Equal(t, 0, Token(v, start).Size())
}
