package common

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTerminated(t *testing.T) {
	require.Equal(t, 0, Terminated(nil))
	require.Equal(t, 3, Terminated([]byte("abc")))
	require.Equal(t, 2, Terminated([]byte("ab\x00cd")))
	require.Equal(t, 0, Terminated([]byte{0}))
}

func TestAccumDecimal(t *testing.T) {
	x, ok := AccumDecimal([]byte("0042"), math.MaxUint64)
	require.True(t, ok)
	require.Equal(t, uint64(42), x)

	max := strconv.FormatUint(math.MaxInt64, 10)
	x, ok = AccumDecimal([]byte(max), math.MaxInt64)
	require.True(t, ok)
	require.Equal(t, uint64(math.MaxInt64), x)

	_, ok = AccumDecimal([]byte("9223372036854775808"), math.MaxInt64)
	require.False(t, ok)

	_, ok = AccumDecimal([]byte("99999999999999999999"), math.MaxUint64)
	require.False(t, ok)

	_, ok = AccumDecimal([]byte("12a"), math.MaxUint64)
	require.False(t, ok)
}
