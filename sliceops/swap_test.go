package sliceops

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSwapBuf(t *testing.T) {
	in := []byte{1, 2, 3, 4, 5}
	require.Equal(t, []byte{5, 4, 3, 2, 1}, SwapBuf(in))
	require.Equal(t, []byte{1, 2, 3, 4, 5}, in)

	require.Equal(t, []byte{}, SwapBuf(nil))
	require.Equal(t, []byte{2, 1}, SwapBuf([]byte{1, 2}))
}

func TestSwapAddr(t *testing.T) {
	a := [6]byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66}
	require.Equal(t, [6]byte{0x66, 0x55, 0x44, 0x33, 0x22, 0x11}, SwapAddr(a))
	require.Equal(t, a, SwapAddr(SwapAddr(a)))
}
