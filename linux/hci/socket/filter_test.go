package socket

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterBits(t *testing.T) {
	var f Filter
	f.SetPacketType(0x04)
	f.SetEvent(0x0E)
	f.SetEvent(0x3E)

	require.True(t, f.HasPacketType(0x04))
	require.False(t, f.HasPacketType(0x02))
	require.True(t, f.HasEvent(0x0E))
	require.True(t, f.HasEvent(0x3E))
	require.False(t, f.HasEvent(0x0F))

	require.Equal(t, uint32(1<<4), f.TypeMask)
	require.Equal(t, [2]uint32{1 << 0x0E, 1 << (0x3E - 32)}, f.EventMask)

	f.ClearEvent(0x3E)
	require.False(t, f.HasEvent(0x3E))

	f.Clear()
	require.Equal(t, Filter{}, f)
}

func TestFilterVendorPacket(t *testing.T) {
	var f Filter
	f.SetPacketType(0xFF)
	require.Equal(t, uint32(1), f.TypeMask)
	require.True(t, f.HasPacketType(0xFF))
}

func TestFilterMarshal(t *testing.T) {
	f := Filter{TypeMask: 0x10, EventMask: [2]uint32{0x0000C000, 0x40000000}, Opcode: 0x0C03}

	b := f.Marshal()
	require.Equal(t, []byte{
		0x10, 0, 0, 0,
		0x00, 0xC0, 0, 0,
		0, 0, 0, 0x40,
		0x03, 0x0C, 0, 0,
	}, b)

	g, err := UnmarshalFilter(b)
	require.NoError(t, err)
	require.Equal(t, f, g)

	// without padding
	g, err = UnmarshalFilter(b[:14])
	require.NoError(t, err)
	require.Equal(t, f, g)

	_, err = UnmarshalFilter(b[:10])
	require.Error(t, err)
}
