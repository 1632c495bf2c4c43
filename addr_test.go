package bluehci

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddressString(t *testing.T) {
	a := AddressFromBytes([6]byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66})
	require.True(t, a.IsValid())
	require.Equal(t, 6, a.Len())
	require.Equal(t, "66:55:44:33:22:11", a.String())
	require.Equal(t, "66-55-44", a.OUI())
	require.Equal(t, []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66}, a.Bytes())
}

func TestParseAddress(t *testing.T) {
	a := ParseAddress("66:55:44:33:22:11")
	require.True(t, a.IsValid())
	require.Equal(t, [6]byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66}, a.Array())

	// lower case round trips to upper case
	require.Equal(t, "AA:BB:CC:DD:EE:FF", ParseAddress("aa:bb:cc:dd:ee:ff").String())

	for _, s := range []string{
		"",
		"66:55:44:33:22",
		"66:55:44:33:22:11:00",
		"66:55:44:33:22:1",
		"66:55:44:33:22:zz",
		"665544332211",
	} {
		require.False(t, ParseAddress(s).IsValid(), s)
	}
}

func TestAddressInvalid(t *testing.T) {
	var a Address
	require.False(t, a.IsValid())
	require.Zero(t, a.Len())
	require.Nil(t, a.Bytes())
	require.Equal(t, "", a.String())
	require.Equal(t, "", a.OUI())
}

func TestAddressEqual(t *testing.T) {
	a := ParseAddress("66:55:44:33:22:11")
	require.True(t, a.Equal(AddressFromBytes([6]byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66})))
	require.False(t, a.Equal(Address{}))
	require.False(t, a.Equal(AnyAddress()))
	require.True(t, Address{}.Equal(Address{}))

	require.True(t, AnyAddress().IsValid())
	require.Equal(t, "00:00:00:00:00:00", AnyAddress().String())
}

func TestAddressRoundTrip(t *testing.T) {
	bb := [][6]byte{
		{},
		{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
		{0x0A, 0x00, 0xF0, 0x0F, 0xA0, 0x01},
	}
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		var b [6]byte
		r.Read(b[:])
		bb = append(bb, b)
	}

	for _, b := range bb {
		a := AddressFromBytes(b)
		require.True(t, a.IsValid())
		p := ParseAddress(a.String())
		require.True(t, p.Equal(a), "%x: %q", b, a.String())
		require.Equal(t, b[:], p.Bytes())
	}
}
