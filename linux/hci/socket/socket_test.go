//go:build linux

package socket

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIoctlNumbers(t *testing.T) {
	require.Equal(t, uintptr(0x400448C9), hciUpDevice)
	require.Equal(t, uintptr(0x400448CA), hciDownDevice)
	require.Equal(t, uintptr(0x800448D2), hciGetDeviceList)
	require.Equal(t, uintptr(0x800448D3), hciGetDeviceInfo)
}

func TestUpTwice(t *testing.T) {
	if os.Geteuid() != 0 {
		t.Skip("needs root")
	}
	ids, err := Devices()
	if err != nil || len(ids) == 0 {
		t.Skip("no hci device")
	}

	require.NoError(t, Up(ids[0]))
	require.NoError(t, Up(ids[0]))
}

func TestClosedSocket(t *testing.T) {
	s := &Socket{fd: -1, done: make(chan int)}
	close(s.done)

	n, err := s.Read(make([]byte, 16))
	require.Zero(t, n)
	require.Error(t, err)

	_, err = s.Write([]byte{0x01})
	require.Error(t, err)
	require.Error(t, s.SetFilter(Filter{}))

	// already closed
	require.NoError(t, s.Close())
}
