//go:build linux

package bluehci

import (
	"golang.org/x/sys/unix"

	"github.com/rigado/bluehci/linux/hci/socket"
	"github.com/rigado/bluehci/sliceops"
)

// AddressFromDevice returns the address of local adapter id.
// A failed lookup yields an invalid address.
func AddressFromDevice(id int) Address {
	a, _ := DefaultDevice(id)
	return a
}

// Default returns the address of the first local adapter that is up.
func Default() (Address, bool) {
	id, err := socket.Route(nil)
	if err != nil {
		GetLogger().Debugf("no default adapter: %v", err)
		return Address{}, false
	}
	return DefaultDevice(id)
}

// DefaultDevice returns the address of local adapter id.
func DefaultDevice(id int) (Address, bool) {
	if id < 0 {
		return Address{}, false
	}
	b, err := socket.DeviceAddress(id)
	if err != nil {
		GetLogger().Debugf("hci%d address lookup: %v", id, err)
		return Address{}, false
	}
	return AddressFromBytes(b), true
}

// HCIEndpoint returns a socket address for the adapter owning this address on
// the given HCI channel, e.g. unix.HCI_CHANNEL_RAW.
func (a Address) HCIEndpoint(channel uint16) (*unix.SockaddrHCI, bool) {
	if !a.IsValid() {
		return nil, false
	}
	b := a.b
	id, err := socket.Route(&b)
	if err != nil {
		return nil, false
	}
	return &unix.SockaddrHCI{Dev: uint16(id), Channel: channel}, true
}

// L2CAPEndpoint returns a socket address for a connection oriented channel
// to this device.
func (a Address) L2CAPEndpoint(addrType uint8, cid, psm uint16) *unix.SockaddrL2 {
	// SockaddrL2 takes the address most significant byte first.
	return &unix.SockaddrL2{
		PSM:      psm,
		CID:      cid,
		Addr:     sliceops.SwapAddr(a.b),
		AddrType: addrType,
	}
}
