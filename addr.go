package bluehci

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/rigado/bluehci/sliceops"
)

// Address types used when deriving connection endpoints.
const (
	BREDRAddress    uint8 = 0x00
	LEPublicAddress uint8 = 0x01
	LERandomAddress uint8 = 0x02
)

const addrLen = 6

// Address is a Bluetooth device address.
// The bytes are kept in wire order (least significant byte first), the
// string form is most significant byte first.
// The zero value is an invalid address.
type Address struct {
	b      [addrLen]byte
	length uint8
}

// AddressFromBytes returns a valid address holding b in wire order.
func AddressFromBytes(b [6]byte) Address {
	return Address{b: b, length: addrLen}
}

// ParseAddress parses a colon separated hex address such as "66:55:44:33:22:11".
// Malformed input yields an invalid address.
func ParseAddress(s string) Address {
	parts := strings.Split(s, ":")
	if len(parts) != addrLen {
		return Address{}
	}

	var be [addrLen]byte
	for i, p := range parts {
		if len(p) != 2 {
			return Address{}
		}
		v, err := hex.DecodeString(p)
		if err != nil {
			return Address{}
		}
		be[i] = v[0]
	}

	return AddressFromBytes(sliceops.SwapAddr(be))
}

// AnyAddress returns the all zero address, BDADDR_ANY.
func AnyAddress() Address {
	return AddressFromBytes([addrLen]byte{})
}

// IsValid reports whether the address holds a full device address.
func (a Address) IsValid() bool {
	return a.length == addrLen
}

// Len returns the valid length, 0 or 6.
func (a Address) Len() int {
	return int(a.length)
}

// Bytes returns the address in wire order, or nil if invalid.
func (a Address) Bytes() []byte {
	if !a.IsValid() {
		return nil
	}
	out := make([]byte, addrLen)
	copy(out, a.b[:])
	return out
}

// Array returns the address in wire order.
func (a Address) Array() [6]byte {
	return a.b
}

// Equal compares the valid part of both addresses.
func (a Address) Equal(o Address) bool {
	return a.length == o.length && bytes.Equal(a.b[:a.length], o.b[:o.length])
}

func (a Address) String() string {
	if !a.IsValid() {
		return ""
	}
	be := sliceops.SwapBuf(a.b[:])
	return strings.ToUpper(fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", be[0], be[1], be[2], be[3], be[4], be[5]))
}

// OUI returns the organizationally unique identifier, e.g. "66-55-44".
func (a Address) OUI() string {
	if !a.IsValid() {
		return ""
	}
	return fmt.Sprintf("%02X-%02X-%02X", a.b[5], a.b[4], a.b[3])
}
