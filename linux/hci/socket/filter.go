package socket

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// FilterSize is the size of struct hci_filter as copied to and from the kernel.
const FilterSize = 16

// Filter mirrors the kernel's struct hci_filter. Only packet types and
// events whose bit is set are delivered on a raw HCI socket.
type Filter struct {
	TypeMask  uint32
	EventMask [2]uint32
	Opcode    uint16
}

// Clear drops every packet type and event.
func (f *Filter) Clear() {
	*f = Filter{}
}

// SetPacketType enables delivery of packet type t.
func (f *Filter) SetPacketType(t uint8) {
	if t == 0xff {
		// vendor packets share bit 0
		t = 0
	}
	f.TypeMask |= 1 << (t & 31)
}

// SetEvent enables delivery of event code e.
func (f *Filter) SetEvent(e uint8) {
	f.EventMask[e>>5] |= 1 << (e & 31)
}

// ClearEvent disables delivery of event code e.
func (f *Filter) ClearEvent(e uint8) {
	f.EventMask[e>>5] &^= 1 << (e & 31)
}

// HasEvent reports whether event code e is enabled.
func (f Filter) HasEvent(e uint8) bool {
	return f.EventMask[e>>5]&(1<<(e&31)) != 0
}

// HasPacketType reports whether packet type t is enabled.
func (f Filter) HasPacketType(t uint8) bool {
	if t == 0xff {
		t = 0
	}
	return f.TypeMask&(1<<(t&31)) != 0
}

// Marshal encodes the filter in the kernel layout.
func (f Filter) Marshal() []byte {
	b := make([]byte, FilterSize)
	binary.LittleEndian.PutUint32(b[0:], f.TypeMask)
	binary.LittleEndian.PutUint32(b[4:], f.EventMask[0])
	binary.LittleEndian.PutUint32(b[8:], f.EventMask[1])
	binary.LittleEndian.PutUint16(b[12:], f.Opcode)
	return b
}

// UnmarshalFilter decodes a kernel filter. Trailing padding is optional.
func UnmarshalFilter(b []byte) (Filter, error) {
	if len(b) < 14 {
		return Filter{}, errors.Errorf("short filter: %d bytes", len(b))
	}
	return Filter{
		TypeMask:  binary.LittleEndian.Uint32(b[0:]),
		EventMask: [2]uint32{binary.LittleEndian.Uint32(b[4:]), binary.LittleEndian.Uint32(b[8:])},
		Opcode:    binary.LittleEndian.Uint16(b[12:]),
	}, nil
}
