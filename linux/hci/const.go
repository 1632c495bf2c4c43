package hci

import "time"

// HCI Packet types
const (
	PktTypeCommand uint8 = 0x01
	PktTypeACLData uint8 = 0x02
	PktTypeSCOData uint8 = 0x03
	PktTypeEvent   uint8 = 0x04
	PktTypeVendor  uint8 = 0xFF
)

// Command packet header: packet type, opcode, parameter length.
const cmdHeaderSize = 4

// State is the device state bit-set. Bits are set and cleared independently.
type State uint16

const (
	StateIdle        State = 0x0000
	StateScanning    State = 0x0001
	StatePairing     State = 0x0002
	StateAdvertising State = 0x4000
	StateAbort       State = 0x8000

	// StateActionMask covers the exclusive long running actions.
	StateActionMask State = 0x3FFF
)

func (s State) String() string {
	if s == StateIdle {
		return "idle"
	}
	var out string
	add := func(b State, name string) {
		if s&b == 0 {
			return
		}
		if out != "" {
			out += "|"
		}
		out += name
	}
	add(StateScanning, "scanning")
	add(StatePairing, "pairing")
	add(StateAdvertising, "advertising")
	add(StateAbort, "abort")
	return out
}

const (
	// DefaultActionTimeout bounds every command exchange.
	DefaultActionTimeout = 2000 * time.Millisecond

	// controller read buffer, larger than any HCI frame
	readBufferSize = 4096
)

// LE scan timing used by Scan, in units of 0.625 ms.
const (
	scanIntervalGeneral = 0x10
	scanIntervalLimited = 0x12
)

// Advertising parameters used by Advertising.
const (
	advInterval   = 0x0800
	advChannelMap = 0x07
)

// Inquiry access codes [Assigned Numbers, Baseband].
const (
	LAPGeneral uint32 = 0x9E8B33
	LAPLimited uint32 = 0x9E8B00

	// InquiryFlushCache drops cached names before an inquiry.
	InquiryFlushCache uint8 = 0x01

	inquiryLengthMax = 0x30
)

// IOCapability is the local IO capability announced during Secure Simple Pairing.
type IOCapability uint8

const (
	DisplayOnly     IOCapability = 0x00
	DisplayYesNo    IOCapability = 0x01
	KeyboardOnly    IOCapability = 0x02
	NoInputNoOutput IOCapability = 0x03
	KeyboardDisplay IOCapability = 0x04
	InvalidIO       IOCapability = 0xFF
)

// Authentication requirements sent with the IO capability reply: dedicated
// bonding, MITM protection not required.
const authDedicatedBonding = 0x02

// Disconnect reason used at the end of classic pairing.
const reasonRemoteUser = 0x13

// CreateConnection defaults [Vol 2, Part E, 7.1.5].
const (
	connPacketTypes     = 0xCC18 // DM1 DH1 DM3 DH3 DM5 DH5
	connPageScanR1      = 0x01
	connAllowRoleSwitch = 0x01
)
