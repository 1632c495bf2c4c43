package evt

import (
	"encoding/binary"
	"fmt"
)

const pktTypeEvent = 0x04

// Event is a raw HCI event record: event code, parameter length, parameters.
type Event []byte

// Parse strips the packet type from a raw socket frame and returns the
// self delimited event it carries. Frames shorter than the header, or whose
// declared parameter length exceeds the frame, are rejected.
func Parse(frame []byte) (Event, error) {
	if len(frame) < 1+HeaderSize {
		return nil, fmt.Errorf("short frame: % X", frame)
	}
	if frame[0] != pktTypeEvent {
		return nil, fmt.Errorf("not an event packet: 0x%02X", frame[0])
	}
	e := Event(frame[1:])
	n := HeaderSize + int(e[1])
	if n > len(e) {
		return nil, fmt.Errorf("truncated event 0x%02X: want %d, have %d", e[0], n, len(e))
	}
	return e[:n], nil
}

// Code returns the event code.
func (e Event) Code() uint8 {
	v, _ := getByte(e, 0, 0)
	return v
}

// Params returns the event parameters.
func (e Event) Params() []byte {
	if len(e) <= HeaderSize {
		return nil
	}
	return e[HeaderSize:]
}

func (e Event) String() string {
	return fmt.Sprintf("evt 0x%02X [% X]", e.Code(), e.Params())
}

// CommandComplete implements Command Complete (0x0E) [Vol 2, Part E, 7.7.14].
type CommandComplete []byte

func (e CommandComplete) NumHCICommandPacketsWErr() (uint8, error) {
	return getByte(e, 0, 0)
}

func (e CommandComplete) CommandOpcodeWErr() (uint16, error) {
	return getUint16LE(e, 1, 0xffff)
}

func (e CommandComplete) ReturnParametersWErr() ([]byte, error) {
	return getBytes(e, CommandCompleteSize, -1)
}

func (e CommandComplete) CommandOpcode() uint16 {
	v, _ := e.CommandOpcodeWErr()
	return v
}

func (e CommandComplete) ReturnParameters() []byte {
	v, _ := e.ReturnParametersWErr()
	return v
}

// CommandStatus implements Command Status (0x0F) [Vol 2, Part E, 7.7.15].
type CommandStatus []byte

func (e CommandStatus) Valid() bool {
	return len(e) >= CommandStatusSize
}

func (e CommandStatus) StatusWErr() (uint8, error) {
	return getByte(e, 0, 0xff)
}

func (e CommandStatus) NumHCICommandPacketsWErr() (uint8, error) {
	return getByte(e, 1, 0)
}

func (e CommandStatus) CommandOpcodeWErr() (uint16, error) {
	return getUint16LE(e, 2, 0xffff)
}

func (e CommandStatus) Status() uint8 {
	v, _ := e.StatusWErr()
	return v
}

func (e CommandStatus) CommandOpcode() uint16 {
	v, _ := e.CommandOpcodeWErr()
	return v
}

// LEMeta implements LE Meta Event (0x3E) [Vol 2, Part E, 7.7.65].
type LEMeta []byte

func (e LEMeta) SubeventCodeWErr() (uint8, error) {
	return getByte(e, 0, 0xff)
}

func (e LEMeta) DataWErr() ([]byte, error) {
	return getBytes(e, LEMetaSize, -1)
}

// get or default
func getByte(b []byte, i int, def byte) (byte, error) {
	bb, err := getBytes(b, i, 1)
	if err != nil {
		return def, err
	}
	return bb[0], nil
}

// get or default
func getUint16LE(b []byte, i int, def uint16) (uint16, error) {
	bb, err := getBytes(b, i, 2)
	if err != nil {
		return def, err
	}
	return binary.LittleEndian.Uint16(bb), nil
}

func getAddr(b []byte, i int) ([6]byte, error) {
	out := [6]byte{}
	bb, err := getBytes(b, i, 6)
	if err != nil {
		return out, err
	}
	copy(out[:], bb)
	return out, nil
}

func getBytes(bytes []byte, start int, count int) ([]byte, error) {
	if bytes == nil || start > len(bytes) || (count != -1 && start == len(bytes)) {
		return nil, fmt.Errorf("index error")
	}

	if count < 0 {
		return bytes[start:], nil
	}

	end := start + count
	//end is non-inclusive
	if end > len(bytes) {
		return nil, fmt.Errorf("index error")
	}

	return bytes[start:end], nil
}
