// Package cmd holds the parameter layouts of the HCI commands this module
// issues [Vol 2, Part E, 7], and the return parameter layouts (RP) and event
// parameter layouts (EP) they are answered with.
//
// Every layout is a packed, fixed size struct encoded little endian with
// encoding/binary, so field order and widths are the wire contract.
package cmd

import (
	"bytes"
	"encoding"
	"encoding/binary"
	"fmt"

	"github.com/pkg/errors"
)

// Opcode group fields.
const (
	OGFLinkCtl     = 0x01
	OGFLinkPolicy  = 0x02
	OGFHostCtl     = 0x03
	OGFInfoParam   = 0x04
	OGFStatusParam = 0x05
	OGFLECtl       = 0x08
	OGFVendorDebug = 0x3F

	ogfBitShift = 10
	ocfMask     = 0x03FF

	// MaxParamsLength is the largest parameter block a command packet can carry.
	MaxParamsLength = 255
)

// OpCode packs a group and command field into an opcode.
func OpCode(ogf, ocf uint16) uint16 {
	return ogf<<ogfBitShift | (ocf & ocfMask)
}

// OGF returns the group field of op.
func OGF(op uint16) uint16 {
	return op >> ogfBitShift
}

// OCF returns the command field of op.
func OCF(op uint16) uint16 {
	return op & ocfMask
}

// OpString formats an opcode as "OGF-OCF".
func OpString(op uint16) string {
	return fmt.Sprintf("%X-%03X", OGF(op), OCF(op))
}

// Params is implemented by every command parameter layout.
type Params interface {
	OpCode() uint16
}

// Len returns the encoded size of a parameter or return layout.
func Len(v interface{}) int {
	n := binary.Size(v)
	if n < 0 {
		return 0
	}
	return n
}

// Marshal encodes v into its packed little endian form. Layouts that are not
// fixed size encode themselves through encoding.BinaryMarshaler.
func Marshal(v interface{}) ([]byte, error) {
	if m, ok := v.(encoding.BinaryMarshaler); ok {
		b, err := m.MarshalBinary()
		if err != nil {
			return nil, errors.Wrap(err, "marshal params")
		}
		if len(b) > MaxParamsLength {
			return nil, errors.Errorf("params too long: %d bytes", len(b))
		}
		return b, nil
	}

	n := Len(v)
	if n > MaxParamsLength {
		return nil, errors.Errorf("params too long: %d bytes", n)
	}
	if n == 0 {
		return nil, nil
	}
	buf := bytes.NewBuffer(make([]byte, 0, n))
	if err := binary.Write(buf, binary.LittleEndian, v); err != nil {
		return nil, errors.Wrap(err, "marshal params")
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes b into v. b must hold at least Len(v) bytes.
func Unmarshal(b []byte, v interface{}) error {
	if Len(v) == 0 {
		return nil
	}
	if err := binary.Read(bytes.NewReader(b), binary.LittleEndian, v); err != nil {
		return errors.Wrap(err, "unmarshal return params")
	}
	return nil
}

// Void is the empty return layout.
type Void struct{}

// StatusRP is the return layout of commands that answer with a status only.
type StatusRP struct {
	Status uint8
}
