package cmd

// Vendor is a vendor specific debug command (0x3F|OCF) carrying a raw payload.
type Vendor struct {
	OCF     uint16
	Payload []byte
}

func (c Vendor) OpCode() uint16 { return OpCode(OGFVendorDebug, c.OCF) }

// MarshalBinary returns the payload as is.
func (c Vendor) MarshalBinary() ([]byte, error) {
	return append([]byte(nil), c.Payload...), nil
}
