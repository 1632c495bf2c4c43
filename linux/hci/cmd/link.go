package cmd

// Link control commands [Vol 2, Part E, 7.1].

// Inquiry implements Inquiry (0x01|0x0001) [Vol 2, Part E, 7.1.1]
type Inquiry struct {
	LAP           [3]byte
	InquiryLength uint8
	NumResponses  uint8
}

func (c Inquiry) OpCode() uint16 { return OpCode(OGFLinkCtl, 0x0001) }

// InquiryCancel implements Inquiry Cancel (0x01|0x0002) [Vol 2, Part E, 7.1.2]
type InquiryCancel struct{}

func (c InquiryCancel) OpCode() uint16 { return OpCode(OGFLinkCtl, 0x0002) }

// CreateConnection implements Create Connection (0x01|0x0005) [Vol 2, Part E, 7.1.5]
type CreateConnection struct {
	BDADDR                 [6]byte
	PacketType             uint16
	PageScanRepetitionMode uint8
	Reserved               uint8
	ClockOffset            uint16
	AllowRoleSwitch        uint8
}

func (c CreateConnection) OpCode() uint16 { return OpCode(OGFLinkCtl, 0x0005) }

// Disconnect implements Disconnect (0x01|0x0006) [Vol 2, Part E, 7.1.6]
type Disconnect struct {
	ConnectionHandle uint16
	Reason           uint8
}

func (c Disconnect) OpCode() uint16 { return OpCode(OGFLinkCtl, 0x0006) }

// LinkKeyRequestNegativeReply implements Link Key Request Negative Reply (0x01|0x000C) [Vol 2, Part E, 7.1.11]
type LinkKeyRequestNegativeReply struct {
	BDADDR [6]byte
}

func (c LinkKeyRequestNegativeReply) OpCode() uint16 { return OpCode(OGFLinkCtl, 0x000C) }

// AuthenticationRequested implements Authentication Requested (0x01|0x0011) [Vol 2, Part E, 7.1.15]
type AuthenticationRequested struct {
	ConnectionHandle uint16
}

func (c AuthenticationRequested) OpCode() uint16 { return OpCode(OGFLinkCtl, 0x0011) }

// ChangeConnectionLinkKey implements Change Connection Link Key (0x01|0x0015) [Vol 2, Part E, 7.1.17]
type ChangeConnectionLinkKey struct {
	ConnectionHandle uint16
}

func (c ChangeConnectionLinkKey) OpCode() uint16 { return OpCode(OGFLinkCtl, 0x0015) }

// RemoteNameRequest implements Remote Name Request (0x01|0x0019) [Vol 2, Part E, 7.1.19]
type RemoteNameRequest struct {
	BDADDR                 [6]byte
	PageScanRepetitionMode uint8
	Reserved               uint8
	ClockOffset            uint16
}

func (c RemoteNameRequest) OpCode() uint16 { return OpCode(OGFLinkCtl, 0x0019) }

// IOCapabilityRequestReply implements IO Capability Request Reply (0x01|0x002B) [Vol 2, Part E, 7.1.29]
type IOCapabilityRequestReply struct {
	BDADDR                     [6]byte
	IOCapability               uint8
	OOBDataPresent             uint8
	AuthenticationRequirements uint8
}

func (c IOCapabilityRequestReply) OpCode() uint16 { return OpCode(OGFLinkCtl, 0x002B) }

// UserConfirmationRequestReply implements User Confirmation Request Reply (0x01|0x002C) [Vol 2, Part E, 7.1.30]
type UserConfirmationRequestReply struct {
	BDADDR [6]byte
}

func (c UserConfirmationRequestReply) OpCode() uint16 { return OpCode(OGFLinkCtl, 0x002C) }

// ConnectionCompleteEP is the payload of Connection Complete [Vol 2, Part E, 7.7.3]
type ConnectionCompleteEP struct {
	Status            uint8
	ConnectionHandle  uint16
	BDADDR            [6]byte
	LinkType          uint8
	EncryptionEnabled uint8
}

// DisconnectionCompleteEP is the payload of Disconnection Complete [Vol 2, Part E, 7.7.5]
type DisconnectionCompleteEP struct {
	Status           uint8
	ConnectionHandle uint16
	Reason           uint8
}

// AuthenticationCompleteEP is the payload of Authentication Complete [Vol 2, Part E, 7.7.6]
type AuthenticationCompleteEP struct {
	Status           uint8
	ConnectionHandle uint16
}

// RemoteNameRequestCompleteEP is the payload of Remote Name Request Complete [Vol 2, Part E, 7.7.7]
type RemoteNameRequestCompleteEP struct {
	Status     uint8
	BDADDR     [6]byte
	RemoteName [248]byte
}

// ChangeConnectionLinkKeyCompleteEP is the payload of Change Connection Link Key Complete [Vol 2, Part E, 7.7.9]
type ChangeConnectionLinkKeyCompleteEP struct {
	Status           uint8
	ConnectionHandle uint16
}
