package evt

// Event codes [Vol 2, Part E, 7.7].
const (
	InquiryCompleteCode                 = 0x01
	InquiryResultCode                   = 0x02
	ConnectionCompleteCode              = 0x03
	DisconnectionCompleteCode           = 0x05
	AuthenticationCompleteCode          = 0x06
	RemoteNameRequestCompleteCode       = 0x07
	EncryptionChangeCode                = 0x08
	ChangeConnectionLinkKeyCompleteCode = 0x09
	CommandCompleteCode                 = 0x0E
	CommandStatusCode                   = 0x0F
	HardwareErrorCode                   = 0x10
	NumberOfCompletedPacketsCode        = 0x13
	PINCodeRequestCode                  = 0x16
	LinkKeyRequestCode                  = 0x17
	LinkKeyNotificationCode             = 0x18
	InquiryResultWithRSSICode           = 0x22
	ExtendedInquiryResultCode           = 0x2F
	IOCapabilityRequestCode             = 0x31
	IOCapabilityResponseCode            = 0x32
	UserConfirmationRequestCode         = 0x33
	SimplePairingCompleteCode           = 0x36
	LEMetaCode                          = 0x3E
	VendorCode                          = 0xFF
)

// LE meta subevent codes [Vol 2, Part E, 7.7.65].
const (
	LEConnectionCompleteSubCode             = 0x01
	LEAdvertisingReportSubCode              = 0x02
	LEConnectionUpdateCompleteSubCode       = 0x03
	LEReadRemoteUsedFeaturesCompleteSubCode = 0x04
	LELongTermKeyRequestSubCode             = 0x05
)

// Fixed prefix sizes of the acknowledgement events.
const (
	HeaderSize          = 2 // event code, parameter length
	CommandStatusSize   = 4 // status, num packets, opcode
	CommandCompleteSize = 3 // num packets, opcode
	LEMetaSize          = 1 // subevent code
)
