package cmd

// LE controller commands [Vol 2, Part E, 7.8].

// LESetAdvertisingParameters implements LE Set Advertising Parameters (0x08|0x0006) [Vol 2, Part E, 7.8.5]
type LESetAdvertisingParameters struct {
	AdvertisingIntervalMin  uint16
	AdvertisingIntervalMax  uint16
	AdvertisingType         uint8
	OwnAddressType          uint8
	DirectAddressType       uint8
	DirectAddress           [6]byte
	AdvertisingChannelMap   uint8
	AdvertisingFilterPolicy uint8
}

func (c LESetAdvertisingParameters) OpCode() uint16 { return OpCode(OGFLECtl, 0x0006) }

// LESetAdvertiseEnable implements LE Set Advertise Enable (0x08|0x000A) [Vol 2, Part E, 7.8.9]
type LESetAdvertiseEnable struct {
	AdvertisingEnable uint8
}

func (c LESetAdvertiseEnable) OpCode() uint16 { return OpCode(OGFLECtl, 0x000A) }

// LESetScanParameters implements LE Set Scan Parameters (0x08|0x000B) [Vol 2, Part E, 7.8.10]
type LESetScanParameters struct {
	LEScanType           uint8
	LEScanInterval       uint16
	LEScanWindow         uint16
	OwnAddressType       uint8
	ScanningFilterPolicy uint8
}

func (c LESetScanParameters) OpCode() uint16 { return OpCode(OGFLECtl, 0x000B) }

// LESetScanEnable implements LE Set Scan Enable (0x08|0x000C) [Vol 2, Part E, 7.8.11]
type LESetScanEnable struct {
	LEScanEnable     uint8
	FilterDuplicates uint8
}

func (c LESetScanEnable) OpCode() uint16 { return OpCode(OGFLECtl, 0x000C) }

// LECreateConnection implements LE Create Connection (0x08|0x000D) [Vol 2, Part E, 7.8.12]
type LECreateConnection struct {
	LEScanInterval        uint16
	LEScanWindow          uint16
	InitiatorFilterPolicy uint8
	PeerAddressType       uint8
	PeerAddress           [6]byte
	OwnAddressType        uint8
	ConnIntervalMin       uint16
	ConnIntervalMax       uint16
	ConnLatency           uint16
	SupervisionTimeout    uint16
	MinimumCELength       uint16
	MaximumCELength       uint16
}

func (c LECreateConnection) OpCode() uint16 { return OpCode(OGFLECtl, 0x000D) }

// LEReadWhiteListSize implements LE Read White List Size (0x08|0x000F) [Vol 2, Part E, 7.8.14]
type LEReadWhiteListSize struct{}

func (c LEReadWhiteListSize) OpCode() uint16 { return OpCode(OGFLECtl, 0x000F) }

// LEReadWhiteListSizeRP returns the parameters of LE Read White List Size.
type LEReadWhiteListSizeRP struct {
	Status        uint8
	WhiteListSize uint8
}

// LEClearWhiteList implements LE Clear White List (0x08|0x0010) [Vol 2, Part E, 7.8.15]
type LEClearWhiteList struct{}

func (c LEClearWhiteList) OpCode() uint16 { return OpCode(OGFLECtl, 0x0010) }

// LEAddDeviceToWhiteList implements LE Add Device To White List (0x08|0x0011) [Vol 2, Part E, 7.8.16]
type LEAddDeviceToWhiteList struct {
	AddressType uint8
	Address     [6]byte
}

func (c LEAddDeviceToWhiteList) OpCode() uint16 { return OpCode(OGFLECtl, 0x0011) }

// LERemoveDeviceFromWhiteList implements LE Remove Device From White List (0x08|0x0012) [Vol 2, Part E, 7.8.17]
type LERemoveDeviceFromWhiteList struct {
	AddressType uint8
	Address     [6]byte
}

func (c LERemoveDeviceFromWhiteList) OpCode() uint16 { return OpCode(OGFLECtl, 0x0012) }

// LEReadRemoteUsedFeatures implements LE Read Remote Used Features (0x08|0x0016) [Vol 2, Part E, 7.8.21]
type LEReadRemoteUsedFeatures struct {
	ConnectionHandle uint16
}

func (c LEReadRemoteUsedFeatures) OpCode() uint16 { return OpCode(OGFLECtl, 0x0016) }

// LEStartEncryption implements LE Start Encryption (0x08|0x0019) [Vol 2, Part E, 7.8.24]
type LEStartEncryption struct {
	ConnectionHandle     uint16
	RandomNumber         uint64
	EncryptedDiversifier uint16
	LongTermKey          [16]byte
}

func (c LEStartEncryption) OpCode() uint16 { return OpCode(OGFLECtl, 0x0019) }

// LEConnectionCompleteEP is the payload of LE Connection Complete, without the subevent code [Vol 2, Part E, 7.7.65.1]
type LEConnectionCompleteEP struct {
	Status              uint8
	ConnectionHandle    uint16
	Role                uint8
	PeerAddressType     uint8
	PeerAddress         [6]byte
	ConnInterval        uint16
	ConnLatency         uint16
	SupervisionTimeout  uint16
	MasterClockAccuracy uint8
}

// LEReadRemoteUsedFeaturesCompleteEP is the payload of LE Read Remote Used Features Complete [Vol 2, Part E, 7.7.65.4]
type LEReadRemoteUsedFeaturesCompleteEP struct {
	Status           uint8
	ConnectionHandle uint16
	LEFeatures       [8]byte
}
