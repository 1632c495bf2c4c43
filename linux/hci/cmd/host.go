package cmd

// Controller & baseband and informational commands [Vol 2, Part E, 7.3 and 7.4].

// Reset implements Reset (0x03|0x0003) [Vol 2, Part E, 7.3.2]
type Reset struct{}

func (c Reset) OpCode() uint16 { return OpCode(OGFHostCtl, 0x0003) }

// ReadStoredLinkKey implements Read Stored Link Key (0x03|0x000D) [Vol 2, Part E, 7.3.8]
type ReadStoredLinkKey struct {
	BDADDR      [6]byte
	ReadAllFlag uint8
}

func (c ReadStoredLinkKey) OpCode() uint16 { return OpCode(OGFHostCtl, 0x000D) }

// ReadStoredLinkKeyRP returns the parameters of Read Stored Link Key.
type ReadStoredLinkKeyRP struct {
	Status      uint8
	MaxNumKeys  uint16
	NumKeysRead uint16
}

// WriteStoredLinkKey implements Write Stored Link Key (0x03|0x0011) [Vol 2, Part E, 7.3.9]
// with a single key.
type WriteStoredLinkKey struct {
	NumKeysToWrite uint8
	BDADDR         [6]byte
	LinkKey        [16]byte
}

func (c WriteStoredLinkKey) OpCode() uint16 { return OpCode(OGFHostCtl, 0x0011) }

// WriteStoredLinkKeyRP returns the parameters of Write Stored Link Key.
type WriteStoredLinkKeyRP struct {
	Status         uint8
	NumKeysWritten uint8
}

// DeleteStoredLinkKey implements Delete Stored Link Key (0x03|0x0012) [Vol 2, Part E, 7.3.10]
type DeleteStoredLinkKey struct {
	BDADDR        [6]byte
	DeleteAllFlag uint8
}

func (c DeleteStoredLinkKey) OpCode() uint16 { return OpCode(OGFHostCtl, 0x0012) }

// DeleteStoredLinkKeyRP returns the parameters of Delete Stored Link Key.
type DeleteStoredLinkKeyRP struct {
	Status         uint8
	NumKeysDeleted uint16
}

// WriteScanEnable implements Write Scan Enable (0x03|0x001A) [Vol 2, Part E, 7.3.18]
type WriteScanEnable struct {
	ScanEnable uint8
}

func (c WriteScanEnable) OpCode() uint16 { return OpCode(OGFHostCtl, 0x001A) }

// Scan enable values.
const (
	ScanDisabled       = 0x00
	InquiryScanOnly    = 0x01
	PageScanOnly       = 0x02
	InquiryAndPageScan = 0x03
)

// WriteSimplePairingMode implements Write Simple Pairing Mode (0x03|0x0056) [Vol 2, Part E, 7.3.59]
type WriteSimplePairingMode struct {
	SimplePairingMode uint8
}

func (c WriteSimplePairingMode) OpCode() uint16 { return OpCode(OGFHostCtl, 0x0056) }

// WriteLEHostSupport implements Write LE Host Support (0x03|0x006D) [Vol 2, Part E, 7.3.79]
type WriteLEHostSupport struct {
	LESupportedHost    uint8
	SimultaneousLEHost uint8
}

func (c WriteLEHostSupport) OpCode() uint16 { return OpCode(OGFHostCtl, 0x006D) }

// WriteSecureConnectionsHostSupport implements Write Secure Connections Host Support (0x03|0x007A) [Vol 2, Part E, 7.3.92]
type WriteSecureConnectionsHostSupport struct {
	SecureConnectionsHostSupport uint8
}

func (c WriteSecureConnectionsHostSupport) OpCode() uint16 { return OpCode(OGFHostCtl, 0x007A) }

// ReadLocalSupportedFeatures implements Read Local Supported Features (0x04|0x0003) [Vol 2, Part E, 7.4.3]
type ReadLocalSupportedFeatures struct{}

func (c ReadLocalSupportedFeatures) OpCode() uint16 { return OpCode(OGFInfoParam, 0x0003) }

// ReadLocalSupportedFeaturesRP returns the parameters of Read Local Supported Features.
type ReadLocalSupportedFeaturesRP struct {
	Status      uint8
	LMPFeatures [8]byte
}

// ReadBDADDR implements Read BD_ADDR (0x04|0x0009) [Vol 2, Part E, 7.4.6]
type ReadBDADDR struct{}

func (c ReadBDADDR) OpCode() uint16 { return OpCode(OGFInfoParam, 0x0009) }

// ReadBDADDRRP returns the parameters of Read BD_ADDR.
type ReadBDADDRRP struct {
	Status uint8
	BDADDR [6]byte
}
