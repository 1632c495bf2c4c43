package hci

const featureBits = 64

// FeatureIterator walks the set bits of an LMP feature bitmap
// [Vol 2, Part C, 3.3]. The zero value iterates an empty bitmap.
type FeatureIterator struct {
	features [featureBits / 8]byte

	// cursor is the bit number plus one, 0 before the first feature
	cursor int
}

// NewFeatureIterator snapshots up to 8 bytes of data; missing bytes read as
// zero. The cursor starts before the first feature.
func NewFeatureIterator(data []byte) *FeatureIterator {
	f := &FeatureIterator{}
	copy(f.features[:], data)
	return f
}

// Reset rewinds the cursor to before the first feature.
func (f *FeatureIterator) Reset() {
	f.cursor = 0
}

func (f *FeatureIterator) index() int {
	return f.cursor - 1
}

// IsValid reports whether the cursor is on a feature.
func (f *FeatureIterator) IsValid() bool {
	return f.cursor > 0 && f.cursor <= featureBits
}

// Next moves to the next supported feature and reports whether there is one.
// Once the bitmap is exhausted Next keeps returning false until Reset.
func (f *FeatureIterator) Next() bool {
	if f.cursor > featureBits {
		return false
	}
	f.cursor++
	for f.cursor <= featureBits && !f.isSet(f.index()) {
		f.cursor++
	}
	return f.cursor <= featureBits
}

func (f *FeatureIterator) isSet(bit int) bool {
	return f.features[bit>>3]&(1<<(bit&7)) != 0
}

// Feature returns the bit number under the cursor.
func (f *FeatureIterator) Feature() uint8 {
	return uint8(f.index())
}

// HasFeatures tests mask against feature byte b, independent of the cursor.
func (f *FeatureIterator) HasFeatures(b uint8, mask uint8) bool {
	if int(b) >= len(f.features) {
		return false
	}
	return f.features[b]&mask != 0
}

// Text names the feature under the cursor.
func (f *FeatureIterator) Text() string {
	if !f.IsValid() {
		return ""
	}
	return featureText(featureKey(f.index()))
}

// Features lists the names of all supported features without moving the cursor.
func (f *FeatureIterator) Features() []string {
	it := *f
	it.Reset()

	var out []string
	for it.Next() {
		out = append(out, it.Text())
	}
	return out
}

// featureKey packs a bit number as (byte << 8) | bitmask.
func featureKey(index int) uint16 {
	return uint16(index>>3)<<8 | uint16(1)<<(index&7)
}

func featureText(key uint16) string {
	if s, ok := featureNames[key]; ok {
		return s
	}
	return "Reserved"
}

var featureNames = map[uint16]string{
	0x0001: "3 slot packets",
	0x0002: "5 slot packets",
	0x0004: "Encryption",
	0x0008: "Slot offset",
	0x0010: "Timing accuracy",
	0x0020: "Role switch",
	0x0040: "Hold mode",
	0x0080: "Sniff mode",

	0x0101: "Park state",
	0x0102: "Power control requests",
	0x0104: "Channel quality driven data rate",
	0x0108: "SCO link",
	0x0110: "HV2 packets",
	0x0120: "HV3 packets",
	0x0140: "u-law log synchronous data",
	0x0180: "A-law log synchronous data",

	0x0201: "CVSD synchronous data",
	0x0202: "Paging parameter negotiation",
	0x0204: "Power control",
	0x0208: "Transparent synchronous data",
	0x0210: "Flow control lag (least significant bit)",
	0x0220: "Flow control lag (middle bit)",
	0x0240: "Flow control lag (most significant bit)",
	0x0280: "Broadcast Encryption",

	0x0302: "Enhanced Data Rate ACL 2 Mb/s mode",
	0x0304: "Enhanced Data Rate ACL 3 Mb/s mode",
	0x0308: "Enhanced inquiry scan",
	0x0310: "Interlaced inquiry scan",
	0x0320: "Interlaced page scan",
	0x0340: "RSSI with inquiry results",
	0x0380: "Extended SCO link (EV3 packets)",

	0x0401: "EV4 packets",
	0x0402: "EV5 packets",
	0x0408: "AFH capable slave",
	0x0410: "AFH classification slave",
	0x0420: "BR/EDR Not Supported",
	0x0440: "LE Supported (Controller)",
	0x0480: "3-slot Enhanced Data Rate ACL packets",

	0x0501: "5-slot Enhanced Data Rate ACL packets",
	0x0502: "Sniff subrating",
	0x0504: "Pause encryption",
	0x0508: "AFH capable master",
	0x0510: "AFH classification master",
	0x0520: "Enhanced Data Rate eSCO 2 Mb/s mode",
	0x0540: "Enhanced Data Rate eSCO 3 Mb/s mode",
	0x0580: "3-slot Enhanced Data Rate eSCO packets",

	0x0601: "Extended Inquiry Response",
	0x0602: "Simultaneous LE and BR/EDR to Same Device Capable (Controller)",
	0x0608: "Secure Simple Pairing (Controller Support)",
	0x0610: "Encapsulated PDU",
	0x0620: "Erroneous Data Reporting",
	0x0640: "Non-flushable Packet Boundary Flag",

	0x0701: "Link Supervision Timeout Changed Event",
	0x0702: "Variable Inquiry TX Power Level",
	0x0704: "Enhanced Power Control",
	0x0780: "Extended features",
}
