package evt

import "fmt"

// LEAdvertisingReport implements LE Advertising Report [Vol 2, Part E, 7.7.65.2].
// The slice starts at the subevent code.
type LEAdvertisingReport []byte

func (e LEAdvertisingReport) SubeventCodeWErr() (uint8, error) {
	return getByte(e, 0, 0xff)
}

func (e LEAdvertisingReport) NumReportsWErr() (uint8, error) {
	return getByte(e, 1, 0)
}

func (e LEAdvertisingReport) EventTypeWErr(i int) (uint8, error) {
	return getByte(e, 2+i, 0xff)
}

func (e LEAdvertisingReport) AddressTypeWErr(i int) (uint8, error) {
	nr, err := e.NumReportsWErr()
	if err != nil {
		return 0, err
	}

	si := 2 + int(nr) + i
	return getByte(e, si, 0xff)
}

func (e LEAdvertisingReport) AddressWErr(i int) ([6]byte, error) {
	nr, err := e.NumReportsWErr()
	if err != nil {
		return [6]byte{}, err
	}

	return getAddr(e, 2+int(nr)*2+(6*i))
}

func (e LEAdvertisingReport) LengthDataWErr(i int) (uint8, error) {
	nr, err := e.NumReportsWErr()
	if err != nil {
		return 0, err
	}

	si := 2 + int(nr)*8 + i
	return getByte(e, si, 0)
}

func (e LEAdvertisingReport) DataWErr(i int) ([]byte, error) {
	nr, err := e.NumReportsWErr()
	if err != nil {
		return nil, err
	}

	l := 0
	for j := 0; j < i; j++ {
		ll, err := e.LengthDataWErr(j)
		if err != nil {
			return nil, err
		}
		l += int(ll)
	}

	ll, err := e.LengthDataWErr(i)
	if err != nil {
		return nil, err
	}
	if ll == 0 {
		return []byte{}, nil
	}
	return getBytes(e, 2+int(nr)*9+l, int(ll))
}

func (e LEAdvertisingReport) RSSIWErr(i int) (int8, error) {
	nr, err := e.NumReportsWErr()
	if err != nil {
		return 0, err
	}

	l := 0
	for j := 0; j < int(nr); j++ {
		ll, err := e.LengthDataWErr(j)
		if err != nil {
			return 0, err
		}
		l += int(ll)
	}

	rssi, err := getByte(e, 2+int(nr)*9+l+i, 0)
	return int8(rssi), err
}

// Sizes of one response entry in the classic inquiry result events.
const (
	inquiryInfoSize         = 14
	inquiryInfoWithRSSISize = 14
)

// InquiryResult implements Inquiry Result (0x02) [Vol 2, Part E, 7.7.2].
// Responses are laid out one entry after another, as controllers send them.
type InquiryResult []byte

func (e InquiryResult) NumResponsesWErr() (uint8, error) {
	return getByte(e, 0, 0)
}

func (e InquiryResult) BDADDRWErr(i int) ([6]byte, error) {
	return inquiryAddr(e, i, inquiryInfoSize)
}

// InquiryResultWithRSSI implements Inquiry Result with RSSI (0x22) [Vol 2, Part E, 7.7.33].
type InquiryResultWithRSSI []byte

func (e InquiryResultWithRSSI) NumResponsesWErr() (uint8, error) {
	return getByte(e, 0, 0)
}

func (e InquiryResultWithRSSI) BDADDRWErr(i int) ([6]byte, error) {
	return inquiryAddr(e, i, inquiryInfoWithRSSISize)
}

func (e InquiryResultWithRSSI) RSSIWErr(i int) (int8, error) {
	v, err := getByte(e, 1+i*inquiryInfoWithRSSISize+13, 0)
	return int8(v), err
}

func inquiryAddr(e []byte, i, size int) ([6]byte, error) {
	n, err := getByte(e, 0, 0)
	if err != nil {
		return [6]byte{}, err
	}
	if i >= int(n) {
		return [6]byte{}, fmt.Errorf("response %d of %d", i, n)
	}
	return getAddr(e, 1+i*size)
}

// ExtendedInquiryResult implements Extended Inquiry Result (0x2F) [Vol 2, Part E, 7.7.38].
type ExtendedInquiryResult []byte

func (e ExtendedInquiryResult) BDADDRWErr() ([6]byte, error) {
	return getAddr(e, 1)
}

func (e ExtendedInquiryResult) RSSIWErr() (int8, error) {
	v, err := getByte(e, 14, 0)
	return int8(v), err
}

func (e ExtendedInquiryResult) DataWErr() ([]byte, error) {
	return getBytes(e, 15, -1)
}

// BDADDREvent covers the pairing requests that carry only the peer address
// up front: Link Key Request (0x17), Link Key Notification (0x18),
// IO Capability Request (0x31) and User Confirmation Request (0x33).
type BDADDREvent []byte

func (e BDADDREvent) BDADDRWErr() ([6]byte, error) {
	return getAddr(e, 0)
}

// LinkKeyNotification implements Link Key Notification (0x18) [Vol 2, Part E, 7.7.24].
type LinkKeyNotification []byte

func (e LinkKeyNotification) BDADDRWErr() ([6]byte, error) {
	return getAddr(e, 0)
}

func (e LinkKeyNotification) LinkKeyWErr() ([]byte, error) {
	return getBytes(e, 6, 16)
}

func (e LinkKeyNotification) KeyTypeWErr() (uint8, error) {
	return getByte(e, 22, 0xff)
}
