package hci

import (
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/rigado/bluehci/linux/hci/evt"
	"github.com/rigado/bluehci/linux/hci/h4"
	"github.com/rigado/bluehci/linux/hci/socket"
)

// Transport carries raw HCI frames, packet type first, one frame per Read.
// A Read that times out returns 0, nil.
type Transport interface {
	io.ReadWriteCloser
	SetFilter(socket.Filter) error
	Filter() socket.Filter
}

type transportHci struct {
	id int
}

type transportH4Socket struct {
	addr    string
	timeout time.Duration
}

type transportH4Uart struct {
	path string
	baud uint
}

type transport struct {
	hci      *transportHci
	h4socket *transportH4Socket
	h4uart   *transportH4Uart
	custom   Transport
}

func getTransport(t transport) (Transport, error) {
	switch {
	case t.hci != nil:
		return socket.NewSocket(t.hci.id)

	case t.h4socket != nil:
		return h4.Dial(t.h4socket.addr, t.h4socket.timeout)

	case t.h4uart != nil:
		return h4.OpenSerial(t.h4uart.path, t.h4uart.baud)

	case t.custom != nil:
		return t.custom, nil

	default:
		return nil, errors.New("no valid transport found")
	}
}

// Up brings adapter id up. An adapter that is already up is not an error.
func Up(id int) error {
	return errors.Wrapf(socket.Up(id), "hci%d up", id)
}

// Down takes adapter id down. An adapter that is already down is not an error.
func Down(id int) error {
	return errors.Wrapf(socket.Down(id), "hci%d down", id)
}

// defaultFilter passes what command exchanges and pairing need.
func defaultFilter() socket.Filter {
	var f socket.Filter
	f.SetPacketType(PktTypeEvent)
	for _, e := range []uint8{
		evt.CommandCompleteCode, evt.CommandStatusCode, evt.LEMetaCode,
		evt.ConnectionCompleteCode, evt.DisconnectionCompleteCode,
		evt.AuthenticationCompleteCode, evt.RemoteNameRequestCompleteCode,
		evt.EncryptionChangeCode, evt.ChangeConnectionLinkKeyCompleteCode,
		evt.HardwareErrorCode, evt.PINCodeRequestCode,
		evt.LinkKeyRequestCode, evt.LinkKeyNotificationCode,
		evt.IOCapabilityRequestCode, evt.IOCapabilityResponseCode,
		evt.UserConfirmationRequestCode, evt.SimplePairingCompleteCode,
	} {
		f.SetEvent(e)
	}
	return f
}

// discoveryFilter passes command acknowledgements and discovery results only.
func discoveryFilter() socket.Filter {
	var f socket.Filter
	f.SetPacketType(PktTypeEvent)
	for _, e := range []uint8{
		evt.CommandCompleteCode, evt.CommandStatusCode, evt.LEMetaCode,
		evt.InquiryCompleteCode, evt.InquiryResultCode, evt.InquiryResultWithRSSICode,
		evt.ExtendedInquiryResultCode, evt.RemoteNameRequestCompleteCode,
	} {
		f.SetEvent(e)
	}
	return f
}
