// Package linux builds a ready to use hci device on top of a raw HCI socket.
package linux

import (
	"github.com/pkg/errors"

	"github.com/rigado/bluehci"
	"github.com/rigado/bluehci/linux/hci"
)

// NewDevice returns an initialized hci device. Without a transport option the
// first adapter that is up is used.
func NewDevice(opts ...bluehci.Option) (*hci.HCI, error) {
	opts = append([]bluehci.Option{bluehci.OptTransportHCISocket(-1)}, opts...)

	dev, err := hci.NewHCI(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "can't create hci")
	}
	if err := dev.Init(); err != nil {
		dev.Close()
		return nil, errors.Wrap(err, "can't init hci")
	}
	return dev, nil
}
