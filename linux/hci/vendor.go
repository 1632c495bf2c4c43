package hci

import (
	"fmt"

	"github.com/rigado/bluehci/linux/hci/cmd"
	"github.com/rigado/bluehci/linux/hci/evt"
)

// VendorCommand is a vendor specific command answered with Command Complete.
type VendorCommand = Command[cmd.Vendor, cmd.StatusRP]

// NewVendorCommand returns a vendor specific command.
func NewVendorCommand() *VendorCommand {
	return NewCommand[cmd.Vendor, cmd.StatusRP](evt.CommandCompleteCode)
}

// SendVendorSpecificCommand sends payload as vendor command ocf and waits
// for its status.
func (h *HCI) SendVendorSpecificCommand(ocf uint16, payload []byte) error {
	if len(payload) > cmd.MaxParamsLength {
		return fmt.Errorf("invalid length %v; max hci payload length is %v", len(payload), cmd.MaxParamsLength)
	}

	c := NewVendorCommand()
	*c.Params() = cmd.Vendor{OCF: ocf, Payload: payload}
	return h.exchange(c, false)
}
