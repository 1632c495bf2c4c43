package hci

import (
	"fmt"
	"time"

	"github.com/rigado/bluehci"
	"github.com/rigado/bluehci/linux/hci/cmd"
)

// SetTransportHCISocket sets HCI device for hci socket
func (h *HCI) SetTransportHCISocket(id int) error {
	h.transport = transport{
		hci: &transportHci{id},
	}
	h.id = id
	return nil
}

// SetTransportH4Socket sets the address of an H4 socket server.
func (h *HCI) SetTransportH4Socket(addr string, timeout time.Duration) error {
	h.transport = transport{
		h4socket: &transportH4Socket{addr, timeout},
	}
	h.id = -1
	return nil
}

// SetTransportH4Uart sets the UART device and baud rate of an H4 controller.
func (h *HCI) SetTransportH4Uart(path string, baud int) error {
	if path == "" {
		return fmt.Errorf("missing uart path")
	}
	if baud <= 0 {
		return fmt.Errorf("invalid baud rate %d", baud)
	}
	h.transport = transport{
		h4uart: &transportH4Uart{path, uint(baud)},
	}
	h.id = -1
	return nil
}

// SetActionTimeout bounds each command exchange.
func (h *HCI) SetActionTimeout(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("invalid action timeout %v", d)
	}
	h.timeout = d
	return nil
}

// SetScanParams overrides default scanning parameters.
func (h *HCI) SetScanParams(param cmd.LESetScanParameters) error {
	if err := ValidateScanParams(param); err != nil {
		return err
	}
	h.params.scanParams = param
	return nil
}

// SetAdvParams overrides default advertising parameters.
func (h *HCI) SetAdvParams(param cmd.LESetAdvertisingParameters) error {
	if err := ValidateAdvParams(param); err != nil {
		return err
	}
	h.params.advParams = param
	return nil
}

// SetDiscoveredHandler ...
func (h *HCI) SetDiscoveredHandler(f bluehci.DiscoveredHandler) error {
	h.discovered = f
	return nil
}

// SetUpdateHandler ...
func (h *HCI) SetUpdateHandler(f bluehci.UpdateHandler) error {
	h.update = f
	return nil
}

// SetErrorHandler ...
func (h *HCI) SetErrorHandler(handler func(error)) error {
	h.errorHandler = handler
	return nil
}

// SetDeviceCache sets the cache consulted for names of discovered devices.
func (h *HCI) SetDeviceCache(c bluehci.DeviceCache) error {
	h.cache = c
	return nil
}
