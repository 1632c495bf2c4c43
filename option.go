package bluehci

import (
	"time"

	"github.com/rigado/bluehci/linux/hci/cmd"
	"github.com/rigado/bluehci/linux/hci/evt"
)

// DiscoveredHandler receives one call per discovery result.
type DiscoveredHandler func(lowEnergy bool, a Address, name string)

// UpdateHandler receives every inbound event that no outstanding command claimed.
type UpdateHandler func(e evt.Event)

// DeviceOption is an interface which the device should implement to allow using configuration options
type DeviceOption interface {
	SetTransportHCISocket(id int) error
	SetTransportH4Socket(addr string, timeout time.Duration) error
	SetTransportH4Uart(path string, baud int) error
	SetActionTimeout(time.Duration) error
	SetScanParams(cmd.LESetScanParameters) error
	SetAdvParams(cmd.LESetAdvertisingParameters) error
	SetDiscoveredHandler(DiscoveredHandler) error
	SetUpdateHandler(UpdateHandler) error
	SetErrorHandler(handler func(error)) error
	SetDeviceCache(DeviceCache) error
}

// An Option is a configuration function, which configures the device.
type Option func(DeviceOption) error

// OptTransportHCISocket binds the device to hci<id>; -1 picks the first adapter that is up.
func OptTransportHCISocket(id int) Option {
	return func(opt DeviceOption) error {
		return opt.SetTransportHCISocket(id)
	}
}

// OptTransportH4Socket talks H4 framing to a controller bridged over TCP.
func OptTransportH4Socket(addr string, timeout time.Duration) Option {
	return func(opt DeviceOption) error {
		return opt.SetTransportH4Socket(addr, timeout)
	}
}

// OptTransportH4Uart talks H4 framing to a controller on the UART at path.
func OptTransportH4Uart(path string, baud int) Option {
	return func(opt DeviceOption) error {
		return opt.SetTransportH4Uart(path, baud)
	}
}

// OptActionTimeout bounds every command exchange.
func OptActionTimeout(d time.Duration) Option {
	return func(opt DeviceOption) error {
		return opt.SetActionTimeout(d)
	}
}

// OptScanParams overrides default scanning parameters.
func OptScanParams(param cmd.LESetScanParameters) Option {
	return func(opt DeviceOption) error {
		return opt.SetScanParams(param)
	}
}

// OptAdvParams overrides default advertising parameters.
func OptAdvParams(param cmd.LESetAdvertisingParameters) Option {
	return func(opt DeviceOption) error {
		return opt.SetAdvParams(param)
	}
}

// OptDiscoveredHandler sets the discovery callback.
func OptDiscoveredHandler(h DiscoveredHandler) Option {
	return func(opt DeviceOption) error {
		return opt.SetDiscoveredHandler(h)
	}
}

// OptUpdateHandler sets the callback for unclaimed events.
func OptUpdateHandler(h UpdateHandler) Option {
	return func(opt DeviceOption) error {
		return opt.SetUpdateHandler(h)
	}
}

// OptErrorHandler sets error handler
func OptErrorHandler(handler func(error)) Option {
	return func(opt DeviceOption) error {
		return opt.SetErrorHandler(handler)
	}
}

// OptDeviceCache fills in names of discovered devices that advertise none.
func OptDeviceCache(c DeviceCache) Option {
	return func(opt DeviceOption) error {
		return opt.SetDeviceCache(c)
	}
}
