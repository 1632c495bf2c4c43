package bluehci

// DeviceCache remembers the names of discovered devices.
type DeviceCache interface {
	Store(a Address, name string) error
	Load(a Address) (string, error)
	Clear() error
}
