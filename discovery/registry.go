package discovery

import (
	"sort"
	"time"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/rigado/bluehci"
)

// Device is a peer seen by Scan or Inquiry.
type Device struct {
	Address   bluehci.Address `json:"-"`
	Addr      string          `json:"address"`
	LowEnergy bool            `json:"lowEnergy"`
	Name      string          `json:"name,omitempty"`
	FirstSeen time.Time       `json:"firstSeen"`
	LastSeen  time.Time       `json:"lastSeen"`
	Seen      int             `json:"seen"`
}

// Registry merges repeated results for the same peer. Safe for concurrent use.
type Registry struct {
	devices *xsync.MapOf[string, Device]
	results *xsync.Counter

	now func() time.Time
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		devices: xsync.NewMapOf[string, Device](),
		results: xsync.NewCounter(),
		now:     time.Now,
	}
}

// Observe records one result and returns the merged device. A result without
// a name keeps the name seen before.
func (r *Registry) Observe(lowEnergy bool, a bluehci.Address, name string) Device {
	r.results.Inc()
	t := r.now()

	d, _ := r.devices.Compute(a.String(), func(old Device, loaded bool) (Device, bool) {
		if !loaded {
			old = Device{
				Address:   a,
				Addr:      a.String(),
				FirstSeen: t,
			}
		}
		old.LowEnergy = lowEnergy
		if name != "" {
			old.Name = name
		}
		old.LastSeen = t
		old.Seen++
		return old, false
	})
	return d
}

// Get returns the device with address a.
func (r *Registry) Get(a bluehci.Address) (Device, bool) {
	return r.devices.Load(a.String())
}

// Devices lists all devices ordered by address.
func (r *Registry) Devices() []Device {
	out := make([]Device, 0, r.devices.Size())
	r.devices.Range(func(_ string, d Device) bool {
		out = append(out, d)
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Addr < out[j].Addr })
	return out
}

// Len returns the number of distinct devices.
func (r *Registry) Len() int {
	return r.devices.Size()
}

// Results returns the number of results observed, duplicates included.
func (r *Registry) Results() int64 {
	return r.results.Value()
}

// Clear forgets all devices.
func (r *Registry) Clear() {
	r.devices.Clear()
	r.results.Reset()
}
