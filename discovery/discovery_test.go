package discovery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rigado/bluehci"
	"github.com/rigado/bluehci/linux/hci/evt"
)

var (
	addrA = bluehci.ParseAddress("00:11:22:33:44:55")
	addrB = bluehci.ParseAddress("AA:BB:CC:DD:EE:FF")
)

func TestRegistryObserve(t *testing.T) {
	r := NewRegistry()
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := t0
	r.now = func() time.Time { return now }

	d := r.Observe(true, addrA, "Thingy")
	require.Equal(t, 1, d.Seen)
	require.Equal(t, "Thingy", d.Name)
	require.Equal(t, "00:11:22:33:44:55", d.Addr)
	require.Equal(t, t0, d.FirstSeen)

	now = t0.Add(time.Second)
	d = r.Observe(true, addrA, "")
	require.Equal(t, 2, d.Seen)
	require.Equal(t, "Thingy", d.Name)
	require.Equal(t, t0, d.FirstSeen)
	require.Equal(t, now, d.LastSeen)

	r.Observe(false, addrB, "")
	require.Equal(t, 2, r.Len())
	require.Equal(t, int64(3), r.Results())

	got, ok := r.Get(addrB)
	require.True(t, ok)
	require.False(t, got.LowEnergy)
	require.True(t, got.Address.Equal(addrB))

	devs := r.Devices()
	require.Len(t, devs, 2)
	require.Equal(t, "00:11:22:33:44:55", devs[0].Addr)
	require.Equal(t, "AA:BB:CC:DD:EE:FF", devs[1].Addr)

	r.Clear()
	require.Zero(t, r.Len())
	require.Zero(t, r.Results())
	_, ok = r.Get(addrA)
	require.False(t, ok)
}

func TestBusDevice(t *testing.T) {
	b := NewBus(4)
	defer b.Close()

	sub := b.Subscribe(TopicDevice)
	defer sub.Close()

	b.Discovered(true, addrA, "Thingy")

	select {
	case m := <-sub.C:
		d, ok := m.(Device)
		require.True(t, ok)
		require.Equal(t, "Thingy", d.Name)
		require.True(t, d.LowEnergy)
	case <-time.After(time.Second):
		t.Fatal("no device published")
	}

	require.Equal(t, 1, b.Registry().Len())
	require.Equal(t, uint64(1), b.Published())
}

func TestBusEvent(t *testing.T) {
	b := NewBus(0)
	defer b.Close()

	events := b.Subscribe(TopicEvent)
	devices := b.Subscribe(TopicDevice)

	e := evt.Event{evt.EncryptionChangeCode, 0x01, 0x00}
	b.Update(e)
	e[2] = 0xFF

	select {
	case m := <-events.C:
		require.Equal(t, evt.Event{evt.EncryptionChangeCode, 0x01, 0x00}, m)
	case <-time.After(time.Second):
		t.Fatal("no event published")
	}

	select {
	case m := <-devices.C:
		t.Fatalf("unexpected message %v", m)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestBusOptions(t *testing.T) {
	b := NewBus(0)
	defer b.Close()
	require.Len(t, b.Options(), 2)
}

func TestBusClose(t *testing.T) {
	b := NewBus(0)
	sub := b.Subscribe(TopicDevice)

	b.Close()
	b.Close()

	select {
	case _, ok := <-sub.C:
		require.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("subscription not closed")
	}

	// publishing and subscribing after close are harmless
	b.Discovered(true, addrA, "")
	require.Zero(t, b.Published())

	late := b.Subscribe(TopicDevice)
	_, ok := <-late.C
	require.False(t, ok)
	late.Close()
	sub.Close()
}

func TestBusCloseAfterIdleSubscriber(t *testing.T) {
	b := NewBus(1)
	idle := b.Subscribe(TopicDevice)
	other := b.Subscribe(TopicDevice)

	// idle never reads; its buffer fills and further results skip it
	for i := 0; i < 5; i++ {
		b.Discovered(true, addrA, "")
	}
	idle.Close()
	other.Close()

	closed := make(chan struct{})
	go func() {
		b.Close()
		close(closed)
	}()
	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("Close blocked")
	}

	for range idle.C {
	}
	for range other.C {
	}
}

func TestTopicString(t *testing.T) {
	require.Equal(t, "device", TopicDevice.String())
	require.Equal(t, "event", TopicEvent.String())
	require.Equal(t, "unknown", Topic(0).String())
}
