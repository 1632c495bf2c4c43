// Package discovery fans out what an hci device reports while scanning:
// discovered peers are merged into a Registry and, together with unclaimed
// controller events, published to subscribers.
package discovery

import (
	"sync"

	"github.com/cskr/pubsub/v2"
	"go.uber.org/atomic"

	"github.com/rigado/bluehci"
	"github.com/rigado/bluehci/linux/hci/evt"
)

// Topic selects a notification stream.
type Topic uint

const (
	// TopicDevice carries a Device per discovery result.
	TopicDevice Topic = iota + 1
	// TopicEvent carries every evt.Event no command claimed.
	TopicEvent
)

func (t Topic) String() string {
	switch t {
	case TopicDevice:
		return "device"
	case TopicEvent:
		return "event"
	default:
		return "unknown"
	}
}

const defaultCapacity = 16

// Bus publishes discovery results and events. Slow subscribers miss messages
// rather than stall the hci read loop.
type Bus struct {
	ps       *pubsub.PubSub[Topic, any]
	registry *Registry

	mu        sync.RWMutex
	closed    bool
	unsubs    sync.WaitGroup
	published *atomic.Uint64
}

// NewBus returns a bus whose subscriptions buffer capacity messages; 0 picks a default.
func NewBus(capacity int) *Bus {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Bus{
		ps:        pubsub.New[Topic, any](capacity),
		registry:  NewRegistry(),
		published: atomic.NewUint64(0),
	}
}

// Options returns the device options that feed the bus.
func (b *Bus) Options() []bluehci.Option {
	return []bluehci.Option{
		bluehci.OptDiscoveredHandler(b.Discovered),
		bluehci.OptUpdateHandler(b.Update),
	}
}

// Registry returns the registry the bus merges results into.
func (b *Bus) Registry() *Registry {
	return b.registry
}

// Discovered is a bluehci.DiscoveredHandler.
func (b *Bus) Discovered(lowEnergy bool, a bluehci.Address, name string) {
	d := b.registry.Observe(lowEnergy, a, name)
	b.publish(TopicDevice, d)
}

// Update is a bluehci.UpdateHandler.
func (b *Bus) Update(e evt.Event) {
	// the frame buffer is not ours to keep
	c := make(evt.Event, len(e))
	copy(c, e)
	b.publish(TopicEvent, c)
}

func (b *Bus) publish(t Topic, msg any) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	b.ps.TryPub(msg, t)
	b.published.Inc()
}

// Published returns the number of messages handed to the bus.
func (b *Bus) Published() uint64 {
	return b.published.Load()
}

// Subscription receives the messages of one topic on C until Close.
type Subscription struct {
	C <-chan any

	once  sync.Once
	unsub func()
}

// Close ends the subscription; C is closed once drained.
func (s *Subscription) Close() {
	s.once.Do(s.unsub)
}

// Subscribe opens a subscription to t. After Close of the bus C is closed.
func (b *Bus) Subscribe(t Topic) *Subscription {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		ch := make(chan any)
		close(ch)
		return &Subscription{C: ch, unsub: func() {}}
	}

	ch := b.ps.Sub(t)
	return &Subscription{
		C: ch,
		unsub: func() {
			// Unsub blocks until the subscriber drained its channel
			go b.unsub(ch, t)
		},
	}
}

func (b *Bus) unsub(ch chan any, t Topic) {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return
	}
	b.unsubs.Add(1)
	b.mu.RUnlock()

	defer b.unsubs.Done()
	b.ps.Unsub(ch, t)
}

// Close shuts the bus down, closing every subscription.
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	b.mu.Unlock()

	// Shutdown stops the loop pending unsubscribes still talk to
	b.unsubs.Wait()
	b.ps.Shutdown()
}
