// Package h4 carries HCI frames over a byte stream in UART (H4) framing,
// e.g. a TCP bridge to a controller on another host.
package h4

import (
	"io"
	"net"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/rigado/bluehci"
	"github.com/rigado/bluehci/linux/hci/socket"
)

const (
	rxQueueSize        = 64
	defaultReadTimeout = time.Second
)

// Transport is an HCI transport over an H4 byte stream. The packet filter of
// a raw HCI socket is applied in software.
type Transport struct {
	rwc io.ReadWriteCloser
	log bluehci.Logger

	wmu sync.Mutex
	fmu sync.Mutex
	f   socket.Filter

	readTimeout time.Duration
	rx          chan []byte
	rxErr       chan error

	done chan struct{}
	once sync.Once
}

// Dial connects to an H4 server at addr, e.g. "192.168.1.10:9000".
func Dial(addr string, timeout time.Duration) (*Transport, error) {
	c, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return nil, errors.Wrapf(err, "can't dial %s", addr)
	}
	return New(c), nil
}

// New starts reading frames from rwc. Close closes rwc.
func New(rwc io.ReadWriteCloser) *Transport {
	t := &Transport{
		rwc:         rwc,
		log:         bluehci.GetLogger().ChildLogger(map[string]interface{}{"transport": "h4"}),
		readTimeout: defaultReadTimeout,
		rx:          make(chan []byte, rxQueueSize),
		rxErr:       make(chan error, 1),
		done:        make(chan struct{}),
	}
	go t.rxLoop()
	return t
}

// Read returns one frame, packet type first. It returns 0, nil when nothing
// arrives within the read timeout.
func (t *Transport) Read(p []byte) (int, error) {
	timer := time.NewTimer(t.readTimeout)
	defer timer.Stop()

	select {
	case f := <-t.rx:
		if len(p) < len(f) {
			return 0, errors.Errorf("buffer too small: %d < %d", len(p), len(f))
		}
		return copy(p, f), nil
	case err := <-t.rxErr:
		return 0, errors.Wrap(err, "can't read h4")
	case <-timer.C:
		return 0, nil
	case <-t.done:
		return 0, io.EOF
	}
}

// Write sends one frame.
func (t *Transport) Write(p []byte) (int, error) {
	select {
	case <-t.done:
		return 0, io.EOF
	default:
	}

	t.wmu.Lock()
	defer t.wmu.Unlock()
	n, err := t.rwc.Write(p)
	return n, errors.Wrap(err, "can't write h4")
}

// Close stops the reader and closes the stream.
func (t *Transport) Close() error {
	var err error
	t.once.Do(func() {
		close(t.done)
		err = t.rwc.Close()
	})
	return errors.Wrap(err, "can't close h4")
}

// SetFilter replaces the filter applied to inbound frames.
func (t *Transport) SetFilter(f socket.Filter) error {
	t.fmu.Lock()
	t.f = f
	t.fmu.Unlock()
	return nil
}

// Filter returns the filter applied to inbound frames.
func (t *Transport) Filter() socket.Filter {
	t.fmu.Lock()
	defer t.fmu.Unlock()
	return t.f
}

func (t *Transport) pass(frame []byte) bool {
	f := t.Filter()
	if !f.HasPacketType(frame[0]) {
		return false
	}
	return frame[0] != eventPacket || f.HasEvent(frame[1])
}

func (t *Transport) rxLoop() {
	a := newAssembler()
	b := make([]byte, 1024)

	for {
		n, err := t.rwc.Read(b)
		if err != nil {
			select {
			case <-t.done:
			default:
				t.rxErr <- err
			}
			return
		}

		for _, f := range a.Feed(b[:n]) {
			if !t.pass(f) {
				continue
			}
			select {
			case t.rx <- f:
			case <-t.done:
				return
			}
		}
		if a.dropped > 0 {
			t.log.Debugf("dropped %d bytes out of frame", a.dropped)
			a.dropped = 0
		}
	}
}
