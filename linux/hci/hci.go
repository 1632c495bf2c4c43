package hci

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"github.com/rigado/bluehci"
	"github.com/rigado/bluehci/linux/hci/cmd"
	"github.com/rigado/bluehci/linux/hci/evt"
	"github.com/rigado/bluehci/linux/hci/socket"
)

// exchanger is the part of a Command the orchestrator drives.
type exchanger interface {
	OpCode() uint16
	Reload() error
	Serialize([]byte) int
	Deserialize([]byte) int
	Done() <-chan struct{}
	Result() Completion
	Err() error
}

// NewHCI returns a hci device.
func NewHCI(opts ...bluehci.Option) (*HCI, error) {
	h := &HCI{
		id:      -1,
		timeout: DefaultActionTimeout,
		state:   newStateTrigger(),
		pairCap: atomic.NewUint32(uint32(NoInputNoOutput)),
		open:    atomic.NewBool(false),

		done:     make(chan struct{}),
		loopDone: make(chan struct{}),

		up:   Up,
		down: Down,
	}
	h.log = bluehci.GetLogger().ChildLogger(map[string]interface{}{"hci": h.id})
	h.params.init()
	if err := h.Option(opts...); err != nil {
		return nil, errors.Wrap(err, "can't set options")
	}

	return h, nil
}

// HCI drives one local adapter over a raw HCI transport.
type HCI struct {
	id      int
	params  params
	timeout time.Duration
	log     bluehci.Logger

	transport transport
	skt       Transport

	state   *stateTrigger
	pairCap *atomic.Uint32

	// one command exchange at a time
	muExchange sync.Mutex
	muPending  sync.Mutex
	pending    exchanger

	addr bluehci.Address

	discovered   bluehci.DiscoveredHandler
	update       bluehci.UpdateHandler
	errorHandler func(error)
	cache        bluehci.DeviceCache

	up, down func(id int) error

	open     *atomic.Bool
	muClose  sync.Mutex
	done     chan struct{}
	loopDone chan struct{}
}

// Option sets the options specified.
func (h *HCI) Option(opts ...bluehci.Option) error {
	for _, opt := range opts {
		if err := opt(h); err != nil {
			return err
		}
	}
	return nil
}

// Init opens the transport, starts the read loop and reads the adapter address.
func (h *HCI) Init() error {
	if err := h.params.validate(); err != nil {
		return err
	}

	skt, err := getTransport(h.transport)
	if err != nil {
		return err
	}
	h.skt = skt
	if s, ok := skt.(interface{ ID() int }); ok {
		h.id = s.ID()
	}
	h.log = bluehci.GetLogger().ChildLogger(map[string]interface{}{"hci": h.id})

	h.open.Store(true)
	go h.sktReadLoop()
	h.StateChange(true)

	rb := NewReadBDADDR()
	if err := h.exchange(rb, false); err != nil {
		// a powered down adapter answers nothing until Config brings it up
		h.log.Warnf("read address: %v", err)
	} else {
		h.addr = bluehci.AddressFromBytes(rb.Response().BDADDR)
		h.log.Infof("adapter address %s", h.addr)
	}
	return nil
}

// Close stops the read loop, waiting for it to exit, and releases the transport.
func (h *HCI) Close() error {
	h.muClose.Lock()
	defer h.muClose.Unlock()

	if !h.open.CompareAndSwap(true, false) {
		return nil
	}
	close(h.done)
	<-h.loopDone

	h.StateChange(false)
	return h.skt.Close()
}

// StateChange is called when the transport opens or closes.
func (h *HCI) StateChange(open bool) {
	if !open {
		h.log.Info("transport closed")
		// wake anything still waiting for the controller
		h.state.Set(StateAbort)
		return
	}
	if err := h.skt.SetFilter(defaultFilter()); err != nil {
		h.dispatchError(errors.Wrap(err, "install filter"))
	}
}

// ID returns the adapter number, -1 when not bound to an hci socket.
func (h *HCI) ID() int { return h.id }

// Addr returns the adapter address read at Init.
func (h *HCI) Addr() bluehci.Address { return h.addr }

// State returns the device state bit-set.
func (h *HCI) State() State { return h.state.Get() }

func (h *HCI) IsScanning() bool    { return h.state.Get()&StateScanning != 0 }
func (h *HCI) IsPairing() bool     { return h.state.Get()&StatePairing != 0 }
func (h *HCI) IsAdvertising() bool { return h.state.Get()&StateAdvertising != 0 }

// Abort asks a running Scan, Inquiry or Pair to stop. Safe from any goroutine.
func (h *HCI) Abort() {
	h.state.Set(StateAbort)
}

// LocalFeatures reads the LMP features of the adapter.
func (h *HCI) LocalFeatures() (*FeatureIterator, error) {
	c := NewReadLocalFeatures()
	if err := h.exchange(c, false); err != nil {
		return nil, errors.Wrap(err, "read local features")
	}
	rp := c.Response()
	return NewFeatureIterator(rp.LMPFeatures[:]), nil
}

func (h *HCI) isOpen() bool {
	return h.open.Load()
}

func (h *HCI) setPending(c exchanger) {
	h.muPending.Lock()
	h.pending = c
	h.muPending.Unlock()
}

func (h *HCI) getPending() exchanger {
	h.muPending.Lock()
	defer h.muPending.Unlock()
	return h.pending
}

// exchange sends c and waits for its completion, the action timeout, or,
// when abortable, ABORT.
func (h *HCI) exchange(c exchanger, abortable bool) error {
	if !h.isOpen() {
		return ErrClosed
	}

	h.muExchange.Lock()
	defer h.muExchange.Unlock()

	if err := c.Reload(); err != nil {
		return errors.Wrapf(err, "cmd %s", cmd.OpString(c.OpCode()))
	}

	h.setPending(c)
	defer h.setPending(nil)

	if err := h.send(c); err != nil {
		return err
	}

	timer := time.NewTimer(h.timeout)
	defer timer.Stop()

	for {
		// an answered command wins over a concurrent ABORT
		select {
		case <-c.Done():
			h.log.Debugf(">> %s: %s", cmd.OpString(c.OpCode()), c.Result())
			return c.Err()
		default:
		}

		var abort <-chan struct{}
		if abortable {
			s, changed := h.state.snapshot()
			if s&StateAbort != 0 {
				return ErrAborted
			}
			abort = changed
		}

		select {
		case <-c.Done():
			err := c.Err()
			h.log.Debugf(">> %s: %s", cmd.OpString(c.OpCode()), c.Result())
			return err

		case <-timer.C:
			return errors.Wrapf(ErrTimedOut, "cmd %s", cmd.OpString(c.OpCode()))

		case <-h.done:
			return ErrClosed

		case <-abort:
			// state changed, re-check
		}
	}
}

// post sends c without waiting for an answer.
func (h *HCI) post(c exchanger) error {
	if err := c.Reload(); err != nil {
		return err
	}
	return h.send(c)
}

func (h *HCI) send(c exchanger) error {
	b := make([]byte, cmdHeaderSize+cmd.MaxParamsLength)
	n := 0
	for {
		k := c.Serialize(b[n:])
		if k == 0 {
			break
		}
		n += k
	}

	if !h.isOpen() {
		return ErrClosed
	}
	w, err := h.skt.Write(b[:n])
	if err != nil {
		return errors.Wrapf(err, "send cmd %s", cmd.OpString(c.OpCode()))
	}
	if w != n {
		return errors.Errorf("send cmd %s: short write %d of %d", cmd.OpString(c.OpCode()), w, n)
	}
	return nil
}

func (h *HCI) sktReadLoop() {
	defer close(h.loopDone)

	b := make([]byte, readBufferSize)

	for {
		select {
		case <-h.done:
			return
		default:
		}

		n, err := h.skt.Read(b)

		switch {
		case n == 0 && err == nil:
			// read timeout
			continue

		case err != nil:
			if h.isOpen() {
				h.dispatchError(errors.Wrap(err, "skt read"))
				h.state.Set(StateAbort)
			}
			return

		default:
			p := make([]byte, n)
			copy(p, b)
			h.Deserialize(p)
		}
	}
}

// Deserialize dispatches one inbound frame, packet type included. The
// outstanding command gets the first look; frames it does not claim go to
// discovery, pairing and the update handler. The whole frame is always
// consumed.
func (h *HCI) Deserialize(frame []byte) int {
	if p := h.getPending(); p != nil {
		if n := p.Deserialize(frame); n > 0 {
			return n
		}
	}

	e, err := evt.Parse(frame)
	if err != nil {
		h.log.Debugf("dropping frame: %v", err)
		return len(frame)
	}

	h.handleEvent(e)
	if h.update != nil {
		h.update(e)
	}
	return len(frame)
}

func (h *HCI) handleEvent(e evt.Event) {
	var err error

	switch e.Code() {
	case evt.LEMetaCode:
		err = h.handleLEMeta(e.Params())
	case evt.InquiryResultCode:
		err = h.handleInquiryResult(e.Params())
	case evt.InquiryResultWithRSSICode:
		err = h.handleInquiryResultWithRSSI(e.Params())
	case evt.ExtendedInquiryResultCode:
		err = h.handleExtendedInquiryResult(e.Params())
	case evt.IOCapabilityRequestCode:
		err = h.handleIOCapabilityRequest(e.Params())
	case evt.UserConfirmationRequestCode:
		err = h.handleUserConfirmationRequest(e.Params())
	case evt.LinkKeyRequestCode:
		err = h.handleLinkKeyRequest(e.Params())
	case evt.LinkKeyNotificationCode:
		err = h.handleLinkKeyNotification(e.Params())
	case evt.HardwareErrorCode:
		err = errors.Errorf("hardware error: % X", e.Params())
	}

	if err != nil {
		h.dispatchError(err)
	}
}

func (h *HCI) handleLEMeta(b []byte) error {
	sub, err := evt.LEMeta(b).SubeventCodeWErr()
	if err != nil {
		return errors.Wrap(err, "le meta")
	}
	if sub == evt.LEAdvertisingReportSubCode {
		return h.handleLEAdvertisingReport(b)
	}
	return nil
}

func (h *HCI) dispatchError(e error) {
	switch {
	case h.errorHandler == nil:
		h.log.Error(e)
	case !h.isOpen():
		h.log.Warnf("hci closing: %v", e)
	default:
		h.errorHandler(e)
	}
}

// installFilter replaces the kernel filter and returns a func restoring the
// previous one.
func (h *HCI) installFilter(f socket.Filter) (func(), error) {
	prev := h.skt.Filter()
	if err := h.skt.SetFilter(f); err != nil {
		return nil, errors.Wrap(err, "install filter")
	}
	return func() {
		if err := h.skt.SetFilter(prev); err != nil {
			h.dispatchError(errors.Wrap(err, "restore filter"))
		}
	}, nil
}
