package hci

import (
	"time"

	"github.com/pkg/errors"

	"github.com/rigado/bluehci/linux/hci/cmd"
)

// Scan runs an LE scan for d, or until Abort. Results are reported to the
// discovered handler. limited selects the limited discovery timing, passive
// disables scan requests.
func (h *HCI) Scan(d time.Duration, limited, passive bool) error {
	if !h.state.TryAction(StateScanning) {
		return ErrInProgress
	}
	defer h.state.Clear(StateScanning | StateAbort)

	restore, err := h.installFilter(discoveryFilter())
	if err != nil {
		return err
	}
	defer restore()

	sp := NewScanParametersLE()
	*sp.Params() = h.params.scan(limited, passive)
	if err := h.exchange(sp, true); err != nil {
		if errors.Cause(err) == ErrAborted {
			return nil
		}
		return errors.Wrap(err, "scan parameters")
	}

	// once sent, the enable is waited out even through ABORT: the controller
	// may be scanning already and has to be told to stop
	se := NewScanEnableLE()
	*se.Params() = cmd.LESetScanEnable{LEScanEnable: 1, FilterDuplicates: 1}
	if err := h.exchange(se, false); err != nil {
		h.stopScan(se)
		return errors.Wrap(err, "scan enable")
	}

	if h.state.WaitAny(StateAbort, d) {
		h.log.Debug("scan aborted")
	}
	h.stopScan(se)
	return nil
}

func (h *HCI) stopScan(se *ScanEnableLE) {
	*se.Params() = cmd.LESetScanEnable{LEScanEnable: 0, FilterDuplicates: 0}
	if err := h.exchange(se, false); err != nil {
		h.log.Warnf("scan disable: %v", err)
	}
}

// Inquiry runs a classic inquiry on access code lap for d, or until Abort.
// With InquiryFlushCache in flags the device cache is cleared first.
func (h *HCI) Inquiry(d time.Duration, lap uint32, flags uint8) error {
	if !h.state.TryAction(StateScanning) {
		return ErrInProgress
	}
	defer h.state.Clear(StateScanning | StateAbort)

	if flags&InquiryFlushCache != 0 && h.cache != nil {
		if err := h.cache.Clear(); err != nil {
			h.log.Warnf("flush cache: %v", err)
		}
	}

	restore, err := h.installFilter(discoveryFilter())
	if err != nil {
		return err
	}
	defer restore()

	iq := NewInquiry()
	*iq.Params() = cmd.Inquiry{
		LAP:           [3]byte{byte(lap), byte(lap >> 8), byte(lap >> 16)},
		InquiryLength: inquiryLength(d),
		NumResponses:  0, // unlimited
	}
	if err := h.exchange(iq, false); err != nil {
		h.cancelInquiry()
		return errors.Wrap(err, "inquiry")
	}

	h.state.WaitAny(StateAbort, d)
	h.cancelInquiry()
	return nil
}

func (h *HCI) cancelInquiry() {
	// a finished inquiry answers Command Disallowed
	if err := h.exchange(NewInquiryCancel(), false); err != nil {
		h.log.Debugf("inquiry cancel: %v", err)
	}
}

// inquiryLength converts d to units of 1.28 s, rounded.
func inquiryLength(d time.Duration) uint8 {
	sec := int(d / time.Second)
	n := (sec*100 + 64) / 128
	switch {
	case n < 1:
		n = 1
	case n > inquiryLengthMax:
		n = inquiryLengthMax
	}
	return uint8(n)
}

// Advertising starts or stops LE advertising of type mode. It fails with
// ErrIllegalState when the adapter already is in the requested state and
// with ErrBadRequest when the controller refuses a command.
func (h *HCI) Advertising(enable bool, mode uint8) error {
	if enable == h.IsAdvertising() {
		return ErrIllegalState
	}

	if !enable {
		ae := NewAdvertisingEnableLE()
		ae.Params().AdvertisingEnable = 0
		if err := h.exchange(ae, false); err != nil {
			return errors.Wrapf(ErrBadRequest, "advertise disable: %v", err)
		}
		h.state.Clear(StateAdvertising)
		return nil
	}

	ap := NewAdvertisingParametersLE()
	*ap.Params() = h.params.adv(mode)
	if err := ValidateAdvParams(*ap.Params()); err != nil {
		return errors.Wrap(ErrBadRequest, err.Error())
	}
	if err := h.exchange(ap, false); err != nil {
		return errors.Wrapf(ErrBadRequest, "advertising parameters: %v", err)
	}

	ae := NewAdvertisingEnableLE()
	ae.Params().AdvertisingEnable = 1
	if err := h.exchange(ae, false); err != nil {
		return errors.Wrapf(ErrBadRequest, "advertise enable: %v", err)
	}
	h.state.Set(StateAdvertising)
	return nil
}
