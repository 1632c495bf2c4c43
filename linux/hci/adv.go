package hci

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/rigado/bluehci"
	"github.com/rigado/bluehci/linux/eir"
	"github.com/rigado/bluehci/linux/hci/evt"
)

func (h *HCI) makeAdvError(e error, b []byte) error {
	return fmt.Errorf("%v, bytes % X", e, b)
}

func (h *HCI) handleLEAdvertisingReport(b []byte) error {
	if h.discovered == nil && h.cache == nil {
		return nil
	}

	e := evt.LEAdvertisingReport(b)

	nr, err := e.NumReportsWErr()
	if err != nil {
		return h.makeAdvError(errors.Wrap(err, "advRep numReports"), e)
	}

	for i := 0; i < int(nr); i++ {
		a, err := e.AddressWErr(i)
		if err != nil {
			return h.makeAdvError(errors.Wrap(err, "advRep addr"), e)
		}
		data, err := e.DataWErr(i)
		if err != nil {
			return h.makeAdvError(errors.Wrap(err, "advRep data"), e)
		}
		et, _ := e.EventTypeWErr(i)
		at, _ := e.AddressTypeWErr(i)
		rssi, _ := e.RSSIWErr(i)
		h.log.Debugf("adv report %s: event type %d, address type %d, rssi %d",
			bluehci.AddressFromBytes(a), et, at, rssi)

		h.discover(true, a, eir.Name(data))
	}
	return nil
}

func (h *HCI) handleInquiryResult(b []byte) error {
	e := evt.InquiryResult(b)
	nr, err := e.NumResponsesWErr()
	if err != nil {
		return h.makeAdvError(errors.Wrap(err, "inqRes numResponses"), e)
	}
	for i := 0; i < int(nr); i++ {
		a, err := e.BDADDRWErr(i)
		if err != nil {
			return h.makeAdvError(errors.Wrap(err, "inqRes addr"), e)
		}
		h.discover(false, a, "")
	}
	return nil
}

func (h *HCI) handleInquiryResultWithRSSI(b []byte) error {
	e := evt.InquiryResultWithRSSI(b)
	nr, err := e.NumResponsesWErr()
	if err != nil {
		return h.makeAdvError(errors.Wrap(err, "inqResRSSI numResponses"), e)
	}
	for i := 0; i < int(nr); i++ {
		a, err := e.BDADDRWErr(i)
		if err != nil {
			return h.makeAdvError(errors.Wrap(err, "inqResRSSI addr"), e)
		}
		rssi, _ := e.RSSIWErr(i)
		h.log.Debugf("inquiry result %s: rssi %d", bluehci.AddressFromBytes(a), rssi)

		h.discover(false, a, "")
	}
	return nil
}

func (h *HCI) handleExtendedInquiryResult(b []byte) error {
	e := evt.ExtendedInquiryResult(b)
	a, err := e.BDADDRWErr()
	if err != nil {
		return h.makeAdvError(errors.Wrap(err, "extInqRes addr"), e)
	}
	data, err := e.DataWErr()
	if err != nil {
		return h.makeAdvError(errors.Wrap(err, "extInqRes data"), e)
	}
	rssi, _ := e.RSSIWErr()
	h.log.Debugf("extended inquiry result %s: rssi %d", bluehci.AddressFromBytes(a), rssi)

	h.discover(false, a, eir.Name(data))
	return nil
}

// discover reports one result. Names are remembered in the device cache so
// that later results without a name still carry one.
func (h *HCI) discover(lowEnergy bool, b [6]byte, name string) {
	a := bluehci.AddressFromBytes(b)

	if h.cache != nil {
		if name != "" {
			if err := h.cache.Store(a, name); err != nil {
				h.log.Debugf("cache store %s: %v", a, err)
			}
		} else if n, err := h.cache.Load(a); err == nil {
			name = n
		}
	}

	if h.discovered != nil {
		h.discovered(lowEnergy, a, name)
	}
}
