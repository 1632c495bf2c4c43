package hci

import (
	"github.com/pkg/errors"

	"github.com/rigado/bluehci/linux/hci/cmd"
)

// Config powers the adapter up or down and, when powered, writes the
// connectable, pairing and LE settings, then brings advertising in line.
// The first failing step ends the sequence.
func (h *HCI) Config(powered, bondable, advertising, simplePairing, lowEnergy, secure bool) error {
	if !powered {
		h.state.Clear(StateAdvertising)
		return h.down(h.id)
	}

	if err := h.up(h.id); err != nil {
		return err
	}

	scan := uint8(cmd.PageScanOnly)
	if bondable {
		scan = cmd.InquiryAndPageScan
	}

	se := NewWriteScanEnable()
	se.Params().ScanEnable = scan

	sp := NewWriteSimplePairingMode()
	sp.Params().SimplePairingMode = b2u(simplePairing)

	le := NewWriteLEHostSupported()
	*le.Params() = cmd.WriteLEHostSupport{LESupportedHost: b2u(lowEnergy), SimultaneousLEHost: 0}

	sc := NewWriteSecureConnectionsHostSupport()
	sc.Params().SecureConnectionsHostSupport = b2u(secure)

	for _, s := range []struct {
		name string
		c    exchanger
	}{
		{"scan enable", se},
		{"simple pairing", sp},
		{"le host support", le},
		{"secure connections", sc},
	} {
		if err := h.exchange(s.c, false); err != nil {
			return errors.Wrapf(err, "config %s", s.name)
		}
	}

	if advertising != h.IsAdvertising() {
		if err := h.Advertising(advertising, 0); err != nil {
			return errors.Wrap(err, "config advertising")
		}
	}
	return nil
}

func b2u(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
