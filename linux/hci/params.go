package hci

import (
	"github.com/pkg/errors"

	"github.com/rigado/bluehci/linux/hci/cmd"
)

const (
	AddressTypePublic           = 0
	AddressTypeRandom           = 1
	FilterPolicyAcceptAll       = 0
	FilterPolicyAcceptWhitelist = 1
	LEScanTypePassive           = 0
	LEScanTypeActive            = 1

	LEScanIntervalMin = 0x0004
	LEScanIntervalMax = 0x4000

	AdvIntervalMin = 0x0020
	AdvIntervalMax = 0x4000
	AdvTypeMax     = 0x04

	ConnIntervalMin = 0x0006
	ConnIntervalMax = 0x0C80
	ConnLatencyMax  = 0x01F3

	SupervisionTimeoutMin = 0x000A
	SupervisionTimeoutMax = 0x0C80
)

// params holds the LE parameter blocks an action starts from. Scan and
// Advertising override the fields their arguments control.
type params struct {
	advParams  cmd.LESetAdvertisingParameters
	scanParams cmd.LESetScanParameters
	connParams cmd.LECreateConnection
}

func (p *params) init() {
	p.scanParams = cmd.LESetScanParameters{
		LEScanType:     LEScanTypeActive,
		LEScanInterval: scanIntervalGeneral, // N * 0.625 ms
		LEScanWindow:   scanIntervalGeneral,
	}
	p.advParams = cmd.LESetAdvertisingParameters{
		AdvertisingIntervalMin: advInterval, // N * 0.625 ms
		AdvertisingIntervalMax: advInterval,
		AdvertisingChannelMap:  advChannelMap, // ch37 | ch38 | ch39
	}
	p.connParams = cmd.LECreateConnection{
		LEScanInterval:     0x0040,
		LEScanWindow:       0x0040,
		ConnIntervalMin:    ConnIntervalMin, // N * 1.25 ms
		ConnIntervalMax:    ConnIntervalMin,
		SupervisionTimeout: 0x0400, // N * 10 ms
	}
}

func (p *params) validate() error {
	if err := ValidateScanParams(p.scanParams); err != nil {
		return err
	}
	if err := ValidateAdvParams(p.advParams); err != nil {
		return err
	}
	return ValidateConnParams(p.connParams)
}

// scan returns the scan parameters for one Scan call.
func (p *params) scan(limited, passive bool) cmd.LESetScanParameters {
	sp := p.scanParams
	sp.LEScanType = LEScanTypeActive
	if passive {
		sp.LEScanType = LEScanTypePassive
	}
	sp.LEScanInterval = scanIntervalGeneral
	if limited {
		sp.LEScanInterval = scanIntervalLimited
	}
	sp.LEScanWindow = sp.LEScanInterval
	return sp
}

// adv returns the advertising parameters for advertising type mode.
func (p *params) adv(mode uint8) cmd.LESetAdvertisingParameters {
	ap := p.advParams
	ap.AdvertisingIntervalMin = advInterval
	ap.AdvertisingIntervalMax = advInterval
	ap.AdvertisingChannelMap = advChannelMap
	ap.AdvertisingType = mode
	return ap
}

// conn returns the connection parameters to reach peer.
func (p *params) conn(peerType uint8, peer [6]byte) cmd.LECreateConnection {
	cp := p.connParams
	cp.PeerAddressType = peerType
	cp.PeerAddress = peer
	return cp
}

// bound is one inclusive range check of a parameter block.
type bound struct {
	name     string
	v        int
	min, max int
}

func checkBounds(bb ...bound) error {
	for _, b := range bb {
		if b.v < b.min || b.v > b.max {
			return errors.Errorf("invalid %s %d, want %d..%d", b.name, b.v, b.min, b.max)
		}
	}
	return nil
}

func ValidateScanParams(p cmd.LESetScanParameters) error {
	return checkBounds(
		bound{"LEScanType", int(p.LEScanType), LEScanTypePassive, LEScanTypeActive},
		bound{"LEScanInterval", int(p.LEScanInterval), LEScanIntervalMin, LEScanIntervalMax},
		bound{"LEScanWindow", int(p.LEScanWindow), LEScanIntervalMin, int(p.LEScanInterval)},
		bound{"OwnAddressType", int(p.OwnAddressType), AddressTypePublic, AddressTypeRandom},
		bound{"ScanningFilterPolicy", int(p.ScanningFilterPolicy), FilterPolicyAcceptAll, FilterPolicyAcceptWhitelist},
	)
}

func ValidateAdvParams(p cmd.LESetAdvertisingParameters) error {
	return checkBounds(
		bound{"AdvertisingIntervalMax", int(p.AdvertisingIntervalMax), AdvIntervalMin, AdvIntervalMax},
		bound{"AdvertisingIntervalMin", int(p.AdvertisingIntervalMin), AdvIntervalMin, int(p.AdvertisingIntervalMax)},
		bound{"AdvertisingType", int(p.AdvertisingType), 0, AdvTypeMax},
		bound{"AdvertisingChannelMap", int(p.AdvertisingChannelMap), 0x01, 0x07},
	)
}

func ValidateConnParams(p cmd.LECreateConnection) error {
	err := checkBounds(
		bound{"LEScanInterval", int(p.LEScanInterval), LEScanIntervalMin, LEScanIntervalMax},
		bound{"LEScanWindow", int(p.LEScanWindow), LEScanIntervalMin, int(p.LEScanInterval)},
		bound{"InitiatorFilterPolicy", int(p.InitiatorFilterPolicy), FilterPolicyAcceptAll, FilterPolicyAcceptWhitelist},
		bound{"OwnAddressType", int(p.OwnAddressType), AddressTypePublic, AddressTypeRandom},
		bound{"PeerAddressType", int(p.PeerAddressType), AddressTypePublic, AddressTypeRandom},
		bound{"ConnIntervalMax", int(p.ConnIntervalMax), ConnIntervalMin, ConnIntervalMax},
		bound{"ConnIntervalMin", int(p.ConnIntervalMin), ConnIntervalMin, int(p.ConnIntervalMax)},
		bound{"ConnLatency", int(p.ConnLatency), 0, ConnLatencyMax},
		bound{"SupervisionTimeout", int(p.SupervisionTimeout), SupervisionTimeoutMin, SupervisionTimeoutMax},
		bound{"MinimumCELength", int(p.MinimumCELength), 0, int(p.MaximumCELength)},
	)
	if err != nil {
		return err
	}

	// timeout [10 ms] > (1 + latency) * interval [1.25 ms] * 2
	if 10*4*int(p.SupervisionTimeout) <= (1+int(p.ConnLatency))*int(p.ConnIntervalMax)*5*2 {
		return errors.Errorf("SupervisionTimeout %d too small for ConnIntervalMax %d, ConnLatency %d",
			p.SupervisionTimeout, p.ConnIntervalMax, p.ConnLatency)
	}
	return nil
}
