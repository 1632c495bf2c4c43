package hci

import (
	"github.com/pkg/errors"

	"github.com/rigado/bluehci"
	"github.com/rigado/bluehci/linux/hci/cmd"
	"github.com/rigado/bluehci/linux/hci/evt"
)

// Pair bonds with remote. BR/EDR devices are connected, authenticated and
// disconnected again; the controller's pairing requests are answered with
// capability ioCap while that runs. LE devices are connected and encryption is
// started. The first failing step ends the sequence; completed steps are not
// undone.
func (h *HCI) Pair(remote bluehci.Address, addrType uint8, ioCap IOCapability) error {
	if !remote.IsValid() {
		return errors.Wrap(ErrBadRequest, "invalid address")
	}
	if ioCap > KeyboardDisplay {
		return errors.Wrapf(ErrBadRequest, "invalid io capability 0x%02X", uint8(ioCap))
	}
	if !h.state.TryAction(StatePairing) {
		return ErrInProgress
	}
	defer h.state.Clear(StatePairing | StateAbort)

	h.pairCap.Store(uint32(ioCap))

	if addrType == bluehci.BREDRAddress {
		return h.pairBREDR(remote)
	}
	return h.pairLE(remote, leAddressType(addrType))
}

func (h *HCI) pairBREDR(remote bluehci.Address) error {
	c := NewConnect()
	*c.Params() = cmd.CreateConnection{
		BDADDR:                 remote.Array(),
		PacketType:             connPacketTypes,
		PageScanRepetitionMode: connPageScanR1,
		AllowRoleSwitch:        connAllowRoleSwitch,
	}
	if err := h.exchange(c, true); err != nil {
		return errors.Wrapf(err, "connect %s", remote)
	}
	handle := c.Response().ConnectionHandle
	h.log.Debugf("connected %s, handle 0x%04X", remote, handle)

	a := NewAuthenticate()
	a.Params().ConnectionHandle = handle
	if err := h.exchange(a, true); err != nil {
		return errors.Wrapf(err, "authenticate %s", remote)
	}

	d := NewDisconnect()
	*d.Params() = cmd.Disconnect{ConnectionHandle: handle, Reason: reasonRemoteUser}
	if err := h.exchange(d, false); err != nil {
		return errors.Wrapf(err, "disconnect %s", remote)
	}
	return nil
}

func (h *HCI) pairLE(remote bluehci.Address, peerType uint8) error {
	c := NewConnectLE()
	*c.Params() = h.params.conn(peerType, remote.Array())
	if err := h.exchange(c, true); err != nil {
		return errors.Wrapf(err, "connect %s", remote)
	}
	handle := c.Response().ConnectionHandle
	h.log.Debugf("connected %s, handle 0x%04X", remote, handle)

	e := NewEncryptLE()
	e.Params().ConnectionHandle = handle
	if err := h.exchange(e, true); err != nil {
		return errors.Wrapf(err, "encrypt %s", remote)
	}
	return nil
}

// Unpair drops what the controller keeps about remote: the stored link key of
// a BR/EDR device or the white list entry of an LE device.
func (h *HCI) Unpair(remote bluehci.Address, addrType uint8) error {
	if !remote.IsValid() {
		return errors.Wrap(ErrBadRequest, "invalid address")
	}
	if !h.state.TryAction(StatePairing) {
		return ErrInProgress
	}
	defer h.state.Clear(StatePairing | StateAbort)

	if addrType == bluehci.BREDRAddress {
		c := NewDeleteLinkKey()
		*c.Params() = cmd.DeleteStoredLinkKey{BDADDR: remote.Array()}
		return errors.Wrapf(h.exchange(c, false), "delete link key %s", remote)
	}

	c := NewRemoveDeviceFromWhiteList()
	*c.Params() = cmd.LERemoveDeviceFromWhiteList{
		AddressType: leAddressType(addrType),
		Address:     remote.Array(),
	}
	return errors.Wrapf(h.exchange(c, false), "white list remove %s", remote)
}

func leAddressType(addrType uint8) uint8 {
	if addrType == bluehci.LERandomAddress {
		return AddressTypeRandom
	}
	return AddressTypePublic
}

func (h *HCI) handleIOCapabilityRequest(b []byte) error {
	if !h.IsPairing() {
		return nil
	}
	a, err := evt.BDADDREvent(b).BDADDRWErr()
	if err != nil {
		return errors.Wrap(err, "io capability request")
	}
	c := NewIOCapabilityReply()
	*c.Params() = cmd.IOCapabilityRequestReply{
		BDADDR:                     a,
		IOCapability:               uint8(h.pairCap.Load()),
		OOBDataPresent:             0,
		AuthenticationRequirements: authDedicatedBonding,
	}
	return errors.Wrap(h.post(c), "io capability reply")
}

func (h *HCI) handleUserConfirmationRequest(b []byte) error {
	if !h.IsPairing() {
		return nil
	}
	a, err := evt.BDADDREvent(b).BDADDRWErr()
	if err != nil {
		return errors.Wrap(err, "user confirmation request")
	}
	c := NewUserConfirmationReply()
	c.Params().BDADDR = a
	return errors.Wrap(h.post(c), "user confirmation reply")
}

// Link keys are not kept here; the controller is told there is none and the
// key notified at the end of pairing goes out through the update handler.
func (h *HCI) handleLinkKeyRequest(b []byte) error {
	if !h.IsPairing() {
		return nil
	}
	a, err := evt.BDADDREvent(b).BDADDRWErr()
	if err != nil {
		return errors.Wrap(err, "link key request")
	}
	c := NewLinkKeyNegativeReply()
	c.Params().BDADDR = a
	return errors.Wrap(h.post(c), "link key negative reply")
}

func (h *HCI) handleLinkKeyNotification(b []byte) error {
	e := evt.LinkKeyNotification(b)
	a, err := e.BDADDRWErr()
	if err != nil {
		return errors.Wrap(err, "link key notification")
	}
	kt, _ := e.KeyTypeWErr()
	h.log.Debugf("link key for %s, type 0x%02X", bluehci.AddressFromBytes(a), kt)
	return nil
}
