package hci

import (
	"github.com/rigado/bluehci/linux/hci/cmd"
	"github.com/rigado/bluehci/linux/hci/evt"
)

// Commands issued by HCI, with the event each one waits for.
type (
	Connect                           = Command[cmd.CreateConnection, cmd.ConnectionCompleteEP]
	ConnectLE                         = Command[cmd.LECreateConnection, cmd.LEConnectionCompleteEP]
	Disconnect                        = Command[cmd.Disconnect, cmd.DisconnectionCompleteEP]
	ReadLinkKey                       = Command[cmd.ReadStoredLinkKey, cmd.ReadStoredLinkKeyRP]
	WriteLinkKey                      = Command[cmd.WriteStoredLinkKey, cmd.WriteStoredLinkKeyRP]
	DeleteLinkKey                     = Command[cmd.DeleteStoredLinkKey, cmd.DeleteStoredLinkKeyRP]
	ChangeLinkKey                     = Command[cmd.ChangeConnectionLinkKey, cmd.ChangeConnectionLinkKeyCompleteEP]
	Authenticate                      = Command[cmd.AuthenticationRequested, cmd.AuthenticationCompleteEP]
	EncryptLE                         = Command[cmd.LEStartEncryption, cmd.StatusRP]
	RemoteName                        = Command[cmd.RemoteNameRequest, cmd.RemoteNameRequestCompleteEP]
	ScanParametersLE                  = Command[cmd.LESetScanParameters, cmd.StatusRP]
	ScanEnableLE                      = Command[cmd.LESetScanEnable, cmd.StatusRP]
	ClearWhiteList                    = Command[cmd.LEClearWhiteList, cmd.StatusRP]
	ReadWhiteListSize                 = Command[cmd.LEReadWhiteListSize, cmd.LEReadWhiteListSizeRP]
	AddDeviceToWhiteList              = Command[cmd.LEAddDeviceToWhiteList, cmd.StatusRP]
	RemoveDeviceFromWhiteList         = Command[cmd.LERemoveDeviceFromWhiteList, cmd.StatusRP]
	RemoteFeaturesLE                  = Command[cmd.LEReadRemoteUsedFeatures, cmd.LEReadRemoteUsedFeaturesCompleteEP]
	AdvertisingParametersLE           = Command[cmd.LESetAdvertisingParameters, cmd.StatusRP]
	AdvertisingEnableLE               = Command[cmd.LESetAdvertiseEnable, cmd.StatusRP]
	Inquiry                           = Command[cmd.Inquiry, cmd.StatusRP]
	InquiryCancel                     = Command[cmd.InquiryCancel, cmd.StatusRP]
	ReadLocalFeatures                 = Command[cmd.ReadLocalSupportedFeatures, cmd.ReadLocalSupportedFeaturesRP]
	WriteScanEnable                   = Command[cmd.WriteScanEnable, cmd.StatusRP]
	WriteSimplePairingMode            = Command[cmd.WriteSimplePairingMode, cmd.StatusRP]
	WriteLEHostSupported              = Command[cmd.WriteLEHostSupport, cmd.StatusRP]
	WriteSecureConnectionsHostSupport = Command[cmd.WriteSecureConnectionsHostSupport, cmd.StatusRP]
	ReadBDADDR                        = Command[cmd.ReadBDADDR, cmd.ReadBDADDRRP]
	IOCapabilityReply                 = Command[cmd.IOCapabilityRequestReply, cmd.StatusRP]
	UserConfirmationReply             = Command[cmd.UserConfirmationRequestReply, cmd.StatusRP]
	LinkKeyNegativeReply              = Command[cmd.LinkKeyRequestNegativeReply, cmd.StatusRP]
)

// NewConnect returns a command that creates an ACL connection to a BR/EDR device.
func NewConnect() *Connect {
	return NewCommand[cmd.CreateConnection, cmd.ConnectionCompleteEP](evt.ConnectionCompleteCode)
}

// NewConnectLE returns a command that creates a connection to an LE device.
func NewConnectLE() *ConnectLE {
	return NewCommand[cmd.LECreateConnection, cmd.LEConnectionCompleteEP](evt.LEConnectionCompleteSubCode)
}

// NewDisconnect returns a command that terminates a connection.
func NewDisconnect() *Disconnect {
	return NewCommand[cmd.Disconnect, cmd.DisconnectionCompleteEP](evt.DisconnectionCompleteCode)
}

// NewReadLinkKey returns a command that reads link keys stored in the controller.
func NewReadLinkKey() *ReadLinkKey {
	return NewCommand[cmd.ReadStoredLinkKey, cmd.ReadStoredLinkKeyRP](evt.CommandCompleteCode)
}

// NewWriteLinkKey returns a command that stores one link key in the controller.
func NewWriteLinkKey() *WriteLinkKey {
	return NewCommand[cmd.WriteStoredLinkKey, cmd.WriteStoredLinkKeyRP](evt.CommandCompleteCode)
}

// NewDeleteLinkKey returns a command that drops link keys stored in the controller.
func NewDeleteLinkKey() *DeleteLinkKey {
	return NewCommand[cmd.DeleteStoredLinkKey, cmd.DeleteStoredLinkKeyRP](evt.CommandCompleteCode)
}

// NewChangeLinkKey returns a command that renews the link key of a connection.
func NewChangeLinkKey() *ChangeLinkKey {
	return NewCommand[cmd.ChangeConnectionLinkKey, cmd.ChangeConnectionLinkKeyCompleteEP](evt.ChangeConnectionLinkKeyCompleteCode)
}

// NewAuthenticate returns a command that authenticates a connection, pairing if needed.
func NewAuthenticate() *Authenticate {
	return NewCommand[cmd.AuthenticationRequested, cmd.AuthenticationCompleteEP](evt.AuthenticationCompleteCode)
}

// NewEncryptLE returns a command that starts encryption on an LE connection.
func NewEncryptLE() *EncryptLE {
	return NewCommand[cmd.LEStartEncryption, cmd.StatusRP](evt.CommandStatusCode)
}

// NewRemoteName returns a command that reads the user friendly name of a BR/EDR device.
func NewRemoteName() *RemoteName {
	return NewCommand[cmd.RemoteNameRequest, cmd.RemoteNameRequestCompleteEP](evt.RemoteNameRequestCompleteCode)
}

func NewScanParametersLE() *ScanParametersLE {
	return NewCommand[cmd.LESetScanParameters, cmd.StatusRP](evt.CommandCompleteCode)
}

func NewScanEnableLE() *ScanEnableLE {
	return NewCommand[cmd.LESetScanEnable, cmd.StatusRP](evt.CommandCompleteCode)
}

func NewClearWhiteList() *ClearWhiteList {
	return NewCommand[cmd.LEClearWhiteList, cmd.StatusRP](evt.CommandCompleteCode)
}

func NewReadWhiteListSize() *ReadWhiteListSize {
	return NewCommand[cmd.LEReadWhiteListSize, cmd.LEReadWhiteListSizeRP](evt.CommandCompleteCode)
}

func NewAddDeviceToWhiteList() *AddDeviceToWhiteList {
	return NewCommand[cmd.LEAddDeviceToWhiteList, cmd.StatusRP](evt.CommandCompleteCode)
}

func NewRemoveDeviceFromWhiteList() *RemoveDeviceFromWhiteList {
	return NewCommand[cmd.LERemoveDeviceFromWhiteList, cmd.StatusRP](evt.CommandCompleteCode)
}

// NewRemoteFeaturesLE returns a command that reads the LE features of a connected device.
func NewRemoteFeaturesLE() *RemoteFeaturesLE {
	return NewCommand[cmd.LEReadRemoteUsedFeatures, cmd.LEReadRemoteUsedFeaturesCompleteEP](evt.LEReadRemoteUsedFeaturesCompleteSubCode)
}

func NewAdvertisingParametersLE() *AdvertisingParametersLE {
	return NewCommand[cmd.LESetAdvertisingParameters, cmd.StatusRP](evt.CommandCompleteCode)
}

func NewAdvertisingEnableLE() *AdvertisingEnableLE {
	return NewCommand[cmd.LESetAdvertiseEnable, cmd.StatusRP](evt.CommandCompleteCode)
}

// NewInquiry returns a command that starts a classic inquiry; results arrive as events.
func NewInquiry() *Inquiry {
	return NewCommand[cmd.Inquiry, cmd.StatusRP](evt.CommandStatusCode)
}

func NewInquiryCancel() *InquiryCancel {
	return NewCommand[cmd.InquiryCancel, cmd.StatusRP](evt.CommandCompleteCode)
}

// NewReadLocalFeatures returns a command that reads the local LMP feature bitmap.
func NewReadLocalFeatures() *ReadLocalFeatures {
	return NewCommand[cmd.ReadLocalSupportedFeatures, cmd.ReadLocalSupportedFeaturesRP](evt.CommandCompleteCode)
}

func NewWriteScanEnable() *WriteScanEnable {
	return NewCommand[cmd.WriteScanEnable, cmd.StatusRP](evt.CommandCompleteCode)
}

func NewWriteSimplePairingMode() *WriteSimplePairingMode {
	return NewCommand[cmd.WriteSimplePairingMode, cmd.StatusRP](evt.CommandCompleteCode)
}

func NewWriteLEHostSupported() *WriteLEHostSupported {
	return NewCommand[cmd.WriteLEHostSupport, cmd.StatusRP](evt.CommandCompleteCode)
}

func NewWriteSecureConnectionsHostSupport() *WriteSecureConnectionsHostSupport {
	return NewCommand[cmd.WriteSecureConnectionsHostSupport, cmd.StatusRP](evt.CommandCompleteCode)
}

func NewReadBDADDR() *ReadBDADDR {
	return NewCommand[cmd.ReadBDADDR, cmd.ReadBDADDRRP](evt.CommandCompleteCode)
}

// NewIOCapabilityReply returns a command that answers an IO Capability Request.
func NewIOCapabilityReply() *IOCapabilityReply {
	return NewCommand[cmd.IOCapabilityRequestReply, cmd.StatusRP](evt.CommandCompleteCode)
}

// NewUserConfirmationReply returns a command that accepts a numeric comparison.
func NewUserConfirmationReply() *UserConfirmationReply {
	return NewCommand[cmd.UserConfirmationRequestReply, cmd.StatusRP](evt.CommandCompleteCode)
}

// NewLinkKeyNegativeReply returns a command that tells the controller no link key is stored.
func NewLinkKeyNegativeReply() *LinkKeyNegativeReply {
	return NewCommand[cmd.LinkKeyRequestNegativeReply, cmd.StatusRP](evt.CommandCompleteCode)
}
