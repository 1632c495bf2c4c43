package hci

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrGeneral      = errors.New("hci: command failed")
	ErrTimedOut     = errors.New("hci: timed out")
	ErrInProgress   = errors.New("hci: another action is in progress")
	ErrIllegalState = errors.New("hci: illegal state")
	ErrBadRequest   = errors.New("hci: bad request")
	ErrAborted      = errors.New("hci: aborted")
	ErrClosed       = errors.New("hci: closed")
)

// ErrCommand is an HCI status code [Vol 2, Part D, 1.3].
type ErrCommand byte

// HCI Command Errors [Vol 2, Part D, 1.3 ].
const (
	ErrUnknownCommand       ErrCommand = 0x01 // Unknown HCI Command
	ErrConnID               ErrCommand = 0x02 // Unknown Connection Identifier
	ErrHardware             ErrCommand = 0x03 // Hardware Failure
	ErrPageTimeout          ErrCommand = 0x04 // Page Timeout
	ErrAuth                 ErrCommand = 0x05 // Authentication Failure
	ErrPINMissing           ErrCommand = 0x06 // PIN or Key Missing
	ErrMemoryCapacity       ErrCommand = 0x07 // Memory Capacity Exceeded
	ErrConnTimeout          ErrCommand = 0x08 // Connection Timeout
	ErrConnLimit            ErrCommand = 0x09 // Connection Limit Exceeded
	ErrSCOConnLimit         ErrCommand = 0x0A // Synchronous Connection Limit To A Device Exceeded
	ErrACLConnExists        ErrCommand = 0x0B // ACL Connection Already Exists
	ErrDisallowed           ErrCommand = 0x0C // Command Disallowed
	ErrLimitedResource      ErrCommand = 0x0D // Connection Rejected due to Limited Resources
	ErrSecurity             ErrCommand = 0x0E // Connection Rejected Due To Security Reasons
	ErrBDADDR               ErrCommand = 0x0F // Connection Rejected due to Unacceptable BD_ADDR
	ErrConnAcceptTimeout    ErrCommand = 0x10 // Connection Accept Timeout Exceeded
	ErrUnsupportedParams    ErrCommand = 0x11 // Unsupported Feature or Parameter Value
	ErrInvalidParams        ErrCommand = 0x12 // Invalid HCI Command Parameters
	ErrRemoteUser           ErrCommand = 0x13 // Remote User Terminated Connection
	ErrRemoteLowResources   ErrCommand = 0x14 // Remote Device Terminated Connection due to Low Resources
	ErrRemotePowerOff       ErrCommand = 0x15 // Remote Device Terminated Connection due to Power Off
	ErrLocalHost            ErrCommand = 0x16 // Connection Terminated By Local Host
	ErrRepeatedAttempts     ErrCommand = 0x17 // Repeated Attempts
	ErrPairingNotAllowed    ErrCommand = 0x18 // Pairing Not Allowed
	ErrUnknownLMP           ErrCommand = 0x19 // Unknown LMP PDU
	ErrUnsupportedRemote    ErrCommand = 0x1A // Unsupported Remote Feature / Unsupported LMP Feature
	ErrSCOOffset            ErrCommand = 0x1B // SCO Offset Rejected
	ErrSCOInterval          ErrCommand = 0x1C // SCO Interval Rejected
	ErrSCOAirMode           ErrCommand = 0x1D // SCO Air Mode Rejected
	ErrInvalidLLParams      ErrCommand = 0x1E // Invalid LMP Parameters / Invalid LL Parameters
	ErrUnspecified          ErrCommand = 0x1F // Unspecified Error
	ErrUnsupportedLLParams  ErrCommand = 0x20 // Unsupported LMP Parameter Value / Unsupported LL Parameter Value
	ErrRoleChange           ErrCommand = 0x21 // Role Change Not Allowed
	ErrLLResponseTimeout    ErrCommand = 0x22 // LMP Response Timeout / LL Response Timeout
	ErrLMPTransColl         ErrCommand = 0x23 // LMP Error Transaction Collision
	ErrLMPPDU               ErrCommand = 0x24 // LMP PDU Not Allowed
	ErrEncryptionMode       ErrCommand = 0x25 // Encryption Mode Not Acceptable
	ErrLinkKey              ErrCommand = 0x26 // Link Key cannot be Changed
	ErrQoS                  ErrCommand = 0x27 // Requested QoS Not Supported
	ErrInstantPassed        ErrCommand = 0x28 // Instant Passed
	ErrUnitKeyPairing       ErrCommand = 0x29 // Pairing With Unit Key Not Supported
	ErrTransColl            ErrCommand = 0x2A // Different Transaction Collision
	ErrQoSParams            ErrCommand = 0x2C // QoS Unacceptable Parameter
	ErrQoSRejected          ErrCommand = 0x2D // QoS Rejected
	ErrChannelClass         ErrCommand = 0x2E // Channel Classification Not Supported
	ErrInsufficientSecurity ErrCommand = 0x2F // Insufficient Security
	ErrParamsRange          ErrCommand = 0x30 // Parameter Out Of Mandatory Range
	ErrRoleSwitchPending    ErrCommand = 0x32 // Role Switch Pending
	ErrReservedSlot         ErrCommand = 0x34 // Reserved Slot Violation
	ErrRoleSwitch           ErrCommand = 0x35 // Role Switch Failed
	ErrEIRSize              ErrCommand = 0x36 // Extended Inquiry Response Too Large
	ErrSimplePairing        ErrCommand = 0x37 // Secure Simple Pairing Not Supported By Host
	ErrHostBusyPairing      ErrCommand = 0x38 // Host Busy - Pairing
	ErrNoChannel            ErrCommand = 0x39 // Connection Rejected due to No Suitable Channel Found
	ErrControllerBusy       ErrCommand = 0x3A // Controller Busy
	ErrConnParams           ErrCommand = 0x3B // Unacceptable Connection Parameters
	ErrAdvTimeout           ErrCommand = 0x3C // Advertising Timeout
	ErrMIC                  ErrCommand = 0x3D // Connection Terminated due to MIC Failure
	ErrConnEstablish        ErrCommand = 0x3E // Connection Failed to be Established
	ErrMACConn              ErrCommand = 0x3F // MAC Connection Failed
	ErrCoarseClock          ErrCommand = 0x40 // Coarse Clock Adjustment Rejected but Will Try to Adjust Using Clock Dragging
)

var errCmd = map[ErrCommand]string{
	ErrUnknownCommand:       "Unknown HCI Command",
	ErrConnID:               "Unknown Connection Identifier",
	ErrHardware:             "Hardware Failure",
	ErrPageTimeout:          "Page Timeout",
	ErrAuth:                 "Authentication Failure",
	ErrPINMissing:           "PIN or Key Missing",
	ErrMemoryCapacity:       "Memory Capacity Exceeded",
	ErrConnTimeout:          "Connection Timeout",
	ErrConnLimit:            "Connection Limit Exceeded",
	ErrSCOConnLimit:         "Synchronous Connection Limit To A Device Exceeded",
	ErrACLConnExists:        "ACL Connection Already Exists",
	ErrDisallowed:           "Command Disallowed",
	ErrLimitedResource:      "Connection Rejected due to Limited Resources",
	ErrSecurity:             "Connection Rejected Due To Security Reasons",
	ErrBDADDR:               "Connection Rejected due to Unacceptable BD_ADDR",
	ErrConnAcceptTimeout:    "Connection Accept Timeout Exceeded",
	ErrUnsupportedParams:    "Unsupported Feature or Parameter Value",
	ErrInvalidParams:        "Invalid HCI Command Parameters",
	ErrRemoteUser:           "Remote User Terminated Connection",
	ErrRemoteLowResources:   "Remote Device Terminated Connection due to Low Resources",
	ErrRemotePowerOff:       "Remote Device Terminated Connection due to Power Off",
	ErrLocalHost:            "Connection Terminated By Local Host",
	ErrRepeatedAttempts:     "Repeated Attempts",
	ErrPairingNotAllowed:    "Pairing Not Allowed",
	ErrUnknownLMP:           "Unknown LMP PDU",
	ErrUnsupportedRemote:    "Unsupported Remote Feature / Unsupported LMP Feature",
	ErrSCOOffset:            "SCO Offset Rejected",
	ErrSCOInterval:          "SCO Interval Rejected",
	ErrSCOAirMode:           "SCO Air Mode Rejected",
	ErrInvalidLLParams:      "Invalid LMP Parameters / Invalid LL Parameters",
	ErrUnspecified:          "Unspecified Error",
	ErrUnsupportedLLParams:  "Unsupported LMP Parameter Value / Unsupported LL Parameter Value",
	ErrRoleChange:           "Role Change Not Allowed",
	ErrLLResponseTimeout:    "LMP Response Timeout / LL Response Timeout",
	ErrLMPTransColl:         "LMP Error Transaction Collision",
	ErrLMPPDU:               "LMP PDU Not Allowed",
	ErrEncryptionMode:       "Encryption Mode Not Acceptable",
	ErrLinkKey:              "Link Key cannot be Changed",
	ErrQoS:                  "Requested QoS Not Supported",
	ErrInstantPassed:        "Instant Passed",
	ErrUnitKeyPairing:       "Pairing With Unit Key Not Supported",
	ErrTransColl:            "Different Transaction Collision",
	ErrQoSParams:            "QoS Unacceptable Parameter",
	ErrQoSRejected:          "QoS Rejected",
	ErrChannelClass:         "Channel Classification Not Supported",
	ErrInsufficientSecurity: "Insufficient Security",
	ErrParamsRange:          "Parameter Out Of Mandatory Range",
	ErrRoleSwitchPending:    "Role Switch Pending",
	ErrReservedSlot:         "Reserved Slot Violation",
	ErrRoleSwitch:           "Role Switch Failed",
	ErrEIRSize:              "Extended Inquiry Response Too Large",
	ErrSimplePairing:        "Secure Simple Pairing Not Supported By Host",
	ErrHostBusyPairing:      "Host Busy - Pairing",
	ErrNoChannel:            "Connection Rejected due to No Suitable Channel Found",
	ErrControllerBusy:       "Controller Busy",
	ErrConnParams:           "Unacceptable Connection Parameters",
	ErrAdvTimeout:           "Advertising Timeout",
	ErrMIC:                  "Connection Terminated due to MIC Failure",
	ErrConnEstablish:        "Connection Failed to be Established",
	ErrMACConn:              "MAC Connection Failed",
	ErrCoarseClock:          "Coarse Clock Adjustment Rejected but Will Try to Adjust Using Clock Dragging",
}

func (e ErrCommand) Error() string {
	if s, ok := errCmd[e]; ok {
		return fmt.Sprintf("hci: %s [0x%02X]", s, uint8(e))
	}
	return fmt.Sprintf("hci: reserved status code [0x%02X]", uint8(e))
}
