package hci

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/rigado/bluehci/linux/hci/cmd"
	"github.com/rigado/bluehci/linux/hci/evt"
)

func eventFrame(code uint8, params ...byte) []byte {
	return append([]byte{PktTypeEvent, code, byte(len(params))}, params...)
}

func ccFrame(op uint16, rp ...byte) []byte {
	return eventFrame(evt.CommandCompleteCode, append([]byte{1, byte(op), byte(op >> 8)}, rp...)...)
}

func csFrame(op uint16, status uint8) []byte {
	return eventFrame(evt.CommandStatusCode, status, 1, byte(op), byte(op>>8))
}

func leMetaFrame(sub uint8, data ...byte) []byte {
	return eventFrame(evt.LEMetaCode, append([]byte{sub}, data...)...)
}

func TestCommandSerialize(t *testing.T) {
	c := NewDisconnect()
	*c.Params() = cmd.Disconnect{ConnectionHandle: 0x0102, Reason: 0x13}

	// nothing to send before the first reload
	require.Equal(t, 0, c.Serialize(make([]byte, 16)))

	require.NoError(t, c.Reload())
	want := []byte{0x01, 0x06, 0x04, 0x03, 0x02, 0x01, 0x13}

	var got []byte
	chunk := make([]byte, 2)
	for {
		n := c.Serialize(chunk)
		if n == 0 {
			break
		}
		got = append(got, chunk[:n]...)
	}
	require.Equal(t, want, got)
	require.Equal(t, 0, c.Serialize(chunk))

	require.NoError(t, c.Reload())
	b := make([]byte, 64)
	n := c.Serialize(b)
	require.Equal(t, want, b[:n])
}

func TestCommandClear(t *testing.T) {
	c := NewDisconnect()
	*c.Params() = cmd.Disconnect{ConnectionHandle: 0x0102, Reason: 0x13}
	c.Clear()
	require.NoError(t, c.Reload())

	b := make([]byte, 64)
	n := c.Serialize(b)
	require.Equal(t, []byte{0x01, 0x06, 0x04, 0x03, 0x00, 0x00, 0x00}, b[:n])
}

func TestCommandCompletePath(t *testing.T) {
	c := NewReadBDADDR()
	require.NoError(t, c.Reload())
	op := cmd.ReadBDADDR{}.OpCode()

	// other opcode
	other := ccFrame(cmd.Reset{}.OpCode(), 0x00)
	require.Equal(t, 0, c.Deserialize(other))
	require.Equal(t, Pending, c.Result())
	require.False(t, c.IsCompleted())

	f := ccFrame(op, 0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66)
	require.Equal(t, len(f), c.Deserialize(f))
	require.True(t, c.IsCompleted())
	require.Equal(t, Success, c.Result())
	require.NoError(t, c.Err())
	require.Equal(t, [6]byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66}, c.Response().BDADDR)

	select {
	case <-c.Done():
	default:
		t.Fatal("done not closed")
	}

	// completes once
	require.Equal(t, 0, c.Deserialize(f))
}

func TestCommandCompleteTruncatedAndPadded(t *testing.T) {
	c := NewReadBDADDR()
	require.NoError(t, c.Reload())
	op := cmd.ReadBDADDR{}.OpCode()

	// short answer is zero padded
	f := ccFrame(op, 0x00, 0xAA, 0xBB)
	require.Equal(t, len(f), c.Deserialize(f))
	require.Equal(t, Success, c.Result())
	require.Equal(t, [6]byte{0xAA, 0xBB}, c.Response().BDADDR)

	// long answer is truncated
	require.NoError(t, c.Reload())
	f = ccFrame(op, 0x00, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	require.Equal(t, len(f), c.Deserialize(f))
	require.Equal(t, [6]byte{1, 2, 3, 4, 5, 6}, c.Response().BDADDR)
}

func TestCommandCompleteWithoutParameters(t *testing.T) {
	c := NewScanEnableLE()
	require.NoError(t, c.Reload())

	f := ccFrame(cmd.LESetScanEnable{}.OpCode())
	require.Equal(t, len(f), c.Deserialize(f))
	require.Equal(t, Failure, c.Result())
	require.Equal(t, ErrGeneral, c.Err())
}

func TestCommandCompleteStatus(t *testing.T) {
	c := NewScanEnableLE()
	require.NoError(t, c.Reload())

	f := ccFrame(cmd.LESetScanEnable{}.OpCode(), byte(ErrDisallowed))
	require.Equal(t, len(f), c.Deserialize(f))
	require.Equal(t, Success, c.Result())
	require.Equal(t, ErrDisallowed, errors.Cause(c.Err()))
}

func TestCommandStatusPath(t *testing.T) {
	op := cmd.Inquiry{}.OpCode()

	c := NewInquiry()
	require.NoError(t, c.Reload())
	f := csFrame(op, 0)
	require.Equal(t, len(f), c.Deserialize(f))
	require.Equal(t, Success, c.Result())
	require.NoError(t, c.Err())

	for s := 1; s <= 0xFF; s++ {
		require.NoError(t, c.Reload())
		require.Equal(t, Pending, c.Result())

		f := csFrame(op, uint8(s))
		require.Equal(t, len(f), c.Deserialize(f), "status 0x%02X", s)
		require.Equal(t, Failure, c.Result(), "status 0x%02X", s)
		require.Equal(t, uint8(s), c.Status())
		require.Equal(t, ErrCommand(s), c.Err())
	}
}

func TestCommandStatusOtherOpcode(t *testing.T) {
	c := NewInquiry()
	require.NoError(t, c.Reload())
	require.Equal(t, 0, c.Deserialize(csFrame(cmd.InquiryCancel{}.OpCode(), 0)))
	require.Equal(t, Pending, c.Result())
}

func TestCommandStatusBeforeEvent(t *testing.T) {
	c := NewConnect()
	require.NoError(t, c.Reload())
	op := cmd.CreateConnection{}.OpCode()

	// accepted: the connection complete event is still to come
	require.Equal(t, 0, c.Deserialize(csFrame(op, 0)))
	require.Equal(t, Pending, c.Result())

	f := eventFrame(evt.ConnectionCompleteCode, 0x00, 0x42, 0x00, 1, 2, 3, 4, 5, 6, 0x01, 0x00)
	require.Equal(t, len(f), c.Deserialize(f))
	require.Equal(t, Success, c.Result())
	rp := c.Response()
	require.Equal(t, uint16(0x0042), rp.ConnectionHandle)
	require.Equal(t, [6]byte{1, 2, 3, 4, 5, 6}, rp.BDADDR)

	// rejected: nothing else will follow
	require.NoError(t, c.Reload())
	f = csFrame(op, byte(ErrACLConnExists))
	require.Equal(t, len(f), c.Deserialize(f))
	require.Equal(t, Failure, c.Result())
	require.Equal(t, ErrACLConnExists, c.Err())
}

func TestCommandEventStatus(t *testing.T) {
	c := NewConnect()
	require.NoError(t, c.Reload())

	f := eventFrame(evt.ConnectionCompleteCode, byte(ErrPageTimeout), 0x00, 0x00, 1, 2, 3, 4, 5, 6, 0x01, 0x00)
	require.Equal(t, len(f), c.Deserialize(f))
	require.Equal(t, Success, c.Result())
	require.Equal(t, ErrPageTimeout, c.Err())
}

func TestCommandLEMeta(t *testing.T) {
	c := NewConnectLE()
	require.NoError(t, c.Reload())

	// other subevent
	require.Equal(t, 0, c.Deserialize(leMetaFrame(evt.LEAdvertisingReportSubCode, 0x00)))
	require.Equal(t, Pending, c.Result())

	// plain event with the same code as the subevent
	require.Equal(t, 0, c.Deserialize(eventFrame(evt.LEConnectionCompleteSubCode, 0x00)))
	require.Equal(t, Pending, c.Result())

	f := leMetaFrame(evt.LEConnectionCompleteSubCode, 0x00, 0x40, 0x00, 0x00, 0x01, 1, 2, 3, 4, 5, 6)
	require.Equal(t, len(f), c.Deserialize(f))
	require.Equal(t, Success, c.Result())
	rp := c.Response()
	require.Equal(t, uint16(0x0040), rp.ConnectionHandle)
	require.Equal(t, uint8(0x01), rp.PeerAddressType)
	require.Equal(t, [6]byte{1, 2, 3, 4, 5, 6}, rp.PeerAddress)
}

func TestCommandLEMetaNonLE(t *testing.T) {
	// only LE commands are answered through the meta event
	c := NewCommand[cmd.Disconnect, cmd.StatusRP](evt.LEConnectionCompleteSubCode)
	require.NoError(t, c.Reload())
	require.Equal(t, 0, c.Deserialize(leMetaFrame(evt.LEConnectionCompleteSubCode, 0x00)))
	require.Equal(t, Pending, c.Result())
}

func TestCommandShortFrames(t *testing.T) {
	c := NewReadBDADDR()
	require.NoError(t, c.Reload())

	for _, f := range [][]byte{
		nil,
		{PktTypeEvent},
		{PktTypeEvent, evt.CommandCompleteCode},
		{PktTypeEvent, evt.CommandCompleteCode, 0x05, 0x01},
		{PktTypeCommand, 0x09, 0x10, 0x00},
		eventFrame(evt.CommandCompleteCode, 0x01),
		eventFrame(evt.CommandStatusCode, 0x00, 0x01),
	} {
		require.Equal(t, 0, c.Deserialize(f), "% X", f)
		require.Equal(t, Pending, c.Result())
	}
}

func TestCommandVendor(t *testing.T) {
	c := NewVendorCommand()
	*c.Params() = cmd.Vendor{OCF: 0x0001, Payload: []byte{0xAA, 0xBB}}
	require.NoError(t, c.Reload())
	require.Equal(t, uint16(0xFC01), c.OpCode())

	b := make([]byte, 16)
	n := c.Serialize(b)
	require.Equal(t, []byte{0x01, 0x01, 0xFC, 0x02, 0xAA, 0xBB}, b[:n])

	f := ccFrame(0xFC01, 0x00)
	require.Equal(t, len(f), c.Deserialize(f))
	require.NoError(t, c.Err())
}
