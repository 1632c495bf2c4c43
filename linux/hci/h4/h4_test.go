package h4

import (
	"io"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/jacobsa/go-serial/serial"
	"github.com/stretchr/testify/require"

	"github.com/rigado/bluehci/linux/hci/socket"
)

var (
	ccFrame  = []byte{eventPacket, 0x0E, 0x04, 0x01, 0x03, 0x0C, 0x00}
	aclFrame = []byte{aclPacket, 0x40, 0x00, 0x02, 0x00, 0xAA, 0xBB}
)

func TestAssemblerSplit(t *testing.T) {
	a := newAssembler()
	require.Empty(t, a.Feed(ccFrame[:2]))
	require.Empty(t, a.Feed(ccFrame[2:5]))
	require.Equal(t, [][]byte{ccFrame}, a.Feed(ccFrame[5:]))
	require.Zero(t, a.dropped)
}

func TestAssemblerMany(t *testing.T) {
	a := newAssembler()
	var stream []byte
	stream = append(stream, ccFrame...)
	stream = append(stream, aclFrame...)
	stream = append(stream, ccFrame[:3]...)

	require.Equal(t, [][]byte{ccFrame, aclFrame}, a.Feed(stream))
	require.Equal(t, [][]byte{ccFrame}, a.Feed(ccFrame[3:]))
}

func TestAssemblerResync(t *testing.T) {
	a := newAssembler()
	stream := append([]byte{0x00, 0xFF, 0x42}, ccFrame...)
	require.Equal(t, [][]byte{ccFrame}, a.Feed(stream))
	require.Equal(t, 3, a.dropped)
}

func TestAssemblerTimeout(t *testing.T) {
	now := time.Unix(100, 0)
	a := newAssembler()
	a.now = func() time.Time { return now }

	require.Empty(t, a.Feed(ccFrame[:4]))
	now = now.Add(frameTimeout + time.Millisecond)

	// the stale half frame is dropped
	require.Equal(t, [][]byte{ccFrame}, a.Feed(ccFrame))
	require.Equal(t, 4, a.dropped)
}

func eventFilter(codes ...uint8) socket.Filter {
	var f socket.Filter
	f.SetPacketType(eventPacket)
	for _, c := range codes {
		f.SetEvent(c)
	}
	return f
}

func newPipe(t *testing.T) (*Transport, net.Conn) {
	client, server := net.Pipe()
	tr := New(client)
	tr.readTimeout = 20 * time.Millisecond
	t.Cleanup(func() {
		tr.Close()
		server.Close()
	})
	return tr, server
}

func TestTransportRead(t *testing.T) {
	tr, server := newPipe(t)
	require.NoError(t, tr.SetFilter(eventFilter(0x0E)))
	require.Equal(t, eventFilter(0x0E), tr.Filter())

	go func() {
		// acl and other events are filtered
		server.Write(aclFrame)
		server.Write([]byte{eventPacket, 0x0F, 0x00})
		server.Write(ccFrame[:3])
		server.Write(ccFrame[3:])
	}()

	b := make([]byte, 64)
	var n int
	var err error
	require.Eventually(t, func() bool {
		n, err = tr.Read(b)
		return n > 0 || err != nil
	}, time.Second, time.Millisecond)
	require.NoError(t, err)
	require.Equal(t, ccFrame, b[:n])

	// nothing else
	n, err = tr.Read(b)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestTransportShortBuffer(t *testing.T) {
	tr, server := newPipe(t)
	tr.SetFilter(eventFilter(0x0E))
	go server.Write(ccFrame)

	require.Eventually(t, func() bool {
		_, err := tr.Read(make([]byte, 2))
		return err != nil
	}, time.Second, time.Millisecond)
}

func TestTransportWrite(t *testing.T) {
	tr, server := newPipe(t)

	got := make(chan []byte, 1)
	go func() {
		b := make([]byte, 16)
		n, _ := server.Read(b)
		got <- b[:n]
	}()

	reset := []byte{commandPacket, 0x03, 0x0C, 0x00}
	n, err := tr.Write(reset)
	require.NoError(t, err)
	require.Equal(t, len(reset), n)
	require.Equal(t, reset, <-got)
}

func TestTransportClose(t *testing.T) {
	tr, _ := newPipe(t)
	require.NoError(t, tr.Close())
	require.NoError(t, tr.Close())

	_, err := tr.Read(make([]byte, 16))
	require.Equal(t, io.EOF, err)
	_, err = tr.Write([]byte{commandPacket})
	require.Equal(t, io.EOF, err)
}

func TestTransportRemoteClose(t *testing.T) {
	tr, server := newPipe(t)
	server.Close()

	require.Eventually(t, func() bool {
		_, err := tr.Read(make([]byte, 16))
		return err != nil
	}, time.Second, time.Millisecond)
}

func TestDial(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	go func() {
		c, err := l.Accept()
		if err != nil {
			return
		}
		defer c.Close()
		b := make([]byte, 16)
		if _, err := c.Read(b); err == nil {
			c.Write(ccFrame)
		}
		time.Sleep(100 * time.Millisecond)
	}()

	tr, err := Dial(l.Addr().String(), time.Second)
	require.NoError(t, err)
	defer tr.Close()
	tr.SetFilter(eventFilter(0x0E))

	_, err = tr.Write([]byte{commandPacket, 0x03, 0x0C, 0x00})
	require.NoError(t, err)

	b := make([]byte, 16)
	n, err := tr.Read(b)
	require.NoError(t, err)
	require.Equal(t, ccFrame, b[:n])
}

func TestDialRefused(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	l.Close()

	_, err = Dial(addr, 100*time.Millisecond)
	require.Error(t, err)
}

func TestSerialOptions(t *testing.T) {
	o := SerialOptions("/dev/ttyS1", 115200)
	require.Equal(t, "/dev/ttyS1", o.PortName)
	require.Equal(t, uint(115200), o.BaudRate)
	require.Equal(t, uint(8), o.DataBits)
	require.Equal(t, uint(1), o.StopBits)
	require.Equal(t, serial.PARITY_NONE, o.ParityMode)
	require.True(t, o.RTSCTSFlowControl)
	// a zero minimum read needs an inter-character timeout to return at all
	require.Zero(t, o.MinimumReadSize)
	require.Equal(t, uint(100), o.InterCharacterTimeout)
}

func TestOpenSerialMissing(t *testing.T) {
	_, err := OpenSerial(filepath.Join(t.TempDir(), "ttyMISSING"), 115200)
	require.Error(t, err)
}

type idleReader struct {
	reads [][]byte
}

func (r *idleReader) Read(p []byte) (int, error) {
	if len(r.reads) == 0 {
		return 0, io.ErrClosedPipe
	}
	b := r.reads[0]
	r.reads = r.reads[1:]
	if len(b) == 0 {
		return 0, io.EOF
	}
	return copy(p, b), nil
}

func (r *idleReader) Write(p []byte) (int, error) { return len(p), nil }
func (r *idleReader) Close() error                { return nil }

func TestSerialPortIdleRead(t *testing.T) {
	sp := serialPort{&idleReader{reads: [][]byte{nil, ccFrame}}}
	b := make([]byte, 16)

	n, err := sp.Read(b)
	require.NoError(t, err)
	require.Zero(t, n)

	n, err = sp.Read(b)
	require.NoError(t, err)
	require.Equal(t, ccFrame, b[:n])

	_, err = sp.Read(b)
	require.Equal(t, io.ErrClosedPipe, err)
}
