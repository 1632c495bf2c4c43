package h4

import (
	"io"

	"github.com/jacobsa/go-serial/serial"
	"github.com/pkg/errors"
)

// SerialOptions returns 8N1 options with hardware flow control for the UART
// at path. An idle read returns after the inter-character timeout.
func SerialOptions(path string, baud uint) serial.OpenOptions {
	return serial.OpenOptions{
		PortName:              path,
		BaudRate:              baud,
		DataBits:              8,
		StopBits:              1,
		ParityMode:            serial.PARITY_NONE,
		RTSCTSFlowControl:     true,
		InterCharacterTimeout: 100, // ms, rounded to deciseconds
		MinimumReadSize:       0,
	}
}

// OpenSerial opens the controller UART at path.
func OpenSerial(path string, baud uint) (*Transport, error) {
	sp, err := serial.Open(SerialOptions(path, baud))
	if err != nil {
		return nil, errors.Wrapf(err, "can't open %s", path)
	}
	return New(serialPort{sp}), nil
}

// serialPort reports an idle read as empty instead of io.EOF.
type serialPort struct {
	io.ReadWriteCloser
}

func (s serialPort) Read(p []byte) (int, error) {
	n, err := s.ReadWriteCloser.Read(p)
	if n == 0 && err == io.EOF {
		return 0, nil
	}
	return n, err
}
