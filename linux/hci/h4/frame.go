package h4

import (
	"time"
)

const (
	commandPacket = 0x01
	aclPacket     = 0x02
	scoPacket     = 0x03
	eventPacket   = 0x04

	frameTimeout = 500 * time.Millisecond
)

// headerLength returns the header size of packet type t, 0 for unknown types.
func headerLength(t byte) int {
	switch t {
	case eventPacket:
		return 3
	case commandPacket, scoPacket:
		return 4
	case aclPacket:
		return 5
	default:
		return 0
	}
}

func frameLength(b []byte) (int, bool) {
	hl := headerLength(b[0])
	if len(b) < hl {
		return 0, false
	}
	switch b[0] {
	case aclPacket:
		return hl + (int(b[3]) | int(b[4])<<8), true
	default:
		return hl + int(b[hl-1]), true
	}
}

// assembler rebuilds H4 frames from arbitrary chunks of the byte stream.
// A partial frame older than frameTimeout is dropped.
type assembler struct {
	b        []byte
	deadline time.Time
	now      func() time.Time
	dropped  int
}

func newAssembler() *assembler {
	return &assembler{now: time.Now}
}

// Feed appends chunk and returns every frame completed by it.
func (a *assembler) Feed(chunk []byte) [][]byte {
	if len(a.b) > 0 && a.now().After(a.deadline) {
		a.dropped += len(a.b)
		a.b = a.b[:0]
	}
	fresh := len(a.b) == 0
	a.b = append(a.b, chunk...)

	var frames [][]byte
	for {
		a.sync()
		if len(a.b) == 0 {
			return frames
		}

		n, ok := frameLength(a.b)
		if !ok || len(a.b) < n {
			// the clock starts with the first byte of a frame
			if fresh || len(frames) > 0 {
				a.deadline = a.now().Add(frameTimeout)
			}
			return frames
		}

		f := make([]byte, n)
		copy(f, a.b)
		frames = append(frames, f)
		a.b = append(a.b[:0], a.b[n:]...)
	}
}

// sync drops bytes up to the next packet type indicator.
func (a *assembler) sync() {
	i := 0
	for i < len(a.b) && headerLength(a.b[i]) == 0 {
		i++
	}
	if i > 0 {
		a.dropped += i
		a.b = append(a.b[:0], a.b[i:]...)
	}
}
