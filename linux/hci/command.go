package hci

import (
	"sync"

	"github.com/rigado/bluehci/linux/hci/cmd"
	"github.com/rigado/bluehci/linux/hci/evt"
)

// Completion is the state of a command exchange.
type Completion uint8

const (
	Pending Completion = iota
	Success
	Failure
)

func (c Completion) String() string {
	switch c {
	case Pending:
		return "pending"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "invalid"
	}
}

// Command correlates one outbound HCI command with the event answering it.
//
// P is the parameter layout and supplies the opcode. R is the layout the
// answer is decoded into; its first byte is a status wherever the controller
// sends one. response names the awaited event: evt.CommandStatusCode,
// evt.CommandCompleteCode, an LE subevent code for LE commands, or the code
// of any other event, e.g. evt.ConnectionCompleteCode.
type Command[P cmd.Params, R any] struct {
	opcode   uint16
	response uint8
	params   P

	mu     sync.Mutex
	buf    []byte
	offset int
	resp   []byte
	status uint8
	result Completion
	done   chan struct{}
}

// NewCommand returns a command awaiting the given response event. Nothing is
// serialized until Reload.
func NewCommand[P cmd.Params, R any](response uint8) *Command[P, R] {
	var p P
	var r R

	c := &Command[P, R]{
		opcode:   p.OpCode(),
		response: response,
		resp:     make([]byte, cmd.Len(r)),
		done:     make(chan struct{}),
	}
	c.buf = []byte{PktTypeCommand, byte(c.opcode), byte(c.opcode >> 8), byte(cmd.Len(p))}
	c.offset = len(c.buf)
	return c
}

// OpCode returns the command opcode.
func (c *Command[P, R]) OpCode() uint16 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.opcode
}

// Params gives access to the outbound parameters. Changes take effect on
// the next Reload.
func (c *Command[P, R]) Params() *P {
	return &c.params
}

// Clear zeroes the parameters. The packet header is untouched.
func (c *Command[P, R]) Clear() {
	var p P
	c.params = p
}

// Reload encodes the parameters, rewinds the serialization cursor and
// re-arms the completion. It must not be called while a previous submission
// is still outstanding.
func (c *Command[P, R]) Reload() error {
	b, err := cmd.Marshal(c.params)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// opcodes of vendor commands are only known from the parameters
	c.opcode = c.params.OpCode()
	c.buf = append(c.buf[:cmdHeaderSize], b...)
	c.buf[1] = byte(c.opcode)
	c.buf[2] = byte(c.opcode >> 8)
	c.buf[3] = byte(len(b))
	c.offset = 0

	for i := range c.resp {
		c.resp[i] = 0
	}
	c.status = 0
	c.result = Pending
	c.done = make(chan struct{})
	return nil
}

// Serialize copies the next chunk of the packet into b and returns its
// length, 0 once the packet has been drained.
func (c *Command[P, R]) Serialize(b []byte) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := copy(b, c.buf[c.offset:])
	c.offset += n
	return n
}

// Deserialize offers one raw inbound frame, packet type included. It returns
// len(frame) when the frame answers this command and 0 otherwise, leaving
// the completion untouched.
func (c *Command[P, R]) Deserialize(frame []byte) int {
	e, err := evt.Parse(frame)
	if err != nil {
		return 0
	}
	p := e.Params()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.result != Pending {
		return 0
	}

	switch e.Code() {
	case evt.CommandStatusCode:
		cs := evt.CommandStatus(p)
		if !cs.Valid() || cs.CommandOpcode() != c.opcode {
			return 0
		}
		st := cs.Status()
		if c.response != evt.CommandStatusCode && st == 0 {
			// accepted, the awaited event follows
			return 0
		}
		if st != 0 {
			c.complete(st, Failure)
		} else {
			c.complete(st, Success)
		}

	case evt.CommandCompleteCode:
		cc := evt.CommandComplete(p)
		if op, err := cc.CommandOpcodeWErr(); err != nil || op != c.opcode {
			return 0
		}
		if len(p) <= evt.CommandCompleteSize {
			c.complete(0, Failure)
			break
		}
		rp := cc.ReturnParameters()
		copy(c.resp, rp)
		c.complete(rp[0], Success)

	case evt.LEMetaCode:
		if cmd.OGF(c.opcode) != cmd.OGFLECtl {
			return 0
		}
		m := evt.LEMeta(p)
		if sub, err := m.SubeventCodeWErr(); err != nil || sub != c.response {
			return 0
		}
		data, _ := m.DataWErr()
		copy(c.resp, data)
		c.complete(firstByte(data), Success)

	default:
		// LE commands are only ever answered through the meta event
		if e.Code() != c.response || cmd.OGF(c.opcode) == cmd.OGFLECtl {
			return 0
		}
		copy(c.resp, p)
		c.complete(firstByte(p), Success)
	}

	return len(frame)
}

func (c *Command[P, R]) complete(status uint8, r Completion) {
	c.status = status
	c.result = r
	close(c.done)
}

// IsCompleted reports whether the completion has left Pending.
func (c *Command[P, R]) IsCompleted() bool {
	return c.Result() != Pending
}

// Result returns the completion.
func (c *Command[P, R]) Result() Completion {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

// Status returns the status byte of the answer.
func (c *Command[P, R]) Status() uint8 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Err maps the completion to an error. It is only meaningful once the
// command has completed.
func (c *Command[P, R]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.status != 0:
		return ErrCommand(c.status)
	case c.result == Failure:
		return ErrGeneral
	default:
		return nil
	}
}

// Done is closed when the command completes.
func (c *Command[P, R]) Done() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done
}

// Response decodes the answer. Bytes the controller did not send read as zero.
func (c *Command[P, R]) Response() R {
	c.mu.Lock()
	defer c.mu.Unlock()

	var r R
	if len(c.resp) == 0 {
		return r
	}
	if err := cmd.Unmarshal(c.resp, &r); err != nil {
		var zero R
		return zero
	}
	return r
}

func firstByte(b []byte) uint8 {
	if len(b) == 0 {
		return 0
	}
	return b[0]
}
