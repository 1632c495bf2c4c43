//go:build linux

package socket

import (
	"fmt"
	"io"
	"sync"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

func ioR(t, nr, size uintptr) uintptr {
	return (2 << 30) | (t << 8) | nr | (size << 16)
}

func ioW(t, nr, size uintptr) uintptr {
	return (1 << 30) | (t << 8) | nr | (size << 16)
}

func ioctl(fd, op, arg uintptr) error {
	if _, _, ep := unix.Syscall(unix.SYS_IOCTL, fd, op, arg); ep != 0 {
		return ep
	}
	return nil
}

const (
	ioctlSize      = 4
	hciMaxDevices  = 16
	typHCI         = 72 // 'H'
	readTimeout    = 1000
	unixPollErrors = int16(unix.POLLHUP | unix.POLLNVAL | unix.POLLERR)
	unixPollDataIn = int16(unix.POLLIN)

	solHCI    = 0
	hciFilter = 2

	devUp = 1 << 0 // HCI_UP in hci_dev_info.flags
)

var (
	hciUpDevice      = ioW(typHCI, 201, ioctlSize) // HCIDEVUP
	hciDownDevice    = ioW(typHCI, 202, ioctlSize) // HCIDEVDOWN
	hciGetDeviceList = ioR(typHCI, 210, ioctlSize) // HCIGETDEVLIST
	hciGetDeviceInfo = ioR(typHCI, 211, ioctlSize) // HCIGETDEVINFO
)

type devListRequest struct {
	devNum     uint16
	devRequest [hciMaxDevices]struct {
		id  uint16
		opt uint32
	}
}

// devInfo mirrors struct hci_dev_info.
type devInfo struct {
	id         uint16
	name       [8]byte
	bdaddr     [6]byte
	flags      uint32
	typ        uint8
	features   [8]uint8
	pktType    uint32
	linkPolicy uint32
	linkMode   uint32
	aclMtu     uint16
	aclPkts    uint16
	scoMtu     uint16
	scoPkts    uint16
	stat       [10]uint32
}

// Socket is a raw HCI socket bound to one adapter. It implements
// io.ReadWriteCloser; reads time out after a second and return (0, nil).
type Socket struct {
	fd   int
	id   int
	rmu  sync.Mutex
	wmu  sync.Mutex
	fmu  sync.Mutex
	done chan int
	cmu  sync.Mutex

	filter Filter
}

// NewSocket returns a raw HCI socket bound to the given device id.
// If id is -1, the first device that is up is used.
func NewSocket(id int) (*Socket, error) {
	if id == -1 {
		var err error
		if id, err = Route(nil); err != nil {
			return nil, err
		}
	}

	fd, err := unix.Socket(unix.AF_BLUETOOTH, unix.SOCK_RAW|unix.SOCK_CLOEXEC, unix.BTPROTO_HCI)
	if err != nil {
		return nil, errors.Wrap(err, "can't create socket")
	}

	sa := unix.SockaddrHCI{Dev: uint16(id), Channel: unix.HCI_CHANNEL_RAW}
	if err := unix.Bind(fd, &sa); err != nil {
		unix.Close(fd)
		return nil, errors.Wrapf(err, "can't bind socket to hci%d", id)
	}

	s := &Socket{fd: fd, id: id, done: make(chan int)}
	if v, err := unix.GetsockoptString(fd, solHCI, hciFilter); err == nil {
		if f, err := UnmarshalFilter([]byte(v)); err == nil {
			s.filter = f
		}
	}
	return s, nil
}

// ID returns the device id the socket is bound to.
func (s *Socket) ID() int {
	return s.id
}

// SetFilter installs f as the kernel event filter.
func (s *Socket) SetFilter(f Filter) error {
	if !s.isOpen() {
		return io.EOF
	}

	s.fmu.Lock()
	defer s.fmu.Unlock()
	if err := unix.SetsockoptString(s.fd, solHCI, hciFilter, string(f.Marshal())); err != nil {
		return errors.Wrap(err, "can't set hci filter")
	}
	s.filter = f
	return nil
}

// Filter returns the filter last installed on the socket.
func (s *Socket) Filter() Filter {
	s.fmu.Lock()
	defer s.fmu.Unlock()
	return s.filter
}

func (s *Socket) Read(p []byte) (int, error) {
	if !s.isOpen() {
		return 0, io.EOF
	}

	var err error
	n := 0
	s.rmu.Lock()
	defer s.rmu.Unlock()
	// dont need to add unixPollErrors, they are always returned
	pfds := []unix.PollFd{{Fd: int32(s.fd), Events: unixPollDataIn}}
	unix.Poll(pfds, readTimeout)
	evts := pfds[0].Revents

	switch {
	case evts&unixPollErrors != 0:
		return 0, io.EOF

	case evts&unixPollDataIn != 0:
		n, err = unix.Read(s.fd, p)

	default:
		// no data, read timeout
		return 0, nil
	}

	// check if we are still open since the read takes a while
	if !s.isOpen() {
		return 0, io.EOF
	}
	return n, errors.Wrap(err, "can't read hci socket")
}

func (s *Socket) Write(p []byte) (int, error) {
	if !s.isOpen() {
		return 0, io.EOF
	}

	s.wmu.Lock()
	defer s.wmu.Unlock()
	n, err := unix.Write(s.fd, p)
	return n, errors.Wrap(err, "can't write hci socket")
}

func (s *Socket) Close() error {
	s.cmu.Lock()
	defer s.cmu.Unlock()

	select {
	case <-s.done:
		return nil

	default:
		close(s.done)
		s.rmu.Lock()
		err := unix.Close(s.fd)
		s.rmu.Unlock()

		return errors.Wrap(err, "can't close hci socket")
	}
}

func (s *Socket) isOpen() bool {
	select {
	case <-s.done:
		return false
	default:
		return true
	}
}

func withControl(fn func(fd int) error) error {
	fd, err := unix.Socket(unix.AF_BLUETOOTH, unix.SOCK_RAW|unix.SOCK_CLOEXEC, unix.BTPROTO_HCI)
	if err != nil {
		return errors.Wrap(err, "can't create control socket")
	}
	defer unix.Close(fd)
	return fn(fd)
}

// Up brings the device up. A device that is already up is not an error.
func Up(id int) error {
	return withControl(func(fd int) error {
		err := ioctl(uintptr(fd), hciUpDevice, uintptr(id))
		if err == nil || err == unix.EALREADY {
			return nil
		}
		return errors.Wrapf(err, "can't up hci%d", id)
	})
}

// Down takes the device down. A device that is already down is not an error.
func Down(id int) error {
	return withControl(func(fd int) error {
		err := ioctl(uintptr(fd), hciDownDevice, uintptr(id))
		if err == nil || err == unix.EALREADY {
			return nil
		}
		return errors.Wrapf(err, "can't down hci%d", id)
	})
}

// Devices lists the ids of all registered HCI devices.
func Devices() ([]int, error) {
	var ids []int
	err := withControl(func(fd int) error {
		req := devListRequest{devNum: hciMaxDevices}
		if err := ioctl(uintptr(fd), hciGetDeviceList, uintptr(unsafe.Pointer(&req))); err != nil {
			return errors.Wrap(err, "can't get device list")
		}
		for i := 0; i < int(req.devNum); i++ {
			ids = append(ids, int(req.devRequest[i].id))
		}
		return nil
	})
	return ids, err
}

func deviceInfo(fd, id int) (devInfo, error) {
	di := devInfo{id: uint16(id)}
	if err := ioctl(uintptr(fd), hciGetDeviceInfo, uintptr(unsafe.Pointer(&di))); err != nil {
		return devInfo{}, errors.Wrapf(err, "can't get info of hci%d", id)
	}
	return di, nil
}

// DeviceAddress returns the address of device id in wire order.
func DeviceAddress(id int) ([6]byte, error) {
	var a [6]byte
	err := withControl(func(fd int) error {
		di, err := deviceInfo(fd, id)
		if err != nil {
			return err
		}
		a = di.bdaddr
		return nil
	})
	return a, err
}

// Route returns the id of the device owning addr (wire order), or of the
// first device that is up when addr is nil.
func Route(addr *[6]byte) (int, error) {
	ids, err := Devices()
	if err != nil {
		return -1, err
	}

	found := -1
	var msg string
	err = withControl(func(fd int) error {
		for _, id := range ids {
			di, err := deviceInfo(fd, id)
			if err != nil {
				msg += fmt.Sprintf("(hci%d: %s)", id, err)
				continue
			}
			if (addr == nil && di.flags&devUp != 0) || (addr != nil && di.bdaddr == *addr) {
				found = id
				return nil
			}
		}
		return nil
	})
	switch {
	case err != nil:
		return -1, err
	case found == -1:
		return -1, errors.Errorf("no devices available: %s", msg)
	}
	return found, nil
}
