// Package joydev reads the kernel joystick interface (/dev/input/js*).
//
// Devices are opened non-blocking; capability queries (protocol version,
// axis/button counts, display name) go through the JSIOC* ioctls while
// events arrive as fixed 8-byte records on the read stream.
package joydev

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// EventSize is the wire size of one js_event record.
const EventSize = 8

// Event type tags. The init qualifier is set on events synthesized by the
// kernel right after open to report initial device state; it must be
// masked off before dispatch.
const (
	EventButton uint8 = 0x01
	EventAxis   uint8 = 0x02
	eventInit   uint8 = 0x80
)

// JSIOC* request numbers. The name query length is encoded in the size
// field of the request.
const (
	iocVersion  = 0x80046a01
	iocAxes     = 0x80016a11
	iocButtons  = 0x80016a12
	iocName     = 0x80006a13
	nameBufSize = 128
)

// Event is one raw joystick event.
type Event struct {
	Time   uint32 // event timestamp in milliseconds
	Value  int16
	Type   uint8
	Number uint8 // button or axis index
}

// Kind returns the event type with the init qualifier masked off.
func (e Event) Kind() uint8 {
	return e.Type &^ eventInit
}

// Encode returns the wire representation of the event. Used for raw event
// tracing and by test fakes.
func (e Event) Encode() []byte {
	b := make([]byte, EventSize)
	binary.NativeEndian.PutUint32(b[0:4], e.Time)
	binary.NativeEndian.PutUint16(b[4:6], uint16(e.Value))
	b[6] = e.Type
	b[7] = e.Number
	return b
}

func decodeEvent(b []byte) Event {
	return Event{
		Time:   binary.NativeEndian.Uint32(b[0:4]),
		Value:  int16(binary.NativeEndian.Uint16(b[4:6])),
		Type:   b[6],
		Number: b[7],
	}
}

// Joystick is an open joystick device node.
type Joystick struct {
	fd   int
	path string
}

// Open opens the device node for non-blocking reads.
func Open(path string) (*Joystick, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("joydev: open %s: %w", path, err)
	}
	return &Joystick{fd: fd, path: path}, nil
}

// Path returns the device node path the joystick was opened from.
func (j *Joystick) Path() string { return j.path }

// Version queries the joystick protocol version. A zero version marks a
// node that is not driven by the joystick interface.
func (j *Joystick) Version() (uint32, error) {
	var v uint32
	if err := ioctl(j.fd, iocVersion, unsafe.Pointer(&v)); err != nil {
		return 0, fmt.Errorf("joydev: version query on %s: %w", j.path, err)
	}
	return v, nil
}

// Axes queries the number of axes the device reports.
func (j *Joystick) Axes() (int, error) {
	var n uint8
	if err := ioctl(j.fd, iocAxes, unsafe.Pointer(&n)); err != nil {
		return 0, fmt.Errorf("joydev: axes query on %s: %w", j.path, err)
	}
	return int(n), nil
}

// Buttons queries the number of buttons the device reports.
func (j *Joystick) Buttons() (int, error) {
	var n uint8
	if err := ioctl(j.fd, iocButtons, unsafe.Pointer(&n)); err != nil {
		return 0, fmt.Errorf("joydev: buttons query on %s: %w", j.path, err)
	}
	return int(n), nil
}

// Name queries the device display name, truncated to the query buffer.
func (j *Joystick) Name() (string, error) {
	buf := make([]byte, nameBufSize)
	req := uint(iocName) | uint(len(buf))<<16
	if err := ioctl(j.fd, req, unsafe.Pointer(&buf[0])); err != nil {
		return "", fmt.Errorf("joydev: name query on %s: %w", j.path, err)
	}
	return unix.ByteSliceToString(buf), nil
}

// ReadEvent reads one event if immediately available. ok is false when no
// event is pending, which is the common case and not an error.
func (j *Joystick) ReadEvent() (ev Event, ok bool, err error) {
	var buf [EventSize]byte
	n, err := unix.Read(j.fd, buf[:])
	if err != nil {
		if err == unix.EAGAIN {
			return Event{}, false, nil
		}
		return Event{}, false, fmt.Errorf("joydev: read %s: %w", j.path, err)
	}
	if n != EventSize {
		return Event{}, false, nil
	}
	return decodeEvent(buf[:]), true, nil
}

// Close releases the device handle. Safe to call more than once.
func (j *Joystick) Close() error {
	if j.fd < 0 {
		return nil
	}
	err := unix.Close(j.fd)
	j.fd = -1
	if err != nil {
		return fmt.Errorf("joydev: close %s: %w", j.path, err)
	}
	return nil
}

// DevID returns the OS identity (st_rdev) of a device node, used to detect
// re-insertion of the same physical unit.
func DevID(path string) (uint64, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return 0, fmt.Errorf("joydev: stat %s: %w", path, err)
	}
	return uint64(st.Rdev), nil
}

func ioctl(fd int, req uint, ptr unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(req), uintptr(ptr))
	if errno != 0 {
		return errno
	}
	return nil
}
