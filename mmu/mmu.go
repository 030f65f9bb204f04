package mmu

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// memory related constants
const (
	// FrameSize -> bytes in a single physical frame (and a virtual page)
	FrameSize = 256

	// MaxFrames -> page index is the high byte of a 16 bit address
	MaxFrames = 256

	// RowWidth -> bytes per hexdump row
	RowWidth = 16
)

var (
	// ErrConstruction is returned when the MMU bookkeeping can't be set up
	ErrConstruction = errors.New("mmu construction failed")

	// ErrInvalidPage is returned when the page index of an address is not
	// covered by the frame table
	ErrInvalidPage = errors.New("invalid page")

	// ErrUninitialized is returned by every operation on a nil or closed MMU
	ErrUninitialized = errors.New("uninitialised mmu")
)

// Frame is a single physical page. Frames are allocated by the caller,
// one by one, and are not required to be contiguous.
type Frame [FrameSize]byte

// Location is a translated address: frame index and offset within the frame.
type Location struct {
	Frame  uint8
	Offset uint8
}

// MMU translates 16 bit virtual addresses into frame locations.
// Address composition:
// 15 | 14 | 13 | 12 | 11 | 10 | 9 | 8 | 7 | 6 | 5 | 4 | 3 | 2 | 1 | 0
// ------------- page index -------------|------------ offset ----------
type MMU struct {
	// borrowed from the caller, never allocated or freed here
	frames []*Frame
	size   int
	closed bool
}

// New returns an MMU over the first "size" frames of the frame table.
// The frame table stays owned by the caller and has to outlive the MMU.
func New(frames []*Frame, size int) (*MMU, error) {
	if size < 0 || size > MaxFrames {
		return nil, errors.Wrapf(ErrConstruction, "frame count %d out of range 0..%d", size, MaxFrames)
	}
	if size > len(frames) {
		return nil, errors.Wrapf(ErrConstruction, "frame count %d exceeds table length %d", size, len(frames))
	}
	for i := 0; i < size; i++ {
		if frames[i] == nil {
			return nil, errors.Wrapf(ErrConstruction, "frame %d is not allocated", i)
		}
	}

	m := new(MMU)
	m.frames = frames[:size:size]
	m.size = size
	return m, nil
}

// Close releases the reference to the frame table. Frame memory is left
// alone; it belongs to whoever created it.
func (m *MMU) Close() {
	if m == nil {
		return
	}
	m.frames = nil
	m.size = 0
	m.closed = true
}

// Size returns the number of frames the MMU translates into.
func (m *MMU) Size() int {
	if m == nil {
		return 0
	}
	return m.size
}

func (m *MMU) valid() bool {
	return m != nil && !m.closed
}

// Translate decomposes a virtual address into page index and offset.
// The page index is the only thing that needs checking, the offset
// always fits into a frame.
func (m *MMU) Translate(addr uint16) (Location, error) {
	if !m.valid() {
		glog.V(1).Infof("translate %#04x: uninitialised mmu", addr)
		return Location{}, ErrUninitialized
	}

	page := addr >> 8
	offset := addr & 0xff
	if int(page) >= m.size {
		glog.V(1).Infof("translate %#04x: invalid page %d (frames: %d)", addr, page, m.size)
		return Location{}, errors.Wrapf(ErrInvalidPage, "address %#04x, page %d of %d", addr, page, m.size)
	}
	return Location{Frame: uint8(page), Offset: uint8(offset)}, nil
}

// at is the indexed accessor behind every read and write.
func (m *MMU) at(loc Location) *byte {
	return &m.frames[loc.Frame][loc.Offset]
}

// ReadMemoryByte returns the byte mapped through the 16 bit virtual address.
func (m *MMU) ReadMemoryByte(addr uint16) (byte, error) {
	loc, err := m.Translate(addr)
	if err != nil {
		return 0, err
	}
	return *m.at(loc), nil
}

// WriteMemoryByte writes data to the 16 bit virtual address.
func (m *MMU) WriteMemoryByte(addr uint16, data byte) error {
	loc, err := m.Translate(addr)
	if err != nil {
		return err
	}
	*m.at(loc) = data
	return nil
}

// ReadMemoryWord reads a little endian word. The upper byte lives at addr+1
// which may well be in another frame.
func (m *MMU) ReadMemoryWord(addr uint16) (uint16, error) {
	lo, err := m.ReadMemoryByte(addr)
	if err != nil {
		return 0, err
	}
	hi, err := m.ReadMemoryByte(addr + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// WriteMemoryWord writes a little endian word. Both addresses are translated
// first, a failing write leaves memory untouched.
func (m *MMU) WriteMemoryWord(addr, data uint16) error {
	lo, err := m.Translate(addr)
	if err != nil {
		return err
	}
	hi, err := m.Translate(addr + 1)
	if err != nil {
		return err
	}
	*m.at(lo) = byte(data & 0xff)
	*m.at(hi) = byte(data >> 8)
	return nil
}
