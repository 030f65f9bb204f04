// Package frames holds the caller side of the frame table: parsing and
// validating the frame count, allocating frames and (re)setting their
// contents. The MMU only ever borrows what is created here.
package frames

import (
	"io"
	"strconv"

	"github.com/pkg/errors"

	"paging/mmu"
)

// DefaultCount is the number of frames used when none is given
const DefaultCount = 4

var (
	// ErrNoMemory -> a frame table without frames
	ErrNoMemory = errors.New("there's not much fun without memory")

	// ErrTooManyFrames -> more frames than a 16 bit address can select
	ErrTooManyFrames = errors.New("too many frames")
)

// ParseCount parses a frame count. Base prefixes are accepted (0x10, 020).
func ParseCount(s string) (int, error) {
	n, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "cannot parse number: %s", s)
	}
	if err := Validate(n); err != nil {
		return 0, err
	}
	return int(n), nil
}

// Validate checks the frame count is within 1..mmu.MaxFrames.
func Validate(n uint64) error {
	if n == 0 {
		return ErrNoMemory
	}
	if n > mmu.MaxFrames {
		return errors.Wrapf(ErrTooManyFrames, "%d, maximum is %d", n, mmu.MaxFrames)
	}
	return nil
}

// New allocates n zeroed frames, each one on its own.
func New(n int) ([]*mmu.Frame, error) {
	if n < 0 {
		return nil, errors.Errorf("negative frame count %d", n)
	}
	if err := Validate(uint64(n)); err != nil {
		return nil, err
	}
	frames := make([]*mmu.Frame, n)
	for i := range frames {
		frames[i] = new(mmu.Frame)
	}
	return frames, nil
}

// Zero clears every frame.
func Zero(frames []*mmu.Frame) {
	Fill(frames, 0)
}

// Fill sets every byte of every frame to b.
func Fill(frames []*mmu.Frame, b byte) {
	for _, f := range frames {
		for i := range f {
			f[i] = b
		}
	}
}

// Load copies r into virtual memory starting at base. It returns the number
// of bytes written; copying stops at the first address that doesn't
// translate, and at the top of the address space.
func Load(m mmu.MemoryManager, base uint16, r io.Reader) (int, error) {
	buf := make([]byte, mmu.FrameSize)
	addr := int(base)
	written := 0
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			if addr > 0xffff {
				return written, errors.Errorf("input exceeds the address space at %d bytes", written)
			}
			if werr := m.WriteMemoryByte(uint16(addr), b); werr != nil {
				return written, werr
			}
			addr++
			written++
		}
		if err == io.EOF {
			return written, nil
		}
		if err != nil {
			return written, errors.Wrap(err, "read failed")
		}
	}
}
