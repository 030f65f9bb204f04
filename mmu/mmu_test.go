package mmu

import (
	"testing"

	"github.com/pkg/errors"
)

func newFrames(n int) []*Frame {
	frames := make([]*Frame, n)
	for i := range frames {
		frames[i] = new(Frame)
	}
	return frames
}

func newMMU(t *testing.T, n int) (*MMU, []*Frame) {
	t.Helper()
	frames := newFrames(n)
	m, err := New(frames, n)
	if err != nil {
		t.Fatalf("New(%d) failed: %v", n, err)
	}
	return m, frames
}

func snapshot(frames []*Frame) []Frame {
	s := make([]Frame, len(frames))
	for i, f := range frames {
		s[i] = *f
	}
	return s
}

func TestNew(t *testing.T) {
	withHole := newFrames(3)
	withHole[1] = nil

	tests := []struct {
		name    string
		frames  []*Frame
		size    int
		wantErr bool
	}{
		{"single frame", newFrames(1), 1, false},
		{"four frames", newFrames(4), 4, false},
		{"full address space", newFrames(MaxFrames), MaxFrames, false},
		{"size below table length", newFrames(4), 2, false},
		{"empty table", nil, 0, false},
		{"size above table length", newFrames(2), 3, true},
		{"size above address space", newFrames(MaxFrames + 1), MaxFrames + 1, true},
		{"negative size", newFrames(1), -1, true},
		{"unallocated frame", withHole, 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.frames, tt.size)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrConstruction) {
					t.Errorf("New() error = %v, want %v", err, ErrConstruction)
				}
				if m != nil {
					t.Errorf("New() returned an MMU together with an error")
				}
				return
			}
			if m.Size() != tt.size {
				t.Errorf("MMU.Size() = %v, want %v", m.Size(), tt.size)
			}
		})
	}
}

func TestMMU_Translate(t *testing.T) {
	m, _ := newMMU(t, 4)

	tests := []struct {
		name    string
		addr    uint16
		want    Location
		wantErr error
	}{
		{"first byte", 0x0000, Location{0, 0}, nil},
		{"last byte of frame 0", 0x00ff, Location{0, 0xff}, nil},
		{"first byte of frame 1", 0x0100, Location{1, 0}, nil},
		{"middle of frame 2", 0x0280, Location{2, 0x80}, nil},
		{"last mapped byte", 0x03ff, Location{3, 0xff}, nil},
		{"first unmapped byte", 0x0400, Location{}, ErrInvalidPage},
		{"top of address space", 0xffff, Location{}, ErrInvalidPage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Translate(tt.addr)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("MMU.Translate(%#04x) error = %v, want %v", tt.addr, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("MMU.Translate(%#04x) = %+v, want %+v", tt.addr, got, tt.want)
			}
		})
	}
}

func TestMMU_RoundTrip(t *testing.T) {
	m, _ := newMMU(t, 4)

	for addr := 0; addr < 4*FrameSize; addr++ {
		for v := 0; v < 256; v++ {
			if err := m.WriteMemoryByte(uint16(addr), byte(v)); err != nil {
				t.Fatalf("MMU.WriteMemoryByte(%#04x, %#02x) failed: %v", addr, v, err)
			}
			got, err := m.ReadMemoryByte(uint16(addr))
			if err != nil {
				t.Fatalf("MMU.ReadMemoryByte(%#04x) failed: %v", addr, err)
			}
			if got != byte(v) {
				t.Fatalf("MMU.ReadMemoryByte(%#04x) = %#02x, want %#02x", addr, got, v)
			}
		}
	}
}

func TestMMU_BoundsRejection(t *testing.T) {
	m, frames := newMMU(t, 2)
	for i, f := range frames {
		for j := range f {
			f[j] = byte(i + j)
		}
	}
	before := snapshot(frames)

	for addr := 2 * FrameSize; addr <= 0xffff; addr++ {
		if _, err := m.ReadMemoryByte(uint16(addr)); !errors.Is(err, ErrInvalidPage) {
			t.Fatalf("MMU.ReadMemoryByte(%#04x) error = %v, want %v", addr, err, ErrInvalidPage)
		}
		if err := m.WriteMemoryByte(uint16(addr), 0xaa); !errors.Is(err, ErrInvalidPage) {
			t.Fatalf("MMU.WriteMemoryByte(%#04x) error = %v, want %v", addr, err, ErrInvalidPage)
		}
	}

	after := snapshot(frames)
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("frame %d modified by rejected writes", i)
		}
	}
}

func TestMMU_FrameIsolation(t *testing.T) {
	m, frames := newMMU(t, 3)

	for target := 0; target < 3; target++ {
		before := snapshot(frames)
		for off := 0; off < FrameSize; off++ {
			if err := m.WriteMemoryByte(uint16(target<<8|off), 0xff); err != nil {
				t.Fatal(err)
			}
		}
		after := snapshot(frames)
		for i := range after {
			if i != target && after[i] != before[i] {
				t.Errorf("writing frame %d changed frame %d", target, i)
			}
		}
	}
}

func TestMMU_BoundaryAddressing(t *testing.T) {
	m, frames := newMMU(t, 2)

	if err := m.WriteMemoryByte(0x00ff, 0x11); err != nil {
		t.Fatal(err)
	}
	if err := m.WriteMemoryByte(0x0100, 0x22); err != nil {
		t.Fatal(err)
	}

	if frames[0][0xff] != 0x11 {
		t.Errorf("frame 0 offset 0xff = %#02x, want 0x11", frames[0][0xff])
	}
	if frames[1][0x00] != 0x22 {
		t.Errorf("frame 1 offset 0x00 = %#02x, want 0x22", frames[1][0x00])
	}
	if frames[0][0x00] != 0 || frames[1][0xff] != 0 {
		t.Errorf("boundary writes leaked into the other end of a frame")
	}
}

func TestMMU_HelloWorld(t *testing.T) {
	m, _ := newMMU(t, 4)

	strs := []struct {
		s    string
		addr uint16
	}{
		{"hello", 0x0000},
		{"world", 4*FrameSize - 5},
	}
	for _, tt := range strs {
		for i := 0; i < len(tt.s); i++ {
			if err := m.WriteMemoryByte(tt.addr+uint16(i), tt.s[i]); err != nil {
				t.Fatalf("MMU.WriteMemoryByte(%#04x) failed: %v", tt.addr+uint16(i), err)
			}
		}
	}
	if strs[1].addr != 0x03fb {
		t.Fatalf("world starts at %#04x, want 0x03fb", strs[1].addr)
	}

	for _, tt := range strs {
		for i := 0; i < len(tt.s); i++ {
			b, err := m.ReadMemoryByte(tt.addr + uint16(i))
			if err != nil {
				t.Fatalf("MMU.ReadMemoryByte(%#04x) failed: %v", tt.addr+uint16(i), err)
			}
			if b != tt.s[i] {
				t.Errorf("MMU.ReadMemoryByte(%#04x) = %q, want %q", tt.addr+uint16(i), b, tt.s[i])
			}
		}
	}
}

func TestMMU_InvalidPageSingleFrame(t *testing.T) {
	m, _ := newMMU(t, 1)

	if _, err := m.ReadMemoryByte(257); !errors.Is(err, ErrInvalidPage) {
		t.Errorf("MMU.ReadMemoryByte(257) error = %v, want %v", err, ErrInvalidPage)
	}
	if err := m.WriteMemoryByte(257, 0); !errors.Is(err, ErrInvalidPage) {
		t.Errorf("MMU.WriteMemoryByte(257) error = %v, want %v", err, ErrInvalidPage)
	}
}

func TestMMU_Uninitialised(t *testing.T) {
	closed, frames := newMMU(t, 1)
	frames[0][0] = 0x42
	closed.Close()

	tests := []struct {
		name string
		m    *MMU
	}{
		{"nil mmu", nil},
		{"closed mmu", closed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.m.Translate(0); err != ErrUninitialized {
				t.Errorf("MMU.Translate() error = %v, want %v", err, ErrUninitialized)
			}
			if _, err := tt.m.ReadMemoryByte(0); err != ErrUninitialized {
				t.Errorf("MMU.ReadMemoryByte() error = %v, want %v", err, ErrUninitialized)
			}
			if err := tt.m.WriteMemoryByte(0, 1); err != ErrUninitialized {
				t.Errorf("MMU.WriteMemoryByte() error = %v, want %v", err, ErrUninitialized)
			}
			if tt.m.Size() != 0 {
				t.Errorf("MMU.Size() = %v, want 0", tt.m.Size())
			}
		})
	}

	// closing never touches frame memory
	if frames[0][0] != 0x42 {
		t.Errorf("Close() modified frame memory")
	}
}

func TestMMU_Words(t *testing.T) {
	m, frames := newMMU(t, 2)

	tests := []struct {
		name string
		addr uint16
		data uint16
	}{
		{"aligned", 0x0010, 0xbeef},
		{"odd address", 0x0021, 0x1234},
		{"straddles frames", 0x00ff, 0xcafe},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := m.WriteMemoryWord(tt.addr, tt.data); err != nil {
				t.Fatalf("MMU.WriteMemoryWord(%#04x) failed: %v", tt.addr, err)
			}
			got, err := m.ReadMemoryWord(tt.addr)
			if err != nil {
				t.Fatalf("MMU.ReadMemoryWord(%#04x) failed: %v", tt.addr, err)
			}
			if got != tt.data {
				t.Errorf("MMU.ReadMemoryWord(%#04x) = %#04x, want %#04x", tt.addr, got, tt.data)
			}
			lo, _ := m.ReadMemoryByte(tt.addr)
			if lo != byte(tt.data&0xff) {
				t.Errorf("lower byte = %#02x, want %#02x", lo, tt.data&0xff)
			}
		})
	}

	if frames[0][0xff] != 0xfe || frames[1][0x00] != 0xca {
		t.Errorf("straddling word stored as %#02x %#02x", frames[0][0xff], frames[1][0x00])
	}

	// upper byte falls off the frame table: nothing gets written
	frames[1][0xff] = 0x55
	if err := m.WriteMemoryWord(0x01ff, 0xffff); !errors.Is(err, ErrInvalidPage) {
		t.Errorf("MMU.WriteMemoryWord(0x01ff) error = %v, want %v", err, ErrInvalidPage)
	}
	if frames[1][0xff] != 0x55 {
		t.Errorf("failed word write modified memory")
	}
	if _, err := m.ReadMemoryWord(0x01ff); !errors.Is(err, ErrInvalidPage) {
		t.Errorf("MMU.ReadMemoryWord(0x01ff) error = %v, want %v", err, ErrInvalidPage)
	}
}
