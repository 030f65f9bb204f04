package mmu

import "io"

// MemoryManager is the interface the harness, the dump command and the
// browser work against. *MMU is the only implementation.
type MemoryManager interface {

	// Translate maps the 16 bit virtual "addr" to a frame location
	Translate(addr uint16) (Location, error)

	// ReadMemoryByte returns byte content of the location mapped
	// through the 16 bit virtual "addr" address
	ReadMemoryByte(addr uint16) (byte, error)

	// WriteMemoryByte writes to address "addr" content of the "data" byte
	WriteMemoryByte(addr uint16, data byte) error

	// ReadMemoryWord returns the little endian word at "addr"
	ReadMemoryWord(addr uint16) (uint16, error)

	// WriteMemoryWord writes "data" to virtual address "addr"
	WriteMemoryWord(addr, data uint16) error

	// Hexdump writes the inclusive range start..end to w
	Hexdump(w io.Writer, start, end uint16)

	// Size returns the number of mapped frames
	Size() int
}

var _ MemoryManager = (*MMU)(nil)
