package mmu

import (
	"fmt"
	"io"

	"github.com/golang/glog"
)

// Hexdump writes the inclusive virtual range start..end to w.
//
// Frames are allocated one by one and a page boundary is not a boundary
// in physical memory, so the range is split into pages and every page
// gets its own header and its own row numbering.
//
// Hexdump is a diagnostic: a page that can't be translated ends the dump
// without an error.
func (m *MMU) Hexdump(w io.Writer, start, end uint16) {
	if !m.valid() {
		glog.V(1).Infof("hexdump %#04x..%#04x: uninitialised mmu", start, end)
		return
	}
	if start > end {
		glog.V(1).Infof("hexdump %#04x..%#04x: empty range", start, end)
		return
	}

	first := int(start >> 8)
	pages := int(end>>8) - first + 1
	for p := 0; p < pages; p++ {
		lo, hi := 0, FrameSize-1
		if p == 0 {
			lo = int(start & 0xff)
		}
		if p == pages-1 {
			hi = int(end & 0xff)
		}

		page := first + p
		fmt.Fprintf(w, "Page %d:\n", page)
		if !m.dumpPage(w, uint16(page<<8|lo), uint16(page<<8|hi)) {
			return
		}
	}
}

// dumpPage dumps start..end, both addresses being in the same page.
func (m *MMU) dumpPage(w io.Writer, start, end uint16) bool {
	from, err := m.Translate(start)
	if err != nil {
		return false
	}
	to, err := m.Translate(end)
	if err != nil {
		return false
	}

	var r row
	fmt.Fprintf(w, "%08x  ", r.offset())
	for off := int(from.Offset); off <= int(to.Offset); off++ {
		b := *m.at(Location{Frame: from.Frame, Offset: uint8(off)})
		fmt.Fprintf(w, "%02x ", b)
		full := r.feed(b)
		if r.group() {
			io.WriteString(w, " ")
		}
		if full {
			flushRow(w, &r)
		}
	}

	// partial last row
	for n := r.missing(); n > 0; n-- {
		io.WriteString(w, "   ")
		full := r.pad()
		if r.group() {
			io.WriteString(w, " ")
		}
		if full {
			flushRow(w, &r)
		}
	}

	io.WriteString(w, "\n")
	return true
}

// flushRow ends a full row and labels the next one
func flushRow(w io.Writer, r *row) {
	fmt.Fprintln(w, r.flush())
	fmt.Fprintf(w, "%08x  ", r.offset())
}
