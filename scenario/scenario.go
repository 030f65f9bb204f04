package scenario

import (
	"fmt"
	"io"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"paging/frames"
	"paging/mmu"
)

// Scenario is a single named exercise of the MMU.
type Scenario struct {
	Name string
	Run  func(out io.Writer) error
}

// lorem fills the single frame of the "lorem" scenario, the remainder of
// the frame stays zero
const lorem = "Nam quis nulla. Integer malesuada. In in enim a arcu imperdiet malesuada. " +
	"Sed vel lectus. Donec odio urna, tempus molestie, porttitor ut, iaculis quis, sem. Phasellus rhoncus. " +
	"Aenean id metus id velit ullamcorper pulvinar. Vestibulum fermentum tortor id m"

// Default returns the standard scenarios. The first two work on the
// caller's frame table, the rest build their own.
func Default(table []*mmu.Frame) []Scenario {
	return []Scenario{
		{"access", func(out io.Writer) error { return access(table) }},
		{"hello-world", func(out io.Writer) error { return helloWorld(table, out) }},
		{"spaces", spaces},
		{"lorem", loremIpsum},
		{"invalid-page", invalidPage},
	}
}

// RunAll runs every scenario, failures don't stop the run. The returned
// error names all the failed scenarios.
func RunAll(out io.Writer, scenarios ...Scenario) error {
	var failed []string
	for _, s := range scenarios {
		glog.Infof("running scenario %s", s.Name)
		if err := s.Run(out); err != nil {
			glog.Errorf("scenario %s failed: %v", s.Name, err)
			failed = append(failed, s.Name)
			continue
		}
		glog.V(1).Infof("scenario %s passed", s.Name)
	}
	if len(failed) > 0 {
		return errors.Errorf("some scenarios failed: %s", strings.Join(failed, ", "))
	}
	return nil
}

// access checks every mapped address can be read and written back
func access(table []*mmu.Frame) error {
	frames.Zero(table)
	m, err := mmu.New(table, len(table))
	if err != nil {
		return errors.Wrap(err, "unable to create MMU")
	}
	defer m.Close()

	for addr := 0; addr < len(table)*mmu.FrameSize; addr++ {
		b, err := m.ReadMemoryByte(uint16(addr))
		if err != nil {
			return errors.Wrapf(err, "failed to read byte at address %#x", addr)
		}
		if err := m.WriteMemoryByte(uint16(addr), b); err != nil {
			return errors.Wrapf(err, "failed to write byte at address %#x", addr)
		}
	}
	return nil
}

// helloWorld writes "hello" at the bottom and "world" at the very top of
// the frame table and reads both back
func helloWorld(table []*mmu.Frame, out io.Writer) error {
	frames.Zero(table)
	m, err := mmu.New(table, len(table))
	if err != nil {
		return errors.Wrap(err, "unable to create MMU")
	}
	defer m.Close()

	top := len(table) * mmu.FrameSize
	strs := []struct {
		s    string
		addr int
	}{
		{"hello", 0},
		{"world", top - len("world")},
	}

	for _, s := range strs {
		for i := 0; i < len(s.s); i++ {
			if err := m.WriteMemoryByte(uint16(s.addr+i), s.s[i]); err != nil {
				return errors.Wrapf(err, "failed to write byte at address %#x", s.addr+i)
			}
		}
	}
	for _, s := range strs {
		for i := 0; i < len(s.s); i++ {
			b, err := m.ReadMemoryByte(uint16(s.addr + i))
			if err != nil {
				return errors.Wrapf(err, "failed to read byte at address %#x", s.addr+i)
			}
			if b != s.s[i] {
				return errors.Errorf("unexpected value %#x at %#x; expected %c", b, s.addr+i, s.s[i])
			}
		}
	}

	fmt.Fprintf(out, "hello-world hexdump\n")
	m.Hexdump(out, 0, uint16(top-1))
	return nil
}

// spaces dumps three frames filled with ASCII space
func spaces(out io.Writer) error {
	table, err := frames.New(3)
	if err != nil {
		return err
	}
	frames.Fill(table, ' ')

	m, err := mmu.New(table, len(table))
	if err != nil {
		return errors.Wrap(err, "unable to create MMU")
	}
	defer m.Close()

	fmt.Fprintf(out, "\nspaces hexdump\n")
	m.Hexdump(out, 0, 767)
	return nil
}

// loremIpsum dumps a single frame of text followed by zeros
func loremIpsum(out io.Writer) error {
	table, err := frames.New(1)
	if err != nil {
		return err
	}
	m, err := mmu.New(table, len(table))
	if err != nil {
		return errors.Wrap(err, "unable to create MMU")
	}
	defer m.Close()

	for i := 0; i < mmu.FrameSize && i < len(lorem); i++ {
		if err := m.WriteMemoryByte(uint16(i), lorem[i]); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "\nlorem hexdump\n")
	m.Hexdump(out, 0, mmu.FrameSize-1)
	return nil
}

// invalidPage makes sure an address beyond the only frame is rejected
func invalidPage(out io.Writer) error {
	table, err := frames.New(1)
	if err != nil {
		return err
	}
	m, err := mmu.New(table, len(table))
	if err != nil {
		return errors.Wrap(err, "unable to create MMU")
	}
	defer m.Close()

	fmt.Fprintf(out, "\ninvalid pages\n")

	b, err := m.ReadMemoryByte(257)
	if !errors.Is(err, mmu.ErrInvalidPage) {
		return errors.Errorf("read from invalid page: %v", err)
	}
	if err := m.WriteMemoryByte(257, b); !errors.Is(err, mmu.ErrInvalidPage) {
		return errors.Errorf("write to invalid page: %v", err)
	}
	return nil
}
