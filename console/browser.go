package console

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/jroimartin/gocui"
	"github.com/pkg/errors"

	"paging/mmu"
)

// view names
const (
	dumpView   = "dump"
	statusView = "status"
)

// Browser shows the hexdump of one page at a time.
// keys:
//
//	n, arrow right : next page
//	p, arrow left  : previous page
//	q, ctrl-c      : quit
type Browser struct {
	mem    mmu.MemoryManager
	page   int
	status Console
}

// NewBrowser returns a browser over mem, positioned on page 0.
func NewBrowser(mem mmu.MemoryManager) (*Browser, error) {
	if mem.Size() == 0 {
		return nil, errors.New("nothing to browse, no frames mapped")
	}
	return &Browser{mem: mem}, nil
}

// Page returns the current page.
func (b *Browser) Page() int {
	return b.page
}

// move the current page by delta, staying within the mapped pages.
// Returns false when the page didn't change.
func (b *Browser) move(delta int) bool {
	page := b.page + delta
	if page < 0 {
		page = 0
	}
	if page >= b.mem.Size() {
		page = b.mem.Size() - 1
	}
	if page == b.page {
		return false
	}
	b.page = page
	return true
}

// pageRange returns the virtual address range of the current page.
func (b *Browser) pageRange() (start, end uint16) {
	start = uint16(b.page << 8)
	return start, start | 0xff
}

func (b *Browser) title() string {
	start, end := b.pageRange()
	return fmt.Sprintf("Page %d of %d [%04x-%04x]", b.page, b.mem.Size(), start, end)
}

// Run opens the terminal UI and blocks until the user quits.
func (b *Browser) Run() error {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return errors.Wrap(err, "couldn't create gui")
	}
	defer g.Close()

	b.status = NewGui(g, statusView)
	g.SetManagerFunc(b.layout)

	bindings := []struct {
		key     interface{}
		handler func(*gocui.Gui, *gocui.View) error
	}{
		{gocui.KeyCtrlC, quit},
		{'q', quit},
		{'n', b.next},
		{gocui.KeyArrowRight, b.next},
		{'p', b.prev},
		{gocui.KeyArrowLeft, b.prev},
	}
	for _, kb := range bindings {
		if err := g.SetKeybinding("", kb.key, gocui.ModNone, kb.handler); err != nil {
			return errors.Wrap(err, "couldn't set keybinding")
		}
	}

	if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

// gocui layout
func (b *Browser) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	// up -> hexdump of the current page
	if v, err := g.SetView(dumpView, 0, 0, maxX-1, maxY-6); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		b.render(v)
	}

	// down -> status
	if v, err := g.SetView(statusView, 0, maxY-5, maxX-1, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
		v.Autoscroll = true
		fmt.Fprintf(v, "%d frames mapped. n/p: next/previous page, q: quit\n", b.mem.Size())
	}
	return nil
}

func (b *Browser) render(v *gocui.View) {
	v.Clear()
	v.Title = b.title()
	start, end := b.pageRange()
	b.mem.Hexdump(v, start, end)
	glog.V(1).Infof("browser: showing page %d", b.page)
}

func (b *Browser) next(g *gocui.Gui, _ *gocui.View) error {
	return b.turn(g, 1)
}

func (b *Browser) prev(g *gocui.Gui, _ *gocui.View) error {
	return b.turn(g, -1)
}

func (b *Browser) turn(g *gocui.Gui, delta int) error {
	if !b.move(delta) {
		return b.status.WriteConsole("no more pages in that direction")
	}
	v, err := g.View(dumpView)
	if err != nil {
		return err
	}
	b.render(v)
	return nil
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}
