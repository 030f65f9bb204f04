package console

import (
	"fmt"
	"strings"

	"github.com/jroimartin/gocui"
)

// Gui console appends status lines to a gocui view
type Gui struct {
	g    *gocui.Gui // main gocui GUI object
	view string     // name of the view the console writes to
}

// NewGui returns a console writing to the named view of g.
func NewGui(g *gocui.Gui, view string) *Gui {
	c := new(Gui)
	c.g = g
	c.view = view
	return c
}

// WriteConsole displays a string on the console.
// gocui only allows touching views from the main loop, so the lines are
// handed over through Update and written in one go.
func (c *Gui) WriteConsole(msg string) error {
	var lines []string
	for _, line := range strings.Split(msg, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil
	}

	c.g.Update(func(g *gocui.Gui) error {
		v, err := g.View(c.view)
		if err != nil {
			return err
		}
		for _, line := range lines {
			fmt.Fprintln(v, line)
		}
		return nil
	})
	return nil
}
