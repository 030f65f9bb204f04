package console

import (
	"io"
	"strings"
)

// Simple console type definition
type Simple struct {
	out         io.Writer
	currentLine int // number of lines written so far
}

// NewSimple returns a console writing to out.
func NewSimple(out io.Writer) *Simple {
	c := new(Simple)
	c.out = out
	return c
}

// Write passes raw output (hexdumps) through untouched, so a Simple console
// can be handed to anything expecting an io.Writer.
func (c *Simple) Write(p []byte) (int, error) {
	c.currentLine += strings.Count(string(p), "\n")
	return c.out.Write(p)
}

// WriteConsole writes every non empty line of msg
func (c *Simple) WriteConsole(msg string) error {
	for _, line := range strings.Split(msg, "\n") {
		if line != "" {
			if _, err := io.WriteString(c.out, line+"\n"); err != nil {
				return err
			}
			c.currentLine++
		}
	}
	return nil
}

// Lines returns the number of lines written
func (c *Simple) Lines() int {
	return c.currentLine
}
