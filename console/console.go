package console

/*
Everything the paging tool prints for humans goes through a Console:
scenario results and hexdumps in "run" and "dump", status lines in the
interactive browser.

	- Simple : plain line output to a writer (stdout)
	- Gui    : lines appended to a gocui view
*/

// Console is the output sink for status messages
type Console interface {
	WriteConsole(msg string) error
}
