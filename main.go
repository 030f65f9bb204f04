package main

import (
	"github.com/golang/glog"
	"github.com/tebeka/atexit"

	"paging/cmd"
)

func main() {
	// make sure buffered log lines reach the log files on every exit path
	atexit.Register(glog.Flush)

	atexit.Exit(cmd.Execute())
}
