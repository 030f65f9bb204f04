package logger

import (
	"flag"
	"os"
	"strconv"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Setup points glog either at stderr (empty path) or at log files in the
// "path" directory, and sets the verbosity used by the V(n) calls.
// glog registers its flags on flag.CommandLine, Setup only changes their values.
func Setup(path string, verbosity int) error {
	if err := flag.Set("v", strconv.Itoa(verbosity)); err != nil {
		return errors.Wrap(err, "can't set log verbosity")
	}

	if len(path) == 0 {
		return errors.Wrap(flag.Set("logtostderr", "true"), "can't log to stderr")
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return errors.Wrapf(err, "can't create log directory %s", path)
	}
	if err := flag.Set("logtostderr", "false"); err != nil {
		return errors.Wrap(err, "can't log to files")
	}
	if err := flag.Set("log_dir", path); err != nil {
		return errors.Wrapf(err, "can't log to %s", path)
	}
	glog.Infof("Initializing paging log in %s", path)
	return nil
}
