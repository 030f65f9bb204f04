package cmd

import (
	"os"
	"strconv"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"paging/frames"
	"paging/mmu"
)

// tableFlags describe the frame table built by dump and browse
type tableFlags struct {
	count string
	fill  string
	file  string
}

func (f *tableFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.count, "frames", "f", strconv.Itoa(frames.DefaultCount), "number of frames (1-256)")
	cmd.Flags().StringVar(&f.fill, "fill", "0", "byte every frame is filled with")
	cmd.Flags().StringVar(&f.file, "file", "", "load the file at virtual address 0")
}

// build allocates and fills the frames and returns an MMU over them
func (f *tableFlags) build() (*mmu.MMU, error) {
	n, err := frames.ParseCount(f.count)
	if err != nil {
		return nil, err
	}
	fill, err := strconv.ParseUint(f.fill, 0, 8)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid fill byte %s", f.fill)
	}

	table, err := frames.New(n)
	if err != nil {
		return nil, err
	}
	frames.Fill(table, byte(fill))

	m, err := mmu.New(table, n)
	if err != nil {
		return nil, err
	}

	if f.file != "" {
		file, err := os.Open(f.file)
		if err != nil {
			return nil, errors.Wrap(err, "can't load file")
		}
		defer file.Close()

		loaded, err := frames.Load(m, 0, file)
		if err != nil {
			return nil, errors.Wrapf(err, "loading %s stopped after %d bytes", f.file, loaded)
		}
		glog.Infof("loaded %d bytes from %s", loaded, f.file)
	}
	return m, nil
}

// parseAddress parses a 16 bit virtual address, base prefixes accepted
func parseAddress(s string) (uint16, error) {
	a, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid address %s", s)
	}
	return uint16(a), nil
}
