package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"paging/console"
	"paging/mmu"
)

var (
	dumpTable tableFlags
	dumpStart string
	dumpEnd   string
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Hexdump a range of virtual memory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := dumpTable.build()
		if err != nil {
			return err
		}
		defer m.Close()

		start, err := parseAddress(dumpStart)
		if err != nil {
			return err
		}
		end := uint16(m.Size()*mmu.FrameSize - 1)
		if dumpEnd != "" {
			if end, err = parseAddress(dumpEnd); err != nil {
				return err
			}
		}
		if start > end {
			return errors.Errorf("start %#04x is above end %#04x", start, end)
		}

		m.Hexdump(console.NewSimple(stdout), start, end)
		return nil
	},
}

func init() {
	dumpTable.register(dumpCmd)
	dumpCmd.Flags().StringVarP(&dumpStart, "start", "s", "0", "first address")
	dumpCmd.Flags().StringVarP(&dumpEnd, "end", "e", "", "last address (default: last mapped address)")
	rootCmd.AddCommand(dumpCmd)
}
