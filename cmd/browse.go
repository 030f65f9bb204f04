package cmd

import (
	"github.com/spf13/cobra"

	"paging/console"
)

var browseTable tableFlags

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse memory page by page in the terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := browseTable.build()
		if err != nil {
			return err
		}
		defer m.Close()

		b, err := console.NewBrowser(m)
		if err != nil {
			return err
		}
		return b.Run()
	},
}

func init() {
	browseTable.register(browseCmd)
	rootCmd.AddCommand(browseCmd)
}
