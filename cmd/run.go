package cmd

import (
	"github.com/spf13/cobra"

	"paging/console"
	"paging/frames"
	"paging/scenario"
)

var runCmd = &cobra.Command{
	Use:   "run [frames]",
	Short: "Run the standard MMU scenarios over a table of frames (default 4)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := frames.DefaultCount
		if len(args) == 1 {
			var err error
			if n, err = frames.ParseCount(args[0]); err != nil {
				return err
			}
		}

		// frames are allocated here for simplicity
		table, err := frames.New(n)
		if err != nil {
			return err
		}

		out := console.NewSimple(stdout)
		if err := scenario.RunAll(out, scenario.Default(table)...); err != nil {
			return err
		}
		return out.WriteConsole("all scenarios passed")
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
