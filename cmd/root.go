// Package cmd provides the command-line interface of the paging tool.
package cmd

import (
	"flag"
	"io"
	"os"

	"github.com/spf13/cobra"

	"paging/logger"
)

var (
	logDir    string
	verbosity int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "paging",
	Short: "Paged MMU over a 16 bit address space with 256 byte frames.",
	Long: `paging translates 16 bit virtual addresses into independently allocated ` +
		`256 byte frames. It runs the standard MMU scenarios (run), dumps memory ` +
		`(dump) and browses it page by page in the terminal (browse).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Setup(logDir, verbosity)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "write logs to this directory instead of stderr")
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbose", "v", 0, "log verbosity")
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	// glog prefixes every line with a warning until flag.Parse was called
	flag.CommandLine.Parse(nil)

	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

// stdout is where commands print, swapped in tests
var stdout io.Writer = os.Stdout
