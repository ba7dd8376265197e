package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cellmap/internal/system"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "cellmap [FILE]",
	Short: "cellmap – map text offsets to terminal display cells",
	Long: "cellmap renders lines into bounded terminal cells and maps between rune offsets\n" +
		"and display cells, accounting for tabs and double-width runes.",
	Args: cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		system.SetVerbose(verbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: open the viewer when a file is given
		if len(args) == 0 {
			return cmd.Help()
		}
		return runViewer(cmd, args[0])
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
