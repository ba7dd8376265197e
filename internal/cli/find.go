package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"cellmap/internal/match"
	"cellmap/internal/textcell"
)

var (
	findTabWidth int
	findMode     string
)

func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.Flags().IntVarP(&findTabWidth, "tab-width", "t", 0, "tab width in cells (default from settings)")
	findCmd.Flags().StringVarP(&findMode, "mode", "m", "", "fuzzy or regex (default from settings)")
}

var findCmd = &cobra.Command{
	Use:   "find PATTERN [FILE]",
	Short: "Filter lines and report the display cell of each match",
	Long:  "Prints LINE:CELL: TEXT for every matching line, where CELL is the display cell of the first matched rune.",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		tab, err := e.tabWidth(findTabWidth)
		if err != nil {
			return err
		}
		mode := findMode
		if mode == "" {
			mode = e.settings.MatchMode
		}
		matcher, err := match.New(mode)
		if err != nil {
			return err
		}
		lines, err := readLines(cmd, argOrEmpty(args, 1))
		if err != nil {
			return err
		}
		results, err := matcher.Find(args[0], lines)
		if err != nil {
			return err
		}

		m := textcell.NewMapper(e.cls)
		w := cmd.OutOrStdout()
		for _, r := range results {
			cell := m.DisplayCell(textcell.NewLine(r.Str), tab, max(r.FirstRune(), 0))
			fmt.Fprintf(w, "%d:%d: %s\n", r.Index+1, cell, r.Str)
		}
		return nil
	},
}
