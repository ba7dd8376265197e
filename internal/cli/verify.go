package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"cellmap/internal/system"
	"cellmap/internal/textcell"
	"cellmap/internal/verify"
)

var (
	verifyTabWidth int
	verifyMaxCells int
)

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().IntVarP(&verifyTabWidth, "tab-width", "t", 0, "tab width in cells (default from settings)")
	verifyCmd.Flags().IntVarP(&verifyMaxCells, "max-cells", "w", 0, "cells per row (default from settings or terminal width)")
}

var verifyCmd = &cobra.Command{
	Use:   "verify [FILE]",
	Short: "Cross-check rendered widths against a terminal emulator",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		tab, err := e.tabWidth(verifyTabWidth)
		if err != nil {
			return err
		}
		width, err := e.budget(verifyMaxCells)
		if err != nil {
			return err
		}
		lines, err := readLines(cmd, argOrEmpty(args, 0))
		if err != nil {
			return err
		}

		bad := verify.Lines(textcell.NewRenderer(e.cls), textcell.NewMapper(e.cls), toLines(lines), tab, width)
		w := cmd.OutOrStdout()
		for _, m := range bad {
			fmt.Fprintln(w, m.String())
		}
		if len(bad) > 0 {
			system.Logger.Warn("width mismatch", "lines", len(bad), "of", len(lines))
			return fmt.Errorf("%d of %d lines disagree with the terminal", len(bad), len(lines))
		}
		fmt.Fprintf(w, "ok: %d lines\n", len(lines))
		return nil
	},
}
