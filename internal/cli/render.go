package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"cellmap/internal/system"
	"cellmap/internal/textcell"
	"cellmap/internal/textview"
)

var (
	renderTabWidth int
	renderMaxCells int
	renderPadding  int
	renderScroll   int
	renderShared   bool
	renderLimit    int
)

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().IntVarP(&renderTabWidth, "tab-width", "t", 0, "tab width in cells (default from settings)")
	renderCmd.Flags().IntVarP(&renderMaxCells, "max-cells", "w", 0, "cells per row (default from settings or terminal width)")
	renderCmd.Flags().IntVar(&renderPadding, "padding", 0, "blank cells before each row")
	renderCmd.Flags().IntVar(&renderScroll, "scroll", 0, "scroll each row this many cells to the right")
	renderCmd.Flags().BoolVar(&renderShared, "shared", false, "prefix rows with borrowed/owned")
	renderCmd.Flags().IntVar(&renderLimit, "cell-limit", 0, "largest row buffer in cells (default 1048576)")
}

var renderCmd = &cobra.Command{
	Use:   "render [FILE]",
	Short: "Render lines into bounded display cells",
	Long:  "Expands tabs, pads wide runes and truncates each line to the cell budget. Reads stdin when FILE is omitted or -.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if renderPadding < 0 || renderScroll < 0 {
			return errors.New("--padding and --scroll must not be negative")
		}
		if renderPadding > 0 && renderScroll > 0 {
			return errors.New("use either --padding or --scroll")
		}
		e, err := loadEnv()
		if err != nil {
			return err
		}
		tab, err := e.tabWidth(renderTabWidth)
		if err != nil {
			return err
		}
		width, err := e.budget(renderMaxCells)
		if err != nil {
			return err
		}
		lines, err := readLines(cmd, argOrEmpty(args, 0))
		if err != nil {
			return err
		}

		m, r := textcell.NewMapper(e.cls), textcell.NewRenderer(e.cls)
		w := cmd.OutOrStdout()
		var out textcell.Cells
		out.SetLimit(renderLimit)
		for i, line := range toLines(lines) {
			// start each row released so plain rows can borrow
			out.Release()
			if renderScroll > 0 {
				err = textview.ScrollLine(m, r, line, tab, renderScroll, width, &out)
			} else {
				err = r.Render(line, renderPadding, tab, width, &out)
			}
			if errors.Is(err, textcell.ErrAllocation) {
				// leave the row blank and carry on
				system.Logger.Warn("skipping line", "line", i+1, "err", err)
				fmt.Fprintln(w)
				continue
			}
			if err != nil {
				return fmt.Errorf("line %d: %w", i+1, err)
			}
			if renderShared {
				fmt.Fprintf(w, "%-8s ", out.Ownership())
			}
			fmt.Fprintln(w, r.Terminal(&out))
		}
		return nil
	},
}
