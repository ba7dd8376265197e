package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"cellmap/internal/textcell"
)

var (
	locateTabWidth int
	locateCell     int
	locateOffset   int
	locateBeyond   bool
	locateEscapes  bool
	locateJSON     bool
)

type locateResult struct {
	Text      string `json:"text"`
	TabWidth  int    `json:"tab_width"`
	Cell      int    `json:"cell"`
	Offset    int    `json:"offset"`
	Remainder int    `json:"remainder"`
	Width     int    `json:"width"`
}

func init() {
	rootCmd.AddCommand(locateCmd)
	locateCmd.Flags().IntVarP(&locateTabWidth, "tab-width", "t", 0, "tab width in cells (default from settings)")
	locateCmd.Flags().IntVar(&locateCell, "cell", 0, "display cell to resolve to a rune offset")
	locateCmd.Flags().IntVar(&locateOffset, "offset", 0, "rune offset to resolve to a display cell")
	locateCmd.Flags().BoolVar(&locateBeyond, "beyond", false, "allow offsets past the end of the text")
	locateCmd.Flags().BoolVarP(&locateEscapes, "escapes", "e", false, `interpret Go escapes such as \t in TEXT`)
	locateCmd.Flags().BoolVar(&locateJSON, "json", false, "output JSON")
}

var locateCmd = &cobra.Command{
	Use:   "locate TEXT (--cell N | --offset N)",
	Short: "Map between rune offsets and display cells",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		byCell, byOffset := cmd.Flags().Changed("cell"), cmd.Flags().Changed("offset")
		if byCell == byOffset {
			return errors.New("give exactly one of --cell or --offset")
		}
		text := args[0]
		if locateEscapes {
			s, err := strconv.Unquote(`"` + text + `"`)
			if err != nil {
				return fmt.Errorf("--escapes: %w", err)
			}
			text = s
		}
		e, err := loadEnv()
		if err != nil {
			return err
		}
		tab, err := e.tabWidth(locateTabWidth)
		if err != nil {
			return err
		}

		m := textcell.NewMapper(e.cls)
		line := textcell.NewLine(text)
		res := locateResult{Text: text, TabWidth: tab, Width: m.Width(line, tab)}
		if byCell {
			res.Cell = locateCell
			res.Offset, res.Remainder = m.BufferOffset(line, tab, locateCell, locateBeyond)
		} else {
			res.Offset = locateOffset
			res.Cell = m.DisplayCell(line, tab, locateOffset)
		}

		w := cmd.OutOrStdout()
		if locateJSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}
		if byCell {
			fmt.Fprintf(w, "cell %d -> offset %d remainder %d\n", res.Cell, res.Offset, res.Remainder)
		} else {
			fmt.Fprintf(w, "offset %d -> cell %d\n", res.Offset, res.Cell)
		}
		return nil
	},
}
