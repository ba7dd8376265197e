package cli

import (
	"github.com/spf13/cobra"

	"cellmap/internal/app"
	"cellmap/internal/match"
	"cellmap/internal/system"
	"cellmap/internal/ui"
)

var viewTabWidth int

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().IntVarP(&viewTabWidth, "tab-width", "t", 0, "tab width in cells (default from settings)")
}

var viewCmd = &cobra.Command{
	Use:   "view FILE",
	Short: "Open the full-screen cell viewer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runViewer(cmd, args[0])
	},
}

func runViewer(cmd *cobra.Command, path string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	tab, err := e.tabWidth(viewTabWidth)
	if err != nil {
		return err
	}
	lines, err := readLines(cmd, path)
	if err != nil {
		return err
	}
	m, err := match.New(e.settings.MatchMode)
	if err != nil {
		return err
	}
	system.Logger.Debug("opening viewer", "path", path, "lines", len(lines), "tab", tab)
	return app.Start(ui.Options{
		Path:       path,
		Lines:      lines,
		Classifier: e.cls,
		TabStride:  tab,
		Matcher:    m,
	})
}
