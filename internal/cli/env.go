package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"cellmap/internal/config"
	"cellmap/internal/system"
	"cellmap/internal/textcell"
	"cellmap/internal/textview"
)

// env is the resolved configuration shared by the commands.
type env struct {
	settings config.Settings
	host     system.Host
	cls      textcell.Classifier
}

func loadEnv() (env, error) {
	s, err := config.Load()
	if err != nil {
		return env{}, err
	}
	host := system.Probe()
	capab := s.Capability(host)
	system.Logger.Debug("environment",
		"terminal", host.Terminal, "width", host.Width,
		"double_wide", capab.DoubleWide, "table", capab.Table, "substitute_nul", capab.SubstituteNUL)
	return env{settings: s, host: host, cls: textcell.NewClassifier(capab)}, nil
}

// tabWidth returns flag when set, else the configured width.
func (e env) tabWidth(flag int) (int, error) {
	if flag == 0 {
		return e.settings.TabWidth, nil
	}
	if flag < 0 {
		return 0, fmt.Errorf("--tab-width: %w", textcell.ErrTabStride)
	}
	return flag, nil
}

// budget returns flag when set, else the configured or terminal width.
func (e env) budget(flag int) (int, error) {
	if flag < 0 {
		return 0, fmt.Errorf("--max-cells must not be negative, got %d", flag)
	}
	if flag > 0 {
		return flag, nil
	}
	return e.settings.Budget(e.host), nil
}

// readLines reads path, or stdin when path is empty or "-".
func readLines(cmd *cobra.Command, path string) ([]string, error) {
	var (
		b   []byte
		err error
	)
	if path == "" || path == "-" {
		b, err = io.ReadAll(cmd.InOrStdin())
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return textview.SplitLines(string(b)), nil
}

func toLines(ss []string) []textcell.Line {
	out := make([]textcell.Line, len(ss))
	for i, s := range ss {
		out[i] = textcell.NewLine(s)
	}
	return out
}

func argOrEmpty(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
