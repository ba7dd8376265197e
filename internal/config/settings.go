package config

import (
	"errors"
	"fmt"

	"cellmap/internal/store"
	"cellmap/internal/system"
	"cellmap/internal/textcell"
)

const (
	DefaultTabWidth = 4
	DefaultListen   = "127.0.0.1:8790"

	MatchFuzzy = "fuzzy"
	MatchRegex = "regex"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid settings")

// Settings is the persisted user configuration.
type Settings struct {
	TabWidth int `json:"tab_width" jsonschema:"minimum=1,default=4,description=Cells a tab advances"`
	// nil means detect from the terminal
	DoubleWide    *bool  `json:"double_wide,omitempty" jsonschema:"description=Draw wide runes across two cells; omitted means auto-detect"`
	SubstituteNUL bool   `json:"substitute_nul" jsonschema:"description=Draw NUL as a space"`
	WidthTable    string `json:"width_table" jsonschema:"enum=runewidth,enum=eastasian,default=runewidth"`
	MaxCells      int    `json:"max_cells" jsonschema:"minimum=0,description=Row budget in cells; 0 uses the terminal width"`
	MatchMode     string `json:"match_mode" jsonschema:"enum=fuzzy,enum=regex,default=fuzzy"`
	Listen        string `json:"listen" jsonschema:"default=127.0.0.1:8790,description=Address for cellmap serve"`
}

// Defaults returns the settings used when no file exists.
func Defaults() Settings {
	return Settings{
		TabWidth:   DefaultTabWidth,
		WidthTable: string(textcell.TableRuneWidth),
		MatchMode:  MatchFuzzy,
		Listen:     DefaultListen,
	}
}

// Load reads the settings file. A missing file yields defaults; fields absent
// from the file keep their default values.
func Load() (Settings, error) {
	s := Defaults()
	p, err := File()
	if err != nil {
		return s, err
	}
	found, err := store.LoadJSON(p, &s)
	if err != nil {
		return Defaults(), fmt.Errorf("read %s: %w", p, err)
	}
	if found {
		system.Logger.Debug("loaded settings", "path", p)
	}
	if err := s.Validate(); err != nil {
		return Defaults(), fmt.Errorf("%s: %w", p, err)
	}
	return s, nil
}

// Save validates s and writes it to the settings file.
func Save(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	p, err := File()
	if err != nil {
		return err
	}
	return store.SaveJSON(p, s)
}

// Validate reports the first out-of-range field.
func (s Settings) Validate() error {
	if s.TabWidth < 1 {
		return fmt.Errorf("%w: tab_width must be at least 1, got %d", ErrInvalid, s.TabWidth)
	}
	if s.MaxCells < 0 {
		return fmt.Errorf("%w: max_cells must not be negative, got %d", ErrInvalid, s.MaxCells)
	}
	switch textcell.Table(s.WidthTable) {
	case textcell.TableRuneWidth, textcell.TableEastAsian:
	default:
		return fmt.Errorf("%w: unknown width_table %q", ErrInvalid, s.WidthTable)
	}
	switch s.MatchMode {
	case MatchFuzzy, MatchRegex:
	default:
		return fmt.Errorf("%w: unknown match_mode %q", ErrInvalid, s.MatchMode)
	}
	return nil
}

// Capability resolves the classifier capability, using host when
// double_wide is not set.
func (s Settings) Capability(host system.Host) textcell.Capability {
	dw := host.DoubleWide
	if s.DoubleWide != nil {
		dw = *s.DoubleWide
	}
	return textcell.Capability{
		DoubleWide:    dw,
		SubstituteNUL: s.SubstituteNUL,
		Table:         textcell.Table(s.WidthTable),
	}
}

// Budget returns the row budget: max_cells, else the host width, else 80.
func (s Settings) Budget(host system.Host) int {
	switch {
	case s.MaxCells > 0:
		return s.MaxCells
	case host.Width > 0:
		return host.Width
	default:
		return 80
	}
}
