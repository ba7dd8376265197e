package settings

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"cellmap/internal/config"
)

const (
	wideAuto = "auto"
	wideOn   = "on"
	wideOff  = "off"
)

// Run launches an interactive form over the current settings and saves the
// result on submit.
func Run(w io.Writer) error {
	cur, err := config.Load()
	if err != nil {
		return err
	}

	tab := strconv.Itoa(cur.TabWidth)
	budget := strconv.Itoa(cur.MaxCells)
	wide := wideAuto
	if cur.DoubleWide != nil {
		wide = wideOff
		if *cur.DoubleWide {
			wide = wideOn
		}
	}

	// Light theme tweaks inspired by freeze/interactive.go
	green := lipgloss.Color("#03BF87")
	theme := huh.ThemeCharm()
	theme.FieldSeparator = lipgloss.NewStyle()
	theme.Blurred.Title = theme.Blurred.Title.Width(18).Foreground(lipgloss.Color("7"))
	theme.Focused.Title = theme.Focused.Title.Width(18).Foreground(green).Bold(true)
	theme.Blurred.SelectedOption = theme.Blurred.SelectedOption.Foreground(lipgloss.Color("243"))
	theme.Focused.SelectedOption = lipgloss.NewStyle().Foreground(green)
	theme.Focused.Base.BorderForeground(green)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Settings").Description("Display cell settings, saved to settings.json"),
			huh.NewInput().
				Title("Tab width").
				Value(&tab).
				Validate(positiveInt(1)),
			huh.NewSelect[string]().
				Title("Double width").
				Options(
					huh.NewOption("detect from terminal", wideAuto),
					huh.NewOption("always", wideOn),
					huh.NewOption("never", wideOff),
				).
				Value(&wide),
			huh.NewSelect[string]().
				Title("Width table").
				Options(
					huh.NewOption("go-runewidth", "runewidth"),
					huh.NewOption("East Asian Width", "eastasian"),
				).
				Value(&cur.WidthTable),
			huh.NewConfirm().
				Title("Draw NUL as space").
				Value(&cur.SubstituteNUL),
			huh.NewInput().
				Title("Max cells").
				Description("0 uses the terminal width").
				Value(&budget).
				Validate(positiveInt(0)),
			huh.NewSelect[string]().
				Title("Find mode").
				Options(
					huh.NewOption("fuzzy", config.MatchFuzzy),
					huh.NewOption("regex", config.MatchRegex),
				).
				Value(&cur.MatchMode),
			huh.NewInput().
				Title("Listen address").
				Value(&cur.Listen),
		),
	).WithTheme(theme).WithWidth(60)

	if err := form.Run(); err != nil {
		return err // form canceled or failed
	}

	next, err := apply(cur, tab, budget, wide)
	if err != nil {
		return err
	}
	if err := config.Save(next); err != nil {
		return err
	}
	p, _ := config.File()
	fmt.Fprintf(w, "\n✓ saved %s\n\n", p)
	return nil
}

// apply folds the string form fields back into s.
func apply(s config.Settings, tab, budget, wide string) (config.Settings, error) {
	var err error
	if s.TabWidth, err = strconv.Atoi(tab); err != nil {
		return s, fmt.Errorf("tab width: %w", err)
	}
	if s.MaxCells, err = strconv.Atoi(budget); err != nil {
		return s, fmt.Errorf("max cells: %w", err)
	}
	switch wide {
	case wideAuto:
		s.DoubleWide = nil
	case wideOn, wideOff:
		v := wide == wideOn
		s.DoubleWide = &v
	default:
		return s, fmt.Errorf("double width: unknown choice %q", wide)
	}
	return s, s.Validate()
}

func positiveInt(least int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return errors.New("enter a whole number")
		}
		if n < least {
			return fmt.Errorf("must be at least %d", least)
		}
		return nil
	}
}
