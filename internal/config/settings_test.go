package config

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"cellmap/internal/system"
	tu "cellmap/internal/testutil"
	"cellmap/internal/textcell"
)

func TestFile_DefaultAndOverride(t *testing.T) {
	tmp := tu.WithConfigHome(t)

	p, err := File()
	if err != nil {
		t.Fatalf("File error: %v", err)
	}
	if filepath.Base(p) != "settings.json" || filepath.Base(filepath.Dir(p)) != "cellmap" {
		t.Fatalf("unexpected settings path %q", p)
	}

	want := filepath.Join(tmp, "custom.json")
	defer tu.WithEnv(t, EnvConfig, want)()
	p, err = File()
	if err != nil {
		t.Fatalf("File error: %v", err)
	}
	if p != want {
		t.Fatalf("got %q, want %q", p, want)
	}
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	tu.WithConfigHome(t)
	s, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s != Defaults() {
		t.Fatalf("expected defaults, got %+v", s)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	tu.WithConfigHome(t)
	dw := false
	in := Defaults()
	in.TabWidth = 8
	in.DoubleWide = &dw
	in.MatchMode = MatchRegex
	if err := Save(in); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	out, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if out.TabWidth != 8 || out.MatchMode != MatchRegex || out.DoubleWide == nil || *out.DoubleWide {
		t.Fatalf("unexpected settings after round trip: %+v", out)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	tmp := tu.WithConfigHome(t)
	p := tu.WriteFile(t, tmp, "partial.json", `{"tab_width": 2}`)
	defer tu.WithEnv(t, EnvConfig, p)()

	s, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s.TabWidth != 2 || s.Listen != DefaultListen || s.WidthTable != "runewidth" {
		t.Fatalf("unexpected settings: %+v", s)
	}
}

func TestLoad_RejectsInvalid(t *testing.T) {
	tmp := tu.WithConfigHome(t)
	p := tu.WriteFile(t, tmp, "bad.json", `{"tab_width": 0}`)
	defer tu.WithEnv(t, EnvConfig, p)()

	if _, err := Load(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Settings)
		ok   bool
	}{
		{"defaults", func(*Settings) {}, true},
		{"zero tab", func(s *Settings) { s.TabWidth = 0 }, false},
		{"negative budget", func(s *Settings) { s.MaxCells = -1 }, false},
		{"east asian table", func(s *Settings) { s.WidthTable = "eastasian" }, true},
		{"unknown table", func(s *Settings) { s.WidthTable = "wcwidth" }, false},
		{"unknown match", func(s *Settings) { s.MatchMode = "glob" }, false},
	}
	for _, c := range cases {
		s := Defaults()
		c.mut(&s)
		err := s.Validate()
		if (err == nil) != c.ok {
			t.Fatalf("%s: Validate() = %v", c.name, err)
		}
	}
}

func TestCapabilityAndBudget(t *testing.T) {
	s := Defaults()
	host := system.Host{DoubleWide: true, Width: 120}

	c := s.Capability(host)
	if !c.DoubleWide || c.Table != textcell.TableRuneWidth {
		t.Fatalf("unexpected capability %+v", c)
	}
	off := false
	s.DoubleWide = &off
	if s.Capability(host).DoubleWide {
		t.Fatalf("explicit double_wide=false must win over the host")
	}

	if got := s.Budget(host); got != 120 {
		t.Fatalf("budget from host: got %d", got)
	}
	if got := s.Budget(system.Host{}); got != 80 {
		t.Fatalf("fallback budget: got %d", got)
	}
	s.MaxCells = 33
	if got := s.Budget(host); got != 33 {
		t.Fatalf("explicit budget: got %d", got)
	}
}

func TestSchema(t *testing.T) {
	b, err := MarshalSchema(Schema())
	if err != nil {
		t.Fatalf("MarshalSchema error: %v", err)
	}
	out := string(b)
	for _, want := range []string{`"tab_width"`, `"match_mode"`, `"cellmap settings"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("schema missing %s:\n%s", want, out)
		}
	}
}
