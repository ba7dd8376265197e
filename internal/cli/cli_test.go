package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	tu "cellmap/internal/testutil"
	appver "cellmap/internal/version"
)

// resetFlags restores every flag so runs do not leak into each other.
func resetFlags(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	tu.WithConfigHome(t)
	t.Cleanup(tu.WithEnv(t, "TERM", "xterm-256color"))
	t.Cleanup(tu.WithEnv(t, "CELLMAP_NARROW", ""))
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if out != appver.AppVersion+"\n" {
		t.Fatalf("unexpected version output %q", out)
	}
}

func TestRender_Shared(t *testing.T) {
	out, err := run(t, "a\tb\nplain\n", "render", "-t", "4", "-w", "10", "--shared")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	want := "owned    a    b\nborrowed plain\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestRender_ScrollCutsWideRune(t *testing.T) {
	out, err := run(t, "日本語x\n", "render", "-w", "4", "--scroll", "3")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if out != " 語x\n" {
		t.Fatalf("got %q", out)
	}
}

func TestRender_SkipsLinesThatCannotGrow(t *testing.T) {
	out, err := run(t, "\t\t\t\nok\n", "render", "-t", "4", "--cell-limit", "8")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if out != "\nok\n" {
		t.Fatalf("got %q", out)
	}
}

func TestRender_RejectsPaddingWithScroll(t *testing.T) {
	if _, err := run(t, "x\n", "render", "--padding", "1", "--scroll", "1"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLocate(t *testing.T) {
	out, err := run(t, "", "locate", "-e", `a\tb`, "--cell", "3")
	if err != nil {
		t.Fatalf("locate error: %v", err)
	}
	if out != "cell 3 -> offset 2 remainder 2\n" {
		t.Fatalf("got %q", out)
	}

	out, err = run(t, "", "locate", "-e", `a\tb`, "--offset", "2")
	if err != nil {
		t.Fatalf("locate error: %v", err)
	}
	if out != "offset 2 -> cell 5\n" {
		t.Fatalf("got %q", out)
	}

	out, err = run(t, "", "locate", "ab", "--cell", "10", "--beyond", "--json")
	if err != nil {
		t.Fatalf("locate error: %v", err)
	}
	var res locateResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("bad json %q: %v", out, err)
	}
	if res.Offset != 10 || res.Remainder != 0 || res.Width != 2 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestLocate_Errors(t *testing.T) {
	if _, err := run(t, "", "locate", "ab"); err == nil {
		t.Fatalf("expected error without --cell/--offset")
	}
	if _, err := run(t, "", "locate", "ab", "--cell", "1", "--offset", "1"); err == nil {
		t.Fatalf("expected error with both modes")
	}
	if _, err := run(t, "", "locate", "ab", "--cell", "1", "-t", "-1"); err == nil {
		t.Fatalf("expected error for negative tab width")
	}
}

func TestFind(t *testing.T) {
	out, err := run(t, "foo\n\tbar\n", "find", "bar")
	if err != nil {
		t.Fatalf("find error: %v", err)
	}
	if out != "2:4: \tbar\n" {
		t.Fatalf("got %q", out)
	}

	out, err = run(t, "foo\n\tbar\n", "find", "-m", "regex", "o+$")
	if err != nil {
		t.Fatalf("find error: %v", err)
	}
	if out != "1:1: foo\n" {
		t.Fatalf("got %q", out)
	}

	if _, err := run(t, "", "find", "-m", "glob", "x"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestVerify(t *testing.T) {
	out, err := run(t, "plain\na\tb\n", "verify", "-w", "20")
	if err != nil {
		t.Fatalf("verify error: %v (%s)", err, out)
	}
	if out != "ok: 2 lines\n" {
		t.Fatalf("got %q", out)
	}
}

func TestConfig(t *testing.T) {
	out, err := run(t, "", "config")
	if err != nil {
		t.Fatalf("config error: %v", err)
	}
	if !strings.HasPrefix(out, "# ") || !strings.Contains(out, `"tab_width": 4`) {
		t.Fatalf("unexpected config output:\n%s", out)
	}

	out, err = run(t, "", "config", "schema")
	if err != nil {
		t.Fatalf("config schema error: %v", err)
	}
	if !strings.Contains(out, `"tab_width"`) {
		t.Fatalf("schema missing tab_width:\n%s", out)
	}
}
