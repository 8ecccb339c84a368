package theme

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestGetStyleFallbacks(t *testing.T) {
	th := &Theme{Name: "t", Styles: map[string]tcell.Style{
		"Default": tcell.StyleDefault.Foreground(tcell.ColorWhite),
		"keyword": tcell.StyleDefault.Foreground(tcell.ColorBlue),
	}}
	if th.GetStyle("keyword.control") != th.Styles["keyword"] {
		t.Fatalf("expected base-name fallback")
	}
	if th.GetStyle("nothing") != th.Styles["Default"] {
		t.Fatalf("expected Default fallback")
	}
	if !th.HasStyle("keyword.x") || th.HasStyle("string") {
		t.Fatalf("HasStyle wrong")
	}
}

func TestBuiltinsDefineUIStyles(t *testing.T) {
	for _, th := range []*Theme{&Default, &Dark, &Light} {
		for _, name := range []string{"Default", "Selection", "MenuBar", "Dialog", "StatusBar", "keyword", "comment"} {
			if _, ok := th.Styles[name]; !ok {
				t.Fatalf("theme %s missing %s", th.Name, name)
			}
		}
	}
}

func TestParseThemeInheritAndOverride(t *testing.T) {
	th, err := parseTheme(`
name = "Solar"
inherit = "dark"

[styles.Default]
fg = "#ffffff"

[styles.keyword]
fg = "red"
bold = false
`, "solar.toml")
	if err != nil {
		t.Fatalf("parseTheme: %v", err)
	}
	if th.Name != "Solar" {
		t.Fatalf("name=%q", th.Name)
	}
	fg, _, attrs := th.Styles["keyword"].Decompose()
	if fg != tcell.ColorRed || attrs&tcell.AttrBold != 0 {
		t.Fatalf("keyword fg=%v attrs=%v", fg, attrs)
	}
	if _, ok := th.Styles["StatusBar"]; !ok {
		t.Fatalf("inherited styles missing")
	}
	fg, _, _ = th.Styles["Default"].Decompose()
	if fg != tcell.NewRGBColor(255, 255, 255) {
		t.Fatalf("Default fg=%v", fg)
	}
}

func TestParseThemeErrors(t *testing.T) {
	if _, err := parseTheme(`inherit = "nope"`, "x.toml"); err == nil {
		t.Fatalf("expected error for unknown parent")
	}
	if _, err := parseTheme("name = ", "x.toml"); err == nil {
		t.Fatalf("expected TOML error")
	}
	th, err := parseTheme("[styles.comment]\nfg = \"chartreuse-ish\"\n", "named.toml")
	if err != nil {
		t.Fatalf("bad style should be skipped, got %v", err)
	}
	if th.Name != "named" {
		t.Fatalf("name should default to file name, got %q", th.Name)
	}
	if _, ok := th.Styles["comment"]; ok {
		t.Fatalf("invalid style should be skipped")
	}
}

func TestManager(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ocean.toml"), []byte("name = \"Ocean\"\n[styles.Default]\nbg = \"navy\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.toml"), []byte("name = "), 0644); err != nil {
		t.Fatal(err)
	}

	m := NewManager(dir)
	if m.Current().Name != "default" {
		t.Fatalf("initial theme=%q", m.Current().Name)
	}
	want := []string{"Ocean", "dark", "default", "light"}
	if got := m.ListThemes(); !reflect.DeepEqual(got, want) {
		t.Fatalf("ListThemes=%v, want %v", got, want)
	}
	if err := m.SetTheme("OCEAN"); err != nil || m.Current().Name != "Ocean" {
		t.Fatalf("SetTheme=%v current=%q", err, m.Current().Name)
	}
	if err := m.SetTheme("missing"); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
}

func TestManagerMissingDir(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "absent"))
	if len(m.ListThemes()) != 3 {
		t.Fatalf("expected only built-ins, got %v", m.ListThemes())
	}
}
