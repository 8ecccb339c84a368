package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_FileOverDefaults(t *testing.T) {
	path := writeConfig(t, `
[editor]
tab_width = 8
undo_limit = 5
status_bar = false

[font]
family = "Serif"
bold = true
fg = "#ff0000"

[plugins.autosave]
enabled = true
interval = "30s"

[mystery]
x = 1
`)
	cfg, err := LoadConfig(path, nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Editor.TabWidth != 8 || cfg.Editor.UndoLimit != 5 || cfg.Editor.StatusBar {
		t.Fatalf("editor=%+v", cfg.Editor)
	}
	// Keys not in the file keep their defaults.
	if cfg.Editor.ScrollOff != DefaultScrollOff || !cfg.Editor.SyntaxHighlight || cfg.Font.Size != 12 {
		t.Fatalf("defaults lost: %+v %+v", cfg.Editor, cfg.Font)
	}
	if cfg.Source() != path {
		t.Fatalf("Source=%q", cfg.Source())
	}
	if got := cfg.UndecodedKeys(); !reflect.DeepEqual(got, []string{"mystery.x"}) && !reflect.DeepEqual(got, []string{"mystery", "mystery.x"}) {
		t.Fatalf("undecoded=%v", got)
	}

	auto := cfg.PluginConfig("autosave")
	if auto["enabled"] != true || auto["interval"] != "30s" {
		t.Fatalf("plugin table=%v", auto)
	}

	style, err := cfg.FontStyle()
	if err != nil {
		t.Fatalf("FontStyle: %v", err)
	}
	if style.Family != "Serif" || !style.Bold() || style.Fg.Value != tcell.NewRGBColor(255, 0, 0) {
		t.Fatalf("style=%+v", style)
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "none.toml"), nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !reflect.DeepEqual(cfg.Editor, NewDefaultConfig().Editor) {
		t.Fatalf("editor=%+v", cfg.Editor)
	}
}

func TestLoadConfig_ParseError(t *testing.T) {
	path := writeConfig(t, "[editor\ntab_width = ")
	cfg, err := LoadConfig(path, nil)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if cfg == nil || cfg.Editor.TabWidth != DefaultTabWidth {
		t.Fatalf("expected usable defaults alongside the error")
	}
}

func TestLoadConfig_ValidateResetsBadValues(t *testing.T) {
	path := writeConfig(t, "[editor]\ntab_width = -2\nundo_limit = 0\ntheme = \"\"\n[font]\nsize = -1\n")
	cfg, _ := LoadConfig(path, nil)
	if cfg.Editor.TabWidth != DefaultTabWidth || cfg.Editor.UndoLimit != DefaultUndoLimit || cfg.Editor.Theme != DefaultTheme || cfg.Font.Size != 12 {
		t.Fatalf("validate left %+v %+v", cfg.Editor, cfg.Font)
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "[editor]\ntab_width = 8\nsystem_clipboard = true\n")
	f := NewFlags("tidepad")
	rest, err := f.Parse([]string{"-tabwidth", "2", "-system-clipboard=false", "-log-tags", "core, find ,", "-undo-limit", "7", "notes.txt"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !reflect.DeepEqual(rest, []string{"notes.txt"}) {
		t.Fatalf("rest=%v", rest)
	}

	cfg, err := LoadConfig(path, f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Editor.TabWidth != 2 || cfg.Editor.SystemClipboard || cfg.Editor.UndoLimit != 7 {
		t.Fatalf("editor=%+v", cfg.Editor)
	}
	if !reflect.DeepEqual(cfg.Logger.EnabledTags, []string{"core", "find"}) {
		t.Fatalf("tags=%v", cfg.Logger.EnabledTags)
	}
}

func TestFontStyleBadColour(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Font.Bg = "plaid"
	style, err := cfg.FontStyle()
	if err == nil {
		t.Fatalf("expected error for bad colour")
	}
	if !style.Bg.IsDefault() {
		t.Fatalf("bad colour should fall back to default")
	}
}
