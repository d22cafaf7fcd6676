package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

// settingsFor parses args into a command carrying the settings flags and
// resolves its settings.
func settingsFor(t *testing.T, configPath string, args ...string) (Settings, error) {
	t.Helper()
	c := New(&bytes.Buffer{}, LogInfo)
	c.configPath = configPath
	cmd := &cobra.Command{Use: "test"}
	addSettingsFlags(cmd, true)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatal(err)
	}
	return c.settings(cmd)
}

func TestSettingsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	s, err := settingsFor(t, "")
	if err != nil {
		t.Fatal(err)
	}
	want := Settings{By: "variance", Threshold: 0.9, NSelect: 1, Format: "text"}
	if s != want {
		t.Errorf("settings = %+v, want %+v", s, want)
	}
}

func TestSettingsPrecedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	writeFile(t, mkdir(t, filepath.Join(home, appName)), "config.toml", `
by = "importance"
threshold = 0.75
n_select = 3
`)

	// Config file from the default location.
	s, err := settingsFor(t, "")
	if err != nil {
		t.Fatal(err)
	}
	if s.By != "importance" || s.Threshold != 0.75 || s.NSelect != 3 {
		t.Errorf("config settings = %+v", s)
	}

	// Environment overrides the file.
	t.Setenv("FEATPRUNE_N_SELECT", "2")
	t.Setenv("FEATPRUNE_FORMAT", "json")
	s, err = settingsFor(t, "")
	if err != nil {
		t.Fatal(err)
	}
	if s.NSelect != 2 || s.Format != "json" || s.Threshold != 0.75 {
		t.Errorf("env settings = %+v", s)
	}

	// Flags override everything.
	s, err = settingsFor(t, "", "--n-select", "5", "--by", "variance")
	if err != nil {
		t.Fatal(err)
	}
	if s.NSelect != 5 || s.By != "variance" {
		t.Errorf("flag settings = %+v", s)
	}
}

func TestSettingsExplicitConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := writeFile(t, t.TempDir(), "custom.toml", "threshold = 0.5\n")

	s, err := settingsFor(t, path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Threshold != 0.5 {
		t.Errorf("threshold = %v, want 0.5", s.Threshold)
	}

	t.Setenv("FEATPRUNE_CONFIG", path)
	s, err = settingsFor(t, "")
	if err != nil {
		t.Fatal(err)
	}
	if s.Threshold != 0.5 {
		t.Errorf("threshold via FEATPRUNE_CONFIG = %v, want 0.5", s.Threshold)
	}
}

func TestSettingsMalformedConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := writeFile(t, t.TempDir(), "bad.toml", "threshold = [\n")
	if _, err := settingsFor(t, path); err == nil {
		t.Error("expected error for malformed config")
	}
}

func mkdir(t *testing.T, dir string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	return dir
}
