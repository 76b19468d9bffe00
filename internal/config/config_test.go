package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// isolate points every default location at a temp dir and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("HOME", dir)
	for _, k := range []string{EnvDataDir, EnvCount, EnvBackground, EnvExportDir, EnvExportFormat} {
		t.Setenv(k, "")
	}
	return dir
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := &Config{
		DataDir:      filepath.Join(dir, "data", AppName),
		DefaultCount: 5,
		Background:   "#FFFFFF",
		ExportDir:    ".",
		ExportFormat: "css",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "swatch.toml")
	body := `
default_count = 8
background = "000000"
export_dir = "~/themes"
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DefaultCount != 8 {
		t.Errorf("DefaultCount = %d, want 8", cfg.DefaultCount)
	}
	if cfg.Background != "#000000" {
		t.Errorf("Background = %s, want #000000", cfg.Background)
	}
	if cfg.ExportDir != filepath.Join(dir, "themes") {
		t.Errorf("ExportDir = %s", cfg.ExportDir)
	}
	if cfg.ExportFormat != "css" {
		t.Errorf("ExportFormat = %s, want default css", cfg.ExportFormat)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "swatch.toml")
	if err := os.WriteFile(path, []byte("default_count = 8\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvCount, "3")
	t.Setenv(EnvDataDir, filepath.Join(dir, "elsewhere"))

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultCount != 3 {
		t.Errorf("DefaultCount = %d, want 3", cfg.DefaultCount)
	}
	if cfg.DataDir != filepath.Join(dir, "elsewhere") {
		t.Errorf("DataDir = %s", cfg.DataDir)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
	}{
		{name: "unknown key", body: "colour_count = 3\n"},
		{name: "bad toml", body: "default_count = \n"},
		{name: "zero count", body: "default_count = 0\n"},
		{name: "bad background", body: "background = \"white\"\n"},
		{name: "bad env count", env: map[string]string{EnvCount: "many"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			path := filepath.Join(dir, "swatch.toml")
			if err := os.WriteFile(path, []byte(tt.body), 0o600); err != nil {
				t.Fatal(err)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load() expected error")
			}
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	if _, err := Load(filepath.Join(dir, "nope.toml")); err == nil {
		t.Error("Load() expected error for missing explicit config")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("SWATCH_TEST_DOTENV=123456\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("SWATCH_TEST_DOTENV") })

	if err := LoadDotEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
	if got := os.Getenv("SWATCH_TEST_DOTENV"); got != "123456" {
		t.Errorf("SWATCH_TEST_DOTENV = %q", got)
	}
}
