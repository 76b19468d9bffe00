// Package config resolves swatch settings from defaults, a TOML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/palette"
)

const (
	// AppName is used for config and data directory names.
	AppName = "swatch"

	// ConfigFileName is the TOML file read from the config directory.
	ConfigFileName = "config.toml"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "SWATCH_"
)

// Environment variable names.
const (
	EnvDataDir      = EnvPrefix + "DATA_DIR"
	EnvCount        = EnvPrefix + "COUNT"
	EnvBackground   = EnvPrefix + "BACKGROUND"
	EnvExportDir    = EnvPrefix + "EXPORT_DIR"
	EnvExportFormat = EnvPrefix + "EXPORT_FORMAT"
)

// Config holds resolved settings.
type Config struct {
	// DataDir holds saved palettes and the session.
	DataDir string `toml:"data_dir"`

	// DefaultCount is the number of colours generated into an empty palette.
	DefaultCount int `toml:"default_count"`

	// Background is the colour contrast is rated against.
	Background string `toml:"background"`

	// ExportDir is where exported files are written.
	ExportDir string `toml:"export_dir"`

	// ExportFormat is the default exporter name.
	ExportFormat string `toml:"export_format"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		DataDir:      DefaultDataDir(),
		DefaultCount: palette.DefaultCount,
		Background:   string(colour.White),
		ExportDir:    ".",
		ExportFormat: "css",
	}
}

// DefaultDataDir returns $XDG_DATA_HOME/swatch or ~/.local/share/swatch.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "."+AppName)
	}
	return filepath.Join(home, ".local", "share", AppName)
}

// DefaultConfigPath returns the path to the user config file.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, ConfigFileName)
}

// LoadDotEnv loads .env files into the process environment.
// Variables already set are not overridden. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// Load resolves settings: defaults, then the TOML file at path (if it
// exists), then SWATCH_* environment variables.
// An empty path uses DefaultConfigPath.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	if path != "" {
		// A missing user config is fine; a missing --config file is not.
		if err := cfg.mergeFile(path); err != nil && (explicit || !errors.Is(err, fs.ErrNotExist)) {
			return nil, err
		}
	}

	if err := cfg.mergeEnv(); err != nil {
		return nil, err
	}

	return cfg, cfg.Validate()
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path) // #nosec G304 -- config path chosen by the user
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var file Config
	md, err := toml.Decode(string(data), &file)
	if err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}

	if md.IsDefined("data_dir") {
		c.DataDir = expandHome(file.DataDir)
	}
	if md.IsDefined("default_count") {
		c.DefaultCount = file.DefaultCount
	}
	if md.IsDefined("background") {
		c.Background = file.Background
	}
	if md.IsDefined("export_dir") {
		c.ExportDir = expandHome(file.ExportDir)
	}
	if md.IsDefined("export_format") {
		c.ExportFormat = file.ExportFormat
	}
	return nil
}

func (c *Config) mergeEnv() error {
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = expandHome(v)
	}
	if v := os.Getenv(EnvCount); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: invalid integer %q", EnvCount, v)
		}
		c.DefaultCount = n
	}
	if v := os.Getenv(EnvBackground); v != "" {
		c.Background = v
	}
	if v := os.Getenv(EnvExportDir); v != "" {
		c.ExportDir = expandHome(v)
	}
	if v := os.Getenv(EnvExportFormat); v != "" {
		c.ExportFormat = v
	}
	return nil
}

// Validate checks the settings are usable.
func (c *Config) Validate() error {
	if c.DefaultCount <= 0 {
		return fmt.Errorf("default_count must be positive, got %d", c.DefaultCount)
	}
	bg, err := colour.NormaliseHex(c.Background)
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}
	c.Background = string(bg)
	if c.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	return nil
}

func expandHome(p string) string {
	if len(p) < 2 || p[:2] != "~/" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[2:])
}
