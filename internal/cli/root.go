// Package cli provides the command-line interface for swatch.
package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/swatch/internal/clipboard"
	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/config"
	"github.com/jmylchreest/swatch/internal/export"
	"github.com/jmylchreest/swatch/internal/store"
	"github.com/jmylchreest/swatch/internal/version"
)

// app is the state shared by every command of one invocation.
type app struct {
	// Global flags
	configPath string
	dataDir    string
	background string
	verbose    bool
	quiet      bool
	noColor    bool

	cfg       *config.Config
	logger    hclog.Logger
	store     *store.Store
	exporters *export.Registry
	clipboard clipboard.Writer
	prompt    colourPrompter

	// forceInteractive skips terminal detection for prompts.
	forceInteractive bool
}

// NewRootCmd builds the swatch command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{
		exporters: export.DefaultRegistry(),
		clipboard: clipboard.System{},
		prompt:    huhColourPrompt,
	})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "swatch",
		Short: "A random colour palette generator",
		Long: `swatch generates random colour palettes, rates each colour's contrast
against a background using WCAG 2.0 tiers, and exports the result as CSS
custom properties.

The working palette is kept between invocations, so commands can be chained:

  swatch generate
  swatch lock 2
  swatch generate        # re-rolls everything except colour 2
  swatch export

Run 'swatch ui' for the interactive editor.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	registerGlobalFlags(rootCmd.PersistentFlags(), a)
	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newVersionCmd(),
		newGenerateCmd(a),
		newAddCmd(a),
		newRemoveCmd(a),
		newLockCmd(a),
		newUnlockCmd(a),
		newShowCmd(a),
		newCopyCmd(a),
		newSaveCmd(a),
		newSavedCmd(a),
		newExportCmd(a),
		newContrastCmd(a),
		newUICmd(a),
	)

	return rootCmd
}

func registerGlobalFlags(fs *pflag.FlagSet, a *app) {
	fs.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	fs.BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	fs.BoolVar(&a.noColor, "no-color", false, "disable coloured output")
	fs.StringVar(&a.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/swatch/config.toml)")
	fs.StringVar(&a.dataDir, "data-dir", "", "directory for saved palettes and the session")
	fs.StringVar(&a.background, "background", "", "background colour contrast is rated against (default: #FFFFFF)")
}

// setup resolves configuration and builds the logger and store.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.noColor {
		color.NoColor = true
		colour.DisableColourOutput = true
	}

	a.logger = newLogger(cmd.ErrOrStderr(), a.verbose, a.quiet)

	if err := config.LoadDotEnv(); err != nil {
		a.logger.Warn("ignoring .env", "error", err)
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.dataDir != "" {
		cfg.DataDir = a.dataDir
	}
	if a.background != "" {
		cfg.Background = a.background
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.logger.Debug("configuration loaded", "data_dir", cfg.DataDir, "background", cfg.Background, "count", cfg.DefaultCount)

	a.store = store.New(cfg.DataDir, a.logger)
	return nil
}

// newLogger returns the hclog logger used for diagnostics on stderr.
func newLogger(w io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Warn
	switch {
	case quiet:
		level = hclog.Off
	case verbose:
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "swatch",
		Output: w,
		Level:  level,
		Color:  hclog.AutoColor,
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
