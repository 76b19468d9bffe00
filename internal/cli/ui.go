package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/tui"
)

func newUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Edit the palette interactively",
		Long: `Open the full-screen palette editor. Changes are written back to the working
palette when the editor exits.

Keys: space generate, a add, x remove, l lock, c copy, s save, e export, q quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, ok := a.exporters.Get(strings.ToLower(a.cfg.ExportFormat))
			if !ok {
				return fmt.Errorf("unknown export format %q", a.cfg.ExportFormat)
			}

			eng, err := a.openEngine(nil)
			if err != nil {
				return err
			}

			return tui.RunPalette(tui.Options{
				Engine:       eng,
				Store:        a.store,
				Clipboard:    a.clipboard,
				Exporter:     e,
				ExportDir:    a.cfg.ExportDir,
				Background:   a.cfg.Background,
				DefaultCount: a.cfg.DefaultCount,
				Logger:       a.logger.Named("tui"),
			})
		},
	}
}
