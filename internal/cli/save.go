package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/palette"
)

func newSaveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Save the working palette",
		Long:  `Append the working palette to the saved palettes file in the data directory.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.store.LoadSession()
			if err != nil {
				return err
			}
			if len(p) == 0 {
				a.warn(cmd.ErrOrStderr(), "Saving an empty palette")
			}
			n, err := a.store.Append(p)
			if err != nil {
				return err
			}
			a.success(cmd.OutOrStdout(), "Palette saved! (%d saved in %s)", n, a.store.SavedPath())
			return nil
		},
	}
}

func newSavedCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "saved",
		Short: "List saved palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			saved, err := a.store.Load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, saved)
			}
			if len(saved) == 0 {
				fmt.Fprintln(out, "No saved palettes. Run 'swatch save' to save the working palette.")
				return nil
			}

			table := NewTable([]string{"#", "Colours"})
			for i, p := range saved {
				table.AddRow([]string{strconv.Itoa(i + 1), formatColours(out, p)})
			}
			fmt.Fprint(out, table.Render())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}

// formatColours joins a palette's hex codes, with colour blocks on a terminal.
func formatColours(w io.Writer, p palette.Palette) string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = string(s.Color)
		if cell := swatchCell(w, s.Color); cell != "" {
			parts[i] = cell + " " + parts[i]
		}
	}
	return strings.Join(parts, " ")
}
