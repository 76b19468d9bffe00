package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/palette"
)

// swatchView is the JSON shape of one rated swatch.
type swatchView struct {
	Position int          `json:"position"`
	Color    colour.Hex   `json:"color"`
	Locked   bool         `json:"locked"`
	Contrast float64      `json:"contrast"`
	Level    colour.Level `json:"level"`
}

type paletteView struct {
	Background string       `json:"background"`
	Swatches   []swatchView `json:"swatches"`
}

func newShowCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "show",
		Aliases: []string{"ls"},
		Short:   "Show the working palette with contrast ratings",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.store.LoadSession()
			if err != nil {
				return err
			}
			if asJSON {
				return a.writePaletteJSON(cmd.OutOrStdout(), p)
			}
			return a.renderPalette(cmd.OutOrStdout(), p)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}

func (a *app) ratePalette(p palette.Palette) (paletteView, error) {
	view := paletteView{
		Background: a.cfg.Background,
		Swatches:   make([]swatchView, 0, len(p)),
	}
	for i, s := range p {
		r, err := colour.Rate(string(s.Color), a.cfg.Background)
		if err != nil {
			return paletteView{}, err
		}
		view.Swatches = append(view.Swatches, swatchView{
			Position: i + 1,
			Color:    s.Color,
			Locked:   s.Locked,
			Contrast: r.Ratio,
			Level:    r.Level,
		})
	}
	return view, nil
}

func (a *app) writePaletteJSON(w io.Writer, p palette.Palette) error {
	view, err := a.ratePalette(p)
	if err != nil {
		return err
	}
	return writeJSON(w, view)
}

// renderPalette prints the palette as a table rated against the background.
func (a *app) renderPalette(w io.Writer, p palette.Palette) error {
	if len(p) == 0 {
		fmt.Fprintln(w, "Palette is empty. Run 'swatch generate' or 'swatch add <hex>'.")
		return nil
	}

	view, err := a.ratePalette(p)
	if err != nil {
		return err
	}

	preview := colour.ColourEnabled(w)
	headers := []string{"#", "Colour", "Locked", "Contrast", "Level"}
	if preview {
		headers = append([]string{"Swatch"}, headers...)
	}

	table := NewTable(headers)
	for _, s := range view.Swatches {
		locked := ""
		if s.Locked {
			locked = "yes"
		}
		row := []string{
			strconv.Itoa(s.Position),
			string(s.Color),
			locked,
			fmt.Sprintf("%.2f:1", s.Contrast),
			levelText(s.Level),
		}
		if preview {
			row = append([]string{swatchCell(w, s.Color)}, row...)
		}
		table.AddRow(row)
	}

	fmt.Fprint(w, table.Render())
	fmt.Fprintln(w, dim(fmt.Sprintf("%d/%d colours, contrast against %s", len(p), palette.MaxSwatches, view.Background)))
	return nil
}
