package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
)

func newContrastCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "contrast COLOUR [BACKGROUND]",
		Short: "Rate the WCAG contrast between two colours",
		Long: `Print the WCAG 2.0 contrast ratio of COLOUR against BACKGROUND (default: the
configured background) with its tier: AAA at 7:1 or more, AA at 4.5:1 or more,
otherwise Fail.`,
		Example: `  swatch contrast '#777777'
  swatch contrast 1E90FF 000000`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bg := a.cfg.Background
			if len(args) == 2 {
				bg = args[1]
			}

			r, err := colour.Rate(args[0], bg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, r)
			}

			prefix := ""
			if cell := swatchCell(out, r.Color); cell != "" {
				prefix = cell + " "
			}
			fmt.Fprintf(out, "%s%s on %s: %.2f:1 %s\n", prefix, r.Color, r.Background, r.Ratio, levelText(r.Level))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}
