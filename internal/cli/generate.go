package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/palette"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		count  int
		seed   uint64
		asJSON bool
		reset  bool
	)

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate a palette, or re-roll every unlocked colour",
		Long: `Generate fills an empty palette with random colours. When a palette already
exists, every unlocked colour is replaced in place and locked colours are kept;
--count only applies to an empty palette.`,
		Example: `  swatch generate
  swatch generate --count 8
  swatch generate --reset --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("count") {
				count = a.cfg.DefaultCount
			}
			if count <= 0 {
				return fmt.Errorf("%w: %d", palette.ErrInvalidCount, count)
			}

			var src palette.ColourSource
			if cmd.Flags().Changed("seed") {
				src = colour.NewGenerator(seed)
			}

			var eng *palette.Engine
			if reset {
				eng = palette.New(src)
			} else {
				var err error
				if eng, err = a.openEngine(src); err != nil {
					return err
				}
			}

			if err := a.runCommand(eng, palette.GenerateCmd{Count: count}); err != nil {
				return err
			}

			if asJSON {
				return a.writePaletteJSON(cmd.OutOrStdout(), eng.Swatches())
			}
			return a.renderPalette(cmd.OutOrStdout(), eng.Swatches())
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", palette.DefaultCount, "number of colours for an empty palette")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for reproducible colours")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	cmd.Flags().BoolVar(&reset, "reset", false, "discard the current palette, including locked colours")

	return cmd
}
