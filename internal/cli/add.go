package cli

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/palette"
)

// colourPrompter asks the user for a colour.
type colourPrompter func(title string) (string, error)

// huhColourPrompt reads a hex colour with a huh input, validating as the user types.
func huhColourPrompt(title string) (string, error) {
	var value string
	err := huh.NewInput().
		Title(title).
		Placeholder("#RRGGBB").
		CharLimit(7).
		Validate(func(s string) error {
			_, err := colour.ParseHex(s)
			return err
		}).
		Value(&value).
		Run()
	return value, err
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
}

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add [HEX]",
		Short: "Append a colour to the palette",
		Long: `Append a colour to the working palette. The colour must be a six digit hex
code, with or without the leading '#'. When HEX is omitted and a terminal is
attached, you are prompted for it.`,
		Example: `  swatch add '#1E90FF'
  swatch add ff8800`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := a.openEngine(nil)
			if err != nil {
				return err
			}
			if eng.Len() >= palette.MaxSwatches {
				return palette.ErrPaletteFull
			}

			var value string
			if len(args) == 1 {
				value = args[0]
			} else {
				if a.prompt == nil || !a.interactive(cmd) {
					return errors.New("a colour is required when not running in a terminal")
				}
				if value, err = a.prompt("Colour to add"); err != nil {
					return err
				}
			}

			if err := a.runCommand(eng, palette.AddCmd{Color: value}); err != nil {
				return err
			}

			added, _ := eng.At(eng.Len() - 1)
			a.success(cmd.OutOrStdout(), "Added %s (%d/%d)", added.Color, eng.Len(), palette.MaxSwatches)
			return nil
		},
	}
}

// interactive reports whether prompts can be shown.
func (a *app) interactive(cmd *cobra.Command) bool {
	if a.forceInteractive {
		return true
	}
	return isTerminal(cmd.InOrStdin())
}
