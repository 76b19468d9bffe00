package cli

import (
	"strings"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/palette"
)

// openEngine loads the working palette into an engine backed by src.
// A nil src uses a freshly seeded random generator.
func (a *app) openEngine(src palette.ColourSource) (*palette.Engine, error) {
	p, err := a.store.LoadSession()
	if err != nil {
		return nil, err
	}
	if src == nil {
		src = colour.NewRandomGenerator()
	}
	return palette.FromPalette(p, src), nil
}

// runCommand applies cmd to the working palette and persists the result.
func (a *app) runCommand(eng *palette.Engine, cmd palette.Command) error {
	if err := eng.Apply(cmd); err != nil {
		return err
	}
	a.logger.Debug("command applied", "command", cmd.Name(), "colours", eng.Len())
	return a.store.SaveSession(eng.Swatches())
}

// parseArgs turns a subcommand and its arguments into a palette command,
// translating 1-based positions the same way the interactive editor does.
func parseArgs(verb string, args []string) (palette.Command, error) {
	return palette.ParseCommand(strings.Join(append([]string{verb}, args...), " "))
}
