package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/palette"
)

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove POSITION",
		Aliases: []string{"rm"},
		Short:   "Remove a colour from the palette",
		Long:    `Remove the colour at POSITION (1-based, as shown by 'swatch show'). Later colours shift down.`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pc, err := parseArgs("remove", args)
			if err != nil {
				return err
			}
			eng, err := a.openEngine(nil)
			if err != nil {
				return err
			}

			removed, err := eng.At(pc.(palette.RemoveCmd).Index)
			if err != nil {
				return err
			}
			if err := a.runCommand(eng, pc); err != nil {
				return err
			}

			a.success(cmd.OutOrStdout(), "Removed %s (%d/%d)", removed.Color, eng.Len(), palette.MaxSwatches)
			return nil
		},
	}
}

func newLockCmd(a *app) *cobra.Command {
	return newLockStateCmd(a, "lock", "Toggle the lock on a colour",
		`Lock the colour at POSITION (1-based), or unlock it if it is already locked.
Locked colours survive 'swatch generate'.`,
		"toggle")
}

func newUnlockCmd(a *app) *cobra.Command {
	return newLockStateCmd(a, "unlock", "Unlock a colour",
		`Unlock the colour at POSITION (1-based) so 'swatch generate' replaces it.
Unlocking an unlocked colour leaves it unlocked.`)
}

// newLockStateCmd builds lock and unlock, which differ only in the verb
// handed to palette.ParseCommand.
func newLockStateCmd(a *app, verb, short, long string, aliases ...string) *cobra.Command {
	return &cobra.Command{
		Use:     verb + " POSITION",
		Aliases: aliases,
		Short:   short,
		Long:    long,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pc, err := parseArgs(verb, args)
			if err != nil {
				return err
			}
			eng, err := a.openEngine(nil)
			if err != nil {
				return err
			}
			if err := a.runCommand(eng, pc); err != nil {
				return err
			}

			s, err := eng.At(lockIndex(pc))
			if err != nil {
				return err
			}
			state := "Unlocked"
			if s.Locked {
				state = "Locked"
			}
			a.success(cmd.OutOrStdout(), "%s %s", state, s.Color)
			return nil
		},
	}
}

func lockIndex(pc palette.Command) int {
	switch c := pc.(type) {
	case palette.ToggleLockCmd:
		return c.Index
	case palette.SetLockCmd:
		return c.Index
	}
	return -1
}
