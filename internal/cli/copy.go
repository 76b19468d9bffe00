package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newCopyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "copy POSITION",
		Short: "Copy a colour's hex code to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("copy: invalid position %q: %w", args[0], err)
			}
			eng, err := a.openEngine(nil)
			if err != nil {
				return err
			}
			s, err := eng.At(n - 1)
			if err != nil {
				return err
			}
			if err := a.clipboard.Copy(s.Color); err != nil {
				return err
			}
			a.success(cmd.OutOrStdout(), "Copied %s", s.Color)
			return nil
		},
	}
}
