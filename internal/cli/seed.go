package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <fixtures.yml>",
		Short: "Load named products from a YAML fixtures file without validation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			fixtures, err := a.seed(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("seed failed: %w", err)
			}

			if flags.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), fixtures)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d products into %s\n", len(fixtures), a.cfg.Store)
			return nil
		},
	}
}
