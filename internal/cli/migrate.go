package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/depot/pkg/pg"
	"github.com/dmitrymomot/depot/svc/product"
)

func newMigrateCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the bundled PostgreSQL migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.store == "" {
				flags.store = storePostgres
			}
			a, err := newApp(cmd.Context(), flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			if a.pgPool == nil {
				return fmt.Errorf("%w, got %q", ErrPostgresOnly, a.cfg.Store)
			}

			v, err := pg.Migrate(cmd.Context(), a.pgPool, product.Migrations(), a.pgConfig, a.log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema at version %d\n", v)
			return nil
		},
	}
}
