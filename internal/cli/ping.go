package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/depot/pkg/logger"
)

func newPingCmd(flags *globalFlags) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Check that the configured store is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			start := time.Now()
			if err := a.probe(timeout)(cmd.Context()); err != nil {
				a.log.ErrorContext(cmd.Context(), "store unreachable", logger.Store(a.cfg.Store), logger.Error(err))
				return err
			}
			elapsed := time.Since(start)
			a.log.DebugContext(cmd.Context(), "store reachable", logger.Store(a.cfg.Store), logger.Duration(elapsed))

			if flags.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"store":       a.cfg.Store,
					"ok":          true,
					"duration_ms": elapsed.Milliseconds(),
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s ok (%s)\n", a.cfg.Store, elapsed.Round(time.Microsecond))
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "maximum time to wait for the store")
	return cmd
}
