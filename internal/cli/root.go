package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

// globalFlags override the environment configuration for one invocation.
type globalFlags struct {
	envFile    string
	store      string
	locale     string
	localesDir string
	fixtures   string
	jsonOutput bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "depot",
		Short:         "Validate and manage the depot product catalog",
		Long:          "depot validates product records against the catalog rules and stores them in memory, PostgreSQL, MongoDB or Redis.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.envFile, "env-file", "", "load variables from this .env file before reading the environment")
	pf.StringVar(&flags.store, "store", "", "storage backend: memory, postgres, mongo or redis (default $DEPOT_STORE or memory)")
	pf.StringVar(&flags.locale, "locale", "", "message locale (default $DEPOT_LOCALE or en)")
	pf.StringVar(&flags.localesDir, "locales-dir", "", "directory with locale files used instead of the bundled ones")
	pf.StringVar(&flags.fixtures, "fixtures", "", "YAML fixtures to load into the store before running the command")
	pf.BoolVar(&flags.jsonOutput, "json", false, "print JSON instead of text")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newCreateCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newSeedCmd(flags))
	cmd.AddCommand(newMigrateCmd(flags))
	cmd.AddCommand(newPingCmd(flags))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
