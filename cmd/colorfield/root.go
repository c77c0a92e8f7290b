package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/colorfield/internal/logger"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{}

	cmd := &cobra.Command{
		Use:           "colorfield",
		Short:         "Pick and validate colors from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.Init(cmd.Context(), flags, cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.Close()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a colorfield YAML configuration")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	field := newFieldCmd(app)
	cmd.RunE = field.RunE
	cmd.Flags().AddFlagSet(field.Flags())

	cmd.AddCommand(field)
	cmd.AddCommand(newValidateCmd(app))
	cmd.AddCommand(newSwatchesCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// run executes root and maps its outcome to an exit status. A cancelled
// field exits 130 without logging.
func run(root *cobra.Command, log *logger.Logger) int {
	cmd, err := root.ExecuteC()
	if err == nil {
		return 0
	}
	if errors.Is(err, errCancelled) {
		return 130
	}
	return log.CommandFailed(cmd.CommandPath(), err)
}
