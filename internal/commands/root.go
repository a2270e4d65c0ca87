package commands

import (
	"github.com/spf13/cobra"

	"github.com/grachmannico95/gig-earnings/internal/buildinfo"
	"github.com/grachmannico95/gig-earnings/pkg/logger"
)

type rootOptions struct {
	logLevel string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "earnings",
		Short:   "Summarise gig platform earnings exports",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log to stderr at this level (debug, info, warn, error)")

	rootCmd.AddCommand(newConnectCommand(opts))
	rootCmd.AddCommand(newProlificCommand(opts))

	return rootCmd
}

func (o *rootOptions) logger() *logger.Logger {
	if o.logLevel == "" {
		return logger.NewNop()
	}
	return logger.New(o.logLevel, "console")
}
