// Package cli implements chaosctl, the operator tool for running the
// administrative jobs and schema migrations outside the HTTP server.
package cli

import (
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format     string // "text" | "json"
	ConfigPath string
}

// ValidFormats lists the accepted --format values.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates chaosctl. open is called lazily by subcommands that
// need a database.
func NewRootCommand(open Opener) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "chaosctl",
		Short:         "Chaos Journal operator tool",
		Long:          "Runs the administrative backfill jobs, outbox maintenance and schema migrations.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default: $CONFIG_PATH or ./config.yaml)")

	cmd.AddCommand(newNormalizeCommand(opts, open))
	cmd.AddCommand(newBackfillCommand(opts, open))
	cmd.AddCommand(newPromoteCommand(opts, open))
	cmd.AddCommand(newPruneCommand(opts, open, time.Now))
	cmd.AddCommand(newMigrateCommand(opts, open))

	return cmd
}
