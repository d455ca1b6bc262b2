package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
)

type pruneOutput struct {
	Deleted   int64     `json:"deleted"`
	Threshold time.Time `json:"threshold"`
}

func newPruneCommand(opts *RootOptions, open Opener, now func() time.Time) *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "prune-events",
		Short: "Delete relayed entry events older than --older-than",
		Long: `Removes rows from the entry event outbox that the relay has already
processed. Pending events are kept. Intended for a cron job.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := newPrinter(opts, cmd)
			if olderThan <= 0 {
				return p.failure(errors.New("--older-than must be positive"))
			}

			threshold := now().UTC().Add(-olderThan)
			err := withRuntime(cmd.Context(), open, opts, func(rt *Runtime) error {
				deleted, err := rt.Events.Prune(cmd.Context(), threshold)
				if err != nil {
					return err
				}
				out := pruneOutput{Deleted: deleted, Threshold: threshold}
				return p.result(out, func(w io.Writer) {
					fmt.Fprintf(w, "Pruned %d event(s) processed before %s\n", deleted, threshold.Format(time.RFC3339))
				})
			})
			if err != nil {
				return p.failure(err)
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&olderThan, "older-than", 7*24*time.Hour, "minimum age of processed events to delete")
	return cmd
}
