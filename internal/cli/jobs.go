package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type normalizeOutput struct {
	Status       string `json:"status"`
	UpdatedCount int    `json:"updatedCount"`
}

type backfillOutput struct {
	Status         string `json:"status"`
	ProcessedCount int    `json:"processedCount"`
	SharedCount    int    `json:"sharedCount"`
	Resumed        bool   `json:"resumed"`
	Reset          bool   `json:"reset"`
}

const statusMigrationComplete = "Migration complete"

// withRuntime opens a Runtime for the duration of fn.
func withRuntime(ctx context.Context, open Opener, opts *RootOptions, fn func(rt *Runtime) error) error {
	rt, err := open(ctx, opts.ConfigPath)
	if err != nil {
		return err
	}
	defer rt.Close()
	return fn(rt)
}

func newNormalizeCommand(opts *RootOptions, open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize-usernames",
		Short: "Fill username_lower for every user that lacks it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := newPrinter(opts, cmd)
			err := withRuntime(cmd.Context(), open, opts, func(rt *Runtime) error {
				res, err := rt.Jobs.NormalizeUsernames(cmd.Context())
				if err != nil {
					return err
				}
				out := normalizeOutput{Status: statusMigrationComplete, UpdatedCount: res.UpdatedCount}
				return p.result(out, func(w io.Writer) {
					fmt.Fprintf(w, "%s: %d username(s) updated\n", out.Status, out.UpdatedCount)
				})
			})
			if err != nil {
				return p.failure(err)
			}
			return nil
		},
	}
}

func newBackfillCommand(opts *RootOptions, open Opener) *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "backfill-feed",
		Short: "Project every shared entry into the community feed",
		Long: `Walks all users and their entries and writes a community post for every
shared entry that has none. An interrupted run resumes from its checkpoint
unless --reset is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := newPrinter(opts, cmd)
			err := withRuntime(cmd.Context(), open, opts, func(rt *Runtime) error {
				if reset {
					if err := rt.Jobs.ResetFeedBackfill(cmd.Context()); err != nil {
						return err
					}
					p.progress("checkpoint cleared")
				}

				res, err := rt.Jobs.BackfillCommunityFeed(cmd.Context())
				if err != nil {
					return err
				}
				out := backfillOutput{
					Status:         statusMigrationComplete,
					ProcessedCount: res.ProcessedCount,
					SharedCount:    res.SharedCount,
					Resumed:        res.Resumed,
					Reset:          reset,
				}
				return p.result(out, func(w io.Writer) {
					fmt.Fprintf(w, "%s: %d entries processed, %d posts created", out.Status, out.ProcessedCount, out.SharedCount)
					if out.Resumed {
						fmt.Fprint(w, " (resumed)")
					}
					fmt.Fprintln(w)
				})
			})
			if err != nil {
				return p.failure(err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "discard a saved checkpoint and start from the first user")
	return cmd
}
