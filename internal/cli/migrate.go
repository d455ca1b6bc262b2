package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

type migrationApplied struct {
	Version    int64  `json:"version"`
	File       string `json:"file"`
	DurationMS int64  `json:"durationMs"`
	Empty      bool   `json:"empty"`
}

type migrationState struct {
	Version   int64      `json:"version"`
	File      string     `json:"file"`
	State     string     `json:"state"`
	AppliedAt *time.Time `json:"appliedAt,omitempty"`
}

func newMigrateCommand(opts *RootOptions, open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect the embedded schema migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(cmd, opts, open, migrateUp)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List migrations and whether they are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(cmd, opts, open, migrateStatus)
		},
	})

	return cmd
}

func runMigrate(cmd *cobra.Command, opts *RootOptions, open Opener, fn func(context.Context, migrator, printer) error) error {
	p := newPrinter(opts, cmd)
	err := withRuntime(cmd.Context(), open, opts, func(rt *Runtime) error {
		return fn(cmd.Context(), rt.Migrations, p)
	})
	if err != nil {
		return p.failure(err)
	}
	return nil
}

func migrateUp(ctx context.Context, m migrator, p printer) error {
	results, err := m.Up(ctx)
	if err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}

	applied := make([]migrationApplied, 0, len(results))
	for _, r := range results {
		applied = append(applied, migrationApplied{
			Version:    r.Source.Version,
			File:       filepath.Base(r.Source.Path),
			DurationMS: r.Duration.Milliseconds(),
			Empty:      r.Empty,
		})
	}

	return p.result(applied, func(w io.Writer) {
		if len(applied) == 0 {
			fmt.Fprintln(w, "No pending migrations.")
			return
		}
		for _, a := range applied {
			fmt.Fprintf(w, "OK   %s (%dms)\n", a.File, a.DurationMS)
		}
	})
}

func migrateStatus(ctx context.Context, m migrator, p printer) error {
	statuses, err := m.Status(ctx)
	if err != nil {
		return fmt.Errorf("migrate status: %w", err)
	}

	states := make([]migrationState, 0, len(statuses))
	for _, s := range statuses {
		st := migrationState{
			Version: s.Source.Version,
			File:    filepath.Base(s.Source.Path),
			State:   string(s.State),
		}
		if s.State == goose.StateApplied {
			at := s.AppliedAt
			st.AppliedAt = &at
		}
		states = append(states, st)
	}

	return p.result(states, func(w io.Writer) {
		for _, s := range states {
			when := "pending"
			if s.AppliedAt != nil {
				when = s.AppliedAt.UTC().Format(time.RFC3339)
			}
			fmt.Fprintf(w, "%-8s %-25s %s\n", s.State, when, s.File)
		}
	})
}
