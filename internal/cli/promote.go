package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/chaosjournal-backend/internal/domain"
)

type promoteOutput struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Changed  bool   `json:"changed"`
}

// newPromoteCommand grants the admin role. It bootstraps the first operator
// allowed to call the admin callables.
func newPromoteCommand(opts *RootOptions, open Opener) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Grant the admin role to a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := newPrinter(opts, cmd)
			name := strings.TrimSpace(username)
			if name == "" {
				return p.failure(errors.New("--username is required"))
			}

			err := withRuntime(cmd.Context(), open, opts, func(rt *Runtime) error {
				u, err := rt.Users.GetByUsernameLower(cmd.Context(), domain.NormalizeUsername(name))
				if err != nil {
					if errors.Is(err, domain.ErrNotFound) {
						return fmt.Errorf("no user with username %q", name)
					}
					return err
				}

				changed, err := rt.Users.SetRole(cmd.Context(), u.ID, domain.UserRoleAdmin)
				if err != nil {
					return err
				}

				out := promoteOutput{UserID: u.ID.String(), Username: u.Username, Changed: changed}
				return p.result(out, func(w io.Writer) {
					if changed {
						fmt.Fprintf(w, "User %q promoted to admin.\n", u.Username)
					} else {
						fmt.Fprintf(w, "User %q is already admin.\n", u.Username)
					}
				})
			})
			if err != nil {
				return p.failure(err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "username to promote (case-insensitive)")
	return cmd
}
