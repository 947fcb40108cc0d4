package cmd

import (
	"errors"
	"fmt"
	"os"

	"ginit/internal/credstore"
	"ginit/internal/hosting"
	"ginit/internal/prompt"
	"github.com/spf13/cobra"
)

const tokenNote = "ginit, the git repo initializer"

var tokenScopes = []string{"user", "public_repo", "repo", "repo:status"}

func newAuthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Authenticate with GitHub and store an access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := credstore.NewDefault()
			if err != nil {
				return err
			}

			outInfo(cmd.OutOrStdout(), "ginit needs your GitHub credentials to create an access token")

			username, password, err := prompt.Survey{}.Credentials()
			if err != nil {
				return err
			}

			client := hosting.NewClient()
			client.AuthenticateBasic(username, password)

			token, err := client.CreateToken(cmd.Context(), tokenScopes, tokenNote, authFingerprint(username))
			if err != nil {
				var authErr *hosting.AuthError
				if errors.As(err, &authErr) && authErr.Kind == hosting.AuthTokenExists {
					return fmt.Errorf("a ginit token already exists for this account; revoke it at https://github.com/settings/tokens and run `ginit auth` again")
				}
				return err
			}

			if err := store.Save(token); err != nil {
				return err
			}

			outSuccess(cmd.OutOrStdout(), "Authenticated as %s; token saved to %s", username, store.Path())
			return nil
		},
	}
}

// authFingerprint distinguishes tokens minted from different machines so
// re-running auth elsewhere does not collide.
func authFingerprint(username string) string {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown-host"
	}

	return fmt.Sprintf("ginit/%s@%s", username, hostname)
}
