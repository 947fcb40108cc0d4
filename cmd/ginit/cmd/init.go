package cmd

import (
	"fmt"
	"os"

	"ginit/internal/bootstrap"
	"ginit/internal/credstore"
	"ginit/internal/gitx"
	"ginit/internal/hosting"
	"ginit/internal/prompt"
	"github.com/spf13/cobra"
)

func newInitCmd(interactive, force *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a remote repository and wire this directory to it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, *interactive, *force)
		},
	}
}

func runInit(cmd *cobra.Command, interactive, force bool) error {
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}

	store, err := credstore.NewDefault()
	if err != nil {
		return err
	}

	var prompter prompt.Prompter
	if interactive {
		prompter = prompt.Survey{}
	}

	orc := &bootstrap.Orchestrator{
		Dir:    dir,
		Store:  store,
		Host:   hosting.NewClient(),
		Git:    &gitx.Runner{Dir: dir},
		Prompt: prompter,
	}

	result, err := orc.Run(cmd.Context(), bootstrap.Options{
		Interactive: interactive,
		Force:       force,
	})
	if err != nil {
		return err
	}

	if result.Pushed {
		outSuccess(cmd.OutOrStdout(), "Created %s and pushed the initial commit to %s", result.Name, result.CloneURL)
	} else {
		outSuccess(cmd.OutOrStdout(), "Created %s and added remote origin (%s); nothing to push yet", result.Name, result.CloneURL)
	}

	return nil
}
