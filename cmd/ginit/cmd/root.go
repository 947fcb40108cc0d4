package cmd

import (
	"github.com/spf13/cobra"
)

func NewRootCmd(version string) *cobra.Command {
	var interactive bool
	var force bool

	rootCmd := &cobra.Command{
		Use:           "ginit",
		Short:         "Create a GitHub repository and wire up the current directory",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		// Bare `ginit` runs init.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, interactive, force)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for repository details and scaffolding")
	rootCmd.PersistentFlags().BoolVarP(&force, "force", "f", false, "Initialize even if the directory is empty")

	rootCmd.AddCommand(
		newAuthCmd(),
		newInitCmd(&interactive, &force),
		newMCPRootCmd(version),
		newVersionCmd(version),
	)

	return rootCmd
}
