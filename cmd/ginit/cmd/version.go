package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the ginit version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			trimmed := strings.TrimSpace(version)
			if trimmed == "" {
				trimmed = "dev"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ginit %s\n", trimmed)
		},
	}
}
