package cmd

import (
	"github.com/spf13/cobra"

	"github.com/openfga/cactus/internal/build"
)

// NewVersionCommand returns the command to get the cactus version
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Return the cactus version",
		Long:  "Return the cactus version.",
		RunE:  version,
		Args:  cobra.NoArgs,
	}
}

// print out the built version
func version(cmd *cobra.Command, _ []string) error {
	cmd.Printf("cactus version %s date %s commit id %s\n", build.Version, build.Date, build.Commit)
	return nil
}
