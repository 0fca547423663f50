package main

import (
	"os"

	"github.com/openfga/cactus/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	stressCmd := cmd.NewStressCommand()
	rootCmd.AddCommand(stressCmd)

	versionCmd := cmd.NewVersionCommand()
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
