// Package cmd contains all the commands included in the cactus binary.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand enables all children commands to read flags from CLI flags, environment variables prefixed with CACTUS, or config.yaml (in that order).
func NewRootCommand() *cobra.Command {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("CACTUS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	configPaths := []string{"/etc/cactus", "$HOME/.cactus", "."}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	return &cobra.Command{
		Use:   "cactus",
		Short: "Tools for persistent reference counted cactus stacks",
		Long: `Tools for persistent reference counted cactus stacks.

A cactus stack is a stack whose branches share their common prefix. The stress
command hammers one shared stack from many goroutines and verifies that every
node is reclaimed once the last handle is released.`,
		SilenceUsage: true,
	}
}
