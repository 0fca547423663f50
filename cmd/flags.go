package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// mustBindPFlag attempts to bind a specific key to a pflag (as used by cobra) and panics
// if the binding fails with a non-nil error.
func mustBindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic("failed to bind pflag: " + err.Error())
	}
}

func mustBindEnv(input ...string) {
	if err := viper.BindEnv(input...); err != nil {
		panic("failed to bind env key: " + err.Error())
	}
}

// bindStressFlagsFunc binds the cobra cmd flags to the equivalent config value being managed
// by viper. This bridges the config between cobra flags and viper flags.
func bindStressFlagsFunc(flags *pflag.FlagSet) func(*cobra.Command, []string) {
	return func(_ *cobra.Command, _ []string) {
		mustBindPFlag("stress.workers", flags.Lookup(workersFlag))
		mustBindEnv("stress.workers", "CACTUS_STRESS_WORKERS", "CACTUS_WORKERS")

		mustBindPFlag("stress.iterations", flags.Lookup(iterationsFlag))
		mustBindEnv("stress.iterations", "CACTUS_STRESS_ITERATIONS", "CACTUS_ITERATIONS")

		mustBindPFlag("stress.baseDepth", flags.Lookup(baseDepthFlag))
		mustBindEnv("stress.baseDepth", "CACTUS_STRESS_BASE_DEPTH", "CACTUS_STRESS_BASEDEPTH")

		mustBindPFlag("stress.maxDepth", flags.Lookup(maxDepthFlag))
		mustBindEnv("stress.maxDepth", "CACTUS_STRESS_MAX_DEPTH", "CACTUS_STRESS_MAXDEPTH")

		mustBindPFlag("stress.seed", flags.Lookup(seedFlag))
		mustBindEnv("stress.seed", "CACTUS_STRESS_SEED", "CACTUS_SEED")

		mustBindPFlag("log.format", flags.Lookup(logFormatFlag))
		mustBindEnv("log.format", "CACTUS_LOG_FORMAT")

		mustBindPFlag("log.level", flags.Lookup(logLevelFlag))
		mustBindEnv("log.level", "CACTUS_LOG_LEVEL")
	}
}
