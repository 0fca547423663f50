package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/openfga/cactus/internal/config"
	"github.com/openfga/cactus/internal/stress"
	"github.com/openfga/cactus/pkg/logger"
)

const (
	workersFlag    = "workers"
	iterationsFlag = "iterations"
	baseDepthFlag  = "base-depth"
	maxDepthFlag   = "max-depth"
	seedFlag       = "seed"
	logFormatFlag  = "log-format"
	logLevelFlag   = "log-level"
)

// NewStressCommand returns the command that runs the concurrent stack workload.
func NewStressCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Stress shared cactus stacks from many goroutines",
		Long: `Stress shared cactus stacks from many goroutines.

Every worker branches off a common base stack, pushes and pops random values and
checks each branch against an independently built copy of the same values. The
run fails if any check fails or if a single node is still live after all handles
were released.`,
		RunE: runStress,
		Args: cobra.NoArgs,
	}

	defaultConfig := config.DefaultConfig()
	flags := cmd.Flags()

	flags.Int(workersFlag, defaultConfig.Stress.Workers, "the number of goroutines sharing the base stack")
	flags.Int(iterationsFlag, defaultConfig.Stress.Iterations, "the number of rounds each worker performs")
	flags.Int(baseDepthFlag, defaultConfig.Stress.BaseDepth, "the depth of the stack shared by every worker")
	flags.Int(maxDepthFlag, defaultConfig.Stress.MaxDepth, "the maximum number of values a worker pushes in a round")
	flags.Int64(seedFlag, defaultConfig.Stress.Seed, "the seed of the random sources (0 picks one from the clock)")
	flags.String(logFormatFlag, defaultConfig.Log.Format, "the log format to output logs in")
	flags.String(logLevelFlag, defaultConfig.Log.Level, "the log level to use")

	// NOTE: if you add a new flag here, add the binding in bindStressFlagsFunc
	cmd.PreRun = bindStressFlagsFunc(flags)

	return cmd
}

// ReadConfig returns the cactus configuration based on the values provided in the config file.
func ReadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()

	viper.SetTypeByDefaultValue(true)
	err := viper.ReadInConfig()
	if err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("failed to load cactus config: %w", err)
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cactus config: %w", err)
	}

	return cfg, nil
}

func runStress(cmd *cobra.Command, _ []string) error {
	cfg, err := ReadConfig()
	if err != nil {
		return err
	}

	if err := cfg.Verify(); err != nil {
		return err
	}

	log := logger.MustNewLogger(cfg.Log.Format, cfg.Log.Level)

	report, err := stress.Run(cmd.Context(), cfg.Stress, log)
	if err != nil {
		return err
	}

	cmd.Printf("%d rounds with seed %d, %d nodes allocated and reclaimed\n", report.Rounds, report.Seed, report.Reclaimed)
	return nil
}
