package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// exit codes per the CLI surface table: 0 success, 1 configuration or
// input error, 2 unexpected internal failure.
const (
	exitOK       = 0
	exitUsage    = 1
	exitInternal = 2
)

// run builds and executes the cobra command tree, returning the
// process exit code rather than calling os.Exit itself, so tests can
// drive it directly.
func run(args []string) int {
	cfg := defaultConfig()
	var configPath string
	code := exitOK

	rootCmd := &cobra.Command{
		Use:           "samplns",
		Short:         "samplns computes a small pairwise-interaction test sample",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	optimizeCmd := &cobra.Command{
		Use:   "optimize",
		Short: "minimize a feasible sample via large neighborhood search",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if configPath != "" {
				loaded, err := loadConfigFile(configPath, cfg)
				if err != nil {
					code = exitUsage

					return err
				}
				cfg = loaded
			}

			log := logrus.New()
			level, err := logrus.ParseLevel(cfg.LogLevel)
			if err != nil {
				code = exitUsage

				return fmt.Errorf("parse --log-level %q: %w", cfg.LogLevel, err)
			}
			log.SetLevel(level)

			if err := optimizeMain(cfg, log); err != nil {
				code = classifyError(err)

				return err
			}

			return nil
		},
	}

	flags := optimizeCmd.Flags()
	flags.StringVar(&cfg.Input, "input", cfg.Input, "feature-model source file (required)")
	flags.StringVar(&cfg.InitialSample, "initial-sample", cfg.InitialSample, "initial feasible sample file (CSV or JSON)")
	flags.StringVar(&cfg.InitialAlgorithm, "initial-algorithm", cfg.InitialAlgorithm, "initial-sample algorithm name (not yet supported; use --initial-sample)")
	flags.StringVar(&cfg.Output, "output", cfg.Output, "output sample path (required)")
	flags.StringVar(&cfg.IterationTimeLimit, "iteration-time-limit", cfg.IterationTimeLimit, "per-LNS-iteration time budget")
	flags.StringVar(&cfg.CDSTimeLimit, "cds-time-limit", cfg.CDSTimeLimit, "validated duration; not applied: the background CDS worker uses --iteration-time-limit per iteration")
	flags.StringVar(&cfg.GlobalTimeLimit, "global-time-limit", cfg.GlobalTimeLimit, "overall optimization time budget")
	flags.IntVar(&cfg.MaxIterations, "max-iterations", cfg.MaxIterations, "maximum LNS iterations")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "logrus level (debug, info, warn, error)")
	flags.StringVar(&configPath, "config", "", "optional YAML file providing defaults for any of the above")

	rootCmd.AddCommand(optimizeCmd)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "samplns:", err)
		if code == exitOK {
			code = exitInternal
		}

		return code
	}

	return exitOK
}
