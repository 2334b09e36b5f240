package main

import (
	"fmt"
	"io"

	"github.com/sghaida/deco/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds the state shared by all subcommands of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "deco",
		Short: "Run function decorator demonstrations",
		Long: `deco runs small demonstrations of function decorators: wrappers that
add behavior before or after a call, transform results, stack, and forward
arbitrary arguments.

Configuration is read from --config (YAML) and DECO_* environment variables.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			logger, err := newLogger(a.stderr, cfg.LogLevel, a.verbose)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err: err}
	})

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newRunCmd(a), newListCmd(a))
	return root
}

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run [example...]",
		Short: "Run examples by name (default: the configured list)",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = a.cfg.Examples
			}
			a.logger.Debug("running examples", zap.Strings("examples", names))

			c := newCatalog(a.stdout, a.logger, a.cfg)
			for _, name := range names {
				if err := c.run(name); err != nil {
					return fmt.Errorf("run %s: %w", name, err)
				}
			}
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known examples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range exampleNames() {
				_, _ = fmt.Fprintln(a.stdout, name)
			}
			return nil
		},
	}
}
