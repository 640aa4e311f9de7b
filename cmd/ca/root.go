package main

import (
	"fmt"
	"log/slog"
	"maps"
	"os"

	"github.com/spf13/cobra"

	"settle/internal/config"
	"settle/internal/core"
	"settle/internal/logging"
	"settle/internal/metrics"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	logLevel   string
	metrics    bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	cmd := &cobra.Command{
		Use:           "ca",
		Short:         "Run cellular automata to their settled state",
		Long:          `ca runs the seating automaton to its fixed point and the hex tile automaton for a fixed number of days.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML configuration file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error (overrides config)")
	cmd.PersistentFlags().BoolVar(&opts.metrics, "metrics", false, "dump Prometheus metrics to stderr after a run")

	cmd.AddCommand(
		newSeatsCmd(opts),
		newTilesCmd(opts),
		newSimsCmd(),
		newGenerateCmd(),
	)
	return cmd
}

// setup loads the configuration file, if any, and builds the logger.
func (o *globalOptions) setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logging.NewWithWriter(cmd.ErrOrStderr(), level), nil
}

// runFile ingests path into the named simulation and runs it. before is
// called with the freshly loaded sim.
func (o *globalOptions) runFile(cmd *cobra.Command, name, path string, overrides map[string]string, before func(core.Sim)) (core.Result, error) {
	cfg, logger, err := o.setup(cmd)
	if err != nil {
		return core.Result{}, err
	}
	factory, ok := core.Sims()[name]
	if !ok {
		return core.Result{}, fmt.Errorf("unknown sim %q", name)
	}

	simCfg := cfg.SimConfig(name)
	maps.Copy(simCfg, overrides)

	f, err := os.Open(path)
	if err != nil {
		return core.Result{}, &core.ParseError{Kind: core.IOFailure, Err: err}
	}
	defer f.Close()

	sim, err := factory(simCfg, f)
	if err != nil {
		return core.Result{}, fmt.Errorf("%s: %w", path, err)
	}
	logger.Info("loaded", "automaton", sim.Name(), "path", path, "count", sim.Count(), "params", sim.Parameters().Map())
	if before != nil {
		before(sim)
	}

	collector := metrics.New()
	res, err := sim.Run(core.WithLogger(logger), core.WithObserver(collector))
	if err != nil {
		logger.Error("run failed", "automaton", sim.Name(), "error", err)
		return res, err
	}
	if o.metrics {
		if err := collector.WriteText(cmd.ErrOrStderr()); err != nil {
			return res, err
		}
	}
	return res, nil
}
