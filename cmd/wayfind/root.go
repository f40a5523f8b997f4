package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wayfind/metrics"
	"github.com/katalvlaran/wayfind/scenario"
)

// runFlags are shared by run and fixture.
type runFlags struct {
	trace    bool
	budget   int
	metrics  bool
	logLevel string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "wayfind",
		Short:         "Incremental A* search over YAML-described graphs and grids",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newFixtureCmd())

	return root
}

func newRunCmd() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run SCENARIO.yaml",
		Short: "Load a scenario file and search it",
		Long: `Load a scenario file, run the search and print a YAML report.

Examples:
  wayfind run examples/thirteen.yaml
  wayfind run examples/trails.yaml --budget 50 --log-level debug
  wayfind run examples/thirteen.yaml --trace --metrics`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scenario.Load(args[0])
			if err != nil {
				return err
			}

			return execute(cmd, sc, f)
		},
	}
	bindRunFlags(cmd, &f)

	return cmd
}

func newFixtureCmd() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "fixture",
		Short: "Run the built-in 13-node fixture from node 0 to node 12",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return execute(cmd, scenario.Thirteen(), f)
		},
	}
	bindRunFlags(cmd, &f)

	return cmd
}

func bindRunFlags(cmd *cobra.Command, f *runFlags) {
	cmd.Flags().BoolVar(&f.trace, "trace", false, "log every expansion, relaxation and suppression (needs --log-level debug)")
	cmd.Flags().IntVar(&f.budget, "budget", 0, "expansions per slice; 0 runs to completion in one go")
	cmd.Flags().BoolVar(&f.metrics, "metrics", false, "print Prometheus metrics after the report")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
}

func execute(cmd *cobra.Command, sc *scenario.Scenario, f runFlags) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(f.logLevel)); err != nil {
		return fmt.Errorf("bad --log-level: %w", err)
	}
	if f.budget < 0 {
		return fmt.Errorf("bad --budget %d: must be >= 0", f.budget)
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	reg := prometheus.NewRegistry()
	opts := scenario.RunOptions{Logger: logger, Trace: f.trace, StepBudget: f.budget}
	if f.metrics {
		opts.Metrics = metrics.NewRecorder(reg)
	}

	rep, err := scenario.Run(cmd.Context(), sc, opts)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	if f.metrics {
		return writeMetrics(out, reg)
	}

	return nil
}

// writeMetrics dumps reg in the Prometheus text exposition format.
func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
