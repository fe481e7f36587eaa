// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lwwgraph/metrics"
)

// app carries the global flags and the services built from them.
type app struct {
	logLevel  string
	logFormat string
	metrics   bool

	stdout io.Writer
	stderr io.Writer

	log       *slog.Logger
	registry  *prometheus.Registry
	collector *metrics.Collector
}

// execute runs the command tree with args. Metrics are written once the
// command has returned, whether it succeeded or not.
func execute(args []string, stdout, stderr io.Writer) error {
	root, a := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	err := root.Execute()
	if mErr := a.dumpMetrics(); mErr != nil && err == nil {
		err = mErr
	}

	return err
}

func newRootCmd(stdout, stderr io.Writer) (*cobra.Command, *app) {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "lwwgraph",
		Short: "Replay and reconcile LWW element graph replicas",
		Long: `lwwgraph drives last-write-wins element graph replicas.

Examples:
  lwwgraph run scenario.yaml --export-dir out/
  lwwgraph merge merged.json out/a.json out/b.json
  lwwgraph paths merged.json 1 7`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info",
		"Log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "text",
		"Log format: text, json")
	root.PersistentFlags().BoolVar(&a.metrics, "metrics", false,
		"Write Prometheus metrics to stderr on exit")

	root.AddCommand(newRunCmd(a), newMergeCmd(a), newPathsCmd(a))

	return root, a
}

func (a *app) setup() error {
	switch a.logFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", a.logFormat)
	}
	a.log = newLogger(a.logLevel, a.logFormat, a.stderr)
	a.registry = prometheus.NewRegistry()
	a.collector = metrics.New(a.registry)

	return nil
}

func (a *app) dumpMetrics() error {
	if !a.metrics || a.registry == nil {
		return nil
	}
	families, err := a.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(a.stderr, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}

// newLogger creates a slog.Logger writing to w. Unknown levels fall back to info.
func newLogger(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
