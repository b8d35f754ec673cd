//go:build !solution

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofrs/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gitlab.com/rogov-ks/library/library"
	"gitlab.com/rogov-ks/library/librarylog"
	"gitlab.com/rogov-ks/library/librarymetrics"
	"gitlab.com/rogov-ks/library/visits"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		logFormat  string
	)
	cfg := visits.Default()

	cmd := &cobra.Command{
		Use:          "library",
		Short:        "Readers and writers sharing a library",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				fileCfg, err := visits.Load(configPath)
				if err != nil {
					return err
				}
				// флаги, заданные явно, важнее файла
				overrideChanged(cmd, &fileCfg, &cfg)
				cfg = fileCfg
			}
			return run(cmd.Context(), cfg, logFormat)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to .yaml config")
	cmd.Flags().StringVar(&logFormat, "log-format", "console", "console or json")
	cfg.BindFlags(cmd.Flags())
	return cmd
}

// overrideChanged copies explicitly set flag values from flagCfg into fileCfg.
func overrideChanged(cmd *cobra.Command, fileCfg, flagCfg *visits.Config) {
	fs := cmd.Flags()
	set := map[string]func(){
		"capacity":     func() { fileCfg.Capacity = flagCfg.Capacity },
		"readers":      func() { fileCfg.Readers = flagCfg.Readers },
		"writers":      func() { fileCfg.Writers = flagCfg.Writers },
		"visits":       func() { fileCfg.Visits = flagCfg.Visits },
		"read-time":    func() { fileCfg.ReadTime = flagCfg.ReadTime },
		"write-time":   func() { fileCfg.WriteTime = flagCfg.WriteTime },
		"rest-time":    func() { fileCfg.RestTime = flagCfg.RestTime },
		"color":        func() { fileCfg.Color = flagCfg.Color },
		"metrics-file": func() { fileCfg.MetricsFile = flagCfg.MetricsFile },
	}
	for name, apply := range set {
		if fs.Changed(name) {
			apply()
		}
	}
}

func newLogger(format string) (*zap.Logger, error) {
	switch format {
	case "console":
		return zap.NewDevelopment()
	case "json":
		return zap.NewProduction()
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

func run(ctx context.Context, cfg visits.Config, logFormat string) error {
	logger, err := newLogger(logFormat)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	runID, err := uuid.NewV4()
	if err != nil {
		return err
	}
	logger = logger.With(zap.String("run_id", runID.String()))

	var sink library.Sink = librarylog.NewZap(logger)
	if logFormat == "console" {
		sink = librarylog.NewConsole(os.Stdout, cfg.Color)
	}

	lib := library.New(cfg.Capacity, library.WithSink(sink))

	reg := prometheus.NewRegistry()
	if err := reg.Register(librarymetrics.NewCollector(lib)); err != nil {
		return err
	}

	logger.Info("library opened",
		zap.Int("capacity", cfg.Capacity),
		zap.Int("readers", cfg.Readers),
		zap.Int("writers", cfg.Writers),
		zap.Int("visits", cfg.Visits),
	)

	if err := visits.Run(ctx, lib, cfg); err != nil {
		logger.Error("simulation failed", zap.Error(err))
		return err
	}

	logger.Info("library closed", zap.Stringer("snapshot", lib.Snapshot()))

	if cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, reg); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}
