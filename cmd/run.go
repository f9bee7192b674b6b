package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/romatype/internal/app"
	"github.com/abhisek/romatype/internal/config"
	"github.com/abhisek/romatype/internal/logging"
	"github.com/abhisek/romatype/internal/notify"
	"github.com/abhisek/romatype/internal/observe"
	"github.com/abhisek/romatype/internal/vocab"
)

// runOptions carries the per-command choices that are not configuration.
type runOptions struct {
	difficulty string
	autoStart  bool
	seed       *uint64
}

// runApp loads configuration, builds the notification sinks and launches
// the TUI, plus the metrics endpoint when one is configured.
func runApp(cmd *cobra.Command, ro runOptions) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, closer, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	if err := vocab.Validate(); err != nil {
		return err
	}

	difficulty := cfg.DefaultDifficulty()
	if ro.difficulty != "" {
		if difficulty, err = vocab.ParseDifficulty(ro.difficulty); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sinks := []notify.Sink{notify.NewLogSink(log)}
	if !cfg.Sound.Mute {
		sinks = append(sinks, notify.NewBellSink(os.Stderr, cfg.BellKinds()...))
	}

	g, gctx := errgroup.WithContext(ctx)

	if cfg.Metrics.Addr != "" {
		provider, err := observe.InitProvider(ctx, observe.ProviderConfig{ServiceVersion: version})
		if err != nil {
			return fmt.Errorf("init metrics: %w", err)
		}
		defer provider.Shutdown(context.Background())

		metrics, err := observe.NewMetrics(provider.MeterProvider)
		if err != nil {
			return fmt.Errorf("init metrics: %w", err)
		}
		sinks = append(sinks, metrics.Sink())

		g.Go(func() error {
			return observe.Serve(gctx, cfg.Metrics.Addr, cfg.Metrics.Path, provider.Registry, log)
		})
	}

	opts := app.Options{
		Timings:    cfg.Timings(),
		Sink:       notify.NewFanout(log, sinks...),
		Logger:     log,
		Difficulty: difficulty,
		AutoStart:  ro.autoStart,
		Seed:       ro.seed,
	}

	g.Go(func() error {
		// Leaving the TUI stops everything else; a failing server stops the TUI.
		defer cancel()
		return app.Run(gctx, opts)
	})

	logStart(log, cfg, difficulty)
	return g.Wait()
}

func logStart(log zerolog.Logger, cfg *config.Config, d vocab.Difficulty) {
	log.Info().
		Str("version", version).
		Str("difficulty", string(d)).
		Bool("metrics", cfg.Metrics.Addr != "").
		Bool("bell", !cfg.Sound.Mute).
		Msg("romatype starting")
}
