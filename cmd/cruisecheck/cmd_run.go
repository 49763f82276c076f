package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/nvandessel/cruisecheck/internal/config"
	"github.com/nvandessel/cruisecheck/internal/cruise"
	"github.com/nvandessel/cruisecheck/internal/logging"
	"github.com/nvandessel/cruisecheck/internal/metrics"
	"github.com/nvandessel/cruisecheck/internal/scenario"
	"github.com/nvandessel/cruisecheck/internal/signal"
	"github.com/spf13/cobra"
)

// sleep performs settling pauses. Tests replace it.
var sleep cruise.Sleeper = time.Sleep

// runScenario wires config, logging, metrics and the signal store, then
// runs the scenario once. Step verdicts never produce an error.
func runScenario(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
	events := logging.NewEventLog(cfg.Logging.EventDir, cfg.Logging.Level)
	defer events.Close()
	collector := metrics.NewCollector()

	store, closeStore, err := openStore(cfg.Store,
		signal.WithLogger(logger),
		signal.WithObserver(events),
		signal.WithObserver(collector),
	)
	if err != nil {
		return err
	}

	runner := scenario.NewRunner(store, scenario.Options{
		Sleep:           sleep,
		Rand:            newRand(cfg.Scenario.Seed),
		Logger:          logger,
		Recorders:       []scenario.Recorder{events, collector},
		PauseObservers:  []cruise.PauseObserver{events, collector},
		AccPedalPercent: cfg.Scenario.AccPedalPercent,
		TargetSpeedMax:  cfg.Scenario.TargetSpeedMax,
	})
	result := runner.Run()
	if result.Step2Ran {
		collector.TargetSpeed(result.TargetSpeed)
	}
	logger.Debug("run finished", "state", result.State, "passed", result.Passed())

	if err := closeStore(); err != nil {
		return err
	}
	return collector.WriteTextfile(cfg.Metrics.File)
}

// openStore builds the configured backend. The returned close func reports
// any database error the run swallowed.
func openStore(cfg config.StoreConfig, opts ...signal.Option) (signal.Store, func() error, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		s, err := signal.NewSQLiteStore(cfg.Path, signal.Defaults(), opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open signal store: %w", err)
		}
		closeFn := func() error {
			runErr := s.Err()
			if err := s.Close(); err != nil {
				return fmt.Errorf("failed to close signal store: %w", err)
			}
			if runErr != nil {
				return fmt.Errorf("signal store: %w", runErr)
			}
			return nil
		}
		return s, closeFn, nil
	default:
		return signal.NewMemoryStore(signal.Defaults(), opts...), func() error { return nil }, nil
	}
}

// newRand returns a seeded source, or nil to let the runner seed from the clock.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, seed))
}
