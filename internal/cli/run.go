package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/stigoleg/keep-busy/internal/config"
	"github.com/stigoleg/keep-busy/internal/keepalive"
	"github.com/stigoleg/keep-busy/internal/observability"
	"github.com/stigoleg/keep-busy/internal/platform"
	"github.com/stigoleg/keep-busy/internal/profile"
	"github.com/stigoleg/keep-busy/internal/random"
	"github.com/stigoleg/keep-busy/internal/ui"
)

// teardownTimeout bounds the whole shutdown sequence.
const teardownTimeout = 10 * time.Second

func run(cmd *cobra.Command, v *viper.Viper, version string) error {
	if err := config.LoadDotEnv(config.DefaultEnvFile); err != nil {
		return err
	}
	cfgPath, err := cmd.Flags().GetString(config.FlagConfig)
	if err != nil {
		return err
	}
	used, err := config.ReadConfigFile(v, cfgPath)
	if err != nil {
		return err
	}
	cfg, err := config.Load(v, time.Now())
	if err != nil {
		return err
	}
	cfg.ConfigFile = used

	child := isBackgroundChild()
	headless := cfg.NoTUI || cfg.Background || child
	if headless || cfg.Run.Profile != "" {
		if err := cfg.Run.Validate(); err != nil {
			return err
		}
	}
	if cfg.Background && !child {
		return detach(cmd.OutOrStdout(), cfg)
	}

	logger := newLogger(cfg, headless && !child, version)
	restoreStdLog := zap.RedirectStdLog(logger)
	keeper := keepalive.New(logger)

	teardown := keepalive.NewTeardown(teardownTimeout, logger)
	teardown.Add("logger", func() error {
		observability.Sync(logger)
		return nil
	})
	teardown.Add("stdlog", func() error {
		restoreStdLog()
		return nil
	})
	teardown.Add("keeper", keeper.Stop)
	defer func() {
		for _, err := range teardown.Run() {
			fmt.Fprintln(os.Stderr, "teardown:", err)
		}
	}()

	if cfg.ConfigFile != "" {
		logger.Info("loaded config file", zap.String("path", cfg.ConfigFile))
	}
	if !cfg.Run.DryRun {
		if c := platform.CheckActivitySimulationCapability(); !c.CanSimulate {
			logger.Warn(c.ErrorMessage, zap.String("instructions", c.Instructions))
		}
	}

	in, err := platform.NewInput(cfg.Run.DryRun, logger)
	if err != nil {
		return err
	}
	sensor := platform.NewIdleSensor(logger)
	newRunner := func(p config.Profile) (keepalive.Runner, error) {
		return profile.NewEngine(cfg.Run.WithProfile(p), sensor, profile.Env{
			Input:     in,
			Rand:      newRand(cfg.Seed),
			Shortcuts: platform.CurrentShortcuts(),
			Logger:    logger,
		})
	}

	if headless {
		return runHeadless(cmd.Context(), keeper, newRunner, cfg, logger)
	}
	return runTUI(keeper, newRunner, cfg)
}

func newLogger(cfg *config.Config, console bool, version string) *zap.Logger {
	opts := observability.Options{
		Level: cfg.LogLevel,
		File:  cfg.LogFile,
		Name:  appName,
	}
	if console {
		opts.Console = observability.Stdout()
	}
	return observability.New(opts).With(
		zap.String("run_id", uuid.NewString()),
		zap.String("version", version),
	)
}

func newRand(seed int64) *random.Rand {
	if seed == 0 {
		return random.NewFromTime(random.SystemClock{})
	}
	return random.New(seed, random.SystemClock{})
}

// runHeadless runs the profile until the deadline, a shutdown signal or a
// fatal error, whichever comes first.
func runHeadless(ctx context.Context, keeper *keepalive.Keeper, newRunner ui.RunnerFactory, cfg *config.Config, logger *zap.Logger) error {
	runner, err := newRunner(cfg.Run.Profile)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, shutdownSignals()...)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := keeper.StartUntil(runner, cfg.Deadline); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		<-keeper.Done()
		return keeper.Err()
	})
	g.Go(func() error {
		<-gctx.Done()
		if keeper.IsRunning() {
			logger.Info("shutting down")
		}
		return keeper.Stop()
	})
	err = g.Wait()

	if st, ok := keeper.Status(); ok {
		logger.Info("finished",
			zap.String("profile", st.Profile),
			zap.Int("cycles", st.Cycles),
			zap.Int("failures", st.Failures),
		)
	}
	return err
}

func runTUI(keeper *keepalive.Keeper, newRunner ui.RunnerFactory, cfg *config.Config) error {
	m := ui.InitialModel(keeper, newRunner)
	if cfg.Run.Profile != "" {
		var d time.Duration
		if !cfg.Deadline.IsZero() {
			d = time.Until(cfg.Deadline)
		}
		started, err := m.Start(cfg.Run.Profile, d)
		if err != nil {
			return err
		}
		m = started
		m.QuitOnStop = true
	}
	return ui.Run(m, tea.WithAltScreen())
}
