package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/upgradewatch/internal/application/detector"
	"github.com/bnema/upgradewatch/internal/application/port"
	"github.com/bnema/upgradewatch/internal/cli"
	"github.com/bnema/upgradewatch/internal/cli/styles"
	"github.com/bnema/upgradewatch/internal/domain/entity"
	"github.com/bnema/upgradewatch/internal/infrastructure/config"
	"github.com/bnema/upgradewatch/internal/infrastructure/metrics"
	"github.com/bnema/upgradewatch/internal/infrastructure/notifier"
	"github.com/bnema/upgradewatch/internal/infrastructure/watcher"
	"github.com/bnema/upgradewatch/internal/logging"
	"github.com/bnema/upgradewatch/internal/ui/mainloop"
)

const journalPruneInterval = 24 * time.Hour

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the upgrade detector in the foreground",
	Long: `Run the upgrade detector until interrupted.

The installed version is probed every update.check_interval_sec seconds
(two hours by default). Once a newer version is found the detector
announces it and escalates the restart recommendation over time. Events
go to the log, the journal, the desktop and the metrics endpoint,
depending on configuration.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	cfg := app.Config

	ctx, stop := signal.NotifyContext(logging.WithComponent(app.Ctx(), "watch"), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)

	settings := config.ResolveSettings(ctx, cfg)
	setup := app.BuildProbe(ctx)

	var m *metrics.Metrics
	var probe port.VersionProbe = setup.Probe
	if cfg.Metrics.Enabled {
		m = metrics.New(prometheus.NewRegistry())
		probe = m.InstrumentProbe(setup.Probe)
	}

	loop := mainloop.NewLoop(0)
	sinkLoop := mainloop.NewLoop(0)
	bus := notifier.NewBus(loop)
	defer bus.Close()

	d := detector.New(probe, app.BuildNotifiers(ctx, m, sinkLoop, bus), settings)
	renderer := styles.NewWatchRenderer(app.Theme)
	bus.Subscribe(func(entity.Event) {
		fmt.Print(renderer.RenderStatus(d.Snapshot(), d.Settings().Accelerated, time.Now()))
	})

	watchConfigChanges(ctx)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		loop.Run(gctx)
		return nil
	})
	g.Go(func() error {
		sinkLoop.Run(gctx)
		return nil
	})

	d.Start(gctx)
	defer d.Stop()
	fmt.Print(renderer.RenderStarted(setup.Running, d.Settings().CheckInterval, d.Active()))

	if m != nil {
		g.Go(func() error {
			if err := m.Serve(gctx, cfg.Metrics.Listen); err != nil {
				return fmt.Errorf("metrics endpoint: %w", err)
			}
			return nil
		})
	}

	if cfg.Update.WatchInstall && d.Active() {
		w := watcher.New(setup.WatchPaths, d.CheckNow, watcher.WithDebounce(config.WatchDebounce(cfg)))
		g.Go(func() error {
			if err := w.Run(gctx); err != nil {
				// Losing the early trigger only delays detection until the next tick.
				log.Warn().Err(err).Msg("install watcher stopped")
			}
			return nil
		})
	}

	if cfg.Notify.Journal {
		g.Go(func() error {
			pruneJournal(gctx, app)
			return nil
		})
	}

	err := g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info().Msg("upgrade detector stopped")
	return nil
}

func pruneJournal(ctx context.Context, app *cli.App) {
	log := logging.FromContext(ctx)
	ticker := time.NewTicker(journalPruneInterval)
	defer ticker.Stop()

	for {
		if _, err := app.HistoryUC.Prune(ctx, app.Config.Database.RetentionDays); err != nil {
			log.Warn().Err(err).Msg("journal prune failed")
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func watchConfigChanges(ctx context.Context) {
	mgr := config.GetManager()
	if mgr == nil {
		return
	}
	log := logging.FromContext(ctx)
	mgr.OnConfigChange(func(*config.Config) {
		log.Info().Msg("configuration changed; detection settings apply on next start")
	})
	if err := mgr.Watch(); err != nil {
		log.Debug().Err(err).Msg("config file not watched")
	}
}
