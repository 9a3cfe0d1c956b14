package cli

import (
	"context"
	"path/filepath"

	"github.com/bnema/upgradewatch/internal/application/port"
	"github.com/bnema/upgradewatch/internal/domain/entity"
	"github.com/bnema/upgradewatch/internal/infrastructure/config"
	"github.com/bnema/upgradewatch/internal/infrastructure/desktop"
	"github.com/bnema/upgradewatch/internal/infrastructure/env"
	"github.com/bnema/upgradewatch/internal/infrastructure/metrics"
	"github.com/bnema/upgradewatch/internal/infrastructure/notifier"
	"github.com/bnema/upgradewatch/internal/infrastructure/probe"
	"github.com/bnema/upgradewatch/internal/logging"
	"github.com/bnema/upgradewatch/internal/ui/mainloop"
)

const appName = "upgradewatch"

// ProbeSetup is an assembled probe plus the files whose change should
// trigger an early check.
type ProbeSetup struct {
	Probe      *probe.Probe
	WatchPaths []string
	Running    string
}

// RunningVersion is the version the detector compares against: the
// configured override, else the build version.
func (a *App) RunningVersion() string {
	if v := a.Config.Probe.RunningVersion; v != "" {
		return v
	}
	return a.BuildInfo.Version
}

// Channel resolves the release track for this process.
func (a *App) Channel() entity.Channel {
	return env.ResolveChannel(a.Config.Update.Channel, a.BuildInfo.Channel, a.Install)
}

// BuildProbe assembles the installed-version readers selected by
// probe.kind. The staged reader always runs first for exec probes since a
// staged binary supersedes the one in place.
func (a *App) BuildProbe(ctx context.Context) ProbeSetup {
	cfg := a.Config.Probe
	log := logging.FromContext(ctx)

	binary := cfg.Binary
	if binary == "" {
		binary = a.Install.Executable
	}

	var readers []port.InstalledVersionReader
	var watch []string

	staged := a.stagedReader(ctx, binary, cfg.VersionFlag)
	switch cfg.Kind {
	case config.ProbeKindFile:
		readers = append(readers, probe.NewFileReader(cfg.ManifestPath))
		watch = append(watch, cfg.ManifestPath)
	case config.ProbeKindStaged:
		if staged != nil {
			readers = append(readers, staged)
			watch = append(watch, staged.StagedPath())
		}
	default:
		if staged != nil {
			readers = append(readers, staged)
			watch = append(watch, staged.StagedPath())
		}
		if binary != "" {
			readers = append(readers, probe.NewExecReader(binary, cfg.VersionFlag))
			watch = append(watch, binary)
		}
	}

	running := a.RunningVersion()
	p := probe.New(running, readers,
		probe.WithChannel(a.Channel),
		probe.WithTimeout(config.ProbeTimeout(a.Config)),
		probe.WithGate(a.probeGate()),
	)

	log.Debug().
		Str("kind", string(cfg.Kind)).
		Str("binary", binary).
		Int("readers", len(readers)).
		Str("running", running).
		Msg("probe assembled")

	return ProbeSetup{Probe: p, WatchPaths: watch, Running: running}
}

func (*App) stagedReader(ctx context.Context, binary, flag string) *probe.StagedReader {
	if binary == "" {
		return nil
	}
	staging, err := config.GetStagingDir()
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("no state dir; staged probe disabled")
		return nil
	}
	return probe.NewStagedReader(staging, filepath.Base(binary), flag)
}

// probeGate keeps the detector inert inside a Flatpak sandbox unless a
// binary outside the sandbox was configured explicitly: the sandbox never
// sees the upgraded files.
func (a *App) probeGate() func(context.Context) bool {
	return func(ctx context.Context) bool {
		if a.Install.Kind == env.InstallFlatpak && a.Config.Probe.Binary == "" {
			logging.FromContext(ctx).Info().Msg("running in flatpak; upgrade detection disabled")
			return false
		}
		return true
	}
}

// BuildNotifiers assembles the event sinks enabled in the config. m may be
// nil when metrics are disabled. When slow is non-nil the journal and
// desktop sinks run on it instead of the caller's goroutine.
func (a *App) BuildNotifiers(ctx context.Context, m *metrics.Metrics, slow *mainloop.Loop, extra ...port.Notifier) notifier.Multi {
	offload := func(name string, sink port.Notifier) port.Notifier {
		if slow == nil {
			return sink
		}
		return notifier.NewAsync(name, sink, slow)
	}

	sinks := notifier.Multi{notifier.Log{}}
	if m != nil {
		sinks = append(sinks, m)
	}
	if a.Config.Notify.Journal {
		sinks = append(sinks, offload("journal", notifier.NewJournal(a.Journal, a.RunningVersion())))
	}
	if a.Config.Notify.Desktop {
		display := desktop.New(appName)
		if display.Available() {
			sinks = append(sinks, offload("desktop", notifier.NewDesktop(display, appName)))
		} else {
			logging.FromContext(ctx).Debug().Msg("notify-send not found; desktop notifications disabled")
		}
	}
	return append(sinks, extra...)
}
