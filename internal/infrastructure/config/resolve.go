package config

import (
	"context"
	"strconv"
	"time"

	"github.com/bnema/upgradewatch/internal/application/detector"
	"github.com/bnema/upgradewatch/internal/logging"
)

// ResolveSettings turns configuration into detector scheduling. It never
// fails: a malformed check interval is logged at debug level and the
// defaults are kept.
func ResolveSettings(ctx context.Context, cfg *Config) detector.Settings {
	settings := detector.DefaultSettings()
	if cfg == nil {
		return settings
	}
	log := logging.FromContext(ctx)

	settings.Disabled = cfg.Update.DisableBackgroundNetworking

	if d, err := time.ParseDuration(cfg.Update.EscalationInterval); err == nil && d > 0 {
		settings.EscalationInterval = d
	}

	if raw := cfg.Update.CheckIntervalSec; raw != "" {
		secs, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			log.Debug().Str("value", raw).Err(err).Msg("ignoring malformed check interval override")
		case secs <= 0:
			log.Debug().Str("value", raw).Msg("ignoring non-positive check interval override")
		default:
			settings.CheckInterval = time.Duration(secs) * time.Second
			settings.Accelerated = true
		}
	}

	if settings.Accelerated {
		settings.EscalationInterval = detector.AcceleratedEscalationInterval
	}
	return settings
}

// ProbeTimeout returns the per-probe deadline.
func ProbeTimeout(cfg *Config) time.Duration {
	if d, err := time.ParseDuration(cfg.Probe.Timeout); err == nil && d > 0 {
		return d
	}
	d, _ := time.ParseDuration(defaultProbeTimeout)
	return d
}

// WatchDebounce returns the install watcher's coalescing window.
func WatchDebounce(cfg *Config) time.Duration {
	if d, err := time.ParseDuration(cfg.Update.WatchDebounce); err == nil && d > 0 {
		return d
	}
	d, _ := time.ParseDuration(defaultWatchDebounce)
	return d
}
