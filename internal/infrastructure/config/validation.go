package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/upgradewatch/internal/logging"
)

// validateConfig performs comprehensive validation of configuration values.
// update.check_interval_sec is deliberately absent: a bad value falls back
// to the default schedule instead of failing startup.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateUpdate(config)...)
	validationErrors = append(validationErrors, validateProbe(config)...)
	validationErrors = append(validationErrors, validateDatabase(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateDuration(key, value string, allowEmpty bool) []string {
	if value == "" {
		if allowEmpty {
			return nil
		}
		return []string{key + " must not be empty"}
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return []string{fmt.Sprintf("%s: %q is not a duration", key, value)}
	}
	if d <= 0 {
		return []string{key + " must be positive"}
	}
	return nil
}

func validateUpdate(config *Config) []string {
	var validationErrors []string
	validationErrors = append(validationErrors,
		validateDuration("update.escalation_interval", config.Update.EscalationInterval, true)...)
	validationErrors = append(validationErrors,
		validateDuration("update.watch_debounce", config.Update.WatchDebounce, true)...)

	switch config.Update.Channel {
	case "", "stable", "beta", "dev", "canary", "unstable", "nightly":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("update.channel: unknown channel %q", config.Update.Channel))
	}
	return validationErrors
}

func validateProbe(config *Config) []string {
	validationErrors := validateDuration("probe.timeout", config.Probe.Timeout, true)
	if config.Probe.Kind == ProbeKindFile && config.Probe.ManifestPath == "" {
		validationErrors = append(validationErrors, "probe.manifest_path is required when probe.kind is \"file\"")
	}
	return validationErrors
}

func validateDatabase(config *Config) []string {
	if config.Database.RetentionDays < 0 {
		return []string{"database.retention_days must be non-negative"}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if config.Logging.Level != "" && logging.ParseLevel(config.Logging.Level, zerolog.NoLevel) == zerolog.NoLevel {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level: unknown level %q", config.Logging.Level))
	}
	if config.Logging.MaxSizeMB < 0 || config.Logging.MaxBackups < 0 || config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging rotation limits must be non-negative")
	}
	return validationErrors
}
