package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// Config represents the complete configuration for upgradewatch.
type Config struct {
	// Update controls detection scheduling and escalation.
	Update UpdateConfig `mapstructure:"update" toml:"update" json:"update"`
	// Probe selects how the installed version is read.
	Probe ProbeConfig `mapstructure:"probe" toml:"probe" json:"probe"`
	// Notify selects where detector events are delivered.
	Notify NotifyConfig `mapstructure:"notify" toml:"notify" json:"notify"`
	// Database configures the event journal.
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database"`
	// Metrics configures the Prometheus endpoint.
	Metrics MetricsConfig `mapstructure:"metrics" toml:"metrics" json:"metrics"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
}

// UpdateConfig controls upgrade detection.
type UpdateConfig struct {
	// CheckIntervalSec overrides the detection period in seconds. A valid
	// positive value also switches escalation to accelerated (test) timing.
	// Anything else is ignored.
	CheckIntervalSec string `mapstructure:"check_interval_sec" toml:"check_interval_sec" json:"check_interval_sec,omitempty" jsonschema:"pattern=^[0-9]*$"`
	// DisableBackgroundNetworking keeps the detector inert.
	DisableBackgroundNetworking bool `mapstructure:"disable_background_networking" toml:"disable_background_networking" json:"disable_background_networking"`
	// EscalationInterval is how often the stage is recomputed once an
	// upgrade is pending (Go duration syntax).
	EscalationInterval string `mapstructure:"escalation_interval" toml:"escalation_interval" json:"escalation_interval" jsonschema:"default=20m"`
	// Channel overrides the release channel detected at runtime.
	Channel string `mapstructure:"channel" toml:"channel" json:"channel,omitempty" jsonschema:"enum=stable,enum=beta,enum=dev,enum=canary"`
	// WatchInstall triggers an early check when the installed artifact changes on disk.
	WatchInstall bool `mapstructure:"watch_install" toml:"watch_install" json:"watch_install"`
	// WatchDebounce coalesces bursts of filesystem events (Go duration syntax).
	WatchDebounce string `mapstructure:"watch_debounce" toml:"watch_debounce" json:"watch_debounce"`
}

// ProbeKind selects the installed-version reader.
type ProbeKind string

const (
	ProbeKindExec   ProbeKind = "exec"
	ProbeKindFile   ProbeKind = "file"
	ProbeKindStaged ProbeKind = "staged"
)

// ProbeConfig configures the installed-version reader.
type ProbeConfig struct {
	Kind ProbeKind `mapstructure:"kind" toml:"kind" json:"kind" jsonschema:"enum=exec,enum=file,enum=staged"`
	// Binary is the installed executable. Empty means the running executable's path.
	Binary string `mapstructure:"binary" toml:"binary" json:"binary,omitempty"`
	// VersionFlag is passed to Binary to make it print its version.
	VersionFlag string `mapstructure:"version_flag" toml:"version_flag" json:"version_flag"`
	// ManifestPath is read by the file probe (plain text or JSON with a "version" key).
	ManifestPath string `mapstructure:"manifest_path" toml:"manifest_path" json:"manifest_path,omitempty"`
	// Timeout bounds a single probe (Go duration syntax).
	Timeout string `mapstructure:"timeout" toml:"timeout" json:"timeout"`
	// RunningVersion overrides the version reported by the build.
	RunningVersion string `mapstructure:"running_version" toml:"running_version" json:"running_version,omitempty"`
}

// NotifyConfig selects event sinks. The log sink is always on.
type NotifyConfig struct {
	Desktop bool `mapstructure:"desktop" toml:"desktop" json:"desktop"`
	Journal bool `mapstructure:"journal" toml:"journal" json:"journal"`
}

// DatabaseConfig configures the sqlite event journal.
type DatabaseConfig struct {
	// Path defaults to $XDG_DATA_HOME/upgradewatch/upgradewatch.sqlite.
	Path          string `mapstructure:"path" toml:"path" json:"path,omitempty"`
	RetentionDays int    `mapstructure:"retention_days" toml:"retention_days" json:"retention_days" jsonschema:"minimum=0"`
}

// MetricsConfig configures the Prometheus endpoint served by `watch`.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	Listen  string `mapstructure:"listen" toml:"listen" json:"listen"`
}

// LoggingConfig configures zerolog output.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format        string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir,omitempty"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	MaxAgeDays    int    `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days" jsonschema:"minimum=0"`
	Compress      bool   `mapstructure:"compress" toml:"compress" json:"compress"`
}

// GenerateSchema returns the JSON schema of Config.
func GenerateSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/upgradewatch/config.schema.json"
	schema.Title = "upgradewatch configuration"
	schema.Description = "Configuration schema for upgradewatch, the upgrade detection and restart escalation service"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// GenerateSchemaFile writes config.schema.json next to the config file.
func GenerateSchemaFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}

	data, err := GenerateSchema()
	if err != nil {
		return "", err
	}

	schemaFile := filepath.Join(configDir, "config.schema.json")
	if err := os.MkdirAll(configDir, dirPerm); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return schemaFile, nil
}
