package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment override (UPGRADEWATCH_UPDATE_CHANNEL, ...).
const EnvPrefix = "UPGRADEWATCH"

// Flag names bound onto config keys.
const (
	FlagCheckInterval               = "check-for-update-interval"
	FlagDisableBackgroundNetworking = "disable-background-networking"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	// createIfMissing writes a default config.toml when none exists.
	createIfMissing bool
}

// ManagerOption customizes a Manager.
type ManagerOption func(*Manager)

// WithConfigFile reads exactly this file instead of searching the XDG config dir.
func WithConfigFile(path string) ManagerOption {
	return func(m *Manager) {
		m.viper.SetConfigFile(path)
	}
}

// WithoutDefaultFile stops Load from creating config.toml on first run.
func WithoutDefaultFile() ManagerOption {
	return func(m *Manager) {
		m.createIfMissing = false
	}
}

// NewManager creates a new configuration manager.
func NewManager(opts ...ManagerOption) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short names kept in line with the logging package.
	if err := v.BindEnv("logging.level", EnvPrefix+"_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_LOG_LEVEL: %w", EnvPrefix, err)
	}
	if err := v.BindEnv("logging.format", EnvPrefix+"_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_LOG_FORMAT: %w", EnvPrefix, err)
	}

	m := &Manager{
		viper:           v,
		callbacks:       make([]func(*Config), 0),
		createIfMissing: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// BindFlags binds command-line switches onto their config keys. Flags
// only override the file and environment when explicitly set.
func (m *Manager) BindFlags(flags *pflag.FlagSet) error {
	bindings := map[string]string{
		FlagCheckInterval:               "update.check_interval_sec",
		FlagDisableBackgroundNetworking: "update.disable_background_networking",
	}
	for name, key := range bindings {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := m.viper.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind --%s: %w", name, err)
		}
	}
	return nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if !m.createIfMissing {
		// Defaults and environment only.
		return nil
	}
	if err := m.createDefaultConfig(); err != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			configDir,
			err,
		)
	}
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read newly created config file: %w", err)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.Update.CheckIntervalSec = strings.TrimSpace(config.Update.CheckIntervalSec)
	config.Update.Channel = strings.ToLower(strings.TrimSpace(config.Update.Channel))

	switch ProbeKind(strings.ToLower(string(config.Probe.Kind))) {
	case ProbeKindFile:
		config.Probe.Kind = ProbeKindFile
	case ProbeKindStaged:
		config.Probe.Kind = ProbeKindStaged
	default:
		config.Probe.Kind = ProbeKindExec
	}
	if config.Probe.VersionFlag == "" {
		config.Probe.VersionFlag = defaultVersionFlag
	}

	config.Logging.Level = strings.ToLower(config.Logging.Level)
	switch config.Logging.Format {
	case "json", "console":
	default:
		config.Logging.Format = "console"
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig creates a default configuration file.
func (*Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setUpdateDefaults(defaults)
	m.setProbeDefaults(defaults)
	m.viper.SetDefault("notify.desktop", defaults.Notify.Desktop)
	m.viper.SetDefault("notify.journal", defaults.Notify.Journal)
	m.viper.SetDefault("database.retention_days", defaults.Database.RetentionDays)
	m.viper.SetDefault("metrics.enabled", defaults.Metrics.Enabled)
	m.viper.SetDefault("metrics.listen", defaults.Metrics.Listen)
	m.setLoggingDefaults(defaults)
}

func (m *Manager) setUpdateDefaults(defaults *Config) {
	m.viper.SetDefault("update.check_interval_sec", defaults.Update.CheckIntervalSec)
	m.viper.SetDefault("update.disable_background_networking", defaults.Update.DisableBackgroundNetworking)
	m.viper.SetDefault("update.escalation_interval", defaults.Update.EscalationInterval)
	m.viper.SetDefault("update.channel", defaults.Update.Channel)
	m.viper.SetDefault("update.watch_install", defaults.Update.WatchInstall)
	m.viper.SetDefault("update.watch_debounce", defaults.Update.WatchDebounce)
}

func (m *Manager) setProbeDefaults(defaults *Config) {
	m.viper.SetDefault("probe.kind", string(defaults.Probe.Kind))
	m.viper.SetDefault("probe.binary", defaults.Probe.Binary)
	m.viper.SetDefault("probe.version_flag", defaults.Probe.VersionFlag)
	m.viper.SetDefault("probe.manifest_path", defaults.Probe.ManifestPath)
	m.viper.SetDefault("probe.timeout", defaults.Probe.Timeout)
	m.viper.SetDefault("probe.running_version", defaults.Probe.RunningVersion)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

// Global configuration manager instance
var globalManager *Manager
var globalManagerOnce sync.Once

// Init initializes the global configuration manager.
func Init(flags *pflag.FlagSet, opts ...ManagerOption) error {
	var err error
	globalManagerOnce.Do(func() {
		globalManager, err = NewManager(opts...)
		if err != nil {
			return
		}
		if flags != nil {
			if err = globalManager.BindFlags(flags); err != nil {
				return
			}
		}
		err = globalManager.Load()
	})
	return err
}

// Get returns the global configuration.
func Get() *Config {
	if globalManager == nil {
		return DefaultConfig()
	}
	return globalManager.Get()
}

// GetManager returns the global configuration manager.
func GetManager() *Manager {
	return globalManager
}
