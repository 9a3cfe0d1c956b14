package config

const (
	dirPerm  = 0o755
	filePerm = 0o644

	defaultEscalationInterval = "20m"
	defaultWatchDebounce      = "2s"
	defaultProbeTimeout       = "10s"
	defaultVersionFlag        = "--product-version"
	defaultRetentionDays      = 90
	defaultMetricsListen      = "127.0.0.1:9464"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Update: UpdateConfig{
			EscalationInterval: defaultEscalationInterval,
			WatchInstall:       true,
			WatchDebounce:      defaultWatchDebounce,
		},
		Probe: ProbeConfig{
			Kind:        ProbeKindExec,
			VersionFlag: defaultVersionFlag,
			Timeout:     defaultProbeTimeout,
		},
		Notify: NotifyConfig{
			Desktop: true,
			Journal: true,
		},
		Database: DatabaseConfig{
			RetentionDays: defaultRetentionDays,
		},
		Metrics: MetricsConfig{
			Listen: defaultMetricsListen,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 14,
			Compress:   true,
		},
	}
}
