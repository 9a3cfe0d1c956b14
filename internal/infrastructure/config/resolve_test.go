package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/upgradewatch/internal/application/detector"
)

func TestResolveSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   detector.Settings
	}{
		{
			name:   "defaults",
			mutate: func(*Config) {},
			want: detector.Settings{
				CheckInterval:      2 * time.Hour,
				EscalationInterval: 20 * time.Minute,
			},
		},
		{
			name:   "valid override accelerates",
			mutate: func(c *Config) { c.Update.CheckIntervalSec = "30" },
			want: detector.Settings{
				CheckInterval:      30 * time.Second,
				EscalationInterval: 500 * time.Millisecond,
				Accelerated:        true,
			},
		},
		{
			name:   "malformed override falls back",
			mutate: func(c *Config) { c.Update.CheckIntervalSec = "30s" },
			want: detector.Settings{
				CheckInterval:      2 * time.Hour,
				EscalationInterval: 20 * time.Minute,
			},
		},
		{
			name:   "zero override falls back",
			mutate: func(c *Config) { c.Update.CheckIntervalSec = "0" },
			want: detector.Settings{
				CheckInterval:      2 * time.Hour,
				EscalationInterval: 20 * time.Minute,
			},
		},
		{
			name:   "custom escalation interval",
			mutate: func(c *Config) { c.Update.EscalationInterval = "5m" },
			want: detector.Settings{
				CheckInterval:      2 * time.Hour,
				EscalationInterval: 5 * time.Minute,
			},
		},
		{
			name: "accelerated ignores escalation interval",
			mutate: func(c *Config) {
				c.Update.EscalationInterval = "5m"
				c.Update.CheckIntervalSec = "1"
			},
			want: detector.Settings{
				CheckInterval:      time.Second,
				EscalationInterval: 500 * time.Millisecond,
				Accelerated:        true,
			},
		},
		{
			name:   "background networking disabled",
			mutate: func(c *Config) { c.Update.DisableBackgroundNetworking = true },
			want: detector.Settings{
				Disabled:           true,
				CheckInterval:      2 * time.Hour,
				EscalationInterval: 20 * time.Minute,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Equal(t, tt.want, ResolveSettings(context.Background(), cfg))
		})
	}
}

func TestResolveSettings_NilConfig(t *testing.T) {
	assert.Equal(t, detector.DefaultSettings(), ResolveSettings(context.Background(), nil))
}

func TestProbeTimeoutAndDebounce(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 10*time.Second, ProbeTimeout(cfg))
	assert.Equal(t, 2*time.Second, WatchDebounce(cfg))

	cfg.Probe.Timeout = "bogus"
	cfg.Update.WatchDebounce = "-1s"
	assert.Equal(t, 10*time.Second, ProbeTimeout(cfg))
	assert.Equal(t, 2*time.Second, WatchDebounce(cfg))
}
