package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func TestSetUpdateDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "20m", mgr.viper.GetString("update.escalation_interval"))
	assert.False(t, mgr.viper.GetBool("update.disable_background_networking"))
	assert.Equal(t, "exec", mgr.viper.GetString("probe.kind"))
}

func TestManager_LoadCreatesDefaultFile(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	want := filepath.Join(root, "config", appName, "config.toml")
	assert.FileExists(t, want)
	assert.Equal(t, want, mgr.GetConfigFile())

	cfg := mgr.Get()
	assert.Equal(t, filepath.Join(root, "data", appName, databaseName), cfg.Database.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestManager_LoadFileAndEnv(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[update]
check_interval_sec = "30"
channel = "Canary"

[probe]
kind = "FILE"
manifest_path = "/opt/app/version.json"
`), 0o600))
	t.Setenv("UPGRADEWATCH_UPDATE_DISABLE_BACKGROUND_NETWORKING", "true")
	t.Setenv("UPGRADEWATCH_LOG_LEVEL", "debug")

	mgr, err := NewManager(WithConfigFile(path))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "30", cfg.Update.CheckIntervalSec)
	assert.Equal(t, "canary", cfg.Update.Channel)
	assert.Equal(t, ProbeKindFile, cfg.Probe.Kind)
	assert.True(t, cfg.Update.DisableBackgroundNetworking)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestManager_LoadWithoutFile(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager(WithoutDefaultFile())
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.NoFileExists(t, filepath.Join(root, "config", appName, "config.toml"))
	assert.Equal(t, "20m", mgr.Get().Update.EscalationInterval)
}

func TestManager_FlagsOverrideFile(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[update]\ncheck_interval_sec = \"600\"\n"), 0o600))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String(FlagCheckInterval, "", "")
	flags.Bool(FlagDisableBackgroundNetworking, false, "")
	require.NoError(t, flags.Parse([]string{"--" + FlagCheckInterval + "=5", "--" + FlagDisableBackgroundNetworking}))

	mgr, err := NewManager(WithConfigFile(path))
	require.NoError(t, err)
	require.NoError(t, mgr.BindFlags(flags))
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "5", cfg.Update.CheckIntervalSec)
	assert.True(t, cfg.Update.DisableBackgroundNetworking)
}

func TestManager_MalformedIntervalDoesNotFailLoad(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[update]\ncheck_interval_sec = \"soon\"\n"), 0o600))

	mgr, err := NewManager(WithConfigFile(path))
	require.NoError(t, err)
	assert.NoError(t, mgr.Load())
}

func TestManager_InvalidValuesFailLoad(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[update]
escalation_interval = "often"
channel = "bleeding"

[probe]
kind = "file"
`), 0o600))

	mgr, err := NewManager(WithConfigFile(path))
	require.NoError(t, err)
	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "update.escalation_interval")
	assert.Contains(t, err.Error(), "update.channel")
	assert.Contains(t, err.Error(), "probe.manifest_path")
}

func TestGet_DefaultsWithoutManager(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	assert.Equal(t, DefaultConfig(), mgr.Get())
}
