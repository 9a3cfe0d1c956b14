// Package config loads upgradewatch settings and resolves where its files live.
package config

import (
	"os"
	"path/filepath"
)

const (
	appName         = "upgradewatch"
	databaseName    = "upgradewatch.sqlite"
	configName      = "config.toml"
	stagingDirName  = "pending-update"
	logDirName      = "logs"
	devDirName      = ".dev"
	devModeEnvValue = "dev"
)

// Paths locates everything upgradewatch reads or writes on disk.
type Paths struct {
	// Config holds config.toml.
	Config string
	// Data holds the event journal.
	Data string
	// State holds logs and the staging directory for downloaded updates.
	State string
}

// ResolvePaths follows the XDG base directory layout:
//
//	$XDG_CONFIG_HOME/upgradewatch  (~/.config/upgradewatch)
//	$XDG_DATA_HOME/upgradewatch    (~/.local/share/upgradewatch)
//	$XDG_STATE_HOME/upgradewatch   (~/.local/state/upgradewatch)
//
// With ENV=dev every path collapses into ./.dev/upgradewatch.
func ResolvePaths() (*Paths, error) {
	if os.Getenv("ENV") == devModeEnvValue {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir := filepath.Join(cwd, devDirName, appName)
		return &Paths{Config: dir, Data: dir, State: dir}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return &Paths{
		Config: filepath.Join(xdgBase("XDG_CONFIG_HOME", home, ".config"), appName),
		Data:   filepath.Join(xdgBase("XDG_DATA_HOME", home, ".local", "share"), appName),
		State:  filepath.Join(xdgBase("XDG_STATE_HOME", home, ".local", "state"), appName),
	}, nil
}

func xdgBase(env, home string, fallback ...string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}

// ConfigFile is the main configuration file.
func (p *Paths) ConfigFile() string { return filepath.Join(p.Config, configName) }

// JournalFile is the SQLite event journal.
func (p *Paths) JournalFile() string { return filepath.Join(p.Data, databaseName) }

// StagingDir is where a downloaded update waits until the next start.
func (p *Paths) StagingDir() string { return filepath.Join(p.State, stagingDirName) }

// LogDir receives log files when file logging is enabled.
func (p *Paths) LogDir() string { return filepath.Join(p.State, logDirName) }

func resolve(pick func(*Paths) string) (string, error) {
	p, err := ResolvePaths()
	if err != nil {
		return "", err
	}
	return pick(p), nil
}

// GetConfigDir returns the config directory.
func GetConfigDir() (string, error) {
	return resolve(func(p *Paths) string { return p.Config })
}

// GetConfigFile returns the path to config.toml.
func GetConfigFile() (string, error) { return resolve((*Paths).ConfigFile) }

// GetDatabaseFile returns the path to the event journal.
func GetDatabaseFile() (string, error) { return resolve((*Paths).JournalFile) }

// GetStagingDir returns the directory a pending update is staged in.
func GetStagingDir() (string, error) { return resolve((*Paths).StagingDir) }

// GetLogDir returns the log directory.
func GetLogDir() (string, error) { return resolve((*Paths).LogDir) }

// GetManDir returns the per-user section 1 man page directory,
// $XDG_DATA_HOME/man/man1.
func GetManDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil && os.Getenv("XDG_DATA_HOME") == "" {
		return "", err
	}
	return filepath.Join(xdgBase("XDG_DATA_HOME", home, ".local", "share"), "man", "man1"), nil
}
