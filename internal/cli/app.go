// Package cli wires configuration, logging and infrastructure together
// for the command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/upgradewatch/internal/application/usecase"
	"github.com/bnema/upgradewatch/internal/cli/styles"
	"github.com/bnema/upgradewatch/internal/domain/build"
	"github.com/bnema/upgradewatch/internal/domain/repository"
	"github.com/bnema/upgradewatch/internal/infrastructure/config"
	"github.com/bnema/upgradewatch/internal/infrastructure/env"
	"github.com/bnema/upgradewatch/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/upgradewatch/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info
	Install   env.Install

	db      *sqlite.JournalDB
	Journal repository.UpgradeEventRepository

	// Use cases
	HistoryUC *usecase.UpgradeHistoryUseCase

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application from a loaded configuration. The
// journal database is opened on first use.
func NewApp(cfg *config.Config, info build.Info) (*App, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	logger, cleanup, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	ctx := logging.WithContext(context.Background(), logger)

	db := sqlite.NewJournalDB(cfg.Database.Path)
	journal := sqlite.NewLazyUpgradeEventRepository(db)

	install := env.Detect(ctx)

	logger.Debug().
		Str("db_path", cfg.Database.Path).
		Str("version", info.Version).
		Msg("cli initialized")

	return &App{
		Config:     cfg,
		Theme:      styles.NewTheme(),
		BuildInfo:  info,
		Install:    install,
		db:         db,
		Journal:    journal,
		HistoryUC:  usecase.NewUpgradeHistoryUseCase(journal),
		ctx:        ctx,
		logCleanup: cleanup,
	}, nil
}

// newLogger builds the process logger. Console output goes to stderr; when
// file logging is enabled a rotated file receives the same events as JSON.
func newLogger(cfg *config.Config) (zerolog.Logger, func(), error) {
	level := logging.ParseLevel(cfg.Logging.Level, zerolog.InfoLevel)
	stderr := logging.New(logging.Config{
		Level:      level,
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
		Output:     os.Stderr,
	})
	if !cfg.Logging.EnableFileLog {
		return stderr, func() {}, nil
	}

	dir := cfg.Logging.LogDir
	if dir == "" {
		var err error
		if dir, err = config.GetLogDir(); err != nil {
			return zerolog.Logger{}, nil, fmt.Errorf("resolve log dir: %w", err)
		}
	}
	rotator, err := logging.NewLogRotator(logging.RotatorOptions{
		Dir:        dir,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	})
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("open log file: %w", err)
	}

	var console io.Writer = os.Stderr
	if cfg.Logging.Format != "json" {
		console = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	}
	logger := zerolog.New(zerolog.MultiLevelWriter(console, rotator)).
		Level(level).
		With().
		Timestamp().
		Logger()
	return logger, func() { _ = rotator.Close() }, nil
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	if a.db != nil {
		err = a.db.Close()
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// DatabasePath returns the journal location.
func (a *App) DatabasePath() string {
	return a.db.Path()
}
