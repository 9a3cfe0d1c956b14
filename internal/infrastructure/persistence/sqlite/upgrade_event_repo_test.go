package sqlite_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/upgradewatch/internal/domain/entity"
	"github.com/bnema/upgradewatch/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/upgradewatch/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func TestUpgradeEventRepository_SaveAndGetRecent(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "journal.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewUpgradeEventRepository(db)
	base := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)

	events := []*entity.UpgradeEvent{
		{Kind: entity.EventUpgradeAvailable, Stage: entity.StageNone, Running: "1.0.0", OccurredAt: base},
		{Kind: entity.EventUpgradeRecommended, Stage: entity.StageLow, Running: "1.0.0", OccurredAt: base.Add(2 * time.Hour)},
		{Kind: entity.EventUpgradeRecommended, Stage: entity.StageElevated, Running: "1.0.0", OccurredAt: base.Add(4 * time.Hour)},
	}
	for _, e := range events {
		require.NoError(t, repo.Save(ctx, e))
		assert.NotZero(t, e.ID)
	}

	got, err := repo.GetRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, entity.EventUpgradeRecommended, got[0].Kind)
	assert.Equal(t, entity.StageElevated, got[0].Stage)
	assert.Equal(t, "1.0.0", got[0].Running)
	assert.True(t, got[0].OccurredAt.Equal(base.Add(4*time.Hour)))
	assert.Equal(t, entity.StageLow, got[1].Stage)
}

func TestUpgradeEventRepository_GetRecentEmpty(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "journal.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewUpgradeEventRepository(db)

	got, err := repo.GetRecent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = repo.GetRecent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUpgradeEventRepository_DeleteOlderThan(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "journal.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewUpgradeEventRepository(db)
	cutoff := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, &entity.UpgradeEvent{Kind: entity.EventUpgradeAvailable, OccurredAt: cutoff.Add(-time.Hour)}))
	require.NoError(t, repo.Save(ctx, &entity.UpgradeEvent{Kind: entity.EventUpgradeAvailable, OccurredAt: cutoff.Add(time.Hour)}))

	n, err := repo.DeleteOlderThan(ctx, cutoff.Unix())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := repo.GetRecent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestUpgradeEventRepository_SaveNil(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "journal.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	assert.Error(t, sqlite.NewUpgradeEventRepository(db).Save(ctx, nil))
}

func TestMigrations_Idempotent(t *testing.T) {
	ctx := testCtx()
	path := filepath.Join(t.TempDir(), "journal.sqlite")

	db, err := sqlite.NewConnection(ctx, path)
	require.NoError(t, err)
	v1, err := sqlite.GetMigrationStatus(ctx, db)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = sqlite.NewConnection(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	v2, err := sqlite.GetMigrationStatus(ctx, db)
	require.NoError(t, err)

	assert.Equal(t, int64(1), v1)
	assert.Equal(t, v1, v2)
}

func TestLazyUpgradeEventRepository_DefersOpen(t *testing.T) {
	ctx := testCtx()
	store := sqlite.NewJournalDB(filepath.Join(t.TempDir(), "journal.sqlite"))
	t.Cleanup(func() { _ = store.Close() })

	repo := sqlite.NewLazyUpgradeEventRepository(store)
	assert.False(t, store.Opened())

	require.NoError(t, repo.Save(ctx, &entity.UpgradeEvent{Kind: entity.EventUpgradeAvailable, OccurredAt: time.Now()}))
	assert.True(t, store.Opened())

	got, err := repo.GetRecent(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

type flakyStore struct {
	err   error
	db    *sql.DB
	calls int
}

func (s *flakyStore) Open(context.Context) (*sql.DB, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.db, nil
}
func (s *flakyStore) Opened() bool { return s.db != nil && s.err == nil }
func (s *flakyStore) Path() string { return "" }
func (s *flakyStore) Close() error { return nil }

func TestLazyUpgradeEventRepository_RecoversAfterOpenError(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "journal.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := &flakyStore{err: errors.New("disk full"), db: db}
	repo := sqlite.NewLazyUpgradeEventRepository(store)

	err = repo.Save(ctx, &entity.UpgradeEvent{Kind: entity.EventUpgradeAvailable, OccurredAt: time.Now()})
	assert.EqualError(t, err, "disk full")

	store.err = nil
	require.NoError(t, repo.Save(ctx, &entity.UpgradeEvent{Kind: entity.EventUpgradeAvailable, OccurredAt: time.Now()}))

	got, err := repo.GetRecent(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 3, store.calls)
}
