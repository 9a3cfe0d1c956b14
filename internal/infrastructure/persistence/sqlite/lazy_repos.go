package sqlite

import (
	"context"
	"database/sql"
	"sync"

	"github.com/bnema/upgradewatch/internal/application/port"
	"github.com/bnema/upgradewatch/internal/domain/entity"
	"github.com/bnema/upgradewatch/internal/domain/repository"
)

// LazyUpgradeEventRepository opens the journal on the first call that needs
// it and retries through the store after a failed open.
type LazyUpgradeEventRepository struct {
	store port.JournalStore

	mu   sync.Mutex
	db   *sql.DB
	repo repository.UpgradeEventRepository
}

// NewLazyUpgradeEventRepository creates a lazy-loading event journal.
func NewLazyUpgradeEventRepository(store port.JournalStore) repository.UpgradeEventRepository {
	return &LazyUpgradeEventRepository{store: store}
}

func (r *LazyUpgradeEventRepository) resolve(ctx context.Context) (repository.UpgradeEventRepository, error) {
	db, err := r.store.Open(ctx)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.db != db {
		r.db = db
		r.repo = NewUpgradeEventRepository(db)
	}
	return r.repo, nil
}

func (r *LazyUpgradeEventRepository) Save(ctx context.Context, event *entity.UpgradeEvent) error {
	repo, err := r.resolve(ctx)
	if err != nil {
		return err
	}
	return repo.Save(ctx, event)
}

func (r *LazyUpgradeEventRepository) GetRecent(ctx context.Context, limit int) ([]*entity.UpgradeEvent, error) {
	repo, err := r.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return repo.GetRecent(ctx, limit)
}

func (r *LazyUpgradeEventRepository) DeleteOlderThan(ctx context.Context, unixSeconds int64) (int64, error) {
	repo, err := r.resolve(ctx)
	if err != nil {
		return 0, err
	}
	return repo.DeleteOlderThan(ctx, unixSeconds)
}
