package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/upgradewatch/internal/domain/entity"
	"github.com/bnema/upgradewatch/internal/domain/repository"
	"github.com/bnema/upgradewatch/internal/logging"
)

const defaultHistoryLimit = 20

// UpgradeHistoryUseCase reads and trims the upgrade event journal.
type UpgradeHistoryUseCase struct {
	repo repository.UpgradeEventRepository
	now  func() time.Time
}

// NewUpgradeHistoryUseCase creates a new history use case.
func NewUpgradeHistoryUseCase(repo repository.UpgradeEventRepository) *UpgradeHistoryUseCase {
	return &UpgradeHistoryUseCase{repo: repo, now: time.Now}
}

// Recent returns the newest journaled events first. A non-positive limit
// uses the default of 20.
func (uc *UpgradeHistoryUseCase) Recent(ctx context.Context, limit int) ([]*entity.UpgradeEvent, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	events, err := uc.repo.GetRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read upgrade history: %w", err)
	}
	return events, nil
}

// Prune deletes events older than retentionDays. Zero or negative keeps
// everything.
func (uc *UpgradeHistoryUseCase) Prune(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}

	cutoff := uc.now().AddDate(0, 0, -retentionDays)
	deleted, err := uc.repo.DeleteOlderThan(ctx, cutoff.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to prune upgrade history: %w", err)
	}

	if deleted > 0 {
		logging.FromContext(ctx).Info().
			Int64("deleted", deleted).
			Int("retention_days", retentionDays).
			Msg("pruned upgrade history")
	}
	return deleted, nil
}
