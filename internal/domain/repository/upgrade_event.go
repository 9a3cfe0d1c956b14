package repository

import (
	"context"

	"github.com/bnema/upgradewatch/internal/domain/entity"
)

// UpgradeEventRepository defines operations for the detector event journal.
type UpgradeEventRepository interface {
	// Save appends an event to the journal and sets its ID.
	Save(ctx context.Context, event *entity.UpgradeEvent) error

	// GetRecent retrieves the most recent events, newest first.
	GetRecent(ctx context.Context, limit int) ([]*entity.UpgradeEvent, error)

	// DeleteOlderThan removes events recorded before the given unix timestamp.
	DeleteOlderThan(ctx context.Context, unixSeconds int64) (int64, error)
}
