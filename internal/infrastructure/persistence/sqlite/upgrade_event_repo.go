package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bnema/upgradewatch/internal/domain/entity"
	"github.com/bnema/upgradewatch/internal/domain/repository"
	"github.com/bnema/upgradewatch/internal/infrastructure/persistence/sqlite/sqlc"
	"github.com/bnema/upgradewatch/internal/logging"
)

type upgradeEventRepo struct {
	queries *sqlc.Queries
}

// NewUpgradeEventRepository creates a new SQLite-backed event journal.
func NewUpgradeEventRepository(db *sql.DB) repository.UpgradeEventRepository {
	return &upgradeEventRepo{queries: sqlc.New(db)}
}

func (r *upgradeEventRepo) Save(ctx context.Context, event *entity.UpgradeEvent) error {
	if event == nil {
		return fmt.Errorf("upgrade event is nil")
	}

	id, err := r.queries.InsertUpgradeEvent(ctx, sqlc.InsertUpgradeEventParams{
		Kind:           event.Kind.String(),
		Stage:          int64(event.Stage),
		RunningVersion: event.Running,
		OccurredAt:     event.OccurredAt.Unix(),
	})
	if err != nil {
		return fmt.Errorf("insert upgrade event: %w", err)
	}
	event.ID = id

	logging.FromContext(ctx).Debug().
		Int64("id", id).
		Str("kind", event.Kind.String()).
		Str("stage", event.Stage.String()).
		Msg("journaled upgrade event")
	return nil
}

func (r *upgradeEventRepo) GetRecent(ctx context.Context, limit int) ([]*entity.UpgradeEvent, error) {
	if limit <= 0 {
		return []*entity.UpgradeEvent{}, nil
	}
	rows, err := r.queries.GetRecentUpgradeEvents(ctx, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("query upgrade events: %w", err)
	}

	events := make([]*entity.UpgradeEvent, 0, len(rows))
	for i := range rows {
		events = append(events, upgradeEventFromRow(rows[i]))
	}
	return events, nil
}

func (r *upgradeEventRepo) DeleteOlderThan(ctx context.Context, unixSeconds int64) (int64, error) {
	n, err := r.queries.DeleteUpgradeEventsOlderThan(ctx, unixSeconds)
	if err != nil {
		return 0, fmt.Errorf("prune upgrade events: %w", err)
	}
	return n, nil
}

func upgradeEventFromRow(row sqlc.UpgradeEvent) *entity.UpgradeEvent {
	return &entity.UpgradeEvent{
		ID:         row.ID,
		Kind:       entity.ParseEventKind(row.Kind),
		Stage:      entity.Stage(row.Stage),
		Running:    row.RunningVersion,
		OccurredAt: time.Unix(row.OccurredAt, 0),
	}
}
