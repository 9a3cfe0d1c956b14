package notifier

import (
	"context"

	"github.com/bnema/upgradewatch/internal/domain/entity"
	"github.com/bnema/upgradewatch/internal/domain/repository"
	"github.com/bnema/upgradewatch/internal/logging"
)

// Journal persists events to the upgrade event repository.
type Journal struct {
	repo    repository.UpgradeEventRepository
	running string
}

// NewJournal returns a notifier that records events along with the
// version of the running process.
func NewJournal(repo repository.UpgradeEventRepository, running string) *Journal {
	return &Journal{repo: repo, running: running}
}

// Notify implements port.Notifier. Write failures are logged and dropped.
func (j *Journal) Notify(ctx context.Context, event entity.Event) {
	record := &entity.UpgradeEvent{
		Kind:       event.Kind,
		Stage:      event.Stage,
		Running:    j.running,
		OccurredAt: event.OccurredAt,
	}
	if err := j.repo.Save(ctx, record); err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Str("event", event.Kind.String()).
			Msg("failed to journal upgrade event")
	}
}
