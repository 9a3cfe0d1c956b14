// Package notifier delivers detector events to logs, the journal,
// the desktop and in-process subscribers.
package notifier

import (
	"context"

	"github.com/bnema/upgradewatch/internal/application/port"
	"github.com/bnema/upgradewatch/internal/domain/entity"
	"github.com/bnema/upgradewatch/internal/logging"
)

// Multi fans an event out to every non-nil notifier, in order.
type Multi []port.Notifier

// Notify implements port.Notifier.
func (m Multi) Notify(ctx context.Context, event entity.Event) {
	for _, n := range m {
		if n != nil {
			n.Notify(ctx, event)
		}
	}
}

// Log writes every event to the logger carried by ctx.
type Log struct{}

// Notify implements port.Notifier.
func (Log) Notify(ctx context.Context, event entity.Event) {
	log := logging.FromContext(ctx)
	ev := log.Info()
	if event.Kind == entity.EventUpgradeRecommended && event.Stage >= entity.StageHigh {
		ev = log.Warn()
	}
	ev.Str("event", event.Kind.String()).
		Str("stage", event.Stage.String()).
		Time("occurred_at", event.OccurredAt).
		Msg("upgrade detector event")
}
