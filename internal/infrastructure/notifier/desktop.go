package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/upgradewatch/internal/application/port"
	"github.com/bnema/upgradewatch/internal/domain/entity"
	"github.com/bnema/upgradewatch/internal/logging"
)

// showTimeout bounds a single notify-send run.
const showTimeout = 5 * time.Second

// Desktop turns detector events into user-visible notifications.
type Desktop struct {
	display port.Notification
	appName string
}

// NewDesktop wraps a notification display.
func NewDesktop(display port.Notification, appName string) *Desktop {
	return &Desktop{display: display, appName: appName}
}

// Notify implements port.Notifier.
func (d *Desktop) Notify(ctx context.Context, event entity.Event) {
	title, body, kind := Describe(d.appName, event)
	if title == "" {
		return
	}

	showCtx, cancel := context.WithTimeout(ctx, showTimeout)
	defer cancel()

	id, err := d.display.Show(showCtx, title, body, kind, 0)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("desktop notification failed")
		return
	}
	logging.FromContext(ctx).Debug().Str("notification_id", string(id)).Msg("desktop notification shown")
}

// Describe renders an event as a title, body and notification type.
// An empty title means the event is not shown.
func Describe(appName string, event entity.Event) (string, string, port.NotificationType) {
	switch event.Kind {
	case entity.EventUpgradeAvailable:
		return fmt.Sprintf("%s update installed", appName),
			"A newer version is on disk. Restart when convenient.",
			port.NotificationInfo
	case entity.EventUpgradeRecommended:
		switch event.Stage {
		case entity.StageLow:
			return fmt.Sprintf("Restart %s to update", appName),
				"An update has been waiting for a while.",
				port.NotificationInfo
		case entity.StageElevated:
			return fmt.Sprintf("Restart %s to update", appName),
				"You are running an outdated version.",
				port.NotificationWarning
		case entity.StageHigh:
			return fmt.Sprintf("%s is out of date", appName),
				"Restart soon to finish updating.",
				port.NotificationWarning
		case entity.StageSevere:
			return fmt.Sprintf("%s is badly out of date", appName),
				"Restart now to finish updating.",
				port.NotificationError
		}
	}
	return "", "", port.NotificationInfo
}
