package port

import "context"

// NotificationType indicates the visual style of a notification.
type NotificationType int

const (
	// NotificationInfo is for informational messages.
	NotificationInfo NotificationType = iota
	// NotificationSuccess is for success confirmations.
	NotificationSuccess
	// NotificationError is for error messages.
	NotificationError
	// NotificationWarning is for warning messages.
	NotificationWarning
)

// String returns a human-readable representation of the notification type.
func (t NotificationType) String() string {
	switch t {
	case NotificationInfo:
		return "info"
	case NotificationSuccess:
		return "success"
	case NotificationError:
		return "error"
	case NotificationWarning:
		return "warning"
	default:
		return "info"
	}
}

// NotificationID uniquely identifies a displayed notification.
type NotificationID string

// Notification represents the port interface for user-visible desktop
// notifications. This abstracts the presentation layer (libnotify, portals).
type Notification interface {
	// Show displays a notification with the given title, message and type.
	// Duration is in milliseconds; pass 0 for default duration.
	Show(ctx context.Context, title, message string, notifType NotificationType, durationMs int) (NotificationID, error)
}
