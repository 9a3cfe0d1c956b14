// Package desktop shows desktop notifications through notify-send.
package desktop

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/bnema/upgradewatch/internal/application/port"
	"github.com/bnema/upgradewatch/internal/logging"
)

const notifySendBinary = "notify-send"

// ErrNotifierUnavailable means notify-send is not installed.
var ErrNotifierUnavailable = errors.New("notify-send not found in PATH")

type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// Adapter implements port.Notification using notify-send.
type Adapter struct {
	appName string
	path    string
	run     commandRunner
}

// New creates a notification adapter. It still returns a usable adapter
// when notify-send is missing; Show then reports ErrNotifierUnavailable.
func New(appName string) *Adapter {
	a := &Adapter{appName: appName, run: runCommand}
	if path, err := exec.LookPath(notifySendBinary); err == nil {
		a.path = path
	}
	return a
}

// Available reports whether notify-send was found.
func (a *Adapter) Available() bool {
	return a.path != ""
}

// Show implements port.Notification.
func (a *Adapter) Show(
	ctx context.Context,
	title, message string,
	notifType port.NotificationType,
	durationMs int,
) (port.NotificationID, error) {
	if a.path == "" {
		return "", ErrNotifierUnavailable
	}

	args := []string{
		"--app-name=" + a.appName,
		"--urgency=" + urgency(notifType),
		"--icon=" + icon(notifType),
		"--print-id",
	}
	if durationMs > 0 {
		args = append(args, "--expire-time="+strconv.Itoa(durationMs))
	}
	args = append(args, title, message)

	out, err := a.run(ctx, a.path, args...)
	if err != nil {
		return "", fmt.Errorf("notify-send: %w", err)
	}

	id := port.NotificationID(strings.TrimSpace(string(out)))
	logging.FromContext(ctx).Debug().
		Str("type", notifType.String()).
		Str("id", string(id)).
		Msg("notification sent")
	return id, nil
}

func urgency(t port.NotificationType) string {
	switch t {
	case port.NotificationError:
		return "critical"
	case port.NotificationInfo, port.NotificationSuccess:
		return "low"
	default:
		return "normal"
	}
}

func icon(t port.NotificationType) string {
	switch t {
	case port.NotificationError:
		return "dialog-error"
	case port.NotificationWarning:
		return "dialog-warning"
	default:
		return "software-update-available"
	}
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil && stderr.Len() > 0 {
		return out, fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return out, err
}
