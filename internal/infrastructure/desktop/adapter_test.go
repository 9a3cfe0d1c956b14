package desktop

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/upgradewatch/internal/application/port"
)

func TestAdapter_ShowBuildsArguments(t *testing.T) {
	var gotName string
	var gotArgs []string
	a := &Adapter{
		appName: "upgradewatch",
		path:    "/usr/bin/notify-send",
		run: func(_ context.Context, name string, args ...string) ([]byte, error) {
			gotName, gotArgs = name, args
			return []byte("42\n"), nil
		},
	}

	id, err := a.Show(context.Background(), "Restart", "now", port.NotificationError, 5000)
	require.NoError(t, err)

	assert.Equal(t, port.NotificationID("42"), id)
	assert.Equal(t, "/usr/bin/notify-send", gotName)
	assert.Equal(t, []string{
		"--app-name=upgradewatch",
		"--urgency=critical",
		"--icon=dialog-error",
		"--print-id",
		"--expire-time=5000",
		"Restart",
		"now",
	}, gotArgs)
}

func TestAdapter_ShowWithoutBinary(t *testing.T) {
	a := &Adapter{appName: "upgradewatch"}

	_, err := a.Show(context.Background(), "t", "m", port.NotificationInfo, 0)
	assert.ErrorIs(t, err, ErrNotifierUnavailable)
	assert.False(t, a.Available())
}

func TestAdapter_ShowPropagatesFailure(t *testing.T) {
	a := &Adapter{
		path: "/usr/bin/notify-send",
		run: func(context.Context, string, ...string) ([]byte, error) {
			return nil, errors.New("no dbus session")
		},
	}

	_, err := a.Show(context.Background(), "t", "m", port.NotificationWarning, 0)
	assert.ErrorContains(t, err, "no dbus session")
}

func TestUrgency(t *testing.T) {
	assert.Equal(t, "low", urgency(port.NotificationInfo))
	assert.Equal(t, "normal", urgency(port.NotificationWarning))
	assert.Equal(t, "critical", urgency(port.NotificationError))
}
