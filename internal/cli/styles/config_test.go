package styles_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/upgradewatch/internal/cli/styles"
	"github.com/bnema/upgradewatch/internal/domain/build"
	"github.com/bnema/upgradewatch/internal/domain/entity"
)

func TestConfigRenderer_RenderConfigInfo(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderConfigInfo("/tmp/upgradewatch/config.toml", "[update]\nchannel = 'beta'")
	require.Contains(t, out, "config.toml")
	require.Contains(t, out, "channel = 'beta'")
}

func TestCheckRenderer_Messages(t *testing.T) {
	r := styles.NewCheckRenderer(styles.NewTheme())

	assert.Contains(t, r.RenderUpToDate("1.2.3"), "1.2.3")

	out := r.RenderAvailable("1.2.3", "1.3.0", "exec")
	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, "1.3.0")
	assert.Contains(t, out, "exec probe")

	assert.Contains(t, r.RenderInstalledUnknown("1.2.3", "installed version unreadable"), "installed version unreadable")
	assert.Contains(t, r.RenderError(errors.New("boom")), "boom")
}

func TestHistoryRenderer_Render(t *testing.T) {
	r := styles.NewHistoryRenderer(styles.NewTheme())

	empty := r.Render(nil, "/tmp/journal.sqlite")
	assert.Contains(t, empty, "No upgrade events recorded yet.")

	out := r.Render([]*entity.UpgradeEvent{
		{ID: 2, Kind: entity.EventUpgradeRecommended, Stage: entity.StageHigh, Running: "4.1.0", OccurredAt: time.Now()},
		{ID: 1, Kind: entity.EventUpgradeAvailable, Running: "4.1.0", OccurredAt: time.Now()},
	}, "/tmp/journal.sqlite")
	assert.Contains(t, out, "upgrade-recommended")
	assert.Contains(t, out, "upgrade-available")
	assert.Contains(t, out, "high")
}

func TestAboutRenderer_Render(t *testing.T) {
	r := styles.NewAboutRenderer(styles.NewTheme())

	out := r.Render(build.Info{Version: "0.4.0", Commit: "abc1234", GoVersion: "go1.25"})
	assert.Contains(t, out, "0.4.0")
	assert.Contains(t, out, "abc1234")
	assert.Contains(t, out, "stable")
}
