package styles

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/upgradewatch/internal/domain/entity"
	"github.com/bnema/upgradewatch/internal/domain/service"
)

// WatchRenderer renders status lines printed by the watch command.
type WatchRenderer struct {
	theme *Theme
}

// NewWatchRenderer creates a new watch renderer with the given theme.
func NewWatchRenderer(theme *Theme) *WatchRenderer {
	return &WatchRenderer{theme: theme}
}

// RenderStarted renders the startup line.
func (r *WatchRenderer) RenderStarted(running string, checkEvery time.Duration, active bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	if !active {
		return fmt.Sprintf("  %s Watching disabled for %s\n",
			lipgloss.NewStyle().Foreground(r.theme.Warning).Render(IconInfo),
			r.theme.Highlight.Render(running),
		)
	}
	return fmt.Sprintf("  %s Watching %s, checking every %s\n",
		iconStyle.Render(IconClock),
		r.theme.Highlight.Render(running),
		r.theme.Subtle.Render(checkEvery.String()),
	)
}

// RenderStatus renders the detector state after an event. accelerated
// selects the escalation unit used to predict the next stage.
func (r *WatchRenderer) RenderStatus(state entity.DetectionState, accelerated bool, now time.Time) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.StageColor(state.Stage))
	if !state.UpgradeDetected {
		return fmt.Sprintf("  %s No upgrade pending\n", iconStyle.Render(IconCheck))
	}

	pending := now.Sub(state.DetectedAt).Truncate(time.Second)
	line := fmt.Sprintf("  %s Upgrade pending for %s %s",
		iconStyle.Render(IconBell),
		r.theme.Subtle.Render(pending.String()),
		r.theme.StageBadge(state.Stage),
	)
	if state.TerminalReached() {
		return line + " " + r.theme.Subtle.Render("(final)") + "\n"
	}
	if next, ok := service.NextThreshold(state.Stage, state.Unstable, accelerated); ok {
		remaining := max(state.DetectedAt.Add(next).Sub(now), 0).Truncate(time.Second)
		line += " " + r.theme.Subtle.Render("next stage in "+remaining.String())
	}
	return line + "\n"
}
