package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// CheckRenderer renders the result of a one-shot upgrade check.
type CheckRenderer struct {
	theme *Theme
}

// NewCheckRenderer creates a new check renderer with the given theme.
func NewCheckRenderer(theme *Theme) *CheckRenderer {
	return &CheckRenderer{theme: theme}
}

// RenderChecking renders the "probing" message.
func (*CheckRenderer) RenderChecking(spinner string) string {
	return fmt.Sprintf("\n  %s Probing installed version...\n", spinner)
}

// RenderUpToDate renders the "running the installed version" message.
func (r *CheckRenderer) RenderUpToDate(running string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Running the installed version (%s)\n",
		iconStyle.Render(IconCheck),
		r.theme.Highlight.Render(running),
	)
}

// RenderAvailable renders the "restart to upgrade" message.
func (r *CheckRenderer) RenderAvailable(running, installed, source string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	versionStyle := r.theme.Highlight

	return fmt.Sprintf(
		"\n  %s Upgrade installed: %s %s %s\n     %s\n",
		iconStyle.Render(IconRocket),
		versionStyle.Render(running),
		iconStyle.Render(IconArrow),
		versionStyle.Render(installed),
		r.theme.Subtle.Render("read by the "+source+" probe; restart to finish updating"),
	)
}

// RenderInstalledUnknown renders the case where the installed copy could
// not be read, which still counts as an upgrade.
func (r *CheckRenderer) RenderInstalledUnknown(running, reason string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)

	return fmt.Sprintf(
		"\n  %s Running %s, %s\n     %s\n",
		iconStyle.Render(IconWarning),
		r.theme.Highlight.Render(running),
		reason,
		r.theme.Subtle.Render("treated as an upgrade; restart to pick up the installed copy"),
	)
}

// RenderIneligible renders the "probe unavailable" message.
func (r *CheckRenderer) RenderIneligible() string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)
	return fmt.Sprintf(
		"\n  %s No installed-version probe is available on this system\n",
		iconStyle.Render(IconInfo),
	)
}

// RenderAborted renders a cycle that could not be judged.
func (r *CheckRenderer) RenderAborted(reason string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)
	return fmt.Sprintf(
		"\n  %s Check skipped: %s\n",
		iconStyle.Render(IconWarning),
		reason,
	)
}

// RenderError renders an error message.
func (r *CheckRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Check failed: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
