package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/upgradewatch/internal/domain/entity"
)

const historyTableWidth = 84

// HistoryRenderer renders the upgrade event journal.
type HistoryRenderer struct {
	theme *Theme
}

// NewHistoryRenderer creates a new history renderer with the given theme.
func NewHistoryRenderer(theme *Theme) *HistoryRenderer {
	return &HistoryRenderer{theme: theme}
}

// Render renders events newest first.
func (r *HistoryRenderer) Render(events []*entity.UpgradeEvent, dbPath string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	header := fmt.Sprintf("\n  %s Upgrade journal %s\n",
		iconStyle.Render(IconDatabase),
		r.theme.Subtle.Render(dbPath),
	)

	if len(events) == 0 {
		return header + "  " + r.theme.Subtle.Render("No upgrade events recorded yet.") + "\n"
	}

	rows := make([]table.Row, 0, len(events))
	for _, e := range events {
		rows = append(rows, UpgradeEventRow(e))
	}
	t := NewStyledTable(r.theme, HistoryTableColumns(), rows, historyTableWidth, len(rows)+1)

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n")
	sb.WriteString(t.View())
	sb.WriteString("\n\n  Latest stage ")
	sb.WriteString(r.theme.StageBadge(events[0].Stage))
	sb.WriteString("\n")
	return sb.String()
}
