package styles

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/upgradewatch/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	// Nothing is selectable in a printed table.
	s.Selected = lipgloss.NewStyle()
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// HistoryTableColumns returns columns for the upgrade journal table.
func HistoryTableColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 6},
		{Title: "When", Width: 20},
		{Title: "Event", Width: 20},
		{Title: "Stage", Width: 10},
		{Title: "Running", Width: 18},
	}
}

// UpgradeEventRow converts a journaled event to a table row.
func UpgradeEventRow(e *entity.UpgradeEvent) table.Row {
	return table.Row{
		strconv.FormatInt(e.ID, 10),
		e.OccurredAt.Local().Format(time.DateTime),
		e.Kind.String(),
		e.Stage.String(),
		e.Running,
	}
}
