package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/upgradewatch/internal/cli/styles"
)

var (
	historyJSON  bool
	historyMax   int
	historyPrune bool
)

const defaultHistoryMax = 20

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List journaled upgrade events",
	Long: `List the upgrade-available and upgrade-recommended events recorded by
'watch', newest first.

Use --prune to delete events older than database.retention_days.`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.Flags().IntVar(&historyMax, "max", defaultHistoryMax, "maximum entries to show")
	historyCmd.Flags().BoolVar(&historyPrune, "prune", false, "delete events past the retention window first")
}

type historyEntry struct {
	ID         int64     `json:"id"`
	Kind       string    `json:"kind"`
	Stage      string    `json:"stage"`
	Running    string    `json:"running_version"`
	OccurredAt time.Time `json:"occurred_at"`
}

func runHistory(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	if historyPrune {
		if _, err := app.HistoryUC.Prune(ctx, app.Config.Database.RetentionDays); err != nil {
			return err
		}
	}

	events, err := app.HistoryUC.Recent(ctx, historyMax)
	if err != nil {
		return err
	}

	if historyJSON {
		out := make([]historyEntry, 0, len(events))
		for _, e := range events {
			out = append(out, historyEntry{
				ID:         e.ID,
				Kind:       e.Kind.String(),
				Stage:      e.Stage.String(),
				Running:    e.Running,
				OccurredAt: e.OccurredAt,
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println(styles.NewHistoryRenderer(app.Theme).Render(events, app.DatabasePath()))
	return nil
}
