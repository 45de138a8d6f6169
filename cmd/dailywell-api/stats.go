package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dailywell/backend/internal/analytics"
	"github.com/dailywell/backend/internal/models"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the dashboard summaries as JSON",
	Long:  `Compute the mood and sleep summaries shown on the dashboard and print them to stdout.`,
	RunE:  runStats,
}

// statsReport is the document printed by the stats command
type statsReport struct {
	Mood      *models.MoodStats     `json:"mood"`
	MoodByDay *analytics.DayProfile `json:"mood_by_day"`
	Sleep     *models.SleepStats    `json:"sleep"`
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	newLogger(cfg)

	opts, err := serviceOptions(cfg)
	if err != nil {
		return err
	}

	store, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	return writeStats(cmd.Context(), cmd.OutOrStdout(), newServices(store, opts))
}

func writeStats(ctx context.Context, w io.Writer, svc services) error {
	var report statsReport
	var err error

	if report.Mood, err = svc.moods.GetStats(ctx); err != nil {
		return err
	}
	if report.MoodByDay, err = svc.moods.GetAnalytics(ctx); err != nil {
		return err
	}
	if report.Sleep, err = svc.sleep.GetStats(ctx); err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
