package cli

import (
	"context"
	"fmt"
	"time"

	"stillness/internal/cli/formatter"

	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate meditation statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats := app.Tracker.GetStats(context.Background())
			fmt.Print(formatter.FormatStats(stats))
			return nil
		},
	}
}

func newAchievementsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "Show achievement unlock state",
		RunE: func(cmd *cobra.Command, args []string) error {
			achievements := app.Tracker.GetAchievements(context.Background())
			fmt.Print(formatter.FormatAchievements(achievements))
			return nil
		},
	}
}

func newProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show the last seven days of meditation minutes",
		RunE: func(cmd *cobra.Command, args []string) error {
			progress := app.Tracker.GetWeeklyProgress(context.Background(), time.Now())
			fmt.Print(formatter.FormatWeeklyProgress(progress))
			return nil
		},
	}
}
