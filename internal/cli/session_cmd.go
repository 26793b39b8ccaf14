package cli

import (
	"context"
	"fmt"
	"time"

	"stillness/internal/cli/formatter"
	"stillness/internal/domain"

	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Record and inspect meditation sessions",
	}

	cmd.AddCommand(
		newSessionLogCmd(app),
		newSessionListCmd(app),
	)

	return cmd
}

func newSessionLogCmd(app *App) *cobra.Command {
	var date, mode, pattern, sound string
	var minutes int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record a completed meditation session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if minutes <= 0 {
				return fmt.Errorf("--minutes must be positive")
			}
			if !domain.ValidModes[mode] {
				return fmt.Errorf("invalid mode %q (morning or evening)", mode)
			}
			if date != "" {
				if _, err := time.Parse(domain.DateLayout, date); err != nil {
					return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
				}
			}

			newlyUnlocked := app.Tracker.AppendSession(context.Background(), domain.SessionDraft{
				Date:             date,
				DurationSeconds:  minutes * 60,
				Mode:             domain.SessionMode(mode),
				BreathingPattern: pattern,
				AmbientSound:     sound,
			})

			fmt.Printf("Logged %d minute session.\n", minutes)
			fmt.Print(formatter.FormatUnlocked(newlyUnlocked))
			return nil
		},
	}

	cmd.Flags().IntVar(&minutes, "minutes", 0, "Session length in minutes")
	cmd.Flags().StringVar(&date, "date", "", "Session date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&mode, "mode", "morning", "Session mode: morning or evening")
	cmd.Flags().StringVar(&pattern, "pattern", "basic", "Breathing pattern id")
	cmd.Flags().StringVar(&sound, "sound", "silence", "Ambient sound id")
	_ = cmd.MarkFlagRequired("minutes")

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions := app.Tracker.GetSessions(context.Background())
			if len(sessions) == 0 {
				fmt.Println(formatter.Dim("No sessions recorded yet."))
				return nil
			}
			for _, s := range sessions {
				fmt.Printf("%s  %3d min  %-7s  %s / %s\n",
					formatter.Bold(s.Date),
					s.DurationSeconds/60,
					s.Mode,
					s.BreathingPattern,
					s.AmbientSound,
				)
			}
			return nil
		},
	}
}
