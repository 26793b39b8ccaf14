package formatter

import (
	"fmt"
	"strings"
	"time"

	"stillness/internal/domain"
)

const weeklyBarWidth = 20

// FormatStats formats a UserStats snapshot.
func FormatStats(stats domain.UserStats) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render("Meditation Stats") + "\n\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Sessions:"), Bold(fmt.Sprintf("%d", stats.TotalSessions))))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Minutes: "), Bold(fmt.Sprintf("%d", stats.TotalMinutes))))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Streak:  "), streakLine(stats)))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Last:    "), lastSession(stats.LastSessionDate)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %s / %s / %s\n",
		Dim("Favorites:"),
		StylePurple.Render(string(stats.FavoriteMode)),
		StylePurple.Render(stats.FavoritePattern),
		StylePurple.Render(stats.FavoriteSound),
	))

	return b.String()
}

func streakLine(stats domain.UserStats) string {
	current := fmt.Sprintf("%d day", stats.CurrentStreak)
	if stats.CurrentStreak != 1 {
		current += "s"
	}
	if stats.CurrentStreak > 0 {
		current = StyleGreen.Render(current + " 🔥")
	} else {
		current = Dim(current)
	}
	return fmt.Sprintf("%s %s", current, Dim(fmt.Sprintf("(longest %d)", stats.LongestStreak)))
}

func lastSession(date string) string {
	if date == "" {
		return Dim("never")
	}
	return StyleFg.Render(date)
}

// FormatAchievements formats the achievement collection, unlocked first in
// the catalog's order.
func FormatAchievements(achievements []domain.Achievement) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render("Achievements") + "\n\n")
	for _, a := range achievements {
		if a.Unlocked {
			line := fmt.Sprintf("  %s %s", a.Icon, StyleGreen.Render(a.Title))
			if a.UnlockedAt != nil {
				line += " " + Dim(a.UnlockedAt.Format("2006-01-02"))
			}
			b.WriteString(line + "\n")
		} else {
			b.WriteString(fmt.Sprintf("  %s %s — %s\n", Dim("🔒"), Dim(a.Title), Dim(a.Description)))
		}
	}

	return b.String()
}

// FormatWeeklyProgress renders the seven-day chart, one bar per day scaled
// against the busiest day of the window.
func FormatWeeklyProgress(progress []domain.DailyMinutes) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render("Last 7 Days") + "\n\n")

	max := 0
	for _, day := range progress {
		if day.Minutes > max {
			max = day.Minutes
		}
	}

	for _, day := range progress {
		label := day.Date
		if parsed, err := time.Parse(domain.DateLayout, day.Date); err == nil {
			label = parsed.Format("Mon 01-02")
		}
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			Dim(label),
			RenderBar(day.Minutes, max, weeklyBarWidth),
			StyleFg.Render(fmt.Sprintf("%d min", day.Minutes)),
		))
	}

	return b.String()
}

// FormatUnlocked announces achievements unlocked by an append.
func FormatUnlocked(newlyUnlocked []domain.Achievement) string {
	if len(newlyUnlocked) == 0 {
		return ""
	}
	var b strings.Builder
	for _, a := range newlyUnlocked {
		b.WriteString(fmt.Sprintf("%s Achievement unlocked: %s — %s\n",
			a.Icon, StyleGreen.Render(a.Title), Dim(a.Description)))
	}
	return b.String()
}
