package analytics

import (
	"math"
	"time"

	"stillness/internal/domain"
)

// WeeklyDays is the size of the weekly progress window.
const WeeklyDays = 7

// WeeklyProgress buckets meditation minutes per calendar day for the window
// from reference back six days inclusive. Always returns exactly seven
// buckets in ascending date order; days without sessions stay at zero.
// Each bucket accumulates fractional minutes and rounds once at the end.
func WeeklyProgress(sessions []domain.Session, reference time.Time) []domain.DailyMinutes {
	day := startOfDay(reference)

	order := make([]string, 0, WeeklyDays)
	totals := make(map[string]float64, WeeklyDays)
	for i := WeeklyDays - 1; i >= 0; i-- {
		key := day.AddDate(0, 0, -i).Format(domain.DateLayout)
		order = append(order, key)
		totals[key] = 0
	}

	for _, s := range sessions {
		if _, ok := totals[s.Date]; ok {
			totals[s.Date] += float64(s.DurationSeconds) / 60
		}
	}

	progress := make([]domain.DailyMinutes, 0, WeeklyDays)
	for _, key := range order {
		progress = append(progress, domain.DailyMinutes{
			Date:    key,
			Minutes: int(math.Round(totals[key])),
		})
	}
	return progress
}
