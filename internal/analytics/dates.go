package analytics

import (
	"time"

	"stillness/internal/domain"
)

// startOfDay truncates t to its calendar day at UTC midnight, matching how
// session date strings parse.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole days from earlier to later. Both arguments
// are expected to be midnight-aligned.
func daysBetween(earlier, later time.Time) int {
	return int(later.Sub(earlier).Hours() / 24)
}

func parseDates(sessions []domain.Session) []time.Time {
	dates := make([]time.Time, 0, len(sessions))
	for _, s := range sessions {
		if d, ok := s.Day(); ok {
			dates = append(dates, d)
		}
	}
	return dates
}
