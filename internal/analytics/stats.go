package analytics

import (
	"math"
	"sort"
	"time"

	"stillness/internal/domain"
)

// Recompute derives UserStats from the full session log. It is a pure
// function of the log plus the reference time; callers must rerun it after
// every append rather than patching the previous snapshot.
func Recompute(sessions []domain.Session, now time.Time) domain.UserStats {
	stats := domain.DefaultStats()
	if len(sessions) == 0 {
		return stats
	}

	var totalSeconds int
	for _, s := range sessions {
		totalSeconds += s.DurationSeconds
	}

	stats.TotalSessions = len(sessions)
	stats.TotalMinutes = int(math.Round(float64(totalSeconds) / 60))
	stats.CurrentStreak = CurrentStreak(sessions, now)
	stats.LongestStreak = LongestStreak(sessions)
	stats.LastSessionDate = sessions[len(sessions)-1].Date

	if v := mostFrequent(sessions, func(s domain.Session) string { return string(s.Mode) }); v != "" {
		stats.FavoriteMode = domain.SessionMode(v)
	}
	if v := mostFrequent(sessions, func(s domain.Session) string { return s.BreathingPattern }); v != "" {
		stats.FavoritePattern = v
	}
	if v := mostFrequent(sessions, func(s domain.Session) string { return s.AmbientSound }); v != "" {
		stats.FavoriteSound = v
	}

	return stats
}

// CurrentStreak counts consecutive meditation days ending today. Walking the
// log newest-date-first, a session extends the streak when its date sits
// exactly streak days behind today, so the streak must include today to count
// at all. Repeat sessions on a day already counted are skipped, so they
// neither extend nor break the streak. Any day gap ends the walk.
func CurrentStreak(sessions []domain.Session, now time.Time) int {
	dates := parseDates(sessions)
	if len(dates) == 0 {
		return 0
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	streak := 0
	today := startOfDay(now)
	for _, d := range dates {
		diff := daysBetween(d, today)
		if diff == streak {
			streak++
		} else if diff > streak {
			break
		}
	}
	return streak
}

// LongestStreak finds the longest run of consecutive calendar days over the
// set of distinct session dates. Unlike CurrentStreak it ignores the
// reference time entirely: a streak long in the past still counts.
func LongestStreak(sessions []domain.Session) int {
	seen := make(map[string]bool, len(sessions))
	var dates []time.Time
	for _, s := range sessions {
		if seen[s.Date] {
			continue
		}
		seen[s.Date] = true
		if d, ok := s.Day(); ok {
			dates = append(dates, d)
		}
	}
	if len(dates) == 0 {
		return 0
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	longest, run := 1, 1
	for i := 1; i < len(dates); i++ {
		if daysBetween(dates[i-1], dates[i]) == 1 {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}
	return longest
}

// mostFrequent returns the value with the strictly highest count over the
// log, picking the field via key. Ties resolve to the value that reached the
// winning count first in log order, which is deterministic because the log
// itself is ordered. Returns "" for an empty log.
func mostFrequent(sessions []domain.Session, key func(domain.Session) string) string {
	counts := make(map[string]int)
	var best string
	var bestCount int
	for _, s := range sessions {
		v := key(s)
		counts[v]++
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best
}
