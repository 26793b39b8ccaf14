package achievement

import (
	"time"

	"stillness/internal/domain"
)

// Thresholds for the unlock predicates.
const (
	modeSessionsNeeded  = 10
	totalSessionsNeeded = 50
	totalMinutesNeeded  = 600
	streakDaysNeeded    = 7
)

// Evaluate tests every still-locked achievement against the session log and
// the freshly recomputed stats. Already-unlocked achievements pass through
// untouched, so evaluating twice never re-triggers an unlock or overwrites
// its timestamp. Ids outside the known catalog also pass through unchanged.
// Returns the full updated collection plus the achievements unlocked in this
// pass, stamped with unlockedAt = now.
func Evaluate(sessions []domain.Session, stats domain.UserStats, current []domain.Achievement, now time.Time) (updated, newlyUnlocked []domain.Achievement) {
	updated = make([]domain.Achievement, 0, len(current))
	for _, a := range current {
		if !a.Unlocked && satisfied(a.ID, sessions, stats) {
			a.Unlocked = true
			unlockedAt := now
			a.UnlockedAt = &unlockedAt
			newlyUnlocked = append(newlyUnlocked, a)
		}
		updated = append(updated, a)
	}
	return updated, newlyUnlocked
}

// satisfied is the closed predicate table. Unknown ids never unlock.
func satisfied(id string, sessions []domain.Session, stats domain.UserStats) bool {
	switch id {
	case domain.AchFirstSession:
		return len(sessions) >= 1
	case domain.AchWeekStreak:
		return stats.CurrentStreak >= streakDaysNeeded
	case domain.AchMorningPerson:
		return countMode(sessions, domain.ModeMorning) >= modeSessionsNeeded
	case domain.AchNightOwl:
		return countMode(sessions, domain.ModeEvening) >= modeSessionsNeeded
	case domain.AchZenMaster:
		return len(sessions) >= totalSessionsNeeded
	case domain.AchTimeKeeper:
		return stats.TotalMinutes >= totalMinutesNeeded
	}
	return false
}

func countMode(sessions []domain.Session, mode domain.SessionMode) int {
	n := 0
	for _, s := range sessions {
		if s.Mode == mode {
			n++
		}
	}
	return n
}
