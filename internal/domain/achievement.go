package domain

import "time"

// Achievement ids known to the unlock evaluator. The predicate table is
// closed: ids outside this set are persisted but never unlocked.
const (
	AchFirstSession  = "first_session"
	AchWeekStreak    = "week_streak"
	AchMorningPerson = "morning_person"
	AchNightOwl      = "night_owl"
	AchZenMaster     = "zen_master"
	AchTimeKeeper    = "time_keeper"
)

// Achievement pairs a static definition with its mutable unlock state.
// Unlocked is monotonic: it flips false to true exactly once and UnlockedAt
// is stamped at that transition, never overwritten.
type Achievement struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlockedAt,omitempty"`
}

// DefaultAchievements returns the static catalog with every achievement
// locked. Returned fresh on each call so callers can mutate their copy.
func DefaultAchievements() []Achievement {
	return []Achievement{
		{
			ID:          AchFirstSession,
			Title:       "First Breath",
			Description: "Complete your first meditation session",
			Icon:        "🌱",
		},
		{
			ID:          AchWeekStreak,
			Title:       "Weekly Warrior",
			Description: "Meditate for 7 days in a row",
			Icon:        "🔥",
		},
		{
			ID:          AchMorningPerson,
			Title:       "Morning Person",
			Description: "Complete 10 morning sessions",
			Icon:        "🌅",
		},
		{
			ID:          AchNightOwl,
			Title:       "Night Owl",
			Description: "Complete 10 evening sessions",
			Icon:        "🌙",
		},
		{
			ID:          AchZenMaster,
			Title:       "Zen Master",
			Description: "Complete 50 meditation sessions",
			Icon:        "🧘",
		},
		{
			ID:          AchTimeKeeper,
			Title:       "Time Keeper",
			Description: "Meditate for 10 hours total",
			Icon:        "⏰",
		},
	}
}
