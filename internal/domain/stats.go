package domain

// UserStats is derived in full from the session log. It is a cache of a pure
// computation, never a source of truth, and is recomputed after every append.
type UserStats struct {
	TotalSessions   int         `json:"totalSessions"`
	TotalMinutes    int         `json:"totalMinutes"`
	CurrentStreak   int         `json:"currentStreak"`
	LongestStreak   int         `json:"longestStreak"`
	LastSessionDate string      `json:"lastSessionDate"`
	FavoriteMode    SessionMode `json:"favoriteMode"`
	FavoritePattern string      `json:"favoritePattern"`
	FavoriteSound   string      `json:"favoriteSound"`
}

// DefaultStats returns the stats presented when no session log exists or the
// stats snapshot is unreadable.
func DefaultStats() UserStats {
	return UserStats{
		FavoriteMode:    ModeMorning,
		FavoritePattern: "basic",
		FavoriteSound:   "silence",
	}
}

// DailyMinutes is one day bucket of the weekly progress chart.
type DailyMinutes struct {
	Date    string `json:"date"`
	Minutes int    `json:"minutes"`
}
