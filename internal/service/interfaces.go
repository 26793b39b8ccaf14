package service

import (
	"context"
	"time"

	"stillness/internal/domain"
)

// TrackerService is the only surface the presentation layer may call; it
// must never touch the persisted keys directly.
//
// No method returns an error: storage failures are logged and degrade to
// the documented defaults (empty log, default stats, locked catalog), and
// failed writes are abandoned without retry.
type TrackerService interface {
	// AppendSession assigns an id and completion timestamp to the draft,
	// appends it to the log, recomputes stats, and re-evaluates
	// achievements. Returns the achievements newly unlocked by this append.
	AppendSession(ctx context.Context, draft domain.SessionDraft) []domain.Achievement
	GetSessions(ctx context.Context) []domain.Session
	GetStats(ctx context.Context) domain.UserStats
	GetAchievements(ctx context.Context) []domain.Achievement
	GetWeeklyProgress(ctx context.Context, reference time.Time) []domain.DailyMinutes
}
