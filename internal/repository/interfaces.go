package repository

import (
	"context"

	"stillness/internal/domain"
)

// Storage keys. Each key holds one JSON-serialized structure; reads and
// writes always cover the full collection under the key.
const (
	KeySessions     = "sessions"
	KeyStats        = "stats"
	KeyAchievements = "achievements"
)

type SessionRepo interface {
	// List returns the full session log in insertion order.
	List(ctx context.Context) ([]domain.Session, error)
	// SaveAll replaces the persisted log as one unit.
	SaveAll(ctx context.Context, sessions []domain.Session) error
}

type StatsRepo interface {
	Get(ctx context.Context) (*domain.UserStats, error)
	Save(ctx context.Context, stats domain.UserStats) error
}

type AchievementRepo interface {
	List(ctx context.Context) ([]domain.Achievement, error)
	SaveAll(ctx context.Context, achievements []domain.Achievement) error
}
