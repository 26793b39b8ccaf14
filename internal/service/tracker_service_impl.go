package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"stillness/internal/achievement"
	"stillness/internal/analytics"
	"stillness/internal/domain"
	"stillness/internal/repository"
	"stillness/internal/storage"

	"github.com/google/uuid"
)

type trackerService struct {
	mu           sync.Mutex
	sessions     repository.SessionRepo
	stats        repository.StatsRepo
	achievements repository.AchievementRepo
	logger       *slog.Logger
	now          func() time.Time
}

// Option configures a tracker service.
type Option func(*trackerService)

// WithLogger sets the diagnostics logger. Degraded-storage paths log here.
func WithLogger(logger *slog.Logger) Option {
	return func(s *trackerService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source used for completion timestamps,
// streak reference dates and unlock stamps.
func WithClock(now func() time.Time) Option {
	return func(s *trackerService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewTrackerService creates the tracker over the three persisted
// collections. All public operations are serialized by one in-process lock;
// callers share a single instance per store.
func NewTrackerService(sessions repository.SessionRepo, stats repository.StatsRepo, achievements repository.AchievementRepo, opts ...Option) TrackerService {
	s := &trackerService{
		sessions:     sessions,
		stats:        stats,
		achievements: achievements,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *trackerService) AppendSession(ctx context.Context, draft domain.SessionDraft) []domain.Achievement {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	record := domain.Session{
		ID:               uuid.New().String(),
		Date:             draft.Date,
		DurationSeconds:  draft.DurationSeconds,
		Mode:             draft.Mode,
		BreathingPattern: draft.BreathingPattern,
		AmbientSound:     draft.AmbientSound,
		CompletedAt:      now.UTC(),
	}
	if record.Date == "" {
		record.Date = now.Format(domain.DateLayout)
	}

	sessions := append(s.loadSessions(ctx), record)
	if err := s.sessions.SaveAll(ctx, sessions); err != nil {
		// Abandon the append; the log on disk is unchanged so stats and
		// achievements must not advance either.
		s.logger.Error("saving session log failed", "error", err)
		return nil
	}

	stats := analytics.Recompute(sessions, now)
	if err := s.stats.Save(ctx, stats); err != nil {
		s.logger.Error("saving stats snapshot failed", "error", err)
	}

	updated, newlyUnlocked := achievement.Evaluate(sessions, stats, s.loadAchievements(ctx), now.UTC())
	if err := s.achievements.SaveAll(ctx, updated); err != nil {
		s.logger.Error("saving achievements failed", "error", err)
	}

	return newlyUnlocked
}

func (s *trackerService) GetSessions(ctx context.Context) []domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadSessions(ctx)
}

func (s *trackerService) GetStats(ctx context.Context) domain.UserStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats, err := s.stats.Get(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("stats snapshot unreadable, using defaults", "error", err)
		}
		return domain.DefaultStats()
	}
	return *stats
}

func (s *trackerService) GetAchievements(ctx context.Context) []domain.Achievement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadAchievements(ctx)
}

func (s *trackerService) GetWeeklyProgress(ctx context.Context, reference time.Time) []domain.DailyMinutes {
	s.mu.Lock()
	defer s.mu.Unlock()
	return analytics.WeeklyProgress(s.loadSessions(ctx), reference)
}

// loadSessions reads the full log, degrading to an empty log when the key
// is absent, the store is unreadable, or the blob does not decode.
func (s *trackerService) loadSessions(ctx context.Context) []domain.Session {
	sessions, err := s.sessions.List(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("session log unreadable, using empty log", "error", err)
		}
		return nil
	}
	return sessions
}

// loadAchievements reads the persisted collection, degrading to the default
// locked catalog.
func (s *trackerService) loadAchievements(ctx context.Context) []domain.Achievement {
	achievements, err := s.achievements.List(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("achievements unreadable, using locked catalog", "error", err)
		}
		return domain.DefaultAchievements()
	}
	return achievements
}
