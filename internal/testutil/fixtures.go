package testutil

import (
	"time"

	"stillness/internal/domain"

	"github.com/google/uuid"
)

// Session options
type SessionOption func(*domain.Session)

func WithMode(m domain.SessionMode) SessionOption {
	return func(s *domain.Session) {
		s.Mode = m
	}
}

func WithPattern(p string) SessionOption {
	return func(s *domain.Session) {
		s.BreathingPattern = p
	}
}

func WithSound(snd string) SessionOption {
	return func(s *domain.Session) {
		s.AmbientSound = snd
	}
}

func WithDuration(seconds int) SessionOption {
	return func(s *domain.Session) {
		s.DurationSeconds = seconds
	}
}

func WithCompletedAt(t time.Time) SessionOption {
	return func(s *domain.Session) {
		s.CompletedAt = t
	}
}

// NewTestSession builds a ten-minute morning session on the given calendar
// date (domain.DateLayout).
func NewTestSession(date string, opts ...SessionOption) domain.Session {
	s := domain.Session{
		ID:               uuid.New().String(),
		Date:             date,
		DurationSeconds:  600,
		Mode:             domain.ModeMorning,
		BreathingPattern: "basic",
		AmbientSound:     "silence",
		CompletedAt:      time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Day formats an offset in days from base as a session date string.
// Negative offsets go into the past.
func Day(base time.Time, offset int) string {
	return base.AddDate(0, 0, offset).Format(domain.DateLayout)
}
