package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"stillness/internal/domain"
	"stillness/internal/storage"
)

// KVSessionRepo implements SessionRepo as a single JSON blob in a Store.
type KVSessionRepo struct {
	store storage.Store
}

// NewKVSessionRepo creates a new KVSessionRepo.
func NewKVSessionRepo(store storage.Store) *KVSessionRepo {
	return &KVSessionRepo{store: store}
}

func (r *KVSessionRepo) List(ctx context.Context) ([]domain.Session, error) {
	data, err := r.store.Get(ctx, KeySessions)
	if err != nil {
		return nil, fmt.Errorf("loading sessions: %w", err)
	}
	var sessions []domain.Session
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, fmt.Errorf("decoding sessions: %w", err)
	}
	return sessions, nil
}

func (r *KVSessionRepo) SaveAll(ctx context.Context, sessions []domain.Session) error {
	data, err := json.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("encoding sessions: %w", err)
	}
	if err := r.store.Set(ctx, KeySessions, data); err != nil {
		return fmt.Errorf("saving sessions: %w", err)
	}
	return nil
}
