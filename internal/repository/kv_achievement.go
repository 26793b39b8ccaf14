package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"stillness/internal/domain"
	"stillness/internal/storage"
)

// KVAchievementRepo implements AchievementRepo as a single JSON blob in a Store.
type KVAchievementRepo struct {
	store storage.Store
}

// NewKVAchievementRepo creates a new KVAchievementRepo.
func NewKVAchievementRepo(store storage.Store) *KVAchievementRepo {
	return &KVAchievementRepo{store: store}
}

func (r *KVAchievementRepo) List(ctx context.Context) ([]domain.Achievement, error) {
	data, err := r.store.Get(ctx, KeyAchievements)
	if err != nil {
		return nil, fmt.Errorf("loading achievements: %w", err)
	}
	var achievements []domain.Achievement
	if err := json.Unmarshal(data, &achievements); err != nil {
		return nil, fmt.Errorf("decoding achievements: %w", err)
	}
	return achievements, nil
}

func (r *KVAchievementRepo) SaveAll(ctx context.Context, achievements []domain.Achievement) error {
	data, err := json.Marshal(achievements)
	if err != nil {
		return fmt.Errorf("encoding achievements: %w", err)
	}
	if err := r.store.Set(ctx, KeyAchievements, data); err != nil {
		return fmt.Errorf("saving achievements: %w", err)
	}
	return nil
}
