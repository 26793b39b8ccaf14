package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"stillness/internal/domain"
	"stillness/internal/storage"
)

// KVStatsRepo implements StatsRepo as a single JSON blob in a Store.
type KVStatsRepo struct {
	store storage.Store
}

// NewKVStatsRepo creates a new KVStatsRepo.
func NewKVStatsRepo(store storage.Store) *KVStatsRepo {
	return &KVStatsRepo{store: store}
}

func (r *KVStatsRepo) Get(ctx context.Context) (*domain.UserStats, error) {
	data, err := r.store.Get(ctx, KeyStats)
	if err != nil {
		return nil, fmt.Errorf("loading stats: %w", err)
	}
	var stats domain.UserStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("decoding stats: %w", err)
	}
	return &stats, nil
}

func (r *KVStatsRepo) Save(ctx context.Context, stats domain.UserStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encoding stats: %w", err)
	}
	if err := r.store.Set(ctx, KeyStats, data); err != nil {
		return fmt.Errorf("saving stats: %w", err)
	}
	return nil
}
