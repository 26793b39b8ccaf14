package testutil

import (
	"context"
	"sync/atomic"

	"stillness/internal/storage"
)

// FailingStore wraps a Store and injects errors on selected operations.
// This enables degrade-to-default tests by simulating unavailable storage
// at precise points.
type FailingStore struct {
	Store storage.Store
	// FailGets makes every Get return Err.
	FailGets bool
	// FailSets makes every Set return Err.
	FailSets bool
	// FailSetOn injects Err on the Nth Set call only (counted from 1)
	// when FailSets is false. Zero disables it.
	FailSetOn int32
	Err       error

	setCount atomic.Int32
}

func (f *FailingStore) Get(ctx context.Context, key string) ([]byte, error) {
	if f.FailGets {
		return nil, f.Err
	}
	return f.Store.Get(ctx, key)
}

func (f *FailingStore) Set(ctx context.Context, key string, value []byte) error {
	n := f.setCount.Add(1)
	if f.FailSets || (f.FailSetOn > 0 && n == f.FailSetOn) {
		return f.Err
	}
	return f.Store.Set(ctx, key, value)
}
