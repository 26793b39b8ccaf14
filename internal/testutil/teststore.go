package testutil

import (
	"testing"

	"stillness/internal/storage"
)

// NewTestStore creates an in-memory SQLite-backed store with the schema
// applied. The store is closed when the test completes.
func NewTestStore(t *testing.T) *storage.SQLiteStore {
	t.Helper()
	store, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
