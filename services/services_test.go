package services

import (
	"testing"
	"time"

	"github.com/anjiri1684/mockprep/store"
)

func seededStore(t *testing.T) *store.MemoryStore {
	t.Helper()
	s, err := store.NewSeededMemoryStore(time.Now())
	if err != nil {
		t.Fatalf("Failed to seed store: %v", err)
	}
	return s
}
