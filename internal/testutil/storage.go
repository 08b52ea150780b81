package testutil

import (
	"context"
	"testing"

	"github.com/adanyl0v/go-tasks/internal/storage/sqlite"
)

// NewTestStorage creates an in-memory sqlite storage with the schema applied.
// It is closed automatically when the test completes.
func NewTestStorage(t *testing.T) *sqlite.Storage {
	t.Helper()

	s, err := sqlite.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("creating test storage: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test storage: %v", err)
		}
	})

	return s
}
