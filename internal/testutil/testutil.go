// Package testutil provides shared test helpers for stores and summarizers.
package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/starford/ansuz/internal/notestore"
)

// SeededStore creates an in-memory store pre-populated with the given
// title/content pairs, in order.
func SeededStore(t *testing.T, notes ...[2]string) *notestore.Memory {
	t.Helper()
	store := notestore.NewMemory()
	for _, n := range notes {
		if _, err := store.Create(context.Background(), n[0], n[1]); err != nil {
			t.Fatalf("seed note %q: %v", n[0], err)
		}
	}
	return store
}

// TestSQLite creates a temporary SQLite store that is automatically cleaned up.
func TestSQLite(t *testing.T) *notestore.SQLite {
	t.Helper()
	dbFile, err := os.CreateTemp("", "ansuz-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := notestore.OpenSQLite(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// StubSummarizer returns a canned summary or error and records calls.
type StubSummarizer struct {
	Summary  string
	Err      error
	Calls    int
	LastText string
}

// Summarize implements summarizer.Summarizer.
func (s *StubSummarizer) Summarize(_ context.Context, text string) (string, error) {
	s.Calls++
	s.LastText = text
	if s.Err != nil {
		return "", s.Err
	}
	return s.Summary, nil
}
