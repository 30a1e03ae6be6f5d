package notestore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/starford/ansuz/internal/apperr"
	"github.com/starford/ansuz/internal/notestore"
	"github.com/starford/ansuz/internal/testutil"
)

// backends runs f once per Store implementation.
func backends(t *testing.T, f func(t *testing.T, store notestore.Store)) {
	t.Run("memory", func(t *testing.T) {
		f(t, notestore.NewMemory())
	})
	t.Run("sqlite", func(t *testing.T) {
		f(t, testutil.TestSQLite(t))
	})
}

func TestCreateAndGet(t *testing.T) {
	backends(t, func(t *testing.T, store notestore.Store) {
		ctx := context.Background()

		created, err := store.Create(ctx, "Groceries", "milk, eggs")
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if created.ID == "" {
			t.Fatal("Create returned empty id")
		}
		if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
			t.Error("timestamps not set")
		}

		got, err := store.Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.Title != "Groceries" || got.Content != "milk, eggs" {
			t.Errorf("Get = %+v", got)
		}
	})
}

func TestListInsertionOrder(t *testing.T) {
	backends(t, func(t *testing.T, store notestore.Store) {
		ctx := context.Background()
		titles := []string{"first", "second", "third"}
		for _, title := range titles {
			if _, err := store.Create(ctx, title, "body"); err != nil {
				t.Fatalf("Create(%q): %v", title, err)
			}
		}

		notes, err := store.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(notes) != len(titles) {
			t.Fatalf("List returned %d notes, want %d", len(notes), len(titles))
		}
		for i, title := range titles {
			if notes[i].Title != title {
				t.Errorf("notes[%d].Title = %q, want %q", i, notes[i].Title, title)
			}
		}
	})
}

func TestGetMissing(t *testing.T) {
	backends(t, func(t *testing.T, store notestore.Store) {
		_, err := store.Get(context.Background(), "no-such-id")
		if !errors.Is(err, apperr.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestUpdatePartial(t *testing.T) {
	backends(t, func(t *testing.T, store notestore.Store) {
		ctx := context.Background()
		created, err := store.Create(ctx, "Draft", "v1")
		if err != nil {
			t.Fatalf("Create: %v", err)
		}

		content := "v2"
		updated, err := store.Update(ctx, created.ID, nil, &content)
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if updated.Title != "Draft" {
			t.Errorf("title changed to %q on content-only update", updated.Title)
		}
		if updated.Content != "v2" {
			t.Errorf("content = %q, want v2", updated.Content)
		}
		if updated.UpdatedAt.Before(created.UpdatedAt) {
			t.Error("UpdatedAt went backwards")
		}

		title := "Final"
		updated, err = store.Update(ctx, created.ID, &title, nil)
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if updated.Title != "Final" || updated.Content != "v2" {
			t.Errorf("after title-only update: %+v", updated)
		}
	})
}

func TestUpdateMissing(t *testing.T) {
	backends(t, func(t *testing.T, store notestore.Store) {
		title := "x"
		_, err := store.Update(context.Background(), "no-such-id", &title, nil)
		if !errors.Is(err, apperr.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestDelete(t *testing.T) {
	backends(t, func(t *testing.T, store notestore.Store) {
		ctx := context.Background()
		first, err := store.Create(ctx, "keep", "a")
		if err != nil {
			t.Fatal(err)
		}
		second, err := store.Create(ctx, "drop", "b")
		if err != nil {
			t.Fatal(err)
		}

		if err := store.Delete(ctx, second.ID); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, err := store.Get(ctx, second.ID); !errors.Is(err, apperr.ErrNotFound) {
			t.Errorf("Get after delete: err = %v, want ErrNotFound", err)
		}

		notes, err := store.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(notes) != 1 || notes[0].ID != first.ID {
			t.Errorf("List after delete = %+v", notes)
		}

		if err := store.Delete(ctx, second.ID); !errors.Is(err, apperr.ErrNotFound) {
			t.Errorf("second Delete: err = %v, want ErrNotFound", err)
		}
	})
}

func TestListEmpty(t *testing.T) {
	backends(t, func(t *testing.T, store notestore.Store) {
		notes, err := store.List(context.Background())
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(notes) != 0 {
			t.Errorf("List on empty store = %+v", notes)
		}
	})
}
