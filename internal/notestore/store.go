// Package notestore defines the note persistence abstraction and its backends.
package notestore

import (
	"context"

	"github.com/starford/ansuz/internal/models"
)

// Store is the interface for note persistence.
//
// List returns notes in insertion order. Get, Update, and Delete return
// apperr.ErrNotFound when no note with the given id exists. Implementations
// must serialize concurrent writes so that updates to the same note never
// interleave into a corrupted record.
type Store interface {
	// Create stores a new note with a generated id and creation timestamp.
	Create(ctx context.Context, title, content string) (*models.Note, error)
	// List returns all notes in insertion order.
	List(ctx context.Context) ([]models.Note, error)
	// Get returns the note with the given id.
	Get(ctx context.Context, id string) (*models.Note, error)
	// Update replaces title and/or content of an existing note. Nil fields
	// are left unchanged.
	Update(ctx context.Context, id string, title, content *string) (*models.Note, error)
	// Delete removes the note with the given id.
	Delete(ctx context.Context, id string) error
}
