package notestore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/starford/ansuz/internal/apperr"
	"github.com/starford/ansuz/internal/models"
)

// Memory implements Store backed by an in-process map.
// Data is lost on restart.
type Memory struct {
	mu    sync.RWMutex
	notes map[string]models.Note
	order []string // ids in insertion order
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{notes: make(map[string]models.Note)}
}

// Create stores a new note with a generated id and creation timestamp.
func (m *Memory) Create(_ context.Context, title, content string) (*models.Note, error) {
	now := time.Now().UTC()
	note := models.Note{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.mu.Lock()
	m.notes[note.ID] = note
	m.order = append(m.order, note.ID)
	m.mu.Unlock()

	return &note, nil
}

// List returns all notes in insertion order.
func (m *Memory) List(_ context.Context) ([]models.Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Note, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.notes[id])
	}
	return out, nil
}

// Get returns the note with the given id.
func (m *Memory) Get(_ context.Context, id string) (*models.Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	note, ok := m.notes[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return &note, nil
}

// Update replaces title and/or content of an existing note.
func (m *Memory) Update(_ context.Context, id string, title, content *string) (*models.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	note, ok := m.notes[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	if title != nil {
		note.Title = *title
	}
	if content != nil {
		note.Content = *content
	}
	note.UpdatedAt = time.Now().UTC()
	m.notes[id] = note

	return &note, nil
}

// Delete removes the note with the given id.
func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.notes[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(m.notes, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}
