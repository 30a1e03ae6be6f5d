// Package models defines the domain types for Ansuz.
package models

import "time"

// Note is a single stored note. ID and CreatedAt are assigned at creation
// and never change; Title and Content may be replaced by updates.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
