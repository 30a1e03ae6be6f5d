package internal

import (
	"github.com/starford/ansuz/internal/notestore"
	"github.com/starford/ansuz/internal/summarizer"
)

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config *Config
	store  notestore.Store
	sum    summarizer.Summarizer
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithStore overrides the configured note store (used by tests).
func WithStore(store notestore.Store) Option {
	return func(a *application) {
		a.store = store
	}
}

// WithSummarizer overrides the configured summarizer (used by tests).
func WithSummarizer(sum summarizer.Summarizer) Option {
	return func(a *application) {
		a.sum = sum
	}
}
