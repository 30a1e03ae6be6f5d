package apperr

import "errors"

var (
	ErrNotFound              = errors.New("not found")
	ErrStoreUnavailable      = errors.New("store unavailable")
	ErrSummarizerUnavailable = errors.New("summarizer unavailable")
)
