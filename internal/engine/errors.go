package engine

import (
	"errors"

	"github.com/dshills/ledit/internal/engine/document"
)

// Errors returned by engine operations.
var (
	// ErrLineTooLong indicates a line grew past the configured maximum.
	// It is fatal for the editing session.
	ErrLineTooLong = document.ErrLineTooLong

	// ErrResourceExhausted indicates the document could not grow.
	ErrResourceExhausted = document.ErrResourceExhausted

	// ErrInconsistent indicates the height cache no longer mirrors the document.
	ErrInconsistent = errors.New("height cache out of sync with document")

	// ErrClosed indicates the engine has released its storage.
	ErrClosed = errors.New("engine is closed")
)
