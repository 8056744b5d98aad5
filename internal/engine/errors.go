package engine

import (
	"errors"
	"fmt"
)

// EngineError represents a refused or failed engine operation.
//
// Refusals the user needs to hear about are surfaced this way:
//   - Backlog full: a third concurrent delay
//   - Already delayed: delaying the same article twice
//   - Not permitted: a development-only operation in production mode
//   - Storage failure: the durable store's read or write failed
//
// Missing records and re-reads of already-read articles are deliberate
// silent no-ops, not errors; see the ledger operations.
type EngineError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// ArticleID identifies the affected article, when there is one.
	ArticleID string

	// Err is the underlying cause (storage failures only).
	Err error
}

// ErrorCode categorizes engine errors.
type ErrorCode string

const (
	// ErrCodeBacklogFull indicates the backlog already holds the maximum
	// number of delayed articles.
	ErrCodeBacklogFull ErrorCode = "BACKLOG_FULL"

	// ErrCodeAlreadyDelayed indicates the article is already in the backlog.
	ErrCodeAlreadyDelayed ErrorCode = "ALREADY_DELAYED"

	// ErrCodeNotPermitted indicates a development-only operation was invoked
	// in production mode.
	ErrCodeNotPermitted ErrorCode = "NOT_PERMITTED"

	// ErrCodeStorageFailure indicates the durable store failed. The
	// in-memory snapshot stays consistent; re-applying the operation after
	// the store recovers is safe because every mutation is idempotent.
	ErrCodeStorageFailure ErrorCode = "STORAGE_FAILURE"
)

// Error implements the error interface.
func (e *EngineError) Error() string {
	if e.ArticleID != "" {
		return fmt.Sprintf("%s: %s (article=%s)", e.Code, e.Message, e.ArticleID)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *EngineError) Unwrap() error {
	return e.Err
}

// IsBacklogFull returns true if the error is a backlog-capacity refusal.
// Uses errors.As to handle wrapped errors.
func IsBacklogFull(err error) bool {
	return hasCode(err, ErrCodeBacklogFull)
}

// IsAlreadyDelayed returns true if the error is a duplicate-delay refusal.
func IsAlreadyDelayed(err error) bool {
	return hasCode(err, ErrCodeAlreadyDelayed)
}

// IsNotPermitted returns true if the error is a mode-restriction refusal.
func IsNotPermitted(err error) bool {
	return hasCode(err, ErrCodeNotPermitted)
}

// IsStorageFailure returns true if the error wraps a store failure.
func IsStorageFailure(err error) bool {
	return hasCode(err, ErrCodeStorageFailure)
}

func hasCode(err error, code ErrorCode) bool {
	var ee *EngineError
	if errors.As(err, &ee) {
		return ee.Code == code
	}
	return false
}

// NewBacklogFullError creates an EngineError for a backlog at capacity.
func NewBacklogFullError(articleID string, limit int) *EngineError {
	return &EngineError{
		Code:      ErrCodeBacklogFull,
		Message:   fmt.Sprintf("backlog already holds %d delayed articles", limit),
		ArticleID: articleID,
	}
}

// NewAlreadyDelayedError creates an EngineError for a duplicate delay.
func NewAlreadyDelayedError(articleID string) *EngineError {
	return &EngineError{
		Code:      ErrCodeAlreadyDelayed,
		Message:   "article is already in the backlog",
		ArticleID: articleID,
	}
}

// NewNotPermittedError creates an EngineError for a dev-only operation
// invoked in production mode.
func NewNotPermittedError(op, articleID string) *EngineError {
	return &EngineError{
		Code:      ErrCodeNotPermitted,
		Message:   fmt.Sprintf("%s is only permitted in development mode", op),
		ArticleID: articleID,
	}
}

// NewStorageFailureError wraps a store error. The in-memory state has
// already been applied and is not rolled back.
func NewStorageFailureError(op string, err error) *EngineError {
	return &EngineError{
		Code:    ErrCodeStorageFailure,
		Message: fmt.Sprintf("%s: durable store failed", op),
		Err:     err,
	}
}
