package diag

import (
	"errors"
	"fmt"
)

// DefaultLimit is the number of messages a sink accepts
// before it asks the caller to stop.
const DefaultLimit = 20

var (
	// ErrInvalidInput is returned when at least one diagnostic was reported.
	ErrInvalidInput = errors.New("invalid input")
	// ErrStopped is returned when a sink refused to take further diagnostics.
	ErrStopped = fmt.Errorf("%w: too many errors", ErrInvalidInput)
)

// Sink receives diagnostic messages from the lexer and the parser.
type Sink interface {
	// Report records the given message,
	// returns false if no more messages should be reported.
	Report(msg string) bool
	// HasError returns true if any message has been reported.
	HasError() bool
}

// budget counts reported messages against a limit,
// a non-positive limit never runs out.
type budget struct {
	limit int
	count int
}

func (b *budget) spend() bool {
	b.count++
	return b.limit <= 0 || b.count < b.limit
}

func (b *budget) HasError() bool {
	return b.count > 0
}

// Count returns the number of reported messages.
func (b *budget) Count() int {
	return b.count
}

// Failed wraps ErrInvalidInput or ErrStopped with the number of reported errors.
func Failed(stage string, errs int, stopped bool) error {
	if stopped {
		return fmt.Errorf("%s: %w after %d error(s)", stage, ErrStopped, errs)
	}

	return fmt.Errorf("%s: %w: %d error(s) reported", stage, ErrInvalidInput, errs)
}
