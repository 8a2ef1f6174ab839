// Package errors provides sentinel errors and a structured wrapper type
// for problem-configuration failures. It lets callers distinguish
// caller-correctable configuration mistakes (returned as errors) from
// programmer-error invariant violations (which panic via internal/assert
// instead, and never come through here).
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for internal/problem's Builder.Build. Use errors.Is()
// to check for a specific one.
var (
	// ErrMissingKing indicates one or both sides have no king placed.
	ErrMissingKing = errors.New("missing king")

	// ErrDuplicateSquare indicates two placement entries named the same
	// square.
	ErrDuplicateSquare = errors.New("duplicate square in placement")

	// ErrBadEnPassant indicates an en-passant file that cannot be valid
	// for the side to move (wrong rank, or no pawn to have made the
	// double step).
	ErrBadEnPassant = errors.New("invalid en passant square")

	// ErrImpossibleCastling indicates a castling-retirement square that is
	// not one of the six king/rook home squares (e1, a1, h1, e8, a8, h8).
	ErrImpossibleCastling = errors.New("impossible castling right")

	// ErrNoGoal indicates the builder was never told which goal mode to
	// solve for.
	ErrNoGoal = errors.New("no goal mode set")

	// ErrNonPositiveDepth indicates a mate-in-N count less than one.
	ErrNonPositiveDepth = errors.New("non-positive depth")
)

// ConfigError wraps a sentinel error with the field that triggered it,
// preserving the sentinel for errors.Is/errors.As while adding context
// a user reading a rejected problem file actually needs.
type ConfigError struct {
	Err   error
	Field string
}

// Error renders "<field>: <err>", or just the error if no field applies.
func (e *ConfigError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *ConfigError) Unwrap() error { return e.Err }

// Config wraps err as a *ConfigError naming field.
func Config(err error, field string) error {
	if err == nil {
		return nil
	}
	return &ConfigError{Err: err, Field: field}
}

// Wrap adds context to an error while preserving it for errors.Is/As.
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving it for
// errors.Is/As.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
