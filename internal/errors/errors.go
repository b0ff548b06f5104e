// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidCoordinate indicates a board coordinate outside [0,8)x[0,8).
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrIllegalMove indicates a move that is not in the current legal-move set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrPromotionRequired indicates a pawn move onto the last rank submitted
	// without a promotion choice.
	ErrPromotionRequired = errors.New("promotion piece required")

	// ErrInvariantViolation indicates a programming error inside the engine,
	// such as executing the null move or querying a board without a king.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrBuilderSpent indicates a board builder used after Build.
	ErrBuilderSpent = errors.New("board builder already built")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with move context: the ply the move was attempted at
// and the move text as the caller submitted it.
type MoveError struct {
	Err      error  // The underlying error
	PlyNum   int    // Ply number the move was attempted at (1-based, 0 if unknown)
	MoveText string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	switch {
	case context == "" && e.Err != nil:
		return e.Err.Error()
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", context, e.Err)
	case context == "":
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a FEN parsing error with the offending field.
type ParseError struct {
	Err      error  // The underlying error
	Field    string // FEN field name (e.g. "placement", "castling")
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with field and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %q", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Invariant panics with an error wrapping ErrInvariantViolation. It is
// reserved for states that can only arise from a bug in the engine.
func Invariant(format string, args ...interface{}) {
	panic(Wrapf(ErrInvariantViolation, format, args...))
}
