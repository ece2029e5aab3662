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
	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrSelfCheck indicates a move that would leave the mover's king in check.
	// It wraps ErrIllegalMove so either sentinel matches.
	ErrSelfCheck = fmt.Errorf("%w: king left in check", ErrIllegalMove)

	// ErrEmptyHistory indicates an undo with no moves played.
	ErrEmptyHistory = errors.New("no moves to undo")

	// ErrInvalidMoveLog indicates a malformed move log line.
	ErrInvalidMoveLog = errors.New("invalid move log")

	// ErrGameNotFound indicates a saved game id that does not exist.
	ErrGameNotFound = errors.New("saved game not found")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Square is the minimal coordinate needed for error context.
// It mirrors chess.Square without importing it.
type Square struct {
	Row, Col int
}

// String returns the "row,col" form.
func (s Square) String() string {
	return fmt.Sprintf("%d,%d", s.Row, s.Col)
}

// MoveError wraps a rejected move with its context. For self-check
// rejections Attackers lists the squares that would attack the king.
type MoveError struct {
	Err       error    // The underlying error
	From      Square   // Origin square
	To        Square   // Destination square
	Piece     string   // Piece code on the origin square (if any)
	Reason    string   // Short human-readable reason
	Attackers []Square // Attackers on the hypothetical position (self-check only)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}
	parts = append(parts, fmt.Sprintf("from %s to %s", e.From, e.To))

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	if len(e.Attackers) > 0 {
		sq := make([]string, len(e.Attackers))
		for i, a := range e.Attackers {
			sq[i] = a.String()
		}
		parts = append(parts, "attacked from "+strings.Join(sq, " "))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a move log parsing error with location context.
type ParseError struct {
	Err  error  // The underlying error
	File string // Source file name
	Line int    // Line number (1-based)
	Got  string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.File != "" {
		loc := e.File
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
		}
		parts = append(parts, loc)
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.Got != "" {
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

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
