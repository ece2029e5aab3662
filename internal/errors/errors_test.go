package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrSelfCheck", ErrSelfCheck, ErrSelfCheck},
		{"ErrEmptyHistory", ErrEmptyHistory, ErrEmptyHistory},
		{"ErrInvalidMoveLog", ErrInvalidMoveLog, ErrInvalidMoveLog},
		{"ErrGameNotFound", ErrGameNotFound, ErrGameNotFound},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSelfCheckIsIllegalMove verifies the self-check sentinel also matches ErrIllegalMove
func TestSelfCheckIsIllegalMove(t *testing.T) {
	if !errors.Is(ErrSelfCheck, ErrIllegalMove) {
		t.Error("errors.Is(ErrSelfCheck, ErrIllegalMove) = false, want true")
	}
	if errors.Is(ErrIllegalMove, ErrSelfCheck) {
		t.Error("errors.Is(ErrIllegalMove, ErrSelfCheck) = true, want false")
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:       ErrSelfCheck,
				From:      Square{6, 5},
				To:        Square{5, 5},
				Piece:     "wp",
				Reason:    "pinned",
				Attackers: []Square{{3, 7}},
			},
			contains: []string{"wp", "from 6,5 to 5,5", "pinned", "3,7", "king left in check"},
		},
		{
			name: "minimal context",
			err: &MoveError{
				Err:  ErrIllegalMove,
				From: Square{0, 0},
				To:   Square{9, 9},
			},
			contains: []string{"from 0,0 to 9,9", "illegal move"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:       ErrSelfCheck,
		From:      Square{7, 4},
		To:        Square{7, 5},
		Attackers: []Square{{0, 5}},
	}

	wrapped := fmt.Errorf("replay failed: %w", moveErr)

	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if len(extracted.Attackers) != 1 || extracted.Attackers[0] != (Square{0, 5}) {
		t.Errorf("extracted.Attackers = %v, want [0,5]", extracted.Attackers)
	}
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("errors.Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

// TestParseError_Error verifies ParseError formatting
func TestParseError_Error(t *testing.T) {
	err := &ParseError{
		Err:  ErrInvalidMoveLog,
		File: "game.log",
		Line: 12,
		Got:  "wp de 6,4",
	}

	msg := err.Error()
	for _, want := range []string{"game.log:12", "wp de 6,4", "invalid move log"} {
		if !containsIgnoreCase(msg, want) {
			t.Errorf("ParseError.Error() = %q, should contain %q", msg, want)
		}
	}

	noFile := &ParseError{Err: ErrInvalidMoveLog, Line: 3}
	if !containsIgnoreCase(noFile.Error(), "line 3") {
		t.Errorf("ParseError.Error() = %q, should contain %q", noFile.Error(), "line 3")
	}
}

// TestParseError_Unwrap verifies ParseError implements Unwrap
func TestParseError_Unwrap(t *testing.T) {
	parseErr := &ParseError{Err: ErrInvalidMoveLog, Line: 1}

	if !errors.Is(parseErr, ErrInvalidMoveLog) {
		t.Error("errors.Is(parseErr, ErrInvalidMoveLog) = false, want true")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrGameNotFound, "loading game")

	if !errors.Is(wrapped, ErrGameNotFound) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "loading game") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "entry %d", 15)

	if !Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "entry 15") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
