// Package chess provides core chess types and operations.
package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Letter returns the one-letter code used in move logs ('w' or 'b').
func (c Colour) Letter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ColourFromLetter converts 'w' or 'b' to a colour.
func ColourFromLetter(b byte) (Colour, bool) {
	switch b {
	case 'w':
		return White, true
	case 'b':
		return Black, true
	}
	return White, false
}

// Kind represents a chess piece type.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single lowercase letter of a piece kind.
func (k Kind) Letter() byte {
	letters := []byte{'p', 'n', 'b', 'r', 'q', 'k'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter (either case) to a kind.
func KindFromLetter(b byte) (Kind, bool) {
	switch b {
	case 'p', 'P':
		return Pawn, true
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	}
	return Pawn, false
}

// Promotable reports whether a pawn may promote to this kind.
func (k Kind) Promotable() bool {
	return k == Knight || k == Bishop || k == Rook || k == Queen
}

// Piece is a coloured piece together with its movement flag.
type Piece struct {
	Kind     Kind
	Colour   Colour
	HasMoved bool
}

// NewPiece creates an unmoved piece.
func NewPiece(colour Colour, kind Kind) *Piece {
	return &Piece{Kind: kind, Colour: colour}
}

// Code returns the two-letter piece code, e.g. "wp" or "bn".
func (p Piece) Code() string {
	return string([]byte{p.Colour.Letter(), p.Kind.Letter()})
}

// Clone returns a copy of p, or nil if p is nil.
func (p *Piece) Clone() *Piece {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// Constants for board dimensions.
const (
	BoardSize = 8

	// WhitePawnRow and BlackPawnRow are the pawn starting rows.
	WhitePawnRow = 6
	BlackPawnRow = 1

	// WhiteBackRow and BlackBackRow are the back ranks.
	WhiteBackRow = 7
	BlackBackRow = 0
)

// Square is a (row, column) board coordinate.
// Row 0 is black's back rank and row 7 is white's.
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// InBounds reports whether the square lies on the board.
func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square shifted by dr rows and dc columns.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// String returns the "row,col" form used by the move log.
func (s Square) String() string {
	return fmt.Sprintf("%d,%d", s.Row, s.Col)
}

// ParseSquare parses the "row,col" form. Squares off the board are rejected.
func ParseSquare(s string) (Square, error) {
	row, col, found := strings.Cut(strings.TrimSpace(s), ",")
	if !found {
		return Square{}, fmt.Errorf("square %q: want row,col", s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(row))
	if err != nil {
		return Square{}, fmt.Errorf("square %q: bad row", s)
	}
	c, err := strconv.Atoi(strings.TrimSpace(col))
	if err != nil {
		return Square{}, fmt.Errorf("square %q: bad column", s)
	}
	sq := Sq(r, c)
	if !sq.InBounds() {
		return Square{}, fmt.Errorf("square %q: off the board", s)
	}
	return sq, nil
}

// ForwardDir returns the row direction pawns of the colour advance in.
func ForwardDir(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// PawnStartRow returns the starting row of the colour's pawns.
func PawnStartRow(colour Colour) int {
	if colour == White {
		return WhitePawnRow
	}
	return BlackPawnRow
}

// PromotionRow returns the row on which the colour's pawns promote.
func PromotionRow(colour Colour) int {
	if colour == White {
		return BlackBackRow
	}
	return WhiteBackRow
}

// BackRow returns the colour's back rank.
func BackRow(colour Colour) int {
	if colour == White {
		return WhiteBackRow
	}
	return BlackBackRow
}
