package chess

import (
	"fmt"
	"strings"
)

// Board is an 8x8 grid of pieces indexed as Squares[row][col].
// A nil entry is an empty square.
type Board struct {
	Squares [BoardSize][BoardSize]*Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[BlackBackRow][col] = NewPiece(Black, backRank[col])
		b.Squares[BlackPawnRow][col] = NewPiece(Black, Pawn)
		b.Squares[WhitePawnRow][col] = NewPiece(White, Pawn)
		b.Squares[WhiteBackRow][col] = NewPiece(White, backRank[col])
	}
}

// Clear removes every piece.
func (b *Board) Clear() {
	b.Squares = [BoardSize][BoardSize]*Piece{}
}

// Get returns the piece on sq, or nil if the square is empty or off the board.
func (b *Board) Get(sq Square) *Piece {
	if !sq.InBounds() {
		return nil
	}
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece (or nil) on sq. Off-board squares are ignored.
func (b *Board) Set(sq Square, p *Piece) {
	if sq.InBounds() {
		b.Squares[sq.Row][sq.Col] = p
	}
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq) == nil
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	nb := &Board{}
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			nb.Squares[r][c] = b.Squares[r][c].Clone()
		}
	}
	return nb
}

// FindKing returns the square of the colour's king.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			p := b.Squares[r][c]
			if p != nil && p.Kind == King && p.Colour == colour {
				return Sq(r, c), true
			}
		}
	}
	return Square{}, false
}

// Occupied returns every occupied square in row-major order.
func (b *Board) Occupied() []Square {
	var squares []Square
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if b.Squares[r][c] != nil {
				squares = append(squares, Sq(r, c))
			}
		}
	}
	return squares
}

// String renders the board as eight lines of piece codes, ".." for empty squares.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if p := b.Squares[r][c]; p != nil {
				sb.WriteString(p.Code())
			} else {
				sb.WriteString("..")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard builds a board from a diagram of eight rows, top row first.
// Each row holds eight cells separated by whitespace: a piece code such as
// "wp" or "bk", or ".." for an empty square. Pieces whose row differs from
// their starting row are marked as moved; kings and rooks on their home
// squares stay unmoved.
func ParseBoard(diagram string) (*Board, error) {
	var rows []string
	for _, line := range strings.Split(diagram, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) != BoardSize {
		return nil, fmt.Errorf("board diagram has %d rows, want %d", len(rows), BoardSize)
	}

	b := NewBoard()
	for r, line := range rows {
		cells := strings.Fields(line)
		if len(cells) != BoardSize {
			return nil, fmt.Errorf("row %d has %d cells, want %d", r, len(cells), BoardSize)
		}
		for c, cell := range cells {
			if cell == ".." {
				continue
			}
			p, err := ParsePieceCode(cell)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", r, c, err)
			}
			p.HasMoved = !onHomeSquare(p, Sq(r, c))
			b.Squares[r][c] = p
		}
	}
	return b, nil
}

// ParsePieceCode converts a two-letter code such as "wq" to an unmoved piece.
func ParsePieceCode(code string) (*Piece, error) {
	if len(code) != 2 {
		return nil, fmt.Errorf("invalid piece code %q", code)
	}
	colour, ok := ColourFromLetter(code[0])
	if !ok {
		return nil, fmt.Errorf("invalid colour in piece code %q", code)
	}
	kind, ok := KindFromLetter(code[1])
	if !ok {
		return nil, fmt.Errorf("invalid kind in piece code %q", code)
	}
	return NewPiece(colour, kind), nil
}

func onHomeSquare(p *Piece, sq Square) bool {
	switch p.Kind {
	case Pawn:
		return sq.Row == PawnStartRow(p.Colour)
	case King:
		return sq.Row == BackRow(p.Colour) && sq.Col == 4
	case Rook:
		return sq.Row == BackRow(p.Colour) && (sq.Col == 0 || sq.Col == 7)
	default:
		return sq.Row == BackRow(p.Colour)
	}
}
