package chess

// Special records the incidental effects of a move needed to undo it.
type Special struct {
	// En passant: the captured pawn stood on EnPassantSquare, not on To.
	EnPassant       bool
	EnPassantSquare Square

	// Castling: the rook moved from RookFrom to RookTo in the same move.
	Castling bool
	RookFrom Square
	RookTo   Square
	Rook     *Piece // Rook snapshot before the move

	// Promotion: the pawn became PromotedTo on arrival.
	Promotion  bool
	PromotedTo Kind
}

// MoveRecord is one entry of the move history.
type MoveRecord struct {
	From Square
	To   Square

	// Moved is a snapshot of the moving piece before the move.
	Moved Piece

	// Captured is a snapshot of the captured piece, nil if nothing was captured.
	Captured *Piece

	Special Special
}

// CaptureSquare returns the square the captured piece stood on.
func (m *MoveRecord) CaptureSquare() Square {
	if m.Special.EnPassant {
		return m.Special.EnPassantSquare
	}
	return m.To
}

// IsDoublePawnPush reports whether the move was a two-square pawn advance.
func (m *MoveRecord) IsDoublePawnPush() bool {
	if m.Moved.Kind != Pawn || m.From.Col != m.To.Col {
		return false
	}
	d := m.To.Row - m.From.Row
	return d == 2 || d == -2
}

// LegalMove is a destination reachable by a piece under full legality.
type LegalMove struct {
	To      Square `json:"to"`
	Capture bool   `json:"capture"`
}

// CapturedPieces holds captured pieces by the colour of the captured piece,
// in capture order.
type CapturedPieces struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}

// Add appends a captured piece to the list of its colour.
func (c *CapturedPieces) Add(p Piece) {
	if p.Colour == White {
		c.White = append(c.White, p)
	} else {
		c.Black = append(c.Black, p)
	}
}

// Pop removes the last captured piece of the given colour.
func (c *CapturedPieces) Pop(colour Colour) {
	if colour == White {
		if n := len(c.White); n > 0 {
			c.White = c.White[:n-1]
		}
		return
	}
	if n := len(c.Black); n > 0 {
		c.Black = c.Black[:n-1]
	}
}

// Copy returns an independent copy of both lists.
func (c CapturedPieces) Copy() CapturedPieces {
	return CapturedPieces{
		White: append([]Piece(nil), c.White...),
		Black: append([]Piece(nil), c.Black...),
	}
}
