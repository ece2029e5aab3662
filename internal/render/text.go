package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Text writes the board as eight rows of piece codes, ".." for empty
// squares. When opts marks any square each cell is bracketed: [..] for a
// legal destination, <..> for an attacker and (..) for the last move.
func Text(w io.Writer, board *chess.Board, opts Options) error {
	if opts.empty() {
		_, err := io.WriteString(w, board.String())
		return err
	}

	marks := opts.marks()
	bw := bufio.NewWriter(w)
	for r := 0; r < chess.BoardSize; r++ {
		for c := 0; c < chess.BoardSize; c++ {
			if c > 0 {
				bw.WriteByte(' ')
			}
			sq := chess.Sq(r, c)
			code := ".."
			if p := board.Get(sq); p != nil {
				code = p.Code()
			}
			left, right := brackets(marks[sq])
			bw.WriteByte(left)
			bw.WriteString(code)
			bw.WriteByte(right)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func brackets(m mark) (byte, byte) {
	switch m {
	case markHighlight:
		return '[', ']'
	case markAttacker:
		return '<', '>'
	case markLastMove:
		return '(', ')'
	}
	return ' ', ' '
}

// TextSnapshot writes the board followed by the turn, status and captures.
func TextSnapshot(w io.Writer, s Snapshot) error {
	if err := Text(w, s.Board, s.Options()); err != nil {
		return err
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "turn: %s", strings.ToLower(s.Turn.String()))
	if s.Status != engine.StatusOngoing {
		fmt.Fprintf(&sb, " (%s)", s.Status)
	}
	sb.WriteByte('\n')
	if len(s.Captured.White)+len(s.Captured.Black) > 0 {
		fmt.Fprintf(&sb, "captured: %s | %s\n", pieceCodes(s.Captured.White), pieceCodes(s.Captured.Black))
	}
	if s.Selected != nil {
		fmt.Fprintf(&sb, "moves from %s: %s\n", s.Selected, moveList(s.Moves))
	}
	if len(s.Attackers) > 0 {
		fmt.Fprintf(&sb, "attacked from: %s\n", squareList(s.Attackers))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func pieceCodes(pieces []chess.Piece) string {
	if len(pieces) == 0 {
		return "-"
	}
	codes := make([]string, len(pieces))
	for i, p := range pieces {
		codes[i] = p.Code()
	}
	return strings.Join(codes, " ")
}

func moveList(moves []chess.LegalMove) string {
	if len(moves) == 0 {
		return "none"
	}
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.To.String()
		if m.Capture {
			out[i] += "x"
		}
	}
	return strings.Join(out, " ")
}

func squareList(squares []chess.Square) string {
	out := make([]string, len(squares))
	for i, sq := range squares {
		out[i] = sq.String()
	}
	return strings.Join(out, " ")
}
