package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// SVG geometry and palette.
const (
	SquareSize = 60
	boardSize  = SquareSize * chess.BoardSize

	lightFill     = "fill:#f0d9b5"
	darkFill      = "fill:#b58863"
	lastMoveFill  = "fill:#cdd26a;fill-opacity:0.6"
	highlightDot  = "fill:#2e7d32;fill-opacity:0.55"
	captureRing   = "fill:none;stroke:#2e7d32;stroke-width:5;stroke-opacity:0.7"
	attackerFrame = "fill:none;stroke:#c62828;stroke-width:4"
	pieceText     = "font-family:sans-serif;font-size:44px;text-anchor:middle;dominant-baseline:central"
)

var glyphs = [2][chess.NumKinds]string{
	chess.White: {"♙", "♘", "♗", "♖", "♕", "♔"},
	chess.Black: {"♟", "♞", "♝", "♜", "♛", "♚"},
}

// errWriter keeps the first write error; svgo ignores write errors.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}

// SVG draws the board. Row 0 is at the top. Legal destinations get a dot,
// or a ring when the destination is occupied; attackers get a red frame;
// the last move's squares are tinted.
func SVG(w io.Writer, board *chess.Board, opts Options) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(boardSize, boardSize)
	canvas.Title("chess board")

	marks := opts.marks()

	canvas.Gid("squares")
	for r := 0; r < chess.BoardSize; r++ {
		for c := 0; c < chess.BoardSize; c++ {
			x, y := c*SquareSize, r*SquareSize
			canvas.Rect(x, y, SquareSize, SquareSize, squareFill(r, c))
			if opts.LastMove != nil {
				sq := chess.Sq(r, c)
				if sq == opts.LastMove.From || sq == opts.LastMove.To {
					canvas.Rect(x, y, SquareSize, SquareSize, lastMoveFill)
				}
			}
		}
	}
	canvas.Gend()

	canvas.Gid("pieces")
	canvas.Gstyle(pieceText)
	for _, sq := range board.Occupied() {
		p := board.Get(sq)
		cx, cy := centre(sq)
		canvas.Text(cx, cy, glyphs[p.Colour][p.Kind], fmt.Sprintf("class=%q", p.Code()))
	}
	canvas.Gend()
	canvas.Gend()

	canvas.Gid("marks")
	for _, sq := range opts.Highlights {
		if marks[sq] != markHighlight {
			continue
		}
		cx, cy := centre(sq)
		if board.IsEmpty(sq) {
			canvas.Circle(cx, cy, SquareSize/6, highlightDot)
		} else {
			canvas.Circle(cx, cy, SquareSize/2-4, captureRing)
		}
	}
	for _, sq := range opts.Attackers {
		canvas.Rect(sq.Col*SquareSize+2, sq.Row*SquareSize+2, SquareSize-4, SquareSize-4, attackerFrame)
	}
	canvas.Gend()

	canvas.End()
	return ew.err
}

// SVGSnapshot draws the snapshot's board with its marks.
func SVGSnapshot(w io.Writer, s Snapshot) error {
	return SVG(w, s.Board, s.Options())
}

func squareFill(row, col int) string {
	if (row+col)%2 == 0 {
		return lightFill
	}
	return darkFill
}

func centre(sq chess.Square) (int, int) {
	return sq.Col*SquareSize + SquareSize/2, sq.Row*SquareSize + SquareSize/2
}
