package render

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/store"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestText_Plain(t *testing.T) {
	var buf bytes.Buffer
	board := chess.NewInitialBoard()
	require.NoError(t, Text(&buf, board, Options{}))

	assert.Equal(t, board.String(), buf.String())
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "br bn bb bq bk bb bn br", lines[0])
	assert.Equal(t, ".. .. .. .. .. .. .. ..", lines[4])
}

func TestText_Marks(t *testing.T) {
	e := engine.New()
	testutil.Play(t, e, "6,4 4,4")
	snap := Capture(e).Select(e, chess.Sq(1, 3))
	snap.Attackers = []chess.Square{chess.Sq(7, 3)}

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, snap.Board, snap.Options()))
	lines := strings.Split(buf.String(), "\n")

	assert.Equal(t, " .. ", cell(lines[2], 0), "unmarked")
	assert.Equal(t, "[..]", cell(lines[2], 3), "single step")
	assert.Equal(t, "[..]", cell(lines[3], 3), "double step")
	assert.Equal(t, "(wp)", cell(lines[4], 4), "last move destination")
	assert.Equal(t, "(..)", cell(lines[6], 4), "last move origin")
	assert.Equal(t, "<wq>", cell(lines[7], 3), "attacker")
}

// cell returns the bracketed cell c of a marked text row.
func cell(line string, c int) string {
	return line[c*5 : c*5+4]
}

func TestTextSnapshot(t *testing.T) {
	e := engine.New()
	testutil.Play(t, e, "6,4 4,4", "1,3 3,3", "4,4 3,3")

	var buf bytes.Buffer
	require.NoError(t, TextSnapshot(&buf, Capture(e).Select(e, chess.Sq(0, 3))))
	out := buf.String()

	assert.Contains(t, out, "turn: black\n")
	assert.Contains(t, out, "captured: - | bp\n")
	assert.Contains(t, out, "moves from 0,3: 1,3 2,3 3,3x\n")
}

func TestTextSnapshot_Checkmate(t *testing.T) {
	e := engine.New()
	testutil.Play(t, e, testutil.FoolsMate...)

	var buf bytes.Buffer
	require.NoError(t, TextSnapshot(&buf, Capture(e)))
	assert.Contains(t, buf.String(), "turn: white (checkmate)")
}

func TestJSON(t *testing.T) {
	e := engine.New()
	testutil.Play(t, e, "6,4 4,4", "1,3 3,3", "4,4 3,3")

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, Capture(e).Select(e, chess.Sq(3, 3))))

	var got JSONSnapshot
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "black", got.Turn)
	assert.Equal(t, "ongoing", got.Status)
	assert.Equal(t, 3, got.Plies)
	assert.Equal(t, "wp", got.Board[3][3])
	assert.Equal(t, "", got.Board[6][4])
	assert.Equal(t, []string{}, got.Captured.White)
	assert.Equal(t, []string{"bp"}, got.Captured.Black)
	require.NotNil(t, got.LastMove)
	assert.Equal(t, JSONMove{From: chess.Sq(4, 4), To: chess.Sq(3, 3), Piece: "wp", Captured: "bp"}, *got.LastMove)
	require.NotNil(t, got.Selected)
	assert.Equal(t, chess.Sq(3, 3), *got.Selected)
	assert.Equal(t, []chess.LegalMove{{To: chess.Sq(2, 3)}}, got.Moves)
}

func TestSVG(t *testing.T) {
	e := engine.New()
	testutil.Play(t, e, "6,4 4,4")
	snap := Capture(e).Select(e, chess.Sq(7, 6))
	snap.Attackers = []chess.Square{chess.Sq(0, 3)}

	var buf bytes.Buffer
	require.NoError(t, SVGSnapshot(&buf, snap))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "<svg")
	assert.Equal(t, 64+2+1, strings.Count(out, "<rect"), "squares, last-move tints and the attacker frame")
	assert.Equal(t, 32, strings.Count(out, "<text"))
	assert.Equal(t, 3, strings.Count(out, "<circle"), "knight destinations 5,5 5,7 6,4")
	assert.Contains(t, out, "♔")
	assert.Contains(t, out, "♚")

	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := dec.Token()
		if err != nil {
			require.ErrorIs(t, err, io.EOF, "output must be well-formed XML")
			break
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSVG_WriteError(t *testing.T) {
	err := SVG(failingWriter{}, chess.NewInitialBoard(), Options{})
	assert.EqualError(t, err, "disk full")
}

func TestNewWriter(t *testing.T) {
	games := []store.SavedGame{{
		ID:      "abc",
		Name:    "mate",
		SavedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Outcome: store.Outcome{Result: store.BlackWins, Method: store.MethodCheckmate},
	}}
	snap := Capture(engine.New())

	tests := []struct {
		format   config.OutputFormat
		snapshot string
		games    string
	}{
		{config.Text, "turn: white", "0-1 (checkmate)"},
		{config.JSON, `"turn": "white"`, `"log_text"`},
		{config.SVG, "<svg", "mate"},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(tt.format, &buf)

			require.NoError(t, w.WriteSnapshot(snap))
			assert.Contains(t, buf.String(), tt.snapshot)

			buf.Reset()
			require.NoError(t, w.WriteGames(games))
			assert.Contains(t, buf.String(), tt.games)
		})
	}
}

func TestWriteGames_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(config.Text, &buf).WriteGames(nil))
	assert.Equal(t, "no saved games\n", buf.String())

	buf.Reset()
	require.NoError(t, NewWriter(config.JSON, &buf).WriteGames(nil))
	assert.Equal(t, "[]\n", buf.String())
}
