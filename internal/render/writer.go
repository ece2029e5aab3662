package render

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/store"
)

// Writer writes snapshots and saved-game listings in one output format.
type Writer interface {
	// WriteSnapshot writes a single game state.
	WriteSnapshot(s Snapshot) error

	// WriteGames writes a listing of saved games.
	WriteGames(games []store.SavedGame) error
}

// NewWriter returns the Writer for format.
func NewWriter(format config.OutputFormat, w io.Writer) Writer {
	switch format {
	case config.JSON:
		return &JSONWriter{w: w}
	case config.SVG:
		return &SVGWriter{TextWriter{w: w}}
	}
	return &TextWriter{w: w}
}

// TextWriter writes plain text.
type TextWriter struct {
	w io.Writer
}

// WriteSnapshot writes the board and a status summary.
func (tw *TextWriter) WriteSnapshot(s Snapshot) error {
	return TextSnapshot(tw.w, s)
}

// WriteGames writes one tab-aligned line per game.
func (tw *TextWriter) WriteGames(games []store.SavedGame) error {
	if len(games) == 0 {
		_, err := io.WriteString(tw.w, "no saved games\n")
		return err
	}
	t := tabwriter.NewWriter(tw.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(t, "ID\tNAME\tSAVED\tRESULT")
	for _, g := range games {
		result := g.Result
		if result == "" {
			result = store.Unfinished
		}
		if g.Method != "" {
			result += " (" + g.Method + ")"
		}
		fmt.Fprintf(t, "%s\t%s\t%s\t%s\n", g.ID, g.Name, g.SavedAt.Local().Format(time.DateTime), result)
	}
	return t.Flush()
}

// JSONWriter writes indented JSON documents.
type JSONWriter struct {
	w io.Writer
}

// WriteSnapshot writes the snapshot document.
func (jw *JSONWriter) WriteSnapshot(s Snapshot) error {
	return JSON(jw.w, s)
}

// WriteGames writes the games as a JSON array.
func (jw *JSONWriter) WriteGames(games []store.SavedGame) error {
	return JSONGames(jw.w, games)
}

// SVGWriter draws boards as SVG. Listings fall back to text.
type SVGWriter struct {
	TextWriter
}

// WriteSnapshot draws the snapshot's board.
func (sw *SVGWriter) WriteSnapshot(s Snapshot) error {
	return SVGSnapshot(sw.w, s)
}
