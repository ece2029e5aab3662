package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/movelog"
	"github.com/lgbarn/chess-rules-go/internal/render"
)

const playHelp = `commands:
  r,c r,c     move the piece on the first square to the second (row 0 is black's back rank)
  moves r,c   list the legal destinations of a piece
  undo        take back the last move
  board       show the board
  save [NAME] save the game
  new         start a new game
  quit        leave (saves first when -save is given)
`

// session is one interactive game read line by line.
type session struct {
	app      *App
	rec      *movelog.Recorder
	saveName string
	saved    bool
}

// play runs an interactive game on a.in until quit, end of input or ctx is
// cancelled. When saveName is set the game is saved on the way out.
func (a *App) play(ctx context.Context, saveName string) error {
	s := &session{
		app:      a,
		rec:      movelog.NewRecorder(engine.New(a.engineOptions()...)),
		saveName: saveName,
	}

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(a.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	fmt.Fprint(a.out, "type help for commands\n")
	s.prompt()
	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(a.out)
			return s.finish()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return err
					}
				default:
				}
				return s.finish()
			}
			if quit := s.handle(line); quit {
				return s.finish()
			}
			s.prompt()
		}
	}
}

func (s *session) engine() *engine.Engine {
	return s.rec.Engine()
}

func (s *session) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.app.out, format, args...)
}

func (s *session) prompt() {
	s.printf("%s> ", colourName(s.engine().Turn()))
}

// handle runs one input line and reports whether the session should end.
func (s *session) handle(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return true
	case "help", "?":
		s.printf("%s", playHelp)
	case "board":
		s.showBoard(render.Capture(s.engine()))
	case "undo":
		s.undo()
	case "moves":
		if len(fields) != 2 {
			s.printf("usage: moves r,c\n")
			return false
		}
		s.moves(fields[1])
	case "new":
		s.rec.Reset()
		s.saved = false
		s.printf("new game\n")
	case "save":
		name := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0]))
		if name == "" {
			name = s.saveName
		}
		s.save(name)
	default:
		if len(fields) != 2 {
			s.printf("unknown command %q; type help\n", fields[0])
			return false
		}
		s.move(fields[0], fields[1])
	}
	return false
}

func (s *session) move(fromText, toText string) {
	from, err := chess.ParseSquare(fromText)
	if err != nil {
		s.printf("%v\n", err)
		return
	}
	to, err := chess.ParseSquare(toText)
	if err != nil {
		s.printf("%v\n", err)
		return
	}

	eng := s.engine()
	if status := eng.Status(eng.Turn()); status.Over() {
		s.printf("the game is over (%s); undo or start a new game\n", status)
		return
	}

	if err := s.rec.Move(from, to); err != nil {
		s.reject(err)
		return
	}
	s.saved = false
	s.report()
}

// reject explains a refused move.
func (s *session) reject(err error) {
	var me *errors.MoveError
	if !errors.As(err, &me) {
		s.printf("illegal move: %v\n", err)
		return
	}
	reason := me.Reason
	if reason == "" {
		reason = err.Error()
	}
	if errors.Is(err, errors.ErrSelfCheck) && len(me.Attackers) > 0 {
		squares := make([]string, len(me.Attackers))
		for i, a := range me.Attackers {
			squares[i] = a.String()
		}
		s.printf("illegal move: %s (attacked from %s)\n", reason, strings.Join(squares, " "))
		return
	}
	s.printf("illegal move: %s\n", reason)
}

// report describes the position after a move.
func (s *session) report() {
	eng := s.engine()
	last, _ := eng.LastMove()
	s.printf("%s %s to %s", last.Moved.Code(), last.From, last.To)
	switch {
	case last.Special.Castling:
		s.printf(", castles")
	case last.Special.EnPassant:
		s.printf(", en passant")
	}
	if last.Captured != nil {
		s.printf(", takes %s", last.Captured.Code())
	}
	if last.Special.Promotion {
		s.printf(", promotes to %s", strings.ToLower(last.Special.PromotedTo.String()))
	}
	s.printf("\n")

	turn := eng.Turn()
	switch eng.Status(turn) {
	case engine.StatusCheck:
		s.printf("check: %s king attacked from %s\n", colourName(turn), squares(eng.AttackersOfKing(turn)))
	case engine.StatusCheckmate:
		s.printf("checkmate: %s wins\n", colourName(turn.Opposite()))
	case engine.StatusDraw:
		s.printf("draw: only the kings remain\n")
	}
}

func (s *session) undo() {
	if err := s.rec.Undo(); err != nil {
		s.printf("%v\n", err)
		return
	}
	s.saved = false
	s.printf("move undone\n")
}

func (s *session) moves(sqText string) {
	sq, err := chess.ParseSquare(sqText)
	if err != nil {
		s.printf("%v\n", err)
		return
	}
	if s.engine().PieceAt(sq) == nil {
		s.printf("no piece on %s\n", sq)
		return
	}
	s.showBoard(render.Capture(s.engine()).Select(s.engine(), sq))
}

func (s *session) showBoard(snap render.Snapshot) {
	if err := s.app.writer().WriteSnapshot(snap); err != nil {
		s.printf("%v\n", err)
	}
}

func (s *session) save(name string) {
	if _, err := s.app.saveGame(s.engine(), name, s.rec.String()); err != nil {
		s.printf("save failed: %v\n", err)
		return
	}
	s.saved = true
}

// finish saves the game on exit when a name was given on the command line.
func (s *session) finish() error {
	if s.saveName == "" || s.saved || s.rec.Len() == 0 {
		return nil
	}
	_, err := s.app.saveGame(s.engine(), s.saveName, s.rec.String())
	return err
}

func colourName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

func squares(list []chess.Square) string {
	out := make([]string, len(list))
	for i, sq := range list {
		out[i] = sq.String()
	}
	return strings.Join(out, " ")
}
