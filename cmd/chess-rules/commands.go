package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/movelog"
	"github.com/lgbarn/chess-rules-go/internal/render"
	"github.com/lgbarn/chess-rules-go/internal/store"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// App holds what every command needs.
type App struct {
	cfg    *config.Config
	logger *zap.Logger

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	st *store.Store
}

// NewApp creates an App writing results to cfg.OutputFile and user-facing
// errors to errOut.
func NewApp(cfg *config.Config, logger *zap.Logger, in io.Reader, errOut io.Writer) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{cfg: cfg, logger: logger, in: in, out: cfg.OutputFile, errOut: errOut}
}

// Run executes cmd and returns the process exit code.
func (a *App) Run(ctx context.Context, cmd command) int {
	var err error
	switch cmd {
	case cmdList:
		err = a.list()
	case cmdDelete:
		err = a.delete(*deleteID)
	case cmdShow:
		err = a.show(ctx, *showID)
	case cmdReplay:
		err = a.replay(ctx, *replayFile, *saveName)
	case cmdVerify:
		var failed int
		failed, err = a.verify(ctx)
		if err == nil && failed > 0 {
			return 1
		}
	default:
		err = a.play(ctx, *saveName)
	}
	if err != nil {
		fmt.Fprintf(a.errOut, "Error: %v\n", err)
		return 1
	}
	return 0
}

// store opens the saved-games file on first use.
func (a *App) store() (*store.Store, error) {
	if a.st != nil {
		return a.st, nil
	}
	st, err := store.Open(a.cfg.StorePath)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("store opened", zap.String("path", st.Path()), zap.Int("games", st.Len()))
	a.st = st
	return st, nil
}

func (a *App) engineOptions() []engine.Option {
	return []engine.Option{
		engine.WithPromotion(a.cfg.Promotion),
		engine.WithLogger(a.logger.Named("engine")),
	}
}

func (a *App) writer() render.Writer {
	return render.NewWriter(a.cfg.OutputFormat, a.out)
}

// list writes the saved games, newest first. Text output ends with the
// match tally.
func (a *App) list() error {
	st, err := a.store()
	if err != nil {
		return err
	}
	if err := a.writer().WriteGames(st.List()); err != nil {
		return err
	}
	if a.cfg.OutputFormat != config.Text {
		return nil
	}
	t := st.History().Tally()
	if t.Total() == 0 {
		return nil
	}
	_, err = fmt.Fprintf(a.out, "record: white %d, black %d, draws %d\n", t.White, t.Black, t.Draws)
	return err
}

func (a *App) delete(id string) error {
	st, err := a.store()
	if err != nil {
		return err
	}
	if err := st.Delete(id); err != nil {
		return err
	}
	a.logger.Info("game deleted", zap.String("game", id))
	fmt.Fprintf(a.errOut, "deleted %s\n", id)
	return nil
}

// show replays a saved game and writes its final position.
func (a *App) show(ctx context.Context, id string) error {
	st, err := a.store()
	if err != nil {
		return err
	}
	g, err := st.Get(id)
	if err != nil {
		return err
	}
	entries, err := movelog.ParseString(g.Log)
	if err != nil {
		return errors.Wrapf(err, "game %s", id)
	}
	eng, _, err := a.replayEntries(ctx, entries)
	if err != nil {
		return errors.Wrapf(err, "game %s", id)
	}
	return a.writer().WriteSnapshot(render.Capture(eng))
}

// replay plays a move log file, writes the final position and, when name
// is set, saves the log with its outcome.
func (a *App) replay(ctx context.Context, path, name string) error {
	entries, err := movelog.ParseFile(path)
	if err != nil {
		return err
	}
	eng, res, err := a.replayEntries(ctx, entries)
	if err != nil {
		return errors.Wrapf(err, "replaying %s", path)
	}
	a.logger.Info("replay finished",
		zap.String("file", path),
		zap.Int("applied", res.Applied),
		zap.Int("undone", res.Undone))

	if err := a.writer().WriteSnapshot(render.Capture(eng)); err != nil {
		return err
	}
	if name == "" {
		return nil
	}
	_, err = a.saveGame(eng, name, joinEntries(entries))
	return err
}

// replayEntries applies entries to a fresh engine. With a replay delay each
// step is announced on the error stream so the output stays a single
// document.
func (a *App) replayEntries(ctx context.Context, entries []movelog.Entry) (*engine.Engine, movelog.ReplayResult, error) {
	eng := engine.New(a.engineOptions()...)
	opts := []movelog.ReplayOption{movelog.WithDelay(a.cfg.ReplayDelay)}
	if a.cfg.ReplayDelay > 0 {
		opts = append(opts, movelog.WithStep(func(i int, e movelog.Entry) {
			fmt.Fprintf(a.errOut, "%3d. %s\n", i+1, e)
		}))
	}
	res, err := movelog.Replay(ctx, eng, entries, opts...)
	return eng, res, err
}

// saveGame stores log under name with the outcome of eng's position and
// records finished games in the match history.
func (a *App) saveGame(eng *engine.Engine, name, log string) (store.SavedGame, error) {
	st, err := a.store()
	if err != nil {
		return store.SavedGame{}, err
	}
	outcome := store.OutcomeOf(eng.Status(eng.Turn()), eng.Turn())
	g, err := st.Save(name, log, outcome)
	if err != nil {
		return store.SavedGame{}, err
	}
	if outcome.Finished() {
		if err := st.History().Record(store.MatchResultFor(g, eng.Plies())); err != nil {
			return g, err
		}
	}
	a.logger.Info("game saved",
		zap.String("game", g.ID),
		zap.String("name", g.Name),
		zap.String("result", g.Result))
	fmt.Fprintf(a.errOut, "saved %q as %s\n", g.Name, g.ID)
	return g, nil
}

// verify replays every saved game and writes one line per game. It returns
// the number of games that failed to replay or whose stored result differs.
func (a *App) verify(ctx context.Context) (int, error) {
	st, err := a.store()
	if err != nil {
		return 0, err
	}
	games := st.List()
	results := worker.VerifyAll(ctx, games, a.cfg.Workers, a.logger, a.engineOptions()...)

	failed := 0
	dups := hashing.NewDuplicateDetector(true)
	for _, r := range results {
		var sameAs string
		if r.Err == nil {
			if first, dup := dups.CheckAndAdd(hashing.Signature(r.Game.ID, r.Board, r.Turn, r.Plies)); dup {
				sameAs = fmt.Sprintf(" (same final position as %s)", first.ID)
			}
		}
		switch {
		case r.Err != nil:
			failed++
			fmt.Fprintf(a.out, "FAIL      %s  %s: %v\n", r.Game.ID, r.Game.Name, r.Err)
		case r.Mismatch:
			failed++
			fmt.Fprintf(a.out, "MISMATCH  %s  %s: stored %s, replayed %s\n",
				r.Game.ID, r.Game.Name, r.Game.Result, r.Outcome.Result)
		default:
			fmt.Fprintf(a.out, "ok        %s  %s: %d plies, %s%s\n", r.Game.ID, r.Game.Name, r.Plies, r.Status, sameAs)
		}
	}
	if a.cfg.Verbosity > config.Quiet {
		fmt.Fprintf(a.errOut, "%d game(s) verified, %d failed, %d duplicate(s).\n", len(results), failed, dups.DuplicateCount())
	}
	return failed, nil
}

func joinEntries(entries []movelog.Entry) string {
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
