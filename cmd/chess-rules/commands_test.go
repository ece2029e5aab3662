package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/store"
)

func withFormat(f config.OutputFormat) func(*config.ConfigBuilder) {
	return func(b *config.ConfigBuilder) { b.WithOutputFormat(f) }
}

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.log")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestList_Text(t *testing.T) {
	app := newTestApp(t, "")
	games := app.seed(t,
		store.SavedGame{Name: "mate", Log: foolsMateLog, Outcome: store.Outcome{Result: store.BlackWins, Method: store.MethodCheckmate}},
		store.SavedGame{Name: "opening", Log: "wp from 6,4 to 4,4\n"},
	)
	require.NoError(t, app.reopen(t).History().Record(store.MatchResultFor(games[0], 4)))

	require.NoError(t, app.list())
	out := app.out.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, games[0].ID)
	assert.Contains(t, out, "0-1 (checkmate)")
	assert.Contains(t, out, "opening")
	assert.Contains(t, out, "record: white 0, black 1, draws 0")
}

func TestList_Empty(t *testing.T) {
	app := newTestApp(t, "")
	require.NoError(t, app.list())
	assert.Equal(t, "no saved games\n", app.out.String())
}

func TestList_JSON(t *testing.T) {
	app := newTestApp(t, "", withFormat(config.JSON))
	app.seed(t, store.SavedGame{Name: "opening", Log: "wp from 6,4 to 4,4\n"})

	require.NoError(t, app.list())
	var games []store.SavedGame
	require.NoError(t, json.Unmarshal(app.out.Bytes(), &games))
	require.Len(t, games, 1)
	assert.Equal(t, "opening", games[0].Name)
}

func TestDelete(t *testing.T) {
	app := newTestApp(t, "")
	games := app.seed(t, store.SavedGame{Name: "opening", Log: "wp from 6,4 to 4,4\n"})

	require.NoError(t, app.delete(games[0].ID))
	assert.Contains(t, app.errOut.String(), "deleted "+games[0].ID)
	assert.Empty(t, app.reopen(t).List())

	err := app.delete(games[0].ID)
	assert.True(t, errors.Is(err, errors.ErrGameNotFound), "error = %v", err)
}

func TestShow_JSON(t *testing.T) {
	app := newTestApp(t, "", withFormat(config.JSON))
	games := app.seed(t, store.SavedGame{Name: "mate", Log: foolsMateLog})

	require.NoError(t, app.show(context.Background(), games[0].ID))

	var snap struct {
		Turn   string `json:"turn"`
		Status string `json:"status"`
		Plies  int    `json:"plies"`
	}
	require.NoError(t, json.Unmarshal(app.out.Bytes(), &snap))
	assert.Equal(t, "white", snap.Turn)
	assert.Equal(t, "checkmate", snap.Status)
	assert.Equal(t, 4, snap.Plies)
}

func TestShow_Missing(t *testing.T) {
	app := newTestApp(t, "")
	err := app.show(context.Background(), "nope")
	assert.True(t, errors.Is(err, errors.ErrGameNotFound), "error = %v", err)
}

func TestReplay_SavesOutcome(t *testing.T) {
	app := newTestApp(t, "")
	path := writeLog(t, "# fool's mate\n"+foolsMateLog)

	require.NoError(t, app.replay(context.Background(), path, "from file"))
	assert.Contains(t, app.out.String(), "turn: white (checkmate)")
	assert.Contains(t, app.errOut.String(), `saved "from file"`)

	st := app.reopen(t)
	games := st.List()
	require.Len(t, games, 1)
	assert.Equal(t, foolsMateLog, games[0].Log)
	assert.Equal(t, store.BlackWins, games[0].Result)
	assert.Equal(t, store.Tally{Black: 1}, st.History().Tally())
}

func TestReplay_WithoutSave(t *testing.T) {
	app := newTestApp(t, "")
	require.NoError(t, app.replay(context.Background(), writeLog(t, "wp from 6,4 to 4,4\n"), ""))
	assert.Contains(t, app.out.String(), "turn: black")
	assert.Empty(t, app.reopen(t).List())
}

func TestReplay_Steps(t *testing.T) {
	app := newTestApp(t, "", func(b *config.ConfigBuilder) { b.WithReplayDelay(time.Millisecond) })
	require.NoError(t, app.replay(context.Background(), writeLog(t, foolsMateLog), ""))
	assert.Contains(t, app.errOut.String(), "  1. wp from 6,5 to 5,5\n")
	assert.Contains(t, app.errOut.String(), "  4. bq from 0,3 to 4,7\n")
}

func TestReplay_Errors(t *testing.T) {
	app := newTestApp(t, "")

	err := app.replay(context.Background(), writeLog(t, "wp 6,4 4,4\n"), "")
	assert.True(t, errors.Is(err, errors.ErrInvalidMoveLog), "error = %v", err)

	err = app.replay(context.Background(), writeLog(t, "wp from 6,4 to 3,4\n"), "")
	assert.True(t, errors.Is(err, errors.ErrIllegalMove), "error = %v", err)

	err = app.replay(context.Background(), filepath.Join(t.TempDir(), "missing.log"), "")
	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	app := newTestApp(t, "", func(b *config.ConfigBuilder) { b.WithWorkers(2) })
	app.seed(t,
		store.SavedGame{Name: "good", Log: foolsMateLog, Outcome: store.Outcome{Result: store.BlackWins, Method: store.MethodCheckmate}},
		store.SavedGame{Name: "broken", Log: "wp from 6,4 to 2,4\n"},
		store.SavedGame{Name: "liar", Log: foolsMateLog, Outcome: store.Outcome{Result: store.WhiteWins}},
	)

	failed, err := app.verify(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, failed)

	out := app.out.String()
	assert.Contains(t, out, "good: 4 plies, checkmate")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "broken")
	assert.Contains(t, out, "liar: stored 1-0, replayed 0-1")
	assert.Contains(t, app.errOut.String(), "3 game(s) verified, 2 failed, 1 duplicate(s).")
}

func TestRun_ExitCodes(t *testing.T) {
	t.Run("verify failure", func(t *testing.T) {
		app := newTestApp(t, "")
		app.seed(t, store.SavedGame{Name: "broken", Log: "bp from 6,4 to 4,4\n"})
		assert.Equal(t, 1, app.Run(context.Background(), cmdVerify))
	})

	t.Run("verify success", func(t *testing.T) {
		app := newTestApp(t, "")
		app.seed(t, store.SavedGame{Name: "opening", Log: "wp from 6,4 to 4,4\n"})
		assert.Equal(t, 0, app.Run(context.Background(), cmdVerify))
	})

	t.Run("delete missing", func(t *testing.T) {
		defer saveRestoreString(deleteID, "nope")()
		app := newTestApp(t, "")
		assert.Equal(t, 1, app.Run(context.Background(), cmdDelete))
		assert.Contains(t, app.errOut.String(), "Error: ")
	})

	t.Run("list", func(t *testing.T) {
		app := newTestApp(t, "")
		assert.Equal(t, 0, app.Run(context.Background(), cmdList))
	})

	t.Run("play", func(t *testing.T) {
		app := newTestApp(t, lines("6,4 4,4", "quit"))
		assert.Equal(t, 0, app.Run(context.Background(), cmdPlay))
	})
}
