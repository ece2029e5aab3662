package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/store"
)

// testApp is an App with buffered output and a temporary store.
type testApp struct {
	*App
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func newTestApp(t *testing.T, input string, opts ...func(*config.ConfigBuilder)) *testApp {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	b := config.NewConfigBuilder().
		WithStorePath(filepath.Join(t.TempDir(), "games.json")).
		WithOutput(out)
	for _, opt := range opts {
		opt(b)
	}
	cfg := b.Build()
	require.NoError(t, cfg.Validate())
	app := NewApp(cfg, zaptest.NewLogger(t), strings.NewReader(input), errOut)
	return &testApp{App: app, out: out, errOut: errOut}
}

// reopen loads the app's store file from disk.
func (a *testApp) reopen(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(a.cfg.StorePath)
	require.NoError(t, err)
	return st
}

// seed saves games to the app's store file before the app opens it.
func (a *testApp) seed(t *testing.T, games ...store.SavedGame) []store.SavedGame {
	t.Helper()
	st := a.reopen(t)
	saved := make([]store.SavedGame, len(games))
	for i, g := range games {
		var err error
		saved[i], err = st.Save(g.Name, g.Log, g.Outcome)
		require.NoError(t, err)
	}
	return saved
}

// foolsMateLog is the move log of the shortest checkmate.
const foolsMateLog = `wp from 6,5 to 5,5
bp from 1,4 to 3,4
wp from 6,6 to 4,6
bq from 0,3 to 4,7
`
