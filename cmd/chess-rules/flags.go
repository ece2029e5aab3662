// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

var (
	// Saved games
	storePath = flag.String("store", config.DefaultStorePath, "Saved games file")
	saveName  = flag.String("save", "", "Save the game under NAME on quit (or after -replay)")

	// Commands
	listGames   = flag.Bool("list", false, "List saved games and the match tally")
	deleteID    = flag.String("delete", "", "Delete the saved game with this ID")
	showID      = flag.String("show", "", "Replay the saved game with this ID and print the final board")
	replayFile  = flag.String("replay", "", "Replay a move log file and print the final board")
	verifyGames = flag.Bool("verify", false, "Replay every saved game and report inconsistencies")

	// Replay options
	workers = flag.Int("workers", 4, "Number of concurrent replays for -verify")
	delay   = flag.Duration("delay", 0, "Pause between replayed moves (e.g. 500ms)")

	// Output options
	outputFormat = flag.String("format", "text", "Output format: text, json, svg")
	outputFile   = flag.String("o", "", "Output file (default: stdout)")

	// Rules
	promote = flag.String("promote", "q", "Promotion piece: q, r, b, n")

	// Logging
	verbosity = flag.Int("v", config.Normal, "Log verbosity: 0 warnings, 1 progress, 2 every move")
	logFile   = flag.String("log", "", "Write diagnostics to log file (default: stderr)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration and validates it.
func applyFlags(cfg *config.Config) error {
	kind, err := config.ParsePromotion(*promote)
	if err != nil {
		return err
	}
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}

	cfg.Promotion = kind
	cfg.OutputFormat = format
	cfg.StorePath = *storePath
	cfg.Workers = *workers
	cfg.ReplayDelay = *delay
	cfg.Verbosity = *verbosity

	return cfg.Validate()
}

// command is the action selected on the command line.
type command int

const (
	cmdPlay command = iota
	cmdList
	cmdDelete
	cmdShow
	cmdReplay
	cmdVerify
)

func (c command) String() string {
	switch c {
	case cmdList:
		return "-list"
	case cmdDelete:
		return "-delete"
	case cmdShow:
		return "-show"
	case cmdReplay:
		return "-replay"
	case cmdVerify:
		return "-verify"
	}
	return "play"
}

// selectCommand returns the single command requested by the flags, or
// cmdPlay when none is given.
func selectCommand() (command, error) {
	var selected []command
	if *listGames {
		selected = append(selected, cmdList)
	}
	if *deleteID != "" {
		selected = append(selected, cmdDelete)
	}
	if *showID != "" {
		selected = append(selected, cmdShow)
	}
	if *replayFile != "" {
		selected = append(selected, cmdReplay)
	}
	if *verifyGames {
		selected = append(selected, cmdVerify)
	}

	switch len(selected) {
	case 0:
		return cmdPlay, nil
	case 1:
		return selected[0], nil
	}
	names := make([]string, len(selected))
	for i, c := range selected {
		names[i] = c.String()
	}
	return cmdPlay, errors.Wrapf(errors.ErrInvalidConfig, "conflicting commands %s", strings.Join(names, " "))
}
