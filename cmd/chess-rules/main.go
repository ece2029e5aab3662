// chess-rules plays, replays and keeps chess games under the standard rules.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	cmd, err := selectCommand()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	logger := cfg.NewLogger()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	code := NewApp(cfg, logger, os.Stdin, os.Stderr).Run(ctx, cmd)

	stop()
	_ = logger.Sync()
	closeFile(cfg.OutputFile)
	closeFile(cfg.LogFile)
	os.Exit(code)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// closeFile closes w when it is a file opened by the setup functions.
func closeFile(w io.Writer) {
	f, ok := w.(*os.File)
	if !ok || f == os.Stdout || f == os.Stderr {
		return
	}
	f.Close() //nolint:errcheck,gosec // G104: cleanup on exit
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess on the command line and manage saved games.\n")
	fmt.Fprintf(os.Stderr, "Without a command option an interactive game is read from stdin.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nSquares are written row,col with row 0 on black's back rank:\n")
	fmt.Fprintf(os.Stderr, "  6,4 4,4    white pawn e2-e4\n")
	fmt.Fprintf(os.Stderr, "\nMove logs hold one line per move or undo:\n")
	fmt.Fprintf(os.Stderr, "  wp from 6,4 to 4,4\n")
	fmt.Fprintf(os.Stderr, "  undo\n")
}
