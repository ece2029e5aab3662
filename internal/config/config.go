// Package config provides configuration for the chess-rules tools.
package config

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// OutputFormat selects how boards and results are written.
type OutputFormat int

const (
	Text OutputFormat = iota // Rows of piece codes
	JSON                     // Snapshot document
	SVG                      // Board drawing
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	switch f {
	case JSON:
		return "json"
	case SVG:
		return "svg"
	}
	return "text"
}

// ParseOutputFormat converts a flag value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return Text, nil
	case "json":
		return JSON, nil
	case "svg":
		return SVG, nil
	}
	return Text, errors.Wrapf(errors.ErrInvalidConfig, "unknown output format %q", s)
}

// ParsePromotion converts a flag value such as "q" or "knight" to a kind.
func ParsePromotion(s string) (chess.Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k := chess.Pawn; k < chess.NumKinds; k++ {
		if !k.Promotable() {
			continue
		}
		if s == string(k.Letter()) || s == strings.ToLower(k.String()) {
			return k, nil
		}
	}
	return chess.Queen, errors.Wrapf(errors.ErrInvalidConfig, "cannot promote to %q", s)
}

// Verbosity levels map onto log levels.
const (
	Quiet   = 0 // warnings and errors
	Normal  = 1 // progress
	Verbose = 2 // every move
)

// Config holds all program configuration.
type Config struct {
	// Rules
	Promotion chess.Kind

	// Logging
	Verbosity int

	// Saved games
	StorePath string

	// Replay
	ReplayDelay time.Duration
	Workers     int

	// Output
	OutputFormat OutputFormat

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// DefaultStorePath is the saved-games file used when none is given.
const DefaultStorePath = "chess-games.json"

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Promotion:    chess.Queen,
		Verbosity:    Normal,
		StorePath:    DefaultStorePath,
		Workers:      4,
		OutputFormat: Text,
		OutputFile:   os.Stdout,
		LogFile:      os.Stderr,
	}
}

// Validate reports the first invalid setting, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case !c.Promotion.Promotable():
		return errors.Wrapf(errors.ErrInvalidConfig, "cannot promote to %v", c.Promotion)
	case c.ReplayDelay < 0:
		return errors.Wrapf(errors.ErrInvalidConfig, "negative replay delay %v", c.ReplayDelay)
	case c.Workers < 1:
		return errors.Wrapf(errors.ErrInvalidConfig, "workers must be at least 1, got %d", c.Workers)
	case c.StorePath == "":
		return errors.Wrap(errors.ErrInvalidConfig, "empty store path")
	case c.OutputFormat < Text || c.OutputFormat > SVG:
		return errors.Wrapf(errors.ErrInvalidConfig, "unknown output format %d", c.OutputFormat)
	}
	return nil
}
