package config

import (
	"io"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithPromotion sets the kind pawns promote to.
func (b *ConfigBuilder) WithPromotion(kind chess.Kind) *ConfigBuilder {
	b.cfg.Promotion = kind
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithStorePath sets the saved-games file.
func (b *ConfigBuilder) WithStorePath(path string) *ConfigBuilder {
	b.cfg.StorePath = path
	return b
}

// WithReplayDelay sets the pause between replayed moves.
func (b *ConfigBuilder) WithReplayDelay(d time.Duration) *ConfigBuilder {
	b.cfg.ReplayDelay = d
	return b
}

// WithWorkers sets the number of verification workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.OutputFormat = format
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
