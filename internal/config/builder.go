package config

import (
	"io"

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

// WithVariant sets the setup variant.
func (b *ConfigBuilder) WithVariant(v chess.Variant) *ConfigBuilder {
	b.cfg.Game.Variant = v
	return b
}

// WithSeed sets the random back-rank seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Game.Seed = seed
	return b
}

// WithAutoQueen enables automatic queen promotion.
func (b *ConfigBuilder) WithAutoQueen(enabled bool) *ConfigBuilder {
	b.cfg.Game.AutoQueen = enabled
	return b
}

// WithFEN sets the starting position.
func (b *ConfigBuilder) WithFEN(fen string) *ConfigBuilder {
	b.cfg.Game.FEN = fen
	return b
}

// WithPerft requests a perft run to depth, optionally divided by root move.
func (b *ConfigBuilder) WithPerft(depth int, divide bool) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	b.cfg.Perft.Divide = divide
	return b
}

// WithSuite sets the perft suite file to check.
func (b *ConfigBuilder) WithSuite(path string) *ConfigBuilder {
	b.cfg.Perft.SuiteFile = path
	return b
}

// WithWorkers sets the number of parallel perft workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithJSON enables JSON output.
func (b *ConfigBuilder) WithJSON(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
