// Package config loads application settings from an optional YAML file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/sijan67/chessboard-pragmatic-dnd/internal/board"
)

// Placement positions one piece at startup.
type Placement struct {
	Kind string `yaml:"kind"`
	Row  int    `yaml:"row"`
	Col  int    `yaml:"col"`
}

// Config holds all application settings.
type Config struct {
	LogLevel     string      `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	WindowTitle  string      `yaml:"window-title" env:"WINDOW_TITLE" env-default:"Chessboard"`
	SquareSize   int         `yaml:"square-size" env:"SQUARE_SIZE" env-default:"80"`
	Theme        string      `yaml:"theme" env:"THEME" env-default:"classic"`
	Mute         bool        `yaml:"mute" env:"MUTE"`
	DataDir      string      `yaml:"data-dir" env:"DATA_DIR" env-default:""`
	Pieces       []Placement `yaml:"pieces"`
}

// Load reads settings from the given file, falling back to environment
// variables and defaults when the file does not exist.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("unable to load config file %s: %w", path, err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("unable to read environment config: %w", err)
		}
	}

	if cfg.SquareSize < 16 {
		cfg.SquareSize = 16
	}
	return cfg, nil
}

// InitialPieces converts the configured placements into board pieces.
// With no placements configured, the default one-king one-pawn layout is
// returned. Unparseable placements are skipped with an error listing.
func (c *Config) InitialPieces() ([]board.Piece, error) {
	if len(c.Pieces) == 0 {
		return DefaultPlacement(), nil
	}

	pieces := make([]board.Piece, 0, len(c.Pieces))
	for _, pl := range c.Pieces {
		kind, err := board.ParseKind(pl.Kind)
		if err != nil {
			return nil, err
		}
		pos := board.NewCoord(pl.Row, pl.Col)
		if !pos.IsValid() {
			return nil, fmt.Errorf("placement %s at %v is off the board", pl.Kind, pos)
		}
		pieces = append(pieces, board.Piece{Kind: kind, Pos: pos})
	}
	return pieces, nil
}

// DefaultPlacement is the fixed startup layout: a king on (3,2) and a
// pawn on (1,6).
func DefaultPlacement() []board.Piece {
	return []board.Piece{
		{Kind: board.King, Pos: board.NewCoord(3, 2)},
		{Kind: board.Pawn, Pos: board.NewCoord(1, 6)},
	}
}
