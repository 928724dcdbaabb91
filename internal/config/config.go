// Package config loads the YAML settings file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hailam/chessboard/internal/board"
)

// ErrInvalidConfig is returned by Validate and Load for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

// MinBoardSize is the smallest board edge in pixels.
const MinBoardSize = 160

// Theme holds the board colours as "#rrggbb" or "#rrggbbaa" strings.
type Theme struct {
	LightSquare    string `yaml:"light_square"`
	DarkSquare     string `yaml:"dark_square"`
	SelectedSquare string `yaml:"selected_square"`
	LegalMove      string `yaml:"legal_move"`
	LastMove       string `yaml:"last_move"`
	Check          string `yaml:"check"`
	Background     string `yaml:"background"`
	Text           string `yaml:"text"`
}

// Config is the application configuration.
type Config struct {
	StartNotation  string `yaml:"start_notation"`
	BoardSize      int    `yaml:"board_size"`
	Flipped        bool   `yaml:"flipped"`
	ShowLegalMoves bool   `yaml:"show_legal_moves"`
	Sound          bool   `yaml:"sound"`
	// DataDir overrides the platform data directory when set.
	DataDir string `yaml:"data_dir,omitempty"`
	Theme   Theme  `yaml:"theme"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		StartNotation:  board.StartNotation,
		BoardSize:      640,
		ShowLegalMoves: true,
		Sound:          true,
		Theme: Theme{
			LightSquare:    "#f0d9b5",
			DarkSquare:     "#b58863",
			SelectedSquare: "#f7f769b4",
			LegalMove:      "#829769c8",
			LastMove:       "#b4be645a",
			Check:          "#ff6464b4",
			Background:     "#282c34",
			Text:           "#dcdcdc",
		},
	}
}

// Load reads the file at path over the defaults. A missing file is not an
// error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config '%s': %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config '%s': %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("'%s': %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("'%s': %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("'%s': %w", path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write file '%s': %w", path, err)
	}
	return nil
}

// Validate checks the board size and theme colours.
func (c *Config) Validate() error {
	if c.BoardSize < MinBoardSize {
		return fmt.Errorf("board_size %d below %d: %w", c.BoardSize, MinBoardSize, ErrInvalidConfig)
	}

	fields := []struct {
		name  string
		value string
	}{
		{"light_square", c.Theme.LightSquare},
		{"dark_square", c.Theme.DarkSquare},
		{"selected_square", c.Theme.SelectedSquare},
		{"legal_move", c.Theme.LegalMove},
		{"last_move", c.Theme.LastMove},
		{"check", c.Theme.Check},
		{"background", c.Theme.Background},
		{"text", c.Theme.Text},
	}
	for _, f := range fields {
		if _, err := ParseColor(f.value); err != nil {
			return fmt.Errorf("theme.%s: %w", f.name, err)
		}
	}
	return nil
}

// ParseColor parses "#rrggbb" or "#rrggbbaa". Alpha defaults to opaque.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("colour %q: %w", s, ErrInvalidConfig)
	}
	if len(hex) == 6 {
		hex += "ff"
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colour %q: %w", s, ErrInvalidConfig)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// MustColor is ParseColor for values already checked by Validate.
func MustColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
