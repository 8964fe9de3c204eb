// Package config provides YAML-based game configuration loading and
// difficulty presets for the match3 platform.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-match3/internal/match3"
)

// Match3Config contains all configuration for the match3 game.
type Match3Config struct {
	Board    BoardConfig    `yaml:"board"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Playback PlaybackConfig `yaml:"playback"`
}

// BoardConfig defines the grid and palette size.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Colors int `yaml:"colors"`
}

// GameplayConfig defines per-game limits.
type GameplayConfig struct {
	Moves int `yaml:"moves"` // Move budget for the limited-moves mode
	Hints int `yaml:"hints"` // Hints available per game
}

// PlaybackConfig defines how long cascade steps and messages stay on screen.
type PlaybackConfig struct {
	PassTicks   int `yaml:"pass_ticks"`
	StatusTicks int `yaml:"status_ticks"`
}

// MinPlayableColors is the smallest palette a game accepts. The engine can
// build a three-color board, but refills on one keep forming new groups and
// cascades rarely settle.
const MinPlayableColors = match3.MinColors + 1

// Validate checks that the configuration can build a playable board.
// All errors wrap match3.ErrInvalidConfiguration.
func (c Match3Config) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("config: %w: board size %dx%d", match3.ErrInvalidConfiguration, c.Board.Width, c.Board.Height)
	}
	if c.Board.Colors < MinPlayableColors {
		return fmt.Errorf("config: %w: %d colors, need at least %d", match3.ErrInvalidConfiguration, c.Board.Colors, MinPlayableColors)
	}
	if c.Gameplay.Moves < 0 || c.Gameplay.Hints < 0 {
		return fmt.Errorf("config: %w: negative gameplay limit", match3.ErrInvalidConfiguration)
	}
	if c.Playback.PassTicks < 0 || c.Playback.StatusTicks < 0 {
		return fmt.Errorf("config: %w: negative playback ticks", match3.ErrInvalidConfiguration)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// IsFixedPreset returns true if the preset keeps the loaded values untouched.
// The empty preset (no --difficulty flag) counts as fixed.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed || preset == ""
}
