package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the default match3 configuration.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{
			Width:  8,
			Height: 8,
			Colors: 5,
		},
		Gameplay: GameplayConfig{
			Moves: 30,
			Hints: 3,
		},
		Playback: PlaybackConfig{
			PassTicks:   20,
			StatusTicks: 90,
		},
	}
}
