package config

import "fmt"

// presetTuning lists what each preset changes. More colors make matches rarer.
var presetTuning = map[DifficultyPreset]struct {
	colors int
	moves  int
	hints  int
}{
	DifficultyEasy:   {colors: 4, moves: 40, hints: 5},
	DifficultyNormal: {colors: 5, moves: 30, hints: 3},
	DifficultyHard:   {colors: 6, moves: 20, hints: 0},
}

// ParsePreset converts a flag value to a preset. Empty stays empty, which
// keeps the loaded config as it is.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyMatch3Preset modifies the config based on a difficulty preset.
// The fixed and empty presets leave the loaded values as they are.
func ApplyMatch3Preset(cfg *Match3Config, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		return
	}
	tuning, ok := presetTuning[preset]
	if !ok {
		return
	}
	cfg.Board.Colors = tuning.colors
	cfg.Gameplay.Moves = tuning.moves
	cfg.Gameplay.Hints = tuning.hints
}
