// Package config loads game configuration from YAML files and applies
// difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// SnakeConfig contains all configuration for Snake.
type SnakeConfig struct {
	Board  SnakeBoard  `yaml:"board"`
	Timing SnakeTiming `yaml:"timing"`
	Food   SnakeFood   `yaml:"food"`
	Rng    SnakeRng    `yaml:"rng"`
}

// SnakeBoard defines the grid and the head's starting cell.
type SnakeBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
}

// SnakeTiming defines how often the simulation steps.
type SnakeTiming struct {
	IntervalFrames int `yaml:"interval_frames"` // host frames per step
}

// SnakeFood selects the food placement policies.
type SnakeFood struct {
	Draw  string `yaml:"draw"`  // "independent" or "paired"
	Probe string `yaml:"probe"` // "wrap" or "linear"
}

// SnakeRng controls the generator across restarts.
type SnakeRng struct {
	ReseedOnReset bool `yaml:"reseed_on_reset"`
}

// maxBoard matches the largest board the simulation accepts.
const maxBoard = 255

var ErrInvalidConfig = errors.New("config: invalid snake config")

// Validate checks ranges and policy names.
func (c SnakeConfig) Validate() error {
	b := c.Board
	switch {
	case b.Width < 1 || b.Width > maxBoard || b.Height < 1 || b.Height > maxBoard:
		return fmt.Errorf("%w: board %dx%d outside 1..%d", ErrInvalidConfig, b.Width, b.Height, maxBoard)
	case b.StartX < 0 || b.StartX >= b.Width || b.StartY < 0 || b.StartY >= b.Height:
		return fmt.Errorf("%w: start (%d,%d) outside the board", ErrInvalidConfig, b.StartX, b.StartY)
	case c.Timing.IntervalFrames < 1:
		return fmt.Errorf("%w: interval_frames must be at least 1", ErrInvalidConfig)
	}

	switch c.Food.Draw {
	case "", "independent", "paired":
	default:
		return fmt.Errorf("%w: unknown food draw %q", ErrInvalidConfig, c.Food.Draw)
	}
	switch c.Food.Probe {
	case "", "wrap", "linear":
	default:
		return fmt.Errorf("%w: unknown food probe %q", ErrInvalidConfig, c.Food.Probe)
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

// Presets lists the difficulty presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset maps a flag value to a preset. The empty string is "fixed".
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyFixed, nil
	}
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// IntervalForPreset returns the step interval for a preset, or 0 for "fixed"
// which keeps the configured value.
func IntervalForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 10
	case DifficultyNormal:
		return 6
	case DifficultyHard:
		return 3
	default:
		return 0
	}
}
