package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: SnakeBoard{
			Width:  16,
			Height: 16,
		},
		Timing: SnakeTiming{
			IntervalFrames: 6,
		},
		Food: SnakeFood{
			Draw:  "independent",
			Probe: "wrap",
		},
	}
}
