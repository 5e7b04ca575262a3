package core

// RuntimeConfig is handed to a game on every Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host frames per second
	Seed     int64 // 0 seeds the generator from the clock
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is the status a game reports to the platform after each frame.
type GameState struct {
	Score    int
	GameOver bool
	Won      bool // only meaningful when GameOver is set
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
