package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to size the board and for deterministic spawning.
type RuntimeConfig struct {
	ScreenW    int   // Screen width in characters
	ScreenH    int   // Screen height in characters
	Seed       int64 // RNG seed for deterministic gameplay
	GridSize   int   // Board dimension override, 0 = variant default
	StartTiles int   // Starting tile override, 0 = variant default
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	MaxTile  int  // Highest tile on the board
	Moves    int  // Moves that changed the board
	GameOver bool // No move can change the board
	Won      bool // Target tile reached (play continues)
}

// StepResult is returned by Game.Step() after each input frame.
type StepResult struct {
	State GameState
	Moved bool // Whether the board changed this step
}
