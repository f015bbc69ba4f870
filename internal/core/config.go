package core

// RuntimeConfig contains configuration passed to frontends at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (or pixels for windowed frontends)
	ScreenH  int   // Screen height in characters (or pixels for windowed frontends)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// GameState represents the externally visible state of a run.
type GameState struct {
	Score    int  // Human-facing score (tick counter / score divisor)
	Ticks    int  // Raw tick counter
	Started  bool // Whether the instructions screen has been left
	GameOver bool // Whether the run has ended
	Halted   bool // Whether the terminal screen is shown and ticking stopped
}
