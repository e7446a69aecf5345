package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
	Best     int   // Persisted best score, carried into State and Snapshot
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickRateOrDefault returns the configured tick rate, or 60 when unset.
func (c RuntimeConfig) TickRateOrDefault() int {
	if c.TickRate <= 0 {
		return 60
	}
	return c.TickRate
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score int
	Best  int
	Lives int
	Level int
	Phase Phase
}

// GameOver reports whether the session has ended in a loss.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseOver
}

// Paused reports whether the game is paused.
func (s GameState) Paused() bool {
	return s.Phase == PhasePaused
}

// Won reports whether the current level or session was cleared.
func (s GameState) Won() bool {
	return s.Phase == PhaseWon
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Scored is the amount added to the score during this tick.
	Scored int
}

// Scoreboard tracks score and best score. Score only grows within a
// session; Best is raised whenever Score passes it.
type Scoreboard struct {
	Score int
	Best  int
}

// Add increases the score by n (ignored when n <= 0) and updates Best.
func (s *Scoreboard) Add(n int) int {
	if n <= 0 {
		return 0
	}
	s.Score += n
	if s.Score > s.Best {
		s.Best = s.Score
	}
	return n
}

// Reset zeroes the score and keeps Best.
func (s *Scoreboard) Reset(best int) {
	s.Score = 0
	s.Best = max(s.Best, best)
}
