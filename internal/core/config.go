package core

// RuntimeConfig is the per-session runtime environment handed to the
// platform layer: terminal dimensions and the deterministic seed.
// The simulation tick period is a fixed contract and is not configured here.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed; 0 means use the game's default seed
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}
