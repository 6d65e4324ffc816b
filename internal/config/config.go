// Package config provides YAML-based configuration loading for ghostbird.
// Only presentation and session knobs live here; physics constants are part
// of the simulation contract and deliberately not configurable, since
// changing them would desynchronize every previously recorded ghost.
package config

// GameConfig contains the tunable session settings.
type GameConfig struct {
	Session SessionConfig `yaml:"session"`
	Ghosts  GhostConfig   `yaml:"ghosts"`
}

// SessionConfig defines how a play-through starts.
type SessionConfig struct {
	Lives  int    `yaml:"lives"`
	Course string `yaml:"course"` // Path to a course file; empty = built-in
}

// GhostConfig defines the replay overlay settings.
type GhostConfig struct {
	MaxRendered int `yaml:"max_rendered"`
}
