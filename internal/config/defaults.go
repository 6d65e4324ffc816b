package config

import (
	_ "embed"
)

//go:embed defaults/ghostbird.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the hardcoded fallback configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Session: SessionConfig{
			Lives: 3,
		},
		Ghosts: GhostConfig{
			MaxRendered: 8,
		},
	}
}
