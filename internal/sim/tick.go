package sim

import (
	"math"

	"github.com/mkoval/ghostbird/internal/core"
)

// Jump applies the upward impulse to the bird. A no-op once the session has
// ended. Like Tick, it returns a fresh state and never mutates its input.
func Jump(s State) State {
	if s.Ended {
		return s
	}
	next := s
	next.Bird.VY = JumpImpulse
	return next
}

// Tick advances the simulation by one fixed 16 ms quantum. It is an
// idempotent no-op once Ended is set. The phases run in a fixed order:
// physics proposes a tentative bird, obstacles spawn and move, the collision
// pass may override the proposal, then scoring and termination are applied.
func Tick(s State) State {
	if s.Ended {
		return s
	}

	elapsed := s.Elapsed + TickSeconds

	// Phase 1: tentative physics. Collision is resolved against this
	// proposal, not against the previous position.
	vel := s.Bird.VY + Gravity
	bird := Bird{X: s.Bird.X, Y: s.Bird.Y + vel, VY: vel}

	// Phase 2: materialize due templates. Spawn times are tracked as a set
	// so each mark fires exactly once; gap fractions are scaled to world
	// height here and never re-scaled.
	spawned := s.Spawned
	nextID := s.NextID
	due := make([]Obstacle, 0)
	for _, tpl := range s.Templates {
		// Positive comparison so a NaN spawn time never becomes due.
		if !(tpl.SpawnTime <= elapsed) || spawned[tpl.SpawnTime] {
			continue
		}
		if len(due) == 0 {
			spawned = cloneSpawned(s.Spawned)
		}
		spawned[tpl.SpawnTime] = true
		due = append(due, Obstacle{
			ID:         nextID,
			X:          WorldWidth,
			GapCenterY: tpl.GapCenterFrac * WorldHeight,
			GapHeight:  tpl.GapHeightFrac * WorldHeight,
		})
		nextID++
	}

	// Phase 3: scroll every obstacle left, dropping the ones fully past the
	// world's left edge.
	obstacles := make([]Obstacle, 0, len(s.Obstacles)+len(due))
	for _, o := range s.Obstacles {
		o.X -= ObstacleSpeed
		if o.Right() > 0 {
			obstacles = append(obstacles, o)
		}
	}
	for _, o := range due {
		o.X -= ObstacleSpeed
		if o.Right() > 0 {
			obstacles = append(obstacles, o)
		}
	}

	// Phase 4: collision. On impact the proposal is overridden: one life
	// lost, position clamped into the world, and a bounce velocity whose
	// magnitude in [BounceMin, BounceMax] is drawn from the advanced seed,
	// signed opposite the collision side.
	lives := s.Lives
	seed := s.Seed
	res := ResolveCollision(bird, obstacles, seed)
	if res.Collided {
		lives--
		seed = res.NextSeed
		bird.Y = core.ClampF(bird.Y, BirdHeight/2, WorldHeight-BirdHeight/2)
		mag := BounceMin + (BounceMax-BounceMin)*math.Abs(Scale(seed))
		if res.BounceUpward {
			bird.VY = -mag
		} else {
			bird.VY = mag
		}
	}

	// Phase 5: scoring. Every not-yet-passed obstacle whose right edge fell
	// behind the bird counts, independently of collision handling, so
	// multiple simultaneous passes all score.
	score := s.Score
	for i := range obstacles {
		if !obstacles[i].Passed && obstacles[i].Right() < bird.X {
			obstacles[i].Passed = true
			score++
		}
	}

	// Phase 6: termination. Out of lives, or the course is exhausted: every
	// spawn mark has elapsed and no obstacle remains active.
	ended := lives <= 0
	if !ended && len(obstacles) == 0 {
		exhausted := true
		for _, tpl := range s.Templates {
			// Written so a NaN spawn time never counts as elapsed.
			if !(tpl.SpawnTime <= elapsed) {
				exhausted = false
				break
			}
		}
		ended = exhausted
	}

	return State{
		Bird:      bird,
		Obstacles: obstacles,
		Templates: s.Templates,
		Spawned:   spawned,
		Elapsed:   elapsed,
		NextID:    nextID,
		Lives:     lives,
		Seed:      seed,
		Ended:     ended,
		Score:     score,
	}
}

func cloneSpawned(m map[float64]bool) map[float64]bool {
	out := make(map[float64]bool, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}
