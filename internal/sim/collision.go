package sim

// CollisionResult classifies the outcome of one collision pass.
// NextSeed equals the input seed when no collision occurred; on a collision
// the seed is advanced exactly once, coupling "a collision happened" to the
// RNG sequence so identical runs stay identical after identical impacts.
type CollisionResult struct {
	Collided     bool
	BounceUpward bool // True when the response should push the bird up
	NextSeed     int64
}

// ResolveCollision tests the bird against the world boundaries and then each
// obstacle in stored (spawn) order. The first match wins: a bird that is
// simultaneously off the top of the world and inside a pipe resolves as a
// boundary hit, and overlapping pipes resolve to the earliest-spawned one.
func ResolveCollision(bird Bird, obstacles []Obstacle, seed int64) CollisionResult {
	if bird.Top() <= 0 {
		return CollisionResult{Collided: true, BounceUpward: false, NextSeed: NextSeed(seed)}
	}
	if bird.Bottom() >= WorldHeight {
		return CollisionResult{Collided: true, BounceUpward: true, NextSeed: NextSeed(seed)}
	}

	birdRect := bird.Rect()
	for _, o := range obstacles {
		span := o.Rect()
		if !birdRect.OverlapsX(span) {
			continue
		}
		// The pipe body covers everything outside the gap, so horizontal
		// overlap plus an edge past the gap is a hit.
		if bird.Top() < o.GapTop() {
			return CollisionResult{Collided: true, BounceUpward: false, NextSeed: NextSeed(seed)}
		}
		if bird.Bottom() > o.GapBottom() {
			return CollisionResult{Collided: true, BounceUpward: true, NextSeed: NextSeed(seed)}
		}
	}

	return CollisionResult{NextSeed: seed}
}
