package sim

import "testing"

// gapObstacle builds an obstacle overlapping the bird's fixed x position.
func gapObstacle(id int, gapCenterY, gapHeight float64) Obstacle {
	return Obstacle{
		ID:         id,
		X:          BirdStartX - ObstacleWidth/2,
		GapCenterY: gapCenterY,
		GapHeight:  gapHeight,
	}
}

func TestResolveCollisionClearAir(t *testing.T) {
	bird := Bird{X: BirdStartX, Y: WorldHeight / 2}
	res := ResolveCollision(bird, nil, 42)

	if res.Collided {
		t.Error("bird in open air should not collide")
	}
	if res.NextSeed != 42 {
		t.Errorf("seed must pass through unchanged, got %d", res.NextSeed)
	}
}

func TestResolveCollisionWorldBoundaries(t *testing.T) {
	cases := []struct {
		name       string
		y          float64
		wantUpward bool
	}{
		{"top of world bounces down", BirdHeight / 2, false},
		{"above top bounces down", -5, false},
		{"bottom of world bounces up", WorldHeight - BirdHeight/2, true},
		{"below bottom bounces up", WorldHeight + 5, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			bird := Bird{X: BirdStartX, Y: c.y}
			res := ResolveCollision(bird, nil, 42)

			if !res.Collided {
				t.Fatal("expected a boundary collision")
			}
			if res.BounceUpward != c.wantUpward {
				t.Errorf("BounceUpward = %v, want %v", res.BounceUpward, c.wantUpward)
			}
			if res.NextSeed != NextSeed(42) {
				t.Errorf("seed must advance exactly once, got %d", res.NextSeed)
			}
		})
	}
}

func TestResolveCollisionBoundaryBeforeObstacle(t *testing.T) {
	// Bird off the top of the world while also inside a pipe: the boundary
	// check wins and the bounce points down.
	obstacle := gapObstacle(1, WorldHeight-50, 40)
	bird := Bird{X: BirdStartX, Y: -10}

	res := ResolveCollision(bird, []Obstacle{obstacle}, 7)
	if !res.Collided || res.BounceUpward {
		t.Errorf("expected downward boundary bounce, got %+v", res)
	}
}

func TestResolveCollisionPipeEdges(t *testing.T) {
	obstacle := gapObstacle(1, WorldHeight/2, 100)

	cases := []struct {
		name       string
		y          float64
		collided   bool
		wantUpward bool
	}{
		{"inside gap", WorldHeight / 2, false, false},
		{"top of bird above gap top", obstacle.GapTop() + BirdHeight/2 - 1, true, false},
		{"bottom of bird below gap bottom", obstacle.GapBottom() - BirdHeight/2 + 1, true, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			bird := Bird{X: BirdStartX, Y: c.y}
			res := ResolveCollision(bird, []Obstacle{obstacle}, 42)

			if res.Collided != c.collided {
				t.Fatalf("Collided = %v, want %v", res.Collided, c.collided)
			}
			if !c.collided {
				if res.NextSeed != 42 {
					t.Errorf("no collision must not advance the seed")
				}
				return
			}
			if res.BounceUpward != c.wantUpward {
				t.Errorf("BounceUpward = %v, want %v", res.BounceUpward, c.wantUpward)
			}
		})
	}
}

func TestResolveCollisionNoHorizontalOverlap(t *testing.T) {
	// Pipe entirely to the right of the bird, bird far outside the gap.
	obstacle := Obstacle{ID: 1, X: BirdStartX + BirdWidth, GapCenterY: 50, GapHeight: 10}
	bird := Bird{X: BirdStartX, Y: WorldHeight / 2}

	if res := ResolveCollision(bird, []Obstacle{obstacle}, 42); res.Collided {
		t.Error("pipe without horizontal overlap must not collide")
	}
}

func TestResolveCollisionFirstObstacleWins(t *testing.T) {
	// Both pipes overlap the bird. The first (earliest spawned) puts the
	// bird above its gap (downward bounce); the second would bounce upward.
	// Spawn order decides.
	first := gapObstacle(1, WorldHeight-80, 60)
	second := gapObstacle(2, 80, 60)
	bird := Bird{X: BirdStartX, Y: WorldHeight / 2}

	res := ResolveCollision(bird, []Obstacle{first, second}, 42)
	if !res.Collided {
		t.Fatal("expected collision")
	}
	if res.BounceUpward {
		t.Error("first obstacle should decide the bounce direction (downward)")
	}

	res = ResolveCollision(bird, []Obstacle{second, first}, 42)
	if !res.Collided || !res.BounceUpward {
		t.Error("swapped order should flip the outcome to an upward bounce")
	}
}
