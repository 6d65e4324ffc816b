package sim

import "github.com/mkoval/ghostbird/internal/core"

// World and physics constants. These are tuned to the fixed 16 ms tick and
// are part of the simulation contract, not configuration: changing any of
// them desynchronizes previously recorded ghosts.
const (
	// TickSeconds is the fixed simulation quantum (~60 steps/sec).
	TickSeconds = 0.016

	// World dimensions in abstract units.
	WorldWidth  = 400.0
	WorldHeight = 600.0

	// Bird hitbox and fixed horizontal position (center coordinates).
	BirdWidth  = 34.0
	BirdHeight = 24.0
	BirdStartX = 80.0

	// Gravity is added to vertical velocity each tick; JumpImpulse replaces
	// it on a jump (negative = up).
	Gravity     = 0.03
	JumpImpulse = -2.0

	// Obstacles scroll left at a fixed speed.
	ObstacleWidth = 60.0
	ObstacleSpeed = 2.5

	// Collision bounce speed magnitude range.
	BounceMin = 3.0
	BounceMax = 7.0

	// DefaultLives and DefaultSeed start every fresh session.
	DefaultLives = 3
	DefaultSeed  = 1234
)

// Bird is the player's avatar. X and Y are center coordinates; positive Y
// points down. Replaced wholesale each tick, never mutated.
type Bird struct {
	X, Y float64
	VY   float64 // Vertical velocity, units per tick
}

// Rect returns the bird's world-space hitbox (top-left convention).
func (b Bird) Rect() core.RectF {
	return core.NewRectF(b.X-BirdWidth/2, b.Y-BirdHeight/2, BirdWidth, BirdHeight)
}

// Top returns the y-coordinate of the bird's top edge.
func (b Bird) Top() float64 {
	return b.Y - BirdHeight/2
}

// Bottom returns the y-coordinate of the bird's bottom edge.
func (b Bird) Bottom() float64 {
	return b.Y + BirdHeight/2
}

// Obstacle is a vertical pipe pair with a gap, identified by a unique
// monotonically assigned id. Gap geometry is in world units, already scaled
// from the template fractions at materialization time.
type Obstacle struct {
	ID         int
	X          float64 // Left edge
	GapCenterY float64
	GapHeight  float64
	Passed     bool
}

// Right returns the x-coordinate of the obstacle's right edge.
func (o Obstacle) Right() float64 {
	return o.X + ObstacleWidth
}

// Rect returns the obstacle's full-height footprint, used for horizontal
// span tests. The gap is carved out by GapTop/GapBottom.
func (o Obstacle) Rect() core.RectF {
	return core.NewRectF(o.X, 0, ObstacleWidth, WorldHeight)
}

// GapTop returns the y-coordinate of the gap's top edge.
func (o Obstacle) GapTop() float64 {
	return o.GapCenterY - o.GapHeight/2
}

// GapBottom returns the y-coordinate of the gap's bottom edge.
func (o Obstacle) GapBottom() float64 {
	return o.GapCenterY + o.GapHeight/2
}

// ObstacleTemplate describes one future obstacle: gap geometry as fractions
// of world height plus the elapsed-seconds mark at which it materializes.
// Templates are supplied once at session start and never mutated.
type ObstacleTemplate struct {
	GapCenterFrac float64
	GapHeightFrac float64
	SpawnTime     float64
}

// State is one immutable snapshot of the simulation. Tick produces the next
// snapshot without touching its input; once Ended is true the state is
// frozen and further ticks return it unchanged.
type State struct {
	Bird      Bird
	Obstacles []Obstacle // Ordered by spawn
	Templates []ObstacleTemplate
	Spawned   map[float64]bool // Template spawn times already materialized
	Elapsed   float64          // Seconds since session start
	NextID    int              // Strictly exceeds every id in Obstacles
	Lives     int
	Seed      int64
	Ended     bool
	Score     int
}

// NewState creates the initial state for a session. The seed is normalized
// into LCG range; a zero lives count falls back to DefaultLives.
func NewState(templates []ObstacleTemplate, lives int, seed int64) State {
	if lives <= 0 {
		lives = DefaultLives
	}
	return State{
		Bird: Bird{
			X: BirdStartX,
			Y: WorldHeight / 2,
		},
		Templates: templates,
		Spawned:   make(map[float64]bool),
		NextID:    1,
		Lives:     lives,
		Seed:      NormalizeSeed(seed),
	}
}
