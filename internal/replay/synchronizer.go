package replay

import "fmt"

// DefaultMaxGhosts caps how many ghosts render simultaneously.
const DefaultMaxGhosts = 8

// opacityPalette holds the five opacity slots cycled across recordings so
// adjacent ghosts stay distinguishable.
var opacityPalette = [5]float64{0.85, 0.65, 0.50, 0.35, 0.20}

// GhostSnapshot is one ghost's derived position at the current cursor. An
// invisible snapshot carries a zero position.
type GhostSnapshot struct {
	X, Y    float64
	Visible bool
	Opacity float64
}

// Synchronizer holds the corpus of sealed recordings and derives one
// GhostSnapshot per rendered recording on every cursor advance. It keeps no
// per-tick state: snapshots are recomputed from scratch each time.
type Synchronizer struct {
	recordings []*Recording
	maxGhosts  int
}

// NewSynchronizer returns an empty synchronizer rendering at most maxGhosts
// ghosts. Non-positive caps fall back to DefaultMaxGhosts.
func NewSynchronizer(maxGhosts int) *Synchronizer {
	if maxGhosts <= 0 {
		maxGhosts = DefaultMaxGhosts
	}
	return &Synchronizer{maxGhosts: maxGhosts}
}

// Publish registers a sealed recording into the corpus. Live recordings are
// refused: the synchronizer only ever reads immutable trajectories.
func (s *Synchronizer) Publish(rec *Recording) error {
	if rec == nil {
		return fmt.Errorf("replay: publish of nil recording")
	}
	if !rec.Sealed() {
		return fmt.Errorf("replay: publish of unsealed recording")
	}
	s.recordings = append(s.recordings, rec)
	return nil
}

// Count returns the number of published recordings.
func (s *Synchronizer) Count() int {
	return len(s.recordings)
}

// Snapshots derives the ghost overlay for the given cursor position. Only
// the newest maxGhosts recordings render; each keeps the opacity slot of its
// position in the corpus, so a ghost's shade is stable across ticks.
func (s *Synchronizer) Snapshots(cursor float64) []GhostSnapshot {
	start := 0
	if len(s.recordings) > s.maxGhosts {
		start = len(s.recordings) - s.maxGhosts
	}

	out := make([]GhostSnapshot, 0, len(s.recordings)-start)
	for i := start; i < len(s.recordings); i++ {
		snap := GhostSnapshot{Opacity: opacityPalette[i%len(opacityPalette)]}
		if p, ok := s.recordings[i].Sample(cursor); ok {
			snap.X, snap.Y, snap.Visible = p.X, p.Y, true
		}
		out = append(out, snap)
	}
	return out
}
