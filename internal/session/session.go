// Package session drives one play-through: it gates input, applies the pure
// simulation transition, feeds the recorder, and keeps the ghost overlay in
// step with the shared time cursor. Everything here runs on a single logical
// timeline; there is no locking because there is no concurrency to guard.
package session

import (
	"github.com/mkoval/ghostbird/internal/core"
	"github.com/mkoval/ghostbird/internal/course"
	"github.com/mkoval/ghostbird/internal/replay"
	"github.com/mkoval/ghostbird/internal/sim"
)

// Frame is the read-only view handed to the presentation layer after each
// advance: the live state plus the derived ghost overlay.
type Frame struct {
	Bird      sim.Bird
	Obstacles []sim.Obstacle
	Score     int
	Lives     int
	Elapsed   float64
	Ended     bool
	Paused    bool
	Ghosts    []replay.GhostSnapshot
}

// Session owns the live simulation state, the active recording, and the
// shared time cursor. The synchronizer is shared across sessions so ghosts
// from earlier runs persist through restarts.
type Session struct {
	course course.Course
	lives  int

	state    sim.State
	paused   bool
	recorder *replay.Recorder
	sealed   *replay.Recording // Most recently sealed run, for the summary
	sync     *replay.Synchronizer
	cursor   float64
	ghosts   []replay.GhostSnapshot
}

// New starts a session on the given course. The seed applies to this first
// run only; restarts reseed from the fixed default so every restarted run is
// comparable against its ghosts.
func New(c course.Course, lives int, seed int64, sync *replay.Synchronizer) *Session {
	if sync == nil {
		sync = replay.NewSynchronizer(0)
	}
	return &Session{
		course:   c,
		lives:    lives,
		state:    sim.NewState(c.Templates, lives, seed),
		recorder: replay.NewRecorder(),
		sync:     sync,
	}
}

// Advance processes one input frame and, unless gated, one simulation tick.
// Ordering within the call is fixed: restart is observed first, then the
// pause gate, then jump, then the transition, and only after the transition
// completes do the recorder, cursor, and ghost overlay update.
func (s *Session) Advance(in core.InputFrame) {
	if in.Has(core.ActionRestart) {
		s.restart()
		return
	}

	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		// Dropped, not queued: resuming never replays missed ticks.
		return
	}

	if in.Has(core.ActionJump) {
		s.state = sim.Jump(s.state)
	}

	prev := s.state
	s.state = sim.Tick(s.state)

	if !s.state.Ended {
		s.recorder.Record(s.state.Bird.X, s.state.Bird.Y, s.state.Elapsed)
	}
	if !prev.Ended && s.state.Ended {
		// Seal exactly once, at the not-ended -> ended transition.
		s.sealed = s.recorder.Seal()
		_ = s.sync.Publish(s.sealed)
	}

	s.cursor = s.state.Elapsed
	s.ghosts = s.sync.Snapshots(s.cursor)
}

// restart cancels the current run before any tick of the new one: the
// unsealed recording is discarded, never published, and the cursor returns
// to zero.
func (s *Session) restart() {
	s.recorder.Start()
	s.state = sim.NewState(s.course.Templates, s.lives, sim.DefaultSeed)
	s.paused = false
	s.cursor = 0
	s.ghosts = s.sync.Snapshots(0)
}

// Frame returns the current read-only view for rendering.
func (s *Session) Frame() Frame {
	return Frame{
		Bird:      s.state.Bird,
		Obstacles: s.state.Obstacles,
		Score:     s.state.Score,
		Lives:     s.state.Lives,
		Elapsed:   s.state.Elapsed,
		Ended:     s.state.Ended,
		Paused:    s.paused,
		Ghosts:    s.ghosts,
	}
}

// CourseName returns the name of the course this session plays.
func (s *Session) CourseName() string {
	return s.course.Name
}

// Recordings returns how many sealed recordings the synchronizer holds.
func (s *Session) Recordings() int {
	return s.sync.Count()
}

// LastRun returns the most recently sealed recording's sample count and
// duration, for the run summary written at session end.
func (s *Session) LastRun() (samples int, duration float64, ok bool) {
	if s.sealed == nil {
		return 0, 0, false
	}
	return s.sealed.Len(), s.sealed.Duration(), true
}
