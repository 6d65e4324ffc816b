// Package replay captures session trajectories and derives time-aligned ghost
// overlays from previously sealed ones. Recordings are append-only while
// live; sealing freezes them, and only sealed recordings ever reach the
// synchronizer.
package replay

import "sort"

// Tolerance is the maximum distance, in seconds, between the shared time
// cursor and a recorded sample for the sample to stand in for the cursor.
const Tolerance = 0.2

// TimedPosition is one trajectory sample: the bird's world position at an
// elapsed-seconds mark.
type TimedPosition struct {
	X, Y float64
	Time float64
}

// Recording is one session's trajectory. Samples are appended in strictly
// increasing time order while the session runs; Seal closes the recording for
// good.
type Recording struct {
	samples []TimedPosition
	sealed  bool
}

// Append adds a sample to a live recording. Appends to a sealed recording are
// dropped.
func (r *Recording) Append(p TimedPosition) {
	if r.sealed {
		return
	}
	r.samples = append(r.samples, p)
}

// Seal closes the recording. Sealing twice is harmless.
func (r *Recording) Seal() {
	r.sealed = true
}

// Sealed reports whether the recording has been closed.
func (r *Recording) Sealed() bool {
	return r.sealed
}

// Len returns the number of samples.
func (r *Recording) Len() int {
	return len(r.samples)
}

// Duration returns the timestamp of the last sample, or zero for an empty
// recording.
func (r *Recording) Duration() float64 {
	if len(r.samples) == 0 {
		return 0
	}
	return r.samples[len(r.samples)-1].Time
}

// Sample returns the recorded position nearest to cursor, if one lies within
// Tolerance. Samples are time-ordered, so the nearest is one of the two
// neighbors of the insertion point.
func (r *Recording) Sample(cursor float64) (TimedPosition, bool) {
	if len(r.samples) == 0 {
		return TimedPosition{}, false
	}

	i := sort.Search(len(r.samples), func(i int) bool {
		return r.samples[i].Time >= cursor
	})

	best := TimedPosition{}
	bestDist := Tolerance
	found := false
	for _, j := range []int{i - 1, i} {
		if j < 0 || j >= len(r.samples) {
			continue
		}
		d := r.samples[j].Time - cursor
		if d < 0 {
			d = -d
		}
		if d <= bestDist {
			best = r.samples[j]
			bestDist = d
			found = true
		}
	}
	return best, found
}

// Recorder owns the live recording for the active session. Exactly one
// session writes to it at a time; Start cancels whatever came before.
type Recorder struct {
	live *Recording
}

// NewRecorder returns a recorder with an empty live recording.
func NewRecorder() *Recorder {
	return &Recorder{live: &Recording{}}
}

// Start discards the current live recording, sealed or not, and begins a
// fresh one.
func (r *Recorder) Start() {
	r.live = &Recording{}
}

// Record appends one sample to the live recording.
func (r *Recorder) Record(x, y, elapsed float64) {
	r.live.Append(TimedPosition{X: x, Y: y, Time: elapsed})
}

// Seal closes the live recording and hands it over. The recorder keeps no
// reference to it afterwards, so the caller owns publication.
func (r *Recorder) Seal() *Recording {
	rec := r.live
	rec.Seal()
	r.live = &Recording{}
	return rec
}

// Live exposes the current live recording for inspection.
func (r *Recorder) Live() *Recording {
	return r.live
}
