package replay

import "testing"

func sealedRecording(times ...float64) *Recording {
	rec := sampleRecording(times...)
	rec.Seal()
	return rec
}

func TestPublishRequiresSealed(t *testing.T) {
	s := NewSynchronizer(0)

	if err := s.Publish(sampleRecording(0.016)); err == nil {
		t.Error("unsealed recording must be refused")
	}
	if err := s.Publish(nil); err == nil {
		t.Error("nil recording must be refused")
	}
	if s.Count() != 0 {
		t.Fatalf("count = %d after refused publishes, want 0", s.Count())
	}

	if err := s.Publish(sealedRecording(0.016)); err != nil {
		t.Fatalf("sealed publish failed: %v", err)
	}
	if s.Count() != 1 {
		t.Errorf("count = %d, want 1", s.Count())
	}
}

func TestSnapshotsVisibilityAndPosition(t *testing.T) {
	s := NewSynchronizer(0)
	if err := s.Publish(sealedRecording(1.0, 2.0)); err != nil {
		t.Fatal(err)
	}

	snaps := s.Snapshots(1.0)
	if len(snaps) != 1 {
		t.Fatalf("got %d snapshots, want 1", len(snaps))
	}
	if !snaps[0].Visible {
		t.Fatal("cursor at a recorded timestamp should be visible")
	}
	if snaps[0].X != 10 || snaps[0].Y != 20 {
		t.Errorf("position = (%f, %f), want exact recorded (10, 20)", snaps[0].X, snaps[0].Y)
	}

	snaps = s.Snapshots(1.5)
	if snaps[0].Visible {
		t.Error("cursor outside every sample's window should be invisible")
	}
	if snaps[0].X != 0 || snaps[0].Y != 0 {
		t.Error("invisible snapshot should carry a zero position")
	}
	if snaps[0].Opacity == 0 {
		t.Error("opacity is assigned regardless of visibility")
	}
}

func TestSnapshotsOpacityCyclesAndIsStable(t *testing.T) {
	s := NewSynchronizer(20)
	for i := 0; i < 7; i++ {
		if err := s.Publish(sealedRecording(1.0)); err != nil {
			t.Fatal(err)
		}
	}

	snaps := s.Snapshots(1.0)
	if len(snaps) != 7 {
		t.Fatalf("got %d snapshots, want 7", len(snaps))
	}
	for i, snap := range snaps {
		want := opacityPalette[i%len(opacityPalette)]
		if snap.Opacity != want {
			t.Errorf("snapshot %d opacity = %f, want %f", i, snap.Opacity, want)
		}
	}
	if snaps[5].Opacity != snaps[0].Opacity {
		t.Error("palette should cycle after five recordings")
	}

	// Opacity assignment does not drift between cursor ticks.
	again := s.Snapshots(2.0)
	for i := range again {
		if again[i].Opacity != snaps[i].Opacity {
			t.Errorf("snapshot %d opacity changed across ticks", i)
		}
	}
}

func TestSnapshotsCapRendersNewest(t *testing.T) {
	s := NewSynchronizer(3)
	for i := 0; i < 5; i++ {
		rec := &Recording{}
		rec.Append(TimedPosition{X: float64(i), Y: 0, Time: 1.0})
		rec.Seal()
		if err := s.Publish(rec); err != nil {
			t.Fatal(err)
		}
	}

	snaps := s.Snapshots(1.0)
	if len(snaps) != 3 {
		t.Fatalf("got %d snapshots, want the cap of 3", len(snaps))
	}
	for i, snap := range snaps {
		if want := float64(i + 2); snap.X != want {
			t.Errorf("snapshot %d should come from recording %d, x = %f", i, i+2, snap.X)
		}
	}
	if s.Count() != 5 {
		t.Errorf("cap limits rendering only, corpus count = %d, want 5", s.Count())
	}
}

func TestSnapshotsEmptyCorpus(t *testing.T) {
	if snaps := NewSynchronizer(0).Snapshots(0); len(snaps) != 0 {
		t.Errorf("empty corpus should derive no snapshots, got %d", len(snaps))
	}
}
