package tui

import (
	"strings"
	"testing"

	"github.com/mkoval/ghostbird/internal/core"
	"github.com/mkoval/ghostbird/internal/replay"
	"github.com/mkoval/ghostbird/internal/session"
	"github.com/mkoval/ghostbird/internal/sim"
)

func TestWorldToScreenCorners(t *testing.T) {
	s := core.NewScreen(80, 25)

	x, y := worldToScreen(0, 0, s)
	if x != 0 || y != hudRows {
		t.Errorf("origin maps to (%d, %d), want (0, %d)", x, y, hudRows)
	}

	x, y = worldToScreen(sim.WorldWidth, sim.WorldHeight, s)
	if x != 79 || y != 24 {
		t.Errorf("far corner maps to (%d, %d), want (79, 24)", x, y)
	}

	// Out-of-world coordinates clamp onto the playfield.
	x, y = worldToScreen(-50, sim.WorldHeight+100, s)
	if x != 0 || y != 24 {
		t.Errorf("clamped to (%d, %d), want (0, 24)", x, y)
	}
}

func TestGhostColorCoversPalette(t *testing.T) {
	cases := []struct {
		opacity float64
		want    core.Color
	}{
		{0.85, core.ColorGhost1},
		{0.65, core.ColorGhost2},
		{0.50, core.ColorGhost3},
		{0.35, core.ColorGhost4},
		{0.20, core.ColorGhost5},
	}

	for _, c := range cases {
		if got := ghostColor(c.opacity); got != c.want {
			t.Errorf("ghostColor(%f) = %d, want %d", c.opacity, got, c.want)
		}
	}
}

func TestRenderDrawsBirdAndHUD(t *testing.T) {
	s := core.NewScreen(80, 25)
	f := session.Frame{
		Bird:  sim.Bird{X: sim.BirdStartX, Y: sim.WorldHeight / 2},
		Score: 7,
		Lives: 3,
	}

	Render(f, "classic", 12, s)

	out := s.String()
	if !strings.Contains(out, "score 7") {
		t.Error("HUD should show the score")
	}
	if !strings.Contains(out, "♥♥♥") {
		t.Error("HUD should show one heart per life")
	}
	if !strings.Contains(out, "best 12") {
		t.Error("HUD should show the stored high score")
	}

	bx, by := worldToScreen(f.Bird.X, f.Bird.Y, s)
	if s.Get(bx, by) != birdRune {
		t.Errorf("bird cell holds %q", s.Get(bx, by))
	}
}

func TestRenderGhostUnderBird(t *testing.T) {
	s := core.NewScreen(80, 25)
	f := session.Frame{
		Bird: sim.Bird{X: sim.BirdStartX, Y: sim.WorldHeight / 2},
		Ghosts: []replay.GhostSnapshot{
			{X: sim.BirdStartX, Y: sim.WorldHeight / 2, Visible: true, Opacity: 0.85},
			{X: 300, Y: 100, Visible: true, Opacity: 0.65},
			{Visible: false, Opacity: 0.50},
		},
	}

	Render(f, "classic", 0, s)

	// The live bird wins the shared cell.
	bx, by := worldToScreen(f.Bird.X, f.Bird.Y, s)
	if s.Get(bx, by) != birdRune {
		t.Error("live bird should draw over a coinciding ghost")
	}

	gx, gy := worldToScreen(300, 100, s)
	cell := s.GetCell(gx, gy)
	if cell.Rune != ghostRune {
		t.Errorf("ghost cell holds %q", cell.Rune)
	}
	if cell.Color != core.ColorGhost2 {
		t.Errorf("ghost color = %d, want %d", cell.Color, core.ColorGhost2)
	}

	// Invisible ghosts draw nothing at the world origin cell.
	ox, oy := worldToScreen(0, 0, s)
	if got := s.GetCell(ox, oy); got.Rune == ghostRune {
		t.Error("invisible ghost should not be drawn", got)
	}
}

func TestRenderObstacleLeavesGap(t *testing.T) {
	s := core.NewScreen(80, 25)
	o := sim.Obstacle{ID: 1, X: 200, GapCenterY: 300, GapHeight: 180}
	f := session.Frame{
		Bird:      sim.Bird{X: sim.BirdStartX, Y: 100},
		Obstacles: []sim.Obstacle{o},
	}

	Render(f, "classic", 0, s)

	px, _ := worldToScreen(o.X+sim.ObstacleWidth/2, 0, s)
	_, topY := worldToScreen(0, 50, s)
	_, gapY := worldToScreen(0, o.GapCenterY, s)
	_, bottomY := worldToScreen(0, 550, s)

	if s.Get(px, topY) != pipeRune {
		t.Error("upper pipe half missing")
	}
	if s.Get(px, bottomY) != pipeRune {
		t.Error("lower pipe half missing")
	}
	if s.Get(px, gapY) == pipeRune {
		t.Error("gap should stay open")
	}
}

func TestRenderOverlays(t *testing.T) {
	s := core.NewScreen(80, 25)
	base := session.Frame{Bird: sim.Bird{X: sim.BirdStartX, Y: 300}}

	paused := base
	paused.Paused = true
	Render(paused, "classic", 0, s)
	if !strings.Contains(s.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}

	ended := base
	ended.Ended = true
	ended.Score = 3
	Render(ended, "classic", 0, s)
	if !strings.Contains(s.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
	if strings.Contains(s.String(), "PAUSED") {
		t.Error("screen should be cleared between frames")
	}
}

func TestRenderScreenPlainDimensions(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawText(0, 0, "hello")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[0], "hello") {
		t.Errorf("first line = %q", lines[0])
	}
}
