package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mkoval/ghostbird/internal/core"
	"github.com/mkoval/ghostbird/internal/session"
	"github.com/mkoval/ghostbird/internal/sim"
)

// hudRows is how many screen rows the HUD occupies above the playfield.
const hudRows = 1

// Glyphs for the playfield.
const (
	birdRune  = '◆'
	pipeRune  = '█'
	ghostRune = '◇'
)

// colorStyles maps core.Color to lipgloss styles. Ghost colors step through
// darkening grays, one per opacity slot.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorGhost1:  lipgloss.NewStyle().Foreground(lipgloss.Color("251")),
	core.ColorGhost2:  lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
	core.ColorGhost3:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorGhost4:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	core.ColorGhost5:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
}

// ghostColor picks the fade level for a ghost's opacity slot.
func ghostColor(opacity float64) core.Color {
	switch {
	case opacity > 0.75:
		return core.ColorGhost1
	case opacity > 0.55:
		return core.ColorGhost2
	case opacity > 0.42:
		return core.ColorGhost3
	case opacity > 0.27:
		return core.ColorGhost4
	default:
		return core.ColorGhost5
	}
}

// worldToScreen projects world coordinates onto playfield cells. The
// playfield starts below the HUD row.
func worldToScreen(wx, wy float64, s *core.Screen) (int, int) {
	playH := s.Height() - hudRows
	if playH < 1 || s.Width() < 1 {
		return 0, hudRows
	}
	sx := int(wx / sim.WorldWidth * float64(s.Width()))
	sy := int(wy / sim.WorldHeight * float64(playH))
	return core.Clamp(sx, 0, s.Width()-1), hudRows + core.Clamp(sy, 0, playH-1)
}

// Render draws one frame onto the screen buffer: HUD, ghosts, obstacles, the
// bird, then any overlay. Ghosts draw first so the live bird always sits on
// top of its replays.
func Render(f session.Frame, courseName string, highScore int, s *core.Screen) {
	s.Clear()
	drawHUD(f, courseName, highScore, s)

	for _, g := range f.Ghosts {
		if !g.Visible {
			continue
		}
		gx, gy := worldToScreen(g.X, g.Y, s)
		s.SetColored(gx, gy, ghostRune, ghostColor(g.Opacity))
	}

	for _, o := range f.Obstacles {
		drawObstacle(o, s)
	}

	bx, by := worldToScreen(f.Bird.X, f.Bird.Y, s)
	s.SetColored(bx, by, birdRune, core.ColorYellow)

	switch {
	case f.Ended:
		drawOverlay(s, "GAME OVER", fmt.Sprintf("score %d", f.Score), "r restart · q quit")
	case f.Paused:
		drawOverlay(s, "PAUSED", "", "p resume")
	}
}

// drawHUD renders the status line across the top of the screen.
func drawHUD(f session.Frame, courseName string, highScore int, s *core.Screen) {
	hearts := strings.Repeat("♥", core.Max(f.Lives, 0))
	left := fmt.Sprintf(" %s  score %d  lives %s  ghosts %d",
		courseName, f.Score, hearts, len(f.Ghosts))
	if highScore > 0 {
		left += fmt.Sprintf("  best %d", highScore)
	}
	s.DrawTextColored(0, 0, left, core.ColorWhite)

	clock := fmt.Sprintf("%6.1fs ", f.Elapsed)
	s.DrawTextColored(s.Width()-len(clock), 0, clock, core.ColorGray)
}

// drawObstacle renders one pipe pair: solid columns with the gap carved out.
func drawObstacle(o sim.Obstacle, s *core.Screen) {
	left, _ := worldToScreen(o.X, 0, s)
	right, _ := worldToScreen(o.Right(), 0, s)
	if o.Right() >= sim.WorldWidth {
		right = s.Width() - 1
	}
	_, gapTop := worldToScreen(0, o.GapTop(), s)
	_, gapBottom := worldToScreen(0, o.GapBottom(), s)

	for x := left; x <= right; x++ {
		for y := hudRows; y < s.Height(); y++ {
			if y >= gapTop && y <= gapBottom {
				continue
			}
			s.SetColored(x, y, pipeRune, core.ColorGreen)
		}
	}
}

// drawOverlay centers up to three lines of text in a box over the playfield.
func drawOverlay(s *core.Screen, lines ...string) {
	width := 0
	shown := make([]string, 0, len(lines))
	for _, l := range lines {
		if l == "" {
			continue
		}
		shown = append(shown, l)
		if n := len([]rune(l)); n > width {
			width = n
		}
	}
	if len(shown) == 0 {
		return
	}

	boxW := width + 4
	boxH := len(shown) + 2
	x := (s.Width() - boxW) / 2
	y := (s.Height() - boxH) / 2

	box := core.NewRect(x, y, boxW, boxH)
	s.DrawRect(box, ' ')
	s.DrawBox(box)
	for i, l := range shown {
		lx := x + (boxW-len([]rune(l)))/2
		s.DrawTextColored(lx, y+1+i, l, core.ColorWhite)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
