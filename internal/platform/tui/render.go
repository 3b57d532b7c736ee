package tui

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cuberun/internal/core"
	"github.com/vovakirdan/cuberun/internal/sim"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorBrightBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
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

// hudRows is the number of screen rows above the map.
const hudRows = 2

// FrameSink keeps the latest snapshot handed over by the frame driver.
// It implements sim.RenderSink; View draws whatever it holds.
type FrameSink struct {
	last  sim.Snapshot
	valid bool
}

// Render stores the snapshot.
func (f *FrameSink) Render(snap sim.Snapshot) {
	f.last = snap
	f.valid = true
}

// Last returns the most recent snapshot, if any.
func (f *FrameSink) Last() (sim.Snapshot, bool) {
	return f.last, f.valid
}

// projection maps the XZ plane onto screen cells, +x to the right and +z down.
// Terminal cells are about twice as tall as wide, so one world unit spans
// twice as many columns as rows.
type projection struct {
	minX, minZ float64
	scale      float64 // Rows per world unit
	offX, offY int
}

func newProjection(snap sim.Snapshot, w, h int) projection {
	minX, minZ := math.Inf(1), math.Inf(1)
	maxX, maxZ := math.Inf(-1), math.Inf(-1)
	for _, o := range snap.Obstacles {
		minX, maxX = math.Min(minX, o.Min.X), math.Max(maxX, o.Max.X)
		minZ, maxZ = math.Min(minZ, o.Min.Z), math.Max(maxZ, o.Max.Z)
	}
	if len(snap.Obstacles) == 0 {
		minX, minZ, maxX, maxZ = -10, -10, 10, 10
	}

	spanX := math.Max(maxX-minX, 1)
	spanZ := math.Max(maxZ-minZ, 1)
	scale := math.Min(float64(w)/(2*spanX), float64(h)/spanZ)
	if scale <= 0 {
		scale = 1
	}

	return projection{
		minX:  minX,
		minZ:  minZ,
		scale: scale,
		offX:  (w - int(math.Round(2*spanX*scale))) / 2,
		offY:  hudRows + (h-int(math.Round(spanZ*scale)))/2,
	}
}

func (p projection) cell(x, z float64) (int, int) {
	col := p.offX + int(math.Floor((x-p.minX)*2*p.scale))
	row := p.offY + int(math.Floor((z-p.minZ)*p.scale))
	return col, row
}

// rect returns the cells covered by an XZ footprint, at least one cell.
func (p projection) rect(minX, minZ, maxX, maxZ float64) core.Rect {
	x0, y0 := p.cell(minX, minZ)
	x1, y1 := p.cell(maxX, maxZ)
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

// heightRune shades an obstacle by the height of its top face.
func heightRune(top float64) rune {
	switch {
	case top <= 0:
		return '·'
	case top <= 1:
		return '░'
	case top <= 2:
		return '▒'
	default:
		return '▓'
	}
}

// facingRunes are eight arrows, counterclockwise on screen from +x.
var facingRunes = []rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

func facingRune(f sim.Facing) rune {
	// Screen rows grow with +z, so negate z to get an on-screen angle.
	angle := math.Atan2(-f.Z, f.X)
	idx := int(math.Round(angle/(math.Pi/4))) % 8
	if idx < 0 {
		idx += 8
	}
	return facingRunes[idx]
}

// DrawSnapshot draws a top-down view of the arena with a HUD on the first rows.
func DrawSnapshot(dst *core.Screen, snap sim.Snapshot) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()-hudRows
	if w <= 0 || h <= 0 {
		return
	}
	p := newProjection(snap, w, h)

	// Lower obstacles first so taller steps stay visible
	obstacles := append([]sim.ObstacleSnapshot(nil), snap.Obstacles...)
	sort.SliceStable(obstacles, func(i, j int) bool {
		return obstacles[i].Max.Y < obstacles[j].Max.Y
	})
	for _, o := range obstacles {
		color := core.ColorStep
		if o.Max.Y <= 0 {
			color = core.ColorGround
		}
		dst.DrawRect(p.rect(o.Min.X, o.Min.Z, o.Max.X, o.Max.Z), heightRune(o.Max.Y), color)
	}

	g := snap.Goal
	gx, gy := p.cell(g.Position.X, g.Position.Z)
	dst.SetColored(gx, gy, '◆', core.ColorGoal)

	e := snap.Enemy
	dst.DrawRect(p.rect(
		e.Position.X-e.HalfExtents.X, e.Position.Z-e.HalfExtents.Z,
		e.Position.X+e.HalfExtents.X, e.Position.Z+e.HalfExtents.Z,
	), 'x', core.ColorEnemy)

	c := snap.Camera.Position
	cx, cy := p.cell(c.X, c.Z)
	if cy >= hudRows {
		dst.SetColored(cx, cy, 'c', core.ColorCamera)
	}

	pl := snap.Player
	px, py := p.cell(pl.Position.X, pl.Position.Z)
	dst.SetColored(px, py, '@', core.ColorPlayer)
	fx, fy := p.cell(pl.Position.X+pl.Facing.X*pl.HalfExtents.X*2, pl.Position.Z+pl.Facing.Z*pl.HalfExtents.Z*2)
	if fx != px || fy != py {
		dst.SetColored(fx, fy, facingRune(pl.Facing), core.ColorPlayer)
	}

	drawHUD(dst, snap)
}

func drawHUD(dst *core.Screen, snap sim.Snapshot) {
	status := fmt.Sprintf(" %-8s  t %6.2fs  y %5.2f", strings.ToUpper(string(snap.Mode)), snap.ElapsedSec, snap.Player.Position.Y)
	if snap.Player.Grounded {
		status += "  ground"
	}
	if snap.Mode == sim.ModeWon {
		status += fmt.Sprintf("  score %d", snap.Score)
	}
	dst.DrawTextColored(0, 0, status, core.ColorHUD)

	msg, color := banner(snap)
	dst.DrawTextCentered(1, msg, color)
}

func banner(snap sim.Snapshot) (string, core.Color) {
	switch snap.Mode {
	case sim.ModeStart:
		return "Press Enter to start", core.ColorHUD
	case sim.ModePaused:
		return "Paused - P to resume", core.ColorYellow
	case sim.ModeWon:
		return fmt.Sprintf("Goal reached in %.2fs! Score %d - R to restart", snap.ElapsedSec, snap.Score), core.ColorGoal
	case sim.ModeLost:
		if snap.Cause == sim.CauseFall {
			return "You fell off the edge - R to restart", core.ColorEnemy
		}
		return "Caught by the patrol - R to restart", core.ColorEnemy
	}
	return "Reach the gold block, avoid the red patrol", core.ColorGray
}
