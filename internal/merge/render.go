package merge

import (
	"fmt"
	"math"

	"github.com/vovakirdan/shapefall/internal/core"
)

// Rows reserved above the container for the HUD line.
const hudRows = 1

// viewport maps world pixels onto screen cells. Terminal cells are
// roughly twice as tall as wide, so the vertical scale doubles.
type viewport struct {
	originX, originY int // top-left interior cell of the container
	cellsW, cellsH   int
	scale            float64 // world px per cell column
}

// layoutViewport fits the container into a screen of screenW x screenH
// cells, centered horizontally, leaving room for HUD and border. The
// zero viewport means the screen is too small to play on.
func layoutViewport(worldW, worldH float64, screenW, screenH int) viewport {
	availW := screenW - 2
	availH := screenH - hudRows - 2
	if availW < 10 || availH < 8 || worldW <= 0 || worldH <= 0 {
		return viewport{}
	}

	scale := math.Max(worldW/float64(availW), worldH/float64(availH*2))
	cellsW := core.Min(int(worldW/scale+0.5), availW)
	cellsH := core.Min(int(worldH/(scale*2)+0.5), availH)

	return viewport{
		originX: (screenW - cellsW) / 2,
		originY: hudRows + 1,
		cellsW:  cellsW,
		cellsH:  cellsH,
		scale:   scale,
	}
}

func (v viewport) valid() bool { return v.cellsW > 0 && v.cellsH > 0 }

func (v viewport) contains(cx, cy int) bool {
	return cx >= v.originX && cx < v.originX+v.cellsW &&
		cy >= v.originY && cy < v.originY+v.cellsH
}

func (v viewport) cellX(wx float64) int { return v.originX + int(wx/v.scale) }
func (v viewport) cellY(wy float64) int { return v.originY + int(wy/(v.scale*2)) }

// cellToWorld maps the center of a screen cell back to world pixels.
func (v viewport) cellToWorld(cx, cy int) (float64, float64) {
	wx := (float64(cx-v.originX) + 0.5) * v.scale
	wy := (float64(cy-v.originY) + 0.5) * v.scale * 2
	return wx, wy
}

// Render draws the current simulation state. It is a pure read; calling
// it never changes the outcome of the game.
func (s *Simulation) Render(dst *core.Screen) {
	dst.Clear()

	v := layoutViewport(s.cfg.Container.Width, s.cfg.Container.Height, dst.Width(), dst.Height())
	if !v.valid() {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	s.drawHUD(dst, v)

	// Container walls
	dst.DrawBox(core.NewRect(v.originX-1, v.originY-1, v.cellsW+2, v.cellsH+2), core.ColorGray)

	s.drawOverflowLine(dst, v)

	for _, sh := range s.shapes {
		drawShape(dst, v, sh)
	}
	if s.active != nil {
		s.drawGuide(dst, v)
		drawShape(dst, v, s.active)
	}

	if s.debug {
		s.drawDebug(dst, v)
	}
	if s.gameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", s.score))
	}
}

func (s *Simulation) drawHUD(dst *core.Screen, v viewport) {
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", s.score))
	dst.DrawText(dst.Width()/2-8, 0, fmt.Sprintf(" Best: %s ", s.topTier))

	label := " Next: "
	x := dst.Width() - len(label) - 4
	dst.DrawText(x, 0, label)
	if s.next != nil {
		dst.SetCell(x+len(label), 0, s.next.Type.Glyph(), s.next.Type.Color())
	}
}

// drawOverflowLine marks the game-over threshold with a dashed line.
func (s *Simulation) drawOverflowLine(dst *core.Screen, v viewport) {
	cy := v.cellY(s.overflowLine())
	color := core.ColorGray
	if s.dragging {
		color = core.ColorWhite
	}
	for cx := v.originX; cx < v.originX+v.cellsW; cx += 2 {
		dst.SetCell(cx, cy, '╌', color)
	}
}

// drawGuide drops a dotted aim line from the active shape until it hits
// the stack or the floor.
func (s *Simulation) drawGuide(dst *core.Screen, v viewport) {
	cx := v.cellX(s.active.Pos.X)
	color := core.ColorGray
	if s.dragging {
		color = core.ColorWhite
	}
	for cy := v.cellY(s.active.Bottom()) + 1; cy < v.originY+v.cellsH; cy++ {
		if dst.GetCell(cx, cy).Rune != ' ' {
			break
		}
		dst.SetCell(cx, cy, '·', color)
	}
}

// drawShape fills the cells whose world-space centers fall inside the
// shape's circle. The cell holding the shape center is always covered,
// so even the smallest tier stays visible.
func drawShape(dst *core.Screen, v viewport, sh *Shape) {
	r := sh.Radius()
	glyph := sh.Type.Glyph()
	color := sh.Type.Color()

	minY := v.cellY(sh.Pos.Y - r)
	maxY := v.cellY(sh.Pos.Y + r)
	minX := v.cellX(sh.Pos.X - r)
	maxX := v.cellX(sh.Pos.X + r)
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			if !v.contains(cx, cy) {
				continue
			}
			wx, wy := v.cellToWorld(cx, cy)
			dx := wx - sh.Pos.X
			dy := wy - sh.Pos.Y
			if dx*dx+dy*dy <= r*r {
				dst.SetCell(cx, cy, glyph, color)
			}
		}
	}

	ccx := v.cellX(sh.Pos.X)
	ccy := v.cellY(sh.Pos.Y)
	if v.contains(ccx, ccy) {
		dst.SetCell(ccx, ccy, glyph, color)
	}
}

func (s *Simulation) drawDebug(dst *core.Screen, v viewport) {
	resting := 0
	for _, sh := range s.shapes {
		if sh.Resting {
			resting++
		}
		if sh.MergeCandidate {
			cx := v.cellX(sh.Pos.X)
			cy := v.cellY(sh.Pos.Y)
			if v.contains(cx, cy) {
				dst.SetCell(cx, cy, '+', core.ColorWhite)
			}
		}
	}
	status := fmt.Sprintf(" shapes:%d resting:%d pending:%v timer:%.2f ",
		len(s.shapes), resting, s.mergePending, s.mergeTimer)
	dst.DrawText(1, dst.Height()-1, status)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
