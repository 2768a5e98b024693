package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/game"
)

const (
	margin     = 40
	panelCells = 6
)

var (
	background = color.RGBA{R: 16, G: 16, B: 24, A: 255}
	gridLine   = color.RGBA{R: 40, G: 40, B: 52, A: 255}
	borderLine = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	outline    = color.RGBA{A: 255}
)

// layout places the board and the side panel on screen.
type layout struct {
	cols, rows int
	cell       int
	width      int
	height     int
}

func newLayout(cols, rows, cell int) layout {
	return layout{
		cols:   cols,
		rows:   rows,
		cell:   cell,
		width:  margin*2 + (cols+panelCells)*cell,
		height: margin*2 + rows*cell,
	}
}

func (l layout) draw(screen *ebiten.Image, snap board.Snapshot, g *game.Game) {
	screen.Fill(background)

	boardW := float32(l.cols * l.cell)
	boardH := float32(l.rows * l.cell)
	vector.StrokeRect(screen, margin-2, margin-2, boardW+4, boardH+4, 2, borderLine, false)

	for y, row := range snap.Cells() {
		for x, c := range row {
			px := float32(margin + x*l.cell)
			py := float32(margin + y*l.cell)
			if !c.Filled {
				vector.StrokeRect(screen, px, py, float32(l.cell), float32(l.cell), 1, gridLine, false)
				continue
			}
			l.drawCell(screen, px, py, c.Color)
		}
	}

	textX := margin + l.cols*l.cell + l.cell
	ebitenutil.DebugPrintAt(screen, "NEXT", textX, margin)
	if snap.Next != nil {
		l.drawPreview(screen, *snap.Next, float32(textX), float32(margin+20))
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE\n%d", snap.Score), textX, margin+6*l.cell)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES\n%d", g.Lines()), textX, margin+8*l.cell)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("PIECES\n%d", g.PiecesSpawned()), textX, margin+10*l.cell)

	switch g.State() {
	case game.StatePause:
		ebitenutil.DebugPrintAt(screen, "PAUSED", margin+l.cell, margin+l.rows*l.cell/2)
	case game.StateEnd:
		ebitenutil.DebugPrintAt(screen, "GAME OVER", margin+l.cell, margin+l.rows*l.cell/2-10)
		ebitenutil.DebugPrintAt(screen, "Press R to restart", margin+l.cell, margin+l.rows*l.cell/2+10)
	}
}

func (l layout) drawCell(screen *ebiten.Image, x, y float32, c color.RGBA) {
	size := float32(l.cell)
	vector.DrawFilledRect(screen, x, y, size, size, c, false)
	vector.StrokeRect(screen, x, y, size, size, 1, outline, false)
}

func (l layout) drawPreview(screen *ebiten.Image, t board.Template, x, y float32) {
	for cy, row := range t.Shape {
		for cx, set := range row {
			if set {
				l.drawCell(screen, x+float32(cx*l.cell), y+float32(cy*l.cell), t.Color)
			}
		}
	}
}
