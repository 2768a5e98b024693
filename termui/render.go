// Package termui draws the board on a tcell screen and turns terminal key
// presses into game input.
package termui

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/game"
)

// Each board cell is two terminal columns wide.
const cellWidth = 2

const panelWidth = 16

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	emptyStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(48, 48, 60))
	alertStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// HUD is the session state shown beside the board.
type HUD struct {
	Score  int
	Lines  int
	Pieces int
	State  game.State
}

func HUDFor(g *game.Game) HUD {
	return HUD{
		Score:  g.Score(),
		Lines:  g.Lines(),
		Pieces: g.PiecesSpawned(),
		State:  g.State(),
	}
}

type Renderer struct {
	Screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{Screen: screen}
}

// Size is the terminal area a board of the given dimensions needs.
func Size(cols, rows int) (int, int) {
	return cols*cellWidth + 2 + panelWidth, rows + 2
}

// Draw renders one frame and shows it.
func (r *Renderer) Draw(snap board.Snapshot, hud HUD) {
	s := r.Screen
	s.Clear()

	needW, needH := Size(snap.Width, snap.Height)
	if w, h := s.Size(); w < needW || h < needH {
		r.text(0, 0, fmt.Sprintf("terminal too small: need %dx%d", needW, needH), alertStyle)
		s.Show()
		return
	}

	r.border(snap.Width*cellWidth+2, snap.Height+2)

	for y, row := range snap.Cells() {
		for x, c := range row {
			sx, sy := 1+x*cellWidth, 1+y
			if !c.Filled {
				s.SetContent(sx, sy, ' ', nil, tcell.StyleDefault)
				s.SetContent(sx+1, sy, '.', nil, emptyStyle)
				continue
			}
			style := tcell.StyleDefault.Background(rgb(c.Color)).Foreground(tcell.ColorBlack)
			glyph := '['
			if c.Active {
				glyph = '<'
			}
			s.SetContent(sx, sy, glyph, nil, style)
			s.SetContent(sx+1, sy, closing(glyph), nil, style)
		}
	}

	px := snap.Width*cellWidth + 4
	r.text(px, 1, "NEXT", textStyle)
	if snap.Next != nil {
		r.preview(px, 2, *snap.Next)
	}
	r.text(px, 7, fmt.Sprintf("SCORE  %d", hud.Score), textStyle)
	r.text(px, 8, fmt.Sprintf("LINES  %d", hud.Lines), textStyle)
	r.text(px, 9, fmt.Sprintf("PIECES %d", hud.Pieces), textStyle)

	mid := 1 + snap.Height/2
	switch hud.State {
	case game.StatePause:
		r.text(2, mid, "PAUSED", alertStyle)
	case game.StateEnd:
		r.text(2, mid, "GAME OVER", alertStyle)
		r.text(2, mid+1, "r: restart", textStyle)
	}

	r.text(px, snap.Height, "q: quit", borderStyle)
	s.Show()
}

func (r *Renderer) border(w, h int) {
	s := r.Screen
	for x := 1; x < w-1; x++ {
		s.SetContent(x, 0, tcell.RuneHLine, nil, borderStyle)
		s.SetContent(x, h-1, tcell.RuneHLine, nil, borderStyle)
	}
	for y := 1; y < h-1; y++ {
		s.SetContent(0, y, tcell.RuneVLine, nil, borderStyle)
		s.SetContent(w-1, y, tcell.RuneVLine, nil, borderStyle)
	}
	s.SetContent(0, 0, tcell.RuneULCorner, nil, borderStyle)
	s.SetContent(w-1, 0, tcell.RuneURCorner, nil, borderStyle)
	s.SetContent(0, h-1, tcell.RuneLLCorner, nil, borderStyle)
	s.SetContent(w-1, h-1, tcell.RuneLRCorner, nil, borderStyle)
}

func (r *Renderer) preview(x, y int, t board.Template) {
	style := tcell.StyleDefault.Background(rgb(t.Color)).Foreground(tcell.ColorBlack)
	for cy, row := range t.Shape {
		for cx, set := range row {
			if set {
				r.Screen.SetContent(x+cx*cellWidth, y+cy, '[', nil, style)
				r.Screen.SetContent(x+cx*cellWidth+1, y+cy, ']', nil, style)
			}
		}
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.Screen.SetContent(x+i, y, ch, nil, style)
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func closing(open rune) rune {
	if open == '<' {
		return '>'
	}
	return ']'
}
