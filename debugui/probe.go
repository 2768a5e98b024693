package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/game"
)

// ProbeResult holds the collision predicates for a hypothetical placement.
type ProbeResult struct {
	Fits      bool
	Left      bool
	Right     bool
	Down      bool
	Completes int
}

// Probe asks the board whether shape could sit at pos and which ways it
// could move from there. Completes counts the rows a settle at pos would
// fill.
func Probe(b *board.Board, shape board.Shape, pos board.Position) ProbeResult {
	res := ProbeResult{
		Fits:  b.CanPlace(shape, pos),
		Left:  b.CanMoveLeft(shape, pos, true),
		Right: b.CanMoveRight(shape, pos, true),
		Down:  b.CanMoveDown(shape, pos, true),
	}
	if !res.Fits {
		return res
	}

	grid := b.Grid()
	for y, row := range shape {
		for x, set := range row {
			gx, gy := pos.X+x, pos.Y+y
			if set && gy >= 0 && gy < len(grid) && gx >= 0 && gx < len(grid[gy]) {
				grid[gy][gx] = true
			}
		}
	}
	for y := pos.Y; y < pos.Y+len(shape); y++ {
		if y >= 0 && y < len(grid) && RowFill(grid[y:y+1])[0].Complete() {
			res.Completes++
		}
	}
	return res
}

// CollisionProbe lets the user place a hypothetical piece and see what the
// board would allow.
type CollisionProbe struct {
	Kind      int32
	X, Y      int32
	Rotations int

	// base replaces the template shape after FromActive, until Kind changes.
	base board.Shape
}

func NewCollisionProbe() *CollisionProbe {
	return &CollisionProbe{}
}

// FromActive probes p as it stands: its position and its current,
// possibly rotated, shape.
func (cp *CollisionProbe) FromActive(p *board.Piece) {
	cp.X, cp.Y = int32(p.Position.X), int32(p.Position.Y)
	cp.Kind = int32(p.Kind)
	cp.Rotations = 0
	cp.base = p.Shape.Clone()
}

// SetKind switches the probe to a catalog template.
func (cp *CollisionProbe) SetKind(kind int32) {
	cp.Kind = kind
	cp.base = nil
}

// Shape returns the probed shape after the configured rotations.
func (cp *CollisionProbe) Shape(catalog *board.Catalog) board.Shape {
	shape := cp.base
	if shape == nil {
		shape = catalog.Template(int(cp.Kind) % catalog.Len()).Shape
	}
	for range cp.Rotations % 4 {
		shape = shape.Rotate()
	}
	return shape
}

func (cp *CollisionProbe) Render(g *game.Game, frame *game.Frame) {
	imgui.SetNextWindowPosV(imgui.NewVec2(320, 590), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 260), imgui.CondOnce)

	if !imgui.BeginV("Collision Probe", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	b := g.Board()
	catalog := g.Catalog()
	kind := cp.Kind
	if imgui.SliderInt("Kind", &kind, 0, int32(catalog.Len()-1)) {
		cp.SetKind(kind)
	}
	imgui.SameLine()
	imgui.Text(catalog.Template(int(cp.Kind) % catalog.Len()).Kind.String())
	imgui.SliderInt("X", &cp.X, -3, int32(b.Width()))
	imgui.SliderInt("Y", &cp.Y, -3, int32(b.Height()))
	if imgui.Button("Rotate") {
		cp.Rotations++
	}
	imgui.SameLine()
	if imgui.Button("From active") {
		if active := b.Active(); active != nil {
			cp.FromActive(active)
		}
	}
	imgui.Separator()

	res := Probe(b, cp.Shape(catalog), board.Position{X: int(cp.X), Y: int(cp.Y)})
	yes := imgui.NewVec4(0.0, 1.0, 0.0, 1.0)
	no := imgui.NewVec4(1.0, 0.3, 0.3, 1.0)
	for _, row := range []struct {
		label string
		ok    bool
	}{
		{"fits", res.Fits},
		{"move left", res.Left},
		{"move right", res.Right},
		{"move down", res.Down},
	} {
		color := no
		if row.ok {
			color = yes
		}
		imgui.TextColored(color, fmt.Sprintf("%-10s %t", row.label, row.ok))
	}
	imgui.Text(fmt.Sprintf("Rows completed by settling here: %d", res.Completes))

	imgui.End()
}
