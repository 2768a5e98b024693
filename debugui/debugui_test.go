package debugui_test

import (
	"testing"
	"time"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameHistory(t *testing.T) {
	h := debugui.NewFrameHistory(3)
	assert.Zero(t, h.Average())
	assert.Empty(t, h.Ordered())

	h.Push(10 * time.Millisecond)
	h.Push(20 * time.Millisecond)
	assert.InDelta(t, 15.0, h.Average(), 0.001)
	assert.Equal(t, []float32{10, 20}, h.Ordered())

	h.Push(30 * time.Millisecond)
	h.Push(40 * time.Millisecond)
	assert.InDelta(t, 30.0, h.Average(), 0.001)
	assert.Equal(t, []float32{20, 30, 40}, h.Ordered())
}

func TestPieceRows(t *testing.T) {
	b := board.New()
	catalog := board.DefaultCatalog()
	b.AddStatic(board.NewPiece(catalog.Template(0), board.Position{X: 0, Y: 20}))
	b.AddStatic(board.NewPiece(catalog.Template(1), board.Position{X: 4, Y: 22}))
	b.AddStatic(board.NewPiece(catalog.Template(2), board.Position{X: 7, Y: 21}))
	b.Activate(board.NewPiece(catalog.Template(3), board.Position{X: 5, Y: 0}))
	snap := b.Snapshot()

	kinds := func(rows []debugui.PieceRow) []board.Kind {
		var out []board.Kind
		for _, r := range rows {
			out = append(out, r.Kind)
		}
		return out
	}

	t.Run("active piece leads", func(t *testing.T) {
		rows := debugui.PieceRows(snap, debugui.ColumnID, true)
		require.Len(t, rows, 4)
		assert.True(t, rows[0].Active)
		assert.Equal(t, board.KindJay, rows[0].Kind)
		assert.Equal(t, []board.Kind{board.KindJay, board.KindStraight, board.KindSquare, board.KindTee}, kinds(rows))
	})

	t.Run("by position descending", func(t *testing.T) {
		rows := debugui.PieceRows(snap, debugui.ColumnPosition, false)
		assert.Equal(t, []board.Kind{board.KindJay, board.KindSquare, board.KindTee, board.KindStraight}, kinds(rows))
	})

	t.Run("by kind", func(t *testing.T) {
		rows := debugui.PieceRows(snap, debugui.ColumnKind, false)
		assert.Equal(t, []board.Kind{board.KindJay, board.KindTee, board.KindSquare, board.KindStraight}, kinds(rows))
	})

	t.Run("cell counts", func(t *testing.T) {
		for _, r := range debugui.PieceRows(snap, debugui.ColumnCells, true) {
			assert.Equal(t, 4, r.Cells)
		}
	})
}

func TestRequests(t *testing.T) {
	g := game.New(game.WithSeed(5))
	g.Tick(time.Millisecond, game.Input{})

	(debugui.Requests{TogglePause: true}).Apply(g, nil)
	assert.Equal(t, game.StatePause, g.State())

	stepper := &debugui.Stepper{}
	(debugui.Requests{Step: 2}).Apply(g, stepper)
	assert.Equal(t, 2, stepper.Remaining())

	ticks := 0
	tick := func() {
		ticks++
		assert.Equal(t, game.StatePlay, g.State())
		g.Tick(time.Millisecond, game.Input{})
	}
	stepper.Tick(g, tick)
	assert.Equal(t, game.StatePause, g.State())
	assert.Equal(t, 1, stepper.Remaining())

	(debugui.Requests{TogglePause: true}).Apply(g, stepper)
	stepper.Tick(g, func() { g.Tick(time.Millisecond, game.Input{}) })
	assert.Equal(t, game.StatePlay, g.State())
	assert.Zero(t, stepper.Remaining(), "resuming drops queued steps")
	assert.Equal(t, 1, ticks)

	(debugui.Requests{Reset: true}).Apply(g, stepper)
	assert.Zero(t, g.PiecesSpawned())
}

func TestSessionControlTake(t *testing.T) {
	sc := debugui.NewSessionControl()
	assert.Equal(t, debugui.Requests{}, sc.Take())
}

func unit(x, y int) board.Piece {
	return board.Piece{
		Shape:    board.MustShape([][]bool{{true}}),
		Position: board.Position{X: x, Y: y},
	}
}

func TestRowViewer(t *testing.T) {
	grid := [][]bool{
		{false, false, false},
		{true, false, false},
		{true, true, true},
		{true, false, true},
	}

	fill := debugui.RowFill(grid)
	require.Len(t, fill, 4)
	assert.Equal(t, debugui.RowInfo{Row: 2, Filled: 3, Width: 3}, fill[2])
	assert.True(t, fill[2].Complete())
	assert.False(t, fill[0].Complete())

	rv := debugui.NewRowViewer()
	var order []int
	for _, r := range rv.Rows(grid) {
		order = append(order, r.Row)
	}
	assert.Equal(t, []int{1, 2, 3}, order, "empty rows hidden")

	rv.HideEmpty = false
	assert.Len(t, rv.Rows(grid), 4)
}

func TestProbe(t *testing.T) {
	b := board.New(board.WithSize(4, 4))
	for x := range 3 {
		b.AddStatic(unit(x, 3))
	}
	dot := board.MustShape([][]bool{{true}})

	t.Run("completing gap", func(t *testing.T) {
		res := debugui.Probe(b, dot, board.Position{X: 3, Y: 3})
		assert.Equal(t, debugui.ProbeResult{Fits: true, Completes: 1}, res)
	})

	t.Run("open space", func(t *testing.T) {
		res := debugui.Probe(b, dot, board.Position{X: 3, Y: 0})
		assert.Equal(t, debugui.ProbeResult{Fits: true, Left: true, Down: true}, res)
	})

	t.Run("overlap", func(t *testing.T) {
		res := debugui.Probe(b, dot, board.Position{X: 0, Y: 3})
		assert.False(t, res.Fits)
		assert.Zero(t, res.Completes)
	})

	t.Run("leaves the board untouched", func(t *testing.T) {
		debugui.Probe(b, dot, board.Position{X: 3, Y: 3})
		assert.False(t, b.Occupied(3, 3))
	})
}

func TestCollisionProbeShape(t *testing.T) {
	catalog := board.DefaultCatalog()
	cp := debugui.NewCollisionProbe()
	cp.Kind = int32(board.KindTee)
	assert.True(t, catalog.Template(int(board.KindTee)).Shape.Equal(cp.Shape(catalog)))

	cp.Rotations = 5
	assert.True(t, catalog.Template(int(board.KindTee)).Shape.Rotate().Equal(cp.Shape(catalog)))

	t.Run("from active keeps the current rotation", func(t *testing.T) {
		b := board.New()
		b.Activate(board.NewPiece(catalog.Template(int(board.KindJay)), board.Position{X: 4, Y: 6}))
		active := b.Active()
		active.Shape = active.Shape.Rotate()

		cp := debugui.NewCollisionProbe()
		cp.FromActive(active)
		assert.Equal(t, int32(4), cp.X)
		assert.Equal(t, int32(6), cp.Y)
		assert.True(t, active.Shape.Equal(cp.Shape(catalog)))
		assert.False(t, catalog.Template(int(board.KindJay)).Shape.Equal(cp.Shape(catalog)))

		active.Shape = active.Shape.Rotate()
		assert.False(t, active.Shape.Equal(cp.Shape(catalog)), "the captured shape is a copy")

		cp.Rotations = 1
		assert.True(t, active.Shape.Equal(cp.Shape(catalog)))
	})

	t.Run("choosing a kind drops the active shape", func(t *testing.T) {
		b := board.New()
		b.Activate(board.NewPiece(catalog.Template(int(board.KindJay)), board.Position{X: 4, Y: 6}))
		active := b.Active()
		active.Shape = active.Shape.Rotate()

		cp := debugui.NewCollisionProbe()
		cp.FromActive(active)
		cp.SetKind(int32(board.KindSquare))
		assert.True(t, catalog.Template(int(board.KindSquare)).Shape.Equal(cp.Shape(catalog)))
	})
}
