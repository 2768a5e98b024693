package board_test

import (
	"testing"

	"github.com/plus3/blockfall/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	b := board.New(board.WithSize(4, 4))
	catalog := board.DefaultCatalog()

	static := board.NewPiece(catalog.Template(1), board.Position{X: 0, Y: 2})
	staticID := b.AddStatic(static)
	activeID := b.Activate(board.NewPiece(catalog.Template(0), board.Position{X: 0, Y: -1}))
	next := catalog.Template(2)
	b.Player().Next = &next
	b.Player().Score = 20

	snap := b.Snapshot()

	t.Run("copies the board", func(t *testing.T) {
		assert.Equal(t, 4, snap.Width)
		assert.Equal(t, 4, snap.Height)
		assert.Equal(t, 20, snap.Score)
		require.Len(t, snap.Statics, 1)
		require.NotNil(t, snap.Active)
		require.NotNil(t, snap.Next)
		assert.Equal(t, board.KindTee, snap.Next.Kind)
	})

	t.Run("shares no memory with the board", func(t *testing.T) {
		b.Piece(staticID).Shape[0][0] = false
		b.Active().Position.Y++
		b.Player().Next.Shape[0][1] = false

		assert.True(t, snap.Statics[0].Shape[0][0])
		assert.Equal(t, -1, snap.Active.Position.Y)
		assert.True(t, snap.Next.Shape[0][1])
	})

	t.Run("rasterizes cells", func(t *testing.T) {
		cells := snap.Cells()
		require.Len(t, cells, 4)

		for x := range 4 {
			c := cells[0][x]
			assert.True(t, c.Filled)
			assert.True(t, c.Active)
			assert.Equal(t, activeID, c.Piece)
		}
		assert.False(t, cells[1][0].Filled)

		assert.True(t, cells[2][0].Filled)
		assert.False(t, cells[2][0].Active)
		assert.Equal(t, staticID, cells[3][1].Piece)
		assert.Equal(t, catalog.Template(1).Color, cells[3][1].Color)
		assert.False(t, cells[3][2].Filled)
	})
}

func TestGrid(t *testing.T) {
	b := board.New(board.WithSize(3, 2))
	b.AddStatic(cell(0, 1))
	b.AddStatic(cell(2, 0))
	b.Activate(cell(1, 1))

	assert.Equal(t, [][]bool{
		{false, false, true},
		{true, false, false},
	}, b.Grid())
}
