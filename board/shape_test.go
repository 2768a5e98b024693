package board_test

import (
	"testing"

	"github.com/plus3/blockfall/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, rows ...string) board.Shape {
	t.Helper()
	s, err := board.ParseShape(rows...)
	require.NoError(t, err)
	return s
}

func TestParseShape(t *testing.T) {
	t.Run("square matrix", func(t *testing.T) {
		s := mustParse(t, "#.", "##")
		assert.Equal(t, 2, s.Size())
		assert.True(t, s.At(0, 0))
		assert.False(t, s.At(1, 0))
		assert.True(t, s.At(1, 1))
		assert.Equal(t, 3, s.Count())
		assert.Equal(t, "#.\n##", s.String())
	})

	t.Run("out of range cells are empty", func(t *testing.T) {
		s := mustParse(t, "##", "##")
		assert.False(t, s.At(-1, 0))
		assert.False(t, s.At(0, 2))
		assert.False(t, s.At(2, 1))
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		_, err := board.ParseShape()
		assert.ErrorIs(t, err, board.ErrMalformedShape)

		_, err = board.ParseShape("##", "#")
		assert.ErrorIs(t, err, board.ErrMalformedShape)

		_, err = board.ParseShape("###", "###")
		assert.ErrorIs(t, err, board.ErrMalformedShape)
	})

	t.Run("counts glyphs, not bytes", func(t *testing.T) {
		s := mustParse(t, "█#", "#█")
		assert.Equal(t, 2, s.Size())
		assert.False(t, s.At(0, 0))
		assert.True(t, s.At(1, 0))
		assert.True(t, s.At(0, 1))
		assert.Equal(t, 2, s.Count())

		_, err := board.ParseShape("█#", "##")
		assert.NoError(t, err)
		_, err = board.ParseShape("██", "#")
		assert.ErrorIs(t, err, board.ErrMalformedShape)
	})

	t.Run("NewShape copies its input", func(t *testing.T) {
		rows := [][]bool{{true, false}, {false, false}}
		s, err := board.NewShape(rows)
		require.NoError(t, err)

		rows[0][1] = true
		assert.False(t, s.At(1, 0))
	})

	t.Run("MustShape panics on malformed input", func(t *testing.T) {
		assert.Panics(t, func() {
			board.MustShape([][]bool{{true, true}})
		})
	})
}

func TestShapeExtents(t *testing.T) {
	tests := []struct {
		name                string
		rows                []string
		left, right, bottom int
	}{
		{"tee", []string{".#.", "###", "..."}, 0, 2, 1},
		{"straight", []string{"....", "####", "....", "...."}, 0, 3, 1},
		{"vertical straight", []string{"..#.", "..#.", "..#.", "..#."}, 2, 2, 3},
		{"single cell", []string{"...", ".#.", "..."}, 1, 1, 1},
		{"empty", []string{"..", ".."}, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustParse(t, tt.rows...)
			assert.Equal(t, tt.left, s.Left(), "left")
			assert.Equal(t, tt.right, s.Right(), "right")
			assert.Equal(t, tt.bottom, s.Bottom(), "bottom")
		})
	}
}

func TestShapeRotate(t *testing.T) {
	t.Run("quarter turn clockwise", func(t *testing.T) {
		tee := mustParse(t, ".#.", "###", "...")
		want := mustParse(t, ".#.", ".##", ".#.")
		assert.True(t, want.Equal(tee.Rotate()), "got\n%s", tee.Rotate())
	})

	t.Run("straight turns into a column", func(t *testing.T) {
		straight := mustParse(t, "....", "####", "....", "....")
		want := mustParse(t, "..#.", "..#.", "..#.", "..#.")
		assert.True(t, want.Equal(straight.Rotate()), "got\n%s", straight.Rotate())
	})

	t.Run("does not modify the receiver", func(t *testing.T) {
		s := mustParse(t, "#..", "...", "...")
		_ = s.Rotate()
		assert.True(t, s.At(0, 0))
		assert.Equal(t, 1, s.Count())
	})

	t.Run("four turns are the identity", func(t *testing.T) {
		catalog := board.DefaultCatalog()
		for i := range catalog.Len() {
			tmpl := catalog.Template(i)
			s := tmpl.Shape
			for range 4 {
				s = s.Rotate()
			}
			assert.True(t, tmpl.Shape.Equal(s), "%s", tmpl.Kind)
		}
	})
}

func TestShapeShiftDown(t *testing.T) {
	t.Run("moves rows above the given row down by one", func(t *testing.T) {
		s := mustParse(t, "#..", ".#.", "...")
		s.ShiftDown(2)
		assert.Equal(t, "...\n#..\n.#.", s.String())
	})

	t.Run("leaves rows below untouched", func(t *testing.T) {
		s := mustParse(t, "#...", "....", "..#.", "...#")
		s.ShiftDown(1)
		assert.Equal(t, "....\n#...\n..#.\n...#", s.String())
	})

	t.Run("zero is a no-op", func(t *testing.T) {
		s := mustParse(t, "#.", ".#")
		s.ShiftDown(0)
		assert.Equal(t, "#.\n.#", s.String())
	})

	t.Run("clamps to the last row", func(t *testing.T) {
		s := mustParse(t, "#.", "..")
		s.ShiftDown(10)
		assert.Equal(t, "..\n#.", s.String())
	})
}

func TestShapeCells(t *testing.T) {
	s := mustParse(t, ".#", "#.")

	var got [][2]int
	for x, y := range s.Cells() {
		got = append(got, [2]int{x, y})
	}
	assert.Equal(t, [][2]int{{1, 0}, {0, 1}}, got)
}

func TestShapeClone(t *testing.T) {
	s := mustParse(t, "##", "..")
	c := s.Clone()
	c[0][0] = false

	assert.True(t, s.At(0, 0))
	assert.False(t, s.Equal(c))
	assert.Nil(t, board.Shape(nil).Clone())
}
