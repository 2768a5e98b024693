package board

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// ErrMalformedShape is returned when a shape matrix is empty or not square.
var ErrMalformedShape = errors.New("malformed shape")

// Shape is an N×N occupancy matrix indexed as shape[y][x].
type Shape [][]bool

// NewShape validates rows and returns a copy of them as a Shape.
func NewShape(rows [][]bool) (Shape, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedShape)
	}
	for y, row := range rows {
		if len(row) != len(rows) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedShape, y, len(row), len(rows))
		}
	}
	return Shape(rows).Clone(), nil
}

// MustShape is like NewShape but panics on malformed input.
func MustShape(rows [][]bool) Shape {
	s, err := NewShape(rows)
	if err != nil {
		panic(err)
	}
	return s
}

// ParseShape builds a shape from rows of '#' (occupied) and '.' (empty).
func ParseShape(rows ...string) (Shape, error) {
	matrix := make([][]bool, len(rows))
	for y, row := range rows {
		cells := []rune(row)
		matrix[y] = make([]bool, len(cells))
		for x, r := range cells {
			matrix[y][x] = r == '#'
		}
	}
	return NewShape(matrix)
}

// Size returns N.
func (s Shape) Size() int {
	return len(s)
}

// At reports whether the local cell (x, y) is occupied. Out of range cells are empty.
func (s Shape) At(x, y int) bool {
	if y < 0 || y >= len(s) || x < 0 || x >= len(s[y]) {
		return false
	}
	return s[y][x]
}

// Left returns the leftmost occupied column, or 0 for an empty shape.
func (s Shape) Left() int {
	for x := 0; x < len(s); x++ {
		for y := range s {
			if s[y][x] {
				return x
			}
		}
	}
	return 0
}

// Right returns the rightmost occupied column, or 0 for an empty shape.
func (s Shape) Right() int {
	for x := len(s) - 1; x >= 0; x-- {
		for y := range s {
			if s[y][x] {
				return x
			}
		}
	}
	return 0
}

// Bottom returns the lowest occupied row, or 0 for an empty shape.
func (s Shape) Bottom() int {
	for y := len(s) - 1; y >= 0; y-- {
		for _, filled := range s[y] {
			if filled {
				return y
			}
		}
	}
	return 0
}

// Empty reports whether no cell is occupied.
func (s Shape) Empty() bool {
	for _, row := range s {
		for _, filled := range row {
			if filled {
				return false
			}
		}
	}
	return true
}

// Count returns the number of occupied cells.
func (s Shape) Count() int {
	n := 0
	for _, row := range s {
		for _, filled := range row {
			if filled {
				n++
			}
		}
	}
	return n
}

// Cells yields the local (x, y) coordinates of every occupied cell, row by row.
func (s Shape) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for y, row := range s {
			for x, filled := range row {
				if filled && !yield(x, y) {
					return
				}
			}
		}
	}
}

// Clone returns a deep copy.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	for y, row := range s {
		out[y] = make([]bool, len(row))
		copy(out[y], row)
	}
	return out
}

// Rotate returns a new shape turned a quarter clockwise: cell (i, j) of the
// result is cell (N-1-j, i) of s.
func (s Shape) Rotate() Shape {
	n := len(s)
	out := make(Shape, n)
	for i := range out {
		out[i] = make([]bool, n)
		for j := range out[i] {
			out[i][j] = s[n-1-j][i]
		}
	}
	return out
}

// ShiftDown moves local rows [0, rows) down by one in place, starting with the
// row nearest to rows. Row rows is overwritten and row 0 is left empty.
func (s Shape) ShiftDown(rows int) {
	if rows > len(s)-1 {
		rows = len(s) - 1
	}
	if rows <= 0 {
		return
	}
	for y := rows - 1; y >= 0; y-- {
		copy(s[y+1], s[y])
	}
	clear(s[0])
}

// Equal reports whether both shapes have the same size and occupancy.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(other[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

func (s Shape) String() string {
	var b strings.Builder
	for y, row := range s {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, filled := range row {
			if filled {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
