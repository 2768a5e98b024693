package game_test

import (
	"slices"
	"time"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/game"
)

// sequence is a Randomizer that replays fixed indices in a loop.
type sequence struct {
	values []int
	pos    int
}

func newSequence(values ...int) *sequence {
	return &sequence{values: values}
}

func (s *sequence) IntN(n int) int {
	v := s.values[s.pos%len(s.values)] % n
	s.pos++
	return v
}

func cell(x, y int) board.Piece {
	return board.Piece{
		Shape:    board.MustShape([][]bool{{true}}),
		Position: board.Position{X: x, Y: y},
	}
}

// fillRow adds a 1×1 static piece at every column of row y except skip.
func fillRow(b *board.Board, y int, skip ...int) {
	for x := range b.Width() {
		if slices.Contains(skip, x) {
			continue
		}
		b.AddStatic(cell(x, y))
	}
}

func frame(b *board.Board, dt time.Duration, input game.Input) *game.Frame {
	return &game.Frame{DeltaTime: dt, Input: input, Board: b}
}

func template(kind board.Kind) board.Template {
	return board.DefaultCatalog().Template(int(kind))
}
