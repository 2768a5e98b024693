package game

import (
	"time"

	"github.com/plus3/blockfall/board"
)

// Frame is passed to every system during one tick. Systems record what
// happened in the outcome fields so that later systems and the caller can
// react to it.
type Frame struct {
	DeltaTime time.Duration
	Input     Input
	Board     *board.Board

	Settled   bool
	Cleared   int
	Spawned   bool
	ToppedOut bool
}

func newFrame(dt time.Duration, input Input, b *board.Board) *Frame {
	return &Frame{
		DeltaTime: dt,
		Input:     input,
		Board:     b,
	}
}
