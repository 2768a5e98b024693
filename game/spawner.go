package game

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/board"
)

// Randomizer picks catalog indices. *rand.Rand satisfies it.
//
// Values are consumed one per spawn, in spawn order: the i-th value picks
// the i-th piece to become active. The first spawn of a session consumes two,
// one for the active piece and one for the preview; every later spawn
// promotes the preview and consumes one more for the new preview.
type Randomizer interface {
	IntN(n int) int
}

// NewSeededRandomizer returns a PCG-backed Randomizer with a fixed seed.
func NewSeededRandomizer(seed uint64) Randomizer {
	return rand.New(rand.NewPCG(seed, 0))
}

// SpawnerSystem keeps exactly one active piece on the board. When none
// exists it promotes the player's preview (or a fresh draw before the first
// spawn) to a new active piece at the top centre, and draws a new preview.
// If the new piece does not fit at its spawn position, or cannot descend from
// it, the piece is not placed and the session ends.
type SpawnerSystem struct {
	Catalog *board.Catalog
	Rand    Randomizer

	// Spawned counts the pieces activated so far.
	Spawned int

	ended bool
}

// State reports StateEnd once the board has topped out.
func (s *SpawnerSystem) State() State {
	if s.ended {
		return StateEnd
	}
	return StateNone
}

// Status reports whether the board has topped out.
func (s *SpawnerSystem) Status() Status {
	if s.ended {
		return StatusGameOver
	}
	return StatusActive
}

func (s *SpawnerSystem) draw() board.Template {
	return s.Catalog.Template(s.Rand.IntN(s.Catalog.Len()))
}

func (s *SpawnerSystem) Execute(frame *Frame) {
	b := frame.Board
	if s.ended || b.Active() != nil {
		return
	}

	player := b.Player()

	var current board.Template
	if player.Next != nil {
		current = *player.Next
	} else {
		current = s.draw()
	}

	next := s.draw()
	player.Next = &next

	piece := board.NewPiece(current, board.Position{X: b.Width() / 2, Y: 0})
	if !b.CanPlace(piece.Shape, piece.Position) || !b.CanMoveDown(piece.Shape, piece.Position, true) {
		s.ended = true
		frame.ToppedOut = true
		return
	}

	b.Activate(piece)
	s.Spawned++
	frame.Spawned = true
}

// reset clears the topped-out flag for a new session.
func (s *SpawnerSystem) reset() {
	s.ended = false
	s.Spawned = 0
}
