package board

import (
	"image/color"
	"iter"
)

// PieceID is a stable handle for a piece. Zero is never assigned.
type PieceID uint32

// Position is the board coordinate of a piece's top-left bounding box corner.
type Position struct {
	X, Y int
}

// Piece is a placed tile: the active piece or a landed (static) one.
type Piece struct {
	ID       PieceID
	Kind     Kind
	Shape    Shape
	Color    color.RGBA
	Position Position
}

// NewPiece places a copy of t at pos.
func NewPiece(t Template, pos Position) Piece {
	return Piece{
		Kind:     t.Kind,
		Shape:    t.Shape.Clone(),
		Color:    t.Color,
		Position: pos,
	}
}

// Clone returns a deep copy.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}

// Cells yields the absolute board coordinates of every occupied cell.
func (p *Piece) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for x, y := range p.Shape.Cells() {
			if !yield(p.Position.X+x, p.Position.Y+y) {
				return
			}
		}
	}
}

// Covers reports whether the piece occupies the absolute cell (x, y).
func (p *Piece) Covers(x, y int) bool {
	return p.Shape.At(x-p.Position.X, y-p.Position.Y)
}

// Player holds the session score and the lookahead preview.
type Player struct {
	Score int
	// Next is nil only before the first spawn.
	Next *Template
}
