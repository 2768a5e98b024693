// Package board holds the falling-block grid model: shapes, pieces, the
// player record and the Board aggregate that owns them, plus the collision
// predicates every mutating system relies on.
//
// A Board owns zero or more static pieces (landed blocks, possibly partially
// erased by line clears), at most one active piece and exactly one Player.
// Systems receive the Board by pointer and mutate pieces in place.
package board

import (
	"fmt"
	"iter"
)

const (
	DefaultWidth  = 10
	DefaultHeight = 24
)

// Board is the single mutable game state shared by all systems.
type Board struct {
	width  int
	height int

	statics *pieceStore
	active  *Piece
	player  Player
	nextID  PieceID
}

// Option configures a Board.
type Option func(*Board)

// WithSize overrides the default 10×24 playfield.
func WithSize(width, height int) Option {
	return func(b *Board) {
		b.width = width
		b.height = height
	}
}

// New creates an empty board. It panics on a non-positive size.
func New(opts ...Option) *Board {
	b := &Board{
		width:   DefaultWidth,
		height:  DefaultHeight,
		statics: newPieceStore(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.width <= 0 || b.height <= 0 {
		panic(fmt.Sprintf("invalid board size %dx%d", b.width, b.height))
	}
	return b
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// Player returns the session's player record.
func (b *Board) Player() *Player {
	return &b.player
}

// Active returns the active piece, or nil when none exists.
func (b *Board) Active() *Piece {
	return b.active
}

// Statics yields every static piece. Pieces may be modified or destroyed
// during iteration; pieces added during iteration may or may not be visited.
func (b *Board) Statics() iter.Seq[*Piece] {
	return b.statics.iter()
}

// StaticCount returns the number of static pieces.
func (b *Board) StaticCount() int {
	return b.statics.len()
}

// Piece looks up the active or a static piece by ID.
func (b *Board) Piece(id PieceID) *Piece {
	if b.active != nil && b.active.ID == id {
		return b.active
	}
	return b.statics.get(id)
}

func (b *Board) allocID() PieceID {
	b.nextID++
	return b.nextID
}

// claimID assigns a fresh ID to p or reserves the one it carries, so later
// allocations never reuse it.
func (b *Board) claimID(p *Piece) {
	if p.ID == 0 {
		p.ID = b.allocID()
		return
	}
	b.nextID = max(b.nextID, p.ID)
}

// AddStatic stores p as a landed piece and returns its ID.
func (b *Board) AddStatic(p Piece) PieceID {
	b.claimID(&p)
	b.statics.put(p)
	return p.ID
}

// Activate makes p the active piece and returns its ID.
// It panics if an active piece already exists.
func (b *Board) Activate(p Piece) PieceID {
	if b.active != nil {
		panic("board already has an active piece")
	}
	b.claimID(&p)
	b.active = &p
	return p.ID
}

// Settle demotes the active piece to a static one. It reports false when
// there is no active piece.
func (b *Board) Settle() bool {
	if b.active == nil {
		return false
	}
	b.statics.put(*b.active)
	b.active = nil
	return true
}

// Destroy removes a static piece.
func (b *Board) Destroy(id PieceID) bool {
	return b.statics.delete(id)
}

// Compact packs static piece storage after destroys. Pointers obtained from
// Statics or Piece before the call must not be used afterwards.
func (b *Board) Compact() {
	b.statics.compact()
}

// Occupied reports whether a static piece covers the absolute cell (x, y).
func (b *Board) Occupied(x, y int) bool {
	for p := range b.statics.iter() {
		if p.Covers(x, y) {
			return true
		}
	}
	return false
}

// Reset removes every piece and zeroes the player record.
func (b *Board) Reset() {
	b.statics.reset()
	b.active = nil
	b.player = Player{}
}
