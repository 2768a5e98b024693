package board

import "image/color"

// Snapshot is a deep copy of the board for renderers and inspectors.
type Snapshot struct {
	Width   int
	Height  int
	Statics []Piece
	Active  *Piece
	Score   int
	Next    *Template
}

// Cell is one square of a rasterized snapshot.
type Cell struct {
	Filled bool
	Active bool
	Color  color.RGBA
	Piece  PieceID
}

// Snapshot copies the current state. The result shares no memory with b.
func (b *Board) Snapshot() Snapshot {
	snap := Snapshot{
		Width:   b.width,
		Height:  b.height,
		Statics: make([]Piece, 0, b.statics.len()),
		Score:   b.player.Score,
	}
	for p := range b.statics.iter() {
		snap.Statics = append(snap.Statics, p.Clone())
	}
	if b.active != nil {
		active := b.active.Clone()
		snap.Active = &active
	}
	if b.player.Next != nil {
		next := b.player.Next.Clone()
		snap.Next = &next
	}
	return snap
}

// Cells rasterizes the snapshot into a Height×Width grid indexed [y][x].
// Cells outside the board are dropped.
func (s Snapshot) Cells() [][]Cell {
	grid := make([][]Cell, s.Height)
	for y := range grid {
		grid[y] = make([]Cell, s.Width)
	}

	paint := func(p *Piece, active bool) {
		for x, y := range p.Cells() {
			if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
				continue
			}
			grid[y][x] = Cell{Filled: true, Active: active, Color: p.Color, Piece: p.ID}
		}
	}

	for i := range s.Statics {
		paint(&s.Statics[i], false)
	}
	if s.Active != nil {
		paint(s.Active, true)
	}
	return grid
}

// Grid returns the static occupancy as a Height×Width matrix indexed [y][x].
func (b *Board) Grid() [][]bool {
	grid := make([][]bool, b.height)
	for y := range grid {
		grid[y] = make([]bool, b.width)
	}
	for p := range b.statics.iter() {
		for x, y := range p.Cells() {
			if x >= 0 && x < b.width && y >= 0 && y < b.height {
				grid[y][x] = true
			}
		}
	}
	return grid
}
