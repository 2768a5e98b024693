package game

import "github.com/plus3/blockfall/board"

// CleanerSystem clears completed rows and compacts the static pieces.
type CleanerSystem struct {
	// Rows is the total number of rows cleared by this system.
	Rows int
}

func (s *CleanerSystem) Execute(frame *Frame) {
	cleared := ResolveLines(frame.Board)
	s.Rows += cleared
	frame.Cleared += cleared
}

type cellRef struct {
	piece *board.Piece
	x, y  int
}

// ResolveLines scans rows top to bottom (ascending y). Each full row is
// cleared, the player scores one point per cleared cell, and everything above
// the row drops by one before the next row is examined. Pieces whose
// bounding box straddles the cleared row keep their position and only the
// part of their shape above the row moves down. Static pieces left without
// cells are destroyed. The active piece is ignored. It returns the number of
// rows cleared.
func ResolveLines(b *board.Board) int {
	width := b.Width()
	rows := 0
	destroyed := false

	var cells []cellRef
	var empty []board.PieceID

	for line := 0; line < b.Height(); line++ {
		cells = cells[:0]
		for p := range b.Statics() {
			local := line - p.Position.Y
			if local < 0 || local >= p.Shape.Size() {
				continue
			}
			for x, filled := range p.Shape[local] {
				if filled {
					cells = append(cells, cellRef{piece: p, x: x, y: local})
				}
			}
		}

		if len(cells) < width {
			continue
		}

		for _, c := range cells {
			c.piece.Shape[c.y][c.x] = false
		}
		b.Player().Score += len(cells)
		rows++

		empty = empty[:0]
		for p := range b.Statics() {
			if p.Shape.Empty() {
				empty = append(empty, p.ID)
				continue
			}
			if p.Position.Y > line {
				continue
			}
			if p.Position.Y+p.Shape.Bottom() <= line {
				p.Position.Y++
			} else {
				p.Shape.ShiftDown(line - p.Position.Y)
			}
		}
		for _, id := range empty {
			b.Destroy(id)
			destroyed = true
		}
	}

	if destroyed {
		b.Compact()
	}
	return rows
}
