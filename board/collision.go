package board

// The collision predicates answer whether a candidate shape may occupy the
// board at pos shifted by one step in a direction. With speculative set the
// step is applied (translation and gravity); without it the shape is checked
// where it stands, which is how a rotated shape is validated before it is
// committed. The active piece never collides with itself: only static pieces
// are considered.

// CanMoveLeft reports whether shape at pos may move one column left.
func (b *Board) CanMoveLeft(shape Shape, pos Position, speculative bool) bool {
	dx := 0
	if speculative {
		dx = -1
	}
	if b.collides(shape, pos, dx, 0) {
		return false
	}
	return pos.X+shape.Left()+dx >= 0
}

// CanMoveRight reports whether shape at pos may move one column right.
func (b *Board) CanMoveRight(shape Shape, pos Position, speculative bool) bool {
	dx := 0
	if speculative {
		dx = 1
	}
	if b.collides(shape, pos, dx, 0) {
		return false
	}
	return pos.X+shape.Right()+dx < b.width
}

// CanMoveDown reports whether shape at pos may move one row down.
func (b *Board) CanMoveDown(shape Shape, pos Position, speculative bool) bool {
	dy := 0
	if speculative {
		dy = 1
	}
	if b.collides(shape, pos, 0, dy) {
		return false
	}
	return pos.Y+shape.Bottom()+dy < b.height
}

// CanPlace reports whether shape fits at pos as is, against both side walls
// and the floor.
func (b *Board) CanPlace(shape Shape, pos Position) bool {
	return b.CanMoveLeft(shape, pos, false) &&
		b.CanMoveRight(shape, pos, false) &&
		b.CanMoveDown(shape, pos, false)
}

func (b *Board) collides(shape Shape, pos Position, dx, dy int) bool {
	for x, y := range shape.Cells() {
		ax := pos.X + x + dx
		ay := pos.Y + y + dy
		for other := range b.statics.iter() {
			if other.Covers(ax, ay) {
				return true
			}
		}
	}
	return false
}
