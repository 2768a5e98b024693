package board

import (
	"iter"

	"github.com/kamstrup/intmap"
)

const (
	pieceBlockSize = 64
)

// pieceStore keeps static pieces in fixed-size blocks so that pointers handed
// out during iteration stay valid while the store grows. Slots freed by delete
// are reused; compact packs the live pieces back to the front.
type pieceStore struct {
	blocks    []*[pieceBlockSize]Piece
	filled    []*[pieceBlockSize]bool
	freeSlots []int
	nextIndex int
	slots     *intmap.Map[PieceID, int]
}

func newPieceStore() *pieceStore {
	return &pieceStore{
		slots: intmap.New[PieceID, int](64),
	}
}

// put stores p and returns a pointer to the stored copy.
func (ps *pieceStore) put(p Piece) *Piece {
	var index int
	if len(ps.freeSlots) > 0 {
		index = ps.freeSlots[len(ps.freeSlots)-1]
		ps.freeSlots = ps.freeSlots[:len(ps.freeSlots)-1]
	} else {
		index = ps.nextIndex
		ps.nextIndex++

		if index/pieceBlockSize >= len(ps.blocks) {
			ps.blocks = append(ps.blocks, new([pieceBlockSize]Piece))
			ps.filled = append(ps.filled, new([pieceBlockSize]bool))
		}
	}

	blockIdx := index / pieceBlockSize
	slotIdx := index % pieceBlockSize

	ps.blocks[blockIdx][slotIdx] = p
	ps.filled[blockIdx][slotIdx] = true
	ps.slots.Put(p.ID, index)
	return &ps.blocks[blockIdx][slotIdx]
}

func (ps *pieceStore) get(id PieceID) *Piece {
	index, ok := ps.slots.Get(id)
	if !ok {
		return nil
	}
	return &ps.blocks[index/pieceBlockSize][index%pieceBlockSize]
}

// delete marks the piece's slot empty. Safe to call while iterating.
func (ps *pieceStore) delete(id PieceID) bool {
	index, ok := ps.slots.Get(id)
	if !ok {
		return false
	}

	blockIdx := index / pieceBlockSize
	slotIdx := index % pieceBlockSize

	ps.filled[blockIdx][slotIdx] = false
	ps.blocks[blockIdx][slotIdx] = Piece{}
	ps.freeSlots = append(ps.freeSlots, index)
	ps.slots.Del(id)
	return true
}

func (ps *pieceStore) len() int {
	return ps.nextIndex - len(ps.freeSlots)
}

// iter yields live pieces in slot order.
func (ps *pieceStore) iter() iter.Seq[*Piece] {
	return func(yield func(*Piece) bool) {
		for i := 0; i < ps.nextIndex; i++ {
			blockIdx := i / pieceBlockSize
			slotIdx := i % pieceBlockSize

			if !ps.filled[blockIdx][slotIdx] {
				continue
			}
			if !yield(&ps.blocks[blockIdx][slotIdx]) {
				return
			}
		}
	}
}

// compact removes free slots, keeping slot order. Pointers obtained before the
// call are invalidated.
func (ps *pieceStore) compact() {
	if len(ps.freeSlots) == 0 {
		return
	}

	total := ps.len()
	numBlocks := (total + pieceBlockSize - 1) / pieceBlockSize
	newBlocks := make([]*[pieceBlockSize]Piece, numBlocks)
	newFilled := make([]*[pieceBlockSize]bool, numBlocks)
	for i := range newBlocks {
		newBlocks[i] = new([pieceBlockSize]Piece)
		newFilled[i] = new([pieceBlockSize]bool)
	}

	ps.slots.Clear()

	writePos := 0
	for readIdx := 0; readIdx < ps.nextIndex; readIdx++ {
		readBlockIdx := readIdx / pieceBlockSize
		readSlotIdx := readIdx % pieceBlockSize

		if !ps.filled[readBlockIdx][readSlotIdx] {
			continue
		}

		p := ps.blocks[readBlockIdx][readSlotIdx]
		newBlocks[writePos/pieceBlockSize][writePos%pieceBlockSize] = p
		newFilled[writePos/pieceBlockSize][writePos%pieceBlockSize] = true
		ps.slots.Put(p.ID, writePos)
		writePos++
	}

	ps.blocks = newBlocks
	ps.filled = newFilled
	ps.freeSlots = nil
	ps.nextIndex = writePos
}

func (ps *pieceStore) reset() {
	ps.blocks = nil
	ps.filled = nil
	ps.freeSlots = nil
	ps.nextIndex = 0
	ps.slots.Clear()
}
