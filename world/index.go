package world

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/ethaniccc/float32-cube/cube"
)

// BlockIndex maps grid coordinates to blocks. Iteration follows insertion
// order, which keeps region assignment and fingerprinting deterministic. The
// index is built once at generation time and read-only afterwards, so any
// number of readers may use it concurrently.
type BlockIndex struct {
	m *orderedmap.OrderedMap[cube.Pos, *Block]
}

// NewBlockIndex returns an empty index.
func NewBlockIndex() *BlockIndex {
	return &BlockIndex{m: orderedmap.NewOrderedMap[cube.Pos, *Block]()}
}

// At returns the block occupying the given cell, if any. An empty cell is an
// expected outcome, not an error.
func (i *BlockIndex) At(pos cube.Pos) (*Block, bool) {
	return i.m.Get(pos)
}

// Occupied reports whether a cell already holds a block.
func (i *BlockIndex) Occupied(pos cube.Pos) bool {
	_, ok := i.m.Get(pos)
	return ok
}

// Len returns the number of occupied cells.
func (i *BlockIndex) Len() int {
	return i.m.Len()
}

// Each visits every block in insertion order until f returns false.
func (i *BlockIndex) Each(f func(b *Block) bool) {
	for el := i.m.Front(); el != nil; el = el.Next() {
		if !f(el.Value) {
			return
		}
	}
}

// put inserts a block, refusing to overwrite an occupied cell.
func (i *BlockIndex) put(b *Block) bool {
	if _, ok := i.m.Get(b.Pos); ok {
		return false
	}
	i.m.Set(b.Pos, b)
	return true
}
