package world

import (
	"bytes"
	"encoding/binary"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/spireclimb/spire/assert"
	"github.com/spireclimb/spire/internal"
	"github.com/zeebo/xxh3"
)

// Level is the immutable output of level generation: every block, the spatial
// index over them, and the height at which the climb is won.
type Level struct {
	// Blocks holds every block in insertion order; Blocks[n].ID == n.
	Blocks []*Block
	// Index is the grid-coordinate lookup over Blocks.
	Index *BlockIndex
	// BlockSize is the cube side length the level was built with.
	BlockSize float32
	// WinHeight is the world-space height above which the climb is complete.
	WinHeight float32
	// Fingerprint is an xxh3 digest of the block layout, stable across runs
	// with the same configuration and random source.
	Fingerprint uint64
}

// Builder accumulates blocks for a level, refusing duplicate cells, and
// finalizes them into a Level.
type Builder struct {
	size   float32
	index  *BlockIndex
	blocks []*Block
}

// NewBuilder returns a builder for blocks of the given size. A non-positive
// size is a precondition violation caught at startup, not during generation.
func NewBuilder(blockSize float32) *Builder {
	assert.IsTrue(blockSize > 0, "world: block size must be positive, got %v", blockSize)
	return &Builder{size: blockSize, index: NewBlockIndex()}
}

// Occupied reports whether a cell already holds a block.
func (b *Builder) Occupied(pos cube.Pos) bool {
	return b.index.Occupied(pos)
}

// Place adds a block at the given cell. The first occupant of a cell wins;
// Place reports whether the block was actually inserted.
func (b *Builder) Place(pos cube.Pos, t BlockType) bool {
	box, center := blockBounds(pos, b.size)
	blk := &Block{
		ID:     len(b.blocks),
		Pos:    pos,
		Type:   t,
		Box:    box,
		Center: center,
		Region: NoRegion,
	}
	if !b.index.put(blk) {
		return false
	}
	b.blocks = append(b.blocks, blk)
	return true
}

// Build finalizes the level: connected same-layer standard blocks are merged
// into regions and the layout fingerprint is computed.
func (b *Builder) Build(winHeight float32) *Level {
	assignRegions(b.blocks, b.index)
	return &Level{
		Blocks:      b.blocks,
		Index:       b.index,
		BlockSize:   b.size,
		WinHeight:   winHeight,
		Fingerprint: fingerprint(b.blocks),
	}
}

// fingerprint hashes the packed block layout in insertion order.
func fingerprint(blocks []*Block) uint64 {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	for _, blk := range blocks {
		binary.Write(buf, binary.LittleEndian, int32(blk.Pos.X()))
		binary.Write(buf, binary.LittleEndian, int32(blk.Pos.Y()))
		binary.Write(buf, binary.LittleEndian, int32(blk.Pos.Z()))
		buf.WriteByte(byte(blk.Type))
	}
	return xxh3.Hash(buf.Bytes())
}
