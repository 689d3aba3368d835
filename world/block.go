package world

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// BlockType distinguishes solid platform blocks from instant-death hazards.
type BlockType uint8

const (
	BlockTypeStandard BlockType = iota
	BlockTypeHazard
)

// String ...
func (t BlockType) String() string {
	switch t {
	case BlockTypeStandard:
		return "standard"
	case BlockTypeHazard:
		return "hazard"
	default:
		return "unknown"
	}
}

// Block is a single axis-aligned unit cube on the integer grid. Blocks are
// immutable once placed; the resolver reads them without synchronization.
type Block struct {
	// ID is the stable insertion-order id of the block within its level.
	ID int
	// Pos is the grid coordinate of the block, unique per level.
	Pos cube.Pos
	// Type is the block's behavior class.
	Type BlockType
	// Box is the world-space bounding box, a cube of the level's block size
	// centered on Center.
	Box cube.BBox
	// Center is the world-space center, Pos scaled by the block size.
	Center mgl32.Vec3
	// Region identifies the connected group of same-layer standard blocks the
	// block belongs to. Hazards carry NoRegion.
	Region int
}

// NoRegion marks blocks that take part in no merged collision region.
const NoRegion = -1

// blockBounds derives the world-space box and center for a grid cell.
func blockBounds(pos cube.Pos, size float32) (cube.BBox, mgl32.Vec3) {
	center := mgl32.Vec3{
		float32(pos.X()) * size,
		float32(pos.Y()) * size,
		float32(pos.Z()) * size,
	}
	half := size / 2
	box := cube.Box(
		center.X()-half, center.Y()-half, center.Z()-half,
		center.X()+half, center.Y()+half, center.Z()+half,
	)
	return box, center
}
