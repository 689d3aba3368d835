package world

import "github.com/ethaniccc/float32-cube/cube"

// horizontalOffsets are the 4-neighbor directions within a layer.
var horizontalOffsets = [4]cube.Pos{
	{1, 0, 0},
	{-1, 0, 0},
	{0, 0, 1},
	{0, 0, -1},
}

// assignRegions flood-fills standard blocks connected through same-layer
// 4-neighbor adjacency into shared region ids. Regions are computed once here
// so the resolver can classify internal seams with a lookup instead of a
// search per contact per tick. Iterating blocks in insertion order keeps the
// ids deterministic.
func assignRegions(blocks []*Block, index *BlockIndex) {
	next := 0
	queue := make([]*Block, 0, 16)
	for _, blk := range blocks {
		if blk.Type != BlockTypeStandard || blk.Region != NoRegion {
			continue
		}
		blk.Region = next
		queue = append(queue[:0], blk)
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, off := range horizontalOffsets {
				nb, ok := index.At(cube.Pos{cur.Pos.X() + off.X(), cur.Pos.Y() + off.Y(), cur.Pos.Z() + off.Z()})
				if !ok || nb.Type != BlockTypeStandard || nb.Region != NoRegion {
					continue
				}
				nb.Region = next
				queue = append(queue, nb)
			}
		}
		next++
	}
}

// SameRegion reports whether two blocks were merged into one collision region.
func SameRegion(a, b *Block) bool {
	return a.Region != NoRegion && a.Region == b.Region
}
