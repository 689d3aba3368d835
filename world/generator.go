package world

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/spireclimb/spire/config"
	"github.com/spireclimb/spire/game"
)

// RandSource is the randomness the generator consumes. It is an explicit
// dependency so a fixed source reproduces the exact same level; *rand.Rand
// satisfies it.
type RandSource interface {
	Intn(n int) int
}

const (
	spiralAngleStep   = float32(0.35)
	spiralBaseRadius  = float32(4)
	spiralRadiusSwing = float32(1.5)
	spiralRadiusFreq  = float32(0.1)

	branchInterval  = 6
	hazardInterval  = 8
	hazardMinStep   = 10
	basePlatformExt = 2
)

// Generate builds the tower: a 5x5 base platform at gy=0, a spiral ascent of
// cfg.TowerHeight steps with branch platforms and hazards, and a capstone.
// Output is fully determined by cfg and src.
func Generate(cfg config.Config, src RandSource) *Level {
	b := NewBuilder(cfg.BlockSize)

	for gx := -basePlatformExt; gx <= basePlatformExt; gx++ {
		for gz := -basePlatformExt; gz <= basePlatformExt; gz++ {
			b.Place(cube.Pos{gx, 0, gz}, BlockTypeStandard)
		}
	}

	// The first spiral ring sits one cell above the base platform.
	y := 1
	for i := 0; i < cfg.TowerHeight; i++ {
		angle := float32(i) * spiralAngleStep
		radius := spiralBaseRadius + math32.Sin(float32(i)*spiralRadiusFreq)*spiralRadiusSwing
		x := game.RoundToCell(math32.Cos(angle) * radius)
		z := game.RoundToCell(math32.Sin(angle) * radius)

		// The first occupant of a cell wins; the spiral may revisit cells
		// where consecutive rings round to the same coordinate.
		b.Place(cube.Pos{x, y, z}, BlockTypeStandard)

		if i%branchInterval == 0 {
			off := 1
			if src.Intn(2) == 0 {
				off = -1
			}
			branch := cube.Pos{x + off, y, z}
			if !b.Occupied(branch) {
				b.Place(branch, BlockTypeStandard)
			}
		}

		// A hazard step replaces this step's height gain.
		if i > hazardMinStep && i%hazardInterval == 0 {
			b.Place(cube.Pos{x, y + 1, z}, BlockTypeHazard)
		} else if i%2 == 0 {
			y++
		}
	}

	// Capstone, with a decorative hazard directly above it.
	b.Place(cube.Pos{0, y + 1, 0}, BlockTypeStandard)
	b.Place(cube.Pos{0, y + 2, 0}, BlockTypeHazard)

	return b.Build(float32(y+1) * cfg.BlockSize)
}
