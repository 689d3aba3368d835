package sim

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spireclimb/spire/config"
	"github.com/spireclimb/spire/game"
	"github.com/spireclimb/spire/world"
)

// ResolveCollisions runs one narrow-phase pass of the player sphere against
// the level and mutates state in place. The scheduler invokes it several
// times per tick so the push-out from one contact gets re-resolved against
// the remaining blocks.
//
// A hazard contact calls onHazard and returns immediately; onHazard must
// fully reinitialize the state before the next resolver call.
func ResolveCollisions(state *MovementState, lvl *world.Level, cfg config.Config, dbg *Debugger, onHazard func()) {
	radiusSqr := cfg.PlayerRadius * cfg.PlayerRadius
	grounded := false

	for _, blk := range lvl.Blocks {
		// Broad phase: per-axis center-distance reject.
		d := game.AbsVec32(state.Pos.Sub(blk.Center))
		if d.X() > cfg.CollisionRange || d.Y() > cfg.CollisionRange || d.Z() > cfg.CollisionRange {
			continue
		}

		closest := game.ClosestPointOnBBox(state.Pos, blk.Box)
		delta := state.Pos.Sub(closest)
		distSqr := delta.LenSqr()
		// The lower bound is an epsilon contract: a center sitting exactly on
		// the closest point has no usable normal.
		if distSqr <= game.ContactEpsilon || distSqr >= radiusSqr {
			continue
		}

		if blk.Type == world.BlockTypeHazard {
			dbg.Notify(DebugModeCollisions, true, "hazard contact at %v", blk.Pos)
			onHazard()
			return
		}

		dist := math32.Sqrt(distSqr)
		normal := delta.Mul(1 / dist)
		penetration := cfg.PlayerRadius - dist

		if seamContact(state, blk, normal, lvl) {
			dbg.Notify(DebugModeCollisions, true, "seam contact suppressed at %v (normal=%v)", blk.Pos, normal)
			continue
		}

		state.Pos = state.Pos.Add(normal.Mul(penetration))
		// Cancel the velocity component moving into the surface; no bounce.
		if vn := state.Vel.Dot(normal); vn < 0 {
			state.Vel = state.Vel.Sub(normal.Mul(vn))
		}
		if normal.Y() > game.GroundNormalY {
			grounded = true
		}
		dbg.Notify(DebugModeCollisions, true, "resolved contact at %v (normal=%v pen=%.5f)", blk.Pos, normal, penetration)
	}

	// Ground state machine, once per call. Ground contact rearms the coyote
	// window; without contact the window drains before the flag drops.
	if grounded {
		state.OnGround = true
		state.CoyoteTicks = cfg.CoyoteFrames
	} else if state.CoyoteTicks > 0 {
		state.CoyoteTicks--
		if state.CoyoteTicks == 0 {
			state.OnGround = false
		}
	} else {
		state.OnGround = false
	}
}

// seamContact classifies a contact as an internal seam between abutting
// blocks. Tiled standard blocks share faces, and a sphere resting on such a
// platform can register contact against a near-vertical internal edge,
// kicking the player sideways. Region membership is precomputed at
// generation, so the check is a neighbor lookup rather than a search.
func seamContact(state *MovementState, blk *world.Block, normal mgl32.Vec3, lvl *world.Level) bool {
	ny := math32.Abs(normal.Y())

	// Landing signature: moving down onto an almost sideways normal can only
	// come from the edge between two blocks, never from an outer wall.
	if state.Vel.Y() < 0 && ny < game.FallingSeamNormalYMax &&
		(math32.Abs(normal.X()) > game.FallingSeamNormalHzMin || math32.Abs(normal.Z()) > game.FallingSeamNormalHzMin) {
		return true
	}

	// Region merge: any horizontal normal component means the closest point
	// got clamped onto a horizontal face boundary the player center lies
	// beyond. When the cell behind that face belongs to the same merged
	// region, the face is interior to the region surface and cannot push.
	// This covers both near-vertical corner normals on off-center landings
	// and near-horizontal normals on internal walls. A center dead on the
	// boundary clamps nowhere and keeps its vertical normal, and an outer
	// wall has no neighbor to merge with.
	for _, axis := range [2]int{0, 2} {
		dir := 0
		if state.Pos[axis] > blk.Box.Max()[axis] {
			dir = 1
		} else if state.Pos[axis] < blk.Box.Min()[axis] {
			dir = -1
		}
		if dir == 0 {
			continue
		}
		nbPos := blk.Pos
		nbPos[axis] += dir
		if nb, ok := lvl.Index.At(nbPos); ok && nb.Type == world.BlockTypeStandard && world.SameRegion(blk, nb) {
			return true
		}
	}
	return false
}
