package sim

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spireclimb/spire/config"
	"github.com/spireclimb/spire/game"
)

// ApplyPhysics performs one unconstrained integration step. The order is
// load-bearing: input force, horizontal friction, gravity, horizontal speed
// clamp, then position. The resolver corrects any resulting penetration
// afterwards; nothing here knows about blocks.
func ApplyPhysics(state *MovementState, force mgl32.Vec3, cfg config.Config) {
	vel := state.Vel.Add(force)

	vel[0] *= cfg.Friction
	vel[2] *= cfg.Friction
	vel[1] -= cfg.Gravity

	// Clamp horizontal speed by uniform rescale; vertical is untouched.
	if hz := math32.Sqrt(game.Vec3HzDistSqr(vel)); hz > cfg.MaxSpeed {
		scale := cfg.MaxSpeed / hz
		vel[0] *= scale
		vel[2] *= scale
	}

	state.SetVel(vel)
	state.SetPos(state.Pos.Add(vel))
}
