package sim

import "github.com/go-gl/mathgl/mgl32"

// MovementState holds the player's continuous state. It is owned by the tick
// sequence: the integrator and resolver mutate it, nothing else does, and it
// is never partially visible outside a tick boundary.
type MovementState struct {
	Pos, LastPos mgl32.Vec3
	Vel, LastVel mgl32.Vec3

	// OnGround is true while the player has ground contact or is within the
	// coyote grace window.
	OnGround bool
	// CoyoteTicks counts down the resolver calls since the last ground
	// contact during which a jump is still accepted.
	CoyoteTicks int
}

// NewMovementState returns a state resting at the given spawn position.
func NewMovementState(spawn mgl32.Vec3) *MovementState {
	s := &MovementState{}
	s.Reset(spawn)
	return s
}

// Reset overwrites the whole state atomically. Position, velocity, ground
// flag and coyote window are replaced together; there is no incremental
// repair after a hazard or fall.
func (s *MovementState) Reset(spawn mgl32.Vec3) {
	s.Pos = spawn
	s.LastPos = spawn
	s.Vel = mgl32.Vec3{}
	s.LastVel = mgl32.Vec3{}
	s.OnGround = false
	s.CoyoteTicks = 0
}

// SetPos updates the position, keeping the previous one.
func (s *MovementState) SetPos(newPos mgl32.Vec3) {
	s.LastPos = s.Pos
	s.Pos = newPos
}

// SetVel updates the velocity, keeping the previous one.
func (s *MovementState) SetVel(newVel mgl32.Vec3) {
	s.LastVel = s.Vel
	s.Vel = newVel
}
