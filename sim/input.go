package sim

import "github.com/go-gl/mathgl/mgl32"

// InputState represents a single tick's movement intent. MoveVector is the
// horizontal direction already resolved to be camera-relative by the caller;
// X maps to world X and Y to world Z. Jump stays set until a jump is actually
// performed, so a request made in the air is honored once eligible.
type InputState struct {
	MoveVector mgl32.Vec2
	Jump       bool
}

// Force converts the movement intent into this tick's input force. Intent
// longer than a unit vector is normalized so diagonal input gains no speed.
func (in InputState) Force(moveSpeed float32) mgl32.Vec3 {
	mv := in.MoveVector
	if l := mv.Len(); l > 1 {
		mv = mv.Mul(1 / l)
	}
	return mgl32.Vec3{mv.X() * moveSpeed, 0, mv.Y() * moveSpeed}
}
