package sim

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spireclimb/spire/config"
	"github.com/spireclimb/spire/world"
)

func platformLevel(t *testing.T, cells ...cube.Pos) *world.Level {
	t.Helper()
	b := world.NewBuilder(1)
	for _, c := range cells {
		b.Place(c, world.BlockTypeStandard)
	}
	return b.Build(50)
}

func approxEqual(t *testing.T, got, want, tol float32, field string) {
	t.Helper()
	if math32.Abs(got-want) > tol {
		t.Fatalf("%s = %.6f, want %.6f (tol=%.6f)", field, got, want, tol)
	}
}

func TestResolveNoOpWhenClear(t *testing.T) {
	cfg := config.Default()
	lvl := platformLevel(t, cube.Pos{0, 0, 0})

	state := NewMovementState(mgl32.Vec3{0, 2, 0})
	state.Vel = mgl32.Vec3{0.1, -0.2, 0.05}
	pos, vel := state.Pos, state.Vel

	ResolveCollisions(state, lvl, cfg, nil, func() { t.Fatalf("unexpected hazard") })

	if state.Pos != pos || state.Vel != vel {
		t.Fatalf("state changed without contact: pos %v→%v vel %v→%v", pos, state.Pos, vel, state.Vel)
	}
	if state.OnGround {
		t.Fatalf("grounded without contact")
	}
}

func TestResolvePushOutFromTopFace(t *testing.T) {
	cfg := config.Default()
	lvl := platformLevel(t, cube.Pos{0, 0, 0})

	// Overlapping the top face (y=0.5) by 0.03 with radius 0.4.
	state := NewMovementState(mgl32.Vec3{0, 0.87, 0})
	state.Vel = mgl32.Vec3{0, -0.1, 0}

	ResolveCollisions(state, lvl, cfg, nil, func() { t.Fatalf("unexpected hazard") })

	approxEqual(t, state.Pos.Y(), 0.5+cfg.PlayerRadius, 1e-4, "pos.y")
	if state.Vel.Y() < 0 {
		t.Fatalf("inward velocity not canceled: %v", state.Vel)
	}
	approxEqual(t, state.Vel.Y(), 0, 1e-5, "vel.y")
	if !state.OnGround {
		t.Fatalf("expected grounded after upward-normal contact")
	}
	if state.CoyoteTicks != cfg.CoyoteFrames {
		t.Fatalf("coyote window not rearmed: %d", state.CoyoteTicks)
	}
}

func TestResolveSkipsDegenerateContact(t *testing.T) {
	cfg := config.Default()
	lvl := platformLevel(t, cube.Pos{0, 0, 0})

	// Center exactly on the top face: the closest point coincides with the
	// center, so there is no usable normal and the contact is skipped.
	state := NewMovementState(mgl32.Vec3{0, 0.5, 0})
	ResolveCollisions(state, lvl, cfg, nil, func() {})
	approxEqual(t, state.Pos.Y(), 0.5, 1e-6, "pos.y")
}

func TestSeamFallCenteredOnSharedEdge(t *testing.T) {
	cfg := config.Default()
	lvl := platformLevel(t, cube.Pos{0, 0, 0}, cube.Pos{1, 0, 0})

	// Falling straight down onto the seam at x=0.5, like the end of a drop.
	state := NewMovementState(mgl32.Vec3{0.5, 1.2, 0})
	state.Vel = mgl32.Vec3{0, -0.5, 0}

	ApplyPhysics(state, mgl32.Vec3{}, cfg)
	for i := 0; i < 4; i++ {
		ResolveCollisions(state, lvl, cfg, nil, func() { t.Fatalf("unexpected hazard") })
	}

	approxEqual(t, state.Vel.X(), 0, 1e-5, "vel.x")
	approxEqual(t, state.Vel.Z(), 0, 1e-5, "vel.z")
	approxEqual(t, state.Vel.Y(), 0, 1e-5, "vel.y")
	if !state.OnGround {
		t.Fatalf("expected grounded after landing on seam")
	}
}

func TestSeamInternalEdgeSuppressedOffCenter(t *testing.T) {
	cfg := config.Default()
	lvl := platformLevel(t, cube.Pos{0, 0, 0}, cube.Pos{1, 0, 0})

	// Skimming the internal edge slightly off the seam: the first block's
	// corner produces a mostly horizontal normal that must be ignored, the
	// second block's top face then grounds the player.
	state := NewMovementState(mgl32.Vec3{0.55, 0.52, 0})
	state.Vel = mgl32.Vec3{0, -0.3, 0}

	for i := 0; i < 4; i++ {
		ResolveCollisions(state, lvl, cfg, nil, func() { t.Fatalf("unexpected hazard") })
	}

	approxEqual(t, state.Pos.X(), 0.55, 1e-5, "pos.x")
	approxEqual(t, state.Vel.X(), 0, 1e-5, "vel.x")
	approxEqual(t, state.Pos.Y(), 0.5+cfg.PlayerRadius, 1e-4, "pos.y")
	if !state.OnGround {
		t.Fatalf("expected grounded after seam-adjacent landing")
	}
}

func TestSeamDeepLandingOffCenterStaysVertical(t *testing.T) {
	cfg := config.Default()
	lvl := platformLevel(t, cube.Pos{0, 0, 0}, cube.Pos{1, 0, 0})

	// Landing fast and deep just past the seam: the first block's internal
	// top corner yields a steep diagonal normal (ny ≈ 0.96). That contact
	// must not push, or the player takes a lateral kick off a flat platform;
	// the second block's top face supplies the vertical support.
	state := NewMovementState(mgl32.Vec3{0.55, 0.682, 0})
	state.Vel = mgl32.Vec3{0, -0.518, 0}

	ResolveCollisions(state, lvl, cfg, nil, func() { t.Fatalf("unexpected hazard") })

	approxEqual(t, state.Pos.X(), 0.55, 1e-5, "pos.x")
	approxEqual(t, state.Vel.X(), 0, 1e-5, "vel.x")
	approxEqual(t, state.Pos.Y(), 0.5+cfg.PlayerRadius, 1e-4, "pos.y")
	approxEqual(t, state.Vel.Y(), 0, 1e-5, "vel.y")
	if !state.OnGround {
		t.Fatalf("expected grounded after deep seam-adjacent landing")
	}
}

func TestSeamOuterWallStillCollides(t *testing.T) {
	cfg := config.Default()
	lvl := platformLevel(t, cube.Pos{0, 0, 0})

	// A lone block has no neighbor, so a sideways contact against its east
	// face is a real wall, not a seam. Player moves horizontally into it.
	state := NewMovementState(mgl32.Vec3{0.85, 0, 0})
	state.Vel = mgl32.Vec3{-0.1, 0, 0}

	ResolveCollisions(state, lvl, cfg, nil, func() { t.Fatalf("unexpected hazard") })

	approxEqual(t, state.Pos.X(), 0.5+cfg.PlayerRadius, 1e-4, "pos.x")
	if state.Vel.X() < 0 {
		t.Fatalf("inward velocity not canceled on wall hit: %v", state.Vel)
	}
}

func TestHazardTriggersOnceAndStopsResolution(t *testing.T) {
	cfg := config.Default()
	b := world.NewBuilder(1)
	b.Place(cube.Pos{0, 0, 0}, world.BlockTypeHazard)
	b.Place(cube.Pos{1, 0, 0}, world.BlockTypeStandard)
	lvl := b.Build(50)

	// Overlapping both the hazard and the standard block.
	state := NewMovementState(mgl32.Vec3{0.6, 0.87, 0})
	state.Vel = mgl32.Vec3{0, -0.1, 0}
	pos, vel := state.Pos, state.Vel

	hazards := 0
	ResolveCollisions(state, lvl, cfg, nil, func() { hazards++ })

	if hazards != 1 {
		t.Fatalf("hazard triggered %d times, want 1", hazards)
	}
	if state.Pos != pos || state.Vel != vel {
		t.Fatalf("blocks were resolved after the hazard: pos %v→%v vel %v→%v", pos, state.Pos, vel, state.Vel)
	}
}

func TestCoyoteWindowDrains(t *testing.T) {
	cfg := config.Default()
	lvl := platformLevel(t, cube.Pos{0, 0, 0})

	// Land first to arm the window.
	state := NewMovementState(mgl32.Vec3{0, 0.87, 0})
	state.Vel = mgl32.Vec3{0, -0.1, 0}
	ResolveCollisions(state, lvl, cfg, nil, func() {})
	if !state.OnGround {
		t.Fatalf("setup: expected grounded")
	}

	// Walk off: no more contact, grounded persists for exactly CoyoteFrames calls.
	state.Pos = mgl32.Vec3{10, 10, 10}
	for i := 1; i <= cfg.CoyoteFrames; i++ {
		wasEligible := state.OnGround || state.CoyoteTicks > 0
		ResolveCollisions(state, lvl, cfg, nil, func() {})
		if !wasEligible {
			t.Fatalf("jump ineligible during coyote call %d", i)
		}
		if i < cfg.CoyoteFrames && !state.OnGround {
			t.Fatalf("grounded dropped after %d calls, want %d", i, cfg.CoyoteFrames)
		}
	}
	if state.OnGround || state.CoyoteTicks != 0 {
		t.Fatalf("grounded=%v coyote=%d after %d contactless calls", state.OnGround, state.CoyoteTicks, cfg.CoyoteFrames)
	}
}

func TestBroadPhaseSkipsFarBlocks(t *testing.T) {
	cfg := config.Default()
	// A block far outside collisionRange along x; even with an (impossibly)
	// large radius the broad phase must reject it before the precise test.
	cfg.PlayerRadius = 0.9
	lvl := platformLevel(t, cube.Pos{10, 0, 0})

	state := NewMovementState(mgl32.Vec3{0, 0, 0})
	state.Vel = mgl32.Vec3{1, 0, 0}
	pos := state.Pos
	ResolveCollisions(state, lvl, cfg, nil, func() {})
	if state.Pos != pos {
		t.Fatalf("far block affected the player")
	}
}
