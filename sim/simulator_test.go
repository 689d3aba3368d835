package sim

import (
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spireclimb/spire/config"
	"github.com/spireclimb/spire/game"
	"github.com/spireclimb/spire/world"
)

type captureHandler struct {
	NopHandler

	scores    []int
	statuses  []string
	resets    int
	victories int
}

func (h *captureHandler) HandleScore(score int) {
	h.scores = append(h.scores, score)
}

func (h *captureHandler) HandleStatus(status string) {
	h.statuses = append(h.statuses, status)
}

func (h *captureHandler) HandleReset() {
	h.resets++
}

func (h *captureHandler) HandleVictory() {
	h.victories++
}

func basePlatform(t *testing.T) *world.Level {
	t.Helper()
	b := world.NewBuilder(1)
	for gx := -2; gx <= 2; gx++ {
		for gz := -2; gz <= 2; gz++ {
			b.Place(cube.Pos{gx, 0, gz}, world.BlockTypeStandard)
		}
	}
	return b.Build(50)
}

func tickUntil(t *testing.T, s *Simulator, limit int, done func() bool) {
	t.Helper()
	for i := 0; i < limit; i++ {
		if done() {
			return
		}
		s.Tick()
	}
	if !done() {
		t.Fatalf("condition not reached within %d ticks", limit)
	}
}

func TestSimulatorLandsOnPlatform(t *testing.T) {
	cfg := config.Default()
	s := NewSimulator(cfg, basePlatform(t), nil)

	tickUntil(t, s, 200, func() bool { return s.State().OnGround })

	state := s.State()
	approxEqual(t, state.Pos.Y(), 0.5+cfg.PlayerRadius, 1e-3, "rest height")
	approxEqual(t, state.Vel.Y(), 0, 1e-4, "rest vertical velocity")
}

func TestSimulatorJumpConsumesRequest(t *testing.T) {
	cfg := config.Default()
	s := NewSimulator(cfg, basePlatform(t), nil)
	tickUntil(t, s, 200, func() bool { return s.State().OnGround })

	s.RequestJump()
	s.Tick()

	state := s.State()
	approxEqual(t, state.Vel.Y(), cfg.JumpForce, 1e-5, "jump velocity")
	if state.OnGround {
		t.Fatalf("still grounded immediately after jump")
	}
	if s.input.Jump {
		t.Fatalf("jump request not consumed")
	}
}

func TestSimulatorJumpRequestPersistsUntilEligible(t *testing.T) {
	cfg := config.Default()
	s := NewSimulator(cfg, basePlatform(t), nil)

	// Requested mid-air, beyond any coyote window: the request must survive
	// until the landing tick and fire then.
	s.Tick()
	s.RequestJump()
	if s.State().OnGround {
		t.Fatalf("setup: expected airborne right after spawn")
	}

	tickUntil(t, s, 300, func() bool { return s.State().Vel.Y() >= cfg.JumpForce-1e-4 })
	if s.input.Jump {
		t.Fatalf("jump request not consumed after landing")
	}
}

func TestSimulatorHazardRespawns(t *testing.T) {
	cfg := config.Default()
	b := world.NewBuilder(1)
	b.Place(cube.Pos{0, 1, 0}, world.BlockTypeHazard)
	lvl := b.Build(50)

	s := NewSimulator(cfg, lvl, nil)
	h := &captureHandler{}
	s.Handle(h)

	tickUntil(t, s, 100, func() bool { return h.resets > 0 })

	state := s.State()
	if state.Pos != (mgl32.Vec3{0, cfg.BlockSize * 2, 0}) {
		t.Fatalf("respawn did not restore the spawn position: %v", state.Pos)
	}
	if state.Vel != (mgl32.Vec3{}) || state.OnGround || state.CoyoteTicks != 0 {
		t.Fatalf("respawn state not fully reset: %+v", state)
	}
	if len(h.statuses) == 0 || h.statuses[len(h.statuses)-1] != game.StatusRespawned {
		t.Fatalf("missing respawn status, got %v", h.statuses)
	}
}

func TestSimulatorFallThroughRespawns(t *testing.T) {
	cfg := config.Default()
	s := NewSimulator(cfg, world.NewBuilder(1).Build(50), nil)
	h := &captureHandler{}
	s.Handle(h)

	tickUntil(t, s, 2000, func() bool { return h.resets > 0 })
	if got := s.State().Pos.Y(); got != cfg.BlockSize*2 {
		t.Fatalf("fall reset left player at y=%v", got)
	}
}

func TestSimulatorVictoryLatches(t *testing.T) {
	cfg := config.Default()
	// Win height below the spawn: the first tick wins immediately.
	s := NewSimulator(cfg, world.NewBuilder(1).Build(1), nil)
	h := &captureHandler{}
	s.Handle(h)

	s.Tick()
	s.Tick()

	if h.victories != 1 {
		t.Fatalf("victory fired %d times, want 1", h.victories)
	}
	if h.statuses[0] != game.StatusVictory {
		t.Fatalf("missing victory status, got %v", h.statuses)
	}
}

func TestSimulatorReportsScoreChanges(t *testing.T) {
	cfg := config.Default()
	s := NewSimulator(cfg, basePlatform(t), nil)
	h := &captureHandler{}
	s.Handle(h)

	tickUntil(t, s, 200, func() bool { return s.State().OnGround })

	if len(h.scores) == 0 {
		t.Fatalf("no score events emitted")
	}
	// Spawn is two block units up; the first tick reports from just below it.
	if h.scores[0] != 1 {
		t.Fatalf("first score %d, want 1", h.scores[0])
	}
	for i := 1; i < len(h.scores); i++ {
		if h.scores[i] == h.scores[i-1] {
			t.Fatalf("duplicate score event %d at index %d", h.scores[i], i)
		}
		if h.scores[i] < 0 {
			t.Fatalf("negative score %d", h.scores[i])
		}
	}
}
