package sim

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spireclimb/spire/config"
	"github.com/spireclimb/spire/game"
	"github.com/spireclimb/spire/world"
)

// Simulator runs the logical game: one player sphere against a generated
// level. It owns the movement state and is single-threaded; the scheduler (or
// a test) calls Tick, and everything else observes through event handlers.
type Simulator struct {
	// Dbg receives diagnostics for the tick internals.
	Dbg *Debugger

	conf  config.Config
	level *world.Level
	state *MovementState
	input InputState
	spawn mgl32.Vec3

	handlers  []EventHandler
	lastScore int
	victory   bool
	tick      int64
}

// NewSimulator returns a simulator for the given level. The configuration
// must already be validated.
func NewSimulator(cfg config.Config, lvl *world.Level, dbg *Debugger) *Simulator {
	spawn := mgl32.Vec3{0, cfg.BlockSize * 2, 0}
	return &Simulator{
		Dbg:       dbg,
		conf:      cfg,
		level:     lvl,
		state:     NewMovementState(spawn),
		spawn:     spawn,
		lastScore: -1,
	}
}

// Handle registers an event handler.
func (s *Simulator) Handle(h EventHandler) {
	s.handlers = append(s.handlers, h)
}

// SetMoveVector sets the camera-relative horizontal movement intent used by
// subsequent ticks.
func (s *Simulator) SetMoveVector(mv mgl32.Vec2) {
	s.input.MoveVector = mv
}

// RequestJump asks the next eligible tick to jump. The request stays pending
// until it is acted upon.
func (s *Simulator) RequestJump() {
	s.input.Jump = true
}

// State returns a copy of the movement state. Safe for callers that only read
// between ticks; concurrent readers must synchronize with tick completion.
func (s *Simulator) State() MovementState {
	return *s.state
}

// Level returns the level being simulated.
func (s *Simulator) Level() *world.Level {
	return s.level
}

// Tick runs one logical step: integrate the input force, converge collisions,
// apply a pending jump, then check fall-through, victory and score.
func (s *Simulator) Tick() {
	s.tick++
	s.Dbg.Notify(DebugModeMovementSim, true, "START tick %d (pos=%v vel=%v)", s.tick, s.state.Pos, s.state.Vel)

	ApplyPhysics(s.state, s.input.Force(s.conf.MoveSpeed), s.conf)

	hazard := false
	for i := 0; i < game.SolverIterations && !hazard; i++ {
		ResolveCollisions(s.state, s.level, s.conf, s.Dbg, func() { hazard = true })
	}
	if hazard {
		s.respawn()
		return
	}

	if s.input.Jump && (s.state.OnGround || s.state.CoyoteTicks > 0) {
		s.state.Vel[1] = s.conf.JumpForce
		s.state.OnGround = false
		s.state.CoyoteTicks = 0
		s.input.Jump = false
		s.Dbg.Notify(DebugModeMovementSim, true, "jump applied on tick %d", s.tick)
	}

	if s.state.Pos.Y() < -game.FallResetDepth*s.conf.BlockSize {
		s.respawn()
		return
	}

	if !s.victory && s.state.Pos.Y() > s.level.WinHeight {
		s.victory = true
		for _, h := range s.handlers {
			h.HandleVictory()
			h.HandleStatus(game.StatusVictory)
		}
	}

	s.reportScore()
}

// respawn replaces the whole movement state and rearms the victory latch.
// Between the trigger and this overwrite nothing else reads the state.
func (s *Simulator) respawn() {
	s.state.Reset(s.spawn)
	s.victory = false
	s.input.Jump = false
	for _, h := range s.handlers {
		h.HandleReset()
		h.HandleStatus(game.StatusRespawned)
	}
	s.reportScore()
}

// reportScore derives the climb score, the player height in whole block
// units, and emits it when it changes.
func (s *Simulator) reportScore() {
	score := int(math32.Floor(s.state.Pos.Y() / s.conf.BlockSize))
	if score < 0 {
		score = 0
	}
	if score == s.lastScore {
		return
	}
	s.lastScore = score
	for _, h := range s.handlers {
		h.HandleScore(score)
	}
}
