package spire

import (
	"math/rand"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
	"github.com/spireclimb/spire/config"
	"github.com/spireclimb/spire/sim"
	"github.com/spireclimb/spire/world"
)

// Session ties one generated level to one running simulation. The core itself
// is single-threaded; Session serializes outside access so a presentation
// loop on another goroutine can drive ticks and read snapshots safely.
type Session struct {
	mu sync.Mutex

	log   *logrus.Logger
	conf  config.Config
	level *world.Level
	sim   *sim.Simulator
	sched *sim.Scheduler
}

// New validates the configuration, generates the level and prepares the
// simulation. A zero seed picks the current time, so fix the seed for
// reproducible levels.
func New(log *logrus.Logger, cfg config.Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	lvl := world.Generate(cfg, rand.New(rand.NewSource(seed)))
	log.Infof("generated level: %d blocks, win height %.1f, seed %d, fingerprint %016x",
		len(lvl.Blocks), lvl.WinHeight, seed, lvl.Fingerprint)

	simulator := sim.NewSimulator(cfg, lvl, sim.NewDebugger(log))
	return &Session{
		log:   log,
		conf:  cfg,
		level: lvl,
		sim:   simulator,
		sched: sim.NewScheduler(simulator),
	}, nil
}

// Update advances the simulation to the given time and returns how many
// logical ticks ran.
func (s *Session) Update(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched.Advance(now)
}

// SetMoveVector sets the camera-relative movement intent for upcoming ticks.
func (s *Session) SetMoveVector(mv mgl32.Vec2) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sim.SetMoveVector(mv)
}

// RequestJump queues a jump request for the next eligible tick.
func (s *Session) RequestJump() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sim.RequestJump()
}

// Handle registers an event handler with the simulation.
func (s *Session) Handle(h sim.EventHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sim.Handle(h)
}

// Snapshot returns a copy of the player state taken between ticks.
func (s *Session) Snapshot() sim.MovementState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sim.State()
}

// Level returns the generated level. Levels are immutable after generation,
// so readers need no synchronization.
func (s *Session) Level() *world.Level {
	return s.level
}

// Debugger exposes the diagnostics sink so drivers can toggle modes.
func (s *Session) Debugger() *sim.Debugger {
	return s.sim.Dbg
}

// DumpLevel narrates the generated layout through the generator debug mode.
func (s *Session) DumpLevel() {
	if !s.sim.Dbg.Enabled(sim.DebugModeGenerator) {
		return
	}
	s.level.Index.Each(func(blk *world.Block) bool {
		s.sim.Dbg.Notify(sim.DebugModeGenerator, true, "block %d: %s at %v (region %d)",
			blk.ID, blk.Type, blk.Pos, blk.Region)
		return true
	})
}
