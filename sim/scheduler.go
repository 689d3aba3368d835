package sim

import (
	"time"

	"github.com/spireclimb/spire/game"
)

// Scheduler converts variable wall-clock deltas into whole fixed-size logical
// ticks, decoupling the simulation rate from however often the outside driver
// calls Advance.
type Scheduler struct {
	sim *Simulator

	lastTime time.Time
	started  bool
	acc      float64
}

// NewScheduler returns a scheduler driving the given simulator.
func NewScheduler(sim *Simulator) *Scheduler {
	return &Scheduler{sim: sim}
}

// Advance feeds the accumulator with the time elapsed since the previous call
// and runs the ticks it covers, returning how many ran. The first call only
// initializes timing state: there is no previous timestamp to diff against.
// Deltas are clamped so one long stall never snowballs into a catch-up loop
// that outlasts the next frame.
func (s *Scheduler) Advance(now time.Time) int {
	if !s.started {
		s.started = true
		s.lastTime = now
		return 0
	}

	delta := now.Sub(s.lastTime).Seconds()
	s.lastTime = now
	if delta < 0 {
		delta = 0
	}
	if delta > game.MaxFrameDelta {
		delta = game.MaxFrameDelta
	}

	s.acc += delta
	ticks := 0
	for s.acc >= game.TimeStep {
		s.acc -= game.TimeStep
		s.sim.Tick()
		ticks++
	}
	s.sim.Dbg.Notify(DebugModeScheduler, ticks > 0, "advanced %d ticks (delta=%.4fs acc=%.4fs)", ticks, delta, s.acc)
	return ticks
}
