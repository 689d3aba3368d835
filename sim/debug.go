package sim

import "github.com/sirupsen/logrus"

// Debug modes the core can be asked to narrate. Each mode gates one area of
// the tick so enabling collisions does not also flood the log with scheduler
// chatter.
const (
	DebugModeCollisions = iota
	DebugModeMovementSim
	DebugModeScheduler
	DebugModeGenerator
)

// Debugger is the diagnostics sink the simulation writes to. It is injected
// rather than read from a global flag; a nil Debugger discards everything.
type Debugger struct {
	log   *logrus.Logger
	modes map[int]bool
}

// NewDebugger returns a Debugger writing to the given logger at debug level.
func NewDebugger(log *logrus.Logger) *Debugger {
	return &Debugger{log: log, modes: map[int]bool{}}
}

// Toggle flips a debug mode.
func (d *Debugger) Toggle(mode int) {
	d.modes[mode] = !d.modes[mode]
}

// Enabled reports whether a debug mode is on.
func (d *Debugger) Enabled(mode int) bool {
	return d.modes[mode]
}

// Notify logs a message when the mode is enabled and the condition holds.
func (d *Debugger) Notify(mode int, condition bool, format string, args ...any) {
	if d == nil || !condition || !d.modes[mode] {
		return
	}
	d.log.Debugf(format, args...)
}
