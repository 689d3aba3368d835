package sim

// EventHandler receives the events the simulation emits outward: score
// changes, status lines for the HUD, resets and victories. Handlers run on
// the tick goroutine and must not block.
type EventHandler interface {
	HandleScore(score int)
	HandleStatus(status string)
	HandleReset()
	HandleVictory()
}

// NopHandler implements EventHandler with no-ops. Embed it to handle only the
// events you care about.
type NopHandler struct{}

// HandleScore ...
func (NopHandler) HandleScore(int) {}

// HandleStatus ...
func (NopHandler) HandleStatus(string) {}

// HandleReset ...
func (NopHandler) HandleReset() {}

// HandleVictory ...
func (NopHandler) HandleVictory() {}
