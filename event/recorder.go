package event

import "time"

// Recorder accumulates the simulation's outward events as an encoded session
// log. It implements the sim event handler set, so it can be registered next
// to HUD or scoring handlers.
type Recorder struct {
	// Clock supplies event timestamps. Defaults to wall-clock milliseconds;
	// tests substitute a fixed clock for byte-stable logs.
	Clock func() int64

	dat []byte
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{Clock: func() int64 { return time.Now().UnixMilli() }}
}

// HandleScore ...
func (r *Recorder) HandleScore(score int) {
	r.record(ScoreEvent{NopEvent: NopEvent{EvTime: r.Clock()}, Score: int32(score)})
}

// HandleStatus ...
func (r *Recorder) HandleStatus(status string) {
	r.record(StatusEvent{NopEvent: NopEvent{EvTime: r.Clock()}, Status: status})
}

// HandleReset ...
func (r *Recorder) HandleReset() {
	r.record(ResetEvent{NopEvent: NopEvent{EvTime: r.Clock()}})
}

// HandleVictory ...
func (r *Recorder) HandleVictory() {
	r.record(VictoryEvent{NopEvent: NopEvent{EvTime: r.Clock()}})
}

// Bytes returns the encoded log so far.
func (r *Recorder) Bytes() []byte {
	return r.dat
}

// Events decodes the log back into events.
func (r *Recorder) Events() ([]Event, error) {
	return DecodeEvents(r.dat)
}

func (r *Recorder) record(ev Event) {
	r.dat = append(r.dat, ev.Encode()...)
}
