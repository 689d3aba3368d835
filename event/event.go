package event

import (
	"bytes"
	"encoding/binary"

	"github.com/spireclimb/spire/internal"
	"github.com/spireclimb/spire/serror"
)

const EventsVersion = "1"

// Event is one entry of a recorded session log.
type Event interface {
	ID() byte
	Encode() []byte

	Time() int64
}

const (
	_ = iota
	EventIDScore
	EventIDStatus
	EventIDReset
	EventIDVictory
)

// NopEvent carries the timestamp shared by every event.
type NopEvent struct {
	EvTime int64
}

// Time ...
func (n NopEvent) Time() int64 {
	return n.EvTime
}

// WriteEventHeader writes the shared id/time header.
func WriteEventHeader(ev Event, buf *bytes.Buffer) {
	binary.Write(buf, binary.LittleEndian, uint64(ev.ID()))
	binary.Write(buf, binary.LittleEndian, uint64(ev.Time()))
}

// ScoreEvent records a score change.
type ScoreEvent struct {
	NopEvent

	Score int32
}

// ID ...
func (ScoreEvent) ID() byte {
	return EventIDScore
}

// Encode ...
func (ev ScoreEvent) Encode() []byte {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	WriteEventHeader(ev, buf)
	binary.Write(buf, binary.LittleEndian, ev.Score)
	return append([]byte(nil), buf.Bytes()...)
}

// StatusEvent records a status line shown to the player.
type StatusEvent struct {
	NopEvent

	Status string
}

// ID ...
func (StatusEvent) ID() byte {
	return EventIDStatus
}

// Encode ...
func (ev StatusEvent) Encode() []byte {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	WriteEventHeader(ev, buf)
	binary.Write(buf, binary.LittleEndian, uint32(len(ev.Status)))
	buf.WriteString(ev.Status)
	return append([]byte(nil), buf.Bytes()...)
}

// ResetEvent records a respawn.
type ResetEvent struct {
	NopEvent
}

// ID ...
func (ResetEvent) ID() byte {
	return EventIDReset
}

// Encode ...
func (ev ResetEvent) Encode() []byte {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	WriteEventHeader(ev, buf)
	return append([]byte(nil), buf.Bytes()...)
}

// VictoryEvent records the climb being completed.
type VictoryEvent struct {
	NopEvent
}

// ID ...
func (VictoryEvent) ID() byte {
	return EventIDVictory
}

// Encode ...
func (ev VictoryEvent) Encode() []byte {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	WriteEventHeader(ev, buf)
	return append([]byte(nil), buf.Bytes()...)
}

// DecodeEvents decodes a full session log.
func DecodeEvents(dat []byte) ([]Event, error) {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	buf.Write(dat)
	defer internal.BufferPool.Put(buf)

	events := []Event{}
	for buf.Len() > 0 {
		ev, err := DecodeEvent(buf)
		if err != nil {
			return events, serror.New("error decoding event: %v", err)
		}
		events = append(events, ev)
	}
	return events, nil
}

// DecodeEvent decodes a single event from the buffer.
func DecodeEvent(buf *bytes.Buffer) (Event, error) {
	if buf.Len() < 16 {
		return nil, serror.New("truncated event header (%d bytes left)", buf.Len())
	}
	id := byte(binary.LittleEndian.Uint64(buf.Next(8)))
	t := int64(binary.LittleEndian.Uint64(buf.Next(8)))

	switch id {
	case EventIDScore:
		ev := ScoreEvent{}
		ev.EvTime = t
		if buf.Len() < 4 {
			return nil, serror.New("truncated score event")
		}
		ev.Score = int32(binary.LittleEndian.Uint32(buf.Next(4)))
		return ev, nil
	case EventIDStatus:
		ev := StatusEvent{}
		ev.EvTime = t
		if buf.Len() < 4 {
			return nil, serror.New("truncated status event")
		}
		n := int(binary.LittleEndian.Uint32(buf.Next(4)))
		if buf.Len() < n {
			return nil, serror.New("truncated status event payload")
		}
		ev.Status = string(buf.Next(n))
		return ev, nil
	case EventIDReset:
		ev := ResetEvent{}
		ev.EvTime = t
		return ev, nil
	case EventIDVictory:
		ev := VictoryEvent{}
		ev.EvTime = t
		return ev, nil
	default:
		return nil, serror.New("unknown event: %d", id)
	}
}
