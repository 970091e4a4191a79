// Package panel is the boundary between button sources and the cabin. It
// rejects malformed events before they reach the state machine and queues
// accepted ones so that each tick consumes at most one.
package panel

import (
	"errors"
	"fmt"
	"sync"

	"cabinctl/src/reqlog"
	"cabinctl/src/types"
)

var (
	ErrFloorOutOfRange = errors.New("floor out of range")
	ErrUnknownEvent    = errors.New("unknown event")
	ErrPanelFull       = errors.New("panel queue full")
)

// Validate checks an event against the floor count of the cabin it is meant for.
func Validate(ev types.Event, numFloors int) error {
	switch ev.Kind {
	case types.EV_None, types.EV_DoorOpen, types.EV_DoorClose:
		return nil
	case types.EV_CallButton, types.EV_FloorButton:
		if ev.Floor < 0 || ev.Floor >= numFloors {
			return fmt.Errorf("%s: %w: want 0 <= floor < %d", ev, ErrFloorOutOfRange, numFloors)
		}
		return nil
	}
	return fmt.Errorf("%w: kind %d", ErrUnknownEvent, int(ev.Kind))
}

type Panel struct {
	numFloors int
	queue     chan types.Event

	mu      sync.Mutex
	history *reqlog.List
}

// New creates a panel for a cabin with numFloors floors that holds at most capacity unconsumed events.
func New(numFloors int, capacity int) *Panel {
	return &Panel{
		numFloors: numFloors,
		queue:     make(chan types.Event, capacity),
		history:   reqlog.New(),
	}
}

// Press validates ev and queues it for a later tick. Safe for concurrent use.
func (p *Panel) Press(ev types.Event) error {
	if err := Validate(ev, p.numFloors); err != nil {
		return err
	}
	if ev.Kind == types.EV_None {
		return nil
	}
	select {
	case p.queue <- ev:
	default:
		return fmt.Errorf("%s: %w", ev, ErrPanelFull)
	}
	if ev.HasFloor() {
		p.mu.Lock()
		p.history.InsertEnd(uint(ev.Floor))
		p.mu.Unlock()
	}
	return nil
}

// Next returns the oldest queued event, or NoEvent if nothing is waiting.
func (p *Panel) Next() types.Event {
	select {
	case ev := <-p.queue:
		return ev
	default:
		return types.NoEvent
	}
}

// History returns every accepted floor request in the order it was pressed.
func (p *Panel) History() []uint {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.history.Values()
}

// Pending returns how many events are waiting for a tick.
func (p *Panel) Pending() int {
	return len(p.queue)
}
