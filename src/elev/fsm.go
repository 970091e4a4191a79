// Contains the tick-driven state machine for single cabin control.
package elev

import (
	"log/slog"

	"cabinctl/src/types"
)

// Tick advances the cabin by one time unit and returns the action for the actuator layer.
// Events with a floor argument must already be validated against the floor count.
func (cabin *Cabin) Tick(ev types.Event) types.Action {
	cabin.handleEvent(ev)
	cabin.state.Timer.Tick()

	switch cabin.state.Mode {
	case types.Idle:
		return cabin.chooseAction()
	case types.MovingUp, types.MovingDown:
		return cabin.handleMoving()
	case types.DoorOpen:
		return cabin.handleDoorOpen()
	}
	slog.Error("Tick in unknown mode", "mode", cabin.state.Mode)
	return types.Nothing
}

// Folds the event into the request set or door flags, whatever the current mode.
func (cabin *Cabin) handleEvent(ev types.Event) {
	switch ev.Kind {
	case types.EV_CallButton, types.EV_FloorButton:
		cabin.state.Requests.Raise(ev.Floor)
		slog.Debug("Request raised", "event", ev, "pending", cabin.state.Requests.Floors())
	case types.EV_DoorOpen:
		cabin.state.DoorOpenPending = true
	case types.EV_DoorClose:
		cabin.state.DoorClosePending = true
	}
}

// chooseAction is called in Idle.
//   - Opens door on a pending door command
//   - Opens door if the next floor is the current one, otherwise starts moving towards it
func (cabin *Cabin) chooseAction() types.Action {
	s := &cabin.state
	// The door is already closed.
	s.DoorClosePending = false

	if s.DoorOpenPending {
		s.DoorOpenPending = false
		return cabin.openDoor()
	}
	if !s.Requests.HasAny() {
		s.Dir = types.MD_Stop
		return types.Nothing
	}

	next, dir, _ := ChooseNextFloor(s.Floor, s.Dir, s.Requests)
	s.Dir = dir
	switch {
	case next == s.Floor:
		return cabin.openDoor()
	case next < s.Floor:
		return cabin.startMoving(next, types.MovingDown, types.MoveDown)
	default:
		return cabin.startMoving(next, types.MovingUp, types.MoveUp)
	}
}

func (cabin *Cabin) startMoving(target int, mode types.CabinMode, action types.Action) types.Action {
	s := &cabin.state
	distance := target - s.Floor
	if distance < 0 {
		distance = -distance
	}
	s.Target = target
	s.Mode = mode
	s.Timer.Start(cabin.cfg.MoveTicksPerFloor * distance)
	slog.Debug("Starting to move", "from", s.Floor, "to", target, "ticks", s.Timer.Remaining())
	return action
}

// handleMoving lands the cabin on its target once the movement timer expires.
func (cabin *Cabin) handleMoving() types.Action {
	s := &cabin.state
	if !s.Timer.Expired() {
		return types.Nothing
	}
	slog.Debug("Arrived at floor", "floor", s.Target, "direction", s.Dir)
	s.Floor = s.Target
	s.Target = NoTarget
	s.Mode = types.Idle
	return types.Nothing
}

// handleDoorOpen closes the door on command or when the hold time is up.
// An open command while the door is open restarts the hold time.
func (cabin *Cabin) handleDoorOpen() types.Action {
	s := &cabin.state
	if s.DoorClosePending || s.Timer.Expired() {
		slog.Debug("Closing door", "floor", s.Floor, "commanded", s.DoorClosePending)
		s.DoorClosePending = false
		s.Timer.Stop()
		s.Mode = types.Idle
		return types.CloseDoor
	}
	if s.DoorOpenPending {
		s.DoorOpenPending = false
		s.Timer.Start(cabin.cfg.DoorHoldTicks)
		slog.Debug("Door hold restarted", "floor", s.Floor)
	}
	return types.Nothing
}

// openDoor serves the request at the current floor, if any, and starts the door hold.
func (cabin *Cabin) openDoor() types.Action {
	s := &cabin.state
	s.Requests.Clear(s.Floor)
	s.Target = NoTarget
	s.Mode = types.DoorOpen
	s.Timer.Start(cabin.cfg.DoorHoldTicks)
	slog.Debug("Opening door", "floor", s.Floor, "holdTicks", cabin.cfg.DoorHoldTicks)
	return types.OpenDoor
}
