package types

import "fmt"

type MotorDirection int

const (
	MD_Up   MotorDirection = 1
	MD_Down MotorDirection = -1
	MD_Stop MotorDirection = 0
)

func (d MotorDirection) String() string {
	switch d {
	case MD_Up:
		return "up"
	case MD_Down:
		return "down"
	case MD_Stop:
		return "stop"
	}
	return fmt.Sprintf("MotorDirection(%d)", int(d))
}

type CabinMode int

const (
	Idle CabinMode = iota
	MovingUp
	MovingDown
	DoorOpen
)

func (m CabinMode) String() string {
	switch m {
	case Idle:
		return "Idle"
	case MovingUp:
		return "MovingUp"
	case MovingDown:
		return "MovingDown"
	case DoorOpen:
		return "DoorOpen"
	}
	return fmt.Sprintf("CabinMode(%d)", int(m))
}

type EventKind int

const (
	EV_None EventKind = iota
	EV_CallButton
	EV_FloorButton
	EV_DoorOpen
	EV_DoorClose
)

func (k EventKind) String() string {
	switch k {
	case EV_None:
		return "None"
	case EV_CallButton:
		return "CallButton"
	case EV_FloorButton:
		return "FloorButton"
	case EV_DoorOpen:
		return "DoorOpenCommand"
	case EV_DoorClose:
		return "DoorCloseCommand"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is one tick's input. Floor is only read for EV_CallButton and
// EV_FloorButton.
type Event struct {
	Kind  EventKind
	Floor int
}

// HasFloor reports whether the event carries a floor argument.
func (e Event) HasFloor() bool {
	return e.Kind == EV_CallButton || e.Kind == EV_FloorButton
}

func (e Event) String() string {
	if e.HasFloor() {
		return fmt.Sprintf("%s(%d)", e.Kind, e.Floor)
	}
	return e.Kind.String()
}

var NoEvent = Event{Kind: EV_None}

func CallButton(floor int) Event  { return Event{Kind: EV_CallButton, Floor: floor} }
func FloorButton(floor int) Event { return Event{Kind: EV_FloorButton, Floor: floor} }
func DoorOpenCmd() Event          { return Event{Kind: EV_DoorOpen} }
func DoorCloseCmd() Event         { return Event{Kind: EV_DoorClose} }

// Action is the single instruction emitted per tick for the actuator layer.
type Action int

const (
	Nothing Action = iota
	OpenDoor
	CloseDoor
	MoveUp
	MoveDown
)

func (a Action) String() string {
	switch a {
	case Nothing:
		return "Nothing"
	case OpenDoor:
		return "OpenDoor"
	case CloseDoor:
		return "CloseDoor"
	case MoveUp:
		return "MoveUp"
	case MoveDown:
		return "MoveDown"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ParseAction is the inverse of Action.String.
func ParseAction(s string) (Action, error) {
	for a := Nothing; a <= MoveDown; a++ {
		if a.String() == s {
			return a, nil
		}
	}
	return Nothing, fmt.Errorf("unknown action %q", s)
}
