// State types are defined in elev package to make method receivers possible in fsm.go.
package elev

import (
	"errors"
	"fmt"
	"log/slog"

	"cabinctl/src/config"
	"cabinctl/src/timer"
	"cabinctl/src/types"

	"github.com/tiendc/go-deepcopy"
)

// NoTarget marks a cabin that is not travelling anywhere.
const NoTarget = -1

var ErrInvariant = errors.New("cabin invariant violated")

// CabinState is everything the controller knows about one cabin.
type CabinState struct {
	Floor            int
	Target           int
	Mode             types.CabinMode
	Dir              types.MotorDirection // Kept while idle so the scheduler can continue in the same direction
	Requests         RequestSet
	Timer            timer.Countdown
	DoorOpenPending  bool
	DoorClosePending bool
}

// Cabin couples a state with the configuration it was built for. Only Tick mutates it.
type Cabin struct {
	cfg   config.Config
	state CabinState
}

func NewCabin(cfg config.Config) *Cabin {
	cabin := &Cabin{
		cfg: cfg,
		state: CabinState{
			Target:   NoTarget,
			Mode:     types.Idle,
			Dir:      types.MD_Stop,
			Requests: NewRequestSet(cfg.NumFloors),
		},
	}
	slog.Debug("Cabin initialized", "numFloors", cfg.NumFloors, "doorHoldTicks", cfg.DoorHoldTicks, "moveTicksPerFloor", cfg.MoveTicksPerFloor)
	return cabin
}

func (cabin *Cabin) Config() config.Config {
	return cabin.cfg
}

// Snapshot returns a deep copy of the cabin state; the caller may modify it freely.
func (cabin *Cabin) Snapshot() CabinState {
	var snapshot CabinState
	if err := deepcopy.Copy(&snapshot, &cabin.state); err != nil {
		panic(err)
	}
	return snapshot
}

// clone returns an independent cabin with the same configuration and state.
func (cabin *Cabin) clone() *Cabin {
	return &Cabin{cfg: cabin.cfg, state: cabin.Snapshot()}
}

// Check reports the first broken invariant of the state, if any.
func (s CabinState) Check() error {
	numFloors := len(s.Requests)
	if s.Floor < 0 || s.Floor >= numFloors {
		return fmt.Errorf("%w: floor %d outside [0, %d)", ErrInvariant, s.Floor, numFloors)
	}
	switch s.Mode {
	case types.Idle:
	case types.MovingUp:
		if s.Target <= s.Floor {
			return fmt.Errorf("%w: moving up from %d to %d", ErrInvariant, s.Floor, s.Target)
		}
	case types.MovingDown:
		if s.Target >= s.Floor || s.Target < 0 {
			return fmt.Errorf("%w: moving down from %d to %d", ErrInvariant, s.Floor, s.Target)
		}
	case types.DoorOpen:
	default:
		return fmt.Errorf("%w: unknown mode %d", ErrInvariant, int(s.Mode))
	}
	if s.Mode != types.Idle && s.Timer.Expired() {
		return fmt.Errorf("%w: %s with expired timer", ErrInvariant, s.Mode)
	}
	if s.Target >= numFloors {
		return fmt.Errorf("%w: target %d outside [0, %d)", ErrInvariant, s.Target, numFloors)
	}
	return nil
}
