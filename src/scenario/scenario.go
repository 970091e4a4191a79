// Package scenario replays scripted button presses against a cabin and
// optionally checks the actions it emits.
package scenario

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"cabinctl/src/elev"
	"cabinctl/src/panel"
	"cabinctl/src/types"

	"gopkg.in/yaml.v3"
)

var ErrInvalidStep = errors.New("invalid scenario step")

// Step injects Event on its first tick and nothing on the remaining Ticks-1.
type Step struct {
	Event  string   `yaml:"event"`
	Floor  int      `yaml:"floor"`
	Ticks  int      `yaml:"ticks"`
	Expect []string `yaml:"expect"`
}

type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Record is one tick of a run.
type Record struct {
	Tick   int
	Event  types.Event
	Action types.Action
	State  elev.CabinState
}

type Trace []Record

func (tr Trace) Actions() []types.Action {
	actions := make([]types.Action, len(tr))
	for i, r := range tr {
		actions[i] = r.Action
	}
	return actions
}

// MismatchError reports the first tick whose action differed from the expectation.
type MismatchError struct {
	Step int
	Tick int
	Want types.Action
	Got  types.Action
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("step %d, tick %d: expected %s, got %s", e.Step, e.Tick, e.Want, e.Got)
}

func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return sc, fmt.Errorf("parse scenario: %w", err)
	}
	for i := range sc.Steps {
		step := &sc.Steps[i]
		if step.Ticks == 0 {
			step.Ticks = 1
		}
		if step.Ticks < 0 {
			return sc, fmt.Errorf("%w %d: ticks must be positive", ErrInvalidStep, i)
		}
		if len(step.Expect) > step.Ticks {
			return sc, fmt.Errorf("%w %d: %d expectations for %d ticks", ErrInvalidStep, i, len(step.Expect), step.Ticks)
		}
		if _, err := step.event(); err != nil {
			return sc, fmt.Errorf("%w %d: %w", ErrInvalidStep, i, err)
		}
		for _, name := range step.Expect {
			if _, err := types.ParseAction(name); err != nil {
				return sc, fmt.Errorf("%w %d: %w", ErrInvalidStep, i, err)
			}
		}
	}
	return sc, nil
}

func (step Step) event() (types.Event, error) {
	switch strings.ToLower(step.Event) {
	case "", "none":
		return types.NoEvent, nil
	case "call":
		return types.CallButton(step.Floor), nil
	case "floor":
		return types.FloorButton(step.Floor), nil
	case "open":
		return types.DoorOpenCmd(), nil
	case "close":
		return types.DoorCloseCmd(), nil
	}
	return types.NoEvent, fmt.Errorf("unknown event %q", step.Event)
}

// Run plays sc on cabin. Events are validated against the cabin's floor count first;
// the trace up to the failing tick is returned alongside any error.
func Run(cabin *elev.Cabin, sc Scenario) (Trace, error) {
	numFloors := cabin.Config().NumFloors
	var trace Trace
	tick := 0

	for i, step := range sc.Steps {
		ev, err := step.event()
		if err != nil {
			return trace, fmt.Errorf("%w %d: %w", ErrInvalidStep, i, err)
		}
		if err := panel.Validate(ev, numFloors); err != nil {
			return trace, fmt.Errorf("step %d: %w", i, err)
		}
		for n := 0; n < step.Ticks; n++ {
			tick++
			action := cabin.Tick(ev)
			trace = append(trace, Record{Tick: tick, Event: ev, Action: action, State: cabin.Snapshot()})
			ev = types.NoEvent

			if n < len(step.Expect) {
				want, _ := types.ParseAction(step.Expect[n])
				if want != action {
					return trace, &MismatchError{Step: i, Tick: tick, Want: want, Got: action}
				}
			}
		}
	}
	slog.Debug("Scenario finished", "name", sc.Name, "ticks", tick)
	return trace, nil
}
