package elev

import (
	"log/slog"

	"cabinctl/src/types"
)

// EstimateTicks simulates a copy of the cabin with floor requested and counts the ticks
// until the door opens there. The real cabin is untouched.
//   - the counted tick includes the one that would carry the request
//   - returns false if the door has not opened at floor within limit ticks
func (cabin *Cabin) EstimateTicks(floor int, limit int) (int, bool) {
	sim := cabin.clone()
	ev := types.FloorButton(floor)

	for ticks := 1; ticks <= limit; ticks++ {
		action := sim.Tick(ev)
		ev = types.NoEvent
		if action == types.OpenDoor && sim.state.Floor == floor {
			slog.Debug("Estimate done", "floor", floor, "ticks", ticks)
			return ticks, true
		}
	}
	slog.Debug("Estimate exceeded limit", "floor", floor, "limit", limit)
	return limit, false
}

// EstimateLimit is a tick budget that covers serving every floor once from any state.
func (cabin *Cabin) EstimateLimit() int {
	perStop := cabin.cfg.DoorHoldTicks + 2
	fullTrip := cabin.cfg.MoveTicksPerFloor*cabin.cfg.NumFloors + perStop
	return 2*cabin.cfg.NumFloors*fullTrip + 1
}
