package elev

import "cabinctl/src/types"

// ChooseNextFloor picks the next floor to serve.
//  1. A request at the current floor is always served first.
//  2. While travelling, continue to the nearest request ahead. If there is none, reverse to the nearest request behind.
//  3. At rest, take the nearest request in either direction, preferring the lower floor on a tie.
//
// ok is false only when requests is empty, which callers must rule out with HasAny.
func ChooseNextFloor(floor int, dir types.MotorDirection, requests RequestSet) (next int, newDir types.MotorDirection, ok bool) {
	if requests.IsSet(floor) {
		return floor, dir, true
	}
	above, hasAbove := requests.Above(floor)
	below, hasBelow := requests.Below(floor)

	switch dir {
	case types.MD_Up:
		switch {
		case hasAbove:
			return above, types.MD_Up, true
		case hasBelow:
			return below, types.MD_Down, true
		}
	case types.MD_Down:
		switch {
		case hasBelow:
			return below, types.MD_Down, true
		case hasAbove:
			return above, types.MD_Up, true
		}
	default:
		switch {
		case hasAbove && hasBelow:
			if above-floor < floor-below {
				return above, types.MD_Up, true
			}
			return below, types.MD_Down, true
		case hasAbove:
			return above, types.MD_Up, true
		case hasBelow:
			return below, types.MD_Down, true
		}
	}
	return -1, types.MD_Stop, false
}
