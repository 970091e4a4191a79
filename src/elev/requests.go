package elev

// RequestSet holds one presence flag per floor. Raising a floor twice leaves a
// single pending stop.
type RequestSet []bool

func NewRequestSet(numFloors int) RequestSet {
	return make(RequestSet, numFloors)
}

func (rs RequestSet) Raise(floor int) {
	rs[floor] = true
}

func (rs RequestSet) Clear(floor int) {
	rs[floor] = false
}

func (rs RequestSet) IsSet(floor int) bool {
	return floor >= 0 && floor < len(rs) && rs[floor]
}

func (rs RequestSet) HasAny() bool {
	for _, set := range rs {
		if set {
			return true
		}
	}
	return false
}

func (rs RequestSet) Count() (result int) {
	for _, set := range rs {
		if set {
			result++
		}
	}
	return result
}

// Floors lists requested floors in ascending order.
func (rs RequestSet) Floors() []int {
	floors := make([]int, 0, len(rs))
	for floor, set := range rs {
		if set {
			floors = append(floors, floor)
		}
	}
	return floors
}

// Above returns the nearest requested floor strictly above floor.
func (rs RequestSet) Above(floor int) (int, bool) {
	for f := floor + 1; f < len(rs); f++ {
		if rs[f] {
			return f, true
		}
	}
	return -1, false
}

// Below returns the nearest requested floor strictly below floor.
func (rs RequestSet) Below(floor int) (int, bool) {
	for f := min(floor, len(rs)) - 1; f >= 0; f-- {
		if rs[f] {
			return f, true
		}
	}
	return -1, false
}
