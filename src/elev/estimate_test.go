package elev

import (
	"reflect"
	"sync"
	"testing"

	"cabinctl/src/types"
)

func TestEstimateMatchesActualTrip(t *testing.T) {
	for _, target := range []int{0, 1, 2, 7} {
		cabin := NewCabin(testConfig())
		before := cabin.Snapshot()

		estimate, ok := cabin.EstimateTicks(target, cabin.EstimateLimit())
		if !ok {
			t.Fatalf("floor %d: estimate exceeded limit", target)
		}
		if !reflect.DeepEqual(before, cabin.Snapshot()) {
			t.Fatalf("floor %d: estimate mutated the cabin", target)
		}

		ev := types.FloorButton(target)
		actual := 0
		for tick := 1; tick <= 200; tick++ {
			if cabin.Tick(ev) == types.OpenDoor && cabin.state.Floor == target {
				actual = tick
				break
			}
			ev = types.NoEvent
		}
		if estimate != actual {
			t.Errorf("floor %d: estimate %d, actual %d", target, estimate, actual)
		}
	}
}

func TestEstimateTwoFloors(t *testing.T) {
	cabin := NewCabin(testConfig())
	// One tick to start, six to travel, one to open.
	if ticks, ok := cabin.EstimateTicks(2, 100); !ok || ticks != 8 {
		t.Errorf("got %d, %v; want 8, true", ticks, ok)
	}
}

func TestEstimateWithQueuedWork(t *testing.T) {
	cabin := NewCabin(testConfig())
	tickAll(t, cabin, types.FloorButton(5))

	// Continuing up to 5 first, then back down to 1.
	estimate, ok := cabin.EstimateTicks(1, cabin.EstimateLimit())
	if !ok {
		t.Fatal("estimate exceeded limit")
	}
	direct, _ := NewCabin(testConfig()).EstimateTicks(1, 100)
	if estimate <= direct {
		t.Errorf("estimate %d should exceed the direct trip %d", estimate, direct)
	}
}

func TestEstimateLimit(t *testing.T) {
	cabin := NewCabin(testConfig())
	if ticks, ok := cabin.EstimateTicks(9, 5); ok || ticks != 5 {
		t.Errorf("got %d, %v; want 5, false", ticks, ok)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	cabin := NewCabin(testConfig())
	snapshot := cabin.Snapshot()
	snapshot.Requests.Raise(4)
	if cabin.state.Requests.IsSet(4) {
		t.Error("snapshot shares the request set with the cabin")
	}
}

func TestCabinMgr(t *testing.T) {
	mgr := StartCabinMgr(NewCabin(testConfig()))
	defer mgr.Stop()

	if action := mgr.Tick(types.FloorButton(3)); action != types.MoveUp {
		t.Fatalf("got %s, want MoveUp", action)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := mgr.GetState()
			if s.Mode != types.MovingUp || s.Target != 3 {
				t.Errorf("unexpected state: %s", FormatStatus(s))
			}
			if _, ok := mgr.EstimateTicks(3); !ok {
				t.Error("estimate exceeded limit")
			}
		}()
	}
	wg.Wait()

	for i := 0; i < 9; i++ {
		mgr.Tick(types.NoEvent)
	}
	if s := mgr.GetState(); s.Floor != 3 {
		t.Errorf("floor = %d, want 3", s.Floor)
	}
}
