package panel

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"cabinctl/src/types"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		ev      types.Event
		wantErr error
	}{
		{types.NoEvent, nil},
		{types.DoorOpenCmd(), nil},
		{types.DoorCloseCmd(), nil},
		{types.CallButton(0), nil},
		{types.FloorButton(9), nil},
		{types.CallButton(10), ErrFloorOutOfRange},
		{types.FloorButton(-1), ErrFloorOutOfRange},
		{types.Event{Kind: types.EventKind(42)}, ErrUnknownEvent},
	}
	for _, tt := range tests {
		err := Validate(tt.ev, 10)
		if !errors.Is(err, tt.wantErr) || (tt.wantErr == nil && err != nil) {
			t.Errorf("Validate(%s) = %v, want %v", tt.ev, err, tt.wantErr)
		}
	}
}

func TestPanelQueuesInOrder(t *testing.T) {
	p := New(10, 4)
	for _, ev := range []types.Event{types.CallButton(3), types.DoorOpenCmd(), types.FloorButton(1)} {
		if err := p.Press(ev); err != nil {
			t.Fatal(err)
		}
	}
	if err := p.Press(types.FloorButton(12)); !errors.Is(err, ErrFloorOutOfRange) {
		t.Errorf("got %v, want ErrFloorOutOfRange", err)
	}
	if p.Pending() != 3 {
		t.Errorf("Pending = %d, want 3", p.Pending())
	}

	want := []types.Event{types.CallButton(3), types.DoorOpenCmd(), types.FloorButton(1), types.NoEvent}
	for i, w := range want {
		if got := p.Next(); got != w {
			t.Errorf("Next #%d = %s, want %s", i, got, w)
		}
	}
	if got := p.History(); !reflect.DeepEqual(got, []uint{3, 1}) {
		t.Errorf("History = %v, want [3 1]", got)
	}
}

func TestPanelFull(t *testing.T) {
	p := New(10, 1)
	if err := p.Press(types.CallButton(2)); err != nil {
		t.Fatal(err)
	}
	if err := p.Press(types.CallButton(4)); !errors.Is(err, ErrPanelFull) {
		t.Errorf("got %v, want ErrPanelFull", err)
	}
	if got := p.History(); !reflect.DeepEqual(got, []uint{2}) {
		t.Errorf("dropped press recorded in history: %v", got)
	}
}

func TestPanelConcurrentPress(t *testing.T) {
	p := New(10, 100)
	var wg sync.WaitGroup
	for floor := 0; floor < 10; floor++ {
		wg.Add(1)
		go func(floor int) {
			defer wg.Done()
			if err := p.Press(types.FloorButton(floor)); err != nil {
				t.Error(err)
			}
		}(floor)
	}
	wg.Wait()
	if len(p.History()) != 10 || p.Pending() != 10 {
		t.Errorf("history %v, pending %d", p.History(), p.Pending())
	}
}
