package elev

import "cabinctl/src/types"

// CabinCmd encapsulates an operation on the cabin.
type CabinCmd struct {
	Exec func(cabin *Cabin)
}

// CabinMgr owns one cabin and serializes its access. Cabins never share a manager.
type CabinMgr struct {
	cmds chan CabinCmd
	done chan struct{}
}

// StartCabinMgr starts the manager goroutine.
func StartCabinMgr(cabin *Cabin) *CabinMgr {
	mgr := &CabinMgr{
		cmds: make(chan CabinCmd),
		done: make(chan struct{}),
	}
	go func() {
		defer close(mgr.done)
		for cmd := range mgr.cmds {
			cmd.Exec(cabin)
		}
	}()
	return mgr
}

// Execute sends a command to the manager and waits for it to run.
func (mgr *CabinMgr) Execute(exec func(cabin *Cabin)) {
	finished := make(chan struct{})
	mgr.cmds <- CabinCmd{
		Exec: func(cabin *Cabin) {
			exec(cabin)
			close(finished)
		},
	}
	<-finished
}

func (mgr *CabinMgr) Tick(ev types.Event) types.Action {
	var action types.Action
	mgr.Execute(func(cabin *Cabin) {
		action = cabin.Tick(ev)
	})
	return action
}

// GetState returns a deep copy of the cabin state.
func (mgr *CabinMgr) GetState() CabinState {
	var state CabinState
	mgr.Execute(func(cabin *Cabin) {
		state = cabin.Snapshot()
	})
	return state
}

func (mgr *CabinMgr) EstimateTicks(floor int) (int, bool) {
	var (
		ticks int
		ok    bool
	)
	mgr.Execute(func(cabin *Cabin) {
		ticks, ok = cabin.EstimateTicks(floor, cabin.EstimateLimit())
	})
	return ticks, ok
}

// Stop ends the manager goroutine. The manager must not be used afterwards.
func (mgr *CabinMgr) Stop() {
	close(mgr.cmds)
	<-mgr.done
}
