package singleton

import (
	"sort"
	"sync"
)

// The process-exit chain. Go offers no atexit, so hooks registered here run
// when the program calls RunExitHooks — from the end of main, a test, or a
// signal handler.
var (
	exitMu    sync.Mutex
	exitChain []func()
	trackers  []tracker
)

// tracker pairs a destruction callback with its longevity.
type tracker struct {
	longevity uint
	destroy   func()
}

// OnExit registers fn with the process-exit chain. Hooks run in reverse
// registration order.
func OnExit(fn func()) {
	exitMu.Lock()
	exitChain = append(exitChain, fn)
	exitMu.Unlock()
}

// SetLongevity registers destroy to run during the exit sequence, ordered
// by longevity. Trackers are kept stably sorted by ascending longevity and
// drained from the tail, so of the registered callbacks the one with the
// highest longevity runs first; equal longevities drain in reverse
// registration order.
func SetLongevity(longevity uint, destroy func()) {
	exitMu.Lock()
	i := sort.Search(len(trackers), func(i int) bool {
		return trackers[i].longevity > longevity
	})
	trackers = append(trackers, tracker{})
	copy(trackers[i+1:], trackers[i:])
	trackers[i] = tracker{longevity: longevity, destroy: destroy}
	exitChain = append(exitChain, popTracker)
	exitMu.Unlock()
}

// popTracker drains one tracker from the tail of the longevity order.
func popTracker() {
	exitMu.Lock()
	n := len(trackers)
	if n == 0 {
		exitMu.Unlock()
		return
	}
	t := trackers[n-1]
	trackers = trackers[:n-1]
	exitMu.Unlock()
	t.destroy()
}

// RunExitHooks drains the exit chain, most recent registration first. Each
// hook runs once; hooks registered while draining are picked up in the same
// pass. Safe to call more than once.
func RunExitHooks() {
	for {
		exitMu.Lock()
		n := len(exitChain)
		if n == 0 {
			exitMu.Unlock()
			return
		}
		fn := exitChain[n-1]
		exitChain = exitChain[:n-1]
		exitMu.Unlock()
		fn()
	}
}
