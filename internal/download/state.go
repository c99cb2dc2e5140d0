package download

import "sync"

// runState is the single-flight guard for downloader invocations. It is
// written by the runner goroutine and read by the polling UI side.
type runState struct {
	mu      sync.Mutex
	running bool
}

// TryBegin flips the state from idle to running. It returns false without
// changing anything if a job is already running.
func (rs *runState) TryBegin() bool {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	if rs.running {
		return false
	}
	rs.running = true
	return true
}

// End returns the state to idle. Calling it while already idle is a no-op.
func (rs *runState) End() {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.running = false
}

// IsRunning reports whether a job is currently active
func (rs *runState) IsRunning() bool {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.running
}
