package download

import (
	"sync"
	"testing"
)

func TestRunState_SingleFlight(t *testing.T) {
	var rs runState

	if rs.IsRunning() {
		t.Error("New state should be idle")
	}

	if !rs.TryBegin() {
		t.Fatal("First TryBegin should succeed")
	}

	if !rs.IsRunning() {
		t.Error("State should report running after TryBegin")
	}

	// Second attempt must be rejected without altering the state
	if rs.TryBegin() {
		t.Error("Second TryBegin without End should fail")
	}

	if !rs.IsRunning() {
		t.Error("Rejected TryBegin must not alter the running state")
	}

	rs.End()
	if rs.IsRunning() {
		t.Error("State should be idle after End")
	}

	if !rs.TryBegin() {
		t.Error("TryBegin should succeed again after End")
	}
}

func TestRunState_EndIsIdempotent(t *testing.T) {
	var rs runState

	rs.End()
	rs.End()

	if rs.IsRunning() {
		t.Error("State should remain idle after redundant End calls")
	}

	if !rs.TryBegin() {
		t.Error("TryBegin should succeed after redundant End calls")
	}
}

func TestRunState_ConcurrentBegin(t *testing.T) {
	var rs runState

	const attempts = 32
	var wg sync.WaitGroup
	results := make(chan bool, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- rs.TryBegin()
		}()
	}
	wg.Wait()
	close(results)

	won := 0
	for ok := range results {
		if ok {
			won++
		}
	}

	if won != 1 {
		t.Errorf("Expected exactly one TryBegin to win, got %d", won)
	}
}
