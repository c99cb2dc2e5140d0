package download

import (
	"sync"

	"github.com/CMMingo/Simple-yt-dlp-GUI/internal/model"
)

// relay is the ordered, unbounded queue carrying output events from the
// runner goroutine to the polling consumer. Push never blocks the producer
// and Drain never blocks the consumer; the UI update loop must not wait on
// the external process.
type relay struct {
	mu     sync.Mutex
	events []model.OutputEvent
}

// Push appends an event to the queue
func (r *relay) Push(ev model.OutputEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// Drain returns all currently buffered events in production order and
// empties the queue. It returns nil when nothing is buffered.
func (r *relay) Drain() []model.OutputEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.events) == 0 {
		return nil
	}
	out := r.events
	r.events = nil
	return out
}
