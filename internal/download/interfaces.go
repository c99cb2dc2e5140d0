package download

import (
	"github.com/CMMingo/Simple-yt-dlp-GUI/internal/model"
)

// Orchestrator defines the interface the UI drives. Submit rejects a second
// concurrent job instead of queuing it; Drain is meant to be polled from the
// UI update cycle and never blocks.
type Orchestrator interface {
	Submit(req model.JobRequest) error
	Drain() []model.OutputEvent
	IsRunning() bool
}
