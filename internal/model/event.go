package model

// OutputEvent is a single event relayed from the downloader process to the
// consumer side. Events for a job are delivered in production order:
// zero or more line events followed by exactly one finished event.
type OutputEvent struct {
	// JobID identifies the job this event belongs to
	JobID string

	// Line contains the output text, meaningful only when IsFinished is false
	Line string

	// Err carries the process exit or stream error, if any.
	// Only meaningful when IsFinished is true.
	Err error

	// IsFinished marks the final event of a job's stream
	IsFinished bool
}

// LineEvent creates an output line event for the given job
func LineEvent(jobID, line string) OutputEvent {
	return OutputEvent{JobID: jobID, Line: line}
}

// FinishedEvent creates the terminal event for the given job
func FinishedEvent(jobID string, err error) OutputEvent {
	return OutputEvent{JobID: jobID, Err: err, IsFinished: true}
}
