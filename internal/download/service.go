package download

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os/exec"
	"strings"

	"github.com/CMMingo/Simple-yt-dlp-GUI/internal/model"
)

// ErrAlreadyRunning is returned by Submit while a previous job is still
// active. Concurrent jobs are rejected, never queued.
var ErrAlreadyRunning = errors.New("a download is already running")

// Output scanning limits
const (
	initialScanBufferBytes = 64 * 1024
	maxOutputLineBytes     = 1024 * 1024
)

// scanOutputLines splits the merged stream on LF, CR, or CRLF. yt-dlp
// rewrites its progress line in place with bare carriage returns, so CR must
// end a token for progress updates to reach the UI while the job is running.
func scanOutputLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		advance = i + 1
		if data[i] == '\r' {
			if i+1 < len(data) {
				if data[i+1] == '\n' {
					advance = i + 2
				}
			} else if !atEOF {
				// Need one more byte to tell a bare CR from CRLF
				return 0, nil, nil
			}
		}
		return advance, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Service runs at most one downloader process at a time and relays its
// merged output to the polling consumer.
type Service struct {
	downloaderPath string
	state          runState
	relay          relay
}

// NewService creates a download service bound to the given downloader
// executable path
func NewService(downloaderPath string) *Service {
	return &Service{downloaderPath: downloaderPath}
}

// Submit builds the command line for the request and starts it in the
// background. It returns ErrAlreadyRunning if a job is still active.
func (s *Service) Submit(req model.JobRequest) error {
	if strings.TrimSpace(req.URL) == "" {
		return fmt.Errorf("empty URL for job %s", req.ID)
	}

	return s.launch(req.ID, BuildCommandLine(s.downloaderPath, req))
}

// Drain returns all output events buffered since the previous call, in
// production order, without blocking
func (s *Service) Drain() []model.OutputEvent {
	return s.relay.Drain()
}

// IsRunning reports whether a job is currently active
func (s *Service) IsRunning() bool {
	return s.state.IsRunning()
}

// launch claims the single-flight slot and spawns the process on its own
// goroutine. The state transition happens before the spawn so two
// interleaved starts can never both succeed.
func (s *Service) launch(jobID string, cl model.CommandLine) error {
	if !s.state.TryBegin() {
		return ErrAlreadyRunning
	}

	log.Printf("Starting job %s: %s", jobID, cl)
	go s.run(jobID, cl)
	return nil
}

// run executes the process and pumps its output into the relay. Whatever
// happens to the process or the stream, the job is finalized: the state
// returns to idle before the finished event is pushed, so a consumer that
// observes the finished event never reads a stale running state.
func (s *Service) run(jobID string, cl model.CommandLine) {
	var jobErr error

	defer func() {
		s.state.End()
		s.relay.Push(model.FinishedEvent(jobID, jobErr))
	}()

	cmd := exec.Command(cl.Path, cl.Args...)

	// Merge stderr into stdout so diagnostics arrive in one ordered stream
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		jobErr = fmt.Errorf("failed to open output pipe: %w", err)
		s.relay.Push(model.LineEvent(jobID, jobErr.Error()))
		return
	}
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		jobErr = fmt.Errorf("failed to start downloader: %w", err)
		s.relay.Push(model.LineEvent(jobID, jobErr.Error()))
		return
	}

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, initialScanBufferBytes), maxOutputLineBytes)
	scanner.Split(scanOutputLines)
	for scanner.Scan() {
		s.relay.Push(model.LineEvent(jobID, scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		// Best effort relay: a read error ends the pump early but the
		// process is still reaped below.
		log.Printf("Job %s output stream failed: %v", jobID, err)
		s.relay.Push(model.LineEvent(jobID, fmt.Sprintf("output stream error: %v", err)))
		// Keep draining the pipe so a still-writing process is never
		// blocked on a full buffer and can run to exit
		_, _ = io.Copy(io.Discard, stdout)
	}

	if err := cmd.Wait(); err != nil {
		jobErr = err
		s.relay.Push(model.LineEvent(jobID, fmt.Sprintf("downloader exited with error: %v", err)))
	}

	log.Printf("Job %s finished", jobID)
}
