package model

import (
	"strings"

	"github.com/google/uuid"
)

// JobKind selects what the downloader is asked to produce
type JobKind string

const (
	// JobKindAudio extracts the audio track and converts it to MP3
	JobKindAudio JobKind = "audio"

	// JobKindVideo downloads video, or lists formats when none is chosen
	JobKindVideo JobKind = "video"
)

// String returns the string representation of JobKind
func (jk JobKind) String() string {
	return string(jk)
}

// JobRequest describes a single downloader invocation requested by the user.
// It is built fresh for every start action and never mutated afterwards.
type JobRequest struct {
	ID         string  // unique job identifier
	Kind       JobKind // audio or video
	URL        string  // source URL, must be non-empty
	Format     string  // explicit video format code, empty means "list formats"
	OutputName string  // optional output basename, empty means "use source title"
	DestDir    string  // destination directory for downloaded files
}

// NewJobRequest creates a job request with a fresh unique ID
func NewJobRequest(kind JobKind, url, format, outputName, destDir string) JobRequest {
	return JobRequest{
		ID:         uuid.NewString(),
		Kind:       kind,
		URL:        strings.TrimSpace(url),
		Format:     format,
		OutputName: outputName,
		DestDir:    destDir,
	}
}

// CommandLine is the executable path plus argument vector derived from a
// JobRequest. It is handed verbatim to the operating system.
type CommandLine struct {
	Path string
	Args []string
}

// String returns the command line as a single printable string
func (cl CommandLine) String() string {
	if len(cl.Args) == 0 {
		return cl.Path
	}
	return cl.Path + " " + strings.Join(cl.Args, " ")
}
