package download

import (
	"path/filepath"
	"strings"

	"github.com/CMMingo/Simple-yt-dlp-GUI/internal/model"
)

// yt-dlp argument constants
const (
	FlagExtractAudio      = "-x"
	FlagAudioFormat       = "--audio-format"
	FlagListFormats       = "-F"
	FlagFormat            = "-f"
	FlagMergeOutputFormat = "--merge-output-format"
	FlagOutput            = "-o"

	AudioFormatMP3  = "mp3"
	MergedContainer = "mp4"
)

// Output template constants
const (
	TitlePlaceholder  = "%(title)s"
	ExtensionTemplate = ".%(ext)s"
)

// BuildCommandLine derives the downloader invocation for a job request.
// It is a pure function: the same request always yields the same command.
//
// Selection order:
//  1. audio jobs extract MP3 into the output template
//  2. video jobs without a format code only list available formats
//  3. video jobs with a format code download and merge into MP4
func BuildCommandLine(exePath string, req model.JobRequest) model.CommandLine {
	if req.Kind == model.JobKindAudio {
		return model.CommandLine{
			Path: exePath,
			Args: []string{
				FlagExtractAudio,
				FlagAudioFormat, AudioFormatMP3,
				FlagOutput, OutputTemplate(req.DestDir, req.OutputName),
				req.URL,
			},
		}
	}

	format := strings.TrimSpace(req.Format)
	if format == "" {
		// Probe invocation: list formats, download nothing. The user picks a
		// format code from the listing and starts again.
		return model.CommandLine{
			Path: exePath,
			Args: []string{FlagListFormats, req.URL},
		}
	}

	return model.CommandLine{
		Path: exePath,
		Args: []string{
			FlagFormat, format,
			FlagMergeOutputFormat, MergedContainer,
			FlagOutput, OutputTemplate(req.DestDir, req.OutputName),
			req.URL,
		},
	}
}

// OutputTemplate builds the yt-dlp output template for a destination
// directory and optional basename. A blank basename defers to the source
// title placeholder.
func OutputTemplate(destDir, outputName string) string {
	base := strings.TrimSpace(outputName)
	if base == "" {
		base = TitlePlaceholder
	}
	return filepath.Join(destDir, base+ExtensionTemplate)
}
