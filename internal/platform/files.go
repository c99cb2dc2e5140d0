package platform

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSWindows = "windows"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Downloader executable constants
const (
	DownloaderName   = "yt-dlp"
	WindowsExeSuffix = ".exe"
	UpdateFlag       = "--update"
)

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// ResolveDownloader locates the yt-dlp executable. A copy placed next to the
// application binary wins; otherwise PATH is searched. A failed resolution is
// fatal at startup, the app must not present its window without a downloader.
func ResolveDownloader() (string, error) {
	if exe, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), downloaderBinaryName())
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	path, err := exec.LookPath(DownloaderName)
	if err != nil {
		return "", fmt.Errorf("yt-dlp was not found next to the application or in PATH: %w", err)
	}
	return path, nil
}

// downloaderBinaryName returns the platform-specific executable name
func downloaderBinaryName() string {
	if runtime.GOOS == OSWindows {
		return DownloaderName + WindowsExeSuffix
	}
	return DownloaderName
}

// RunUpdateProbe runs the downloader's self-update in the background. Output
// and failures are ignored; this is advisory housekeeping at startup and
// takes no part in the job state machine.
func RunUpdateProbe(downloaderPath string) {
	go func() {
		if err := exec.Command(downloaderPath, UpdateFlag).Run(); err != nil {
			log.Printf("Downloader update probe failed: %v", err)
		}
	}()
}
