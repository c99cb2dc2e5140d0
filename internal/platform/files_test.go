package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "nested", "downloads")

	if err := CreateDirectoryIfNotExists(target); err != nil {
		t.Fatalf("Expected no error creating nested directory, got %v", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("Expected directory to exist, got %v", err)
	}
	if !info.IsDir() {
		t.Error("Expected a directory")
	}

	// Calling again on an existing directory is a no-op
	if err := CreateDirectoryIfNotExists(target); err != nil {
		t.Errorf("Expected no error for existing directory, got %v", err)
	}
}

func TestDownloaderBinaryName(t *testing.T) {
	name := downloaderBinaryName()

	if !strings.HasPrefix(name, DownloaderName) {
		t.Errorf("Expected binary name to start with %s, got %s", DownloaderName, name)
	}

	if runtime.GOOS == OSWindows {
		if !strings.HasSuffix(name, WindowsExeSuffix) {
			t.Errorf("Expected %s suffix on windows, got %s", WindowsExeSuffix, name)
		}
	} else if name != DownloaderName {
		t.Errorf("Expected plain %s outside windows, got %s", DownloaderName, name)
	}
}
