package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestTheme(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	theme := settings.GetTheme()
	if theme != DefaultTheme {
		t.Errorf("Expected default theme %s, got %s", DefaultTheme, theme)
	}

	// Test setting custom value
	settings.SetTheme(ThemeLight)

	retrievedTheme := settings.GetTheme()
	if retrievedTheme != ThemeLight {
		t.Errorf("Expected theme %s, got %s", ThemeLight, retrievedTheme)
	}
}

func TestTheme_InvalidStoredValueFallsBack(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// A corrupt stored value must silently fall back to the default
	app.Preferences().SetString(KeyTheme, "neon")

	if theme := settings.GetTheme(); theme != DefaultTheme {
		t.Errorf("Expected fallback to %s for invalid stored theme, got %s", DefaultTheme, theme)
	}
}

func TestDownloadDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetDownloadDirectory()
	if dir == "" {
		t.Error("Download directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/downloads"
	settings.SetDownloadDirectory(customDir)

	retrievedDir := settings.GetDownloadDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected download directory %s, got %s", customDir, retrievedDir)
	}
}

func TestGetThemeOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetThemeOptions()
	expectedOptions := []Theme{ThemeDark, ThemeLight}

	if len(options) != len(expectedOptions) {
		t.Fatalf("Expected %d theme options, got %d", len(expectedOptions), len(options))
	}

	for i, expected := range expectedOptions {
		if options[i] != expected {
			t.Errorf("Theme option %d: expected %s, got %s", i, expected, options[i])
		}
	}
}
