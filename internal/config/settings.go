package config

import (
	"os"

	"fyne.io/fyne/v2"
)

// Theme identifies the UI color scheme
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Settings keys for Fyne preferences
const (
	KeyTheme       = "app_theme"
	KeyDownloadDir = "download_directory"
)

// Default values
const (
	DefaultTheme = ThemeDark
)

// Settings manages application configuration. It is backed by Fyne
// preferences, so missing or corrupt stored values silently fall back to the
// built-in defaults.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetTheme returns the configured theme, defaulting to dark
func (s *Settings) GetTheme() Theme {
	theme := Theme(s.app.Preferences().String(KeyTheme))
	if theme != ThemeDark && theme != ThemeLight {
		return DefaultTheme
	}
	return theme
}

// SetTheme sets the UI theme
func (s *Settings) SetTheme(theme Theme) {
	s.app.Preferences().SetString(KeyTheme, string(theme))
}

// GetThemeOptions returns the available theme options
func (s *Settings) GetThemeOptions() []Theme {
	return []Theme{ThemeDark, ThemeLight}
}

// GetDownloadDirectory returns the configured download directory. When
// nothing is stored yet it falls back to the process working directory, then
// to the user home directory.
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir != "" {
		return dir
	}

	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}
