package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/CMMingo/Simple-yt-dlp-GUI/internal/config"
)

// AppTheme pins the UI to the user's chosen light or dark variant instead of
// following the system preference
type AppTheme struct {
	variant fyne.ThemeVariant
}

// NewAppTheme creates a theme for the configured variant
func NewAppTheme(t config.Theme) fyne.Theme {
	variant := theme.VariantDark
	if t == config.ThemeLight {
		variant = theme.VariantLight
	}
	return &AppTheme{variant: variant}
}

// Color returns theme colors, forcing the configured variant
func (t *AppTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, t.variant)
}

// Font returns theme fonts
func (t *AppTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *AppTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *AppTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
