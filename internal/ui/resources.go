package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	AppIcon = "tts-converter.png"
)

// LoadLogoResource loads the window icon from the working directory and
// falls back to the theme's media icon.
func LoadLogoResource() fyne.Resource {
	if res, err := fyne.LoadResourceFromPath(AppIcon); err == nil {
		return res
	}
	return theme.MediaMusicIcon()
}
