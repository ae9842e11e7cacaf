package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "wondertrack.png"
)

// LoadLogoResource loads the logo from the working directory. A missing logo
// is not fatal; the header falls back to text only.
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
