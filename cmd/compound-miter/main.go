// Compound Miter Calculator — table saw setup for multi-sided vessels
//
// A cross-platform desktop application that computes blade tilt and miter
// gauge angles for tapered polygonal vessels, with stock sizing, capacity,
// and material estimates.
//
// Build:
//   go build -o compound-miter ./cmd/compound-miter
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o compound-miter.exe ./cmd/compound-miter
//   GOOS=darwin  GOARCH=amd64 go build -o compound-miter-darwin ./cmd/compound-miter
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/yeutterg/compound-miter-calculator/internal/ui"
)

func main() {
	application := app.NewWithID("com.yeutterg.compound-miter-calculator")
	application.Settings().SetTheme(ui.NewMiterTheme())

	window := application.NewWindow("Compound Miter Calculator")

	appUI := ui.NewApp(window)
	appUI.SetupMenus() // Setup the native menu bar
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1000, 700))
	window.CenterOnScreen()
	window.ShowAndRun()
}
