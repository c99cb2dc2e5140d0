package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"

	"github.com/CMMingo/Simple-yt-dlp-GUI/internal/config"
	"github.com/CMMingo/Simple-yt-dlp-GUI/internal/download"
	"github.com/CMMingo/Simple-yt-dlp-GUI/internal/platform"
	"github.com/CMMingo/Simple-yt-dlp-GUI/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.cmmingo.simple-yt-dlp-gui"
	AppName = "yt-dlp GUI"

	WindowWidth  = 800
	WindowHeight = 600
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply the persisted theme
	settings := config.NewSettings(myApp)
	myApp.Settings().SetTheme(ui.NewAppTheme(settings.GetTheme()))

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// A missing downloader is fatal: report and exit, never show the form
	downloaderPath, err := platform.ResolveDownloader()
	if err != nil {
		errDialog := dialog.NewError(err, myWindow)
		errDialog.SetOnClosed(myApp.Quit)
		errDialog.Show()
		myWindow.ShowAndRun()
		return
	}

	// Best-effort self-update, output and failure ignored
	platform.RunUpdateProbe(downloaderPath)

	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		fmt.Printf("failed to ensure downloads dir: %v\n", err)
	}

	// Initialize services
	downloadSvc := download.NewService(downloaderPath)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, downloadSvc, settings)

	// Show and run
	myWindow.ShowAndRun()
}
