package ui

import (
	"errors"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/CMMingo/Simple-yt-dlp-GUI/internal/config"
	"github.com/CMMingo/Simple-yt-dlp-GUI/internal/download"
	"github.com/CMMingo/Simple-yt-dlp-GUI/internal/model"
	"github.com/CMMingo/Simple-yt-dlp-GUI/internal/platform"
)

// UI constants
const (
	// DrainInterval is the cadence at which the output relay is polled
	DrainInterval = 100 * time.Millisecond
)

// Widget labels
const (
	LabelAudio      = "Audio (MP3)"
	LabelVideo      = "Video (MP4)"
	LabelThemeDark  = "Dark"
	LabelThemeLight = "Light"
)

// Output markers
const (
	MarkerStarted        = "--- Download started ---"
	MarkerListingFormats = "Listing formats..."
	MarkerFinished       = "--- Finished ---"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	orchestrator download.Orchestrator
	settings     *config.Settings

	kindRadio     *widget.RadioGroup
	formatEntry   *widget.Entry
	formatRow     *fyne.Container
	urlEntry      *widget.Entry
	filenameEntry *widget.Entry
	folderEntry   *widget.Entry
	progress      *widget.ProgressBarInfinite
	output        *widget.Entry
	downloadBtn   *widget.Button

	// outputText accumulates the log; touched only on the UI thread
	outputText strings.Builder

	stop chan struct{}
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, orchestrator download.Orchestrator, settings *config.Settings) *RootUI {
	ui := &RootUI{
		window:       window,
		app:          app,
		orchestrator: orchestrator,
		settings:     settings,
		stop:         make(chan struct{}),
	}

	ui.setupUI()
	ui.validate()

	// Poll the relay for process output on a fixed cadence. The loop stops
	// when the window closes; the downloader process itself is never joined,
	// it runs to its own completion.
	go ui.drainLoop()
	window.SetOnClosed(func() { close(ui.stop) })

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	tabs := container.NewAppTabs(
		container.NewTabItem("Download", ui.buildDownloadTab()),
		container.NewTabItem("Settings", ui.buildSettingsTab()),
	)

	ui.window.SetContent(tabs)
}

// buildDownloadTab assembles the main download form
func (ui *RootUI) buildDownloadTab() fyne.CanvasObject {
	ui.kindRadio = widget.NewRadioGroup([]string{LabelAudio, LabelVideo}, func(string) {
		ui.validate()
	})
	ui.kindRadio.Horizontal = true

	ui.formatEntry = widget.NewEntry()
	ui.formatEntry.SetPlaceHolder("e.g. 137+140 (leave empty to list formats)")
	ui.formatRow = container.NewBorder(nil, nil, widget.NewLabel("Format"), nil, ui.formatEntry)
	ui.formatRow.Hide()

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder("https://...")
	ui.urlEntry.OnChanged = func(string) { ui.validate() }
	ui.urlEntry.OnSubmitted = func(string) { ui.onDownloadClick() }

	ui.filenameEntry = widget.NewEntry()
	ui.filenameEntry.SetPlaceHolder("Leave empty to use the source title")

	ui.folderEntry = widget.NewEntry()
	ui.folderEntry.SetText(ui.settings.GetDownloadDirectory())
	ui.folderEntry.OnSubmitted = func(dir string) { ui.settings.SetDownloadDirectory(dir) }
	browseBtn := widget.NewButton("Browse", ui.onBrowseFolder)
	folderRow := container.NewBorder(nil, nil, widget.NewLabel("Download folder"), browseBtn, ui.folderEntry)

	ui.progress = widget.NewProgressBarInfinite()
	ui.progress.Stop()

	ui.output = widget.NewMultiLineEntry()
	ui.output.Wrapping = fyne.TextWrapWord

	ui.downloadBtn = widget.NewButton("Download", ui.onDownloadClick)

	form := container.NewVBox(
		widget.NewLabel("Download type"),
		ui.kindRadio,
		ui.formatRow,
		widget.NewLabel("URL"),
		ui.urlEntry,
		widget.NewLabel("Output filename (optional)"),
		ui.filenameEntry,
		folderRow,
		ui.progress,
		ui.downloadBtn,
		widget.NewLabel("Output"),
	)

	// Select the default kind only after every widget the change callback
	// touches has been created
	ui.kindRadio.SetSelected(LabelAudio)

	return container.NewBorder(form, nil, nil, nil, container.NewVScroll(ui.output))
}

// buildSettingsTab assembles the settings form
func (ui *RootUI) buildSettingsTab() fyne.CanvasObject {
	themeRadio := widget.NewRadioGroup([]string{LabelThemeDark, LabelThemeLight}, func(selected string) {
		theme := config.ThemeDark
		if selected == LabelThemeLight {
			theme = config.ThemeLight
		}
		ui.settings.SetTheme(theme)
		ui.app.Settings().SetTheme(NewAppTheme(theme))
	})

	current := LabelThemeDark
	if ui.settings.GetTheme() == config.ThemeLight {
		current = LabelThemeLight
	}
	themeRadio.SetSelected(current)

	return container.NewVBox(
		widget.NewLabel("Theme"),
		themeRadio,
	)
}

// selectedKind maps the radio selection to a job kind
func (ui *RootUI) selectedKind() model.JobKind {
	if ui.kindRadio.Selected == LabelVideo {
		return model.JobKindVideo
	}
	return model.JobKindAudio
}

// validate gates the download button and toggles the format row. The button
// is enabled only when a URL is present and no job is running.
func (ui *RootUI) validate() {
	if ui.selectedKind() == model.JobKindVideo {
		ui.formatRow.Show()
	} else {
		ui.formatRow.Hide()
	}

	if ui.orchestrator.IsRunning() || strings.TrimSpace(ui.urlEntry.Text) == "" {
		ui.downloadBtn.Disable()
		return
	}
	ui.downloadBtn.Enable()
}

// onBrowseFolder opens the native folder picker
func (ui *RootUI) onBrowseFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.folderEntry.SetText(uri.Path())
		ui.settings.SetDownloadDirectory(uri.Path())
	}, ui.window)
}

// onDownloadClick handles the download button click
func (ui *RootUI) onDownloadClick() {
	url := strings.TrimSpace(ui.urlEntry.Text)
	if url == "" {
		return
	}

	kind := ui.selectedKind()
	req := model.NewJobRequest(kind, url, ui.formatEntry.Text, ui.filenameEntry.Text, ui.folderEntry.Text)

	// Make sure the destination exists before yt-dlp writes into it
	if err := platform.CreateDirectoryIfNotExists(req.DestDir); err != nil {
		ui.appendLine("could not create download folder: " + err.Error())
	}

	if err := ui.orchestrator.Submit(req); err != nil {
		if errors.Is(err, download.ErrAlreadyRunning) {
			dialog.ShowInformation("Busy", "A download is already running. Wait for it to finish.", ui.window)
		} else {
			dialog.ShowError(err, ui.window)
		}
		return
	}

	// Log the start only for an accepted job
	ui.appendLine(MarkerStarted)
	if kind == model.JobKindVideo && strings.TrimSpace(req.Format) == "" {
		ui.appendLine(MarkerListingFormats)
	}

	ui.progress.Start()
	ui.validate()
}

// drainLoop forwards relay events to the UI thread until the window closes
func (ui *RootUI) drainLoop() {
	ticker := time.NewTicker(DrainInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ui.stop:
			return
		case <-ticker.C:
			events := ui.orchestrator.Drain()
			if len(events) == 0 {
				continue
			}
			fyne.Do(func() {
				ui.applyEvents(events)
			})
		}
	}
}

// applyEvents renders a drained batch. Must run on the UI thread.
func (ui *RootUI) applyEvents(events []model.OutputEvent) {
	for _, ev := range events {
		if ev.IsFinished {
			// A stale finished event may arrive after the next job already
			// started; only stop the indicator when nothing is running
			if !ui.orchestrator.IsRunning() {
				ui.progress.Stop()
			}
			ui.appendLine(MarkerFinished)
			ui.validate()
			continue
		}
		ui.appendLine(ev.Line)
	}
}

// appendLine adds a line to the output log and keeps the view pinned to the
// end. Must run on the UI thread.
func (ui *RootUI) appendLine(line string) {
	ui.outputText.WriteString(line)
	ui.outputText.WriteString("\n")
	ui.output.SetText(ui.outputText.String())
	ui.output.CursorRow = len(strings.Split(ui.output.Text, "\n")) - 1
	ui.output.Refresh()
}
