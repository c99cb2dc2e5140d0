package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires user interactions to the download orchestrator,
// polls the output relay on a fixed interval, and renders the settings tab.
