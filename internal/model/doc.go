package model

// Package model defines domain data structures used across the app: job
// requests, the command line derived from them, and the output events relayed
// from the downloader process to the UI. Structures are immutable once built.
