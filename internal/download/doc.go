package download

// Package download implements the core orchestration pipeline around the
// yt-dlp executable. It builds the command line for a job, runs at most one
// downloader process at a time, and relays its merged output to the UI
// through an ordered, non-blocking event queue.
