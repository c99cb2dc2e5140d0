package platform

// Package platform contains OS/platform integration and external tooling glue:
// filesystem helpers, yt-dlp executable resolution, and the startup update probe.
