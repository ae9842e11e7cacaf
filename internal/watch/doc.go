package watch

// Package watch triggers catalog refreshes when the data files change on disk
