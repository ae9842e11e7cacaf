package platform

// Package platform contains OS integration: the default data directory,
// filesystem helpers and opening catalog files in the system file manager or editor.
