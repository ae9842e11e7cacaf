package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It applies catalog snapshots produced by the catalog service to widgets and wires
// the header, sidebar, product management and settings dialogs together through
// constructor injection. All UI strings are localized via Localization.
