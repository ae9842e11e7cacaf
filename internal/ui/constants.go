package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconRefresh  = "⟳"
	IconWarning  = "⚠"
	IconProducts = "🧇"
	IconOrders   = "🧾"
	IconSales    = "💵"
	IconAnalysis = "📈"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing
const (
	// Card internals
	CardCornerRadius float32 = 8
	CardMinHeight    float32 = 80

	// Dialogs
	ManageDialogWidth    float32 = 640
	ManageDialogHeight   float32 = 520
	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 420

	// Skipped lines listed under the status bar before collapsing
	MaxListedIssues = 5
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 80
	ToastMargin   float32 = 20
	ToastAutoHide         = 3 * time.Second
)

// Width changes smaller than this are ignored to avoid relayout loops on scrollbar jitter
const WidthChangeThreshold float32 = 1
