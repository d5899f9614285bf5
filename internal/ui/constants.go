package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconLanguage = "🌐"
)

// Layout sizing
const (
	InputMinRows = 10

	WindowWidth  float32 = 700
	WindowHeight float32 = 600
)
