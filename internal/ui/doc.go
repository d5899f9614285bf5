package ui

// Package ui contains the Fyne-based desktop form for the converter. RootUI
// owns every widget and implements controller.View; calls arriving from
// worker or playback goroutines are marshalled onto the UI goroutine with
// fyne.Do. All UI strings come from i18n.Localization.
