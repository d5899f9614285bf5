package controller

import (
	"github.com/ytget/tts-converter/internal/model"
	"github.com/ytget/tts-converter/internal/playback"
)

// View is the form the controller drives. Implementations must accept calls
// from any goroutine.
type View interface {
	SetStatus(text string)
	SetStopEnabled(enabled bool)

	// SetBusy disables Preview, Save and Clear while a worker runs
	SetBusy(busy bool)

	ShowInfo(title, message string)
	ShowError(title, message string)

	// ConfirmPlay asks a yes/no question and reports the answer
	ConfirmPlay(title, message string, answer func(yes bool))

	// ChooseSavePath opens a save dialog prefilled with defaultName. ok is
	// false when the user cancelled. Nothing is left at path by the dialog.
	ChooseSavePath(defaultName string, chosen func(path string, ok bool))

	ClearInput()
}

// Player runs background playback sessions
type Player interface {
	Start(artifact model.AudioArtifact, onFinish func(playback.Result)) *playback.Session
	Stop() bool
}
