package speech

import (
	"context"
	"fmt"

	htgotts "github.com/hegedustibor/htgo-tts"
)

// HTGOBackend fetches audio from Google Translate TTS using htgo-tts.
// Speech is always requested at normal speed.
type HTGOBackend struct{}

// NewHTGOBackend returns the production backend
func NewHTGOBackend() *HTGOBackend {
	return &HTGOBackend{}
}

// Fetch writes dir/name.mp3. htgo-tts has no context support; the request
// is skipped when ctx is already done.
func (b *HTGOBackend) Fetch(ctx context.Context, text, languageCode, dir, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	speech := htgotts.Speech{Folder: dir, Language: languageCode}
	path, err := speech.CreateSpeechFile(text, name)
	if err != nil {
		return "", fmt.Errorf("google tts request failed: %w", err)
	}
	return path, nil
}
