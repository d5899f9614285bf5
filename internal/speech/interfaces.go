// Package speech turns text into MP3 files through Google Translate TTS.
package speech

import (
	"context"
	"errors"
)

// ErrSynthesisFailed wraps every synthesis failure
var ErrSynthesisFailed = errors.New("failed to convert text to speech")

// Synthesizer writes spoken text as an MP3 file
type Synthesizer interface {
	// Synthesize writes MP3 audio to outputPath. On error nothing usable is
	// left at outputPath and the error matches ErrSynthesisFailed.
	Synthesize(ctx context.Context, text, languageCode, outputPath string) error
}

// Backend fetches audio for one short chunk of text into dir and returns the
// path of the file it wrote.
type Backend interface {
	Fetch(ctx context.Context, text, languageCode, dir, name string) (string, error)
}
