package playback

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/hajimehoshi/go-mp3"
)

// Engine output format. go-mp3 always decodes to 16-bit stereo, and Google
// Translate TTS always returns 24 kHz audio.
const (
	EngineName         = "engine"
	EngineChannelCount = 2
	EngineSampleRate   = 24000
)

// Engine plays MP3 files through the bundled oto audio context.
// Only one oto context may exist per process, so create Engine once.
type Engine struct {
	otoCtx     *oto.Context
	sampleRate int
	poll       time.Duration
}

// NewEngine opens the audio device; an error means the engine is unusable
func NewEngine(sampleRate int, poll time.Duration) (*Engine, error) {
	otoCtx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: EngineChannelCount,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("audio device unavailable: %w", err)
	}
	<-ready

	return &Engine{
		otoCtx:     otoCtx,
		sampleRate: sampleRate,
		poll:       poll,
	}, nil
}

// Name returns the strategy name
func (e *Engine) Name() string {
	return EngineName
}

// Play decodes and plays path, checking the player every poll interval
func (e *Engine) Play(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPlaybackFailed, err)
	}
	defer f.Close()

	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPlaybackFailed, err)
	}
	if decoder.SampleRate() != e.sampleRate {
		return fmt.Errorf("%w: sample rate %d Hz differs from engine rate %d Hz",
			ErrPlaybackFailed, decoder.SampleRate(), e.sampleRate)
	}

	player := e.otoCtx.NewPlayer(decoder)
	player.Play()

	ticker := time.NewTicker(e.poll)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			player.Pause()
			return ctx.Err()
		case <-ticker.C:
			if err := player.Err(); err != nil {
				return fmt.Errorf("%w: %v", ErrPlaybackFailed, err)
			}
			if !player.IsPlaying() {
				return nil
			}
		}
	}
}
