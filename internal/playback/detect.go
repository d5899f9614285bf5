package playback

import (
	"time"

	"go.uber.org/zap"

	"github.com/ytget/tts-converter/internal/config"
)

// Options drives strategy selection at startup
type Options struct {
	Engine        config.PlaybackEngine
	PollInterval  time.Duration
	DelegateDelay time.Duration
	Opener        Opener
}

// engineFactory is swapped in tests, which have no audio device
var engineFactory = func(sampleRate int, poll time.Duration) (Strategy, error) {
	return NewEngine(sampleRate, poll)
}

// Select picks the playback strategy once. The bundled engine wins unless
// the delegate was requested or the audio device fails to open.
func Select(opts Options, logger *zap.Logger) Strategy {
	if logger == nil {
		logger = zap.NewNop()
	}

	delegate := NewDelegate(opts.Opener, opts.DelegateDelay)
	if opts.Engine == config.EngineDelegate {
		logger.Info("playback strategy selected", zap.String("strategy", DelegateName), zap.String("reason", "configured"))
		return delegate
	}

	engine, err := engineFactory(EngineSampleRate, opts.PollInterval)
	if err != nil {
		logger.Warn("audio engine unavailable, falling back to OS player",
			zap.String("requested", string(opts.Engine)),
			zap.Error(err))
		return delegate
	}

	logger.Info("playback strategy selected",
		zap.String("strategy", engine.Name()),
		zap.Int("sample_rate", EngineSampleRate))
	return engine
}
