package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// PlaybackEngine selects how audio is played
type PlaybackEngine string

const (
	// EngineAuto uses the bundled engine when the audio device initializes
	EngineAuto PlaybackEngine = "auto"
	// EngineBundled always uses the bundled audio engine
	EngineBundled PlaybackEngine = "engine"
	// EngineDelegate hands files to the OS default application
	EngineDelegate PlaybackEngine = "delegate"
)

// Preference keys. The app only reads them; the form itself is never stored.
const (
	KeyPlaybackEngine    = "playback.engine"
	KeyDelegateDelayMS   = "playback.delegate_delay_ms"
	KeyPollIntervalMS    = "playback.poll_interval_ms"
	KeyTranslateTries    = "translate.tries"
	KeySpeechChunkLen    = "speech.chunk_length"
	KeyLogLevel          = "log.level"
	KeyLogFormat         = "log.format"
	KeyInterfaceLanguage = "ui.language"
)

// Default values
const (
	DefaultPlaybackEngine = EngineAuto
	DefaultDelegateDelay  = 3 * time.Second
	DefaultPollInterval   = 50 * time.Millisecond
	DefaultTranslateTries = 2
	DefaultChunkLength    = 100
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "console"
	DefaultUILanguage     = "system"
)

// Settings exposes startup configuration backed by Fyne preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings reader
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetPlaybackEngine returns the configured playback engine choice
func (s *Settings) GetPlaybackEngine() PlaybackEngine {
	value := PlaybackEngine(s.app.Preferences().StringWithFallback(KeyPlaybackEngine, string(DefaultPlaybackEngine)))
	switch value {
	case EngineAuto, EngineBundled, EngineDelegate:
		return value
	default:
		return DefaultPlaybackEngine
	}
}

// GetDelegateDelay returns how long the delegate player is assumed to play
func (s *Settings) GetDelegateDelay() time.Duration {
	ms := s.app.Preferences().IntWithFallback(KeyDelegateDelayMS, int(DefaultDelegateDelay/time.Millisecond))
	return clampDuration(time.Duration(ms)*time.Millisecond, 500*time.Millisecond, time.Minute, DefaultDelegateDelay)
}

// GetPollInterval returns the engine busy-check interval
func (s *Settings) GetPollInterval() time.Duration {
	ms := s.app.Preferences().IntWithFallback(KeyPollIntervalMS, int(DefaultPollInterval/time.Millisecond))
	return clampDuration(time.Duration(ms)*time.Millisecond, 10*time.Millisecond, time.Second, DefaultPollInterval)
}

// GetTranslateTries returns the number of translation attempts
func (s *Settings) GetTranslateTries() int {
	return clampInt(s.app.Preferences().IntWithFallback(KeyTranslateTries, DefaultTranslateTries), 1, 5)
}

// GetSpeechChunkLength returns the maximum characters per TTS request
func (s *Settings) GetSpeechChunkLength() int {
	return clampInt(s.app.Preferences().IntWithFallback(KeySpeechChunkLen, DefaultChunkLength), 20, 200)
}

// GetLogLevel returns the configured log level
func (s *Settings) GetLogLevel() string {
	return s.app.Preferences().StringWithFallback(KeyLogLevel, DefaultLogLevel)
}

// GetLogFormat returns console or json
func (s *Settings) GetLogFormat() string {
	if s.app.Preferences().StringWithFallback(KeyLogFormat, DefaultLogFormat) == "json" {
		return "json"
	}
	return DefaultLogFormat
}

// GetInterfaceLanguage returns the initial UI language
func (s *Settings) GetInterfaceLanguage() string {
	return s.app.Preferences().StringWithFallback(KeyInterfaceLanguage, DefaultUILanguage)
}

func clampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func clampDuration(value, min, max, fallback time.Duration) time.Duration {
	if value <= 0 {
		return fallback
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
