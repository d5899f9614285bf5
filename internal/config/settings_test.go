package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDefaults(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetPlaybackEngine() != DefaultPlaybackEngine {
		t.Errorf("Expected default engine %s, got %s", DefaultPlaybackEngine, settings.GetPlaybackEngine())
	}
	if settings.GetDelegateDelay() != DefaultDelegateDelay {
		t.Errorf("Expected default delegate delay %v, got %v", DefaultDelegateDelay, settings.GetDelegateDelay())
	}
	if settings.GetPollInterval() != DefaultPollInterval {
		t.Errorf("Expected default poll interval %v, got %v", DefaultPollInterval, settings.GetPollInterval())
	}
	if settings.GetTranslateTries() != DefaultTranslateTries {
		t.Errorf("Expected default tries %d, got %d", DefaultTranslateTries, settings.GetTranslateTries())
	}
	if settings.GetSpeechChunkLength() != DefaultChunkLength {
		t.Errorf("Expected default chunk length %d, got %d", DefaultChunkLength, settings.GetSpeechChunkLength())
	}
	if settings.GetLogLevel() != DefaultLogLevel {
		t.Errorf("Expected default log level %s, got %s", DefaultLogLevel, settings.GetLogLevel())
	}
	if settings.GetLogFormat() != DefaultLogFormat {
		t.Errorf("Expected default log format %s, got %s", DefaultLogFormat, settings.GetLogFormat())
	}
	if settings.GetInterfaceLanguage() != DefaultUILanguage {
		t.Errorf("Expected default UI language %s, got %s", DefaultUILanguage, settings.GetInterfaceLanguage())
	}
}

func TestPlaybackEngine(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	app.Preferences().SetString(KeyPlaybackEngine, string(EngineDelegate))
	if settings.GetPlaybackEngine() != EngineDelegate {
		t.Errorf("Expected engine %s, got %s", EngineDelegate, settings.GetPlaybackEngine())
	}

	// Unknown values fall back to auto
	app.Preferences().SetString(KeyPlaybackEngine, "pygame")
	if settings.GetPlaybackEngine() != EngineAuto {
		t.Errorf("Unknown engine should fall back to %s, got %s", EngineAuto, settings.GetPlaybackEngine())
	}
}

func TestDelegateDelayClamping(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	app.Preferences().SetInt(KeyDelegateDelayMS, 10)
	if settings.GetDelegateDelay() != 500*time.Millisecond {
		t.Errorf("Delegate delay should be clamped to 500ms, got %v", settings.GetDelegateDelay())
	}

	app.Preferences().SetInt(KeyDelegateDelayMS, 600000)
	if settings.GetDelegateDelay() != time.Minute {
		t.Errorf("Delegate delay should be clamped to 1m, got %v", settings.GetDelegateDelay())
	}

	app.Preferences().SetInt(KeyDelegateDelayMS, -5)
	if settings.GetDelegateDelay() != DefaultDelegateDelay {
		t.Errorf("Negative delay should fall back to default, got %v", settings.GetDelegateDelay())
	}
}

func TestIntClamping(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	app.Preferences().SetInt(KeyTranslateTries, 0)
	if settings.GetTranslateTries() != 1 {
		t.Error("Translate tries should be clamped to minimum 1")
	}

	app.Preferences().SetInt(KeySpeechChunkLen, 1000)
	if settings.GetSpeechChunkLength() != 200 {
		t.Error("Chunk length should be clamped to maximum 200")
	}
}

func TestLogFormat(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	app.Preferences().SetString(KeyLogFormat, "json")
	if settings.GetLogFormat() != "json" {
		t.Errorf("Expected json, got %s", settings.GetLogFormat())
	}

	app.Preferences().SetString(KeyLogFormat, "xml")
	if settings.GetLogFormat() != DefaultLogFormat {
		t.Errorf("Unknown format should fall back to %s, got %s", DefaultLogFormat, settings.GetLogFormat())
	}
}
