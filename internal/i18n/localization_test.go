package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalization_DefaultsToEnglish(t *testing.T) {
	l := NewLocalization()

	assert.Equal(t, "en", l.GetCurrentLanguage())
	assert.Equal(t, "Ready", l.GetText(KeyStatusReady))
	assert.Equal(t, "Playing audio...", l.GetText(KeyStatusPlaying))
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	assert.Equal(t, "ru", l.GetCurrentLanguage())
	assert.Equal(t, "Готово", l.GetText(KeyStatusReady))

	// Unknown languages are ignored
	l.SetLanguage("de")
	assert.Equal(t, "ru", l.GetCurrentLanguage())

	l.SetLanguage("system")
	assert.Equal(t, "en", l.GetCurrentLanguage())
}

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("pt")

	assert.Equal(t, "missing_key", l.GetText("missing_key"))
}

func TestLocalization_Format(t *testing.T) {
	l := NewLocalization()

	assert.Equal(t, "Audio saved to: /tmp/a.mp3", l.Format(KeyStatusAudioSaved, "/tmp/a.mp3"))
}

func TestLocalization_CataloguesComplete(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for code := range l.GetAvailableLanguages() {
		texts, ok := l.texts[code]
		if !assert.True(t, ok, "missing catalogue %s", code) {
			continue
		}
		for key := range english {
			assert.Contains(t, texts, key, "language %s lacks %s", code, key)
		}
	}
}
