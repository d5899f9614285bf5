// Package i18n holds the interface text catalogue. Status lines and dialog
// messages are looked up here by both the controller and the Fyne view.
package i18n

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyFile               = "file"
	KeyQuit               = "quit"
	KeyLanguage           = "language"
	KeyEnterText          = "enter_text"
	KeyTextPlaceholder    = "text_placeholder"
	KeyTranslationOptions = "translation_options"
	KeyTranslateFirst     = "translate_first"
	KeyTranslateTo        = "translate_to"
	KeySpeechOptions      = "speech_options"
	KeyOutputVoice        = "output_voice"
	KeyPreview            = "preview"
	KeySaveMP3            = "save_mp3"
	KeyStop               = "stop"
	KeyClear              = "clear"

	KeyStatusReady              = "status_ready"
	KeyStatusTranslating        = "status_translating"
	KeyStatusTranslationDone    = "status_translation_done"
	KeyStatusTranslationFailed  = "status_translation_failed"
	KeyStatusConverting         = "status_converting"
	KeyStatusAudioSaved         = "status_audio_saved"
	KeyStatusConvertFailed      = "status_convert_failed"
	KeyStatusPlaying            = "status_playing"
	KeyStatusTranslationMissing = "status_translation_missing"

	KeyTitleInfo             = "title_info"
	KeyTitleError            = "title_error"
	KeyTitleTranslationError = "title_translation_error"
	KeyTitleTTSError         = "title_tts_error"
	KeyTitlePlaybackError    = "title_playback_error"
	KeyTitleSuccess          = "title_success"

	KeyMsgEnterText            = "msg_enter_text"
	KeyMsgTranslationMissing   = "msg_translation_missing"
	KeyMsgTranslationFailed    = "msg_translation_failed"
	KeyMsgTTSFailed            = "msg_tts_failed"
	KeyMsgPlaybackFailed       = "msg_playback_failed"
	KeyMsgSavedPlayNow         = "msg_saved_play_now"
	KeyMsgUnexpected           = "msg_unexpected"
	KeyMsgSaveFailed           = "msg_save_failed"
	KeyPlaybackDelegateWarning = "playback_delegate_warning"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns localized text with fmt verbs filled in
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Text-to-Speech Converter",
		KeyFile:               "File",
		KeyQuit:               "Quit",
		KeyLanguage:           "Language",
		KeyEnterText:          "Enter Text",
		KeyTextPlaceholder:    "Type or paste the text to speak...",
		KeyTranslationOptions: "Translation Options",
		KeyTranslateFirst:     "Translate text before converting to speech",
		KeyTranslateTo:        "Translate to:",
		KeySpeechOptions:      "Text-to-Speech Options",
		KeyOutputVoice:        "Output Voice Language:",
		KeyPreview:            "Preview",
		KeySaveMP3:            "Save as MP3",
		KeyStop:               "Stop",
		KeyClear:              "Clear",

		KeyStatusReady:              "Ready",
		KeyStatusTranslating:        "Translating...",
		KeyStatusTranslationDone:    "Translation complete",
		KeyStatusTranslationFailed:  "Translation failed",
		KeyStatusConverting:         "Converting to speech...",
		KeyStatusAudioSaved:         "Audio saved to: %s",
		KeyStatusConvertFailed:      "Failed to convert",
		KeyStatusPlaying:            "Playing audio...",
		KeyStatusTranslationMissing: "Translation unavailable",

		KeyTitleInfo:             "Info",
		KeyTitleError:            "Error",
		KeyTitleTranslationError: "Translation Error",
		KeyTitleTTSError:         "TTS Error",
		KeyTitlePlaybackError:    "Playback Error",
		KeyTitleSuccess:          "Success",

		KeyMsgEnterText:            "Please enter some text to convert to speech.",
		KeyMsgTranslationMissing:   "Translation feature is not available in this build.",
		KeyMsgTranslationFailed:    "Failed to translate text: %v",
		KeyMsgTTSFailed:            "Failed to convert text to speech: %v",
		KeyMsgPlaybackFailed:       "Failed to play audio: %v",
		KeyMsgSavedPlayNow:         "Audio saved to %s. Would you like to play it now?",
		KeyMsgUnexpected:           "Unexpected error: %v",
		KeyMsgSaveFailed:           "Could not use the chosen file: %v",
		KeyPlaybackDelegateWarning: "Audio plays in your default player; Stop cannot interrupt it.",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Преобразование текста в речь",
		KeyFile:               "Файл",
		KeyQuit:               "Выход",
		KeyLanguage:           "Язык",
		KeyEnterText:          "Введите текст",
		KeyTextPlaceholder:    "Введите или вставьте текст для озвучивания...",
		KeyTranslationOptions: "Параметры перевода",
		KeyTranslateFirst:     "Перевести текст перед озвучиванием",
		KeyTranslateTo:        "Перевести на:",
		KeySpeechOptions:      "Параметры синтеза речи",
		KeyOutputVoice:        "Язык голоса:",
		KeyPreview:            "Прослушать",
		KeySaveMP3:            "Сохранить MP3",
		KeyStop:               "Стоп",
		KeyClear:              "Очистить",

		KeyStatusReady:              "Готово",
		KeyStatusTranslating:        "Перевод...",
		KeyStatusTranslationDone:    "Перевод завершён",
		KeyStatusTranslationFailed:  "Ошибка перевода",
		KeyStatusConverting:         "Преобразование в речь...",
		KeyStatusAudioSaved:         "Аудио сохранено: %s",
		KeyStatusConvertFailed:      "Не удалось преобразовать",
		KeyStatusPlaying:            "Воспроизведение...",
		KeyStatusTranslationMissing: "Перевод недоступен",

		KeyTitleInfo:             "Информация",
		KeyTitleError:            "Ошибка",
		KeyTitleTranslationError: "Ошибка перевода",
		KeyTitleTTSError:         "Ошибка синтеза речи",
		KeyTitlePlaybackError:    "Ошибка воспроизведения",
		KeyTitleSuccess:          "Готово",

		KeyMsgEnterText:            "Пожалуйста, введите текст для озвучивания.",
		KeyMsgTranslationMissing:   "Перевод недоступен в этой сборке.",
		KeyMsgTranslationFailed:    "Не удалось перевести текст: %v",
		KeyMsgTTSFailed:            "Не удалось преобразовать текст в речь: %v",
		KeyMsgPlaybackFailed:       "Не удалось воспроизвести аудио: %v",
		KeyMsgSavedPlayNow:         "Аудио сохранено в %s. Воспроизвести сейчас?",
		KeyMsgUnexpected:           "Непредвиденная ошибка: %v",
		KeyMsgSaveFailed:           "Не удалось использовать выбранный файл: %v",
		KeyPlaybackDelegateWarning: "Аудио воспроизводится внешним плеером; кнопка «Стоп» его не остановит.",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Conversor de Texto em Fala",
		KeyFile:               "Arquivo",
		KeyQuit:               "Sair",
		KeyLanguage:           "Idioma",
		KeyEnterText:          "Digite o Texto",
		KeyTextPlaceholder:    "Digite ou cole o texto a ser falado...",
		KeyTranslationOptions: "Opções de Tradução",
		KeyTranslateFirst:     "Traduzir o texto antes de converter em fala",
		KeyTranslateTo:        "Traduzir para:",
		KeySpeechOptions:      "Opções de Fala",
		KeyOutputVoice:        "Idioma da Voz:",
		KeyPreview:            "Ouvir",
		KeySaveMP3:            "Salvar como MP3",
		KeyStop:               "Parar",
		KeyClear:              "Limpar",

		KeyStatusReady:              "Pronto",
		KeyStatusTranslating:        "Traduzindo...",
		KeyStatusTranslationDone:    "Tradução concluída",
		KeyStatusTranslationFailed:  "Falha na tradução",
		KeyStatusConverting:         "Convertendo em fala...",
		KeyStatusAudioSaved:         "Áudio salvo em: %s",
		KeyStatusConvertFailed:      "Falha na conversão",
		KeyStatusPlaying:            "Reproduzindo áudio...",
		KeyStatusTranslationMissing: "Tradução indisponível",

		KeyTitleInfo:             "Informação",
		KeyTitleError:            "Erro",
		KeyTitleTranslationError: "Erro de Tradução",
		KeyTitleTTSError:         "Erro de Fala",
		KeyTitlePlaybackError:    "Erro de Reprodução",
		KeyTitleSuccess:          "Sucesso",

		KeyMsgEnterText:            "Por favor, digite algum texto para converter em fala.",
		KeyMsgTranslationMissing:   "A tradução não está disponível nesta versão.",
		KeyMsgTranslationFailed:    "Falha ao traduzir o texto: %v",
		KeyMsgTTSFailed:            "Falha ao converter o texto em fala: %v",
		KeyMsgPlaybackFailed:       "Falha ao reproduzir o áudio: %v",
		KeyMsgSavedPlayNow:         "Áudio salvo em %s. Deseja reproduzi-lo agora?",
		KeyMsgUnexpected:           "Erro inesperado: %v",
		KeyMsgSaveFailed:           "Não foi possível usar o arquivo escolhido: %v",
		KeyPlaybackDelegateWarning: "O áudio toca no seu player padrão; Parar não consegue interrompê-lo.",
	}
}
