// Package controller orchestrates translation, speech synthesis and playback
// in response to the form's Preview, Save as MP3, Stop and Clear actions.
package controller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/tts-converter/internal/i18n"
	"github.com/ytget/tts-converter/internal/language"
	"github.com/ytget/tts-converter/internal/model"
	"github.com/ytget/tts-converter/internal/platform"
	"github.com/ytget/tts-converter/internal/playback"
	"github.com/ytget/tts-converter/internal/speech"
	"github.com/ytget/tts-converter/internal/translate"
)

// ErrEmptyInput is returned by Validate for blank text
var ErrEmptyInput = errors.New("please enter some text to convert to speech")

// Config carries everything detected or built at startup
type Config struct {
	Translator   translate.Translator
	Synthesizer  speech.Synthesizer
	Player       Player
	Localization *i18n.Localization
	Logger       *zap.Logger

	// Context bounds translation and synthesis calls. Defaults to Background.
	Context context.Context

	// Now stamps default save names. Defaults to time.Now.
	Now func() time.Time

	// Run executes slow work off the UI goroutine. Defaults to a new goroutine.
	Run func(func())

	// TempFile creates the file a preview is synthesized into
	TempFile func() (string, error)

	// Remove deletes files best-effort
	Remove func(string)
}

// Controller implements the form actions
type Controller struct {
	view       View
	translator translate.Translator
	synth      speech.Synthesizer
	player     Player
	loc        *i18n.Localization
	logger     *zap.Logger

	ctx      context.Context
	now      func() time.Time
	run      func(func())
	tempFile func() (string, error)
	remove   func(string)
}

// New creates a controller bound to view
func New(view View, cfg Config) *Controller {
	c := &Controller{
		view:       view,
		translator: cfg.Translator,
		synth:      cfg.Synthesizer,
		player:     cfg.Player,
		loc:        cfg.Localization,
		logger:     cfg.Logger,
		ctx:        cfg.Context,
		now:        cfg.Now,
		run:        cfg.Run,
		tempFile:   cfg.TempFile,
		remove:     cfg.Remove,
	}

	if c.loc == nil {
		c.loc = i18n.NewLocalization()
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	if c.ctx == nil {
		c.ctx = context.Background()
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.run == nil {
		c.run = func(fn func()) { go fn() }
	}
	if c.tempFile == nil {
		c.tempFile = platform.CreateTempAudioFile
	}
	if c.remove == nil {
		c.remove = platform.RemoveQuietly
	}
	return c
}

// SetView rebinds the controller, used when the UI is built after the controller
func (c *Controller) SetView(view View) {
	c.view = view
}

// TranslationAvailable reports whether the translate option can work
func (c *Controller) TranslationAvailable() bool {
	return c.translator != nil && c.translator.Available()
}

// Validate checks the form before any work starts
func Validate(form model.FormState) error {
	if form.IsEmpty() {
		return ErrEmptyInput
	}
	return nil
}

// Preview synthesizes the text into a temporary file and plays it
func (c *Controller) Preview(form model.FormState) {
	if !c.accept(form) {
		return
	}

	c.view.SetBusy(true)
	c.background(func() {
		defer c.view.SetBusy(false)

		text := c.prepareText(form)
		voice := language.CodeFor(form.VoiceLanguage)

		path, err := c.tempFile()
		if err != nil {
			c.logger.Error("Failed to create preview file", zap.Error(err))
			c.view.SetStatus(c.loc.GetText(i18n.KeyStatusConvertFailed))
			c.view.ShowError(c.loc.GetText(i18n.KeyTitleError), c.loc.Format(i18n.KeyMsgUnexpected, err))
			return
		}

		if !c.synthesize(text, voice, path) {
			c.remove(path)
			return
		}

		c.startPlayback(model.NewTemporaryArtifact(path))
	})
}

// Save asks for a destination, synthesizes into it and offers to play the result
func (c *Controller) Save(form model.FormState) {
	if !c.accept(form) {
		return
	}

	c.view.SetBusy(true)
	c.background(func() {
		text := c.prepareText(form)
		voice := language.CodeFor(form.VoiceLanguage)

		c.view.ChooseSavePath(platform.TimestampedFileName(c.now()), func(path string, ok bool) {
			if !ok || path == "" {
				c.logger.Debug("Save cancelled")
				c.view.SetBusy(false)
				return
			}

			c.background(func() {
				defer c.view.SetBusy(false)
				c.saveTo(text, voice, platform.EnsureAudioExtension(path))
			})
		})
	})
}

// Stop halts playback if any and resets the form to idle
func (c *Controller) Stop() {
	if c.player != nil && c.player.Stop() {
		c.logger.Info("Playback stopped by user")
	}
	c.view.SetStopEnabled(false)
	c.view.SetStatus(c.loc.GetText(i18n.KeyStatusReady))
}

// Clear empties the input. Playback keeps going.
func (c *Controller) Clear() {
	c.view.ClearInput()
	c.view.SetStatus(c.loc.GetText(i18n.KeyStatusReady))
}

func (c *Controller) saveTo(text, voice, path string) {
	if !c.synthesize(text, voice, path) {
		return
	}

	c.view.SetStatus(c.loc.Format(i18n.KeyStatusAudioSaved, path))
	c.view.ConfirmPlay(
		c.loc.GetText(i18n.KeyTitleSuccess),
		c.loc.Format(i18n.KeyMsgSavedPlayNow, path),
		func(yes bool) {
			if yes {
				c.startPlayback(model.NewSavedArtifact(path))
			}
		},
	)
}

// accept shows the empty input notice and reports whether work may start
func (c *Controller) accept(form model.FormState) bool {
	if err := Validate(form); err != nil {
		c.view.ShowInfo(c.loc.GetText(i18n.KeyTitleInfo), c.loc.GetText(i18n.KeyMsgEnterText))
		return false
	}
	return true
}

// prepareText translates when asked to. It never fails: the original text is
// used whenever translation is unavailable or errors out.
func (c *Controller) prepareText(form model.FormState) string {
	text := form.Text()
	if !form.TranslateEnabled {
		return text
	}

	if !c.TranslationAvailable() {
		c.view.SetStatus(c.loc.GetText(i18n.KeyStatusTranslationMissing))
		c.view.ShowError(c.loc.GetText(i18n.KeyTitleError), c.loc.GetText(i18n.KeyMsgTranslationMissing))
		return text
	}

	target := language.CodeFor(form.TranslationTarget)
	c.view.SetStatus(c.loc.GetText(i18n.KeyStatusTranslating))

	translated, err := c.translator.Translate(c.ctx, text, target)
	switch {
	case errors.Is(err, translate.ErrCapabilityUnavailable):
		c.view.SetStatus(c.loc.GetText(i18n.KeyStatusTranslationMissing))
		c.view.ShowError(c.loc.GetText(i18n.KeyTitleError), c.loc.GetText(i18n.KeyMsgTranslationMissing))
		return text
	case err != nil:
		c.logger.Warn("Translation failed, using original text", zap.String("target", target), zap.Error(err))
		c.view.SetStatus(c.loc.GetText(i18n.KeyStatusTranslationFailed))
		c.view.ShowError(c.loc.GetText(i18n.KeyTitleTranslationError), c.loc.Format(i18n.KeyMsgTranslationFailed, err))
		return text
	}

	if translated == "" {
		return text
	}
	c.view.SetStatus(c.loc.GetText(i18n.KeyStatusTranslationDone))
	return translated
}

// synthesize reports failures to the user and returns whether path holds audio
func (c *Controller) synthesize(text, voice, path string) bool {
	c.view.SetStatus(c.loc.GetText(i18n.KeyStatusConverting))

	if err := c.synth.Synthesize(c.ctx, text, voice, path); err != nil {
		c.logger.Error("Speech synthesis failed", zap.String("language", voice), zap.Error(err))
		c.view.SetStatus(c.loc.GetText(i18n.KeyStatusConvertFailed))
		c.view.ShowError(c.loc.GetText(i18n.KeyTitleTTSError), c.loc.Format(i18n.KeyMsgTTSFailed, err))
		return false
	}
	return true
}

func (c *Controller) startPlayback(artifact model.AudioArtifact) {
	// Controls are updated first so a session that ends at once leaves the form idle.
	c.view.SetStopEnabled(true)
	c.view.SetStatus(c.loc.GetText(i18n.KeyStatusPlaying))
	c.player.Start(artifact, c.onPlaybackFinished)
}

func (c *Controller) onPlaybackFinished(res playback.Result) {
	if res.Err != nil {
		c.view.ShowError(c.loc.GetText(i18n.KeyTitlePlaybackError), c.loc.Format(i18n.KeyMsgPlaybackFailed, res.Err))
	}
	c.view.SetStopEnabled(false)
	c.view.SetStatus(c.loc.GetText(i18n.KeyStatusReady))
}

// background runs fn through the injected runner and turns a panic into an
// error notice.
func (c *Controller) background(fn func()) {
	c.run(func() {
		defer func() {
			if r := recover(); r != nil {
				err := fmt.Errorf("panic: %v", r)
				c.logger.Error("Recovered from panic in action", zap.Error(err), zap.Stack("stack"))
				c.view.SetBusy(false)
				c.view.SetStatus(c.loc.GetText(i18n.KeyStatusReady))
				c.view.ShowError(c.loc.GetText(i18n.KeyTitleError), c.loc.Format(i18n.KeyMsgUnexpected, r))
			}
		}()
		fn()
	})
}
