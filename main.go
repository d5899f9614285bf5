package main

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/tts-converter/internal/config"
	"github.com/ytget/tts-converter/internal/controller"
	"github.com/ytget/tts-converter/internal/i18n"
	"github.com/ytget/tts-converter/internal/logging"
	"github.com/ytget/tts-converter/internal/platform"
	"github.com/ytget/tts-converter/internal/playback"
	"github.com/ytget/tts-converter/internal/speech"
	"github.com/ytget/tts-converter/internal/translate"
	"github.com/ytget/tts-converter/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.tts-converter"
	AppName = "Text-to-Speech Converter"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewFormTheme())

	settings := config.NewSettings(myApp)
	logger := logging.New(logging.Options{
		Level:  settings.GetLogLevel(),
		Format: settings.GetLogFormat(),
	})
	defer func() { _ = logger.Sync() }()

	logger.Info(fmt.Sprintf("%s v%s starting", AppName, version))

	localization := i18n.NewLocalization()
	localization.SetLanguage(settings.GetInterfaceLanguage())

	// Initialize services
	translator := translate.NewService(translate.NewDefaultBackend(settings.GetTranslateTries()), logger.Named("translate"))
	synthesizer := speech.NewService(speech.NewHTGOBackend(), logger.Named("speech"),
		speech.WithChunkLength(settings.GetSpeechChunkLength()))

	strategy := playback.Select(playback.Options{
		Engine:        settings.GetPlaybackEngine(),
		PollInterval:  settings.GetPollInterval(),
		DelegateDelay: settings.GetDelegateDelay(),
		Opener:        platform.OpenFileWithDefaultApp,
	}, logger.Named("playback"))
	player := playback.NewManager(strategy, logger.Named("playback"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctrl := controller.New(nil, controller.Config{
		Translator:   translator,
		Synthesizer:  synthesizer,
		Player:       player,
		Localization: localization,
		Logger:       logger.Named("controller"),
		Context:      ctx,
	})

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, ctrl, localization, logger.Named("ui"), ui.Options{
		TranslationAvailable: ctrl.TranslationAvailable(),
		DelegatePlayback:     player.StrategyName() == playback.DelegateName,
	})
	ctrl.SetView(rootUI)

	// Temporary previews are removed by their sessions; wait for them on exit
	myApp.Lifecycle().SetOnStopped(func() {
		cancel()
		if player.Active() {
			logger.Info("stopping playback on exit")
			player.Stop()
		}
		player.Wait()
		logger.Info("shutdown complete")
	})

	myWindow.SetMaster()
	myWindow.ShowAndRun()
}
