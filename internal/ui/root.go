package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/tts-converter/internal/i18n"
	"github.com/ytget/tts-converter/internal/language"
	"github.com/ytget/tts-converter/internal/model"
	"github.com/ytget/tts-converter/internal/platform"
)

// Actions are the form operations the UI triggers
type Actions interface {
	Preview(form model.FormState)
	Save(form model.FormState)
	Stop()
	Clear()
}

// Options describe capabilities detected at startup
type Options struct {
	TranslationAvailable bool
	DelegatePlayback     bool
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	actions      Actions
	localization *i18n.Localization
	logger       *zap.Logger
	opts         Options

	textCard        *widget.Card
	translationCard *widget.Card
	speechCard      *widget.Card

	textEntry      *widget.Entry
	translateCheck *widget.Check
	targetLabel    *widget.Label
	targetSelect   *widget.Select
	voiceLabel     *widget.Label
	voiceSelect    *widget.Select

	previewBtn *widget.Button
	saveBtn    *widget.Button
	stopBtn    *widget.Button
	clearBtn   *widget.Button

	statusLabel   *widget.Label
	busySpinner   *widget.ProgressBarInfinite
	delegateLabel *widget.Label
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, actions Actions, localization *i18n.Localization, logger *zap.Logger, opts Options) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}

	ui := &RootUI{
		window:       window,
		actions:      actions,
		localization: localization,
		logger:       logger,
		opts:         opts,
	}

	window.SetTitle(localization.GetText(i18n.KeyAppTitle))
	window.SetIcon(LoadLogoResource())

	ui.setupUI()

	logger.Info("UI setup completed",
		zap.Bool("translation", opts.TranslationAvailable),
		zap.Bool("delegate_playback", opts.DelegatePlayback))
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Text input
	ui.textEntry = widget.NewMultiLineEntry()
	ui.textEntry.Wrapping = fyne.TextWrapWord
	ui.textEntry.SetMinRowsVisible(InputMinRows)
	ui.textEntry.SetPlaceHolder(ui.localization.GetText(i18n.KeyTextPlaceholder))
	ui.textCard = widget.NewCard(ui.localization.GetText(i18n.KeyEnterText), "", ui.textEntry)

	// Translation options
	ui.targetLabel = widget.NewLabel(ui.localization.GetText(i18n.KeyTranslateTo))
	ui.targetSelect = widget.NewSelect(language.Names(), nil)
	ui.targetSelect.SetSelected(language.DefaultName)
	ui.targetSelect.Disable()

	ui.translateCheck = widget.NewCheck(ui.localization.GetText(i18n.KeyTranslateFirst), ui.onTranslateToggled)
	if !ui.opts.TranslationAvailable {
		ui.translateCheck.Disable()
	}

	ui.translationCard = widget.NewCard(ui.localization.GetText(i18n.KeyTranslationOptions), "",
		container.NewVBox(
			ui.translateCheck,
			container.NewHBox(ui.targetLabel, ui.targetSelect),
		),
	)

	// Voice options
	ui.voiceLabel = widget.NewLabel(ui.localization.GetText(i18n.KeyOutputVoice))
	ui.voiceSelect = widget.NewSelect(language.Names(), nil)
	ui.voiceSelect.SetSelected(language.DefaultName)
	ui.speechCard = widget.NewCard(ui.localization.GetText(i18n.KeySpeechOptions), "",
		container.NewHBox(ui.voiceLabel, ui.voiceSelect),
	)

	// Buttons
	ui.previewBtn = widget.NewButtonWithIcon(ui.localization.GetText(i18n.KeyPreview), theme.MediaPlayIcon(), ui.onPreviewClick)
	ui.previewBtn.Importance = widget.HighImportance
	ui.saveBtn = widget.NewButtonWithIcon(ui.localization.GetText(i18n.KeySaveMP3), theme.DocumentSaveIcon(), ui.onSaveClick)
	ui.stopBtn = widget.NewButtonWithIcon(ui.localization.GetText(i18n.KeyStop), theme.MediaStopIcon(), ui.actions.Stop)
	ui.stopBtn.Disable()
	ui.clearBtn = widget.NewButtonWithIcon(ui.localization.GetText(i18n.KeyClear), theme.ContentClearIcon(), ui.actions.Clear)
	buttons := container.NewGridWithColumns(4, ui.previewBtn, ui.saveBtn, ui.stopBtn, ui.clearBtn)

	// Status line
	ui.statusLabel = widget.NewLabel(ui.localization.GetText(i18n.KeyStatusReady))
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis
	ui.busySpinner = widget.NewProgressBarInfinite()
	ui.busySpinner.Stop()
	ui.busySpinner.Hide()
	ui.delegateLabel = widget.NewLabel(ui.localization.GetText(i18n.KeyPlaybackDelegateWarning))
	ui.delegateLabel.Importance = widget.LowImportance
	ui.delegateLabel.Wrapping = fyne.TextWrapWord
	if !ui.opts.DelegatePlayback {
		ui.delegateLabel.Hide()
	}

	status := container.NewVBox(
		ui.delegateLabel,
		widget.NewSeparator(),
		container.NewBorder(nil, nil, nil, ui.busySpinner, ui.statusLabel),
	)

	options := container.NewVBox(ui.translationCard, ui.speechCard, buttons)
	center := container.NewBorder(nil, options, nil, nil, ui.textCard)
	content := container.NewBorder(
		nil,    // top
		status, // bottom
		nil,    // left
		nil,    // right
		center, // center
	)

	ui.window.SetContent(container.NewPadded(content))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	saveItem := fyne.NewMenuItem(ui.localization.GetText(i18n.KeySaveMP3), ui.onSaveClick)
	quitItem := fyne.NewMenuItem(ui.localization.GetText(i18n.KeyQuit), func() {
		fyne.CurrentApp().Quit()
	})
	quitItem.IsQuit = true

	// Language submenu, sorted so the order is stable between rebuilds
	languageMenu := fyne.NewMenu(IconLanguage + " " + ui.localization.GetText(i18n.KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(code)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(i18n.KeyFile), saveItem, fyne.NewMenuItemSeparator(), quitItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange switches the interface language for this session
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.logger.Info("Interface language changed", zap.String("language", langCode))

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(i18n.KeyAppTitle))

	ui.textCard.SetTitle(ui.localization.GetText(i18n.KeyEnterText))
	ui.textEntry.SetPlaceHolder(ui.localization.GetText(i18n.KeyTextPlaceholder))
	ui.translationCard.SetTitle(ui.localization.GetText(i18n.KeyTranslationOptions))
	ui.translateCheck.Text = ui.localization.GetText(i18n.KeyTranslateFirst)
	ui.translateCheck.Refresh()
	ui.targetLabel.SetText(ui.localization.GetText(i18n.KeyTranslateTo))
	ui.speechCard.SetTitle(ui.localization.GetText(i18n.KeySpeechOptions))
	ui.voiceLabel.SetText(ui.localization.GetText(i18n.KeyOutputVoice))

	ui.previewBtn.SetText(ui.localization.GetText(i18n.KeyPreview))
	ui.saveBtn.SetText(ui.localization.GetText(i18n.KeySaveMP3))
	ui.stopBtn.SetText(ui.localization.GetText(i18n.KeyStop))
	ui.clearBtn.SetText(ui.localization.GetText(i18n.KeyClear))
	ui.delegateLabel.SetText(ui.localization.GetText(i18n.KeyPlaybackDelegateWarning))
}

// onTranslateToggled enables the target selector only while translation is on
func (ui *RootUI) onTranslateToggled(checked bool) {
	if checked {
		ui.targetSelect.Enable()
	} else {
		ui.targetSelect.Disable()
	}
}

// formState snapshots the widgets. Must run on the UI goroutine.
func (ui *RootUI) formState() model.FormState {
	return model.FormState{
		InputText:         ui.textEntry.Text,
		VoiceLanguage:     ui.voiceSelect.Selected,
		TranslateEnabled:  ui.translateCheck.Checked,
		TranslationTarget: ui.targetSelect.Selected,
	}
}

func (ui *RootUI) onPreviewClick() {
	ui.actions.Preview(ui.formState())
}

func (ui *RootUI) onSaveClick() {
	ui.actions.Save(ui.formState())
}

// SetStatus replaces the status line
func (ui *RootUI) SetStatus(text string) {
	fyne.Do(func() {
		ui.statusLabel.SetText(text)
	})
}

// SetStopEnabled toggles the Stop button
func (ui *RootUI) SetStopEnabled(enabled bool) {
	fyne.Do(func() {
		if enabled {
			ui.stopBtn.Enable()
		} else {
			ui.stopBtn.Disable()
		}
	})
}

// SetBusy disables the actions that start work and shows the spinner
func (ui *RootUI) SetBusy(busy bool) {
	fyne.Do(func() {
		for _, btn := range []*widget.Button{ui.previewBtn, ui.saveBtn, ui.clearBtn} {
			if busy {
				btn.Disable()
			} else {
				btn.Enable()
			}
		}

		if busy {
			ui.busySpinner.Show()
			ui.busySpinner.Start()
		} else {
			ui.busySpinner.Stop()
			ui.busySpinner.Hide()
		}
	})
}

// ShowInfo shows a modal information notice
func (ui *RootUI) ShowInfo(title, message string) {
	fyne.Do(func() {
		dialog.ShowInformation(title, message, ui.window)
	})
}

// ShowError shows a modal error notice
func (ui *RootUI) ShowError(title, message string) {
	fyne.Do(func() {
		label := widget.NewLabel(message)
		label.Wrapping = fyne.TextWrapWord
		body := container.NewBorder(nil, nil, widget.NewIcon(theme.ErrorIcon()), nil, label)
		dialog.ShowCustom(title, "OK", body, ui.window)
	})
}

// ConfirmPlay asks whether the saved file should be played now
func (ui *RootUI) ConfirmPlay(title, message string, answer func(bool)) {
	fyne.Do(func() {
		dialog.ShowConfirm(title, message, answer, ui.window)
	})
}

// ChooseSavePath shows the save dialog. Fyne creates the chosen file as soon
// as the dialog returns; that placeholder is removed again so a failed
// synthesis leaves nothing behind.
func (ui *RootUI) ChooseSavePath(defaultName string, chosen func(path string, ok bool)) {
	fyne.Do(func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			ui.onSaveChosen(writer, err, chosen)
		}, ui.window)

		d.SetFileName(defaultName)
		d.SetFilter(storage.NewExtensionFileFilter([]string{platform.AudioExtension}))
		if dir, err := platform.GetDefaultSaveDir(); err == nil {
			if location, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
				d.SetLocation(location)
			}
		}
		d.Resize(ui.window.Canvas().Size())
		d.Show()
	})
}

// onSaveChosen turns the save dialog result into a path. A dialog error is
// shown to the user and ends the action like a cancel.
func (ui *RootUI) onSaveChosen(writer fyne.URIWriteCloser, err error, chosen func(path string, ok bool)) {
	if err != nil {
		ui.logger.Warn("Save dialog failed", zap.Error(err))
		ui.ShowError(ui.localization.GetText(i18n.KeyTitleError), ui.localization.Format(i18n.KeyMsgSaveFailed, err))
		chosen("", false)
		return
	}
	if writer == nil {
		chosen("", false)
		return
	}

	path := writer.URI().Path()
	if cerr := writer.Close(); cerr != nil {
		ui.logger.Debug("Closing save placeholder failed", zap.Error(cerr))
	}
	platform.RemoveQuietly(path)
	chosen(path, true)
}

// ClearInput empties the text entry
func (ui *RootUI) ClearInput() {
	fyne.Do(func() {
		ui.textEntry.SetText("")
	})
}
