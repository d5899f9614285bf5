package model

import (
	"path/filepath"
	"strings"
)

// FormState is a snapshot of the user-configurable fields of the main form.
// Language fields hold human-readable names, not codes.
type FormState struct {
	InputText         string
	VoiceLanguage     string
	TranslateEnabled  bool
	TranslationTarget string
}

// Text returns the input text with surrounding whitespace removed
func (fs FormState) Text() string {
	return strings.TrimSpace(fs.InputText)
}

// IsEmpty reports whether there is nothing to convert
func (fs FormState) IsEmpty() bool {
	return fs.Text() == ""
}

// AudioArtifact is a generated audio file on disk.
// Temporary artifacts belong to the app and are removed after playback;
// permanent ones were chosen by the user and are never removed.
type AudioArtifact struct {
	Path      string
	Temporary bool
}

// NewTemporaryArtifact wraps a preview file path
func NewTemporaryArtifact(path string) AudioArtifact {
	return AudioArtifact{Path: path, Temporary: true}
}

// NewSavedArtifact wraps a user-chosen file path
func NewSavedArtifact(path string) AudioArtifact {
	return AudioArtifact{Path: path}
}

// DisplayName returns the file name without directory
func (a AudioArtifact) DisplayName() string {
	if a.Path == "" {
		return ""
	}
	return filepath.Base(a.Path)
}
