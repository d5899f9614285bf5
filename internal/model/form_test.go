package model

import (
	"path/filepath"
	"testing"
)

func TestFormState_Text(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		empty    bool
	}{
		{"Hello world", "Hello world", false},
		{"  Hola \n", "Hola", false},
		{"", "", true},
		{" \t\n ", "", true},
	}

	for _, test := range tests {
		fs := FormState{InputText: test.input}
		if got := fs.Text(); got != test.expected {
			t.Errorf("Text() with input=%q = %q, expected %q", test.input, got, test.expected)
		}
		if got := fs.IsEmpty(); got != test.empty {
			t.Errorf("IsEmpty() with input=%q = %v, expected %v", test.input, got, test.empty)
		}
	}
}

func TestAudioArtifact(t *testing.T) {
	path := filepath.Join("tmp", "speech_1.mp3")

	tmp := NewTemporaryArtifact(path)
	if !tmp.Temporary {
		t.Error("Expected temporary artifact")
	}
	if tmp.DisplayName() != "speech_1.mp3" {
		t.Errorf("Expected display name 'speech_1.mp3', got '%s'", tmp.DisplayName())
	}

	saved := NewSavedArtifact(path)
	if saved.Temporary {
		t.Error("Saved artifact must not be temporary")
	}

	if (AudioArtifact{}).DisplayName() != "" {
		t.Error("Empty artifact should have empty display name")
	}
}
