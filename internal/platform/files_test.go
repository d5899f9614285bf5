package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestCreateTempAudioFile(t *testing.T) {
	path, err := CreateTempAudioFile()
	if err != nil {
		t.Fatalf("Failed to create temp audio file: %v", err)
	}
	defer os.Remove(path)

	if filepath.Ext(path) != AudioExtension {
		t.Errorf("Expected %s suffix, got %s", AudioExtension, path)
	}
	if !strings.HasPrefix(filepath.Base(path), "speech_") {
		t.Errorf("Expected speech_ prefix, got %s", filepath.Base(path))
	}
	if filepath.Dir(path) != filepath.Clean(os.TempDir()) {
		t.Errorf("Expected file in %s, got %s", os.TempDir(), path)
	}
	if !FileExists(path) {
		t.Error("Temp file should exist")
	}

	// Two calls never collide
	other, err := CreateTempAudioFile()
	if err != nil {
		t.Fatalf("Failed to create second temp file: %v", err)
	}
	defer os.Remove(other)
	if other == path {
		t.Error("Temp files must be unique")
	}
}

func TestRemoveQuietly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.mp3")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	RemoveQuietly(path)
	if FileExists(path) {
		t.Error("File should be removed")
	}

	// Missing and empty paths are ignored
	RemoveQuietly(path)
	RemoveQuietly("")
}

func TestTimestampedFileName(t *testing.T) {
	now := time.Date(2024, time.March, 5, 7, 8, 9, 0, time.UTC)
	expected := "speech_20240305_070809.mp3"
	if got := TimestampedFileName(now); got != expected {
		t.Errorf("TimestampedFileName() = %s, expected %s", got, expected)
	}
}

func TestEnsureAudioExtension(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/music/a.mp3", "/music/a.mp3"},
		{"/music/a.MP3", "/music/a.MP3"},
		{"/music/a", "/music/a.mp3"},
		{"/music/a.wav", "/music/a.wav.mp3"},
	}

	for _, test := range tests {
		if got := EnsureAudioExtension(test.input); got != test.expected {
			t.Errorf("EnsureAudioExtension(%s) = %s, expected %s", test.input, got, test.expected)
		}
	}
}

func TestMoveFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.mp3")
	dst := filepath.Join(dir, "dst.mp3")

	if err := os.WriteFile(src, []byte("audio"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dst, []byte("old content"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := MoveFile(src, dst); err != nil {
		t.Fatalf("MoveFile failed: %v", err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("Failed to read destination: %v", err)
	}
	if string(data) != "audio" {
		t.Errorf("Expected destination content 'audio', got '%s'", string(data))
	}
	if FileExists(src) {
		t.Error("Source should be gone after move")
	}
}

func TestMoveFile_MissingSource(t *testing.T) {
	dir := t.TempDir()
	err := MoveFile(filepath.Join(dir, "missing.mp3"), filepath.Join(dir, "dst.mp3"))
	if err == nil {
		t.Error("Expected error for missing source, got nil")
	}
}

func TestOpenFileWithDefaultApp_NonExistentFile(t *testing.T) {
	nonExistentFile := filepath.Join(t.TempDir(), "nonexistent.mp3")

	err := OpenFileWithDefaultApp(nonExistentFile)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}
	if !strings.Contains(err.Error(), "file does not exist") {
		t.Errorf("Error message should contain 'file does not exist', got: %v", err)
	}

	if err := OpenFileWithDefaultApp(""); err == nil {
		t.Error("Expected error for empty path, got nil")
	}
}

func TestGetDefaultSaveDir(t *testing.T) {
	dir, err := GetDefaultSaveDir()
	if err != nil {
		t.Fatalf("Failed to get default save directory: %v", err)
	}
	if dir == "" {
		t.Fatal("Default save directory is empty")
	}
}
