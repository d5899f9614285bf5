package platform

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	AndroidAM      = "am"
)

// Command parameters
const (
	WindowsCmdFlag = "/c"
)

// Audio file naming
const (
	AudioExtension     = ".mp3"
	TempFilePattern    = "speech_*" + AudioExtension
	SaveFilePrefix     = "speech_"
	SaveFileTimeLayout = "20060102_150405"
)

// Linux fallbacks when xdg-open is missing
var (
	LinuxAudioOpeners = []string{"gio", "mpv", "vlc", "ffplay"}
)

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// CreateTempAudioFile creates an empty .mp3 file in the system temp directory
// and returns its path. The caller owns the file.
func CreateTempAudioFile() (string, error) {
	f, err := os.CreateTemp("", TempFilePattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		os.Remove(name)
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}
	return name, nil
}

// RemoveQuietly deletes a file, ignoring every error
func RemoveQuietly(path string) {
	if path == "" {
		return
	}
	_ = os.Remove(path)
}

// FileExists reports whether path exists and is a regular file
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// TimestampedFileName returns the default save name, e.g. speech_20240131_235959.mp3
func TimestampedFileName(now time.Time) string {
	return SaveFilePrefix + now.Format(SaveFileTimeLayout) + AudioExtension
}

// EnsureAudioExtension appends .mp3 when the path has no such extension
func EnsureAudioExtension(path string) string {
	if strings.EqualFold(filepath.Ext(path), AudioExtension) {
		return path
	}
	return path + AudioExtension
}

// MoveFile moves src to dst, replacing dst. Falls back to copy+remove when
// rename fails, e.g. across filesystems.
func MoveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return fmt.Errorf("failed to copy to %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return fmt.Errorf("failed to finish %s: %w", dst, err)
	}

	in.Close()
	_ = os.Remove(src)
	return nil
}

// OpenFileWithDefaultApp opens the file with the default system application.
// It returns once the opener command has been started; it cannot tell when
// the external player finishes.
func OpenFileWithDefaultApp(filePath string) error {
	if filePath == "" {
		return errors.New("file path is empty")
	}
	if !FileExists(filePath) {
		return fmt.Errorf("file does not exist: %s", filePath)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", absPath).Run()
	case OSLinux:
		return openFileWithDefaultAppLinux(absPath)
	case OSAndroid:
		return openFileWithDefaultAppAndroid(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFileWithDefaultAppLinux tries xdg-open, then common players in background
func openFileWithDefaultAppLinux(filePath string) error {
	if err := exec.Command(XDGOpenCommand, filePath).Run(); err == nil {
		return nil
	}

	for _, opener := range LinuxAudioOpeners {
		path, err := exec.LookPath(opener)
		if err != nil {
			continue
		}
		args := []string{filePath}
		if opener == "gio" {
			args = []string{"open", filePath}
		}
		// Players block until done, so only start them
		if err := exec.Command(path, args...).Start(); err == nil {
			return nil
		}
	}

	return fmt.Errorf("no suitable application found to open %s", filePath)
}

// openFileWithDefaultAppAndroid opens an audio file through an intent
func openFileWithDefaultAppAndroid(filePath string) error {
	cmd := exec.Command(AndroidAM, "start", "-a", "android.intent.action.VIEW", "-d", "file://"+filePath, "-t", "audio/mpeg")
	if err := cmd.Run(); err == nil {
		return nil
	}

	// Let the system decide
	cmd = exec.Command(AndroidAM, "start", "-a", "android.intent.action.VIEW", "-d", "file://"+filePath)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open file with any method: %w", err)
	}
	return nil
}

// GetDefaultSaveDir returns the directory the save dialog starts in:
// ~/Music, then ~/Downloads, then the home directory.
func GetDefaultSaveDir() (string, error) {
	if runtime.GOOS == OSAndroid || os.Getenv("ANDROID_DATA") != "" {
		return "/sdcard/Music", nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	for _, name := range []string{"Music", "Downloads"} {
		dir := filepath.Join(homeDir, name)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
	}
	return homeDir, nil
}
