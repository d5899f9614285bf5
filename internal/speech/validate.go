package speech

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/go-mp3"
)

// validateSampleBytes is how much PCM has to decode for a file to count as audio
const validateSampleBytes = 4096

// ValidateMP3 decodes the head of path to make sure it is real MP3 audio and
// not, say, an HTML error page saved by the backend.
func ValidateMP3(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		return errors.New("audio file is empty")
	}

	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		return fmt.Errorf("not an mp3 stream: %w", err)
	}

	n, err := io.CopyN(io.Discard, decoder, validateSampleBytes)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("mp3 decode failed: %w", err)
	}
	if n == 0 {
		return errors.New("mp3 stream has no samples")
	}
	return nil
}
