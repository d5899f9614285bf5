package speech

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/tts-converter/internal/platform"
)

// Synthesis constants
const (
	DefaultChunkLength = 100
	StagingDirPattern  = "tts-stage-*"
	CombinedFileName   = "combined.mp3"
)

// Validator checks that a staged file is playable audio
type Validator func(path string) error

// Service is the Synthesizer built on a chunk Backend
type Service struct {
	backend   Backend
	validate  Validator
	chunkLen  int
	logger    *zap.Logger
	stagingFn func() (string, error)
}

// Option configures Service
type Option func(*Service)

// WithChunkLength sets the maximum characters per backend request
func WithChunkLength(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.chunkLen = n
		}
	}
}

// WithValidator replaces the MP3 validator
func WithValidator(v Validator) Option {
	return func(s *Service) {
		if v != nil {
			s.validate = v
		}
	}
}

// NewService creates a synthesizer over backend
func NewService(backend Backend, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		backend:  backend,
		validate: ValidateMP3,
		chunkLen: DefaultChunkLength,
		logger:   logger,
		stagingFn: func() (string, error) {
			return os.MkdirTemp("", StagingDirPattern)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize converts text to an MP3 at outputPath
func (s *Service) Synthesize(ctx context.Context, text, languageCode, outputPath string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("%w: text is empty", ErrSynthesisFailed)
	}
	if languageCode == "" {
		return fmt.Errorf("%w: language code is empty", ErrSynthesisFailed)
	}
	if outputPath == "" {
		return fmt.Errorf("%w: output path is empty", ErrSynthesisFailed)
	}

	chunks := SplitText(text, s.chunkLen)

	staging, err := s.stagingFn()
	if err != nil {
		return fmt.Errorf("%w: failed to create staging dir: %v", ErrSynthesisFailed, err)
	}
	defer os.RemoveAll(staging)

	combined := filepath.Join(staging, CombinedFileName)
	if err := s.fetchAll(ctx, chunks, languageCode, staging, combined); err != nil {
		s.logger.Warn("speech synthesis failed",
			zap.String("lang", languageCode),
			zap.Int("chunks", len(chunks)),
			zap.Error(err))
		return fmt.Errorf("%w: %v", ErrSynthesisFailed, err)
	}

	if err := s.validate(combined); err != nil {
		s.logger.Warn("synthesized audio is not valid MP3", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrSynthesisFailed, err)
	}

	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(outputPath)); err != nil {
		return fmt.Errorf("%w: %v", ErrSynthesisFailed, err)
	}
	if err := platform.MoveFile(combined, outputPath); err != nil {
		return fmt.Errorf("%w: %v", ErrSynthesisFailed, err)
	}

	s.logger.Info("speech synthesized",
		zap.String("lang", languageCode),
		zap.Int("chunks", len(chunks)),
		zap.String("path", outputPath))
	return nil
}

// fetchAll requests every chunk and appends the MP3 streams into combined.
// MP3 frames are self-delimiting, so plain concatenation plays back in order.
func (s *Service) fetchAll(ctx context.Context, chunks []string, languageCode, staging, combined string) error {
	out, err := os.Create(combined)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", combined, err)
	}
	defer out.Close()

	batch := uuid.NewString()
	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := fmt.Sprintf("%s-%03d", batch, i)
		part, err := s.backend.Fetch(ctx, chunk, languageCode, staging, name)
		if err != nil {
			return fmt.Errorf("chunk %d/%d: %w", i+1, len(chunks), err)
		}
		if err := appendFile(out, part); err != nil {
			return fmt.Errorf("chunk %d/%d: %w", i+1, len(chunks), err)
		}
	}

	return out.Close()
}

func appendFile(dst io.Writer, path string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	n, err := io.Copy(dst, in)
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.New("backend returned no audio")
	}
	return nil
}
