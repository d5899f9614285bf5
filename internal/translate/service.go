package translate

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Service is the best-effort Translator over a Backend
type Service struct {
	backend Backend
	logger  *zap.Logger
}

// NewService wraps backend. A nil backend yields an unavailable translator.
func NewService(backend Backend, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{backend: backend, logger: logger}
}

// Available reports whether a backend is wired
func (s *Service) Available() bool {
	return s.backend != nil
}

// Translate translates text into targetCode, falling back to the input
func (s *Service) Translate(ctx context.Context, text, targetCode string) (string, error) {
	if s.backend == nil {
		s.logger.Warn("translation requested but capability unavailable")
		return text, ErrCapabilityUnavailable
	}

	translated, err := s.backend.Translate(ctx, text, targetCode)
	if err != nil {
		s.logger.Warn("translation failed",
			zap.String("target", targetCode),
			zap.Int("chars", len(text)),
			zap.Error(err))
		return text, fmt.Errorf("%w: %v", ErrTranslationFailed, err)
	}

	if strings.TrimSpace(translated) == "" {
		s.logger.Warn("translation returned empty text", zap.String("target", targetCode))
		return text, fmt.Errorf("%w: empty result", ErrTranslationFailed)
	}

	s.logger.Debug("translation complete",
		zap.String("target", targetCode),
		zap.Int("chars_in", len(text)),
		zap.Int("chars_out", len(translated)))
	return translated, nil
}
