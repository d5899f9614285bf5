//go:build !notranslate

package translate

import (
	"context"
	"time"

	"github.com/bregydoc/gtranslate"
)

// Google sources and retry pacing
const (
	GoogleSourceAuto = "auto"
	GoogleRetryDelay = 500 * time.Millisecond
)

// GoogleBackend translates through the public Google Translate endpoint
type GoogleBackend struct {
	tries int
}

// NewDefaultBackend returns the backend compiled into this binary
func NewDefaultBackend(tries int) Backend {
	if tries < 1 {
		tries = 1
	}
	return &GoogleBackend{tries: tries}
}

// Translate calls Google Translate. The library has no context support, so
// cancellation only stops the caller from waiting.
func (g *GoogleBackend) Translate(ctx context.Context, text, targetCode string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		translated, err := gtranslate.TranslateWithParams(text, gtranslate.TranslationParams{
			From:  GoogleSourceAuto,
			To:    targetCode,
			Tries: g.tries,
			Delay: GoogleRetryDelay,
		})
		done <- result{text: translated, err: err}
	}()

	select {
	case r := <-done:
		return r.text, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
