// Package translate wraps the optional text translation capability. Failures
// never abort the caller: the original text is always handed back alongside
// the error so speech synthesis can go on.
package translate

import (
	"context"
	"errors"
)

var (
	// ErrCapabilityUnavailable means the binary was built without translation support
	ErrCapabilityUnavailable = errors.New("translation feature is not available")

	// ErrTranslationFailed wraps any backend failure
	ErrTranslationFailed = errors.New("translation failed")
)

// Backend performs one translation request
type Backend interface {
	Translate(ctx context.Context, text, targetCode string) (string, error)
}

// Translator is what the controller depends on
type Translator interface {
	// Available reports whether translation can be attempted at all
	Available() bool

	// Translate returns the translated text, or text unchanged plus an error
	// matching ErrCapabilityUnavailable or ErrTranslationFailed.
	Translate(ctx context.Context, text, targetCode string) (string, error)
}
