//go:build !notranslate

package translate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultBackend(t *testing.T) {
	backend := NewDefaultBackend(0)
	require.NotNil(t, backend)

	google, ok := backend.(*GoogleBackend)
	require.True(t, ok)
	assert.Equal(t, 1, google.tries, "tries should be at least 1")
}

func TestGoogleBackend_CancelledContext(t *testing.T) {
	backend := NewDefaultBackend(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := backend.Translate(ctx, "Hola", "fr")
	assert.ErrorIs(t, err, context.Canceled)
}
