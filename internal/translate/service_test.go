package translate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubBackend struct {
	result string
	err    error
	calls  []string
}

func (s *stubBackend) Translate(ctx context.Context, text, targetCode string) (string, error) {
	s.calls = append(s.calls, text+"|"+targetCode)
	return s.result, s.err
}

func TestService_Translate(t *testing.T) {
	backend := &stubBackend{result: "Bonjour"}
	svc := NewService(backend, zap.NewNop())

	require.True(t, svc.Available())
	out, err := svc.Translate(context.Background(), "Hola", "fr")
	require.NoError(t, err)
	assert.Equal(t, "Bonjour", out)
	assert.Equal(t, []string{"Hola|fr"}, backend.calls)
}

func TestService_BackendFailureReturnsOriginal(t *testing.T) {
	backend := &stubBackend{err: errors.New("network down")}
	svc := NewService(backend, zap.NewNop())

	out, err := svc.Translate(context.Background(), "Hola", "fr")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTranslationFailed))
	assert.Contains(t, err.Error(), "network down")
	assert.Equal(t, "Hola", out)
}

func TestService_EmptyResultReturnsOriginal(t *testing.T) {
	svc := NewService(&stubBackend{result: "   "}, zap.NewNop())

	out, err := svc.Translate(context.Background(), "Hola", "fr")
	assert.True(t, errors.Is(err, ErrTranslationFailed))
	assert.Equal(t, "Hola", out)
}

func TestService_Unavailable(t *testing.T) {
	svc := NewService(nil, nil)

	assert.False(t, svc.Available())
	out, err := svc.Translate(context.Background(), "Hola", "fr")
	assert.ErrorIs(t, err, ErrCapabilityUnavailable)
	assert.Equal(t, "Hola", out)
}
