package playback

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDelegate_WaitsFixedDelay(t *testing.T) {
	var opened []string
	delegate := NewDelegate(func(path string) error {
		opened = append(opened, path)
		return nil
	}, 30*time.Millisecond)

	start := time.Now()
	err := delegate.Play(context.Background(), "/tmp/a.mp3")

	assert.NoError(t, err)
	assert.Equal(t, []string{"/tmp/a.mp3"}, opened)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	assert.Equal(t, DelegateName, delegate.Name())
}

func TestDelegate_CancelEndsWait(t *testing.T) {
	delegate := NewDelegate(func(string) error { return nil }, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err := delegate.Play(ctx, "/tmp/a.mp3")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDelegate_OpenFailure(t *testing.T) {
	delegate := NewDelegate(func(string) error { return errors.New("no handler") }, time.Hour)

	err := delegate.Play(context.Background(), "/tmp/a.mp3")
	assert.ErrorIs(t, err, ErrPlaybackFailed)
	assert.Contains(t, err.Error(), "no handler")
}
