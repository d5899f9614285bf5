package playback

import (
	"context"
	"errors"
)

// ErrPlaybackFailed wraps every strategy failure
var ErrPlaybackFailed = errors.New("failed to play audio")

// Strategy plays one file
type Strategy interface {
	// Name identifies the strategy in logs
	Name() string

	// Play blocks until the file finished playing (nil), ctx was cancelled
	// (ctx.Err()), or playback failed.
	Play(ctx context.Context, path string) error
}

// Opener hands a file to an external application
type Opener func(path string) error
