package playback

import (
	"context"
	"fmt"
	"time"
)

// DelegateName identifies the OS delegate strategy
const DelegateName = "delegate"

// Delegate opens files with the OS default application. The real end of
// playback cannot be observed, so Play returns after a fixed delay. Stop
// only ends the wait; the external player keeps going.
type Delegate struct {
	open  Opener
	delay time.Duration
}

// NewDelegate creates a delegate strategy
func NewDelegate(open Opener, delay time.Duration) *Delegate {
	return &Delegate{open: open, delay: delay}
}

// Name returns the strategy name
func (d *Delegate) Name() string {
	return DelegateName
}

// Play opens path and waits for the approximate duration
func (d *Delegate) Play(ctx context.Context, path string) error {
	if err := d.open(path); err != nil {
		return fmt.Errorf("%w: %v", ErrPlaybackFailed, err)
	}

	timer := time.NewTimer(d.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
