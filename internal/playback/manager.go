package playback

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/tts-converter/internal/model"
	"github.com/ytget/tts-converter/internal/platform"
)

// Result describes how a session ended
type Result struct {
	SessionID string
	Artifact  model.AudioArtifact
	State     model.PlaybackState // Idle after natural end or failure, Stopped after Stop
	Err       error               // matches ErrPlaybackFailed when set
}

// Session is one playback attempt
type Session struct {
	ID       string
	Artifact model.AudioArtifact

	cancel context.CancelFunc
	done   chan struct{}
}

// Done is closed once the session finished and cleaned up
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Manager runs playback sessions on background goroutines. Starting a new
// session interrupts the current one. Every session removes its own
// temporary artifact when it ends; only the current session reports back.
type Manager struct {
	strategy Strategy
	logger   *zap.Logger
	remove   func(string)

	mu      sync.Mutex
	current *Session
	wg      sync.WaitGroup
}

// NewManager creates a manager over strategy
func NewManager(strategy Strategy, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		strategy: strategy,
		logger:   logger,
		remove:   platform.RemoveQuietly,
	}
}

// StrategyName returns the strategy selected at startup
func (m *Manager) StrategyName() string {
	return m.strategy.Name()
}

// Start plays artifact in the background. onFinish runs on the playback
// goroutine after cleanup, and only if the session was not superseded or
// stopped.
func (m *Manager) Start(artifact model.AudioArtifact, onFinish func(Result)) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	session := &Session{
		ID:       uuid.NewString(),
		Artifact: artifact,
		cancel:   cancel,
		done:     make(chan struct{}),
	}

	m.mu.Lock()
	previous := m.current
	m.current = session
	m.wg.Add(1)
	m.mu.Unlock()

	if previous != nil {
		m.logger.Info("interrupting previous playback",
			zap.String("session", previous.ID),
			zap.String("next", session.ID))
		previous.cancel()
	}

	m.logger.Info("playback started",
		zap.String("session", session.ID),
		zap.String("strategy", m.strategy.Name()),
		zap.String("file", artifact.DisplayName()),
		zap.Bool("temporary", artifact.Temporary))

	go m.run(ctx, session, onFinish)
	return session
}

// Stop cancels the current session. It reports whether one was active.
func (m *Manager) Stop() bool {
	m.mu.Lock()
	session := m.current
	m.current = nil
	m.mu.Unlock()

	if session == nil {
		return false
	}

	m.logger.Info("playback stop requested", zap.String("session", session.ID))
	session.cancel()
	return true
}

// Active reports whether a session is playing
func (m *Manager) Active() bool {
	return m.State().IsActive()
}

// State returns the current playback state
func (m *Manager) State() model.PlaybackState {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current != nil {
		return model.PlaybackPlaying
	}
	return model.PlaybackIdle
}

// Wait blocks until every started session has finished cleaning up
func (m *Manager) Wait() {
	m.wg.Wait()
}

func (m *Manager) run(ctx context.Context, session *Session, onFinish func(Result)) {
	defer m.wg.Done()
	defer close(session.done)
	defer session.cancel()

	err := m.play(ctx, session.Artifact.Path)

	state := model.PlaybackIdle
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		state = model.PlaybackStopped
		err = nil
	case !errors.Is(err, ErrPlaybackFailed):
		err = fmt.Errorf("%w: %v", ErrPlaybackFailed, err)
	}

	if session.Artifact.Temporary {
		m.remove(session.Artifact.Path)
	}

	m.mu.Lock()
	isCurrent := m.current == session
	if isCurrent {
		m.current = nil
	}
	m.mu.Unlock()

	if err != nil {
		m.logger.Warn("playback failed", zap.String("session", session.ID), zap.Error(err))
	} else {
		m.logger.Info("playback finished", zap.String("session", session.ID), zap.String("state", state.String()))
	}

	if isCurrent && onFinish != nil {
		onFinish(Result{
			SessionID: session.ID,
			Artifact:  session.Artifact,
			State:     state,
			Err:       err,
		})
	}
}

// play runs the strategy, turning a panic into a playback error
func (m *Manager) play(ctx context.Context, path string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", ErrPlaybackFailed, r)
		}
	}()
	return m.strategy.Play(ctx, path)
}
