package model

// PlaybackState represents the state of a playback session
type PlaybackState string

const (
	// PlaybackIdle means nothing is playing
	PlaybackIdle PlaybackState = "Idle"

	// PlaybackPlaying means audio is being played
	PlaybackPlaying PlaybackState = "Playing"

	// PlaybackStopped means the session was stopped by the user
	PlaybackStopped PlaybackState = "Stopped"
)

// String returns the string representation of PlaybackState
func (ps PlaybackState) String() string {
	return string(ps)
}

// IsActive returns true if audio is currently playing
func (ps PlaybackState) IsActive() bool {
	return ps == PlaybackPlaying
}
