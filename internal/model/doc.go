package model

// Package model defines the small in-memory data structures shared across the
// app: the form snapshot handed to the controller, generated audio artifacts,
// and the playback state enum. Nothing here is persisted.
