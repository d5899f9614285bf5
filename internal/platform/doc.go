package platform

// Package platform contains OS and filesystem glue: temporary audio files,
// moving generated files into place, and opening files with the OS default app.
