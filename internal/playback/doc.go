package playback

// Package playback plays generated MP3 files. Two strategies exist: a bundled
// audio engine (oto + go-mp3) that can be stopped at any time, and a delegate
// that hands the file to the OS default application and assumes it finishes
// after a fixed delay. The Manager supervises one session at a time and
// removes temporary files when their session ends.
