package model

import "errors"

// Failure categories surfaced to the CLI. Lower layers wrap these with
// fmt.Errorf("...: %w", ...) so callers can match with errors.Is.
var (
	ErrInvalidURL           = errors.New("invalid YouTube URL")
	ErrNoCaptionsAvailable  = errors.New("no captions available")
	ErrTranscriptFetch      = errors.New("transcript fetch failed")
	ErrSummarization        = errors.New("summarization failed")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrNetwork              = errors.New("network error")
	ErrPageCreation         = errors.New("page creation failed")
)
