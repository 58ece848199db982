package repository

import (
	"context"

	"youtube-summarizer/domain/model"
)

// ITranscript retrieves the caption text for a video id. A manually
// authored track in the requested language is preferred over an
// auto-generated one.
type ITranscript interface {
	GetTranscript(ctx context.Context, videoID, language string) (*model.Transcript, error)
}
