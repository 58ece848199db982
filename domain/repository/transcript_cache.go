package repository

import (
	"context"
	"time"

	"youtube-summarizer/domain/model"
)

// ITranscriptCache caches fetched transcripts so re-summarizing a video does
// not hit YouTube again. Get returns (nil, nil) on a miss.
type ITranscriptCache interface {
	Get(ctx context.Context, videoID, language string) (*model.Transcript, error)
	Set(ctx context.Context, transcript *model.Transcript, ttl time.Duration) error
}
