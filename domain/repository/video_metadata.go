package repository

import (
	"context"

	"youtube-summarizer/domain/model"
)

// IVideoMetadata looks up video details (title, channel) for page naming.
type IVideoMetadata interface {
	GetVideoDetails(ctx context.Context, videoID string) (*model.YouTubeVideo, error)
}
