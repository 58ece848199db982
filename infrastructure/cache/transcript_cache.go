package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"youtube-summarizer/domain/model"
	"youtube-summarizer/domain/repository"

	"github.com/redis/go-redis/v9"
)

// TranscriptCache stores fetched transcripts in Redis keyed by video id and
// language, so re-summarizing a video skips YouTube entirely.
type TranscriptCache struct {
	client *redis.Client
}

func NewTranscriptCache(client *redis.Client) repository.ITranscriptCache {
	return &TranscriptCache{client: client}
}

func transcriptKey(videoID, language string) string {
	return fmt.Sprintf("transcript:%s:%s", videoID, language)
}

// Get returns the cached transcript or (nil, nil) on a miss.
func (c *TranscriptCache) Get(ctx context.Context, videoID, language string) (*model.Transcript, error) {
	if c.client == nil {
		return nil, nil
	}
	data, err := c.client.Get(ctx, transcriptKey(videoID, language)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}
	var transcript model.Transcript
	if err := json.Unmarshal(data, &transcript); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &transcript, nil
}

func (c *TranscriptCache) Set(ctx context.Context, transcript *model.Transcript, ttl time.Duration) error {
	if c.client == nil {
		return nil
	}
	data, err := json.Marshal(transcript)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	key := transcriptKey(transcript.VideoID, transcript.Language)
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}
