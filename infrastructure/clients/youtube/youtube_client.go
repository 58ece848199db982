package youtube

import (
	"context"
	"fmt"
	"time"

	"youtube-summarizer/domain/model"
	"youtube-summarizer/domain/repository"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Client is a read-only YouTube Data API client in API-key mode. It shares
// the GOOGLE_API_KEY used for Gemini.
type Client struct {
	service *youtube.Service
}

// NewYouTubeClient creates a metadata client with the given API key.
func NewYouTubeClient(ctx context.Context, apiKey string) (repository.IVideoMetadata, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("youtube metadata client requires an API key")
	}
	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service with API key: %w", err)
	}
	return &Client{service: service}, nil
}

// GetVideoDetails retrieves snippet details for a specific video.
func (c *Client) GetVideoDetails(ctx context.Context, videoID string) (*model.YouTubeVideo, error) {
	call := c.service.Videos.List([]string{"snippet", "contentDetails"}).
		Id(videoID).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get video details: %w", err)
	}
	if len(response.Items) == 0 {
		return nil, fmt.Errorf("video not found: %s", videoID)
	}

	video := convertToYouTubeVideo(response.Items[0])
	return &video, nil
}

// convertToYouTubeVideo converts a YouTube API video to our model.
func convertToYouTubeVideo(video *youtube.Video) model.YouTubeVideo {
	publishedAt, _ := time.Parse(time.RFC3339, video.Snippet.PublishedAt)

	ytVideo := model.YouTubeVideo{
		ID:          video.Id,
		Title:       video.Snippet.Title,
		Description: video.Snippet.Description,
		ChannelID:   video.Snippet.ChannelId,
		ChannelName: video.Snippet.ChannelTitle,
		PublishedAt: publishedAt,
	}
	if video.ContentDetails != nil {
		ytVideo.Duration = video.ContentDetails.Duration
	}
	return ytVideo
}
