package model

import (
	"fmt"
	"regexp"
	"time"
)

// VideoReference ties the user-supplied URL to the resolved video id.
type VideoReference struct {
	URL string `json:"url"`
	ID  string `json:"id"`
}

// YouTubeVideo holds the metadata we look up for page titles.
type YouTubeVideo struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ChannelID   string    `json:"channel_id"`
	ChannelName string    `json:"channel_name"`
	PublishedAt time.Time `json:"published_at"`
	Duration    string    `json:"duration"`
}

// Recognized YouTube URL shapes. A bare 11-character id is accepted too.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?(?:.*&)?v=)([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`(?:youtu\.be/)([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`(?:youtube\.com/embed/)([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`(?:youtube\.com/shorts/)([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`(?:youtube\.com/live/)([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`^([A-Za-z0-9_-]{11})$`),
}

// NewVideoReference extracts the video id from a URL.
// Returns ErrInvalidURL when no known pattern matches.
func NewVideoReference(url string) (*VideoReference, error) {
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(url); len(m) == 2 {
			return &VideoReference{URL: url, ID: m[1]}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidURL, url)
}

// WatchURL returns the canonical watch URL for the video.
func (v *VideoReference) WatchURL() string {
	return "https://www.youtube.com/watch?v=" + v.ID
}
