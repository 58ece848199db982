package transcript

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"youtube-summarizer/domain/model"
	"youtube-summarizer/domain/repository"
	"youtube-summarizer/infrastructure/logger"
)

const (
	defaultWatchBaseURL = "https://www.youtube.com/watch?v="
	// playerResponseMarker marks the start of the player response JSON
	// embedded in the watch page HTML.
	playerResponseMarker = "ytInitialPlayerResponse = "

	watchPageLimit = 6 * 1024 * 1024
	timedTextLimit = 512 * 1024

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
)

// Client fetches transcripts by scraping the watch page for
// ytInitialPlayerResponse and downloading the chosen caption track.
type Client struct {
	httpClient   *http.Client
	watchBaseURL string
}

// NewTranscriptClient creates a transcript client with default endpoints.
func NewTranscriptClient() repository.ITranscript {
	return &Client{
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		watchBaseURL: defaultWatchBaseURL,
	}
}

// GetTranscript retrieves the caption text for a video. Manual captions in
// the requested language win over auto-generated ones; anything else is
// ErrNoCaptionsAvailable.
func (c *Client) GetTranscript(ctx context.Context, videoID, language string) (*model.Transcript, error) {
	player, err := c.fetchPlayerResponse(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if player.Captions == nil {
		reason := ""
		if player.PlayabilityStatus != nil {
			reason = player.PlayabilityStatus.Reason
		}
		if reason != "" {
			return nil, fmt.Errorf("%w: %s", model.ErrNoCaptionsAvailable, reason)
		}
		return nil, fmt.Errorf("%w: video %s has no caption data", model.ErrNoCaptionsAvailable, videoID)
	}

	tracks := player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	track, ok := pickTrack(tracks, language)
	if !ok {
		return nil, fmt.Errorf("%w: no %q caption track for video %s", model.ErrNoCaptionsAvailable, language, videoID)
	}

	text, err := c.fetchTimedText(ctx, track.BaseURL)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, fmt.Errorf("%w: caption track for video %s is empty", model.ErrNoCaptionsAvailable, videoID)
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"videoId":  videoID,
		"language": track.LanguageCode,
		"auto":     track.Kind == "asr",
		"chars":    len(text),
	}).Info("Transcript fetched")

	return &model.Transcript{
		VideoID:       videoID,
		Language:      track.LanguageCode,
		Text:          text,
		AutoGenerated: track.Kind == "asr",
	}, nil
}

// pickTrack selects a caption track: manual track in the requested language
// first, auto-generated track in that language second.
func pickTrack(tracks []captionTrack, language string) (captionTrack, bool) {
	for _, t := range tracks {
		if t.LanguageCode == language && t.Kind != "asr" {
			return t, true
		}
	}
	for _, t := range tracks {
		if t.LanguageCode == language {
			return t, true
		}
	}
	return captionTrack{}, false
}

func (c *Client) fetchPlayerResponse(ctx context.Context, videoID string) (*playerResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.watchBaseURL+videoID, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create watch request: %v", model.ErrTranscriptFetch, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: watch page: %v", model.ErrTranscriptFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: watch page status %d", model.ErrTranscriptFetch, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, watchPageLimit))
	if err != nil {
		return nil, fmt.Errorf("%w: read watch page: %v", model.ErrTranscriptFetch, err)
	}

	idx := strings.Index(string(body), playerResponseMarker)
	if idx < 0 {
		return nil, fmt.Errorf("%w: ytInitialPlayerResponse not found", model.ErrTranscriptFetch)
	}
	jsonData := extractJSON(body[idx+len(playerResponseMarker):])
	if jsonData == nil {
		return nil, fmt.Errorf("%w: malformed ytInitialPlayerResponse", model.ErrTranscriptFetch)
	}

	var player playerResponse
	if err := json.Unmarshal(jsonData, &player); err != nil {
		return nil, fmt.Errorf("%w: decode ytInitialPlayerResponse: %v", model.ErrTranscriptFetch, err)
	}
	return &player, nil
}

// fetchTimedText downloads and flattens a caption track XML document,
// preserving fragment order.
func (c *Client) fetchTimedText(ctx context.Context, baseURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: create timedtext request: %v", model.ErrTranscriptFetch, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: fetch timedtext: %v", model.ErrTranscriptFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: timedtext status %d", model.ErrTranscriptFetch, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, timedTextLimit))
	if err != nil {
		return "", fmt.Errorf("%w: read timedtext: %v", model.ErrTranscriptFetch, err)
	}

	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return "", fmt.Errorf("%w: parse timedtext XML: %v", model.ErrTranscriptFetch, err)
	}

	var sb strings.Builder
	for _, line := range tt.Lines {
		text := strings.TrimSpace(html.UnescapeString(line.Text))
		if text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

// extractJSON returns the first balanced JSON object at the start of data,
// skipping string contents and escapes.
func extractJSON(data []byte) []byte {
	depth := 0
	inString := false
	escaped := false
	for i, b := range data {
		if escaped {
			escaped = false
			continue
		}
		switch b {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return data[:i+1]
				}
			}
		default:
			if depth == 0 && b != ' ' && b != '\n' && b != '\t' {
				return nil
			}
		}
	}
	return nil
}
