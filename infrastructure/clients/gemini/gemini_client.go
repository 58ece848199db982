package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"youtube-summarizer/domain/model"
	"youtube-summarizer/domain/repository"
	"youtube-summarizer/infrastructure/logger"

	"github.com/sashabaranov/go-openai"
)

// Gemini exposes an OpenAI-compatible chat endpoint; go-openai pointed at it
// keeps the GOOGLE_API_KEY as the only credential.
const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"

const (
	temperature = 0.3
	maxAttempts = 3
	retryDelay  = 2 * time.Second
	// transcriptCharLimit bounds the prompt; anything longer is cut.
	transcriptCharLimit = 400_000
)

// Config holds the generative model settings.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Client calls the Gemini chat endpoint to summarize transcripts.
type Client struct {
	client *openai.Client
	model  string
}

// NewGeminiClient creates a summarizer backed by the Gemini API.
func NewGeminiClient(cfg *Config) (repository.ISummarizer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: GOOGLE_API_KEY is not set", model.ErrSummarization)
	}
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = defaultBaseURL
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	m := cfg.Model
	if m == "" {
		m = "gemini-2.5-flash"
	}
	return &Client{
		client: openai.NewClientWithConfig(clientConfig),
		model:  m,
	}, nil
}

// Summarize sends the fixed prompt plus transcript and returns the model
// output verbatim. Missing sections are logged, not rejected.
func (c *Client) Summarize(ctx context.Context, transcript string) (string, error) {
	if len(transcript) > transcriptCharLimit {
		cut := transcriptCharLimit
		// back up to a rune boundary so the prompt stays valid UTF-8
		for cut > 0 && !utf8.RuneStart(transcript[cut]) {
			cut--
		}
		transcript = transcript[:cut]
	}

	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: SummaryPrompt + "\n\n" + transcript,
			},
		},
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err := c.client.CreateChatCompletion(ctx, req)
		if err != nil {
			lastErr = err
			logger.GetLogger().WithFields(map[string]interface{}{
				"attempt": attempt,
				"error":   err,
			}).Warn("Summary generation attempt failed")
			select {
			case <-ctx.Done():
				return "", fmt.Errorf("%w: %v", model.ErrSummarization, ctx.Err())
			case <-time.After(retryDelay * time.Duration(attempt)):
			}
			continue
		}
		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("%w: model returned no choices", model.ErrSummarization)
		}
		summary := resp.Choices[0].Message.Content
		if missing := missingSections(summary); len(missing) > 0 {
			logger.GetLogger().WithField("missing", missing).Warn("Summary is missing expected sections")
		}
		return summary, nil
	}
	return "", fmt.Errorf("%w: %v", model.ErrSummarization, lastErr)
}

// missingSections reports which of the five required headers are absent.
func missingSections(summary string) []string {
	var missing []string
	for _, section := range RequiredSections {
		if !strings.Contains(summary, section) {
			missing = append(missing, section)
		}
	}
	return missing
}
