package usecase

import (
	"context"
	"fmt"
	"time"

	"youtube-summarizer/domain/model"
	"youtube-summarizer/domain/repository"
	"youtube-summarizer/infrastructure/logger"
)

// fallbackVideoTitle is used when metadata lookup is unavailable.
const fallbackVideoTitle = "YouTube Video Summary"

// transcriptCacheTTL bounds how long a fetched transcript is reused.
const transcriptCacheTTL = 24 * time.Hour

// ISummarizeUsecase turns a YouTube URL into transcript text and a summary.
type ISummarizeUsecase interface {
	// GetTranscript resolves the video id and fetches the caption text.
	GetTranscript(ctx context.Context, url, language string) (*model.Transcript, error)
	// Summarize produces the five-section summary for transcript text.
	Summarize(ctx context.Context, transcript string) (string, error)
	// VideoTitle resolves the video title, falling back to a default when
	// metadata lookup is not available.
	VideoTitle(ctx context.Context, url string) string
}

// SummarizeUsecase combines the transcript fetcher, summarizer, metadata
// lookup, and the optional transcript cache.
type SummarizeUsecase struct {
	transcriptRepo repository.ITranscript
	summarizer     repository.ISummarizer
	metadata       repository.IVideoMetadata   // optional
	cache          repository.ITranscriptCache // optional
}

func NewSummarizeUsecase(transcriptRepo repository.ITranscript, summarizer repository.ISummarizer) *SummarizeUsecase {
	return &SummarizeUsecase{transcriptRepo: transcriptRepo, summarizer: summarizer}
}

// WithMetadata enables video title lookup (fluent).
func (u *SummarizeUsecase) WithMetadata(metadata repository.IVideoMetadata) *SummarizeUsecase {
	u.metadata = metadata
	return u
}

// WithCache enables transcript caching (fluent).
func (u *SummarizeUsecase) WithCache(cache repository.ITranscriptCache) *SummarizeUsecase {
	u.cache = cache
	return u
}

// GetTranscript fetches the caption text for a URL. Unknown URL shapes fail
// with model.ErrInvalidURL before any network call.
func (u *SummarizeUsecase) GetTranscript(ctx context.Context, url, language string) (*model.Transcript, error) {
	ref, err := model.NewVideoReference(url)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		cached, err := u.cache.Get(ctx, ref.ID, language)
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Transcript cache lookup failed")
		} else if cached != nil {
			logger.GetLogger().WithField("videoId", ref.ID).Info("Transcript served from cache")
			return cached, nil
		}
	}

	transcript, err := u.transcriptRepo.GetTranscript(ctx, ref.ID, language)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		if err := u.cache.Set(ctx, transcript, transcriptCacheTTL); err != nil {
			logger.GetLogger().WithField("error", err).Warn("Transcript cache store failed")
		}
	}
	return transcript, nil
}

// Summarize returns the model's structured summary for the transcript.
func (u *SummarizeUsecase) Summarize(ctx context.Context, transcript string) (string, error) {
	if transcript == "" {
		return "", fmt.Errorf("%w: transcript is empty", model.ErrSummarization)
	}
	return u.summarizer.Summarize(ctx, transcript)
}

// VideoTitle resolves the video title for page naming. Failures degrade to
// the default title rather than blocking the save.
func (u *SummarizeUsecase) VideoTitle(ctx context.Context, url string) string {
	ref, err := model.NewVideoReference(url)
	if err != nil || u.metadata == nil {
		return fallbackVideoTitle
	}
	details, err := u.metadata.GetVideoDetails(ctx, ref.ID)
	if err != nil || details.Title == "" {
		logger.GetLogger().WithField("error", err).Debug("Video title lookup failed")
		return fallbackVideoTitle
	}
	return details.Title
}
