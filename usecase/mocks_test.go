package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"youtube-summarizer/domain/model"
)

type MockTranscript struct {
	mock.Mock
}

func (m *MockTranscript) GetTranscript(ctx context.Context, videoID, language string) (*model.Transcript, error) {
	args := m.Called(ctx, videoID, language)
	if t := args.Get(0); t != nil {
		return t.(*model.Transcript), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockSummarizer struct {
	mock.Mock
}

func (m *MockSummarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	args := m.Called(ctx, transcript)
	return args.String(0), args.Error(1)
}

type MockVideoMetadata struct {
	mock.Mock
}

func (m *MockVideoMetadata) GetVideoDetails(ctx context.Context, videoID string) (*model.YouTubeVideo, error) {
	args := m.Called(ctx, videoID)
	if v := args.Get(0); v != nil {
		return v.(*model.YouTubeVideo), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockTranscriptCache struct {
	mock.Mock
}

func (m *MockTranscriptCache) Get(ctx context.Context, videoID, language string) (*model.Transcript, error) {
	args := m.Called(ctx, videoID, language)
	if t := args.Get(0); t != nil {
		return t.(*model.Transcript), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTranscriptCache) Set(ctx context.Context, transcript *model.Transcript, ttl time.Duration) error {
	args := m.Called(ctx, transcript, ttl)
	return args.Error(0)
}

type MockTokenProvider struct {
	mock.Mock
}

func (m *MockTokenProvider) GetAccessToken(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockTokenProvider) AccountName(ctx context.Context) string {
	args := m.Called(ctx)
	return args.String(0)
}

func (m *MockTokenProvider) ClearCache() error {
	args := m.Called()
	return args.Error(0)
}

type MockOneNote struct {
	mock.Mock
}

func (m *MockOneNote) ListNotebooks(ctx context.Context, accessToken string) ([]model.Notebook, error) {
	args := m.Called(ctx, accessToken)
	if v := args.Get(0); v != nil {
		return v.([]model.Notebook), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOneNote) EnsureNotebook(ctx context.Context, accessToken, name string) (string, error) {
	args := m.Called(ctx, accessToken, name)
	return args.String(0), args.Error(1)
}

func (m *MockOneNote) EnsureSection(ctx context.Context, accessToken, notebookID, name string) (string, error) {
	args := m.Called(ctx, accessToken, notebookID, name)
	return args.String(0), args.Error(1)
}

func (m *MockOneNote) CreatePage(ctx context.Context, accessToken, sectionID, title, html string) (string, error) {
	args := m.Called(ctx, accessToken, sectionID, title, html)
	return args.String(0), args.Error(1)
}

func (m *MockOneNote) SearchPages(ctx context.Context, accessToken, notebookID, query string) ([]model.PageRef, error) {
	args := m.Called(ctx, accessToken, notebookID, query)
	if v := args.Get(0); v != nil {
		return v.([]model.PageRef), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOneNote) ListRecentPages(ctx context.Context, accessToken, sectionID string, count int) ([]model.PageRef, error) {
	args := m.Called(ctx, accessToken, sectionID, count)
	if v := args.Get(0); v != nil {
		return v.([]model.PageRef), args.Error(1)
	}
	return nil, args.Error(1)
}
