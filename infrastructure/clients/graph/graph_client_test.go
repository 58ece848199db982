package graph

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"youtube-summarizer/domain/dto"
	"youtube-summarizer/domain/model"
)

func newGraphTestClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
	}
}

func TestEnsureNotebook(t *testing.T) {
	t.Run("existing notebook reused", func(t *testing.T) {
		createCalls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/me/onenote/notebooks", r.URL.Path)
			require.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
			if r.Method == http.MethodPost {
				createCalls++
			}
			json.NewEncoder(w).Encode(dto.NotebooksResponse{Value: []model.Notebook{
				{ID: "nb-other", DisplayName: "Work"},
				{ID: "nb-1", DisplayName: "YouTube Summaries"},
			}})
		}))
		defer server.Close()

		client := newGraphTestClient(server.URL)
		id, err := client.EnsureNotebook(context.Background(), "token-1", "YouTube Summaries")
		require.NoError(t, err)
		assert.Equal(t, "nb-1", id)
		assert.Zero(t, createCalls)
	})

	t.Run("missing notebook created", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet {
				json.NewEncoder(w).Encode(dto.NotebooksResponse{})
				return
			}
			var req dto.CreateNotebookRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "YouTube Summaries", req.DisplayName)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(model.Notebook{ID: "nb-new", DisplayName: req.DisplayName})
		}))
		defer server.Close()

		client := newGraphTestClient(server.URL)
		id, err := client.EnsureNotebook(context.Background(), "token-1", "YouTube Summaries")
		require.NoError(t, err)
		assert.Equal(t, "nb-new", id)
	})
}

func TestEnsureSection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/me/onenote/notebooks/nb-1/sections", r.URL.Path)
		if r.Method == http.MethodGet {
			json.NewEncoder(w).Encode(dto.SectionsResponse{Value: []model.Section{
				{ID: "sec-old", DisplayName: "Notes"},
			}})
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(model.Section{ID: "sec-new", DisplayName: "AI Generated Summaries"})
	}))
	defer server.Close()

	client := newGraphTestClient(server.URL)
	id, err := client.EnsureSection(context.Background(), "token-1", "nb-1", "AI Generated Summaries")
	require.NoError(t, err)
	assert.Equal(t, "sec-new", id)
}

func TestCreatePage(t *testing.T) {
	t.Run("created page returns web url", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/me/onenote/sections/sec-1/pages", r.URL.Path)
			require.Equal(t, "text/html", r.Header.Get("Content-Type"))
			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{"id":"page-1","title":"T","links":{"oneNoteWebUrl":{"href":"https://onenote.example/page-1"}}}`)
		}))
		defer server.Close()

		client := newGraphTestClient(server.URL)
		url, err := client.CreatePage(context.Background(), "token-1", "sec-1", "T", "<html></html>")
		require.NoError(t, err)
		assert.Equal(t, "https://onenote.example/page-1", url)
	})

	t.Run("rejection maps to page creation error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error":{"code":"InvalidContent","message":"malformed page html"}}`)
		}))
		defer server.Close()

		client := newGraphTestClient(server.URL)
		_, err := client.CreatePage(context.Background(), "token-1", "sec-1", "T", "bad")
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrPageCreation), "got %v", err)
		assert.Contains(t, err.Error(), "malformed page html")
	})
}

func TestSearchPages(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/me/onenote/pages", r.URL.Path)
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(dto.PagesResponse{})
	}))
	defer server.Close()

	client := newGraphTestClient(server.URL)
	pages, err := client.SearchPages(context.Background(), "token-1", "nb-1", "compilers")
	require.NoError(t, err)
	assert.Empty(t, pages)
	assert.Equal(t, "compilers", mustQueryParam(t, gotQuery, "$search"))
	assert.Equal(t, "parentNotebook/id eq 'nb-1'", mustQueryParam(t, gotQuery, "$filter"))
}

func TestListRecentPages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/me/onenote/sections/sec-1/pages", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("$top"))
		assert.Equal(t, "createdDateTime desc", r.URL.Query().Get("$orderby"))
		json.NewEncoder(w).Encode(dto.PagesResponse{Value: []dto.GraphPage{
			{ID: "p1", Title: "Newest"},
			{ID: "p2", Title: "Older", Links: &dto.PageLinks{OneNoteWebURL: &dto.PageLink{Href: "https://onenote.example/p2"}}},
		}})
	}))
	defer server.Close()

	client := newGraphTestClient(server.URL)
	pages, err := client.ListRecentPages(context.Background(), "token-1", "sec-1", 5)
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, "Newest", pages[0].Title)
	assert.Empty(t, pages[0].URL)
	assert.Equal(t, "https://onenote.example/p2", pages[1].URL)
}

func mustQueryParam(t *testing.T, rawQuery, key string) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return req.URL.Query().Get(key)
}
