package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"youtube-summarizer/domain/dto"
	"youtube-summarizer/domain/model"
	"youtube-summarizer/domain/repository"
	"youtube-summarizer/infrastructure/logger"

	"github.com/google/go-querystring/query"
)

const defaultGraphBaseURL = "https://graph.microsoft.com/v1.0"

// Client talks to the Microsoft Graph OneNote API. Every call takes the
// access token from the caller.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewGraphClient creates a Graph client against the production endpoint.
func NewGraphClient() repository.IOneNote {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultGraphBaseURL,
	}
}

// ListNotebooks returns all notebooks of the signed-in user.
func (c *Client) ListNotebooks(ctx context.Context, accessToken string) ([]model.Notebook, error) {
	var response dto.NotebooksResponse
	url := fmt.Sprintf("%s/me/onenote/notebooks", c.baseURL)
	if err := c.getJSON(ctx, accessToken, url, &response); err != nil {
		return nil, fmt.Errorf("get notebooks: %w", err)
	}
	return response.Value, nil
}

// EnsureNotebook finds a notebook by exact display name, creating it when
// absent. Repeated calls are idempotent.
func (c *Client) EnsureNotebook(ctx context.Context, accessToken, name string) (string, error) {
	notebooks, err := c.ListNotebooks(ctx, accessToken)
	if err != nil {
		return "", err
	}
	for _, nb := range notebooks {
		if nb.DisplayName == name {
			return nb.ID, nil
		}
	}

	logger.GetLogger().WithField("notebook", name).Info("Creating notebook")
	var created model.Notebook
	url := fmt.Sprintf("%s/me/onenote/notebooks", c.baseURL)
	if err := c.postJSON(ctx, accessToken, url, dto.CreateNotebookRequest{DisplayName: name}, &created); err != nil {
		return "", fmt.Errorf("create notebook %q: %w", name, err)
	}
	return created.ID, nil
}

// EnsureSection is the notebook lookup-or-create pattern scoped to sections.
func (c *Client) EnsureSection(ctx context.Context, accessToken, notebookID, name string) (string, error) {
	var response dto.SectionsResponse
	url := fmt.Sprintf("%s/me/onenote/notebooks/%s/sections", c.baseURL, notebookID)
	if err := c.getJSON(ctx, accessToken, url, &response); err != nil {
		return "", fmt.Errorf("get sections (notebook_id: %s): %w", notebookID, err)
	}
	for _, s := range response.Value {
		if s.DisplayName == name {
			return s.ID, nil
		}
	}

	logger.GetLogger().WithField("section", name).Info("Creating section")
	var created model.Section
	if err := c.postJSON(ctx, accessToken, url, dto.CreateNotebookRequest{DisplayName: name}, &created); err != nil {
		return "", fmt.Errorf("create section %q: %w", name, err)
	}
	return created.ID, nil
}

// CreatePage posts an HTML page into a section and returns its web URL.
func (c *Client) CreatePage(ctx context.Context, accessToken, sectionID, title, html string) (string, error) {
	url := fmt.Sprintf("%s/me/onenote/sections/%s/pages", c.baseURL, sectionID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("%w: create page request: %v", model.ErrPageCreation, err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "text/html")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("%w: status %d: %s", model.ErrPageCreation, resp.StatusCode, readGraphError(resp.Body))
	}

	var page dto.GraphPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return "", fmt.Errorf("%w: decode page response: %v", model.ErrPageCreation, err)
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"pageId": page.ID,
		"title":  title,
	}).Info("OneNote page created")
	return page.Ref().URL, nil
}

// SearchPages returns pages in the notebook matching query. No matches is
// an empty slice, not an error.
func (c *Client) SearchPages(ctx context.Context, accessToken, notebookID, q string) ([]model.PageRef, error) {
	opts := dto.PageSearchOptions{Search: q}
	if notebookID != "" {
		opts.Filter = fmt.Sprintf("parentNotebook/id eq '%s'", notebookID)
	}
	values, err := query.Values(opts)
	if err != nil {
		return nil, fmt.Errorf("encode search options: %w", err)
	}

	var response dto.PagesResponse
	url := fmt.Sprintf("%s/me/onenote/pages?%s", c.baseURL, values.Encode())
	if err := c.getJSON(ctx, accessToken, url, &response); err != nil {
		return nil, fmt.Errorf("search pages: %w", err)
	}
	return pageRefs(response.Value), nil
}

// ListRecentPages returns up to count pages of the section, newest first.
func (c *Client) ListRecentPages(ctx context.Context, accessToken, sectionID string, count int) ([]model.PageRef, error) {
	opts := dto.PageListOptions{Top: count, OrderBy: "createdDateTime desc"}
	values, err := query.Values(opts)
	if err != nil {
		return nil, fmt.Errorf("encode list options: %w", err)
	}

	var response dto.PagesResponse
	url := fmt.Sprintf("%s/me/onenote/sections/%s/pages?%s", c.baseURL, sectionID, values.Encode())
	if err := c.getJSON(ctx, accessToken, url, &response); err != nil {
		return nil, fmt.Errorf("list recent pages: %w", err)
	}
	return pageRefs(response.Value), nil
}

func pageRefs(pages []dto.GraphPage) []model.PageRef {
	refs := make([]model.PageRef, 0, len(pages))
	for i := range pages {
		refs = append(refs, pages[i].Ref())
	}
	return refs
}

func (c *Client) getJSON(ctx context.Context, accessToken, url string, result interface{}) error {
	return c.doJSON(ctx, accessToken, http.MethodGet, url, nil, result)
}

func (c *Client) postJSON(ctx context.Context, accessToken, url string, body, result interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}
	return c.doJSON(ctx, accessToken, http.MethodPost, url, payload, result)
}

func (c *Client) doJSON(ctx context.Context, accessToken, method, url string, body []byte, result interface{}) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("create request (url: %s): %w", url, err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("request failed (url: %s, status: %d): %s", url, resp.StatusCode, readGraphError(resp.Body))
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response (url: %s): %w", url, err)
	}
	return nil
}

// readGraphError extracts the Graph error message, falling back to the raw
// body when the envelope doesn't parse.
func readGraphError(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, 8*1024))
	var envelope dto.GraphErrorResponse
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error.Message != "" {
		return fmt.Sprintf("%s: %s", envelope.Error.Code, envelope.Error.Message)
	}
	return string(raw)
}
