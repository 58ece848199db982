package repository

import (
	"context"

	"youtube-summarizer/domain/model"
)

// IOneNote wraps the Microsoft Graph OneNote surface. Every call takes the
// access token from the caller; the client never fetches its own.
type IOneNote interface {
	ListNotebooks(ctx context.Context, accessToken string) ([]model.Notebook, error)
	// EnsureNotebook returns the id of the notebook with the given display
	// name, creating it when absent. Name comparison is exact.
	EnsureNotebook(ctx context.Context, accessToken, name string) (string, error)
	// EnsureSection is the same lookup-or-create pattern scoped to a notebook.
	EnsureSection(ctx context.Context, accessToken, notebookID, name string) (string, error)
	// CreatePage posts an HTML page into a section and returns its web URL.
	CreatePage(ctx context.Context, accessToken, sectionID, title, html string) (string, error)
	// SearchPages returns pages in the notebook matching the query, empty
	// (not an error) when nothing matches.
	SearchPages(ctx context.Context, accessToken, notebookID, query string) ([]model.PageRef, error)
	// ListRecentPages returns up to count pages in the section, newest first.
	ListRecentPages(ctx context.Context, accessToken, sectionID string, count int) ([]model.PageRef, error)
}
