package dto

import "youtube-summarizer/domain/model"

// Microsoft Graph OneNote wire types.

type NotebooksResponse struct {
	Value []model.Notebook `json:"value"`
}

type SectionsResponse struct {
	Value []model.Section `json:"value"`
}

type PagesResponse struct {
	Value []GraphPage `json:"value"`
}

// GraphPage is a OneNote page as returned by Graph list/search/create calls.
type GraphPage struct {
	ID    string     `json:"id"`
	Title string     `json:"title"`
	Links *PageLinks `json:"links,omitempty"`
}

type PageLinks struct {
	OneNoteWebURL *PageLink `json:"oneNoteWebUrl,omitempty"`
}

type PageLink struct {
	Href string `json:"href"`
}

// Ref converts a Graph page to the (title, url) pair exposed upstream.
func (p *GraphPage) Ref() model.PageRef {
	ref := model.PageRef{Title: p.Title}
	if p.Links != nil && p.Links.OneNoteWebURL != nil {
		ref.URL = p.Links.OneNoteWebURL.Href
	}
	return ref
}

// CreateNotebookRequest creates a notebook or section by display name.
type CreateNotebookRequest struct {
	DisplayName string `json:"displayName"`
}

// GraphErrorResponse is the error envelope Graph returns on failures.
type GraphErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// OData query options, encoded with go-querystring.

// PageListOptions orders recent pages newest first.
type PageListOptions struct {
	Top     int    `url:"$top"`
	OrderBy string `url:"$orderby"`
}

// PageSearchOptions scopes a full-text page search to a notebook.
type PageSearchOptions struct {
	Filter string `url:"$filter,omitempty"`
	Search string `url:"$search"`
}
