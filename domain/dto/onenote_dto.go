package dto

import "youtube-summarizer/domain/model"

// OneNoteResult is the normalized (success, message, data) shape every
// OneNote facade operation returns. Errors never escape the facade.
type OneNoteResult struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	PageURL string          `json:"page_url,omitempty"`
	Pages   []model.PageRef `json:"pages,omitempty"`
}

// SaveSummaryRequest carries everything needed to build one OneNote page.
type SaveSummaryRequest struct {
	VideoTitle string
	VideoURL   string
	Summary    string
	Transcript string
}
