package usecase

import (
	"context"
	"fmt"
	"strings"

	"youtube-summarizer/domain/dto"
	"youtube-summarizer/domain/model"
	"youtube-summarizer/domain/repository"
	"youtube-summarizer/infrastructure/clients/graph"
	"youtube-summarizer/infrastructure/logger"
	"youtube-summarizer/infrastructure/utils"
)

// IOneNoteUsecase is the facade over AuthManager + the Graph client. Every
// operation returns a normalized result; errors never escape this layer.
type IOneNoteUsecase interface {
	SaveSummary(ctx context.Context, req *dto.SaveSummaryRequest) dto.OneNoteResult
	TestConnection(ctx context.Context) dto.OneNoteResult
	SearchSummaries(ctx context.Context, query string) dto.OneNoteResult
	ListRecentSummaries(ctx context.Context, count int) dto.OneNoteResult
}

// OneNoteUsecase memoizes the notebook/section ids after the first ensure,
// so repeated saves reuse them instead of re-querying Graph.
type OneNoteUsecase struct {
	tokens       repository.ITokenProvider
	onenote      repository.IOneNote
	notebookName string
	sectionName  string

	notebookID string
	sectionID  string
}

func NewOneNoteUsecase(tokens repository.ITokenProvider, onenote repository.IOneNote, notebookName, sectionName string) IOneNoteUsecase {
	return &OneNoteUsecase{
		tokens:       tokens,
		onenote:      onenote,
		notebookName: notebookName,
		sectionName:  sectionName,
	}
}

// SaveSummary creates a OneNote page for one video summary.
func (u *OneNoteUsecase) SaveSummary(ctx context.Context, req *dto.SaveSummaryRequest) dto.OneNoteResult {
	token, err := u.tokens.GetAccessToken(ctx)
	if err != nil {
		return failure("Failed to authenticate with Microsoft", err)
	}

	if err := u.ensureTarget(ctx, token); err != nil {
		return failure("Failed to prepare notebook", err)
	}

	page := model.SummaryPage{
		VideoTitle:        req.VideoTitle,
		VideoURL:          req.VideoURL,
		Timestamp:         utils.GetCurrentTime(),
		TranscriptPreview: collapseWhitespace(req.Transcript),
		Summary:           req.Summary,
	}
	title := graph.PageTitle(page.VideoTitle, page.Timestamp)
	html := graph.BuildSummaryPageHTML(page)

	pageURL, err := u.onenote.CreatePage(ctx, token, u.sectionID, title, html)
	if err != nil {
		return failure("Failed to save to OneNote", err)
	}

	message := "Summary saved to OneNote successfully!"
	if pageURL != "" {
		message += "\nView at: " + pageURL
	}
	return dto.OneNoteResult{Success: true, Message: message, PageURL: pageURL}
}

// TestConnection validates credentials and Graph access without creating
// any content.
func (u *OneNoteUsecase) TestConnection(ctx context.Context) dto.OneNoteResult {
	token, err := u.tokens.GetAccessToken(ctx)
	if err != nil {
		return failure("Failed to authenticate with Microsoft", err)
	}

	notebooks, err := u.onenote.ListNotebooks(ctx, token)
	if err != nil {
		return failure("Failed to reach OneNote", err)
	}

	message := fmt.Sprintf("OneNote connection test successful (%d notebooks visible)", len(notebooks))
	if account := u.tokens.AccountName(ctx); account != "" {
		message += ", signed in as " + account
	}
	return dto.OneNoteResult{Success: true, Message: message}
}

// SearchSummaries searches the managed notebook. No matches is a success
// with an empty page list.
func (u *OneNoteUsecase) SearchSummaries(ctx context.Context, query string) dto.OneNoteResult {
	token, err := u.tokens.GetAccessToken(ctx)
	if err != nil {
		return failure("Failed to authenticate with Microsoft", err)
	}
	if err := u.ensureTarget(ctx, token); err != nil {
		return failure("Failed to prepare notebook", err)
	}

	pages, err := u.onenote.SearchPages(ctx, token, u.notebookID, query)
	if err != nil {
		return failure("Search failed", err)
	}
	return dto.OneNoteResult{
		Success: true,
		Message: fmt.Sprintf("Found %d matching summaries", len(pages)),
		Pages:   pages,
	}
}

// ListRecentSummaries lists the newest pages of the managed section.
func (u *OneNoteUsecase) ListRecentSummaries(ctx context.Context, count int) dto.OneNoteResult {
	if count <= 0 {
		count = 5
	}
	token, err := u.tokens.GetAccessToken(ctx)
	if err != nil {
		return failure("Failed to authenticate with Microsoft", err)
	}
	if err := u.ensureTarget(ctx, token); err != nil {
		return failure("Failed to prepare notebook", err)
	}

	pages, err := u.onenote.ListRecentPages(ctx, token, u.sectionID, count)
	if err != nil {
		return failure("Failed to list summaries", err)
	}
	return dto.OneNoteResult{
		Success: true,
		Message: fmt.Sprintf("Found %d recent summaries", len(pages)),
		Pages:   pages,
	}
}

// ensureTarget resolves (and memoizes) the notebook and section ids.
func (u *OneNoteUsecase) ensureTarget(ctx context.Context, token string) error {
	if u.notebookID == "" {
		id, err := u.onenote.EnsureNotebook(ctx, token, u.notebookName)
		if err != nil {
			return err
		}
		u.notebookID = id
	}
	if u.sectionID == "" {
		id, err := u.onenote.EnsureSection(ctx, token, u.notebookID, u.sectionName)
		if err != nil {
			return err
		}
		u.sectionID = id
	}
	return nil
}

func failure(message string, err error) dto.OneNoteResult {
	logger.GetLogger().WithField("error", err).Error(message)
	return dto.OneNoteResult{Success: false, Message: fmt.Sprintf("%s: %v", message, err)}
}

// collapseWhitespace flattens the transcript for the page preview.
func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
