package graph

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"youtube-summarizer/domain/model"
)

func TestPageTitle(t *testing.T) {
	ts := time.Date(2026, 8, 28, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "How Compilers Work - 2026-08-28", PageTitle("How Compilers Work", ts))
}

func TestTruncatePreview(t *testing.T) {
	short := strings.Repeat("a", transcriptPreviewLimit)
	assert.Equal(t, short, truncatePreview(short))

	long := strings.Repeat("b", transcriptPreviewLimit+100)
	got := truncatePreview(long)
	assert.Equal(t, transcriptPreviewLimit+3, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Equal(t, long[:transcriptPreviewLimit], got[:transcriptPreviewLimit])

	t.Run("multi-byte text cut on character boundary", func(t *testing.T) {
		long := strings.Repeat("a", transcriptPreviewLimit-1) + "é" + strings.Repeat("b", 100)
		got := truncatePreview(long)
		assert.True(t, utf8.ValidString(got))
		assert.Equal(t, transcriptPreviewLimit+3, utf8.RuneCountInString(got))
		assert.True(t, strings.HasSuffix(got, "é..."))

		cjk := strings.Repeat("日", transcriptPreviewLimit+10)
		got = truncatePreview(cjk)
		assert.True(t, utf8.ValidString(got))
		assert.Equal(t, strings.Repeat("日", transcriptPreviewLimit)+"...", got)
	})
}

func TestMarkdownToHTML(t *testing.T) {
	t.Run("headings and bold", func(t *testing.T) {
		got := markdownToHTML("## Summary\n\nThis is **important** text.")
		assert.Contains(t, got, `<h2 style="color: #059669;">Summary</h2>`)
		assert.Contains(t, got, "<p>This is <strong>important</strong> text.</p>")
	})

	t.Run("bullet list", func(t *testing.T) {
		got := markdownToHTML("* first\n* second")
		assert.Contains(t, got, "<li>first</li>")
		assert.Contains(t, got, "<li>second</li>")
		assert.Contains(t, got, "<ul>")
		assert.Contains(t, got, "</ul>")
	})

	t.Run("all heading levels", func(t *testing.T) {
		got := markdownToHTML("# One\n\n## Two\n\n### Three")
		assert.Contains(t, got, `<h1 style="color: #dc2626;">One</h1>`)
		assert.Contains(t, got, `<h2 style="color: #059669;">Two</h2>`)
		assert.Contains(t, got, `<h3 style="color: #7c3aed;">Three</h3>`)
	})

	t.Run("markup in model output is escaped", func(t *testing.T) {
		got := markdownToHTML("## Summary\n\n<script>alert(1)</script>")
		assert.NotContains(t, got, "<script>")
		assert.Contains(t, got, "&lt;script&gt;")
	})
}

func TestBuildSummaryPageHTML(t *testing.T) {
	page := model.SummaryPage{
		VideoTitle:        `Tricky <"Title"> & Co`,
		VideoURL:          "https://www.youtube.com/watch?v=abc123def45",
		Timestamp:         time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC),
		TranscriptPreview: "hello transcript",
		Summary:           "## Summary\n\nShort recap.",
	}

	html := BuildSummaryPageHTML(page)

	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, `<meta name="created" content="2026-08-28 10:30:00" />`)
	assert.Contains(t, html, "Tricky &lt;&quot;Title&quot;&gt; &amp; Co")
	assert.NotContains(t, html, `<"Title">`)
	assert.Contains(t, html, "hello transcript")
	assert.Contains(t, html, "Transcript Preview")
	assert.Contains(t, html, "AI Generated Summary")
	assert.Contains(t, html, "Watch Video")
	assert.Contains(t, html, "Short recap.")
}

func TestBuildSummaryPageHTML_NoPreview(t *testing.T) {
	html := BuildSummaryPageHTML(model.SummaryPage{
		VideoTitle: "t",
		VideoURL:   "u",
		Timestamp:  time.Now(),
		Summary:    "s",
	})
	assert.NotContains(t, html, "Transcript Preview")
}
