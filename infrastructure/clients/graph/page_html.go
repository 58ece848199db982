package graph

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"youtube-summarizer/domain/model"
)

// transcriptPreviewLimit is how much transcript text the page embeds.
const transcriptPreviewLimit = 500

// PageTitle renders the OneNote page title for a video summary.
func PageTitle(videoTitle string, ts time.Time) string {
	return fmt.Sprintf("%s - %s", videoTitle, ts.Format("2006-01-02"))
}

// BuildSummaryPageHTML renders the OneNote page body. All untrusted text
// (title, URL, preview, summary) is HTML-escaped before embedding.
func BuildSummaryPageHTML(page model.SummaryPage) string {
	timestamp := page.Timestamp.Format("2006-01-02 15:04:05")
	title := escapeHTML(page.VideoTitle)
	videoURL := escapeHTML(page.VideoURL)

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	sb.WriteString(fmt.Sprintf("    <title>%s</title>\n", title))
	sb.WriteString(fmt.Sprintf("    <meta name=\"created\" content=\"%s\" />\n", timestamp))
	sb.WriteString("</head>\n<body>\n    <div>\n")
	sb.WriteString(fmt.Sprintf("        <h1 style=\"color: #2563eb; border-bottom: 2px solid #2563eb; padding-bottom: 8px;\">%s</h1>\n", title))
	sb.WriteString("        <div style=\"background-color: #f8fafc; padding: 16px; border-radius: 8px; margin: 16px 0;\">\n")
	sb.WriteString(fmt.Sprintf("            <p><strong>Video URL:</strong> <a href=\"%s\" target=\"_blank\">%s</a></p>\n", videoURL, videoURL))
	sb.WriteString(fmt.Sprintf("            <p><strong>Generated:</strong> %s</p>\n", timestamp))
	sb.WriteString("            <p><strong>AI Model:</strong> Google Gemini</p>\n")
	sb.WriteString("        </div>\n")

	if page.TranscriptPreview != "" {
		sb.WriteString("        <h2 style=\"color: #059669; margin-top: 24px;\">Transcript Preview</h2>\n")
		sb.WriteString("        <div style=\"background-color: #f0f9ff; padding: 12px; border-left: 4px solid #0284c7; margin: 12px 0; font-style: italic;\">")
		sb.WriteString(escapeHTML(truncatePreview(page.TranscriptPreview)))
		sb.WriteString("</div>\n")
	}

	sb.WriteString("        <h2 style=\"color: #dc2626; margin-top: 24px;\">AI Generated Summary</h2>\n")
	sb.WriteString("        <div style=\"line-height: 1.6;\">\n")
	sb.WriteString(markdownToHTML(page.Summary))
	sb.WriteString("\n        </div>\n")
	sb.WriteString("        <div style=\"margin-top: 32px; padding: 16px; background-color: #fef3c7; border-radius: 8px;\">\n")
	sb.WriteString("            <h3 style=\"color: #92400e; margin-top: 0;\">Quick Actions</h3>\n")
	sb.WriteString(fmt.Sprintf("            <p><a href=\"%s\" target=\"_blank\" style=\"color: #dc2626; text-decoration: none; font-weight: bold;\">Watch Video</a></p>\n", videoURL))
	sb.WriteString("        </div>\n")
	sb.WriteString("    </div>\n</body>\n</html>")
	return sb.String()
}

// truncatePreview cuts text to the preview limit with an ellipsis marker.
// Shorter text passes through unmodified. The limit counts characters, not
// bytes, so multi-byte text is never cut mid-rune.
func truncatePreview(text string) string {
	runes := []rune(text)
	if len(runes) <= transcriptPreviewLimit {
		return text
	}
	return string(runes[:transcriptPreviewLimit]) + "..."
}

var (
	h3Re     = regexp.MustCompile(`(?m)^### (.*)$`)
	h2Re     = regexp.MustCompile(`(?m)^## (.*)$`)
	h1Re     = regexp.MustCompile(`(?m)^# (.*)$`)
	bulletRe = regexp.MustCompile(`(?m)^\* (.*)$`)
	listRe   = regexp.MustCompile(`(?s)(<li>.*</li>)`)
	boldRe   = regexp.MustCompile(`\*\*(.*?)\*\*`)
)

// markdownToHTML converts the model's Markdown summary to simple OneNote
// HTML. The text is escaped first so model output cannot inject markup.
func markdownToHTML(markdown string) string {
	html := escapeHTML(markdown)

	html = h3Re.ReplaceAllString(html, `<h3 style="color: #7c3aed;">$1</h3>`)
	html = h2Re.ReplaceAllString(html, `<h2 style="color: #059669;">$1</h2>`)
	html = h1Re.ReplaceAllString(html, `<h1 style="color: #dc2626;">$1</h1>`)

	html = bulletRe.ReplaceAllString(html, `<li>$1</li>`)
	html = listRe.ReplaceAllString(html, `<ul>$1</ul>`)
	html = strings.ReplaceAll(html, "</ul>\n<ul>", "\n")

	html = boldRe.ReplaceAllString(html, `<strong>$1</strong>`)

	paragraphs := strings.Split(html, "\n\n")
	formatted := make([]string, 0, len(paragraphs))
	for _, para := range paragraphs {
		para = strings.TrimSpace(para)
		if para != "" && !strings.HasPrefix(para, "<") {
			para = "<p>" + para + "</p>"
		}
		formatted = append(formatted, para)
	}
	return strings.Join(formatted, "\n")
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

func escapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}
