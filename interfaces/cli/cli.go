package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"youtube-summarizer/domain/dto"
	"youtube-summarizer/domain/model"
	"youtube-summarizer/infrastructure/filemd"
	"youtube-summarizer/infrastructure/logger"
	"youtube-summarizer/infrastructure/utils"
	"youtube-summarizer/usecase"

	"github.com/pkg/browser"
)

const demoURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

// CLI is the interactive driver: prompt for a URL, fetch, summarize, and
// offer the save options.
type CLI struct {
	summarize usecase.ISummarizeUsecase
	onenote   usecase.IOneNoteUsecase // nil when OneNote is not configured
	language  string
	in        *bufio.Reader
	out       io.Writer
}

func NewCLI(summarize usecase.ISummarizeUsecase, onenote usecase.IOneNoteUsecase, language string, in io.Reader, out io.Writer) *CLI {
	return &CLI{
		summarize: summarize,
		onenote:   onenote,
		language:  language,
		in:        bufio.NewReader(in),
		out:       out,
	}
}

// Run executes one summarize session. Handled failures are reported to the
// user and return nil; the process exits 0 on them.
func (c *CLI) Run(ctx context.Context) error {
	c.printf("YouTube Video Summarizer using Gemini\n")
	c.printf("%s\n", strings.Repeat("=", 50))

	onenoteEnabled := c.onenote != nil
	if onenoteEnabled {
		c.printf("OneNote integration: ENABLED\n")
		if c.confirm("Test OneNote connection? (y/n): ") {
			result := c.onenote.TestConnection(ctx)
			c.printf("%s\n", result.Message)
			if !result.Success {
				onenoteEnabled = false
			}
		}
	} else {
		c.printf("OneNote integration: DISABLED (set MICROSOFT_CLIENT_ID to enable)\n")
	}
	c.printf("\n")

	url := c.readLine("Enter YouTube URL (or press Enter for demo): ")
	if url == "" {
		url = demoURL
		c.printf("Using demo URL: %s\n", url)
	}

	c.printf("\nExtracting transcript...\n")
	transcript, err := c.summarize.GetTranscript(ctx, url, c.language)
	if err != nil {
		c.printf("Error: %s\n", friendlyError(err))
		return nil
	}
	c.printf("Transcript extracted (%d characters)\n", utf8.RuneCountInString(transcript.Text))

	c.printf("\nGenerating summary with Gemini...\n")
	summary, err := c.summarize.Summarize(ctx, transcript.Text)
	if err != nil {
		c.printf("Error: %s\n", friendlyError(err))
		return nil
	}
	c.printf("Summary generated!\n\n%s\n%s\n%s\n", strings.Repeat("=", 50), summary, strings.Repeat("=", 50))

	title := c.summarize.VideoTitle(ctx, url)

	c.printf("\nSave Options:\n")
	if c.confirm("Save summary to markdown file? (y/n): ") {
		filename := filemd.SummaryFilename(utils.GetCurrentTime())
		if err := filemd.WriteSummary(filename, title, url, summary); err != nil {
			c.printf("Error: %v\n", err)
		} else {
			c.printf("Summary saved to %s\n", filename)
		}
	}

	if onenoteEnabled && c.confirm("Save summary to OneNote? (y/n): ") {
		c.printf("\nSaving to OneNote...\n")
		result := c.onenote.SaveSummary(ctx, &dto.SaveSummaryRequest{
			VideoTitle: title,
			VideoURL:   url,
			Summary:    summary,
			Transcript: transcript.Text,
		})
		c.printf("%s\n", result.Message)

		if result.Success && result.PageURL != "" && c.confirm("Open OneNote page in browser? (y/n): ") {
			if err := browser.OpenURL(result.PageURL); err != nil {
				logger.GetLogger().WithField("error", err).Warn("Could not open browser")
			}
		}

		if result.Success {
			if query := c.readLine("Search your summaries (enter query or press Enter to skip): "); query != "" {
				c.printPages(c.onenote.SearchSummaries(ctx, query))
			}
			if c.confirm("List recent summaries? (y/n): ") {
				c.printPages(c.onenote.ListRecentSummaries(ctx, 5))
			}
		}
	}

	return nil
}

func (c *CLI) printPages(result dto.OneNoteResult) {
	c.printf("%s\n", result.Message)
	for _, page := range result.Pages {
		if page.URL != "" {
			c.printf("  - %s (%s)\n", page.Title, page.URL)
		} else {
			c.printf("  - %s\n", page.Title)
		}
	}
}

func (c *CLI) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *CLI) readLine(prompt string) string {
	c.printf("%s", prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

func (c *CLI) confirm(prompt string) bool {
	answer := strings.ToLower(c.readLine(prompt))
	return answer == "y" || answer == "yes"
}

// friendlyError maps the failure taxonomy to readable messages.
func friendlyError(err error) string {
	switch {
	case errors.Is(err, model.ErrInvalidURL):
		return fmt.Sprintf("that does not look like a YouTube URL (%v)", err)
	case errors.Is(err, model.ErrNoCaptionsAvailable):
		return fmt.Sprintf("no captions are available for this video (%v)", err)
	case errors.Is(err, model.ErrTranscriptFetch):
		return fmt.Sprintf("could not download the transcript (%v)", err)
	case errors.Is(err, model.ErrSummarization):
		return fmt.Sprintf("could not generate the summary (%v)", err)
	default:
		return err.Error()
	}
}
