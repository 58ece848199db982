package filemd

import (
	"fmt"
	"os"
	"time"

	"youtube-summarizer/infrastructure/logger"
)

// SummaryFilename returns the timestamped default output name.
func SummaryFilename(ts time.Time) string {
	return fmt.Sprintf("summary_%s.md", ts.Format("20060102_150405"))
}

// WriteSummary writes the summary as a Markdown document with a title
// heading and the source URL.
func WriteSummary(path, videoTitle, videoURL, summary string) error {
	content := fmt.Sprintf("# %s\n\n**URL:** %s\n\n%s\n", videoTitle, videoURL, summary)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while writing summary file")
		return fmt.Errorf("write summary %s: %w", path, err)
	}
	return nil
}
