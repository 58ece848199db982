package repository

import "context"

// ISummarizer turns transcript text into the five-section structured
// summary produced by the generative model.
type ISummarizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}
