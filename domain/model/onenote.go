package model

import "time"

// Notebook is a OneNote notebook as returned by Microsoft Graph.
type Notebook struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// Section is a OneNote section inside a notebook.
type Section struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// PageRef is the (title, url) pair surfaced by search and listing.
type PageRef struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// SummaryPage is the record rendered into a OneNote page body. It is not
// retained once Graph accepts the page.
type SummaryPage struct {
	VideoTitle        string
	VideoURL          string
	Timestamp         time.Time
	TranscriptPreview string
	Summary           string
}
